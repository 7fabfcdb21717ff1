package v1handler

import (
	"net/http"
	"strconv"

	"gympass/pkg/domain"
	"gympass/pkg/serrors"

	"github.com/google/uuid"
)

// CreateGymRequest is the payload for POST /v1/gyms.
type CreateGymRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Phone       string  `json:"phone"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// GymView exposes the public fields of a gym.
type GymView struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Phone       string  `json:"phone,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// GymsResponse packages a list of gyms.
type GymsResponse struct {
	Gyms []GymView `json:"gyms"`
}

func toGymView(gym domain.Gym) GymView {
	return GymView{
		ID:          uuid.UUID(gym.ID).String(),
		Title:       gym.Title,
		Description: gym.Description,
		Phone:       gym.Phone,
		Latitude:    gym.Latitude,
		Longitude:   gym.Longitude,
	}
}

func toGymsResponse(res []domain.Gym) GymsResponse {
	views := make([]GymView, 0, len(res))
	for _, gym := range res {
		views = append(views, toGymView(gym))
	}

	return GymsResponse{Gyms: views}
}

// pageParam parses the 1-indexed page query parameter, defaulting to 1.
func pageParam(r *http.Request) (uint, error) {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1, nil
	}

	page, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || page < 1 {
		return 0, serrors.With(serrors.ErrBadRequest, "page must be a positive integer")
	}

	return uint(page), nil
}

func coordParam(r *http.Request, name string) (float64, error) {
	v, err := strconv.ParseFloat(r.URL.Query().Get(name), 64)
	if err != nil {
		return 0, serrors.With(serrors.ErrBadRequest, "%s must be a number", name)
	}

	return v, nil
}

func (h *Handler) createGym(w http.ResponseWriter, r *http.Request) {
	if _, ok := claims(w, r); !ok {
		return
	}

	var req CreateGymRequest
	if !decodeBody(w, r, &req) {
		return
	}

	gym, err := h.deps.Gyms.Create(r.Context(), domain.Gym{
		Title:       req.Title,
		Description: req.Description,
		Phone:       req.Phone,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, toGymView(*gym))
}

func (h *Handler) searchGyms(w http.ResponseWriter, r *http.Request) {
	if _, ok := claims(w, r); !ok {
		return
	}

	page, err := pageParam(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Gyms.Search(r.Context(), r.URL.Query().Get("query"), page)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, toGymsResponse(res))
}

func (h *Handler) nearbyGyms(w http.ResponseWriter, r *http.Request) {
	if _, ok := claims(w, r); !ok {
		return
	}

	latitude, err := coordParam(r, "latitude")
	if err != nil {
		writeError(w, r, err)

		return
	}
	longitude, err := coordParam(r, "longitude")
	if err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Gyms.Nearby(r.Context(), latitude, longitude)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, toGymsResponse(res))
}
