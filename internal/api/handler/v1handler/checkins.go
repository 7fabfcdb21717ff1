package v1handler

import (
	"net/http"
	"time"

	"gympass/pkg/domain"
	"gympass/pkg/serrors"

	"github.com/google/uuid"
)

// CreateCheckInRequest is the payload for POST /v1/gyms/{gymId}/check-ins.
type CreateCheckInRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CheckInView exposes the public fields of a check-in.
type CheckInView struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	GymID       string     `json:"gymId"`
	CreatedAt   time.Time  `json:"createdAt"`
	ValidatedAt *time.Time `json:"validatedAt,omitempty"`
}

// CheckInsResponse packages a page of check-ins.
type CheckInsResponse struct {
	CheckIns []CheckInView `json:"checkIns"`
}

// CheckInMetricsResponse carries the user's lifetime check-in count.
type CheckInMetricsResponse struct {
	CheckInsCount int64 `json:"checkInsCount"`
}

func toCheckInView(checkIn domain.CheckIn) CheckInView {
	view := CheckInView{
		ID:        uuid.UUID(checkIn.ID).String(),
		UserID:    uuid.UUID(checkIn.UserID).String(),
		GymID:     uuid.UUID(checkIn.GymID).String(),
		CreatedAt: checkIn.CreatedAt,
	}
	if checkIn.Validated() {
		at := checkIn.ValidatedAt
		view.ValidatedAt = &at
	}

	return view
}

func (h *Handler) createCheckIn(w http.ResponseWriter, r *http.Request) {
	c, ok := claims(w, r)
	if !ok {
		return
	}

	gymID, err := uuid.Parse(r.PathValue("gymId"))
	if err != nil {
		writeError(w, r, serrors.With(serrors.ErrBadRequest, "invalid gym id"))

		return
	}

	var req CreateCheckInRequest
	if !decodeBody(w, r, &req) {
		return
	}

	checkIn, err := h.deps.CheckIns.CheckIn(r.Context(), c.UserID, domain.GymID(gymID), req.Latitude, req.Longitude)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, toCheckInView(*checkIn))
}

func (h *Handler) validateCheckIn(w http.ResponseWriter, r *http.Request) {
	if _, ok := claims(w, r); !ok {
		return
	}

	checkInID, err := uuid.Parse(r.PathValue("checkInId"))
	if err != nil {
		writeError(w, r, serrors.With(serrors.ErrBadRequest, "invalid check-in id"))

		return
	}

	checkIn, err := h.deps.CheckIns.Validate(r.Context(), domain.CheckInID(checkInID))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, toCheckInView(*checkIn))
}

func (h *Handler) checkInHistory(w http.ResponseWriter, r *http.Request) {
	c, ok := claims(w, r)
	if !ok {
		return
	}

	page, err := pageParam(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.CheckIns.History(r.Context(), c.UserID, page)
	if err != nil {
		writeError(w, r, err)

		return
	}

	views := make([]CheckInView, 0, len(res))
	for _, checkIn := range res {
		views = append(views, toCheckInView(checkIn))
	}

	writeJSON(w, http.StatusOK, CheckInsResponse{CheckIns: views})
}

func (h *Handler) checkInMetrics(w http.ResponseWriter, r *http.Request) {
	c, ok := claims(w, r)
	if !ok {
		return
	}

	count, err := h.deps.CheckIns.UserMetrics(r.Context(), c.UserID)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, CheckInMetricsResponse{CheckInsCount: count})
}
