// Package v1handler implements the HTTP handlers for version 1 of the API.
package v1handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"gympass/internal/api/auth"
	"gympass/internal/checkins"
	"gympass/internal/gyms"
	"gympass/internal/users"
	"gympass/pkg/logger"
	"gympass/pkg/serrors"
)

// Deps bundles the services the handlers delegate to.
type Deps struct {
	Users    users.Users
	Gyms     gyms.Gyms
	CheckIns checkins.CheckIns
}

// Options holds handler configuration that is not a service dependency.
type Options struct {
	// AuthConfig signs session tokens issued by the sessions endpoint.
	AuthConfig auth.Config
}

// Handler coordinates HTTP requests with the application services.
type Handler struct {
	deps    Deps
	options Options
}

// New builds a Handler.
func New(deps Deps, options Options) *Handler {
	return &Handler{deps: deps, options: options}
}

// RegisterRoutes wires the v1 endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/users", h.register)
	mux.HandleFunc("POST /v1/sessions", h.createSession)
	mux.HandleFunc("GET /v1/me", h.profile)
	mux.HandleFunc("POST /v1/gyms", h.createGym)
	mux.HandleFunc("GET /v1/gyms/search", h.searchGyms)
	mux.HandleFunc("GET /v1/gyms/nearby", h.nearbyGyms)
	mux.HandleFunc("POST /v1/gyms/{gymId}/check-ins", h.createCheckIn)
	mux.HandleFunc("PATCH /v1/check-ins/{checkInId}/validate", h.validateCheckIn)
	mux.HandleFunc("GET /v1/check-ins/history", h.checkInHistory)
	mux.HandleFunc("GET /v1/check-ins/metrics", h.checkInMetrics)
	mux.HandleFunc("GET /healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// errorBody is the JSON shape of every error response. Kind carries the
// semantic kind name so clients can branch without parsing the message.
type errorBody struct {
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
}

// writeError maps a service error to an HTTP status and renders the error
// body. Unexpected errors are logged and collapsed into an opaque 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, serrors.ErrInvalidCredentials), errors.Is(err, serrors.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, serrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, serrors.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, serrors.ErrMaxDistance),
		errors.Is(err, serrors.ErrMaxCheckIns),
		errors.Is(err, serrors.ErrLateValidation),
		errors.Is(err, serrors.ErrBadRequest):
		status = http.StatusBadRequest
	}

	body := errorBody{Message: "internal server error"}
	var serr *serrors.Error
	if status != http.StatusInternalServerError && errors.As(err, &serr) {
		body.Message = serr.Message()
		if serr.Kind() != nil {
			body.Kind = serr.Kind().Error()
		}
	}
	if status == http.StatusInternalServerError {
		logger.Error(r.Context(), err.Error())
	}

	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{
			Kind:    serrors.ErrBadRequest.Error(),
			Message: "unable to parse body",
		})

		return false
	}

	return true
}

// claims extracts the authenticated user from the request context. The auth
// middleware guarantees it is present on protected routes.
func claims(w http.ResponseWriter, r *http.Request) (*auth.Claims, bool) {
	c, ok := auth.FromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody{
			Kind:    serrors.ErrUnauthorized.Error(),
			Message: "missing bearer token",
		})

		return nil, false
	}

	return c, true
}
