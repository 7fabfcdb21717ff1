package v1handler

import (
	"net/http"
	"time"

	"gympass/internal/api/auth"
	"gympass/pkg/domain"

	"github.com/google/uuid"
)

// RegisterRequest is the payload for POST /v1/users.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionRequest is the payload for POST /v1/sessions.
type SessionRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse carries the issued session token.
type SessionResponse struct {
	Token string `json:"token"`
}

// UserView exposes the public fields of a user account.
type UserView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserView(user domain.User) UserView {
	return UserView{
		ID:        uuid.UUID(user.ID).String(),
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.deps.Users.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, toUserView(*user))
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req SessionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.deps.Users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)

		return
	}

	token, err := auth.Sign(user.ID, h.options.AuthConfig, time.Now())
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, SessionResponse{Token: token})
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	c, ok := claims(w, r)
	if !ok {
		return
	}

	user, err := h.deps.Users.Profile(r.Context(), c.UserID)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, toUserView(*user))
}
