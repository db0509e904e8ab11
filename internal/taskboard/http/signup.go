package http

import (
	"encoding/json"
	"net/http"

	"github.com/boardsync/taskboard/internal/taskboard/service"
	"github.com/boardsync/taskboard/pkg/httpx"
	"github.com/boardsync/taskboard/pkg/tasksdk"
)

type SignUpHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles account registration. A successful sign-up includes the
// follow-on sign-in, so the response already carries a usable session.
//
//	@Summary		Sign up
//	@Description	Registers a new account and signs it in. The email must not already be in use.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.SignUpRequest	true	"Account details"
//	@Success		201		{object}	tasksdk.SessionResponse	"Session for the new account"
//	@Failure		400		{object}	httpx.ErrorResponse		"Validation failed"
//	@Failure		409		{object}	httpx.ErrorResponse		"Email already in use"
//	@Failure		500		{object}	httpx.ErrorResponse		"Internal server error"
//	@Router			/v1/auth/signup [post].
func (h *SignUpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req tasksdk.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		tasksdk.ErrInvalidRequest.WriteError(w)
		return
	}

	session, err := h.AuthService.SignUp(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, tasksdk.SessionResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User: tasksdk.UserResponse{
			UserID: session.UserID,
			Name:   session.Name,
			Email:  session.Email,
		},
	})
}
