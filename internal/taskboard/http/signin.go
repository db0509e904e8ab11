package http

import (
	"encoding/json"
	"net/http"

	"github.com/boardsync/taskboard/internal/taskboard/service"
	"github.com/boardsync/taskboard/pkg/httpx"
	"github.com/boardsync/taskboard/pkg/tasksdk"
)

type SignInHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles credential sign-in.
//
//	@Summary		Sign in
//	@Description	Authenticates an email and password and returns a session token.
//	@Description	A wrong password and an unknown email produce the same error.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.SignInRequest	true	"Credentials"
//	@Success		200		{object}	tasksdk.SessionResponse	"Session"
//	@Failure		401		{object}	httpx.ErrorResponse		"Invalid credentials"
//	@Failure		500		{object}	httpx.ErrorResponse		"Internal server error"
//	@Router			/v1/auth/signin [post].
func (h *SignInHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req tasksdk.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		tasksdk.ErrInvalidRequest.WriteError(w)
		return
	}

	session, err := h.AuthService.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tasksdk.SessionResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User: tasksdk.UserResponse{
			UserID: session.UserID,
			Name:   session.Name,
			Email:  session.Email,
		},
	})
}
