package http

import (
	"net/http"

	"github.com/boardsync/taskboard/internal/taskboard/service"
	"github.com/boardsync/taskboard/pkg/httpx"
	"github.com/boardsync/taskboard/pkg/slogx"
	"github.com/boardsync/taskboard/pkg/tasksdk"
)

type MeHandler struct {
	UserService *service.UserService
}

// ServeHTTP returns the authenticated account's profile.
//
//	@Summary		Get current user
//	@Description	Returns the account behind the session token.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	tasksdk.UserResponse	"Account profile"
//	@Failure		401	{object}	httpx.ErrorResponse		"Invalid or missing session token"
//	@Failure		500	{object}	httpx.ErrorResponse		"Internal server error"
//	@Router			/v1/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		tasksdk.ErrUnauthorized.WriteError(w)
		return
	}

	user, err := h.UserService.GetUserByID(ctx, userID)
	if err != nil {
		slogx.FromContext(ctx).Warn("failed to load user", "user_id", userID, "err", err)
		tasksdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, tasksdk.UserResponse{
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
}
