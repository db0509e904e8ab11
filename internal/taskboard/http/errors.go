package http

import (
	"errors"
	"net/http"

	"github.com/boardsync/taskboard/internal/taskboard/service"
	"github.com/boardsync/taskboard/pkg/slogx"
	"github.com/boardsync/taskboard/pkg/tasksdk"
)

// writeServiceError maps a service error onto the API error vocabulary.
// Anything unrecognised is logged and reported as a server error without
// leaking internals.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		tasksdk.NewValidationError(verr.Field, verr.Message).WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials):
		tasksdk.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, service.ErrAccountExists):
		tasksdk.ErrAccountExists.WriteError(w)
	case errors.Is(err, service.ErrTaskNotFound):
		tasksdk.ErrNotFound.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		tasksdk.ErrServerError.WriteError(w)
	}
}
