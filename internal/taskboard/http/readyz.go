package http

import (
	"net/http"
	"time"

	"github.com/boardsync/taskboard/internal/taskboard/store"
	"github.com/boardsync/taskboard/pkg/httpx"
	"github.com/boardsync/taskboard/pkg/jwtx"
	"github.com/boardsync/taskboard/pkg/tasksdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe checking the critical dependencies: the database
//	@Description	connection and the session token signer.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	tasksdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	tasksdk.HealthResponse	"service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	keys *jwtx.KeySet,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &tasksdk.HealthChecks{
			Database: "ok",
			Signer:   "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if !keys.IsReady() {
			checks.Signer = "error: no keys loaded"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := tasksdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
