package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/boardsync/taskboard/internal/taskboard/service"
	"github.com/boardsync/taskboard/internal/taskboard/store"
	"github.com/boardsync/taskboard/pkg/httpx"
	"github.com/boardsync/taskboard/pkg/jwtx"
	"github.com/boardsync/taskboard/pkg/slogx"

	_ "github.com/boardsync/taskboard/api/taskboard" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store       store.Store
	AuthService *service.AuthService
	TaskService *service.TaskService
	UserService *service.UserService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerMe()
	r.registerTasks()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Taskboard API
//	@version		0.1.0
//	@description	Personal task management service. Accounts sign up with email and
//	@description	password and receive a signed session token; every task endpoint is
//	@description	scoped to the authenticated owner.
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes	http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	signUp := &SignUpHandler{AuthService: r.AuthService}
	signIn := &SignInHandler{AuthService: r.AuthService}

	// Credential endpoints take strict per-IP limits; they are the brute
	// force surface.
	r.Mux.Handle("POST /v1/auth/signup",
		httpx.Chain(signUp,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	// Sign-in keys on IP plus the target account, so hammering one email
	// can't exhaust the IP's whole budget.
	r.Mux.Handle("POST /v1/auth/signin",
		httpx.Chain(signIn,
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)

	r.Mux.Handle("POST /v1/auth/signout",
		httpx.Chain(SignOutHandler(),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerMe() {
	h := &MeHandler{UserService: r.UserService}

	secured := httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)

	r.Mux.Handle("GET /v1/me", secured)
}

func (r *Router) registerTasks() {
	h := &TasksHandler{TaskService: r.TaskService}

	secure := func(next http.HandlerFunc) http.Handler {
		return httpx.Chain(next,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("GET /v1/tasks", secure(h.HandleList))
	r.Mux.Handle("POST /v1/tasks", secure(h.HandleCreate))
	r.Mux.Handle("GET /v1/tasks/{id}", secure(h.HandleGet))
	r.Mux.Handle("PUT /v1/tasks/{id}", secure(h.HandleUpdate))
	r.Mux.Handle("DELETE /v1/tasks/{id}", secure(h.HandleDelete))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /.well-known/jwks.json",
		httpx.Chain(JWKSHandler(r.keys),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
