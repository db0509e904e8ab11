package tasksdk

import (
	"time"

	"github.com/boardsync/taskboard/pkg/jwtx"
)

// SignUpRequest is the body of POST /v1/auth/signup.
type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInRequest is the body of POST /v1/auth/signin.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse is returned by sign-up and sign-in.
type SessionResponse struct {
	// Token is the signed session JWT. Send it back as
	// "Authorization: Bearer {token}".
	Token string `json:"token"`

	// ExpiresAt is when the token stops being accepted.
	ExpiresAt time.Time `json:"expires_at"`

	// User describes the signed-in account.
	User UserResponse `json:"user"`
}

// UserResponse describes an account, without any credential material.
type UserResponse struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TaskRequest is the body of POST /v1/tasks and PUT /v1/tasks/{id}.
type TaskRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`

	// Status is one of NEW, IN_PROGRESS, COMPLETED, CANCELLED. Empty means
	// NEW on create; on update it also resolves to NEW.
	Status string `json:"status"`
}

// TaskResponse describes a single task.
type TaskResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TaskListResponse is returned by GET /v1/tasks. Tasks are ordered most
// recently created first.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// HealthChecks reports the status of each critical dependency.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// HealthResponse is returned by the livez and readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// JWKSResponse is the JSON Web Key Set served at /.well-known/jwks.json.
type JWKSResponse = jwtx.JWKS
