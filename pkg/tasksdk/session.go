package tasksdk

import (
	"context"
	"net/http"
	"time"
)

// Session is an authenticated handle on the taskboard API.
type Session struct {
	client *SDKClient

	token     string
	expiresAt time.Time
	user      UserResponse
}

func newSession(c *SDKClient, resp SessionResponse) *Session {
	return &Session{
		client:    c,
		token:     resp.Token,
		expiresAt: resp.ExpiresAt,
		user:      resp.User,
	}
}

// Token returns the raw session token, for callers that persist it.
func (s *Session) Token() string { return s.token }

// ExpiresAt returns when the session token stops being accepted.
func (s *Session) ExpiresAt() time.Time { return s.expiresAt }

// User returns the account this session was issued for.
func (s *Session) User() UserResponse { return s.user }

// Me fetches the authenticated account's profile.
func (s *Session) Me(ctx context.Context) (UserResponse, error) {
	var resp UserResponse
	if err := s.client.doJSON(ctx, http.MethodGet, "/v1/me", nil, s.token, &resp); err != nil {
		return UserResponse{}, err
	}
	return resp, nil
}

// SignOut tells the server the session is done. Tokens are stateless, so this
// is a courtesy call; the client must also discard the token.
func (s *Session) SignOut(ctx context.Context) error {
	if err := s.client.doJSON(ctx, http.MethodPost, "/v1/auth/signout", nil, s.token, nil); err != nil {
		return err
	}
	s.token = ""
	return nil
}

// ListTasks returns the caller's tasks, most recently created first.
func (s *Session) ListTasks(ctx context.Context) ([]TaskResponse, error) {
	var resp TaskListResponse
	if err := s.client.doJSON(ctx, http.MethodGet, "/v1/tasks", nil, s.token, &resp); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

// CreateTask creates a task owned by the caller.
func (s *Session) CreateTask(ctx context.Context, req TaskRequest) (TaskResponse, error) {
	var resp TaskResponse
	if err := s.client.doJSON(ctx, http.MethodPost, "/v1/tasks", req, s.token, &resp); err != nil {
		return TaskResponse{}, err
	}
	return resp, nil
}

// GetTask fetches one of the caller's tasks by id.
func (s *Session) GetTask(ctx context.Context, id string) (TaskResponse, error) {
	var resp TaskResponse
	if err := s.client.doJSON(ctx, http.MethodGet, "/v1/tasks/"+id, nil, s.token, &resp); err != nil {
		return TaskResponse{}, err
	}
	return resp, nil
}

// UpdateTask rewrites one of the caller's tasks.
func (s *Session) UpdateTask(ctx context.Context, id string, req TaskRequest) (TaskResponse, error) {
	var resp TaskResponse
	if err := s.client.doJSON(ctx, http.MethodPut, "/v1/tasks/"+id, req, s.token, &resp); err != nil {
		return TaskResponse{}, err
	}
	return resp, nil
}

// DeleteTask removes one of the caller's tasks.
func (s *Session) DeleteTask(ctx context.Context, id string) error {
	return s.client.doJSON(ctx, http.MethodDelete, "/v1/tasks/"+id, nil, s.token, nil)
}
