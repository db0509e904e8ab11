package tasksdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the taskboard service. It exposes the
// unauthenticated operations and creates authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a taskboard client against the given base URL.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SignUp registers a new account and returns the signed-in session.
func (c *SDKClient) SignUp(ctx context.Context, name, email, password string) (*Session, error) {
	var resp SessionResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/auth/signup", SignUpRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}, "", &resp)
	if err != nil {
		return nil, err
	}
	return newSession(c, resp), nil
}

// SignIn authenticates existing credentials and returns a session.
func (c *SDKClient) SignIn(ctx context.Context, email, password string) (*Session, error) {
	var resp SessionResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/auth/signin", SignInRequest{
		Email:    email,
		Password: password,
	}, "", &resp)
	if err != nil {
		return nil, err
	}
	return newSession(c, resp), nil
}

// JWKS fetches the server's public key set.
func (c *SDKClient) JWKS(ctx context.Context) (JWKSResponse, error) {
	var resp JWKSResponse
	if err := c.doJSON(ctx, http.MethodGet, "/.well-known/jwks.json", nil, "", &resp); err != nil {
		return JWKSResponse{}, err
	}
	return resp, nil
}

// Livez fetches the liveness probe.
func (c *SDKClient) Livez(ctx context.Context) (HealthResponse, error) {
	var resp HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/livez", nil, "", &resp); err != nil {
		return HealthResponse{}, err
	}
	return resp, nil
}

func (c *SDKClient) url(path string) string {
	return c.BaseURL + path
}

// doJSON performs a request with an optional JSON body and bearer token,
// decoding a success body into out and error bodies into *APIError.
func (c *SDKClient) doJSON(ctx context.Context, method, path string, body any, token string, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return parseAPIError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func parseAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
		apiErr.Code = ErrorCodeServerError
		apiErr.Description = fmt.Sprintf("unexpected status %d", resp.StatusCode)
	}
	return apiErr
}
