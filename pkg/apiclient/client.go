// Package apiclient is a typed HTTP client for the back-office API. The
// client controllers use it for all network access; it decodes the response
// envelope and turns {ok:false, message} failures into errors.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gdcworld/clinic-backoffice/internal/core/domain"
)

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// SetToken stores the bearer token attached to subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// APIError is a failure envelope returned by the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
}

type envelope struct {
	OK      bool            `json:"ok"`
	Message string          `json:"message"`
	Token   string          `json:"token"`
	User    json.RawMessage `json:"user"`
	Item    json.RawMessage `json:"item"`
	Items   json.RawMessage `json:"items"`
}

func (c *Client) do(ctx context.Context, method, path string, body any, query url.Values) (*envelope, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if !env.OK {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
	return &env, nil
}

// SessionUser is the slim account view returned by Login.
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Login authenticates and stores the returned token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*SessionUser, error) {
	env, err := c.do(ctx, http.MethodPost, "/login", map[string]string{
		"email":    email,
		"password": password,
	}, nil)
	if err != nil {
		return nil, err
	}

	var user SessionUser
	if err := json.Unmarshal(env.User, &user); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	c.token = env.Token
	return &user, nil
}

// Roles returns the current valid role set.
func (c *Client) Roles(ctx context.Context) ([]string, error) {
	env, err := c.do(ctx, http.MethodGet, "/roles", nil, nil)
	if err != nil {
		return nil, err
	}
	var items []string
	if err := json.Unmarshal(env.Items, &items); err != nil {
		return nil, fmt.Errorf("decode roles: %w", err)
	}
	return items, nil
}

// ListAccounts fetches accounts, optionally filtered by role.
func (c *Client) ListAccounts(ctx context.Context, role string) ([]domain.Account, error) {
	var query url.Values
	if role != "" {
		query = url.Values{"role": {role}}
	}
	env, err := c.do(ctx, http.MethodGet, "/accounts", nil, query)
	if err != nil {
		return nil, err
	}
	var items []domain.Account
	if err := json.Unmarshal(env.Items, &items); err != nil {
		return nil, fmt.Errorf("decode accounts: %w", err)
	}
	return items, nil
}

// CreateAccount posts a new account payload as-is.
func (c *Client) CreateAccount(ctx context.Context, payload map[string]any) (*domain.Account, error) {
	env, err := c.do(ctx, http.MethodPost, "/accounts", payload, nil)
	if err != nil {
		return nil, err
	}
	return decodeAccount(env.Item)
}

// UpdateAccount patches an account; only the supplied fields change.
func (c *Client) UpdateAccount(ctx context.Context, id string, patch map[string]any) (*domain.Account, error) {
	body := map[string]any{"id": id}
	for k, v := range patch {
		body[k] = v
	}
	env, err := c.do(ctx, http.MethodPatch, "/accounts", body, nil)
	if err != nil {
		return nil, err
	}
	return decodeAccount(env.Item)
}

// DeleteAccount removes an account by id.
func (c *Client) DeleteAccount(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/accounts", map[string]string{"id": id}, nil)
	return err
}

func decodeAccount(raw json.RawMessage) (*domain.Account, error) {
	var item domain.Account
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("decode account: %w", err)
	}
	return &item, nil
}
