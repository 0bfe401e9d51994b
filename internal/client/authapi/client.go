// Package authapi is the HTTP client for the auth service. It keeps the
// refresh cookie in a jar, exactly as a browser would, and attaches the
// bearer token to protected calls.
package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const defaultTimeout = 15 * time.Second

// Client talks to one auth service instance.
type Client struct {
	baseURL    string
	httpClient *http.Client

	// accessToken is the bearer credential for protected endpoints. The
	// refresh token never appears here; it lives in the cookie jar only.
	accessToken string
}

// Profile is the server's public view of the account.
type Profile struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Mobile    string    `json:"mobile"`
	CreatedAt time.Time `json:"createdAt"`
}

// SignupInput is the payload for account creation.
type SignupInput struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	Name            string `json:"name,omitempty"`
	Mobile          string `json:"mobile,omitempty"`
	SessionDuration string `json:"sessionDuration,omitempty"`
}

// ProfilePatch is a partial profile update; nil fields are left out of the
// request entirely.
type ProfilePatch struct {
	Name   *string `json:"name,omitempty"`
	Mobile *string `json:"mobile,omitempty"`
}

// APIError is a non-2xx response decoded from the service's error body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// New builds a client for the service at baseURL.
func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cookie jar")
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: defaultTimeout,
		},
	}, nil
}

// AccessToken returns the bearer token from the last signup, login or refresh.
func (c *Client) AccessToken() string {
	return c.accessToken
}

// Signup creates an account and stores the resulting session.
func (c *Client) Signup(ctx context.Context, input SignupInput) (string, error) {
	var body struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/signup", input, false, &body); err != nil {
		return "", err
	}
	c.accessToken = body.Token

	return body.Token, nil
}

// Login authenticates and stores the resulting session.
func (c *Client) Login(ctx context.Context, email, password, sessionDuration string) (string, error) {
	payload := map[string]string{
		"email":    email,
		"password": password,
	}
	if sessionDuration != "" {
		payload["sessionDuration"] = sessionDuration
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", payload, false, &body); err != nil {
		return "", err
	}
	c.accessToken = body.Token

	return body.Token, nil
}

// Refresh exchanges the refresh cookie for a new access token.
func (c *Client) Refresh(ctx context.Context) (string, error) {
	var body struct {
		AccessToken string `json:"accessToken"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/refresh-token", nil, false, &body); err != nil {
		return "", err
	}
	c.accessToken = body.AccessToken

	return body.AccessToken, nil
}

// Logout clears the server-side cookie and drops the local session.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, false, nil); err != nil {
		return err
	}
	c.accessToken = ""

	return nil
}

// GetProfile fetches the authenticated account's profile.
func (c *Client) GetProfile(ctx context.Context) (*Profile, error) {
	var profile Profile
	if err := c.do(ctx, http.MethodGet, "/api/user/profile", nil, true, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// UpdateProfile applies a partial update and returns the resulting profile.
func (c *Client) UpdateProfile(ctx context.Context, patch ProfilePatch) (*Profile, error) {
	var profile Profile
	if err := c.do(ctx, http.MethodPatch, "/api/user/profile", patch, true, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// Get performs an authenticated GET against any service path and returns the
// raw JSON. The analytics surface (dashboard, portfolio, news) only needs the
// bearer token passed through; its payloads are opaque to this client.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	if len(query) > 0 {
		path = path + "?" + query.Encode()
	}

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, nil, true, &raw); err != nil {
		return nil, err
	}

	return raw, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any, authed bool, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed && c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s failed", method, path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeAPIError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(err, "failed to decode response body")
	}

	return nil
}

func decodeAPIError(status int, data []byte) error {
	var body struct {
		Error string `json:"error"`
	}
	message := http.StatusText(status)
	if err := json.Unmarshal(data, &body); err == nil && body.Error != "" {
		message = body.Error
	}

	return &APIError{StatusCode: status, Message: message}
}
