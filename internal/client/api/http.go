package api

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

	"github.com/google/uuid"

	"hacksnooze/internal/client/models"
)

// HTTPClient is the REST implementation of Client.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
}

// NewHTTPClient builds a client for the service at baseURL. The timeout
// bounds each individual request; there is no retry on top of it.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
	}
}

// errorBody is the error envelope some endpoints return. Decoding it is
// best-effort; unknown shapes fall back to the raw body text.
type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// do issues one request and decodes a 2xx response body into out (skipped
// when out is nil). Non-2xx responses become a *StatusError; failures before
// an HTTP response wrap ErrUnavailable; undecodable 2xx bodies wrap
// ErrBadResponse.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s %s request: %w", method, path, err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("building %s %s request: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading %s %s response: %v", ErrBadResponse, method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, Message: errorMessage(raw)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decoding %s %s response: %v", ErrBadResponse, method, path, err)
	}
	return nil
}

func errorMessage(raw []byte) string {
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err == nil && eb.Error.Message != "" {
		return eb.Error.Message
	}
	msg := strings.TrimSpace(string(raw))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}

// validateStory rejects records the rest of the client cannot work with.
func validateStory(s models.Story) error {
	if s.StoryID == "" {
		return fmt.Errorf("%w: story record without storyId", ErrBadResponse)
	}
	if s.Username == "" {
		return fmt.Errorf("%w: story %s without username", ErrBadResponse, s.StoryID)
	}
	return nil
}

func validateStories(stories []models.Story) error {
	for _, s := range stories {
		if err := validateStory(s); err != nil {
			return err
		}
	}
	return nil
}

func validateUser(u UserRecord) error {
	if u.Username == "" {
		return fmt.Errorf("%w: user record without username", ErrBadResponse)
	}
	if err := validateStories(u.Favorites); err != nil {
		return err
	}
	return validateStories(u.Stories)
}

// ListStories fetches the full story collection. No auth, no pagination.
func (c *HTTPClient) ListStories(ctx context.Context) ([]models.Story, error) {
	var resp struct {
		Stories []models.Story `json:"stories"`
	}
	if err := c.do(ctx, http.MethodGet, "/stories", nil, nil, &resp); err != nil {
		return nil, err
	}
	if err := validateStories(resp.Stories); err != nil {
		return nil, err
	}
	return resp.Stories, nil
}

// CreateStory submits a draft and returns the server-assigned story.
func (c *HTTPClient) CreateStory(ctx context.Context, token string, draft StoryDraft) (models.Story, error) {
	req := struct {
		Token string     `json:"token"`
		Story StoryDraft `json:"story"`
	}{Token: token, Story: draft}

	var resp struct {
		Story models.Story `json:"story"`
	}
	if err := c.do(ctx, http.MethodPost, "/stories", nil, req, &resp); err != nil {
		return models.Story{}, err
	}
	if err := validateStory(resp.Story); err != nil {
		return models.Story{}, err
	}
	return resp.Story, nil
}

// DeleteStory deletes a story by id. The token travels as a query parameter;
// that is the service's contract for this endpoint.
func (c *HTTPClient) DeleteStory(ctx context.Context, token, storyID string) error {
	q := url.Values{"token": {token}}
	return c.do(ctx, http.MethodDelete, "/stories/"+url.PathEscape(storyID), q, nil, nil)
}

// Signup registers a new account and returns the user plus a session token.
func (c *HTTPClient) Signup(ctx context.Context, username, password, name string) (*AuthResult, error) {
	req := struct {
		User struct {
			Username string `json:"username"`
			Password string `json:"password"`
			Name     string `json:"name"`
		} `json:"user"`
	}{}
	req.User.Username = username
	req.User.Password = password
	req.User.Name = name

	return c.auth(ctx, "/signup", req)
}

// Login authenticates an existing account.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	req := struct {
		User struct {
			Username string `json:"username"`
			Password string `json:"password"`
		} `json:"user"`
	}{}
	req.User.Username = username
	req.User.Password = password

	return c.auth(ctx, "/login", req)
}

func (c *HTTPClient) auth(ctx context.Context, path string, req any) (*AuthResult, error) {
	var resp struct {
		User  UserRecord `json:"user"`
		Token string     `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, path, nil, req, &resp); err != nil {
		return nil, err
	}
	if err := validateUser(resp.User); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("%w: auth response without token", ErrBadResponse)
	}
	return &AuthResult{User: resp.User, Token: resp.Token}, nil
}

// CurrentUser fetches the user record for a previously issued token.
func (c *HTTPClient) CurrentUser(ctx context.Context, token, username string) (*UserRecord, error) {
	q := url.Values{"token": {token}}
	var resp struct {
		User UserRecord `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(username), q, nil, &resp); err != nil {
		return nil, err
	}
	if err := validateUser(resp.User); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

type tokenBody struct {
	Token string `json:"token"`
}

// AddFavorite marks a story as a favorite of the user. Idempotent on the
// server side.
func (c *HTTPClient) AddFavorite(ctx context.Context, token, username, storyID string) error {
	path := "/users/" + url.PathEscape(username) + "/favorites/" + url.PathEscape(storyID)
	return c.do(ctx, http.MethodPost, path, nil, tokenBody{Token: token}, nil)
}

// RemoveFavorite clears a favorite marking.
func (c *HTTPClient) RemoveFavorite(ctx context.Context, token, username, storyID string) error {
	path := "/users/" + url.PathEscape(username) + "/favorites/" + url.PathEscape(storyID)
	return c.do(ctx, http.MethodDelete, path, nil, tokenBody{Token: token}, nil)
}
