// Package gateway wraps the remote catalog service's REST surface. It is
// pure request/response: no local state, no caching, and no retries. One
// request per invocation, with failures surfaced immediately to the caller.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/attidev/storefront/internal/catalog"
)

// AuthUser is the session payload returned by the auth endpoints.
type AuthUser struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Gender       string `json:"gender"`
	Image        string `json:"image"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// DeleteResult is the remote service's answer to a delete request. The
// service is not required to persist the deletion, so callers still hide the
// product client-side regardless of IsDeleted.
type DeleteResult struct {
	IsDeleted bool `json:"isDeleted"`
	ID        int  `json:"id"`
}

// Client talks to the remote catalog service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a gateway client for the service at baseURL. The timeout
// bounds each individual request.
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With("component", "gateway"),
	}
}

// Login exchanges credentials for a session payload via POST /auth/login.
func (c *Client) Login(ctx context.Context, username, password string, expiresInMins int) (*AuthUser, error) {
	body := map[string]any{
		"username":      username,
		"password":      password,
		"expiresInMins": expiresInMins,
	}
	var user AuthUser
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &user); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return &user, nil
}

// Me returns the session payload for the given token via GET /auth/me.
func (c *Client) Me(ctx context.Context, token string) (*AuthUser, error) {
	var user AuthUser
	if err := c.do(ctx, http.MethodGet, "/auth/me", token, nil, &user); err != nil {
		return nil, fmt.Errorf("failed to fetch current user: %w", err)
	}
	return &user, nil
}

// FetchPage retrieves one page of catalog products. With a non-empty query
// it calls the server-side search endpoint, otherwise the plain listing.
// The returned page carries the remote total count for the active query.
func (c *Client) FetchPage(ctx context.Context, limit, skip int, query string) (*catalog.Page, error) {
	path := "/products"
	params := url.Values{}
	if query != "" {
		path = "/products/search"
		params.Set("q", query)
	}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("skip", strconv.Itoa(skip))

	var page catalog.Page
	if err := c.do(ctx, http.MethodGet, path+"?"+params.Encode(), "", nil, &page); err != nil {
		return nil, fmt.Errorf("failed to fetch product page: %w", err)
	}
	return &page, nil
}

// Create validates the draft and submits it via POST /products/add. An
// invalid draft is rejected before any request goes out. Creation is not
// idempotent: repeating the call creates a duplicate remote product.
func (c *Client) Create(ctx context.Context, draft catalog.Draft) (*catalog.Product, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	var product catalog.Product
	if err := c.do(ctx, http.MethodPost, "/products/add", "", draft, &product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

// Delete asks the remote service to delete a product via DELETE
// /products/{id}.
func (c *Client) Delete(ctx context.Context, id int) (*DeleteResult, error) {
	var result DeleteResult
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), "", nil, &result); err != nil {
		return nil, fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	return &result, nil
}

// do performs a single JSON request/response cycle. Non-2xx responses become
// an *APIError carrying the server message when the body has one.
func (c *Client) do(ctx context.Context, method, path, token string, body, target any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.DebugContext(ctx, "Request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", float64(time.Since(start).Nanoseconds())/1e6,
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.apiError(resp)
	}
	if target == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) apiError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		if payload.Message != "" {
			apiErr.Message = payload.Message
		} else {
			apiErr.Message = payload.Error
		}
	}
	return apiErr
}
