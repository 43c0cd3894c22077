package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/shortling/shortling/pkg/core/domain"
)

const (
	loginPath       = "/api/auth/public/login"
	registerPath    = "/api/auth/public/register"
	shortenPath     = "/api/urls/shorten"
	myURLsPath      = "/api/urls/myurls"
	analyticsPath   = "/api/urls/analytics/"
	totalClicksPath = "/api/urls/totalclicks"
)

// Client talks to the URL-shortener backend. It keeps no session state of its
// own; the bearer token is supplied per call. Nothing is retried and an
// expired token is not refreshed, it just comes back as an *APIError.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// APIError is any non-2xx response. Message carries the backend's "message"
// payload field when one was present, otherwise it is empty and the caller
// falls back to its own generic text.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: unexpected status %d", e.StatusCode)
}

// UserMessage is the backend-provided text fit to show the user, empty when
// the response carried none.
func (e *APIError) UserMessage() string {
	return e.Message
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type shortenRequest struct {
	OriginalURL string `json:"originalUrl"`
}

// Login exchanges credentials for a bearer token. The backend echoes only the
// token, not the identity.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, loginPath, "", nil, loginRequest{
		Username: creds.Username,
		Password: creds.Password,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Register creates an account. The success payload is opaque and discarded;
// registration does not log the user in.
func (c *Client) Register(ctx context.Context, profile domain.Profile) error {
	return c.do(ctx, http.MethodPost, registerPath, "", nil, registerRequest{
		Username: profile.Username,
		Email:    profile.Email,
		Password: profile.Password,
	}, nil)
}

func (c *Client) CreateShortURL(ctx context.Context, token, originalURL string) (*domain.Link, error) {
	var link domain.Link
	err := c.do(ctx, http.MethodPost, shortenPath, token, nil, shortenRequest{OriginalURL: originalURL}, &link)
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// ListMyURLs returns the caller's links in server-defined order.
func (c *Client) ListMyURLs(ctx context.Context, token string) ([]domain.Link, error) {
	var links []domain.Link
	if err := c.do(ctx, http.MethodGet, myURLsPath, token, nil, nil, &links); err != nil {
		return nil, err
	}
	return links, nil
}

// GetURLAnalytics fetches per-day clicks for one short URL. This endpoint
// binds datetimes, so the date range is widened to whole days.
func (c *Client) GetURLAnalytics(ctx context.Context, token, shortURL string, start, end time.Time) ([]domain.ClickEvent, error) {
	q := url.Values{}
	q.Set("startDate", start.Format("2006-01-02")+"T00:00:00")
	q.Set("endDate", end.Format("2006-01-02")+"T23:59:59")

	var events []domain.ClickEvent
	err := c.do(ctx, http.MethodGet, analyticsPath+url.PathEscape(shortURL), token, q, nil, &events)
	if err != nil {
		return nil, err
	}
	return events, nil
}

// GetTotalClicks fetches the caller's clicks across all links, keyed by
// yyyy-MM-dd date string. Days without clicks are absent from the map.
func (c *Client) GetTotalClicks(ctx context.Context, token string, start, end time.Time) (map[string]int64, error) {
	q := url.Values{}
	q.Set("startDate", start.Format("2006-01-02"))
	q.Set("endDate", end.Format("2006-01-02"))

	clicks := map[string]int64{}
	if err := c.do(ctx, http.MethodGet, totalClicksPath, token, q, nil, &clicks); err != nil {
		return nil, err
	}
	return clicks, nil
}

// do performs one JSON exchange. body and out may each be nil.
func (c *Client) do(ctx context.Context, method, path, token string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: decodeErrorMessage(resp.Body)}
		c.logger.Debug("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeErrorMessage pulls the "message" field out of an error payload. The
// backend is not consistent here (some handlers return plain text), so any
// decode failure just yields an empty message.
func decodeErrorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 8<<10))
	if err != nil {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	return payload.Message
}
