// Package api is the gateway to the Inkpress REST backend. It attaches the
// bearer credential when one is available, performs the HTTP call, and
// translates every failure mode into a normalized *Error value so consumers
// never need exception-style control flow to display a problem.
//
// Policy decisions baked in here:
//   - Token expiry is checked proactively before every authenticated call;
//     a backend 401 is handled as a backstop either way.
//   - A 401 (or a locally detected expiry) purges the stored session and
//     raises the session-expired callback. Navigation is the consumer's
//     business; the gateway only signals.
//   - No retries anywhere. Every failure is surfaced exactly once.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/inkpress/inkcli/internal/client/session"
	"github.com/inkpress/inkcli/internal/common"
	"github.com/inkpress/inkcli/internal/logging"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://localhost:5000/api"

const defaultTimeout = 30 * time.Second

// Client performs calls against the backend REST surface.
type Client struct {
	baseURL          string
	httpClient       *http.Client
	session          *session.Manager
	log              logging.Logger
	onSessionExpired func()
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the HTTP timeout on the underlying transport.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithOnSessionExpired registers the callback raised when the session is
// invalidated, locally or by a 401. The UI layer uses it to route the user
// back to the login screen.
func WithOnSessionExpired(fn func()) Option {
	return func(c *Client) { c.onSessionExpired = fn }
}

// New builds a Client for the backend at baseURL.
func New(baseURL string, sess *session.Manager, log logging.Logger, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		session:    sess,
		log:        log,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// expireSession purges the stored credentials and signals the consumer.
func (c *Client) expireSession(ctx context.Context) {
	c.session.ClearAuthData(ctx)
	if c.onSessionExpired != nil {
		c.onSessionExpired()
	}
}

// authToken returns a usable bearer token or the session-expired error.
// An expired (or absent) token purges storage before returning.
func (c *Client) authToken(ctx context.Context) (string, error) {
	token := c.session.Token(ctx)
	if c.session.IsTokenExpired(token) {
		c.log.Debug(ctx, "token expired before request, clearing auth data")
		c.expireSession(ctx)
		return "", sessionExpiredError()
	}
	return token, nil
}

// doJSON performs a JSON request and decodes a 2xx body into out (when out is
// non-nil). authed selects the proactive credential check and bearer header.
func (c *Client) doJSON(ctx context.Context, method, path string, payload, out any, authed bool) error {
	var token string
	if authed {
		var err error
		if token, err = c.authToken(ctx); err != nil {
			return err
		}
	}

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return validationError(fmt.Sprintf("cannot encode request: %v", err))
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return validationError(fmt.Sprintf("cannot build request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")
	c.decorate(req, token)

	return c.send(ctx, req, out)
}

// decorate attaches the ambient headers shared by every call.
func (c *Client) decorate(req *http.Request, token string) {
	req.Header.Set(common.RequestIDHeader, uuid.NewString())
	if token != "" {
		req.Header.Set(common.AuthorizationHeader, "Bearer "+token)
	}
}

// send executes the request and normalizes the response.
func (c *Client) send(ctx context.Context, req *http.Request, out any) error {
	requestID := req.Header.Get(common.RequestIDHeader)
	c.log.Debug(ctx, "sending request", "method", req.Method, "url", req.URL.String(), "request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn(ctx, "transport failure", "url", req.URL.String(), "request_id", requestID, "error", err)
		return newError(common.ErrUnavailable, 0, fmt.Sprintf("cannot reach server: %v", err))
	}
	defer resp.Body.Close()

	return c.decodeResponse(ctx, resp, out)
}

// decodeResponse maps the response onto the error taxonomy, or decodes the
// body into out on success.
func (c *Client) decodeResponse(ctx context.Context, resp *http.Response, out any) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		c.log.Debug(ctx, "unauthorized response, clearing auth data")
		c.expireSession(ctx)
		return newError(common.ErrSessionExpired, resp.StatusCode, "Session expired. Please login again.")
	case http.StatusForbidden:
		return newError(common.ErrForbidden, resp.StatusCode, "Access forbidden. Please check your permissions.")
	case http.StatusNotFound:
		return newError(common.ErrNotFound, resp.StatusCode, "Resource not found")
	}

	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
		return newError(common.ErrUnavailable, resp.StatusCode, "Server returned non-JSON response")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return newError(common.ErrUnavailable, resp.StatusCode, fmt.Sprintf("cannot read response: %v", err))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newError(common.ErrServer, resp.StatusCode, errorMessage(body, resp.StatusCode))
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return newError(common.ErrUnavailable, resp.StatusCode, "Invalid response from server")
		}
	}
	return nil
}

// errorMessage prefers the backend's own error text, falling back to a
// status-derived message.
func errorMessage(body []byte, status int) string {
	var e struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &e); err == nil {
		if e.Error != "" {
			return e.Error
		}
		if e.Message != "" {
			return e.Message
		}
	}
	return fmt.Sprintf("request failed with status %d", status)
}
