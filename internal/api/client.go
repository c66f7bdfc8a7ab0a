package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

const refreshPath = "/api/auth/refresh"

// Endpoints that may legitimately answer 401 during normal use. A 401 from
// one of these is a real error, not an expired session, so no refresh is
// attempted.
var refreshSkip = map[string]struct{}{
	"/api/auth/login":           {},
	"/api/auth/register":        {},
	"/api/auth/forgot-password": {},
	"/api/auth/reset-password":  {},
	refreshPath:                 {},
}

// Client issues authenticated requests against the recipe service.
//
// Credentials ride on the cookie jar of the underlying http.Client; the
// refresh endpoint rotates the session cookie as a side effect of a
// successful call. Each instance owns its refresh coordination, so a single
// Client should be shared per process.
type Client struct {
	base    string
	http    *http.Client
	log     *slog.Logger
	limiter *rate.Limiter
	refresh singleflight.Group
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying http.Client. It should carry a cookie
// jar, otherwise the session cannot persist.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the logger for per-request debug lines.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithRateLimit throttles outbound requests.
func WithRateLimit(l *rate.Limiter) Option {
	return func(c *Client) { c.limiter = l }
}

// New returns a Client for the service at base, e.g. "https://api.example.com".
func New(base string, opts ...Option) *Client {
	c := &Client{
		base: strings.TrimRight(base, "/"),
		http: http.DefaultClient,
		log:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// request is one logical call, held as encoded bytes so a retry after
// refresh can replay the exact same body.
type request struct {
	method      string
	path        string
	id          string
	query       url.Values
	body        []byte
	contentType string
	out         any
}

// RequestOption configures a single request issued through Do.
type RequestOption func(*request) error

// WithJSON sets a JSON-encoded request body.
func WithJSON(v any) RequestOption {
	return func(r *request) error {
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		r.body = b
		r.contentType = "application/json"
		return nil
	}
}

// WithForm sets a multipart/form-data request body. The content type comes
// from the multipart writer so the boundary is preserved.
func WithForm(f *Form) RequestOption {
	return func(r *request) error {
		b, ct, err := f.encode()
		if err != nil {
			return err
		}
		r.body = b
		r.contentType = ct
		return nil
	}
}

// WithQuery sets the request's query string.
func WithQuery(q url.Values) RequestOption {
	return func(r *request) error {
		r.query = q
		return nil
	}
}

// WithOut sets the destination the response body is decoded into. Empty and
// non-JSON bodies leave the destination untouched.
func WithOut(out any) RequestOption {
	return func(r *request) error {
		r.out = out
		return nil
	}
}

// Do issues method path against the service and decodes the response.
//
// A 401 on a non-skip-listed path triggers exactly one session refresh
// (shared across concurrent callers) followed by one retry of the original
// request. A second 401 is terminal. Non-2xx responses come back as
// *APIError; a failed refresh comes back as ErrSessionExpired.
func (c *Client) Do(ctx context.Context, method, path string, opts ...RequestOption) error {
	r := &request{method: method, path: path, id: uuid.NewString()}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return err
		}
	}

	resp, err := c.send(ctx, r)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if _, skip := refreshSkip[path]; !skip {
			drain(resp)
			if err := c.refreshSession(ctx); err != nil {
				return err
			}
			// One retry with the identical request; a second 401 falls
			// through to error normalisation below.
			if resp, err = c.send(ctx, r); err != nil {
				return err
			}
		}
	}

	return c.finish(r, resp)
}

// send performs one attempt of r. The caller owns the response body.
func (c *Client) send(ctx context.Context, r *request) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	u := c.base + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}
	var body io.Reader
	if r.body != nil {
		body = bytes.NewReader(r.body)
	}
	req, err := http.NewRequestWithContext(ctx, r.method, u, body)
	if err != nil {
		return nil, err
	}
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", r.id)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	c.log.DebugContext(ctx, "api request",
		"method", r.method,
		"path", r.path,
		"status", resp.StatusCode,
		"request_id", r.id,
	)
	return resp, nil
}

// refreshSession rotates the session cookie via POST /api/auth/refresh.
//
// Concurrent callers are coalesced through a singleflight group: only one
// refresh call goes out, and every waiter shares its outcome. On failure
// every waiter gets ErrSessionExpired.
func (c *Client) refreshSession(ctx context.Context) error {
	_, err, shared := c.refresh.Do(refreshPath, func() (any, error) {
		r := &request{method: http.MethodPost, path: refreshPath, id: uuid.NewString()}
		resp, err := c.send(ctx, r)
		if err != nil {
			return nil, err
		}
		defer drain(resp)
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, decodeError(resp)
		}
		return nil, nil
	})
	if err != nil {
		c.log.DebugContext(ctx, "session refresh failed", "error", err, "shared", shared)
		return ErrSessionExpired
	}
	return nil
}

// finish normalises errors and decodes a successful body into r.out.
func (c *Client) finish(r *request, resp *http.Response) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}
	if r.out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if mt, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type")); mt != "application/json" {
		return nil
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return nil
	}
	return json.Unmarshal(b, r.out)
}

// drain discards and closes a response body so the connection can be reused.
func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
