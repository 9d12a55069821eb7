// Package backend wraps the remote warehouse REST API: the shared HTTP client
// with bearer-token injection, the Auth Gateway, and the user and dashboard
// endpoints.
package backend

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/waresmart/warehouse-console/internal/core/domain"
	"github.com/waresmart/warehouse-console/internal/core/ports"
	"github.com/waresmart/warehouse-console/internal/metrics"
)

const (
	DefaultTimeout = 15 * time.Second
	userAgent      = "waresmart-console/1.0"
	maxBodyBytes   = 4 << 20
)

// errorMessageFields are tried in order when reading a failure body.
var errorMessageFields = []string{"message", "Message", "error"}

// Options configures a Client.
type Options struct {
	BaseURL     string
	Timeout     time.Duration
	InsecureTLS bool
	// Tokens supplies the bearer token; nil means every request is anonymous.
	Tokens ports.TokenSource
	// HTTPClient overrides the transport entirely (tests).
	HTTPClient *http.Client
}

// Client performs JSON calls against the backend.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  ports.TokenSource
	log     zerolog.Logger
}

func NewClient(opts Options, log zerolog.Logger) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	hc := opts.HTTPClient
	if hc == nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		if opts.InsecureTLS {
			// The reference backend runs on a development certificate.
			transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
		}
		hc = &http.Client{Timeout: timeout, Transport: transport}
	}

	return &Client{
		baseURL: normalizeBaseURL(opts.BaseURL),
		http:    hc,
		tokens:  opts.Tokens,
		log:     log,
	}
}

// BaseURL returns the normalised base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Ping reports whether the backend answers HTTP at all; any status counts.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return &domain.NetworkError{Op: "ping", Err: err}
	}
	resp.Body.Close()
	return nil
}

// do sends the request and returns the body of a 2xx response. Every other
// outcome is a *domain.NetworkError.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body any) ([]byte, error) {
	start := time.Now()
	data, err := c.roundTrip(ctx, op, method, path, query, body)

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.BackendRequestDuration.WithLabelValues(op, outcome).Observe(time.Since(start).Seconds())
	return data, err
}

func (c *Client) roundTrip(ctx context.Context, op, method, path string, query url.Values, body any) ([]byte, error) {
	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s: marshal body: %w", op, err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("%s: create request: %w", op, err)
	}
	c.addHeaders(ctx, req, body != nil)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &domain.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &domain.NetworkError{Op: op, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Debug().
			Str("op", op).
			Int("status", resp.StatusCode).
			Msg("backend returned error status")
		return nil, &domain.NetworkError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(data),
		}
	}
	return data, nil
}

// addHeaders attaches the bearer token when one is stored.
func (c *Client) addHeaders(ctx context.Context, req *http.Request, hasBody bool) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens == nil {
		return
	}
	token, err := c.tokens.Token(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("token unavailable, sending anonymous request")
		return
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// decodeJSON unmarshals a 2xx body; a body that does not parse is a network
// failure from the caller's perspective.
func decodeJSON(op string, data []byte, target any) error {
	if err := json.Unmarshal(data, target); err != nil {
		return &domain.NetworkError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// errorMessage extracts a human-readable message from a failure body.
func errorMessage(data []byte) string {
	if !gjson.ValidBytes(data) {
		return ""
	}
	body := gjson.ParseBytes(data)
	for _, field := range errorMessageFields {
		if v := body.Get(field); v.Type == gjson.String && strings.TrimSpace(v.Str) != "" {
			return strings.TrimSpace(v.Str)
		}
	}
	return ""
}

func normalizeBaseURL(raw string) string {
	base := strings.TrimSpace(raw)
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "https://" + base
	}
	return strings.TrimRight(base, "/")
}
