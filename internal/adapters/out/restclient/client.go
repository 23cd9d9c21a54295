// Package restclient is the JSON-over-HTTP plumbing shared by the outbound
// service clients. Every failure it returns wraps errs.ErrDependencyUnavailable
// and names the remote service.
package restclient

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

	"ordermanagement/internal/pkg/errs"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DefaultTimeout = 5 * time.Second

	maxErrorBody = 512
)

// Client talks to one remote service rooted at baseURL.
type Client struct {
	service string
	baseURL string
	http    *http.Client
}

// New builds a client whose calls time out after timeout (DefaultTimeout when
// zero or negative) and emit a client span each.
func New(service, baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		service: service,
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// Service is the name used in errors and spans.
func (c *Client) Service() string {
	return c.service
}

// GetJSON issues GET {baseURL}/{path...} and decodes a 2xx body into out.
func (c *Client) GetJSON(ctx context.Context, out any, path ...string) error {
	return c.do(ctx, http.MethodGet, nil, nil, out, path...)
}

// PostJSON issues POST {baseURL}/{path...} with in as the JSON body and decodes
// a 2xx body into out.
func (c *Client) PostJSON(ctx context.Context, headers http.Header, in, out any, path ...string) error {
	return c.do(ctx, http.MethodPost, headers, in, out, path...)
}

func (c *Client) do(ctx context.Context, method string, headers http.Header, in, out any, path ...string) error {
	endpoint, err := url.JoinPath(c.baseURL, path...)
	if err != nil {
		return c.Unavailable(fmt.Errorf("build url: %w", err))
	}

	var body io.Reader
	if in != nil {
		payload, marshalErr := json.Marshal(in)
		if marshalErr != nil {
			return c.Unavailable(fmt.Errorf("encode request: %w", marshalErr))
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return c.Unavailable(fmt.Errorf("create request: %w", err))
	}
	for key, values := range headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return c.Unavailable(fmt.Errorf("%s %s: %w", method, endpoint, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.Unavailable(fmt.Errorf("%s %s: unexpected status %d: %s",
			method, endpoint, resp.StatusCode, drain(resp.Body)))
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return c.Unavailable(fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// Unavailable wraps cause as a failure of this client's service.
func (c *Client) Unavailable(cause error) error {
	return errs.NewDependencyUnavailableErrorWithCause(c.service, cause)
}

func drain(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, maxErrorBody))
	return strings.TrimSpace(string(b))
}
