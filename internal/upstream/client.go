// Package upstream is the HTTP client for the public-finance data API
// and the Q&A service. Both are consumed as black boxes: one typed
// operation per endpoint, no retries, failures surfaced immediately.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

// Client issues requests against a fixed base URL.
//
// The base URL is injected at construction time, never resolved from
// the environment at call sites, so tests can point a Client at a stub
// server.
type Client struct {
	base string
	http *http.Client
}

// New returns a Client for the given base URL.
func New(base string) *Client {
	return &Client{
		base: strings.TrimSuffix(base, "/"),
		http: &http.Client{},
	}
}

// get fetches path and decodes the response into target.
func (c *Client) get(ctx context.Context, path string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}

	return c.do(req, target)
}

// post sends body as JSON to path and decodes the response into target.
func (c *Client) post(ctx context.Context, path string, body, target any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, target)
}

func (c *Client) do(req *http.Request, target any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		log.Debug().Str("url", req.URL.String()).Err(err).Msg("upstream request failed")
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newRequestError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) || errors.Is(err, io.EOF) {
			return ErrEmptyPayload
		}
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}

	return nil
}

// newRequestError builds a RequestError from a non-2xx response,
// carrying a bounded excerpt of the body. When the body is a structured
// error with a "detail" field, that message is preferred over the raw
// excerpt since it is written for end users.
func newRequestError(resp *http.Response) *RequestError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, bodyExcerptLimit+1))

	var structured struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &structured); err == nil && structured.Detail != "" {
		return &RequestError{Status: resp.StatusCode, Excerpt: structured.Detail}
	}

	return &RequestError{Status: resp.StatusCode, Excerpt: excerpt(body)}
}
