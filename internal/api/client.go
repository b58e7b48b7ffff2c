// Package api is the typed client of the repair-shop REST backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/klikphone/sav-portal/internal/session"
)

type Client struct {
	BaseURL string
	Gate    *session.Gate
	Client  *http.Client
	Logger  zerolog.Logger
}

func New(baseURL string, gate *session.Gate, timeout time.Duration, logger zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Gate:    gate,
		Client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		Logger: logger,
	}
}

type call struct {
	method string
	path   string
	query  url.Values
	body   any
	out    any
	// login calls report 401 as bad credentials instead of forcing a logout.
	login bool
}

type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

func (c *Client) do(ctx context.Context, cl call) error {
	if c.Client == nil {
		c.Client = &http.Client{Timeout: 30 * time.Second}
	}

	endpoint := c.BaseURL + cl.path
	if len(cl.query) > 0 {
		endpoint += "?" + cl.query.Encode()
	}

	var body io.Reader
	if cl.body != nil {
		b, err := json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", cl.method, cl.path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, endpoint, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.Gate != nil {
		if token := c.Gate.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if cl.login {
			return ErrInvalidCredentials
		}
		c.Logger.Warn().Str("method", cl.method).Str("path", cl.path).Msg("backend rejected credential, logging out")
		if c.Gate != nil {
			if err := c.Gate.ForceLogout(context.WithoutCancel(ctx)); err != nil {
				c.Logger.Error().Err(err).Msg("failed to clear session")
			}
		}
		return ErrUnauthenticated
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, readDetail(resp.Body))
	}

	if resp.StatusCode == http.StatusNoContent || cl.out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(cl.out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode %s %s: %w", cl.method, cl.path, err)
	}
	return nil
}

// readDetail extracts a string "detail" field; anything else yields "".
func readDetail(r io.Reader) string {
	var eb errorBody
	if err := json.NewDecoder(r).Decode(&eb); err != nil || len(eb.Detail) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(eb.Detail, &s); err != nil {
		return ""
	}
	return s
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, call{method: http.MethodGet, path: path, query: query, out: out})
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, call{method: http.MethodPost, path: path, body: body, out: out})
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, call{method: http.MethodPatch, path: path, body: body, out: out})
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, call{method: http.MethodPut, path: path, body: body, out: out})
}

func (c *Client) delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, call{method: http.MethodDelete, path: path, out: out})
}

func values(pairs ...string) url.Values {
	v := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] != "" {
			v.Set(pairs[i], pairs[i+1])
		}
	}
	return v
}
