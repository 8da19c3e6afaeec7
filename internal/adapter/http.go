package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"jobsweep/internal/model"
)

// DefaultUserAgent identifies us to provider endpoints.
const DefaultUserAgent = "jobsweep/1.0"

// Client issues JSON requests against provider endpoints with fixed
// identifying headers. A non-2xx status surfaces as *model.HTTPError.
type Client struct {
	http      *http.Client
	userAgent string
}

// NewClient wraps an http.Client. An empty userAgent falls back to
// DefaultUserAgent. The caller owns the http.Client's timeout.
func NewClient(httpClient *http.Client, userAgent string) *Client {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Client{http: httpClient, userAgent: userAgent}
}

// GetJSON issues a GET with the given query parameters and decodes the
// JSON response body into v.
func (c *Client) GetJSON(ctx context.Context, rawURL string, query url.Values, v any) error {
	if len(query) > 0 {
		rawURL = rawURL + "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	return c.do(req, v)
}

// PostJSON issues a POST with a JSON-encoded body and decodes the JSON
// response body into v.
func (c *Client) PostJSON(ctx context.Context, rawURL string, body any, v any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, v)
}

func (c *Client) do(req *http.Request, v any) error {
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &model.HTTPError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%s %s", req.Method, req.URL.Host),
		}
	}

	return json.NewDecoder(resp.Body).Decode(v)
}
