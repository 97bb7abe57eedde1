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
)

// HTTPClient matches the subset of http.Client used by Client.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Client performs requests against the backend storefront API and maps every
// outcome into the Result/APIError shape. It is the only piece of the
// repository that touches the network.
type Client struct {
	base   *url.URL
	client HTTPClient
}

// NewClient constructs a Client for the given base URL. A nil httpClient
// falls back to http.DefaultClient.
func NewClient(baseURL string, httpClient HTTPClient) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("api: base URL is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("api: parse base URL: %w", err)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{base: parsed, client: httpClient}, nil
}

// GetJSON issues a GET request and decodes the 2xx response body into T.
func GetJSON[T any](ctx context.Context, c *Client, endpoint string) Result[T] {
	req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Err[T](NewError(err.Error(), 0))
	}
	return do[T](c, req)
}

// PostJSON issues a POST request with a JSON payload and decodes the 2xx
// response body into T.
func PostJSON[T any](ctx context.Context, c *Client, endpoint string, payload any) Result[T] {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return Err[T](NewError(fmt.Sprintf("api: encode payload: %v", err), 0))
	}
	req, err := c.newRequest(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return Err[T](NewError(err.Error(), 0))
	}
	req.Header.Set("Content-Type", "application/json")
	return do[T](c, req)
}

// Post issues a bodyless POST request for endpoints that respond with no
// payload (for example order cancellation).
func Post(ctx context.Context, c *Client, endpoint string) Result[struct{}] {
	req, err := c.newRequest(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return Err[struct{}](NewError(err.Error(), 0))
	}
	return do[struct{}](c, req)
}

func do[T any](c *Client, req *http.Request) Result[T] {
	resp, err := c.client.Do(req)
	if err != nil {
		return Err[T](NewError(fmt.Sprintf("Network error: %v", err), 0))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var payload T
		if resp.StatusCode == http.StatusNoContent {
			return Ok(payload)
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return Err[T](NewError(fmt.Sprintf("An unexpected error occurred. (Status: %d)", resp.StatusCode), resp.StatusCode))
		}
		return Ok(payload)
	}

	return Err[T](errorFromResponse(resp))
}

// problemDetail is the RFC 7807 style body the backend returns on rejection.
type problemDetail struct {
	Detail string `json:"detail"`
	Errors []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

func errorFromResponse(resp *http.Response) *APIError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var problem problemDetail
	if len(body) > 0 {
		if err := json.Unmarshal(body, &problem); err == nil && problem.Detail != "" {
			apiErr := NewError(problem.Detail, resp.StatusCode)
			for _, fe := range problem.Errors {
				apiErr.FieldErrors = append(apiErr.FieldErrors, fe.Field+": "+fe.Message)
			}
			return apiErr
		}
	}
	return NewError(fmt.Sprintf("An unexpected error occurred. (Status: %d)", resp.StatusCode), resp.StatusCode)
}

func (c *Client) newRequest(ctx context.Context, method, endpoint string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.resolve(endpoint), body)
	if err != nil {
		return nil, fmt.Errorf("api: build request: %w", err)
	}
	return req, nil
}

func (c *Client) resolve(endpoint string) string {
	if endpoint == "" {
		return c.base.String()
	}
	ref, err := url.Parse(endpoint)
	if err != nil {
		return c.base.String()
	}
	resolved := *c.base
	resolved.Path = strings.TrimSuffix(c.base.Path, "/") + "/" + strings.TrimPrefix(ref.Path, "/")
	resolved.RawQuery = ref.RawQuery
	return resolved.String()
}
