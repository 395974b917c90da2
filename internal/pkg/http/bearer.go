package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"time"

	"github.com/earnnest/earnnest-web/internal/pkg/apierr"
	"github.com/earnnest/earnnest-web/internal/pkg/logger"
	"github.com/earnnest/earnnest-web/internal/pkg/middleware"
	nrpkg "github.com/earnnest/earnnest-web/internal/pkg/newrelic"
)

const (
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 30 * time.Second
)

// BearerClient is an HTTP client that forwards the session bearer token.
// The token is taken from the request context per call: authenticated
// sessions get authenticated upstream responses, anonymous sessions
// proceed without the header and get whatever the upstream serves publicly.
type BearerClient struct {
	client      *nethttp.Client
	baseURL     string
	serviceName string
}

// NewBearerClient creates a new HTTP client with bearer-token pass-through
func NewBearerClient(serviceName, baseURL string, timeout time.Duration) *BearerClient {
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &BearerClient{
		client: &nethttp.Client{
			Timeout: timeout,
		},
		baseURL:     baseURL,
		serviceName: serviceName,
	}
}

// Get performs a GET request
func (c *BearerClient) Get(ctx context.Context, endpoint string) (*nethttp.Response, error) {
	return c.doRequest(ctx, nethttp.MethodGet, endpoint, nil)
}

// Post performs a POST request
func (c *BearerClient) Post(ctx context.Context, endpoint string, body interface{}) (*nethttp.Response, error) {
	return c.doRequest(ctx, nethttp.MethodPost, endpoint, body)
}

// Put performs a PUT request
func (c *BearerClient) Put(ctx context.Context, endpoint string, body interface{}) (*nethttp.Response, error) {
	return c.doRequest(ctx, nethttp.MethodPut, endpoint, body)
}

// Delete performs a DELETE request
func (c *BearerClient) Delete(ctx context.Context, endpoint string) (*nethttp.Response, error) {
	return c.doRequest(ctx, nethttp.MethodDelete, endpoint, nil)
}

// GetJSON performs a GET request and decodes the JSON response
func (c *BearerClient) GetJSON(ctx context.Context, endpoint string, result interface{}) error {
	resp, err := c.Get(ctx, endpoint)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeJSON(resp, result)
}

// PostJSON performs a POST request with a JSON body and decodes the response
func (c *BearerClient) PostJSON(ctx context.Context, endpoint string, body interface{}, result interface{}) error {
	resp, err := c.Post(ctx, endpoint, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeJSON(resp, result)
}

// PutJSON performs a PUT request with a JSON body and decodes the response
func (c *BearerClient) PutJSON(ctx context.Context, endpoint string, body interface{}, result interface{}) error {
	resp, err := c.Put(ctx, endpoint, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeJSON(resp, result)
}

// DeleteJSON performs a DELETE request and decodes the response
func (c *BearerClient) DeleteJSON(ctx context.Context, endpoint string, result interface{}) error {
	resp, err := c.Delete(ctx, endpoint)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeJSON(resp, result)
}

func decodeJSON(resp *nethttp.Response, result interface{}) error {
	if resp.StatusCode >= 400 {
		return apierr.FromResponse(resp)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	// Drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// doRequest performs the actual HTTP request with bearer authentication
func (c *BearerClient) doRequest(ctx context.Context, method, endpoint string, body interface{}) (*nethttp.Response, error) {
	url := c.baseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			logger.Error("Failed to marshal request body",
				logger.String("method", method),
				logger.String("url", url),
				logger.Err(err))
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		logger.Error("Failed to create HTTP request",
			logger.String("method", method),
			logger.String("url", url),
			logger.Err(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	session := middleware.SessionFromContext(ctx)
	if session.Token != "" {
		req.Header.Set("Authorization", "Bearer "+session.Token)
	}

	logger.Debug("Making HTTP request",
		logger.String("method", method),
		logger.String("url", url),
		logger.String("service", c.serviceName),
		logger.Bool("authenticated", session.Authenticated))

	resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*nethttp.Response, error) {
		return c.client.Do(req)
	})
	if err != nil {
		logger.Error("HTTP request failed",
			logger.String("method", method),
			logger.String("url", url),
			logger.String("service", c.serviceName),
			logger.Err(err))
		return nil, fmt.Errorf("request failed: %w", err)
	}

	logger.Debug("HTTP request completed",
		logger.String("method", method),
		logger.String("url", url),
		logger.String("service", c.serviceName),
		logger.Int("status_code", resp.StatusCode))

	return resp, nil
}
