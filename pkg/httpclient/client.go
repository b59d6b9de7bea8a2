package httpclient

import (
	"net/http"
	"time"
)

// Client is the subset of *http.Client used by outbound integrations.
// Tests substitute a fake.
type Client interface {
	Do(req *http.Request) (*http.Response, error)
}

// StandardHTTPClient wraps http.Client with a timeout
type StandardHTTPClient struct {
	client *http.Client
}

// NewStandardClient creates an HTTP client with the given timeout.
// A non-positive timeout falls back to 30 seconds.
func NewStandardClient(timeout time.Duration) *StandardHTTPClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &StandardHTTPClient{
		client: &http.Client{Timeout: timeout},
	}
}

// Do executes an HTTP request
func (c *StandardHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return c.client.Do(req)
}
