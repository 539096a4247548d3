package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://127.0.0.1:8080", 10*time.Second)
//	resp, err := client.R().Get("/api/v1/blocks/1")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent resty client bound to baseURL with
// the given request timeout. A zero timeout leaves the resty default.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().SetBaseURL(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}

// WithRequestID makes every request carry an X-Request-ID header produced by
// gen unless the caller already set one.
func (c *HTTPClient) WithRequestID(gen *UUIDGenerator) *HTTPClient {
	c.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get(RequestIDHeader) == "" {
			r.SetHeader(RequestIDHeader, gen.Generate())
		}
		return nil
	})
	return c
}
