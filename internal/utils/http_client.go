package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client. Embedding exposes all of its methods while
// leaving room for application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
