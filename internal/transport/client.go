// Package transport provides HTTP client functionality for provider requests.
package transport

import (
	"context"
	"net/http"

	"github.com/gdgmilano/devfest-tools/pkg/constants"
	"github.com/gdgmilano/devfest-tools/pkg/errors"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = constants.DefaultHTTPTimeout

// Client provides HTTP client functionality. The Sessionize view/all
// endpoint is public, so there is no authentication layer.
type Client struct {
	http *http.Client
}

// New creates a new transport client.
func New() *Client {
	return &Client{
		http: &http.Client{Timeout: DefaultHTTPTimeout},
	}
}

// NewWithHTTPClient creates a transport client backed by the given http.Client.
func NewWithHTTPClient(hc *http.Client) *Client {
	if hc == nil {
		return New()
	}
	return &Client{http: hc}
}

// Get performs a GET request with common headers applied.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapIO("create", "GET "+url, err)
	}
	req.Header.Set("Accept", "application/json")
	return c.http.Do(req)
}
