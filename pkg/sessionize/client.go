package sessionize

import (
	"context"
	"io"
	"net/http"
	"os"

	"github.com/google/renameio/v2"

	"github.com/gdgmilano/devfest-tools/internal/transport"
	"github.com/gdgmilano/devfest-tools/pkg/constants"
	"github.com/gdgmilano/devfest-tools/pkg/errors"
	"github.com/gdgmilano/devfest-tools/pkg/logging"
)

// Client downloads the view/all payload and caches the raw bytes to a local
// file. Subsequent runs reuse the cache unless force refresh is enabled, so
// the sync can be replayed offline against the same provider snapshot.
type Client struct {
	transport    *transport.Client
	url          string
	cachePath    string
	forceRefresh bool
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithTransport sets the transport client, mainly for tests.
func WithTransport(t *transport.Client) ClientOption {
	return func(c *Client) {
		if t != nil {
			c.transport = t
		}
	}
}

// WithForceRefresh makes Payload re-download even when a cache file exists.
func WithForceRefresh(force bool) ClientOption {
	return func(c *Client) {
		c.forceRefresh = force
	}
}

// NewClient creates a client for the given view/all URL, caching the raw
// payload at cachePath.
func NewClient(url, cachePath string, opts ...ClientOption) *Client {
	c := &Client{
		transport: transport.New(),
		url:       url,
		cachePath: cachePath,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Payload returns the parsed view/all payload, downloading it first when the
// cache is absent or force refresh is on. A failed download aborts the run
// before anything is written; there are no retries.
func (c *Client) Payload(ctx context.Context) (*Payload, error) {
	if c.forceRefresh || !fileExists(c.cachePath) {
		if err := c.refresh(ctx); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(c.cachePath)
	if err != nil {
		return nil, errors.WrapIO("read", c.cachePath, err)
	}

	p, err := Parse(data)
	if err != nil {
		if perr, ok := err.(*errors.ParseError); ok {
			perr.File = c.cachePath
		}
		return nil, err
	}
	return p, nil
}

// Refresh downloads the payload unconditionally and rewrites the cache file.
func (c *Client) Refresh(ctx context.Context) error {
	return c.refresh(ctx)
}

func (c *Client) refresh(ctx context.Context) error {
	logging.Ctx(ctx).Info().Str("url", c.url).Msg("Downloading provider payload")

	resp, err := c.transport.Get(ctx, c.url)
	if err != nil {
		return &errors.FetchError{URL: c.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &errors.FetchError{URL: c.url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &errors.FetchError{URL: c.url, Err: err}
	}

	if err := renameio.WriteFile(c.cachePath, body, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", c.cachePath, err)
	}

	logging.Ctx(ctx).Debug().
		Str("path", c.cachePath).
		Int("bytes", len(body)).
		Msg("Provider payload cached")
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
