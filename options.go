package devfesttools

import (
	"github.com/gdgmilano/devfest-tools/internal/transport"
	"github.com/gdgmilano/devfest-tools/pkg/constants"
	"github.com/gdgmilano/devfest-tools/pkg/digest"
	"github.com/gdgmilano/devfest-tools/pkg/errors"
)

// DefaultProviderURL is the DevFest Milano 2018 Sessionize view/all endpoint.
const DefaultProviderURL = "https://sessionize.com/api/v2/y2kbnktu/view/all"

// Option is a function that configures the Syncer.
type Option func(*config) error

// config holds the resolved Syncer configuration.
type config struct {
	dataDir          string
	providerURL      string
	forceRefresh     bool
	backups          bool
	speakerOverwrite bool
	digest           digest.Config
	transport        *transport.Client
}

func defaultConfig() *config {
	return &config{
		dataDir:     constants.DefaultDataDir,
		providerURL: DefaultProviderURL,
		digest:      digest.DefaultConfig(),
	}
}

// WithDataDir sets the directory holding snapshots, the provider cache and
// digest outputs.
func WithDataDir(dir string) Option {
	return func(c *config) error {
		if dir == "" {
			return &errors.ConfigError{Component: "syncer", Message: "data dir must not be empty"}
		}
		c.dataDir = dir
		return nil
	}
}

// WithProviderURL sets the Sessionize view/all endpoint.
func WithProviderURL(url string) Option {
	return func(c *config) error {
		if url == "" {
			return &errors.ConfigError{Component: "syncer", Message: "provider URL must not be empty"}
		}
		c.providerURL = url
		return nil
	}
}

// WithForceRefresh re-downloads the provider payload even when a cache
// file exists.
func WithForceRefresh(enabled bool) Option {
	return func(c *config) error {
		c.forceRefresh = enabled
		return nil
	}
}

// WithBackups enables timestamped backup copies before snapshots are
// overwritten.
func WithBackups(enabled bool) Option {
	return func(c *config) error {
		c.backups = enabled
		return nil
	}
}

// WithSpeakerOverwrite allows the sync to refresh provider-derived fields
// of speakers that already exist in the snapshot.
func WithSpeakerOverwrite(enabled bool) Option {
	return func(c *config) error {
		c.speakerOverwrite = enabled
		return nil
	}
}

// WithDigestConfig overrides the event strings used by the digest
// renderers.
func WithDigestConfig(cfg digest.Config) Option {
	return func(c *config) error {
		c.digest = cfg
		return nil
	}
}

// WithTransport overrides the HTTP transport, mainly for tests.
func WithTransport(t *transport.Client) Option {
	return func(c *config) error {
		c.transport = t
		return nil
	}
}
