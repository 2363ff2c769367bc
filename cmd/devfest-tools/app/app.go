// Package app provides the application context and dependency management
// for the devfest-tools CLI. It centralizes configuration, logging and
// Syncer construction so commands stay thin.
package app

import (
	"github.com/rs/zerolog"

	devfesttools "github.com/gdgmilano/devfest-tools"
	"github.com/gdgmilano/devfest-tools/pkg/digest"
	"github.com/gdgmilano/devfest-tools/pkg/errors"
)

// App represents the devfest-tools application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger
}

// New creates a new App instance with the given version information.
func New(version, commit, date string) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, &errors.ConfigError{Component: "app", Message: "failed to load configuration", Err: err}
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	return app, nil
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Version returns the application version string.
func (a *App) Version() string {
	return a.version
}

// Syncer builds a Syncer from the resolved configuration.
func (a *App) Syncer(forceRefresh bool) (devfesttools.Syncer, error) {
	digestCfg := digest.DefaultConfig()
	if a.config.EventName != "" {
		digestCfg.EventName = a.config.EventName
	}
	if a.config.EventHashtag != "" {
		digestCfg.EventHashtag = a.config.EventHashtag
	}
	if a.config.EventBaseURL != "" {
		digestCfg.BaseURL = a.config.EventBaseURL
	}
	if a.config.EventDay != "" {
		digestCfg.Day = a.config.EventDay
	}
	if len(a.config.MainTags) > 0 {
		digestCfg.MainTags = a.config.MainTags
	}

	return devfesttools.New(
		devfesttools.WithDataDir(a.config.DataDir),
		devfesttools.WithProviderURL(a.config.ProviderURL),
		devfesttools.WithForceRefresh(forceRefresh || a.config.ForceRefresh),
		devfesttools.WithBackups(a.config.Backups),
		devfesttools.WithSpeakerOverwrite(a.config.SpeakerOverwrite),
		devfesttools.WithDigestConfig(digestCfg),
	)
}
