// Package devfesttools synchronizes conference-schedule data from the
// Sessionize API into the Hoverboard JSON data model and renders digest
// files from it.
//
// The flow is strictly sequential: fetch the provider payload (or reuse
// its local cache), reconcile it against the previously persisted
// snapshots, write back whatever changed, then render the digests. The
// whole run aborts on the first fatal error; nothing is retried and no
// file is touched before its replacement value is fully computed.
//
// Example usage:
//
//	syncer, err := devfesttools.New(
//	    devfesttools.WithDataDir("backup"),
//	    devfesttools.WithForceRefresh(true),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := syncer.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package devfesttools

import (
	"context"
	"path/filepath"

	"github.com/gdgmilano/devfest-tools/pkg/constants"
	"github.com/gdgmilano/devfest-tools/pkg/hoverboard"
	"github.com/gdgmilano/devfest-tools/pkg/sessionize"
)

// Compile-time interface check to ensure proper implementation.
var _ Syncer = (*client)(nil)

// Syncer runs the sync pipeline and the digest renderers.
type Syncer interface {
	// Fetch refreshes the local provider payload cache unconditionally.
	Fetch(ctx context.Context) error

	// Sync reconciles provider data into the snapshots and persists
	// whatever changed.
	Sync(ctx context.Context) (*SyncResult, error)

	// Digest renders all digest files from the loaded snapshots.
	Digest(ctx context.Context) error

	// Run performs Sync followed by Digest, the single-entry-point flow.
	Run(ctx context.Context) error
}

// SyncResult reports which snapshots a sync actually rewrote.
type SyncResult struct {
	ScheduleChanged bool
	SessionsChanged bool
	SpeakersChanged bool
}

// Changed reports whether the sync rewrote any snapshot.
func (r *SyncResult) Changed() bool {
	return r.ScheduleChanged || r.SessionsChanged || r.SpeakersChanged
}

// client is the internal implementation of the Syncer interface.
type client struct {
	config   *config
	store    *hoverboard.Store
	provider *sessionize.Client
}

// New creates a new Syncer with the given options.
func New(opts ...Option) (Syncer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	store := hoverboard.NewStore(cfg.dataDir, hoverboard.WithBackups(cfg.backups))

	providerOpts := []sessionize.ClientOption{
		sessionize.WithForceRefresh(cfg.forceRefresh),
	}
	if cfg.transport != nil {
		providerOpts = append(providerOpts, sessionize.WithTransport(cfg.transport))
	}
	provider := sessionize.NewClient(
		cfg.providerURL,
		filepath.Join(cfg.dataDir, constants.ProviderCacheFile),
		providerOpts...,
	)

	return &client{
		config:   cfg,
		store:    store,
		provider: provider,
	}, nil
}

// Fetch refreshes the provider payload cache.
func (c *client) Fetch(ctx context.Context) error {
	return c.provider.Refresh(ctx)
}
