package devfesttools

import (
	"context"

	"github.com/gdgmilano/devfest-tools/pkg/logging"
	"github.com/gdgmilano/devfest-tools/pkg/reconciler"
)

// Sync fetches (or re-reads) the provider payload, reconciles it against
// the loaded snapshots and persists each snapshot that changed.
func (c *client) Sync(ctx context.Context) (*SyncResult, error) {
	log := logging.Ctx(ctx)

	payload, err := c.provider.Payload(ctx)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Int("sessions", len(payload.Sessions)).
		Int("speakers", len(payload.Speakers)).
		Int("rooms", len(payload.Rooms)).
		Msg("Provider payload loaded")

	prev, err := c.snapshots()
	if err != nil {
		return nil, err
	}

	rec := reconciler.New(prev, reconciler.WithSpeakerOverwrite(c.config.speakerOverwrite))
	result, err := rec.Run(payload)
	if err != nil {
		return nil, err
	}

	var out SyncResult
	if out.ScheduleChanged, err = c.store.SaveSchedule(result.Schedule); err != nil {
		return nil, err
	}
	if out.SessionsChanged, err = c.store.SaveSessions(result.Sessions); err != nil {
		return nil, err
	}
	if out.SpeakersChanged, err = c.store.SaveSpeakers(result.Speakers); err != nil {
		return nil, err
	}

	log.Info().
		Bool("schedule", out.ScheduleChanged).
		Bool("sessions", out.SessionsChanged).
		Bool("speakers", out.SpeakersChanged).
		Msg("Sync complete")
	return &out, nil
}

// Run performs Sync followed by Digest.
func (c *client) Run(ctx context.Context) error {
	if _, err := c.Sync(ctx); err != nil {
		return err
	}
	return c.Digest(ctx)
}

// snapshots loads the three previous snapshots through the store's
// load-once cache.
func (c *client) snapshots() (reconciler.Snapshots, error) {
	schedule, err := c.store.Schedule()
	if err != nil {
		return reconciler.Snapshots{}, err
	}
	sessions, err := c.store.Sessions()
	if err != nil {
		return reconciler.Snapshots{}, err
	}
	speakers, err := c.store.Speakers()
	if err != nil {
		return reconciler.Snapshots{}, err
	}
	return reconciler.Snapshots{
		Schedule: schedule,
		Sessions: sessions,
		Speakers: speakers,
	}, nil
}
