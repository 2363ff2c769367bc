// Package reconciler merges a Sessionize payload into the previous
// Hoverboard snapshots.
//
// The reconciler is a pure function of (external payload, previous
// snapshots, options): it holds no file handles and no package-level state,
// so each pass can be tested against in-memory snapshots. All lookups the
// original data contract marks as required fail loudly with a LookupError
// instead of defaulting; bad category or speaker references mean the
// provider data must be fixed at the source.
package reconciler

import (
	"github.com/gdgmilano/devfest-tools/pkg/hoverboard"
	"github.com/gdgmilano/devfest-tools/pkg/sessionize"
)

// Snapshots holds the previously persisted state the merge runs against.
type Snapshots struct {
	Schedule *hoverboard.Schedule
	Sessions hoverboard.Sessions
	Speakers hoverboard.Speakers
}

// Result holds the three freshly built snapshots of one run.
type Result struct {
	Schedule *hoverboard.Schedule
	Sessions hoverboard.Sessions
	Speakers hoverboard.Speakers
}

// Option is a function that configures a Reconciler.
type Option func(*Reconciler)

// WithSpeakerOverwrite allows the speakers pass to refresh provider-derived
// fields of already known speakers. Off by default: curated speaker records
// win over provider data.
func WithSpeakerOverwrite(enabled bool) Option {
	return func(r *Reconciler) {
		r.overwriteSpeakers = enabled
	}
}

// Reconciler computes replacement snapshots from a provider payload.
type Reconciler struct {
	prev              Snapshots
	overwriteSpeakers bool
}

// New creates a Reconciler over the given previous snapshots.
func New(prev Snapshots, opts ...Option) *Reconciler {
	r := &Reconciler{prev: prev}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the three merge passes. Each pass is idempotent: re-running
// with unchanged input yields snapshots equal to the previous ones.
func (r *Reconciler) Run(p *sessionize.Payload) (*Result, error) {
	schedule, err := r.Schedule(p)
	if err != nil {
		return nil, err
	}
	sessions, err := r.Sessions(p)
	if err != nil {
		return nil, err
	}
	speakers, err := r.Speakers(p)
	if err != nil {
		return nil, err
	}
	return &Result{
		Schedule: schedule,
		Sessions: sessions,
		Speakers: speakers,
	}, nil
}
