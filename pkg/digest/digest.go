// Package digest renders the Hoverboard snapshots into human-readable
// text: social-media post text and four agenda variants.
//
// Renderers are pure functions over (schedule, sessions, speakers); writing
// the output files is the caller's job. Output iterates sessions in sorted
// slug order so repeated runs produce identical bytes.
package digest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdgmilano/devfest-tools/pkg/errors"
	"github.com/gdgmilano/devfest-tools/pkg/hoverboard"
)

// Data is the snapshot triple every renderer reads.
type Data struct {
	Schedule *hoverboard.Schedule
	Sessions hoverboard.Sessions
	Speakers hoverboard.Speakers
}

// Config holds the event-specific strings baked into the digests.
type Config struct {
	// EventName opens every social post, e.g. "DevFest Milano 2018".
	EventName string

	// EventHashtag closes every social post, e.g. "#DevFest18".
	EventHashtag string

	// BaseURL is the schedule site root for deep links.
	BaseURL string

	// Day is the machine date used in deep links.
	Day string

	// MainTags are the fixed buckets of the tag-grouped agenda; everything
	// else lands in the "other" bucket.
	MainTags []string
}

// DefaultConfig returns the DevFest Milano 2018 event configuration.
func DefaultConfig() Config {
	return Config{
		EventName:    "DevFest Milano 2018",
		EventHashtag: "#DevFest18",
		BaseURL:      "https://devfest2018.gdgmilano.it",
		Day:          "2018-10-06",
		MainTags:     []string{"Android", "Machine Learning", "Firebase"},
	}
}

// deepLink builds the companion-app link for a session slug.
func (c Config) deepLink(sessionSlug string) string {
	return fmt.Sprintf("%s/schedule/%s?sessionId=%s", c.BaseURL, c.Day, sessionSlug)
}

// hashtag strips spaces from a tag and prefixes '#'.
func hashtag(tag string) string {
	return "#" + strings.ReplaceAll(tag, " ", "")
}

// hashtags renders a tag list as space-joined hashtags.
func hashtags(tags []string) string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, hashtag(t))
	}
	return strings.Join(out, " ")
}

// sortedSlugs returns the session slugs in deterministic order.
func sortedSlugs(sessions hoverboard.Sessions) []string {
	slugs := make([]string, 0, len(sessions))
	for s := range sessions {
		slugs = append(slugs, s)
	}
	sort.Strings(slugs)
	return slugs
}

// speakerNames joins the display names for the given speaker slugs.
func (d Data) speakerNames(slugs []string) (string, error) {
	names := make([]string, 0, len(slugs))
	for _, s := range slugs {
		speaker, ok := d.Speakers[s]
		if !ok {
			return "", &errors.LookupError{Kind: "speaker", Key: s}
		}
		names = append(names, speaker.Name)
	}
	return strings.Join(names, ", "), nil
}

// timeslotSessions resolves a timeslot's non-empty session keys.
func (d Data) timeslotSessions(slot hoverboard.Timeslot) ([]hoverboard.Session, error) {
	sessions := make([]hoverboard.Session, 0, len(slot.Sessions))
	for _, key := range slot.Sessions {
		if len(key.Items) == 0 {
			continue
		}
		session, ok := d.Sessions[key.Items[0]]
		if !ok {
			return nil, &errors.LookupError{Kind: "session", Key: key.Items[0]}
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}
