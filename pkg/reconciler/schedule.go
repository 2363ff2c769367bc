package reconciler

import (
	"fmt"
	"sort"

	"github.com/gdgmilano/devfest-tools/pkg/errors"
	"github.com/gdgmilano/devfest-tools/pkg/hoverboard"
	"github.com/gdgmilano/devfest-tools/pkg/sessionize"
	"github.com/gdgmilano/devfest-tools/pkg/slug"
)

// lite is the projection of a provider session the schedule pass works on.
type lite struct {
	start  string
	end    string
	roomID int64
	slug   string
}

// Schedule rebuilds the day schedule from provider sessions.
//
// Sessions are sorted by room id (stable) and grouped by extracted start
// time, preserving first-seen group order. Each group becomes one timeslot
// with one session key per provider room, in provider room order, so every
// room appears in every timeslot even when empty. Curated extend values are
// carried over from the previous schedule by slug. dateReadable and date
// come from the previous day record; the provider does not supply them.
func (r *Reconciler) Schedule(p *sessionize.Payload) (*hoverboard.Schedule, error) {
	prevDay := r.prev.Schedule.Day
	extendBySlug := r.prev.Schedule.ExtendBySlug()

	lites := make([]lite, 0, len(p.Sessions))
	for _, s := range p.Sessions {
		start, err := clockTime(s.StartsAt)
		if err != nil {
			return nil, errors.NewParseError("json", "",
				fmt.Sprintf("session %s: bad startsAt %q", s.ID, s.StartsAt), err)
		}
		end, err := clockTime(s.EndsAt)
		if err != nil {
			return nil, errors.NewParseError("json", "",
				fmt.Sprintf("session %s: bad endsAt %q", s.ID, s.EndsAt), err)
		}
		lites = append(lites, lite{
			start:  start,
			end:    end,
			roomID: s.RoomID,
			slug:   slug.Make(s.Title),
		})
	}

	sort.SliceStable(lites, func(i, j int) bool {
		return lites[i].roomID < lites[j].roomID
	})

	var order []string
	groups := make(map[string][]lite)
	for _, l := range lites {
		if _, seen := groups[l.start]; !seen {
			order = append(order, l.start)
		}
		groups[l.start] = append(groups[l.start], l)
	}

	timeslots := make([]hoverboard.Timeslot, 0, len(order))
	for _, start := range order {
		group := groups[start]

		// Lexicographic min is a valid time comparison: all slots share
		// the same day and the HH:mm strings are fixed width.
		end := group[0].end
		for _, l := range group[1:] {
			if l.end < end {
				end = l.end
			}
		}

		keys := make([]hoverboard.SessionKey, 0, len(p.Rooms))
		for _, room := range p.Rooms {
			key := hoverboard.SessionKey{Items: []string{}}
			for _, l := range group {
				if l.roomID == room.ID {
					key = hoverboard.SessionKey{
						Items:  []string{l.slug},
						Extend: extendBySlug[l.slug],
					}
					break
				}
			}
			keys = append(keys, key)
		}

		timeslots = append(timeslots, hoverboard.Timeslot{
			StartTime: start,
			Sessions:  keys,
			EndTime:   end,
		})
	}

	tracks := make([]hoverboard.Track, 0, len(p.Rooms))
	for _, room := range p.Rooms {
		tracks = append(tracks, hoverboard.Track{Title: room.Name})
	}

	return &hoverboard.Schedule{
		Day: hoverboard.ScheduleDay{
			Tracks:       tracks,
			DateReadable: prevDay.DateReadable,
			Timeslots:    timeslots,
			Date:         prevDay.Date,
		},
	}, nil
}

// clockTime extracts the HH:mm substring from a provider timestamp like
// "2018-10-06T09:00:00+02:00": drop the 3-character suffix, then take the
// last 5 characters. Downstream consumers depend on exactly this substring
// operation, not on a datetime re-format.
func clockTime(ts string) (string, error) {
	if len(ts) < 8 {
		return "", errors.New("timestamp too short")
	}
	trimmed := ts[:len(ts)-3]
	return trimmed[len(trimmed)-5:], nil
}
