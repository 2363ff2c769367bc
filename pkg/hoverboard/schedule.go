package hoverboard

import (
	"encoding/json"
	"fmt"

	"github.com/gdgmilano/devfest-tools/pkg/errors"
)

// Schedule is the single-day schedule snapshot. On disk it is an object
// with exactly one key, the machine date:
//
//	{"2018-10-06": {"tracks": [...], "timeslots": [...], ...}}
type Schedule struct {
	Day ScheduleDay
}

// ScheduleDay is one conference day.
type ScheduleDay struct {
	Tracks       []Track    `json:"tracks"`
	DateReadable string     `json:"dateReadable"`
	Timeslots    []Timeslot `json:"timeslots"`
	Date         string     `json:"date"`
}

// Timeslot is one row of the schedule, identified by its start time.
// EndTime is the minimum end time among the sessions in the slot.
type Timeslot struct {
	StartTime string       `json:"startTime"`
	Sessions  []SessionKey `json:"sessions"`
	EndTime   string       `json:"endTime"`
}

// SessionKey points a room cell at a session slug. Items is a singleton
// list or empty when the room has no session at that time. Extend is the
// hand-curated duration multiplier, carried across syncs.
type SessionKey struct {
	Items  []string `json:"items"`
	Extend *int64   `json:"extend,omitempty"`
}

// Track is one room column of the schedule.
type Track struct {
	Title string `json:"title"`
}

// MarshalJSON writes the schedule as a one-key object keyed by the day date.
func (s Schedule) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]ScheduleDay{s.Day.Date: s.Day})
}

// UnmarshalJSON reads the one-key object form. More than one day is
// rejected: the data model is single-day.
func (s *Schedule) UnmarshalJSON(data []byte) error {
	var days map[string]ScheduleDay
	if err := json.Unmarshal(data, &days); err != nil {
		return err
	}
	if len(days) != 1 {
		return errors.NewParseError("json", "",
			fmt.Sprintf("schedule must hold exactly one day, found %d", len(days)), nil)
	}
	for date, day := range days {
		if day.Date == "" {
			day.Date = date
		}
		s.Day = day
	}
	return nil
}

// ExtendBySlug flattens the day's session keys into a slug→extend map, used
// to carry curated extend values into a freshly built schedule.
func (s *Schedule) ExtendBySlug() map[string]*int64 {
	out := make(map[string]*int64)
	for _, slot := range s.Day.Timeslots {
		for _, key := range slot.Sessions {
			if len(key.Items) > 0 {
				out[key.Items[0]] = key.Extend
			}
		}
	}
	return out
}
