package digest

import (
	"fmt"
	"strings"

	"github.com/gdgmilano/devfest-tools/pkg/errors"
	"github.com/gdgmilano/devfest-tools/pkg/hoverboard"
)

// AgendaFull renders every timeslot with tags and speaker affiliations.
func AgendaFull(d Data) (string, error) {
	blocks := make([]string, 0, len(d.Schedule.Day.Timeslots))
	for _, slot := range d.Schedule.Day.Timeslots {
		sessions, err := d.timeslotSessions(slot)
		if err != nil {
			return "", err
		}

		lines := make([]string, 0, len(sessions))
		for _, session := range sessions {
			if session.Speakers == nil {
				lines = append(lines, session.Title)
				continue
			}
			speakers := make([]string, 0, len(session.Speakers))
			for _, sl := range session.Speakers {
				speaker, ok := d.Speakers[sl]
				if !ok {
					return "", &errors.LookupError{Kind: "speaker", Key: sl}
				}
				speakers = append(speakers, fmt.Sprintf("%s (%s @ %s)",
					speaker.Name, speaker.Title, speaker.Company))
			}
			lines = append(lines, fmt.Sprintf("%s\n    %s\n    by %s\n",
				session.Title, hashtags(session.Tags), strings.Join(speakers, ", ")))
		}

		blocks = append(blocks, fmt.Sprintf("%s\n\n%s", slot.StartTime, strings.Join(lines, "\n")))
	}
	return strings.Join(blocks, "\n\n"), nil
}

// AgendaCompact renders every timeslot with one indented line per session,
// speaker names only.
func AgendaCompact(d Data) (string, error) {
	blocks := make([]string, 0, len(d.Schedule.Day.Timeslots))
	for _, slot := range d.Schedule.Day.Timeslots {
		sessions, err := d.timeslotSessions(slot)
		if err != nil {
			return "", err
		}

		lines := make([]string, 0, len(sessions))
		for _, session := range sessions {
			line, err := compactLine(d, session)
			if err != nil {
				return "", err
			}
			lines = append(lines, line)
		}

		blocks = append(blocks, fmt.Sprintf("%s\n%s", slot.StartTime, strings.Join(lines, "\n")))
	}
	return strings.Join(blocks, "\n"), nil
}

// AgendaTalksOnly is the compact agenda restricted to sessions with
// speakers; timeslots holding only service sessions are skipped entirely.
func AgendaTalksOnly(d Data) (string, error) {
	var blocks []string
	for _, slot := range d.Schedule.Day.Timeslots {
		sessions, err := d.timeslotSessions(slot)
		if err != nil {
			return "", err
		}

		var lines []string
		for _, session := range sessions {
			if session.Speakers == nil {
				continue
			}
			line, err := compactLine(d, session)
			if err != nil {
				return "", err
			}
			lines = append(lines, line)
		}
		if len(lines) == 0 {
			continue
		}

		blocks = append(blocks, fmt.Sprintf("%s\n%s", slot.StartTime, strings.Join(lines, "\n")))
	}
	return strings.Join(blocks, "\n"), nil
}

func compactLine(d Data, session hoverboard.Session) (string, error) {
	if session.Speakers == nil {
		return "    " + session.Title, nil
	}
	speakers, err := d.speakerNames(session.Speakers)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("    %s (by %s)", session.Title, speakers), nil
}
