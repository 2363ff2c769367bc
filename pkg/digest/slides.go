package digest

import (
	"fmt"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/gdgmilano/devfest-tools/pkg/hoverboard"
)

// slidesPlaceholder marks a talk whose slides have not been collected yet.
const slidesPlaceholder = "not available (yet)"

// AgendaSlides renders the talks-only agenda as markdown, one `###`
// heading per timeslot and the presentation link (or a placeholder) under
// each talk bullet.
func AgendaSlides(d Data) (string, error) {
	var buf strings.Builder
	doc := md.NewMarkdown(&buf)

	for _, slot := range d.Schedule.Day.Timeslots {
		sessions, err := d.timeslotSessions(slot)
		if err != nil {
			return "", err
		}

		var talks []hoverboard.Session
		for _, session := range sessions {
			if session.Speakers != nil {
				talks = append(talks, session)
			}
		}
		if len(talks) == 0 {
			continue
		}

		doc.H3(slot.StartTime).LF()
		for _, session := range talks {
			speakers, err := d.speakerNames(session.Speakers)
			if err != nil {
				return "", err
			}
			link := session.Presentation
			if strings.TrimSpace(link) == "" {
				link = slidesPlaceholder
			}
			doc.BulletList(fmt.Sprintf("%s (by %s)", session.Title, speakers)).
				PlainText("   " + link).
				LF()
		}
	}

	if err := doc.Build(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
