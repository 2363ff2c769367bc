package digest

import (
	"fmt"
	"strings"
)

// Social renders one promotional paragraph per session, in English for
// English-language sessions and in Italian otherwise, joined by blank
// lines.
func Social(d Data, cfg Config) (string, error) {
	paragraphs := make([]string, 0, len(d.Sessions))
	for _, sessionSlug := range sortedSlugs(d.Sessions) {
		session := d.Sessions[sessionSlug]

		speakers, err := d.speakerNames(session.Speakers)
		if err != nil {
			return "", err
		}
		link := cfg.deepLink(sessionSlug)
		tags := hashtags(session.Tags)

		var p string
		if session.Language == "English" {
			p = fmt.Sprintf(
				"%s, this year: %s\nTalk by %s on %s\nJoin now - FREE Conference (20+ speaker) %s",
				cfg.EventName, link, speakers, tags, cfg.EventHashtag)
		} else {
			p = fmt.Sprintf(
				"%s, quest'anno: %s\nTalk di %s su %s\nIscriviti ora - Conferenza gratuita (20+ speaker) %s",
				cfg.EventName, link, speakers, tags, cfg.EventHashtag)
		}
		paragraphs = append(paragraphs, p)
	}
	return strings.Join(paragraphs, "\n\n"), nil
}
