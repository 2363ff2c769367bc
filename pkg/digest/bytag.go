package digest

import (
	"fmt"
	"strings"
)

// AgendaByTag buckets every session that has speakers into the configured
// main tags, or into an "other" bucket when none of its tags is a main
// tag. A session with several main tags appears under each of them and
// never under other. The other bucket's header lists the union of the
// tags seen in it, in first-seen order.
func AgendaByTag(d Data, cfg Config) (string, error) {
	talksByTag := make(map[string][]string, len(cfg.MainTags)+1)
	var otherTags []string
	seenOther := make(map[string]bool)

	for _, slot := range d.Schedule.Day.Timeslots {
		sessions, err := d.timeslotSessions(slot)
		if err != nil {
			return "", err
		}
		for _, session := range sessions {
			if session.Speakers == nil {
				continue
			}
			speakers, err := d.speakerNames(session.Speakers)
			if err != nil {
				return "", err
			}
			talk := fmt.Sprintf("%s (by %s)\n    %s", session.Title, speakers, hashtags(session.Tags))

			matched := false
			for _, main := range cfg.MainTags {
				if containsTag(session.Tags, main) {
					talksByTag[main] = append(talksByTag[main], talk)
					matched = true
				}
			}
			if !matched {
				talksByTag["other"] = append(talksByTag["other"], talk)
				for _, t := range session.Tags {
					if !seenOther[t] {
						seenOther[t] = true
						otherTags = append(otherTags, t)
					}
				}
			}
		}
	}

	blocks := make([]string, 0, len(cfg.MainTags))
	for _, main := range cfg.MainTags {
		blocks = append(blocks, fmt.Sprintf("Session with %s\n\n%s",
			hashtag(main), strings.Join(talksByTag[main], "\n")))
	}

	return strings.Join(blocks, "\n\n\n") +
		fmt.Sprintf("\n\n\nSession with: %s\n\n%s",
			hashtags(otherTags), strings.Join(talksByTag["other"], "\n")), nil
}

func containsTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}
