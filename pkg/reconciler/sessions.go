package reconciler

import (
	"github.com/gdgmilano/devfest-tools/pkg/errors"
	"github.com/gdgmilano/devfest-tools/pkg/hoverboard"
	"github.com/gdgmilano/devfest-tools/pkg/sessionize"
	"github.com/gdgmilano/devfest-tools/pkg/slug"
)

// complexityByLevel translates provider level names into the fixed app
// vocabulary. An unmapped level is fatal: the vocabulary is part of the
// data contract, not a place to guess a fallback.
var complexityByLevel = map[string]string{
	"Introductory and overview": "Beginner",
	"Intermediate":              "Intermediate",
	"Advanced":                  "Advanced",
}

// languageFlags maps a language name to its flag emoji. Languages outside
// the map simply render without a flag.
var languageFlags = map[string]string{
	"Italian": "🇮🇹",
	"English": "🇬🇧",
}

// Sessions rebuilds the sessions-by-slug snapshot.
//
// Provider-derived fields refresh existing records; curated fields
// (presentation, videoId, icon, image, extend) survive untouched. When two
// provider titles slug to the same key the later session wins; the
// collision is an accepted upstream data-quality risk and is not
// deduplicated.
func (r *Reconciler) Sessions(p *sessionize.Payload) (hoverboard.Sessions, error) {
	formats, err := categoryTable(p, sessionize.CategorySessionFormat)
	if err != nil {
		return nil, err
	}
	levels, err := categoryTable(p, sessionize.CategoryLevel)
	if err != nil {
		return nil, err
	}
	languages, err := categoryTable(p, sessionize.CategoryLanguage)
	if err != nil {
		return nil, err
	}
	tags, err := categoryTable(p, sessionize.CategoryTags)
	if err != nil {
		return nil, err
	}

	slugBySpeakerID := make(map[string]string, len(p.Speakers))
	for _, sp := range p.Speakers {
		slugBySpeakerID[sp.ID] = slug.Make(sp.FullName)
	}

	out := make(hoverboard.Sessions, len(p.Sessions))
	for _, s := range p.Sessions {
		// The session format has no field in the internal schema, but an
		// unresolvable format id is the same upstream corruption as a
		// missing level, so it still has to resolve.
		if _, err := firstMatch(formats, s, "session format"); err != nil {
			return nil, err
		}

		levelName, err := firstMatch(levels, s, "level")
		if err != nil {
			return nil, err
		}
		complexity, ok := complexityByLevel[levelName]
		if !ok {
			return nil, &errors.LookupError{Kind: "level", Key: levelName, In: s.Title}
		}

		language, err := firstMatch(languages, s, "language")
		if err != nil {
			return nil, err
		}
		var flag *string
		if f, ok := languageFlags[language]; ok {
			flag = &f
		}

		tagNames := []string{}
		for _, id := range s.CategoryItems {
			if name, ok := tags[id]; ok {
				tagNames = append(tagNames, name)
			}
		}

		speakerSlugs := []string{}
		for _, id := range s.Speakers {
			sl, ok := slugBySpeakerID[id]
			if !ok {
				return nil, &errors.LookupError{Kind: "speaker", Key: id, In: s.Title}
			}
			speakerSlugs = append(speakerSlugs, sl)
		}

		key := slug.Make(s.Title)
		next := hoverboard.Session{
			Language:     language,
			LanguageFlag: flag,
			Description:  s.Description,
			Complexity:   complexity,
			Tags:         tagNames,
			Speakers:     speakerSlugs,
			Title:        s.Title,
		}
		out[key] = mergeSession(previous(r.prev.Sessions, key), next)
	}
	return out, nil
}

// mergeSession applies the session field precedence: with no previous
// record the incoming one becomes current with empty curated fields;
// otherwise only the provider-derived fields refresh.
func mergeSession(prev *hoverboard.Session, next hoverboard.Session) hoverboard.Session {
	if prev == nil {
		return next
	}
	merged := *prev
	merged.Language = next.Language
	merged.LanguageFlag = next.LanguageFlag
	merged.Description = next.Description
	merged.Complexity = next.Complexity
	merged.Tags = next.Tags
	merged.Speakers = next.Speakers
	merged.Title = next.Title
	return merged
}

func previous(sessions hoverboard.Sessions, key string) *hoverboard.Session {
	if prev, ok := sessions[key]; ok {
		return &prev
	}
	return nil
}

// categoryTable resolves a category title to its id→name table; a payload
// without the category is fatal.
func categoryTable(p *sessionize.Payload, title string) (map[int64]string, error) {
	table, ok := p.CategoryTable(title)
	if !ok {
		return nil, &errors.LookupError{Kind: "category", Key: title}
	}
	return table, nil
}

// firstMatch resolves the first of the session's category-item ids present
// in the table; first match wins for single-valued categories.
func firstMatch(table map[int64]string, s sessionize.Session, kind string) (string, error) {
	for _, id := range s.CategoryItems {
		if name, ok := table[id]; ok {
			return name, nil
		}
	}
	return "", &errors.LookupError{Kind: kind, Key: s.ID, In: s.Title}
}
