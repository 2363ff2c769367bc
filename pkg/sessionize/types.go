// Package sessionize reads the Sessionize session-management API schema.
//
// The upstream shape is the "view/all" payload:
//
//	GET https://sessionize.com/api/v2/<event>/view/all
//
// The schema is volatile upstream; this package only pins the fields the
// reconciliation depends on and treats everything category-related as
// opaque ids that must be resolved through the payload's category tables.
package sessionize

import "encoding/json"

// Payload is the top-level view/all response.
type Payload struct {
	Sessions   []Session         `json:"sessions"`
	Speakers   []Speaker         `json:"speakers"`
	Questions  []json.RawMessage `json:"questions"` // unused, carried for round-trips
	Categories []Category        `json:"categories"`
	Rooms      []Room            `json:"rooms"`
}

// Session is one scheduled entry, service sessions included.
type Session struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	Description      string            `json:"description"`
	StartsAt         string            `json:"startsAt"` // "2018-10-06T09:00:00+02:00"
	EndsAt           string            `json:"endsAt"`
	IsServiceSession bool              `json:"isServiceSession"`
	IsPlenumSession  bool              `json:"isPlenumSession"`
	Speakers         []string          `json:"speakers"`
	CategoryItems    []int64           `json:"categoryItems"`
	QuestionAnswers  []json.RawMessage `json:"questionAnswers"`
	RoomID           int64             `json:"roomId"`
}

// Speaker is a provider-side speaker profile.
type Speaker struct {
	ID             string  `json:"id"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Bio            string  `json:"bio"`
	TagLine        string  `json:"tagLine"`
	ProfilePicture string  `json:"profilePicture"`
	IsTopSpeaker   bool    `json:"isTopSpeaker"`
	Links          []Link  `json:"links"`
	Sessions       []int64 `json:"sessions"`
	FullName       string  `json:"fullName"`
}

// Link is a speaker's social link.
type Link struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	LinkType string `json:"linkType"`
}

// Category groups items like "Session format", "Level", "Language", "Tags".
// Items reuse the (id, name, sort) triple of Room.
type Category struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Items []Room `json:"items"`
	Sort  int64  `json:"sort"`
}

// Room is an (id, name, sort) triple, also used for category items.
type Room struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Sort int64  `json:"sort"`
}

// Category titles tracked by the sync.
const (
	CategorySessionFormat = "Session format"
	CategoryLevel         = "Level"
	CategoryLanguage      = "Language"
	CategoryTags          = "Tags"
)

// CategoryTable returns the id→name table for the category with the given
// title, or false when the payload has no such category. The table is
// rebuilt per call: category ids are not stable across provider edits.
func (p *Payload) CategoryTable(title string) (map[int64]string, bool) {
	for _, c := range p.Categories {
		if c.Title == title {
			table := make(map[int64]string, len(c.Items))
			for _, item := range c.Items {
				table[item.ID] = item.Name
			}
			return table, true
		}
	}
	return nil, false
}
