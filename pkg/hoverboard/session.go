// Package hoverboard models the stable app-facing schema: the schedule,
// sessions-by-slug and speakers-by-slug snapshots consumed by the Hoverboard
// conference app, and their file store.
//
// Field names and JSON shapes are fixed by the app and the Firestore
// import/export scripts; they must not change.
package hoverboard

// Session is one talk or service slot, keyed externally by slug(title).
//
// presentation, videoId, icon, image and extend are curated by hand after
// the first sync and are never overwritten by a later sync.
type Session struct {
	Language     string   `json:"language,omitempty"`
	LanguageFlag *string  `json:"languageFlag,omitempty"`
	Description  string   `json:"description"`
	Presentation string   `json:"presentation"`
	Complexity   string   `json:"complexity,omitempty"`
	Tags         []string `json:"tags"`
	Speakers     []string `json:"speakers"`
	Title        string   `json:"title"`
	VideoID      string   `json:"videoId"`
	Extend       *int64   `json:"extend,omitempty"`
	Icon         string   `json:"icon"`
	Image        string   `json:"image"`
}

// Sessions is the sessions-by-slug snapshot.
type Sessions map[string]Session
