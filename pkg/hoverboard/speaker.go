package hoverboard

// Speaker is one speaker profile, keyed externally by slug(name).
//
// A speaker record is either left completely untouched by sync (the
// default) or has its provider-derived subset replaced when the overwrite
// mode is enabled. There is no partial merge beyond that subset.
type Speaker struct {
	ShortBio       string   `json:"shortBio"`
	PhotoURL       string   `json:"photoUrl"`
	Name           string   `json:"name"`
	CompanyLogo    string   `json:"companyLogo"`
	Title          string   `json:"title"`
	Photo          string   `json:"photo"`
	Order          int64    `json:"order"`
	Featured       bool     `json:"featured"`
	Company        string   `json:"company"`
	CompanyLogoURL string   `json:"companyLogoUrl"`
	Country        string   `json:"country"`
	Bio            string   `json:"bio"`
	Socials        []Social `json:"socials"`
	Badges         []Badge  `json:"badges"`
}

// Social is one social link on a speaker profile.
type Social struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
	Link string `json:"link"`
}

// Badge is a decoration shown on the speaker page.
type Badge struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Speakers is the speakers-by-slug snapshot.
type Speakers map[string]Speaker
