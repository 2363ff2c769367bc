package sessionize

import (
	"encoding/json"
	"fmt"

	"github.com/gdgmilano/devfest-tools/pkg/errors"
)

// Parse decodes a raw view/all payload. It fails with a ParseError when the
// JSON is malformed or a record is missing a field the sync depends on.
// The provider schema is checked exactly as far as the reconciliation
// needs it; optional fields pass through unvalidated.
func Parse(data []byte) (*Payload, error) {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errors.WrapParse("json", "", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Payload) validate() error {
	for i, s := range p.Sessions {
		switch {
		case s.ID == "":
			return parseErr(fmt.Sprintf("sessions[%d]: missing id", i))
		case s.Title == "":
			return parseErr(fmt.Sprintf("session %s: missing title", s.ID))
		case s.StartsAt == "":
			return parseErr(fmt.Sprintf("session %s: missing startsAt", s.ID))
		case s.EndsAt == "":
			return parseErr(fmt.Sprintf("session %s: missing endsAt", s.ID))
		}
	}
	for i, sp := range p.Speakers {
		switch {
		case sp.ID == "":
			return parseErr(fmt.Sprintf("speakers[%d]: missing id", i))
		case sp.FullName == "":
			return parseErr(fmt.Sprintf("speaker %s: missing fullName", sp.ID))
		}
	}
	for i, r := range p.Rooms {
		if r.Name == "" {
			return parseErr(fmt.Sprintf("rooms[%d]: missing name", i))
		}
	}
	for i, c := range p.Categories {
		if c.Title == "" {
			return parseErr(fmt.Sprintf("categories[%d]: missing title", i))
		}
	}
	return nil
}

func parseErr(msg string) error {
	return errors.NewParseError("json", "", msg, nil)
}
