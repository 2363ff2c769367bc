package reconciler

import (
	"github.com/gdgmilano/devfest-tools/pkg/hoverboard"
	"github.com/gdgmilano/devfest-tools/pkg/sessionize"
	"github.com/gdgmilano/devfest-tools/pkg/slug"
)

// socialIcons maps a provider link title to the app's icon name. Anything
// unknown renders with the generic website icon.
var socialIcons = map[string]string{
	"Twitter":  "twitter",
	"LinkedIn": "linkedin",
}

const socialIconFallback = "website"

// defaultSpeakerOrder is the display order a freshly imported speaker gets;
// the featured ones are reordered by hand afterwards.
const defaultSpeakerOrder = 5

// Speakers rebuilds the speakers-by-slug snapshot.
//
// Known speakers are left completely unchanged unless overwrite mode is on,
// in which case only the provider-derived subset (photo, name, bio,
// socials) refreshes. There is no partial merge beyond that subset.
func (r *Reconciler) Speakers(p *sessionize.Payload) (hoverboard.Speakers, error) {
	out := make(hoverboard.Speakers, len(p.Speakers))
	for _, sp := range p.Speakers {
		socials := make([]hoverboard.Social, 0, len(sp.Links))
		for _, link := range sp.Links {
			icon, ok := socialIcons[link.Title]
			if !ok {
				icon = socialIconFallback
			}
			socials = append(socials, hoverboard.Social{
				Name: link.Title,
				Icon: icon,
				Link: link.URL,
			})
		}

		next := hoverboard.Speaker{
			ShortBio:       "",
			PhotoURL:       sp.ProfilePicture,
			Name:           sp.FullName,
			CompanyLogo:    "",
			Title:          sp.TagLine,
			Photo:          sp.ProfilePicture,
			Order:          defaultSpeakerOrder,
			Featured:       false,
			Company:        "",
			CompanyLogoURL: "",
			Country:        "",
			Bio:            sp.Bio,
			Socials:        socials,
			Badges:         []hoverboard.Badge{},
		}

		key := slug.Make(sp.FullName)
		out[key] = r.mergeSpeaker(previousSpeaker(r.prev.Speakers, key), next)
	}
	return out, nil
}

// mergeSpeaker applies the speaker precedence: new speakers take the
// incoming record wholesale; known speakers keep every curated field and,
// only in overwrite mode, refresh the provider-derived subset.
func (r *Reconciler) mergeSpeaker(prev *hoverboard.Speaker, next hoverboard.Speaker) hoverboard.Speaker {
	if prev == nil {
		return next
	}
	if !r.overwriteSpeakers {
		return *prev
	}
	merged := *prev
	merged.PhotoURL = next.PhotoURL
	merged.Name = next.Name
	merged.Photo = next.Photo
	merged.Bio = next.Bio
	merged.Socials = next.Socials
	return merged
}

func previousSpeaker(speakers hoverboard.Speakers, key string) *hoverboard.Speaker {
	if prev, ok := speakers[key]; ok {
		return &prev
	}
	return nil
}
