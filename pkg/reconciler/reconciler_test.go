package reconciler

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gdgmilano/devfest-tools/pkg/errors"
	"github.com/gdgmilano/devfest-tools/pkg/hoverboard"
	"github.com/gdgmilano/devfest-tools/pkg/sessionize"
)

// Category item ids used by the fixtures: 100-format, 200-level,
// 300/301-language, 400+-tags.
func fixtureCategories() []sessionize.Category {
	return []sessionize.Category{
		{ID: 1, Title: sessionize.CategorySessionFormat, Items: []sessionize.Room{
			{ID: 100, Name: "Session"},
		}},
		{ID: 2, Title: sessionize.CategoryLevel, Items: []sessionize.Room{
			{ID: 200, Name: "Introductory and overview"},
			{ID: 201, Name: "Intermediate"},
			{ID: 202, Name: "Advanced"},
		}},
		{ID: 3, Title: sessionize.CategoryLanguage, Items: []sessionize.Room{
			{ID: 300, Name: "Italian"},
			{ID: 301, Name: "English"},
		}},
		{ID: 4, Title: sessionize.CategoryTags, Items: []sessionize.Room{
			{ID: 400, Name: "Android"},
			{ID: 401, Name: "Cloud"},
			{ID: 402, Name: "Machine Learning"},
		}},
	}
}

func fixturePayload() *sessionize.Payload {
	return &sessionize.Payload{
		Sessions: []sessionize.Session{
			{
				ID:            "77000",
				Title:         "Intro Talk",
				Description:   "Opening session",
				StartsAt:      "2018-10-06T09:00:00",
				EndsAt:        "2018-10-06T09:45:00",
				Speakers:      []string{"a1b2"},
				CategoryItems: []int64{100, 201, 301, 400},
				RoomID:        1,
			},
		},
		Speakers: []sessionize.Speaker{
			{
				ID:             "a1b2",
				FirstName:      "Ada",
				LastName:       "Rossi",
				Bio:            "Engineer.",
				TagLine:        "Android GDE",
				ProfilePicture: "https://example.com/ada.jpg",
				Links: []sessionize.Link{
					{Title: "Twitter", URL: "https://twitter.com/ada", LinkType: "Twitter"},
				},
				FullName: "Ada Rossi",
			},
		},
		Categories: fixtureCategories(),
		Rooms: []sessionize.Room{
			{ID: 1, Name: "Room A"},
			{ID: 2, Name: "Room B"},
		},
	}
}

func emptySnapshots() Snapshots {
	return Snapshots{
		Schedule: &hoverboard.Schedule{Day: hoverboard.ScheduleDay{
			DateReadable: "October 6th",
			Date:         "2018-10-06",
		}},
		Sessions: hoverboard.Sessions{},
		Speakers: hoverboard.Speakers{},
	}
}

func TestScheduleSingleSession(t *testing.T) {
	r := New(emptySnapshots())

	sched, err := r.Schedule(fixturePayload())
	require.NoError(t, err)

	assert.Equal(t, "2018-10-06", sched.Day.Date)
	assert.Equal(t, "October 6th", sched.Day.DateReadable)
	assert.Equal(t, []hoverboard.Track{{Title: "Room A"}, {Title: "Room B"}}, sched.Day.Tracks)

	require.Len(t, sched.Day.Timeslots, 1)
	slot := sched.Day.Timeslots[0]
	assert.Equal(t, "09:00", slot.StartTime)
	assert.Equal(t, "09:45", slot.EndTime)

	// One cell per room, in room order; the empty room keeps an empty cell.
	require.Len(t, slot.Sessions, 2)
	assert.Equal(t, []string{"intro_talk"}, slot.Sessions[0].Items)
	assert.Empty(t, slot.Sessions[1].Items)
}

func TestScheduleGroupsByStartTime(t *testing.T) {
	p := fixturePayload()
	p.Sessions = append(p.Sessions,
		sessionize.Session{
			ID:            "77001",
			Title:         "Parallel Talk",
			StartsAt:      "2018-10-06T09:00:00",
			EndsAt:        "2018-10-06T09:40:00",
			CategoryItems: []int64{100, 201, 301},
			RoomID:        2,
		},
		sessionize.Session{
			ID:            "77002",
			Title:         "Later Talk",
			StartsAt:      "2018-10-06T10:00:00",
			EndsAt:        "2018-10-06T10:45:00",
			CategoryItems: []int64{100, 202, 300},
			RoomID:        2,
		},
	)

	sched, err := New(emptySnapshots()).Schedule(p)
	require.NoError(t, err)

	require.Len(t, sched.Day.Timeslots, 2)

	first := sched.Day.Timeslots[0]
	assert.Equal(t, "09:00", first.StartTime)
	assert.Equal(t, "09:40", first.EndTime, "slot end is the earliest end among its sessions")
	assert.Equal(t, []string{"intro_talk"}, first.Sessions[0].Items)
	assert.Equal(t, []string{"parallel_talk"}, first.Sessions[1].Items)

	second := sched.Day.Timeslots[1]
	assert.Equal(t, "10:00", second.StartTime)
	assert.Empty(t, second.Sessions[0].Items)
	assert.Equal(t, []string{"later_talk"}, second.Sessions[1].Items)
}

func TestScheduleCarriesExtend(t *testing.T) {
	extend := int64(2)
	prev := emptySnapshots()
	prev.Schedule.Day.Timeslots = []hoverboard.Timeslot{
		{StartTime: "09:00", EndTime: "09:45", Sessions: []hoverboard.SessionKey{
			{Items: []string{"intro_talk"}, Extend: &extend},
			{Items: []string{}},
		}},
	}

	sched, err := New(prev).Schedule(fixturePayload())
	require.NoError(t, err)

	key := sched.Day.Timeslots[0].Sessions[0]
	require.NotNil(t, key.Extend)
	assert.Equal(t, int64(2), *key.Extend)
}

func TestScheduleBadTimestamp(t *testing.T) {
	p := fixturePayload()
	p.Sessions[0].StartsAt = "bogus"

	_, err := New(emptySnapshots()).Schedule(p)
	require.Error(t, err)

	var perr *errors.ParseError
	assert.ErrorAs(t, err, &perr)
}

func TestSessionsNewRecord(t *testing.T) {
	r := New(emptySnapshots())

	sessions, err := r.Sessions(fixturePayload())
	require.NoError(t, err)

	require.Contains(t, sessions, "intro_talk")
	got := sessions["intro_talk"]
	assert.Equal(t, "Intro Talk", got.Title)
	assert.Equal(t, "Opening session", got.Description)
	assert.Equal(t, "Intermediate", got.Complexity)
	assert.Equal(t, "English", got.Language)
	require.NotNil(t, got.LanguageFlag)
	assert.Equal(t, "🇬🇧", *got.LanguageFlag)
	assert.Equal(t, []string{"Android"}, got.Tags)
	assert.Equal(t, []string{"ada_rossi"}, got.Speakers)

	// Curated fields start empty on a brand new record.
	assert.Empty(t, got.Presentation)
	assert.Empty(t, got.VideoID)
	assert.Nil(t, got.Extend)
}

func TestSessionsComplexityVocabulary(t *testing.T) {
	tests := []struct {
		levelItem int64
		want      string
	}{
		{200, "Beginner"},
		{201, "Intermediate"},
		{202, "Advanced"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			p := fixturePayload()
			p.Sessions[0].CategoryItems = []int64{100, tt.levelItem, 301}

			sessions, err := New(emptySnapshots()).Sessions(p)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sessions["intro_talk"].Complexity)
		})
	}
}

func TestSessionsPreservesCuratedFields(t *testing.T) {
	extend := int64(2)
	prev := emptySnapshots()
	prev.Sessions = hoverboard.Sessions{
		"intro_talk": {
			Title:        "Intro Talk",
			Description:  "Stale description",
			Presentation: "https://example.com/slides.pdf",
			VideoID:      "dQw4w9WgXcQ",
			Icon:         "mic",
			Image:        "intro.png",
			Extend:       &extend,
		},
	}

	sessions, err := New(prev).Sessions(fixturePayload())
	require.NoError(t, err)

	got := sessions["intro_talk"]
	assert.Equal(t, "Opening session", got.Description, "provider field refreshes")
	assert.Equal(t, "https://example.com/slides.pdf", got.Presentation)
	assert.Equal(t, "dQw4w9WgXcQ", got.VideoID)
	assert.Equal(t, "mic", got.Icon)
	assert.Equal(t, "intro.png", got.Image)
	require.NotNil(t, got.Extend)
	assert.Equal(t, int64(2), *got.Extend)
}

func TestSessionsUnknownLanguageHasNoFlag(t *testing.T) {
	p := fixturePayload()
	p.Categories[2].Items = append(p.Categories[2].Items,
		sessionize.Room{ID: 302, Name: "Spanish"})
	p.Sessions[0].CategoryItems = []int64{100, 201, 302}

	sessions, err := New(emptySnapshots()).Sessions(p)
	require.NoError(t, err)

	got := sessions["intro_talk"]
	assert.Equal(t, "Spanish", got.Language)
	assert.Nil(t, got.LanguageFlag)
}

func TestSessionsLookupFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*sessionize.Payload)
		kind   string
	}{
		{
			"missing category",
			func(p *sessionize.Payload) { p.Categories = p.Categories[:3] },
			"category",
		},
		{
			"session without level item",
			func(p *sessionize.Payload) { p.Sessions[0].CategoryItems = []int64{100, 301} },
			"level",
		},
		{
			"unmapped level name",
			func(p *sessionize.Payload) {
				p.Categories[1].Items = []sessionize.Room{{ID: 201, Name: "Wizard"}}
			},
			"level",
		},
		{
			"session without language item",
			func(p *sessionize.Payload) { p.Sessions[0].CategoryItems = []int64{100, 201} },
			"language",
		},
		{
			"unknown speaker reference",
			func(p *sessionize.Payload) { p.Sessions[0].Speakers = []string{"ghost"} },
			"speaker",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := fixturePayload()
			tt.mutate(p)

			_, err := New(emptySnapshots()).Sessions(p)
			require.Error(t, err)

			var lerr *errors.LookupError
			require.ErrorAs(t, err, &lerr)
			assert.Equal(t, tt.kind, lerr.Kind)
		})
	}
}

func TestSpeakersNewRecord(t *testing.T) {
	speakers, err := New(emptySnapshots()).Speakers(fixturePayload())
	require.NoError(t, err)

	require.Contains(t, speakers, "ada_rossi")
	got := speakers["ada_rossi"]
	assert.Equal(t, "Ada Rossi", got.Name)
	assert.Equal(t, "Android GDE", got.Title)
	assert.Equal(t, "Engineer.", got.Bio)
	assert.Equal(t, "https://example.com/ada.jpg", got.PhotoURL)
	assert.Equal(t, "https://example.com/ada.jpg", got.Photo)
	assert.Equal(t, int64(5), got.Order)
	assert.False(t, got.Featured)

	require.Len(t, got.Socials, 1)
	assert.Equal(t, hoverboard.Social{
		Name: "Twitter",
		Icon: "twitter",
		Link: "https://twitter.com/ada",
	}, got.Socials[0])
}

func TestSpeakersSocialIconFallback(t *testing.T) {
	p := fixturePayload()
	p.Speakers[0].Links = []sessionize.Link{
		{Title: "LinkedIn", URL: "https://linkedin.com/in/ada"},
		{Title: "Blog", URL: "https://ada.example.com"},
	}

	speakers, err := New(emptySnapshots()).Speakers(p)
	require.NoError(t, err)

	socials := speakers["ada_rossi"].Socials
	require.Len(t, socials, 2)
	assert.Equal(t, "linkedin", socials[0].Icon)
	assert.Equal(t, "website", socials[1].Icon)
}

func TestSpeakersKnownRecordUntouchedByDefault(t *testing.T) {
	prev := emptySnapshots()
	curated := hoverboard.Speaker{
		ShortBio: "Curated short bio",
		Name:     "Ada R.",
		Company:  "ACME",
		Order:    1,
		Featured: true,
		Bio:      "Curated bio",
	}
	prev.Speakers = hoverboard.Speakers{"ada_rossi": curated}

	speakers, err := New(prev).Speakers(fixturePayload())
	require.NoError(t, err)

	assert.Equal(t, curated, speakers["ada_rossi"])
}

func TestSpeakersOverwriteRefreshesProviderSubset(t *testing.T) {
	prev := emptySnapshots()
	prev.Speakers = hoverboard.Speakers{"ada_rossi": {
		ShortBio: "Curated short bio",
		Name:     "Ada R.",
		Company:  "ACME",
		Country:  "Italy",
		Order:    1,
		Featured: true,
		Bio:      "Curated bio",
	}}

	speakers, err := New(prev, WithSpeakerOverwrite(true)).Speakers(fixturePayload())
	require.NoError(t, err)

	got := speakers["ada_rossi"]
	assert.Equal(t, "Ada Rossi", got.Name)
	assert.Equal(t, "Engineer.", got.Bio)
	assert.Equal(t, "https://example.com/ada.jpg", got.Photo)
	require.Len(t, got.Socials, 1)

	// Everything outside the provider subset survives.
	assert.Equal(t, "Curated short bio", got.ShortBio)
	assert.Equal(t, "ACME", got.Company)
	assert.Equal(t, "Italy", got.Country)
	assert.Equal(t, int64(1), got.Order)
	assert.True(t, got.Featured)
}

func TestRunIsIdempotent(t *testing.T) {
	p := fixturePayload()

	first, err := New(emptySnapshots()).Run(p)
	require.NoError(t, err)

	second, err := New(Snapshots{
		Schedule: first.Schedule,
		Sessions: first.Sessions,
		Speakers: first.Speakers,
	}).Run(p)
	require.NoError(t, err)

	assert.True(t, cmp.Equal(first, second, cmpopts.EquateEmpty()),
		cmp.Diff(first, second, cmpopts.EquateEmpty()))
}

func TestRunSlugCollisionLastWins(t *testing.T) {
	p := fixturePayload()
	p.Sessions = append(p.Sessions, sessionize.Session{
		ID:            "77009",
		Title:         "intro talk",
		Description:   "Duplicate title, later in the payload",
		StartsAt:      "2018-10-06T11:00:00",
		EndsAt:        "2018-10-06T11:45:00",
		CategoryItems: []int64{100, 201, 300},
		RoomID:        1,
	})

	sessions, err := New(emptySnapshots()).Sessions(p)
	require.NoError(t, err)

	require.Len(t, sessions, 1)
	assert.Equal(t, "Duplicate title, later in the payload", sessions["intro_talk"].Description)
}
