package sessionize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gdgmilano/devfest-tools/pkg/errors"
)

const samplePayload = `{
  "sessions": [
    {
      "id": "77000",
      "title": "Intro Talk",
      "description": "Opening session",
      "startsAt": "2018-10-06T09:00:00",
      "endsAt": "2018-10-06T09:45:00",
      "isServiceSession": false,
      "isPlenumSession": true,
      "speakers": ["a1b2"],
      "categoryItems": [100, 200, 301, 400],
      "questionAnswers": [],
      "roomId": 1
    }
  ],
  "speakers": [
    {
      "id": "a1b2",
      "firstName": "Ada",
      "lastName": "Rossi",
      "bio": "Engineer.",
      "tagLine": "Android GDE",
      "profilePicture": "https://example.com/ada.jpg",
      "isTopSpeaker": true,
      "links": [
        {"title": "Twitter", "url": "https://twitter.com/ada", "linkType": "Twitter"}
      ],
      "sessions": [77000],
      "fullName": "Ada Rossi"
    }
  ],
  "questions": [],
  "categories": [
    {"id": 1, "title": "Session format", "items": [{"id": 100, "name": "Session", "sort": 1}], "sort": 1},
    {"id": 2, "title": "Level", "items": [{"id": 200, "name": "Intermediate", "sort": 1}], "sort": 2},
    {"id": 3, "title": "Language", "items": [{"id": 300, "name": "Italian", "sort": 1}, {"id": 301, "name": "English", "sort": 2}], "sort": 3},
    {"id": 4, "title": "Tags", "items": [{"id": 400, "name": "Android", "sort": 1}, {"id": 401, "name": "Cloud", "sort": 2}], "sort": 4}
  ],
  "rooms": [
    {"id": 1, "name": "Room A", "sort": 1},
    {"id": 2, "name": "Room B", "sort": 2}
  ]
}`

func TestParse(t *testing.T) {
	p, err := Parse([]byte(samplePayload))
	require.NoError(t, err)

	require.Len(t, p.Sessions, 1)
	assert.Equal(t, "Intro Talk", p.Sessions[0].Title)
	assert.Equal(t, int64(1), p.Sessions[0].RoomID)
	assert.Equal(t, []int64{100, 200, 301, 400}, p.Sessions[0].CategoryItems)

	require.Len(t, p.Speakers, 1)
	assert.Equal(t, "Ada Rossi", p.Speakers[0].FullName)

	require.Len(t, p.Rooms, 2)
	assert.Equal(t, "Room A", p.Rooms[0].Name)
}

func TestParseMalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{"sessions": [`))
	require.Error(t, err)
	var perr *errors.ParseError
	assert.ErrorAs(t, err, &perr)
}

func TestParseWrongShape(t *testing.T) {
	_, err := Parse([]byte(`{"sessions": {"not": "a list"}}`))
	require.Error(t, err)
	var perr *errors.ParseError
	assert.ErrorAs(t, err, &perr)
}

func TestParseMissingRequiredField(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{
			"session without title",
			`{"sessions": [{"id": "1", "startsAt": "x", "endsAt": "y"}], "speakers": [], "questions": [], "categories": [], "rooms": []}`,
		},
		{
			"session without startsAt",
			`{"sessions": [{"id": "1", "title": "T", "endsAt": "y"}], "speakers": [], "questions": [], "categories": [], "rooms": []}`,
		},
		{
			"speaker without fullName",
			`{"sessions": [], "speakers": [{"id": "s1"}], "questions": [], "categories": [], "rooms": []}`,
		},
		{
			"room without name",
			`{"sessions": [], "speakers": [], "questions": [], "categories": [], "rooms": [{"id": 1}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.payload))
			require.Error(t, err)
			var perr *errors.ParseError
			assert.ErrorAs(t, err, &perr)
		})
	}
}

func TestCategoryTable(t *testing.T) {
	p, err := Parse([]byte(samplePayload))
	require.NoError(t, err)

	langs, ok := p.CategoryTable(CategoryLanguage)
	require.True(t, ok)
	assert.Equal(t, map[int64]string{300: "Italian", 301: "English"}, langs)

	_, ok = p.CategoryTable("No such category")
	assert.False(t, ok)
}
