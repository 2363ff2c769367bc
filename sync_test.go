package devfesttools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gdgmilano/devfest-tools/pkg/constants"
	"github.com/gdgmilano/devfest-tools/pkg/digest"
	"github.com/gdgmilano/devfest-tools/pkg/errors"
	"github.com/gdgmilano/devfest-tools/pkg/hoverboard"
)

const providerPayload = `{
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
      "categoryItems": [100, 201, 301, 400],
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
      "links": [{"title": "Twitter", "url": "https://twitter.com/ada", "linkType": "Twitter"}],
      "sessions": [77000],
      "fullName": "Ada Rossi"
    }
  ],
  "questions": [],
  "categories": [
    {"id": 1, "title": "Session format", "items": [{"id": 100, "name": "Session"}]},
    {"id": 2, "title": "Level", "items": [{"id": 201, "name": "Intermediate"}]},
    {"id": 3, "title": "Language", "items": [{"id": 300, "name": "Italian"}, {"id": 301, "name": "English"}]},
    {"id": 4, "title": "Tags", "items": [{"id": 400, "name": "Android"}]}
  ],
  "rooms": [
    {"id": 1, "name": "Room A"},
    {"id": 2, "name": "Room B"}
  ]
}`

func seedDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		constants.ScheduleFile: `{"2018-10-06": {"tracks": [], "dateReadable": "October 6th", "timeslots": [], "date": "2018-10-06"}}`,
		constants.SessionsFile: `{}`,
		constants.SpeakersFile: `{}`,
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func newSyncer(t *testing.T, dir, url string, extra ...Option) Syncer {
	t.Helper()
	opts := append([]Option{WithDataDir(dir), WithProviderURL(url)}, extra...)
	syncer, err := New(opts...)
	require.NoError(t, err)
	return syncer
}

func TestSyncEndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(providerPayload))
	}))
	defer srv.Close()

	dir := seedDataDir(t)
	syncer := newSyncer(t, dir, srv.URL)

	result, err := syncer.Sync(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Changed())
	assert.True(t, result.ScheduleChanged)
	assert.True(t, result.SessionsChanged)
	assert.True(t, result.SpeakersChanged)

	data, err := os.ReadFile(filepath.Join(dir, constants.ScheduleFile))
	require.NoError(t, err)
	var sched hoverboard.Schedule
	require.NoError(t, json.Unmarshal(data, &sched))
	assert.Equal(t, "2018-10-06", sched.Day.Date)
	assert.Equal(t, "October 6th", sched.Day.DateReadable)
	require.Len(t, sched.Day.Timeslots, 1)
	assert.Equal(t, "09:00", sched.Day.Timeslots[0].StartTime)
	assert.Equal(t, "09:45", sched.Day.Timeslots[0].EndTime)
	require.Len(t, sched.Day.Timeslots[0].Sessions, 2)
	assert.Equal(t, []string{"intro_talk"}, sched.Day.Timeslots[0].Sessions[0].Items)
	assert.Empty(t, sched.Day.Timeslots[0].Sessions[1].Items)

	data, err = os.ReadFile(filepath.Join(dir, constants.SessionsFile))
	require.NoError(t, err)
	var sessions hoverboard.Sessions
	require.NoError(t, json.Unmarshal(data, &sessions))
	require.Contains(t, sessions, "intro_talk")
	assert.Equal(t, "Intermediate", sessions["intro_talk"].Complexity)

	data, err = os.ReadFile(filepath.Join(dir, constants.SpeakersFile))
	require.NoError(t, err)
	var speakers hoverboard.Speakers
	require.NoError(t, json.Unmarshal(data, &speakers))
	require.Contains(t, speakers, "ada_rossi")
	assert.Equal(t, int64(5), speakers["ada_rossi"].Order)

	// The raw provider payload is cached next to the snapshots.
	assert.FileExists(t, filepath.Join(dir, constants.ProviderCacheFile))
}

func TestSyncSecondRunIsNoop(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(providerPayload))
	}))
	defer srv.Close()

	dir := seedDataDir(t)

	first := newSyncer(t, dir, srv.URL)
	result, err := first.Sync(context.Background())
	require.NoError(t, err)
	require.True(t, result.Changed())

	// A fresh run over the already-merged snapshots rewrites nothing.
	second := newSyncer(t, dir, srv.URL)
	result, err = second.Sync(context.Background())
	require.NoError(t, err)
	assert.False(t, result.Changed())
}

func TestDigestWritesAllFiles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(providerPayload))
	}))
	defer srv.Close()

	dir := seedDataDir(t)

	// Digests describe the run's starting snapshots, so sync first and
	// digest from a second run.
	_, err := newSyncer(t, dir, srv.URL).Sync(context.Background())
	require.NoError(t, err)

	cfg := digest.DefaultConfig()
	cfg.MainTags = []string{"Android"}
	syncer := newSyncer(t, dir, srv.URL, WithDigestConfig(cfg))
	require.NoError(t, syncer.Digest(context.Background()))

	for _, name := range []string{
		constants.SocialFile,
		constants.AgendaByTagFile,
		constants.AgendaFullFile,
		constants.AgendaCompactFile,
		constants.AgendaTalksFile,
		constants.AgendaSlidesFile,
	} {
		assert.FileExists(t, filepath.Join(dir, name))
	}

	social, err := os.ReadFile(filepath.Join(dir, constants.SocialFile))
	require.NoError(t, err)
	assert.Contains(t, string(social), "sessionId=intro_talk")
	assert.Contains(t, string(social), "Talk by Ada Rossi")

	byTag, err := os.ReadFile(filepath.Join(dir, constants.AgendaByTagFile))
	require.NoError(t, err)
	assert.Contains(t, string(byTag), "Session with #Android")
	assert.Contains(t, string(byTag), "Intro Talk (by Ada Rossi)")
}

func TestRunAbortsWithoutSeedSnapshots(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(providerPayload))
	}))
	defer srv.Close()

	syncer := newSyncer(t, t.TempDir(), srv.URL)
	err := syncer.Run(context.Background())
	require.Error(t, err)

	var merr *errors.MissingFileError
	assert.ErrorAs(t, err, &merr)
}

func TestNewRejectsEmptyOptions(t *testing.T) {
	_, err := New(WithDataDir(""))
	require.Error(t, err)

	_, err = New(WithProviderURL(""))
	require.Error(t, err)

	var cerr *errors.ConfigError
	assert.ErrorAs(t, err, &cerr)
}
