package hoverboard

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/renameio/v2"

	"github.com/gdgmilano/devfest-tools/pkg/constants"
	"github.com/gdgmilano/devfest-tools/pkg/errors"
	"github.com/gdgmilano/devfest-tools/pkg/logging"
)

// downloadHint names the external step that seeds the snapshot files.
const downloadHint = "firestore_download.sh"

// Store persists the three snapshots under a single data directory.
//
// Snapshots load lazily and are cached for the lifetime of the Store, so
// every read within one run sees the same values even after a save. Saves
// compare against the loaded snapshot and skip the write when nothing
// changed; an enabled backup mode first copies the old file to a
// timestamp-prefixed sibling.
type Store struct {
	dir     string
	backups bool
	now     func() time.Time

	schedule *Schedule
	sessions Sessions
	speakers Speakers
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithBackups enables timestamped backup copies before overwriting.
func WithBackups(enabled bool) StoreOption {
	return func(s *Store) {
		s.backups = enabled
	}
}

// WithClock overrides the clock used for backup prefixes, for tests.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore creates a store rooted at dir.
func NewStore(dir string, opts ...StoreOption) *Store {
	s := &Store{
		dir: dir,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dir returns the data directory the store is rooted at.
func (s *Store) Dir() string {
	return s.dir
}

// Schedule returns the schedule snapshot, loading it on first use.
func (s *Store) Schedule() (*Schedule, error) {
	if s.schedule != nil {
		return s.schedule, nil
	}
	var sched Schedule
	if err := s.load(constants.ScheduleFile, &sched); err != nil {
		return nil, err
	}
	s.schedule = &sched
	return s.schedule, nil
}

// Sessions returns the sessions snapshot, loading it on first use.
func (s *Store) Sessions() (Sessions, error) {
	if s.sessions != nil {
		return s.sessions, nil
	}
	var sessions Sessions
	if err := s.load(constants.SessionsFile, &sessions); err != nil {
		return nil, err
	}
	s.sessions = sessions
	return s.sessions, nil
}

// Speakers returns the speakers snapshot, loading it on first use.
func (s *Store) Speakers() (Speakers, error) {
	if s.speakers != nil {
		return s.speakers, nil
	}
	var speakers Speakers
	if err := s.load(constants.SpeakersFile, &speakers); err != nil {
		return nil, err
	}
	s.speakers = speakers
	return s.speakers, nil
}

// SaveSchedule writes the schedule snapshot if it differs from the loaded
// one. It reports whether a write happened.
func (s *Store) SaveSchedule(next *Schedule) (bool, error) {
	prev, err := s.Schedule()
	if err != nil {
		return false, err
	}
	if snapshotEqual(prev, next) {
		return false, nil
	}
	return true, s.write(constants.ScheduleFile, next)
}

// SaveSessions writes the sessions snapshot if it differs from the loaded
// one. It reports whether a write happened.
func (s *Store) SaveSessions(next Sessions) (bool, error) {
	prev, err := s.Sessions()
	if err != nil {
		return false, err
	}
	if snapshotEqual(prev, next) {
		return false, nil
	}
	return true, s.write(constants.SessionsFile, next)
}

// SaveSpeakers writes the speakers snapshot if it differs from the loaded
// one. It reports whether a write happened.
func (s *Store) SaveSpeakers(next Speakers) (bool, error) {
	prev, err := s.Speakers()
	if err != nil {
		return false, err
	}
	if snapshotEqual(prev, next) {
		return false, nil
	}
	return true, s.write(constants.SpeakersFile, next)
}

// snapshotEqual compares snapshot values structurally. Empty and nil
// collections compare equal so a loaded-and-rebuilt snapshot with no real
// change never triggers a write.
func snapshotEqual(a, b any) bool {
	return cmp.Equal(a, b, cmpopts.EquateEmpty())
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *Store) load(name string, v any) error {
	path := s.path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &errors.MissingFileError{Path: path, Hint: downloadHint}
		}
		return errors.WrapIO("read", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.WrapParse("json", path, err)
	}
	return nil
}

func (s *Store) write(name string, v any) error {
	path := s.path(name)

	data, err := json.Marshal(v)
	if err != nil {
		return errors.WrapIO("write", path, err)
	}

	if s.backups {
		if err := s.backup(name); err != nil {
			return err
		}
	}

	// The new value is fully computed before this point; an in-flight crash
	// leaves the previous file intact.
	if err := renameio.WriteFile(path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}

	logging.Debug().Str("file", name).Int("bytes", len(data)).Msg("Snapshot written")
	return nil
}

func (s *Store) backup(name string) error {
	src := s.path(name)
	dst := s.path(s.now().Format(constants.BackupTimeFormat) + "_" + name)

	in, err := os.Open(src)
	if err != nil {
		return errors.WrapIO("copy", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("copy", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return errors.WrapIO("copy", dst, err)
	}
	return nil
}
