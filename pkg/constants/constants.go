// Package constants provides shared constants used throughout the devfest-tools codebase.
// This includes timeouts, file permissions, and the canonical file names of the
// data directory layout.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to the session provider
	DefaultHTTPTimeout = 30 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Data directory layout. The file names are fixed: the Hoverboard app and the
// Firestore import/export scripts read them by name.
const (
	// ScheduleFile holds the single-day schedule snapshot
	ScheduleFile = "schedule.json"

	// SessionsFile holds the sessions-by-slug snapshot
	SessionsFile = "sessions.json"

	// SpeakersFile holds the speakers-by-slug snapshot
	SpeakersFile = "speakers.json"

	// ProviderCacheFile holds the raw Sessionize view/all payload
	ProviderCacheFile = "sessionize.json"
)

// Digest output file names
const (
	SocialFile        = "social.txt"
	AgendaByTagFile   = "agenda-by-tag.txt"
	AgendaFullFile    = "agenda-full.txt"
	AgendaCompactFile = "agenda-compat.txt"
	AgendaTalksFile   = "agenda-compat-only-talk.txt"
	AgendaSlidesFile  = "agenda-with-slide.md"
)

// Default configuration values
const (
	// DefaultDataDir is where snapshots, the provider cache and digests live
	DefaultDataDir = "backup"

	// BackupTimeFormat is the timestamp prefix format for snapshot backups
	BackupTimeFormat = "20060102_150405"
)
