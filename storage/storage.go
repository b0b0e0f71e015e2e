// Package storage persists the launcher's state as JSON records in a data
// directory: session snapshot, launch history, core preferences, scalar
// settings, key bindings and favorites. Every write is a full-file atomic
// rewrite, and every read tolerates missing or corrupt files by falling
// back to defaults. Losing state is acceptable; failing to start is not.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const (
	sessionFile   = "session.json"
	historyFile   = "history.json"
	coresFile     = "cores.json"
	settingsFile  = "settings.json"
	keysFile      = "keys.json"
	favoritesFile = "favorites.json"
)

// Store owns the data directory and the in-memory copies of every record.
// It is used from the app tick only and is not safe for concurrent use.
type Store struct {
	dir string
	log *logrus.Entry

	session   *SessionSnapshot
	history   historyRecordFile
	cores     coreRecordFile
	settings  settingsRecordFile
	keys      keyRecordFile
	favorites favoritesRecordFile
	favSet    map[string]bool
}

// Open loads every record from dir, substituting defaults for anything
// missing or unreadable. Open never fails; problems are logged and the
// affected record starts fresh.
func Open(dir string, log *logrus.Entry) *Store {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	s := &Store{
		dir:       dir,
		log:       log,
		history:   defaultHistoryFile(),
		cores:     defaultCoreFile(),
		settings:  defaultSettingsFile(),
		keys:      defaultKeyFile(),
		favorites: defaultFavoritesFile(),
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Warnf("data directory %s unavailable: %v", dir, err)
	}

	var session SessionSnapshot
	switch err := ReadJSON(s.path(sessionFile), &session); {
	case err == nil && session.Screen != "":
		s.session = &session
	case err != nil && !os.IsNotExist(err):
		log.Warnf("session discarded: %v", err)
	}

	s.loadRecord(historyFile, &s.history)
	if s.history.MaxEntries <= 0 {
		s.history.MaxEntries = maxHistoryEntries
	}
	s.trimHistory()

	s.loadRecord(coresFile, &s.cores)
	if s.cores.Overrides == nil {
		s.cores.Overrides = make(map[string]string)
	}

	s.loadRecord(settingsFile, &s.settings)
	if s.settings.Settings == nil {
		s.settings.Settings = make(map[string]string)
	}

	s.loadRecord(keysFile, &s.keys)
	if s.keys.Bindings == nil {
		s.keys.Bindings = make(map[string]string)
	}

	s.loadRecord(favoritesFile, &s.favorites)
	s.rebuildFavoriteSet()

	return s
}

// loadRecord reads one record file into dst, leaving dst untouched when the
// file is absent and resetting nothing on parse errors beyond a warning.
func (s *Store) loadRecord(name string, dst any) {
	err := ReadJSON(s.path(name), dst)
	if err != nil && !os.IsNotExist(err) {
		s.log.Warnf("%s unreadable, using defaults: %v", name, err)
	}
}

// Dir returns the data directory the store was opened on.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// AtomicWriteJSON writes data to a JSON file atomically.
// It writes to a temporary file first, then renames to the target path,
// so the file is never left partially written.
func AtomicWriteJSON(path string, data any) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	tempFile := path + ".tmp"
	if err := os.WriteFile(tempFile, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tempFile, path); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// ReadJSON reads and unmarshals a JSON file.
func ReadJSON(path string, data any) error {
	jsonData, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(jsonData, data); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	return nil
}
