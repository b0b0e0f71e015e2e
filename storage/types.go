package storage

import (
	"time"

	"github.com/game-de-it/pfe/nav"
)

// currentVersion tags every record file for future migrations.
const currentVersion = 1

// maxHistoryEntries caps history.json. Appends beyond it drop the oldest.
const maxHistoryEntries = 50

// SessionSnapshot captures where the user was so the next boot can put
// them back there.
type SessionSnapshot struct {
	Version       int                     `json:"version"`
	Screen        string                  `json:"screen"`
	Category      string                  `json:"category,omitempty"`
	Positions     map[string]nav.Position `json:"category_positions,omitempty"`
	Subdirectory  string                  `json:"subdirectory,omitempty"`
	DirStack      []string                `json:"directory_stack,omitempty"`
	SelectedIndex int                     `json:"selected_index"`
	ScrollOffset  int                     `json:"scroll_offset"`
}

// HistoryRecord is one launch. Play counts are not stored; they fall out
// of counting records per ROM.
type HistoryRecord struct {
	ROMPath    string    `json:"rom_path"`
	Category   string    `json:"category"`
	CoreUsed   string    `json:"core_used"`
	LastPlayed time.Time `json:"last_played"`
}

type historyRecordFile struct {
	Version    int             `json:"version"`
	MaxEntries int             `json:"max_entries"`
	Entries    []HistoryRecord `json:"entries"`
}

func defaultHistoryFile() historyRecordFile {
	return historyRecordFile{Version: currentVersion, MaxEntries: maxHistoryEntries}
}

type coreRecordFile struct {
	Version   int               `json:"version"`
	Overrides map[string]string `json:"core_overrides"`
}

func defaultCoreFile() coreRecordFile {
	return coreRecordFile{Version: currentVersion, Overrides: make(map[string]string)}
}

type settingsRecordFile struct {
	Version  int               `json:"version"`
	Settings map[string]string `json:"settings"`
}

func defaultSettingsFile() settingsRecordFile {
	return settingsRecordFile{Version: currentVersion, Settings: make(map[string]string)}
}

type keyRecordFile struct {
	Version  int               `json:"version"`
	Bindings map[string]string `json:"bindings"`
}

func defaultKeyFile() keyRecordFile {
	return keyRecordFile{Version: currentVersion, Bindings: make(map[string]string)}
}

// Favorite marks one ROM as favorited.
type Favorite struct {
	ROMPath  string    `json:"rom_path"`
	Category string    `json:"category"`
	Added    time.Time `json:"added"`
}

type favoritesRecordFile struct {
	Version   int        `json:"version"`
	Favorites []Favorite `json:"favorites"`
}

func defaultFavoritesFile() favoritesRecordFile {
	return favoritesRecordFile{Version: currentVersion}
}

// Setting keys and their defaults. Unknown keys read as "".
var defaultSettings = map[string]string{
	"show_screenshots": "On",
	"sort_mode":        "Name",
	"button_layout":    "Nintendo",
	"auto_launch":      "Off",
	"view_mode":        "list",
	"theme":            "dark",
	"bgm_enabled":      "On",
	"bgm_volume":       "5",
	"bgm_mode":         "Normal",
	"brightness":       "5",
	"wifi_enabled":     "false",
	"wifi_ssid":        "",
	"wifi_password":    "",
}

// DefaultSetting returns the default value for a setting key.
func DefaultSetting(key string) string {
	return defaultSettings[key]
}
