package nav

// ScreenID identifies one of the launcher's screens.
type ScreenID int

const (
	// ScreenSplash is the startup splash screen
	ScreenSplash ScreenID = iota
	// ScreenMainMenu is the category/main menu screen
	ScreenMainMenu
	// ScreenFileList is the per-category ROM browser
	ScreenFileList
	// ScreenCoreSelect picks the emulator core for a ROM
	ScreenCoreSelect
	// ScreenFavorites lists favorited ROMs
	ScreenFavorites
	// ScreenRecent lists recently launched ROMs
	ScreenRecent
	// ScreenSearch searches ROMs across all categories
	ScreenSearch
	// ScreenSettings is the scalar preferences editor
	ScreenSettings
	// ScreenWifiSettings edits wifi credentials
	ScreenWifiSettings
	// ScreenKeyConfigMenu picks an action to rebind
	ScreenKeyConfigMenu
	// ScreenKeyConfig captures a replacement key for one action
	ScreenKeyConfig
	// ScreenBGMConfig edits background music settings
	ScreenBGMConfig
	// ScreenDatetimeSettings shows and adjusts the system clock
	ScreenDatetimeSettings
	// ScreenStatistics aggregates launch history
	ScreenStatistics
	// ScreenAbout shows version and path information
	ScreenAbout
	// ScreenQuitMenu offers restart/reboot/shutdown
	ScreenQuitMenu
)

// screenCount is the number of defined screens.
const screenCount = 16

// String returns the string representation of the screen ID.
func (s ScreenID) String() string {
	switch s {
	case ScreenSplash:
		return "Splash"
	case ScreenMainMenu:
		return "MainMenu"
	case ScreenFileList:
		return "FileList"
	case ScreenCoreSelect:
		return "CoreSelect"
	case ScreenFavorites:
		return "Favorites"
	case ScreenRecent:
		return "Recent"
	case ScreenSearch:
		return "Search"
	case ScreenSettings:
		return "Settings"
	case ScreenWifiSettings:
		return "WifiSettings"
	case ScreenKeyConfigMenu:
		return "KeyConfigMenu"
	case ScreenKeyConfig:
		return "KeyConfig"
	case ScreenBGMConfig:
		return "BGMConfig"
	case ScreenDatetimeSettings:
		return "DatetimeSettings"
	case ScreenStatistics:
		return "Statistics"
	case ScreenAbout:
		return "About"
	case ScreenQuitMenu:
		return "QuitMenu"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is a defined screen ID.
func (s ScreenID) Valid() bool {
	return s >= 0 && s < screenCount
}

// ParseScreenID maps a screen name back to its ID. Unknown names return
// ScreenMainMenu and false so restored sessions always land somewhere safe.
func ParseScreenID(name string) (ScreenID, bool) {
	for s := ScreenID(0); s < screenCount; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return ScreenMainMenu, false
}
