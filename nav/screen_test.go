package nav

import "testing"

func TestScreenIDString(t *testing.T) {
	tests := []struct {
		id       ScreenID
		expected string
	}{
		{ScreenSplash, "Splash"},
		{ScreenMainMenu, "MainMenu"},
		{ScreenFileList, "FileList"},
		{ScreenCoreSelect, "CoreSelect"},
		{ScreenFavorites, "Favorites"},
		{ScreenRecent, "Recent"},
		{ScreenSearch, "Search"},
		{ScreenSettings, "Settings"},
		{ScreenWifiSettings, "WifiSettings"},
		{ScreenKeyConfigMenu, "KeyConfigMenu"},
		{ScreenKeyConfig, "KeyConfig"},
		{ScreenBGMConfig, "BGMConfig"},
		{ScreenDatetimeSettings, "DatetimeSettings"},
		{ScreenStatistics, "Statistics"},
		{ScreenAbout, "About"},
		{ScreenQuitMenu, "QuitMenu"},
		{ScreenID(99), "Unknown"},
	}

	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			got := tc.id.String()
			if got != tc.expected {
				t.Errorf("ScreenID(%d).String() = %q, want %q", tc.id, got, tc.expected)
			}
		})
	}
}

func TestParseScreenID(t *testing.T) {
	// Every defined screen round-trips through its name.
	for s := ScreenID(0); s < screenCount; s++ {
		got, ok := ParseScreenID(s.String())
		if !ok || got != s {
			t.Errorf("ParseScreenID(%q) = %v, %v, want %v, true", s.String(), got, ok, s)
		}
	}

	got, ok := ParseScreenID("NoSuchScreen")
	if ok || got != ScreenMainMenu {
		t.Errorf("ParseScreenID(unknown) = %v, %v, want MainMenu, false", got, ok)
	}
}

func TestScreenIDValid(t *testing.T) {
	if !ScreenQuitMenu.Valid() {
		t.Error("QuitMenu should be valid")
	}
	if ScreenID(-1).Valid() || ScreenID(screenCount).Valid() {
		t.Error("out-of-range IDs should be invalid")
	}
}
