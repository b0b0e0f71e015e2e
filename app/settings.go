package app

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/game-de-it/pfe/catalog"
	"github.com/game-de-it/pfe/input"
	"github.com/game-de-it/pfe/nav"
	"github.com/game-de-it/pfe/style"
)

// settingRow is one line of the settings screen: either a value cycled
// with Left/Right or a jump into a sub-screen.
type settingRow struct {
	name   string
	key    string
	values []string
	target nav.ScreenID
}

func (r *settingRow) isValue() bool { return r.key != "" }

// cycleValue steps through values from cur by dir with wraparound.
// Unknown current values restart at the first entry.
func cycleValue(values []string, cur string, dir int) string {
	if len(values) == 0 {
		return cur
	}
	idx := 0
	for i, v := range values {
		if v == cur {
			idx = i
			break
		}
	}
	idx = (idx + dir%len(values) + len(values)) % len(values)
	return values[idx]
}

// SettingsScreen edits the scalar preferences and opens the dedicated
// sub-screens. Value changes apply and persist immediately.
type SettingsScreen struct {
	list List
	rows []settingRow
}

func NewSettingsScreen() *SettingsScreen {
	onOff := []string{"On", "Off"}
	brightness := make([]string, 10)
	for i := range brightness {
		brightness[i] = strconv.Itoa(i + 1)
	}
	rows := []settingRow{
		{name: "Theme", key: "theme", values: style.ThemeNames()},
		{name: "Sort Mode", key: "sort_mode", values: catalog.SortModes},
		{name: "Show Screenshots", key: "show_screenshots", values: onOff},
		{name: "Auto Launch", key: "auto_launch", values: onOff},
		{name: "Brightness", key: "brightness", values: brightness},
		{name: "Date/Time", target: nav.ScreenDatetimeSettings},
		{name: "WiFi", target: nav.ScreenWifiSettings},
		{name: "Key Config", target: nav.ScreenKeyConfigMenu},
		{name: "BGM Config", target: nav.ScreenBGMConfig},
		{name: "Statistics", target: nav.ScreenStatistics},
		{name: "About", target: nav.ScreenAbout},
		{name: "Quit", target: nav.ScreenQuitMenu},
	}
	s := &SettingsScreen{list: NewList(style.ListRows), rows: rows}
	s.list.SetCount(len(rows))
	return s
}

func (s *SettingsScreen) Activate(a *App)   {}
func (s *SettingsScreen) Deactivate(a *App) {}

func (s *SettingsScreen) Update(a *App) {
	d := a.debouncer
	s.list.HandleUpDown(d)

	row := &s.rows[s.list.Index]
	if row.isValue() {
		dir := 0
		switch {
		case d.Pressed(input.ActionLeft):
			dir = -1
		case d.Pressed(input.ActionRight):
			dir = 1
		}
		if dir != 0 {
			next := cycleValue(row.values, a.store.Setting(row.key), dir)
			a.saveSetting(row.key, next)
			s.applySetting(a, row.key, next)
		}
	}

	if d.Pressed(input.ActionA) && !row.isValue() {
		a.machine.Go(row.target)
		return
	}
	if d.Pressed(input.ActionB) {
		a.machine.Back()
	}
}

// applySetting pushes a changed value into the running shell.
func (s *SettingsScreen) applySetting(a *App, key, value string) {
	switch key {
	case "theme":
		style.ApplyThemeByName(value)
	case "brightness":
		if level, err := strconv.Atoi(value); err == nil {
			a.applyBrightness(level)
		}
	}
}

func (s *SettingsScreen) Draw(a *App, dst *ebiten.Image) {
	drawHeader(dst, "Settings", "")

	face := *style.FontFace()
	start, end := s.list.VisibleRange()
	for i := start; i < end; i++ {
		row := &s.rows[i]
		y := s.list.rowY(i)
		if i == s.list.Index {
			fillRect(dst, style.SmallSpacing, y, style.ScreenWidth-2*style.SmallSpacing, style.ListRowHeight, style.Primary)
		}
		drawText(dst, row.name, face, style.Padding, y+4, style.Text)

		if row.isValue() {
			value := a.store.Setting(row.key)
			if i == s.list.Index {
				value = "< " + value + " >"
			}
			drawTextRight(dst, value, face, style.ScreenWidth-2*style.Padding, y+4, style.Accent)
		} else {
			drawTextRight(dst, ">", face, style.ScreenWidth-2*style.Padding, y+4, style.TextSecondary)
		}
	}
	s.list.drawScrollbar(dst)

	drawFooter(dst, "Left/Right: Change  A: Open  B: Back")
}
