package app

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/game-de-it/pfe/input"
	"github.com/game-de-it/pfe/style"
)

const wifiFieldMax = 32

// Wifi screen modes. Field editing and network picking overlay the row
// list instead of pushing new screens.
const (
	wifiRows = iota
	wifiEditSSID
	wifiEditPass
	wifiPickNetwork
)

// Wifi row indices.
const (
	wifiRowEnabled = iota
	wifiRowSSID
	wifiRowPassword
	wifiRowScan
	wifiRowConnect
	wifiRowStatus
	wifiRowCount
)

// WifiScreen edits wireless credentials and drives the host wifi
// scripts. Scan and status run in the background; their output lands
// here through ScriptDone.
type WifiScreen struct {
	list     List
	mode     int
	edit     string
	kb       Keyboard
	networks []string
	picker   List
	status   string
	scanning bool
}

func NewWifiScreen() *WifiScreen {
	s := &WifiScreen{list: NewList(wifiRowCount), picker: NewList(8)}
	s.list.SetCount(wifiRowCount)
	return s
}

func (s *WifiScreen) Activate(a *App) {
	s.mode = wifiRows
	s.status = ""
	s.scanning = false
	if a.cfg.Scripts.WifiStatus != "" {
		a.startScript("WiFi status", a.cfg.Scripts.WifiStatus)
	}
}

func (s *WifiScreen) Deactivate(a *App) {}

func (s *WifiScreen) Update(a *App) {
	switch s.mode {
	case wifiEditSSID, wifiEditPass:
		s.updateEdit(a)
	case wifiPickNetwork:
		s.updatePicker(a)
	default:
		s.updateRows(a)
	}
}

func (s *WifiScreen) updateRows(a *App) {
	d := a.debouncer
	s.list.HandleUpDown(d)

	if s.list.Index == wifiRowEnabled {
		if d.Pressed(input.ActionLeft) || d.Pressed(input.ActionRight) {
			s.toggleEnabled(a)
		}
	}

	if d.Pressed(input.ActionA) {
		switch s.list.Index {
		case wifiRowEnabled:
			s.toggleEnabled(a)
		case wifiRowSSID:
			s.startEdit(wifiEditSSID, a.store.Setting("wifi_ssid"))
		case wifiRowPassword:
			s.startEdit(wifiEditPass, a.store.Setting("wifi_password"))
		case wifiRowScan:
			s.startScan(a)
		case wifiRowConnect:
			s.connect(a)
		case wifiRowStatus:
			if a.cfg.Scripts.WifiStatus != "" {
				a.startScript("WiFi status", a.cfg.Scripts.WifiStatus)
			}
		}
		return
	}
	if d.Pressed(input.ActionB) {
		a.machine.Back()
	}
}

func (s *WifiScreen) toggleEnabled(a *App) {
	enabled := !a.store.SettingBool("wifi_enabled")
	value := "Off"
	arg := "off"
	if enabled {
		value = "On"
		arg = "on"
	}
	a.saveSetting("wifi_enabled", value)
	if a.cfg.Scripts.WifiToggle != "" {
		a.startScript("WiFi "+arg, a.cfg.Scripts.WifiToggle, arg)
	}
}

func (s *WifiScreen) startEdit(mode int, current string) {
	s.mode = mode
	s.edit = current
	s.kb.Reset()
}

func (s *WifiScreen) startScan(a *App) {
	if a.cfg.Scripts.WifiScan == "" {
		a.toast.Show("WiFi scan: no script configured", toastTicks)
		return
	}
	if s.scanning {
		return
	}
	s.scanning = true
	a.startScript("WiFi scan", a.cfg.Scripts.WifiScan)
}

func (s *WifiScreen) connect(a *App) {
	ssid := a.store.Setting("wifi_ssid")
	if ssid == "" {
		a.toast.Show("Set an SSID first", toastTicks)
		return
	}
	if a.cfg.Scripts.WifiConnect == "" {
		a.toast.Show("WiFi connect: no script configured", toastTicks)
		return
	}
	a.startScript("WiFi connect", a.cfg.Scripts.WifiConnect, ssid, a.store.Setting("wifi_password"))
}

func (s *WifiScreen) updateEdit(a *App) {
	d := a.debouncer
	s.kb.HandleNav(d)

	if d.Pressed(input.ActionA) && len(s.edit) < wifiFieldMax {
		s.edit += string(s.kb.Rune())
	}
	if d.Pressed(input.ActionB) {
		if s.edit != "" {
			s.edit = s.edit[:len(s.edit)-1]
		} else {
			s.mode = wifiRows
		}
	}
	if d.Pressed(input.ActionStart) {
		key := "wifi_ssid"
		if s.mode == wifiEditPass {
			key = "wifi_password"
		}
		a.saveSetting(key, s.edit)
		s.mode = wifiRows
	}
}

func (s *WifiScreen) updatePicker(a *App) {
	d := a.debouncer
	s.picker.HandleUpDown(d)

	if d.Pressed(input.ActionA) {
		if i := s.picker.Selected(); i >= 0 {
			a.saveSetting("wifi_ssid", s.networks[i])
		}
		s.mode = wifiRows
		return
	}
	if d.Pressed(input.ActionB) {
		s.mode = wifiRows
	}
}

// ScriptDone consumes scan and status results. Everything else falls
// back to the generic toast.
func (s *WifiScreen) ScriptDone(a *App, res scriptResult) bool {
	switch res.label {
	case "WiFi scan":
		s.scanning = false
		if res.err != nil {
			a.toast.Show("WiFi scan failed", toastFailTicks)
			return true
		}
		s.networks = parseNetworks(res.output)
		if len(s.networks) == 0 {
			a.toast.Show("No networks found", toastTicks)
			return true
		}
		s.picker.SetCount(len(s.networks))
		s.picker.SetCursor(0, 0)
		s.mode = wifiPickNetwork
		return true
	case "WiFi status":
		if res.err != nil {
			s.status = "Status unavailable"
		} else {
			s.status = firstLine(res.output)
		}
		return true
	}
	return false
}

// parseNetworks turns scan script output into a deduplicated SSID list,
// one network per line.
func parseNetworks(output string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, line := range strings.Split(output, "\n") {
		name := strings.TrimSpace(line)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

func (s *WifiScreen) rowValue(a *App, row int) string {
	switch row {
	case wifiRowEnabled:
		if a.store.SettingBool("wifi_enabled") {
			return "On"
		}
		return "Off"
	case wifiRowSSID:
		if ssid := a.store.Setting("wifi_ssid"); ssid != "" {
			return ssid
		}
		return "(not set)"
	case wifiRowPassword:
		if pass := a.store.Setting("wifi_password"); pass != "" {
			return strings.Repeat("*", len(pass))
		}
		return "(not set)"
	case wifiRowScan:
		if s.scanning {
			return "Scanning..."
		}
	}
	return ""
}

var wifiRowNames = [wifiRowCount]string{
	"Enabled", "SSID", "Password", "Scan networks", "Connect", "Show status",
}

func (s *WifiScreen) Draw(a *App, dst *ebiten.Image) {
	drawHeader(dst, "WiFi", "")

	face := *style.FontFace()
	for i := 0; i < wifiRowCount; i++ {
		y := s.list.rowY(i)
		if i == s.list.Index && s.mode == wifiRows {
			fillRect(dst, style.SmallSpacing, y, style.ScreenWidth-2*style.SmallSpacing, style.ListRowHeight, style.Primary)
		}
		drawText(dst, wifiRowNames[i], face, style.Padding, y+4, style.Text)
		if value := s.rowValue(a, i); value != "" {
			drawTextRight(dst, value, face, style.ScreenWidth-2*style.Padding, y+4, style.Accent)
		}
	}

	if s.status != "" {
		small := *style.SmallFace()
		line, _ := style.TruncateToWidth(s.status, small, style.ScreenWidth-2*style.Padding)
		drawText(dst, line, small, style.Padding, s.list.rowY(wifiRowCount)+6, style.TextSecondary)
	}

	switch s.mode {
	case wifiEditSSID, wifiEditPass:
		s.drawEdit(dst)
	case wifiPickNetwork:
		s.drawPicker(dst)
	}

	drawFooter(dst, "A: Select  B: Back")
}

func (s *WifiScreen) drawEdit(dst *ebiten.Image) {
	dimScreen(dst, 153)

	title := "SSID"
	value := s.edit
	if s.mode == wifiEditPass {
		title = "Password"
		value = strings.Repeat("*", len(s.edit))
	}
	face := *style.FontFace()
	drawTextCentered(dst, title, face, style.ScreenWidth/2, 120, style.Text)
	drawTextCentered(dst, value+"_", face, style.ScreenWidth/2, 145, style.Accent)

	x := (style.ScreenWidth - s.kb.Width()) / 2
	s.kb.Draw(dst, x, 175)
	drawTextCentered(dst, "A: Type  B: Erase  Start: Done", *style.SmallFace(), style.ScreenWidth/2, style.ScreenHeight-50, style.TextSecondary)
}

func (s *WifiScreen) drawPicker(dst *ebiten.Image) {
	dimScreen(dst, 153)

	face := *style.FontFace()
	drawTextCentered(dst, "Select network", face, style.ScreenWidth/2, 80, style.Text)
	start, end := s.picker.VisibleRange()
	for i := start; i < end; i++ {
		y := float64(110 + (i-s.picker.Scroll)*style.ListRowHeight)
		if i == s.picker.Index {
			fillRect(dst, 60, y, style.ScreenWidth-120, style.ListRowHeight, style.Primary)
		}
		name, _ := style.TruncateToWidth(s.networks[i], face, style.ScreenWidth-140)
		drawText(dst, name, face, 70, y+4, style.Text)
	}
}
