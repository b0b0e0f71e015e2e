package app

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/game-de-it/pfe/bgm"
	"github.com/game-de-it/pfe/input"
	"github.com/game-de-it/pfe/style"
)

// BGM config row indices.
const (
	bgmRowEnabled = iota
	bgmRowVolume
	bgmRowMode
	bgmRowMusicMode
	bgmRowNext
	bgmRowCount
)

// BGMConfigScreen edits playback settings with immediate effect. Music
// mode turns the shell into a bare player: the backlight drops to
// minimum and all input is swallowed until X and Y are held together.
type BGMConfigScreen struct {
	list      List
	musicMode bool
}

func NewBGMConfigScreen() *BGMConfigScreen {
	s := &BGMConfigScreen{list: NewList(bgmRowCount)}
	s.list.SetCount(bgmRowCount)
	return s
}

func (s *BGMConfigScreen) Activate(a *App) {
	// Music mode never survives re-entry.
	s.musicMode = false
}

func (s *BGMConfigScreen) Deactivate(a *App) {
	if s.musicMode {
		s.leaveMusicMode(a)
	}
}

func bgmVolumeValues() []string {
	out := make([]string, 11)
	for i := range out {
		out[i] = strconv.Itoa(i)
	}
	return out
}

func (s *BGMConfigScreen) Update(a *App) {
	d := a.debouncer

	if s.musicMode {
		if d.IsDown(input.ActionX) && d.IsDown(input.ActionY) {
			s.leaveMusicMode(a)
		}
		return
	}

	s.list.HandleUpDown(d)

	dir := 0
	switch {
	case d.Pressed(input.ActionLeft):
		dir = -1
	case d.Pressed(input.ActionRight):
		dir = 1
	}
	if dir != 0 {
		s.cycleRow(a, s.list.Index, dir)
	}

	if d.Pressed(input.ActionA) {
		switch s.list.Index {
		case bgmRowMusicMode:
			s.enterMusicMode(a)
		case bgmRowNext:
			a.music.Next()
		}
		return
	}
	if d.Pressed(input.ActionB) {
		a.machine.Back()
	}
}

func (s *BGMConfigScreen) cycleRow(a *App, row, dir int) {
	switch row {
	case bgmRowEnabled:
		next := cycleValue([]string{"On", "Off"}, a.store.Setting("bgm_enabled"), dir)
		a.saveSetting("bgm_enabled", next)
		a.music.Configure(next == "On", a.store.SettingInt("bgm_volume"), bgm.ParseMode(a.store.Setting("bgm_mode")))
	case bgmRowVolume:
		next := cycleValue(bgmVolumeValues(), a.store.Setting("bgm_volume"), dir)
		a.saveSetting("bgm_volume", next)
		if v, err := strconv.Atoi(next); err == nil {
			a.music.SetVolume(v)
		}
	case bgmRowMode:
		next := cycleValue([]string{"Normal", "Shuffle"}, a.store.Setting("bgm_mode"), dir)
		a.saveSetting("bgm_mode", next)
		a.music.SetMode(bgm.ParseMode(next))
	case bgmRowMusicMode:
		s.enterMusicMode(a)
	}
}

func (s *BGMConfigScreen) enterMusicMode(a *App) {
	s.musicMode = true
	a.applyBrightness(1)
	a.log.Info("music mode on")
}

func (s *BGMConfigScreen) leaveMusicMode(a *App) {
	s.musicMode = false
	a.applyBrightness(a.store.SettingInt("brightness"))
	a.log.Info("music mode off")
}

func (s *BGMConfigScreen) rowValue(a *App, row int) string {
	switch row {
	case bgmRowEnabled:
		return a.store.Setting("bgm_enabled")
	case bgmRowVolume:
		return a.store.Setting("bgm_volume")
	case bgmRowMode:
		return a.store.Setting("bgm_mode")
	case bgmRowMusicMode:
		return "Off"
	}
	return ""
}

func (s *BGMConfigScreen) Draw(a *App, dst *ebiten.Image) {
	if s.musicMode {
		s.drawMusicMode(a, dst)
		return
	}

	drawHeader(dst, "BGM Config", "")

	face := *style.FontFace()
	names := [bgmRowCount]string{"BGM", "BGM Volume", "BGM Mode", "Music Mode", "Next Track"}
	for i := 0; i < bgmRowCount; i++ {
		y := s.list.rowY(i)
		if i == s.list.Index {
			fillRect(dst, style.SmallSpacing, y, style.ScreenWidth-2*style.SmallSpacing, style.ListRowHeight, style.Primary)
		}
		drawText(dst, names[i], face, style.Padding, y+4, style.Text)
		value := s.rowValue(a, i)
		if i == s.list.Index && i != bgmRowNext {
			value = "< " + value + " >"
		}
		if value != "" {
			drawTextRight(dst, value, face, style.ScreenWidth-2*style.Padding, y+4, style.Accent)
		}
	}

	small := *style.SmallFace()
	infoY := s.list.rowY(bgmRowCount) + 10
	if track := a.music.NowPlaying(); track != "" {
		line, _ := style.TruncateToWidth("Now playing: "+track, small, style.ScreenWidth-2*style.Padding)
		drawText(dst, line, small, style.Padding, infoY, style.TextSecondary)
	} else {
		drawText(dst, "No track playing", small, style.Padding, infoY, style.TextSecondary)
	}
	drawText(dst, strconv.Itoa(a.music.TrackCount())+" tracks", small, style.Padding, infoY+18, style.TextSecondary)

	drawFooter(dst, "Left/Right: Change  A: Select  B: Back")
}

func (s *BGMConfigScreen) drawMusicMode(a *App, dst *ebiten.Image) {
	track := a.music.NowPlaying()
	if track == "" {
		track = "No track playing"
	}
	face := *style.FontFace()
	line, _ := style.TruncateToWidth(track, face, style.ScreenWidth-2*style.Padding)
	drawTextCentered(dst, line, face, style.ScreenWidth/2, style.ScreenHeight/2-20, style.Text)
	drawTextCentered(dst, "Hold X + Y to exit", *style.SmallFace(), style.ScreenWidth/2, style.ScreenHeight/2+10, style.TextSecondary)
}
