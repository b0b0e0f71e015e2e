package app

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/game-de-it/pfe/input"
	"github.com/game-de-it/pfe/nav"
	"github.com/game-de-it/pfe/style"
)

// SplashScreen shows the boot image for a configured number of seconds,
// then replaces itself with the restored session target. Any face
// button skips the wait.
type SplashScreen struct {
	ticks int
	limit int
	img   *ebiten.Image
}

func NewSplashScreen() *SplashScreen {
	return &SplashScreen{}
}

func (s *SplashScreen) Activate(a *App) {
	s.ticks = 0
	s.limit = a.cfg.SplashTime * TPS
	if s.limit <= 0 {
		s.limit = 3 * TPS
	}
	if s.img == nil && a.cfg.SplashImage != "" {
		img, err := loadImage(a.cfg.SplashImage, style.ScreenWidth, style.ScreenHeight)
		if err != nil {
			a.log.Warnf("splash image not loaded: %v", err)
		} else {
			s.img = img
		}
	}
}

func (s *SplashScreen) Deactivate(a *App) {}

func (s *SplashScreen) Update(a *App) {
	s.ticks++
	d := a.debouncer
	skip := d.Pressed(input.ActionA) || d.Pressed(input.ActionB) ||
		d.Pressed(input.ActionStart) || d.Pressed(input.ActionSelect)
	if s.ticks < s.limit && !skip {
		return
	}
	s.close(a)
}

// close replaces the splash with the post-splash target and stages the
// queued auto launch unless B is held down as the escape hatch.
func (s *SplashScreen) close(a *App) {
	if a.autoLaunch != nil {
		if a.debouncer.IsDown(input.ActionB) {
			a.log.Info("auto launch skipped")
		} else {
			a.machine.Set(nav.KeyLaunchROM, a.autoLaunch.ROMPath)
			a.machine.Set(nav.KeyLaunchCategory, a.autoLaunch.Category)
		}
		a.autoLaunch = nil
	}

	name := a.machine.GetString(nav.KeyPostSplash, "")
	a.machine.Delete(nav.KeyPostSplash)
	target, _ := nav.ParseScreenID(name)
	if target != nav.ScreenMainMenu {
		a.machine.SeedHistory(nav.ScreenMainMenu)
	}
	a.machine.Replace(target)
}

func (s *SplashScreen) Draw(a *App, dst *ebiten.Image) {
	if s.img != nil {
		drawImageCentered(dst, s.img, style.ScreenWidth/2, style.ScreenHeight/2)
		return
	}
	drawTextCentered(dst, "PFE", *style.TitleFace(), style.ScreenWidth/2, style.ScreenHeight/2-40, style.Text)
	drawTextCentered(dst, "ROM Launcher", *style.FontFace(), style.ScreenWidth/2, style.ScreenHeight/2-8, style.TextSecondary)
	if a.version != "" {
		drawTextCentered(dst, a.version, *style.SmallFace(), style.ScreenWidth/2, style.ScreenHeight-60, style.TextSecondary)
	}
}
