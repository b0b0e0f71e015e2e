package app

import (
	"fmt"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/game-de-it/pfe/input"
	"github.com/game-de-it/pfe/style"
)

// AboutScreen shows version and environment information.
type AboutScreen struct {
	lines []string
}

func NewAboutScreen() *AboutScreen {
	return &AboutScreen{}
}

func (s *AboutScreen) Activate(a *App) {
	s.lines = []string{
		"PFE " + a.version,
		"",
		"Runtime: " + runtime.Version(),
		"Platform: " + runtime.GOOS + "/" + runtime.GOARCH,
		"Data dir: " + a.store.Dir(),
		fmt.Sprintf("Categories: %d", len(a.cfg.Categories)),
		"Theme: " + a.store.Setting("theme"),
		"Layout: " + a.store.Setting("button_layout"),
	}
}

func (s *AboutScreen) Deactivate(a *App) {}

func (s *AboutScreen) Update(a *App) {
	if a.debouncer.Pressed(input.ActionB) {
		a.machine.Back()
	}
}

func (s *AboutScreen) Draw(a *App, dst *ebiten.Image) {
	drawHeader(dst, "About", "")

	titleFace := *style.TitleFace()
	drawTextCentered(dst, "PFE ROM Launcher", titleFace, style.ScreenWidth/2, 70, style.Accent)

	face := *style.FontFace()
	y := 120.0
	for _, line := range s.lines {
		line, _ = style.TruncateToWidth(line, face, style.ScreenWidth-2*style.Padding)
		drawTextCentered(dst, line, face, style.ScreenWidth/2, y, style.Text)
		y += 26
	}

	drawFooter(dst, "B: Back")
}
