package app

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/game-de-it/pfe/input"
	"github.com/game-de-it/pfe/style"
)

// Quit menu row indices.
const (
	quitRowRestart = iota
	quitRowReboot
	quitRowShutdown
	quitRowCount
)

var quitRowNames = [quitRowCount]string{"Restart PFE", "Reboot", "Shutdown"}
var quitRowNotes = [quitRowCount]string{"Restart the launcher", "Restart the system", "Power off the system"}

// QuitMenuScreen hands the machine over to the host quit scripts. Every
// action is armed first and fired on a second confirm, so a stray press
// cannot power the device off. Leaving through here saves the session;
// the next start resumes where this one ended.
type QuitMenuScreen struct {
	list   List
	arming bool
	armed  int
}

func NewQuitMenuScreen() *QuitMenuScreen {
	s := &QuitMenuScreen{list: NewList(quitRowCount)}
	s.list.SetCount(quitRowCount)
	return s
}

func (s *QuitMenuScreen) Activate(a *App) {
	s.arming = false
}

func (s *QuitMenuScreen) Deactivate(a *App) {
	s.arming = false
}

func (s *QuitMenuScreen) Update(a *App) {
	d := a.debouncer

	if s.arming {
		if d.Pressed(input.ActionA) {
			s.execute(a, s.armed)
			s.arming = false
		}
		if d.Pressed(input.ActionB) {
			s.arming = false
		}
		return
	}

	s.list.HandleUpDown(d)
	if d.Pressed(input.ActionA) {
		s.arming = true
		s.armed = s.list.Index
		return
	}
	if d.Pressed(input.ActionB) {
		a.machine.Back()
	}
}

func (s *QuitMenuScreen) execute(a *App, row int) {
	switch row {
	case quitRowRestart:
		// The restart script relaunches the shell once this process
		// exits. Quit regardless so a missing script still gets the
		// user out.
		if a.cfg.Scripts.Restart != "" {
			if err := a.spawnScript(a.cfg.Scripts.Restart); err != nil {
				a.log.WithError(err).Warn("restart script")
			}
		}
		a.log.Info("restart requested")
		a.Quit()
	case quitRowReboot:
		s.executeSystem(a, "Reboot", a.cfg.Scripts.Reboot)
	case quitRowShutdown:
		s.executeSystem(a, "Shutdown", a.cfg.Scripts.Shutdown)
	}
}

// executeSystem fires a reboot or shutdown script. Without a script
// nothing will take the system down, so the shell stays up instead of
// quitting into a dead screen.
func (s *QuitMenuScreen) executeSystem(a *App, label, path string) {
	if path == "" {
		a.toast.Show(label+": no script configured", toastTicks)
		return
	}
	if err := a.spawnScript(path); err != nil {
		a.log.WithError(err).Warn("quit script")
		a.toast.Show(label+" failed", toastFailTicks)
		return
	}
	a.log.Info(label + " requested")
	a.Quit()
}

func (s *QuitMenuScreen) Draw(a *App, dst *ebiten.Image) {
	drawHeader(dst, "Quit", "")

	face := *style.FontFace()
	small := *style.SmallFace()
	for i := 0; i < quitRowCount; i++ {
		y := s.list.rowY(i)
		if i == s.list.Index {
			fillRect(dst, style.SmallSpacing, y, style.ScreenWidth-2*style.SmallSpacing, style.ListRowHeight, style.Primary)
		}
		drawText(dst, quitRowNames[i], face, style.Padding, y+4, style.Text)
		drawTextRight(dst, quitRowNotes[i], small, style.ScreenWidth-2*style.Padding, y+7, style.TextSecondary)
	}

	if s.arming {
		s.drawConfirm(dst)
		drawFooter(dst, "A: Confirm  B: Cancel")
		return
	}
	drawFooter(dst, "A: Execute  B: Back")
}

func (s *QuitMenuScreen) drawConfirm(dst *ebiten.Image) {
	dimScreen(dst, 153)

	const boxW, boxH = 280.0, 90.0
	x := (style.ScreenWidth - boxW) / 2
	y := (style.ScreenHeight - boxH) / 2
	fillRect(dst, x, y, boxW, boxH, style.Surface)
	strokeRect(dst, x, y, boxW, boxH, style.Danger)

	face := *style.FontFace()
	drawTextCentered(dst, quitRowNames[s.armed]+"?", face, style.ScreenWidth/2, y+20, style.Danger)
	drawTextCentered(dst, "A: OK   B: Cancel", *style.SmallFace(), style.ScreenWidth/2, y+52, style.Text)
}
