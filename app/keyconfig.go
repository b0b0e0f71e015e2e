package app

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/game-de-it/pfe/input"
	"github.com/game-de-it/pfe/style"
)

const (
	// captureTimeoutTicks is how long the wizard waits on one action
	// before skipping it (3 seconds at 30 TPS).
	captureTimeoutTicks = 90
	captureWarnShort    = 60
	captureWarnLong     = 90
)

// captureWizard walks the bindable actions and records one key name per
// action. It is fed one tick at a time and never touches ebiten, so
// tests can drive it directly.
type captureWizard struct {
	actions   []input.Action
	index     int
	bound     map[string]string
	waitTicks int
	warning   string
	warnTicks int
	done      bool
}

func newCaptureWizard() *captureWizard {
	return &captureWizard{
		actions: input.BindableActions(),
		bound:   make(map[string]string),
	}
}

// captureRequired reports whether the wizard refuses to skip the action.
// Confirm and cancel must always end up bound.
func captureRequired(a input.Action) bool {
	return a == input.ActionA || a == input.ActionB
}

// Current returns the action being captured. ok is false once the
// wizard has finished.
func (w *captureWizard) Current() (input.Action, bool) {
	if w.done || w.index >= len(w.actions) {
		return 0, false
	}
	return w.actions[w.index], true
}

// Tick advances the wizard by one tick. pressed is the name of a key
// that went down this tick, or "" for none.
func (w *captureWizard) Tick(pressed string) {
	if w.warnTicks > 0 {
		w.warnTicks--
	}
	if w.done {
		return
	}

	if pressed != "" {
		w.bound[w.actions[w.index].String()] = pressed
		w.advance()
		return
	}

	w.waitTicks++
	if w.waitTicks < captureTimeoutTicks {
		return
	}
	a := w.actions[w.index]
	if captureRequired(a) {
		w.warn(a.String()+" is required!", captureWarnShort)
		w.waitTicks = 0
		return
	}
	w.advance()
}

func (w *captureWizard) advance() {
	w.index++
	w.waitTicks = 0
	if w.index >= len(w.actions) {
		w.finish()
	}
}

// finish closes the wizard, or restarts it from the top when a required
// action somehow ended up unbound.
func (w *captureWizard) finish() {
	_, okA := w.bound[input.ActionA.String()]
	_, okB := w.bound[input.ActionB.String()]
	if !okA || !okB {
		w.warn("A and B are required!", captureWarnLong)
		w.index = 0
		w.bound = make(map[string]string)
		return
	}
	w.done = true
}

func (w *captureWizard) warn(msg string, ticks int) {
	w.warning = msg
	w.warnTicks = ticks
}

// KeyConfigScreen runs the capture wizard over the raw keyboard. While
// capturing, every bindable key is an assignment target, so navigation
// actions are ignored until the wizard completes. Escape always backs
// out without saving.
type KeyConfigScreen struct {
	wiz      *captureWizard
	keys     []ebiten.Key
	prevDown map[ebiten.Key]bool
}

func NewKeyConfigScreen() *KeyConfigScreen {
	return &KeyConfigScreen{keys: input.BindableKeys()}
}

func (s *KeyConfigScreen) Activate(a *App) {
	s.wiz = newCaptureWizard()
	// Seed held state so the press that opened this screen is not
	// captured as a binding.
	s.prevDown = make(map[ebiten.Key]bool, len(s.keys))
	for _, k := range s.keys {
		s.prevDown[k] = a.source.KeyDown(k)
	}
	s.prevDown[ebiten.KeyEscape] = a.source.KeyDown(ebiten.KeyEscape)
}

func (s *KeyConfigScreen) Deactivate(a *App) {}

// pressedKey returns the name of one key that went down this tick.
func (s *KeyConfigScreen) pressedKey(a *App) string {
	pressed := ""
	for _, k := range s.keys {
		down := a.source.KeyDown(k)
		if down && !s.prevDown[k] && pressed == "" {
			if name, ok := input.KeyName(k); ok {
				pressed = name
			}
		}
		s.prevDown[k] = down
	}
	return pressed
}

func (s *KeyConfigScreen) Update(a *App) {
	escDown := a.source.KeyDown(ebiten.KeyEscape)
	escPressed := escDown && !s.prevDown[ebiten.KeyEscape]
	s.prevDown[ebiten.KeyEscape] = escDown
	if escPressed {
		a.machine.Back()
		return
	}

	if s.wiz.done {
		s.wiz.Tick("")
		if a.debouncer.Pressed(input.ActionB) {
			a.machine.Back()
		}
		return
	}

	pressed := s.pressedKey(a)
	s.wiz.Tick(pressed)
	if s.wiz.done {
		s.apply(a)
	}
}

// apply replaces the stored overrides with the captured set and rebuilds
// the mapper so the new bindings drive the done phase immediately.
func (s *KeyConfigScreen) apply(a *App) {
	if err := a.store.SetBindings(s.wiz.bound); err != nil {
		a.log.WithError(err).Warn("save key bindings")
	}
	a.rebuildMapper()
	a.log.WithField("bindings", len(s.wiz.bound)).Info("key bindings saved")
}

func (s *KeyConfigScreen) Draw(a *App, dst *ebiten.Image) {
	drawHeader(dst, "Key Mapping", fmt.Sprintf("%d/%d", s.wiz.index, len(s.wiz.actions)))

	if s.wiz.done {
		s.drawDone(dst)
	} else {
		s.drawCapture(dst)
	}

	if s.wiz.warnTicks > 0 {
		face := *style.FontFace()
		w, _ := text.Measure(s.wiz.warning, face, 0)
		x := (style.ScreenWidth - w) / 2
		fillRect(dst, x-10, 206, w+20, 28, style.Danger)
		drawText(dst, s.wiz.warning, face, x, 210, style.Text)
	}

	if s.wiz.done {
		drawFooter(dst, "B: Back")
	} else {
		drawFooter(dst, "Press a key to assign  Esc: Cancel")
	}
}

func (s *KeyConfigScreen) drawCapture(dst *ebiten.Image) {
	face := *style.FontFace()
	small := *style.SmallFace()

	action, ok := s.wiz.Current()
	if !ok {
		return
	}
	drawText(dst, fmt.Sprintf("Step %d / %d", s.wiz.index+1, len(s.wiz.actions)), small, style.Padding, 56, style.TextSecondary)
	drawText(dst, "Press a key for ["+action.String()+"]", face, style.Padding, 80, style.Text)
	if captureRequired(action) {
		drawText(dst, "(required)", small, style.Padding, 104, style.Accent)
	} else {
		// Skip countdown bar.
		const barW = style.ScreenWidth - 2*style.Padding
		fillRect(dst, style.Padding, 110, barW, 10, style.Surface)
		fillRect(dst, style.Padding, 110, barW*float64(s.wiz.waitTicks)/captureTimeoutTicks, 10, style.Primary)
		drawText(dst, "Skip in 3 seconds", small, style.Padding, 124, style.TextSecondary)
	}

	y := 150.0
	drawText(dst, "Configured:", small, style.Padding, y, style.TextSecondary)
	y += 18
	for _, a := range s.wiz.actions {
		key, ok := s.wiz.bound[a.String()]
		if !ok {
			continue
		}
		drawText(dst, "  "+a.String()+": "+key, small, style.Padding, y, style.Text)
		y += 16
		if y > style.ScreenHeight-60 {
			break
		}
	}
}

func (s *KeyConfigScreen) drawDone(dst *ebiten.Image) {
	face := *style.FontFace()
	small := *style.SmallFace()

	drawTextCentered(dst, "Configuration complete", face, style.ScreenWidth/2, 64, style.Accent)
	drawTextCentered(dst, "Press B to return", small, style.ScreenWidth/2, 90, style.TextSecondary)

	y := 120.0
	col := 0
	for _, a := range s.wiz.actions {
		key, ok := s.wiz.bound[a.String()]
		if !ok {
			key = "(unbound)"
		}
		x := float64(style.Padding)
		if col == 1 {
			x = style.ScreenWidth/2 + style.Padding
		}
		drawText(dst, a.String()+": "+key, small, x, y, style.Text)
		col++
		if col == 2 {
			col = 0
			y += 18
		}
	}
}
