package app

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/game-de-it/pfe/input"
	"github.com/game-de-it/pfe/nav"
	"github.com/game-de-it/pfe/style"
)

// Key config menu row indices.
const (
	keyMenuLayout = iota
	keyMenuMapping
	keyMenuReset
	keyMenuCount
)

// KeyConfigMenuScreen switches the button layout and opens the mapping
// wizard. Layout changes rebuild the action mapper immediately.
type KeyConfigMenuScreen struct {
	list List
}

func NewKeyConfigMenuScreen() *KeyConfigMenuScreen {
	s := &KeyConfigMenuScreen{list: NewList(keyMenuCount)}
	s.list.SetCount(keyMenuCount)
	return s
}

func (s *KeyConfigMenuScreen) Activate(a *App)   {}
func (s *KeyConfigMenuScreen) Deactivate(a *App) {}

func (s *KeyConfigMenuScreen) Update(a *App) {
	d := a.debouncer
	s.list.HandleUpDown(d)

	if s.list.Index == keyMenuLayout {
		if d.Pressed(input.ActionLeft) || d.Pressed(input.ActionRight) {
			s.toggleLayout(a)
		}
	}

	if d.Pressed(input.ActionA) {
		switch s.list.Index {
		case keyMenuLayout:
			s.toggleLayout(a)
		case keyMenuMapping:
			a.machine.Go(nav.ScreenKeyConfig)
		case keyMenuReset:
			if err := a.store.ClearBindings(); err != nil {
				a.log.WithError(err).Warn("clear bindings")
			}
			a.rebuildMapper()
			a.toast.Show("Key bindings reset", toastTicks)
		}
		return
	}
	if d.Pressed(input.ActionB) {
		a.machine.Back()
	}
}

func (s *KeyConfigMenuScreen) toggleLayout(a *App) {
	next := "Xbox"
	if a.store.Setting("button_layout") == "Xbox" {
		next = "Nintendo"
	}
	a.saveSetting("button_layout", next)
	a.rebuildMapper()
}

func (s *KeyConfigMenuScreen) Draw(a *App, dst *ebiten.Image) {
	drawHeader(dst, "Key Config", "")

	face := *style.FontFace()
	names := [keyMenuCount]string{"Button Layout", "Key Mapping", "Reset to Defaults"}
	for i := 0; i < keyMenuCount; i++ {
		y := s.list.rowY(i)
		if i == s.list.Index {
			fillRect(dst, style.SmallSpacing, y, style.ScreenWidth-2*style.SmallSpacing, style.ListRowHeight, style.Primary)
		}
		drawText(dst, names[i], face, style.Padding, y+4, style.Text)
		if i == keyMenuLayout {
			value := a.store.Setting("button_layout")
			if i == s.list.Index {
				value = "< " + value + " >"
			}
			drawTextRight(dst, value, face, style.ScreenWidth-2*style.Padding, y+4, style.Accent)
		}
	}

	count := len(a.store.Bindings())
	if count > 0 {
		note := *style.SmallFace()
		drawText(dst, strconv.Itoa(count)+" key overrides active", note, style.Padding, s.list.rowY(keyMenuCount)+6, style.TextSecondary)
	}

	drawFooter(dst, "Left/Right: Layout  A: Select  B: Back")
}
