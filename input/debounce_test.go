package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// fakeSource scripts raw input for debouncer tests.
type fakeSource struct {
	keys map[ebiten.Key]bool
	pads map[ebiten.StandardGamepadButton]bool
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		keys: make(map[ebiten.Key]bool),
		pads: make(map[ebiten.StandardGamepadButton]bool),
	}
}

func (f *fakeSource) KeyDown(k ebiten.Key) bool                   { return f.keys[k] }
func (f *fakeSource) PadDown(b ebiten.StandardGamepadButton) bool { return f.pads[b] }

func TestPressedOnlyOnFirstTick(t *testing.T) {
	m := BuildMapper(LayoutNintendo, nil, nil)
	d := NewDebouncer()
	src := newFakeSource()

	src.keys[ebiten.KeyZ] = true
	for i := 0; i < 5; i++ {
		d.Tick(m, src)
		want := i == 0
		if got := d.Pressed(ActionA); got != want {
			t.Errorf("tick %d: Pressed = %v, want %v", i, got, want)
		}
		if !d.IsDown(ActionA) {
			t.Errorf("tick %d: IsDown should stay true while held", i)
		}
		if got := d.TicksHeld(ActionA); got != i {
			t.Errorf("tick %d: TicksHeld = %d, want %d", i, got, i)
		}
	}

	src.keys[ebiten.KeyZ] = false
	d.Tick(m, src)
	if d.IsDown(ActionA) || d.Pressed(ActionA) || d.TicksHeld(ActionA) != 0 {
		t.Error("release should clear all state")
	}
}

func TestRepeatCadence(t *testing.T) {
	m := BuildMapper(LayoutNintendo, nil, nil)
	d := NewDebouncer()
	src := newFakeSource()
	src.keys[ebiten.KeyArrowDown] = true

	var fired []int
	for held := 0; held <= 14; held++ {
		d.Tick(m, src)
		if d.PressedOrRepeated(ActionDown) {
			fired = append(fired, d.TicksHeld(ActionDown))
		}
	}

	// Press at hold 0, then repeats from 8 every 2 ticks.
	want := []int{0, 8, 10, 12, 14}
	if len(fired) != len(want) {
		t.Fatalf("fired at holds %v, want %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Fatalf("fired at holds %v, want %v", fired, want)
		}
	}
}

func TestRepeatNotBeforeDelay(t *testing.T) {
	m := BuildMapper(LayoutNintendo, nil, nil)
	d := NewDebouncer()
	src := newFakeSource()
	src.keys[ebiten.KeyArrowUp] = true

	for held := 0; held < repeatDelayTicks; held++ {
		d.Tick(m, src)
		if d.Repeated(ActionUp) {
			t.Fatalf("Repeated fired at hold %d, before the delay", d.TicksHeld(ActionUp))
		}
	}
	d.Tick(m, src)
	if !d.Repeated(ActionUp) {
		t.Errorf("Repeated should fire at hold %d", repeatDelayTicks)
	}
}

func TestReleaseRestartsCadence(t *testing.T) {
	m := BuildMapper(LayoutNintendo, nil, nil)
	d := NewDebouncer()
	src := newFakeSource()

	src.keys[ebiten.KeyArrowDown] = true
	for i := 0; i < 12; i++ {
		d.Tick(m, src)
	}
	src.keys[ebiten.KeyArrowDown] = false
	d.Tick(m, src)
	src.keys[ebiten.KeyArrowDown] = true
	d.Tick(m, src)

	if !d.Pressed(ActionDown) {
		t.Error("re-press after release should count as a fresh press")
	}
	if d.TicksHeld(ActionDown) != 0 {
		t.Errorf("TicksHeld = %d, want 0 after re-press", d.TicksHeld(ActionDown))
	}
}

func TestPadButtonsFollowLayout(t *testing.T) {
	src := newFakeSource()
	src.pads[ebiten.StandardGamepadButtonRightRight] = true // physical east

	d := NewDebouncer()
	d.Tick(BuildMapper(LayoutNintendo, nil, nil), src)
	if !d.Pressed(ActionConfirm) {
		t.Error("east should confirm under Nintendo")
	}

	d = NewDebouncer()
	d.Tick(BuildMapper(LayoutXbox, nil, nil), src)
	if !d.Pressed(ActionCancel) {
		t.Error("east should cancel under Xbox")
	}
	if d.IsDown(ActionConfirm) {
		t.Error("east must not confirm under Xbox")
	}
}

func TestResetClearsHolds(t *testing.T) {
	m := BuildMapper(LayoutNintendo, nil, nil)
	d := NewDebouncer()
	src := newFakeSource()
	src.keys[ebiten.KeyZ] = true

	d.Tick(m, src)
	d.Tick(m, src)
	d.Reset()

	if d.IsDown(ActionA) {
		t.Error("Reset should release everything")
	}

	// The next tick with the key still physically held reads as a fresh
	// press, which is what capture mode relies on.
	d.Tick(m, src)
	if !d.Pressed(ActionA) {
		t.Error("hold after Reset should read as a new press")
	}
}
