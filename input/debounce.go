package input

import "github.com/hajimehoshi/ebiten/v2"

// Tick and repeat cadence. The app loop runs at TicksPerSecond, so the
// first repeat lands about 267ms after the press and then every 67ms.
const (
	// TicksPerSecond is the fixed rate of the cooperative app loop.
	TicksPerSecond = 30
	// repeatDelayTicks is how long an action must be held before it
	// starts repeating.
	repeatDelayTicks = 8
	// repeatIntervalTicks is the tick gap between repeats once repeating.
	repeatIntervalTicks = 2
)

// Source supplies raw held state for keys and pad buttons. The production
// source polls ebiten; tests substitute a scripted one.
type Source interface {
	KeyDown(ebiten.Key) bool
	PadDown(ebiten.StandardGamepadButton) bool
}

// EbitenSource polls the keyboard and the first connected standard-layout
// gamepad.
type EbitenSource struct {
	gamepadID  ebiten.GamepadID
	hasGamepad bool
	idScratch  []ebiten.GamepadID
}

// NewEbitenSource creates a production input source.
func NewEbitenSource() *EbitenSource {
	return &EbitenSource{}
}

// Refresh re-detects the active gamepad. Call once per tick before the
// debouncer runs so hotplugged pads are picked up.
func (s *EbitenSource) Refresh() {
	s.idScratch = ebiten.AppendGamepadIDs(s.idScratch[:0])
	s.hasGamepad = false
	for _, id := range s.idScratch {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			s.gamepadID = id
			s.hasGamepad = true
			return
		}
	}
}

// KeyDown reports whether the key is held.
func (s *EbitenSource) KeyDown(k ebiten.Key) bool {
	return ebiten.IsKeyPressed(k)
}

// PadDown reports whether the pad button is held on the active gamepad.
func (s *EbitenSource) PadDown(b ebiten.StandardGamepadButton) bool {
	if !s.hasGamepad {
		return false
	}
	return ebiten.IsStandardGamepadButtonPressed(s.gamepadID, b)
}

type actionState struct {
	down      bool
	ticksHeld int
}

// Debouncer tracks per-action held state across ticks and derives the
// pressed and repeat edges screens navigate with. Call Tick exactly once
// per app update before querying.
type Debouncer struct {
	states [actionCount]actionState
}

// NewDebouncer creates a debouncer with all actions released.
func NewDebouncer() *Debouncer {
	return &Debouncer{}
}

// Tick advances one tick, reading the raw source through the mapper.
func (d *Debouncer) Tick(m *Mapper, src Source) {
	for a := Action(0); a < actionCount; a++ {
		down := false
		for _, k := range m.keys[a] {
			if src.KeyDown(k) {
				down = true
				break
			}
		}
		if !down {
			for _, b := range m.pads[a] {
				if src.PadDown(b) {
					down = true
					break
				}
			}
		}

		st := &d.states[a]
		switch {
		case down && st.down:
			st.ticksHeld++
		case down:
			st.down = true
			st.ticksHeld = 0
		default:
			st.down = false
			st.ticksHeld = 0
		}
	}
}

// Reset releases all actions. Used when entering raw capture mode or
// after staging a launch so stale holds cannot leak into the next screen.
func (d *Debouncer) Reset() {
	d.states = [actionCount]actionState{}
}

// IsDown reports the raw held state of an action this tick.
func (d *Debouncer) IsDown(a Action) bool {
	return d.states[a].down
}

// Pressed reports whether the action went down on this tick.
func (d *Debouncer) Pressed(a Action) bool {
	return d.states[a].down && d.states[a].ticksHeld == 0
}

// TicksHeld returns how many ticks the action has been held beyond the
// press tick. Released actions report 0.
func (d *Debouncer) TicksHeld(a Action) int {
	return d.states[a].ticksHeld
}

// Repeated reports whether a held action fires a repeat on this tick.
// Repeats start once the hold reaches repeatDelayTicks and then fire
// every repeatIntervalTicks.
func (d *Debouncer) Repeated(a Action) bool {
	st := d.states[a]
	if !st.down || st.ticksHeld < repeatDelayTicks {
		return false
	}
	return (st.ticksHeld-repeatDelayTicks)%repeatIntervalTicks == 0
}

// PressedOrRepeated is the edge list screens scroll with: the initial
// press plus every repeat.
func (d *Debouncer) PressedOrRepeated(a Action) bool {
	return d.Pressed(a) || d.Repeated(a)
}
