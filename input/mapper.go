package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

// defaultKeyNames holds the stock keyboard bindings. Several actions carry
// two keys so both hands work on a desktop test rig.
var defaultKeyNames = [actionCount][]string{
	ActionUp:     {"ArrowUp"},
	ActionDown:   {"ArrowDown"},
	ActionLeft:   {"ArrowLeft"},
	ActionRight:  {"ArrowRight"},
	ActionA:      {"Z", "Enter"},
	ActionB:      {"X", "Escape"},
	ActionX:      {"A"},
	ActionY:      {"S"},
	ActionL:      {"Q"},
	ActionR:      {"W"},
	ActionL2:     {"E"},
	ActionR2:     {"R"},
	ActionStart:  {"Enter"},
	ActionSelect: {"Shift"},
}

// defaultPadNames holds the stock gamepad bindings for everything except
// the four face buttons, which depend on the layout.
var defaultPadNames = [actionCount][]string{
	ActionUp:     {"DpadUp"},
	ActionDown:   {"DpadDown"},
	ActionLeft:   {"DpadLeft"},
	ActionRight:  {"DpadRight"},
	ActionL:      {"L1"},
	ActionR:      {"R1"},
	ActionL2:     {"L2"},
	ActionR2:     {"R2"},
	ActionStart:  {"Start"},
	ActionSelect: {"Select"},
}

// facePadNames gives the face button placement per layout. Nintendo pads
// put A east and B south; Xbox pads are the mirror of that, so switching
// layout swaps which physical button confirms and which cancels.
var facePadNames = map[Layout]map[Action]string{
	LayoutNintendo: {
		ActionA: "East",
		ActionB: "South",
		ActionX: "North",
		ActionY: "West",
	},
	LayoutXbox: {
		ActionA: "South",
		ActionB: "East",
		ActionX: "West",
		ActionY: "North",
	},
}

// Mapper resolves actions to the physical inputs that trigger them. Build
// one with BuildMapper and rebuild whenever the layout or the user
// overrides change.
type Mapper struct {
	layout Layout
	keys   [actionCount][]ebiten.Key
	pads   [actionCount][]ebiten.StandardGamepadButton
}

// BuildMapper creates a Mapper for the given layout with user keyboard
// overrides applied on top of the defaults. Overrides map action names to
// key names and only apply to non-directional actions; invalid entries are
// skipped with a warning. A nil log silences the warnings.
func BuildMapper(layout Layout, overrides map[string]string, log *logrus.Entry) *Mapper {
	m := &Mapper{layout: layout}

	for a := Action(0); a < actionCount; a++ {
		for _, name := range defaultKeyNames[a] {
			if k, ok := ParseKey(name); ok {
				m.keys[a] = append(m.keys[a], k)
			}
		}
		for _, name := range defaultPadNames[a] {
			if b, ok := ParsePad(name); ok {
				m.pads[a] = append(m.pads[a], b)
			}
		}
	}

	for action, name := range facePadNames[layout] {
		if b, ok := ParsePad(name); ok {
			m.pads[action] = []ebiten.StandardGamepadButton{b}
		}
	}

	for actionName, keyName := range overrides {
		a, ok := ParseAction(actionName)
		if !ok {
			warnf(log, "key binding for unknown action %q ignored", actionName)
			continue
		}
		if a.IsDirection() {
			warnf(log, "key binding for %s ignored, directions are fixed", a)
			continue
		}
		k, ok := ParseKey(keyName)
		if !ok {
			warnf(log, "key binding %s=%q ignored, unknown key", a, keyName)
			continue
		}
		if IsReservedKey(k) {
			warnf(log, "key binding %s=%q ignored, key is reserved", a, keyName)
			continue
		}
		m.keys[a] = []ebiten.Key{k}
	}

	return m
}

func warnf(log *logrus.Entry, format string, args ...any) {
	if log != nil {
		log.Warnf(format, args...)
	}
}

// Layout returns the layout the mapper was built with.
func (m *Mapper) Layout() Layout {
	return m.layout
}

// KeysFor returns the keyboard keys bound to an action.
func (m *Mapper) KeysFor(a Action) []ebiten.Key {
	return m.keys[a]
}

// PadsFor returns the gamepad buttons bound to an action.
func (m *Mapper) PadsFor(a Action) []ebiten.StandardGamepadButton {
	return m.pads[a]
}

// KeyDisplay returns the name of the primary keyboard key bound to an
// action, for the key config screen.
func (m *Mapper) KeyDisplay(a Action) string {
	if len(m.keys[a]) == 0 {
		return ""
	}
	name, _ := KeyName(m.keys[a][0])
	return name
}

// PadDisplay returns the name of the primary gamepad button bound to an
// action.
func (m *Mapper) PadDisplay(a Action) string {
	if len(m.pads[a]) == 0 {
		return ""
	}
	name, _ := PadName(m.pads[a][0])
	return name
}

// ActionForPad returns the action a physical pad button is bound to.
func (m *Mapper) ActionForPad(b ebiten.StandardGamepadButton) (Action, bool) {
	for a := Action(0); a < actionCount; a++ {
		for _, bound := range m.pads[a] {
			if bound == b {
				return a, true
			}
		}
	}
	return 0, false
}

// ActionForKey returns the action a keyboard key is bound to.
func (m *Mapper) ActionForKey(k ebiten.Key) (Action, bool) {
	for a := Action(0); a < actionCount; a++ {
		for _, bound := range m.keys[a] {
			if bound == k {
				return a, true
			}
		}
	}
	return 0, false
}
