package input

import "github.com/hajimehoshi/ebiten/v2"

// keyNameMap maps short key name strings to ebiten.Key values. These names
// are what key binding files store and what the key config screen shows.
var keyNameMap = map[string]ebiten.Key{
	"A":          ebiten.KeyA,
	"B":          ebiten.KeyB,
	"C":          ebiten.KeyC,
	"D":          ebiten.KeyD,
	"E":          ebiten.KeyE,
	"F":          ebiten.KeyF,
	"G":          ebiten.KeyG,
	"H":          ebiten.KeyH,
	"I":          ebiten.KeyI,
	"J":          ebiten.KeyJ,
	"K":          ebiten.KeyK,
	"L":          ebiten.KeyL,
	"M":          ebiten.KeyM,
	"N":          ebiten.KeyN,
	"O":          ebiten.KeyO,
	"P":          ebiten.KeyP,
	"Q":          ebiten.KeyQ,
	"R":          ebiten.KeyR,
	"S":          ebiten.KeyS,
	"T":          ebiten.KeyT,
	"U":          ebiten.KeyU,
	"V":          ebiten.KeyV,
	"W":          ebiten.KeyW,
	"X":          ebiten.KeyX,
	"Y":          ebiten.KeyY,
	"Z":          ebiten.KeyZ,
	"0":          ebiten.Key0,
	"1":          ebiten.Key1,
	"2":          ebiten.Key2,
	"3":          ebiten.Key3,
	"4":          ebiten.Key4,
	"5":          ebiten.Key5,
	"6":          ebiten.Key6,
	"7":          ebiten.Key7,
	"8":          ebiten.Key8,
	"9":          ebiten.Key9,
	"Enter":      ebiten.KeyEnter,
	"Backspace":  ebiten.KeyBackspace,
	"Space":      ebiten.KeySpace,
	"Tab":        ebiten.KeyTab,
	"Escape":     ebiten.KeyEscape,
	"Shift":      ebiten.KeyShift,
	"Control":    ebiten.KeyControl,
	"Comma":      ebiten.KeyComma,
	"Period":     ebiten.KeyPeriod,
	"Slash":      ebiten.KeySlash,
	"Semicolon":  ebiten.KeySemicolon,
	"ArrowUp":    ebiten.KeyArrowUp,
	"ArrowDown":  ebiten.KeyArrowDown,
	"ArrowLeft":  ebiten.KeyArrowLeft,
	"ArrowRight": ebiten.KeyArrowRight,
}

// padNameMap maps gamepad button name strings to ebiten standard layout
// buttons. Face button names here follow the standard (Xbox) placement;
// the mapper swaps them for the Nintendo layout.
var padNameMap = map[string]ebiten.StandardGamepadButton{
	"South":     ebiten.StandardGamepadButtonRightBottom,
	"East":      ebiten.StandardGamepadButtonRightRight,
	"West":      ebiten.StandardGamepadButtonRightLeft,
	"North":     ebiten.StandardGamepadButtonRightTop,
	"L1":        ebiten.StandardGamepadButtonFrontTopLeft,
	"R1":        ebiten.StandardGamepadButtonFrontTopRight,
	"L2":        ebiten.StandardGamepadButtonFrontBottomLeft,
	"R2":        ebiten.StandardGamepadButtonFrontBottomRight,
	"Start":     ebiten.StandardGamepadButtonCenterRight,
	"Select":    ebiten.StandardGamepadButtonCenterLeft,
	"DpadUp":    ebiten.StandardGamepadButtonLeftTop,
	"DpadDown":  ebiten.StandardGamepadButtonLeftBottom,
	"DpadLeft":  ebiten.StandardGamepadButtonLeftLeft,
	"DpadRight": ebiten.StandardGamepadButtonLeftRight,
}

// reservedKeys cannot be assigned as overrides. The arrow keys always
// drive the fixed direction actions.
var reservedKeys = map[ebiten.Key]bool{
	ebiten.KeyArrowUp:    true,
	ebiten.KeyArrowDown:  true,
	ebiten.KeyArrowLeft:  true,
	ebiten.KeyArrowRight: true,
}

// Reverse lookup maps (built from keyNameMap/padNameMap at init).
var keyToName map[ebiten.Key]string
var padToName map[ebiten.StandardGamepadButton]string

func init() {
	keyToName = make(map[ebiten.Key]string, len(keyNameMap))
	for name, key := range keyNameMap {
		keyToName[key] = name
	}
	padToName = make(map[ebiten.StandardGamepadButton]string, len(padNameMap))
	for name, btn := range padNameMap {
		padToName[btn] = name
	}
}

// ParseKey converts a key name string to an ebiten.Key.
// Returns the key and true if the name is valid, or 0 and false otherwise.
func ParseKey(name string) (ebiten.Key, bool) {
	k, ok := keyNameMap[name]
	return k, ok
}

// KeyName converts an ebiten.Key to its name string.
// Returns the name and true if the key has a name, or "" and false otherwise.
func KeyName(k ebiten.Key) (string, bool) {
	name, ok := keyToName[k]
	return name, ok
}

// ParsePad converts a pad button name string to a standard gamepad button.
// Returns the button and true if the name is valid, or 0 and false otherwise.
func ParsePad(name string) (ebiten.StandardGamepadButton, bool) {
	b, ok := padNameMap[name]
	return b, ok
}

// PadName converts a standard gamepad button to its name string.
// Returns the name and true if the button has a name, or "" and false otherwise.
func PadName(b ebiten.StandardGamepadButton) (string, bool) {
	name, ok := padToName[b]
	return name, ok
}

// IsReservedKey returns true if the key cannot be used in an override.
func IsReservedKey(k ebiten.Key) bool {
	return reservedKeys[k]
}

// BindableKeys returns every key a user can bind, for the key capture
// screen to poll.
func BindableKeys() []ebiten.Key {
	out := make([]ebiten.Key, 0, len(keyNameMap))
	for _, k := range keyNameMap {
		if !reservedKeys[k] {
			out = append(out, k)
		}
	}
	return out
}
