package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func hasKey(keys []ebiten.Key, want ebiten.Key) bool {
	for _, k := range keys {
		if k == want {
			return true
		}
	}
	return false
}

func TestDefaultKeyBindings(t *testing.T) {
	m := BuildMapper(LayoutNintendo, nil, nil)

	tests := []struct {
		action Action
		key    ebiten.Key
	}{
		{ActionUp, ebiten.KeyArrowUp},
		{ActionA, ebiten.KeyZ},
		{ActionA, ebiten.KeyEnter},
		{ActionB, ebiten.KeyX},
		{ActionB, ebiten.KeyEscape},
		{ActionX, ebiten.KeyA},
		{ActionY, ebiten.KeyS},
		{ActionL, ebiten.KeyQ},
		{ActionR, ebiten.KeyW},
		{ActionStart, ebiten.KeyEnter},
		{ActionSelect, ebiten.KeyShift},
	}
	for _, tc := range tests {
		if !hasKey(m.KeysFor(tc.action), tc.key) {
			t.Errorf("%s should include key %v by default", tc.action, tc.key)
		}
	}
}

func TestLayoutSwapsFaceButtons(t *testing.T) {
	nintendo := BuildMapper(LayoutNintendo, nil, nil)
	xbox := BuildMapper(LayoutXbox, nil, nil)

	east := ebiten.StandardGamepadButtonRightRight
	south := ebiten.StandardGamepadButtonRightBottom

	// Nintendo: east confirms, south cancels.
	if a, _ := nintendo.ActionForPad(east); a != ActionConfirm {
		t.Errorf("Nintendo east = %v, want %v", a, ActionConfirm)
	}
	if a, _ := nintendo.ActionForPad(south); a != ActionCancel {
		t.Errorf("Nintendo south = %v, want %v", a, ActionCancel)
	}

	// Xbox: the same physical buttons swap roles.
	if a, _ := xbox.ActionForPad(east); a != ActionCancel {
		t.Errorf("Xbox east = %v, want %v", a, ActionCancel)
	}
	if a, _ := xbox.ActionForPad(south); a != ActionConfirm {
		t.Errorf("Xbox south = %v, want %v", a, ActionConfirm)
	}

	// X/Y swap too.
	north := ebiten.StandardGamepadButtonRightTop
	if a, _ := nintendo.ActionForPad(north); a != ActionX {
		t.Errorf("Nintendo north = %v, want ActionX", a)
	}
	if a, _ := xbox.ActionForPad(north); a != ActionY {
		t.Errorf("Xbox north = %v, want ActionY", a)
	}
}

func TestOverridesBeatDefaults(t *testing.T) {
	overrides := map[string]string{"A": "J"}
	m := BuildMapper(LayoutNintendo, overrides, nil)

	keys := m.KeysFor(ActionA)
	if len(keys) != 1 || keys[0] != ebiten.KeyJ {
		t.Fatalf("KeysFor(A) = %v, want just KeyJ", keys)
	}

	// Overrides apply the same under either layout.
	m = BuildMapper(LayoutXbox, overrides, nil)
	keys = m.KeysFor(ActionA)
	if len(keys) != 1 || keys[0] != ebiten.KeyJ {
		t.Errorf("KeysFor(A) under Xbox = %v, want just KeyJ", keys)
	}
}

func TestInvalidOverridesIgnored(t *testing.T) {
	m := BuildMapper(LayoutNintendo, map[string]string{
		"Up":      "J",          // direction, fixed
		"B":       "NoSuchKey",  // unknown key
		"Y":       "ArrowLeft",  // reserved key
		"Nothing": "K",          // unknown action
	}, nil)

	if !hasKey(m.KeysFor(ActionUp), ebiten.KeyArrowUp) {
		t.Error("direction override must not replace the arrow key")
	}
	if !hasKey(m.KeysFor(ActionB), ebiten.KeyX) {
		t.Error("unknown key override must leave the default in place")
	}
	if !hasKey(m.KeysFor(ActionY), ebiten.KeyS) {
		t.Error("reserved key override must leave the default in place")
	}
}

func TestDisplayNames(t *testing.T) {
	m := BuildMapper(LayoutNintendo, nil, nil)

	if got := m.KeyDisplay(ActionA); got != "Z" {
		t.Errorf("KeyDisplay(A) = %q, want Z", got)
	}
	if got := m.PadDisplay(ActionA); got != "East" {
		t.Errorf("PadDisplay(A) = %q, want East", got)
	}

	m = BuildMapper(LayoutXbox, nil, nil)
	if got := m.PadDisplay(ActionA); got != "South" {
		t.Errorf("PadDisplay(A) under Xbox = %q, want South", got)
	}
}
