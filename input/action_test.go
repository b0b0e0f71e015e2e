package input

import "testing"

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionUp, "Up"},
		{ActionDown, "Down"},
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionA, "A"},
		{ActionB, "B"},
		{ActionX, "X"},
		{ActionY, "Y"},
		{ActionL, "L"},
		{ActionR, "R"},
		{ActionL2, "L2"},
		{ActionR2, "R2"},
		{ActionStart, "Start"},
		{ActionSelect, "Select"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			got := tc.action.String()
			if got != tc.expected {
				t.Errorf("Action(%d).String() = %q, want %q", tc.action, got, tc.expected)
			}
		})
	}
}

func TestParseAction(t *testing.T) {
	for _, a := range Actions() {
		got, ok := ParseAction(a.String())
		if !ok || got != a {
			t.Errorf("ParseAction(%q) = %v, %v, want %v, true", a.String(), got, ok, a)
		}
	}
	if _, ok := ParseAction("Turbo"); ok {
		t.Error("ParseAction should reject unknown names")
	}
}

func TestBindableActionsExcludeDirections(t *testing.T) {
	bindable := BindableActions()
	if len(bindable) != actionCount-4 {
		t.Fatalf("len(BindableActions()) = %d, want %d", len(bindable), actionCount-4)
	}
	for _, a := range bindable {
		if a.IsDirection() {
			t.Errorf("%s is a direction and must not be bindable", a)
		}
	}
}

func TestParseLayout(t *testing.T) {
	if ParseLayout("Xbox") != LayoutXbox {
		t.Error(`ParseLayout("Xbox") should be LayoutXbox`)
	}
	if ParseLayout("Nintendo") != LayoutNintendo {
		t.Error(`ParseLayout("Nintendo") should be LayoutNintendo`)
	}
	if ParseLayout("whatever") != LayoutNintendo {
		t.Error("unknown layouts should fall back to Nintendo")
	}
}
