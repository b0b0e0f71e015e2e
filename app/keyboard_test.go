package app

import "testing"

func TestKeyboardMoveWraps(t *testing.T) {
	var k Keyboard

	k.Move(-1, 0)
	if k.Col != 9 {
		t.Errorf("left from column 0: Col = %d, want 9", k.Col)
	}
	k.Move(1, 0)
	if k.Col != 0 {
		t.Errorf("right wraps back: Col = %d, want 0", k.Col)
	}

	k.Move(0, -1)
	if k.Row != 3 {
		t.Errorf("up from row 0: Row = %d, want 3", k.Row)
	}
	k.Move(0, 1)
	if k.Row != 0 {
		t.Errorf("down wraps back: Row = %d, want 0", k.Row)
	}
}

func TestKeyboardRune(t *testing.T) {
	tests := []struct {
		row, col int
		want     rune
	}{
		{0, 0, 'A'},
		{0, 9, 'J'},
		{2, 6, '0'},
		{3, 0, '4'},
		{3, 9, ' '},
	}
	for _, tt := range tests {
		k := Keyboard{Row: tt.row, Col: tt.col}
		if got := k.Rune(); got != tt.want {
			t.Errorf("Rune at (%d,%d) = %q, want %q", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestKeyboardReset(t *testing.T) {
	k := Keyboard{Row: 2, Col: 7}
	k.Reset()
	if k.Row != 0 || k.Col != 0 {
		t.Errorf("Reset left cursor at (%d,%d)", k.Row, k.Col)
	}
}
