package app

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/game-de-it/pfe/input"
	"github.com/game-de-it/pfe/style"
)

// keyboardRows is the character grid of the on-screen keyboard. Every
// row is ten keys wide.
var keyboardRows = []string{
	"ABCDEFGHIJ",
	"KLMNOPQRST",
	"UVWXYZ0123",
	"456789-_. ",
}

const (
	keyCellW = 24
	keyCellH = 22
)

// Keyboard is a grid cursor over the on-screen character set. Screens
// decide what to do with the picked character.
type Keyboard struct {
	Row int
	Col int
}

// Move shifts the cursor with wraparound on both axes.
func (k *Keyboard) Move(dx, dy int) {
	rows := len(keyboardRows)
	k.Row = (k.Row + dy%rows + rows) % rows
	cols := len(keyboardRows[k.Row])
	k.Col = (k.Col + dx%cols + cols) % cols
}

// Rune returns the character under the cursor.
func (k *Keyboard) Rune() rune {
	row := keyboardRows[k.Row]
	if k.Col >= len(row) {
		return rune(row[len(row)-1])
	}
	return rune(row[k.Col])
}

// Reset puts the cursor back on the first key.
func (k *Keyboard) Reset() {
	k.Row, k.Col = 0, 0
}

// HandleNav moves the cursor from the debouncer's directional state.
func (k *Keyboard) HandleNav(d *input.Debouncer) {
	switch {
	case d.PressedOrRepeated(input.ActionUp):
		k.Move(0, -1)
	case d.PressedOrRepeated(input.ActionDown):
		k.Move(0, 1)
	case d.PressedOrRepeated(input.ActionLeft):
		k.Move(-1, 0)
	case d.PressedOrRepeated(input.ActionRight):
		k.Move(1, 0)
	}
}

// Width returns the panel width in pixels.
func (k *Keyboard) Width() float64 {
	return float64(len(keyboardRows[0])*keyCellW + 2*style.SmallSpacing)
}

// Height returns the panel height in pixels.
func (k *Keyboard) Height() float64 {
	return float64(len(keyboardRows)*keyCellH + 2*style.SmallSpacing)
}

// Draw renders the key grid in a panel anchored at (x, y).
func (k *Keyboard) Draw(dst *ebiten.Image, x, y float64) {
	fillRect(dst, x, y, k.Width(), k.Height(), style.Surface)
	strokeRect(dst, x, y, k.Width(), k.Height(), style.Border)

	face := *style.FontFace()
	for r, row := range keyboardRows {
		for c, ch := range row {
			cx := x + float64(style.SmallSpacing+c*keyCellW)
			cy := y + float64(style.SmallSpacing+r*keyCellH)
			label := string(ch)
			if ch == ' ' {
				label = "SP"
			}
			if r == k.Row && c == k.Col {
				fillRect(dst, cx, cy, keyCellW, keyCellH, style.Primary)
			}
			drawTextCentered(dst, label, face, cx+keyCellW/2, cy+3, style.Text)
		}
	}
}
