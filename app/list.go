package app

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/game-de-it/pfe/input"
	"github.com/game-de-it/pfe/style"
)

// List tracks the cursor and scroll window of a vertical menu. It holds
// no items, only the selection over count rows with rows visible at a
// time.
type List struct {
	Index  int
	Scroll int

	count int
	rows  int
}

func NewList(rows int) List {
	return List{rows: rows}
}

// SetCount resizes the list and clamps the cursor back into range.
func (l *List) SetCount(n int) {
	if n < 0 {
		n = 0
	}
	l.count = n
	if l.Index >= n {
		l.Index = n - 1
	}
	if l.Index < 0 {
		l.Index = 0
	}
	l.clampScroll()
}

func (l *List) Count() int { return l.count }
func (l *List) Rows() int  { return l.rows }

// Selected reports the cursor index, or -1 when the list is empty.
func (l *List) Selected() int {
	if l.count == 0 {
		return -1
	}
	return l.Index
}

func (l *List) Up()       { l.MoveBy(-1) }
func (l *List) Down()     { l.MoveBy(1) }
func (l *List) PageUp()   { l.MoveBy(-l.rows) }
func (l *List) PageDown() { l.MoveBy(l.rows) }

func (l *List) Home() {
	l.Index = 0
	l.clampScroll()
}

func (l *List) End() {
	l.Index = l.count - 1
	if l.Index < 0 {
		l.Index = 0
	}
	l.clampScroll()
}

// MoveBy moves the cursor by delta, clamped to the ends.
func (l *List) MoveBy(delta int) {
	l.Index += delta
	if l.Index >= l.count {
		l.Index = l.count - 1
	}
	if l.Index < 0 {
		l.Index = 0
	}
	l.clampScroll()
}

// SetCursor places the cursor and scroll directly, clamping both. Used
// when restoring a saved position.
func (l *List) SetCursor(index, scroll int) {
	l.Index = index
	if l.Index >= l.count {
		l.Index = l.count - 1
	}
	if l.Index < 0 {
		l.Index = 0
	}
	l.Scroll = scroll
	l.clampScroll()
}

// clampScroll keeps the cursor inside the visible window.
func (l *List) clampScroll() {
	if l.Index < l.Scroll {
		l.Scroll = l.Index
	}
	if l.rows > 0 && l.Index >= l.Scroll+l.rows {
		l.Scroll = l.Index - l.rows + 1
	}
	max := l.count - l.rows
	if max < 0 {
		max = 0
	}
	if l.Scroll > max {
		l.Scroll = max
	}
	if l.Scroll < 0 {
		l.Scroll = 0
	}
}

// VisibleRange returns the half-open row range currently on screen.
func (l *List) VisibleRange() (int, int) {
	end := l.Scroll + l.rows
	if end > l.count {
		end = l.count
	}
	return l.Scroll, end
}

// HandleUpDown applies repeating up/down movement and reports whether
// the cursor moved.
func (l *List) HandleUpDown(d *input.Debouncer) bool {
	before := l.Index
	switch {
	case d.PressedOrRepeated(input.ActionUp):
		l.Up()
	case d.PressedOrRepeated(input.ActionDown):
		l.Down()
	}
	return l.Index != before
}

// rowRect returns the screen rectangle of list row i given the scroll
// window, in content-area coordinates.
func (l *List) rowY(i int) float64 {
	return float64(style.ListTopY + (i-l.Scroll)*style.ListRowHeight)
}

// drawRow paints one row background and label. Selected rows get the
// primary fill.
func (l *List) drawRow(dst *ebiten.Image, i int, label string, selected bool) {
	y := l.rowY(i)
	clr := style.Text
	if selected {
		fillRect(dst, style.SmallSpacing, y, style.ScreenWidth-2*style.SmallSpacing, style.ListRowHeight, style.Primary)
	}
	label, _ = style.TruncateToWidth(label, *style.FontFace(), style.ScreenWidth-4*style.Padding)
	drawText(dst, label, *style.FontFace(), style.Padding, y+4, clr)
}

// drawScrollbar paints a proportional scrollbar on the right edge when
// the list overflows its window.
func (l *List) drawScrollbar(dst *ebiten.Image) {
	if l.count <= l.rows {
		return
	}
	areaH := float64(l.rows * style.ListRowHeight)
	barH := areaH * float64(l.rows) / float64(l.count)
	if barH < 8 {
		barH = 8
	}
	maxScroll := float64(l.count - l.rows)
	barY := float64(style.ListTopY) + (areaH-barH)*float64(l.Scroll)/maxScroll
	fillRect(dst, style.ScreenWidth-4, style.ListTopY, 2, areaH, style.Border)
	fillRect(dst, style.ScreenWidth-4, barY, 2, barH, style.TextSecondary)
}
