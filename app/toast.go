package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/game-de-it/pfe/style"
)

const (
	// toastTicks is the default notification duration, three seconds.
	toastTicks = 90
	// toastFailTicks keeps failures up a second longer.
	toastFailTicks = 120
)

// Toast is a transient one-line notification drawn above every screen.
// A new message replaces the current one.
type Toast struct {
	msg   string
	ticks int
}

func (t *Toast) Show(msg string, ticks int) {
	t.msg = msg
	t.ticks = ticks
}

func (t *Toast) Active() bool { return t.ticks > 0 }

func (t *Toast) Message() string {
	if t.ticks <= 0 {
		return ""
	}
	return t.msg
}

// Tick counts the notification down.
func (t *Toast) Tick() {
	if t.ticks > 0 {
		t.ticks--
	}
}

// Draw renders the notification bottom-right, above the footer.
func (t *Toast) Draw(dst *ebiten.Image) {
	if t.ticks <= 0 {
		return
	}
	face := *style.FontFace()
	msg, _ := style.TruncateToWidth(t.msg, face, style.ScreenWidth-6*style.Padding)
	w, h := text.Measure(msg, face, 0)
	pad := float64(style.SmallSpacing * 2)
	bw := w + pad*2
	bh := h + pad*2
	x := float64(style.ScreenWidth) - bw - float64(style.Padding)
	y := float64(style.ScreenHeight-style.FooterHeight) - bh - float64(style.Padding)

	bg := style.Surface
	bg.A = 153
	fillRect(dst, x, y, bw, bh, bg)
	strokeRect(dst, x, y, bw, bh, style.Border)
	drawText(dst, msg, face, x+pad, y+pad, style.Text)
}
