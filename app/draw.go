package app

import (
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/game-de-it/pfe/style"
)

// whitePixel is scaled and tinted to draw solid rectangles. Created on
// first use so tests that never draw touch no GPU resources.
var whitePixel *ebiten.Image

func pixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

func fillRect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(pixel(), op)
}

func strokeRect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	fillRect(dst, x, y, w, 1, clr)
	fillRect(dst, x, y+h-1, w, 1, clr)
	fillRect(dst, x, y, 1, h, clr)
	fillRect(dst, x+w-1, y, 1, h, clr)
}

// drawText draws s with its top-left corner at (x, y).
func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

func drawTextCentered(dst *ebiten.Image, s string, face text.Face, cx, y float64, clr color.Color) {
	w, _ := text.Measure(s, face, 0)
	drawText(dst, s, face, cx-w/2, y, clr)
}

func drawTextRight(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	w, _ := text.Measure(s, face, 0)
	drawText(dst, s, face, x-w, y, clr)
}

// drawHeader fills the top bar with the screen title on the left and an
// optional note on the right.
func drawHeader(dst *ebiten.Image, title, note string) {
	fillRect(dst, 0, 0, style.ScreenWidth, style.HeaderHeight, style.Surface)
	fillRect(dst, 0, style.HeaderHeight-1, style.ScreenWidth, 1, style.Border)
	drawText(dst, title, *style.TitleFace(), style.Padding, 9, style.Text)
	if note != "" {
		drawTextRight(dst, note, *style.SmallFace(), style.ScreenWidth-style.Padding, 14, style.TextSecondary)
	}
}

// drawFooter fills the bottom bar with a control hint line.
func drawFooter(dst *ebiten.Image, hint string) {
	y := float64(style.ScreenHeight - style.FooterHeight)
	fillRect(dst, 0, y, style.ScreenWidth, style.FooterHeight, style.Surface)
	fillRect(dst, 0, y, style.ScreenWidth, 1, style.Border)
	drawText(dst, hint, *style.SmallFace(), style.Padding, y+7, style.TextSecondary)
}

// drawMessage centers a single line in the content area between header
// and footer.
func drawMessage(dst *ebiten.Image, msg string, clr color.Color) {
	drawTextCentered(dst, msg, *style.FontFace(), style.ScreenWidth/2, style.ScreenHeight/2-10, clr)
}

func drawImageCentered(dst *ebiten.Image, img *ebiten.Image, cx, cy float64) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(cx-float64(w)/2, cy-float64(h)/2)
	dst.DrawImage(img, op)
}

// dimScreen covers the whole frame with a translucent layer.
func dimScreen(dst *ebiten.Image, alpha uint8) {
	clr := style.DimOverlay
	clr.A = alpha
	fillRect(dst, 0, 0, style.ScreenWidth, style.ScreenHeight, clr)
}

// loadImage decodes a PNG or JPEG from disk, scaled to fit maxW x maxH.
func loadImage(path string, maxW, maxH int) (*ebiten.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return style.ScaleImage(img, maxW, maxH), nil
}
