package style

import (
	goimage "image"
	"image/draw"
	"time"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	xdraw "golang.org/x/image/draw"
)

// FitSize returns the dimensions of a w x h image scaled to fit within
// maxW x maxH with its aspect ratio preserved. Never returns less than 1.
func FitSize(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 {
		return 1, 1
	}
	scale := float64(maxW) / float64(w)
	if s := float64(maxH) / float64(h); s < scale {
		scale = s
	}
	fw := int(float64(w) * scale)
	fh := int(float64(h) * scale)
	if fw < 1 {
		fw = 1
	}
	if fh < 1 {
		fh = 1
	}
	return fw, fh
}

// ScaleImage scales an image to fit within maxWidth x maxHeight while
// preserving aspect ratio. Scaling runs on the CPU so only the final
// small image becomes a GPU texture.
func ScaleImage(src goimage.Image, maxWidth, maxHeight int) *ebiten.Image {
	bounds := src.Bounds()
	w, h := FitSize(bounds.Dx(), bounds.Dy(), maxWidth, maxHeight)

	dstRect := goimage.Rect(0, 0, w, h)
	scaled := goimage.NewRGBA(dstRect)
	xdraw.ApproxBiLinear.Scale(scaled, dstRect, src, bounds, draw.Over, nil)

	return ebiten.NewImageFromImage(scaled)
}

// TruncateStart truncates a string from the start, keeping the end portion.
// Returns the truncated string and whether truncation occurred.
func TruncateStart(s string, maxLen int) (string, bool) {
	if len(s) <= maxLen {
		return s, false
	}
	if maxLen <= 3 {
		return s[len(s)-maxLen:], true
	}
	return "..." + s[len(s)-maxLen+3:], true
}

// TruncateEnd truncates a string from the end, keeping the start portion.
// Returns the truncated string and whether truncation occurred.
func TruncateEnd(s string, maxLen int) (string, bool) {
	if len(s) <= maxLen {
		return s, false
	}
	if maxLen <= 3 {
		return s[:maxLen], true
	}
	return s[:maxLen-3] + "...", true
}

// MeasureWidth returns the pixel width of s rendered with the UI face.
func MeasureWidth(s string) float64 {
	w, _ := text.Measure(s, *FontFace(), 0)
	return w
}

// TruncateToWidth truncates a string to fit within maxWidth pixels under
// the given face, appending "..." when it had to cut. The cut point is
// found by binary search on rune boundaries.
func TruncateToWidth(s string, face text.Face, maxWidth float64) (string, bool) {
	if s == "" {
		return s, false
	}
	if w, _ := text.Measure(s, face, 0); w <= maxWidth {
		return s, false
	}

	const ellipsis = "..."
	if w, _ := text.Measure(ellipsis, face, 0); w > maxWidth {
		return ellipsis, true
	}

	lo, hi := 0, utf8.RuneCountInString(s)
	best := 0
	for lo <= hi {
		mid := (lo + hi) / 2
		candidate := runePrefix(s, mid) + ellipsis
		if w, _ := text.Measure(candidate, face, 0); w <= maxWidth {
			best = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	if best == 0 {
		return ellipsis, true
	}
	return runePrefix(s, best) + ellipsis, true
}

// runePrefix returns the first n runes of s.
func runePrefix(s string, n int) string {
	i := 0
	for j := 0; j < n; j++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size == 0 {
			break
		}
		i += size
	}
	return s[:i]
}

// FormatLastPlayed renders a launch timestamp as a relative or absolute
// date. Returns "Never" for the zero time, "Today"/"Yesterday" for
// recent launches, "Jan 2" within the year, and "Jan 2, 2006" otherwise.
func FormatLastPlayed(t time.Time) string {
	if t.IsZero() {
		return "Never"
	}
	now := time.Now()
	if t.Year() == now.Year() && t.YearDay() == now.YearDay() {
		return "Today"
	}
	yesterday := now.AddDate(0, 0, -1)
	if t.Year() == yesterday.Year() && t.YearDay() == yesterday.YearDay() {
		return "Yesterday"
	}
	if t.Year() == now.Year() {
		return t.Format("Jan 2")
	}
	return t.Format("Jan 2, 2006")
}

// FormatDate renders a timestamp as "Jan 2, 2006", or "Unknown" for the
// zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "Unknown"
	}
	return t.Format("Jan 2, 2006")
}
