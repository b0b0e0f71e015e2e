package style

import (
	"bytes"
	"os"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/gofont/goregular"
)

// Font sizes in points at the 640x480 logical resolution.
const (
	fontSize      = 14
	titleFontSize = 20
	smallFontSize = 11
)

// sharedFontSource is the cached TrueType font source shared by all font faces
var sharedFontSource *text.GoTextFaceSource

// Cached faces, built lazily from sharedFontSource.
var (
	fontFace      text.Face
	titleFontFace text.Face
	smallFontFace text.Face
)

// InitFonts loads the font source from the configured TrueType file.
// An empty path or a load failure falls back to the bundled Go Regular
// face, so text rendering always has a working source.
func InitFonts(path string, log *logrus.Entry) {
	sharedFontSource = nil
	fontFace = nil
	titleFontFace = nil
	smallFontFace = nil

	if path == "" {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if log != nil {
			log.Warnf("font %s unreadable, using built-in: %v", path, err)
		}
		return
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		if log != nil {
			log.Warnf("font %s unparsable, using built-in: %v", path, err)
		}
		return
	}
	sharedFontSource = source
}

// loadFontSource returns the shared GoTextFaceSource, building the
// built-in fallback on first use when no font file was configured.
func loadFontSource() *text.GoTextFaceSource {
	if sharedFontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil
		}
		sharedFontSource = source
	}
	return sharedFontSource
}

// FontFace returns the font face to use for UI text
func FontFace() *text.Face {
	if fontFace == nil {
		source := loadFontSource()
		if source == nil {
			return &fontFace
		}
		fontFace = &text.GoTextFace{
			Source: source,
			Size:   fontSize,
		}
	}
	return &fontFace
}

// TitleFace returns a larger face for screen headers.
func TitleFace() *text.Face {
	if titleFontFace == nil {
		source := loadFontSource()
		if source == nil {
			return &titleFontFace
		}
		titleFontFace = &text.GoTextFace{
			Source: source,
			Size:   titleFontSize,
		}
	}
	return &titleFontFace
}

// SmallFace returns a smaller face for footers and hints.
func SmallFace() *text.Face {
	if smallFontFace == nil {
		source := loadFontSource()
		if source == nil {
			return &smallFontFace
		}
		smallFontFace = &text.GoTextFace{
			Source: source,
			Size:   smallFontSize,
		}
	}
	return &smallFontFace
}
