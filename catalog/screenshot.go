package catalog

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Screenshot files live under <dir>/<rom parent dir>/<name>.<ext>.
var screenshotExts = []string{".png", ".jpg", ".jpeg"}

var (
	bracketRe = regexp.MustCompile(`\[.*?\]`)
	parenRe   = regexp.MustCompile(`\(.*?\)`)
	spaceRe   = regexp.MustCompile(`\s+`)
)

// FindScreenshot locates the screenshot for a ROM. ROM names often carry
// region or dump tags the screenshot file omits, so lookup retries with
// progressively stripped names: exact, without [..] tags, without (..)
// tags, without both, each also with runs of spaces collapsed.
func FindScreenshot(dir string, cat *Category, romPath string) (string, bool) {
	if dir == "" {
		return "", false
	}

	parent := filepath.Base(filepath.Dir(romPath))
	base := screenshotBase(filepath.Base(romPath), cat)

	patterns := []string{base}
	addPattern := func(p string) {
		p = strings.TrimSpace(p)
		if p == "" {
			return
		}
		for _, seen := range patterns {
			if seen == p {
				return
			}
		}
		patterns = append(patterns, p)
	}
	addPattern(bracketRe.ReplaceAllString(base, ""))
	addPattern(parenRe.ReplaceAllString(base, ""))
	addPattern(parenRe.ReplaceAllString(bracketRe.ReplaceAllString(base, ""), ""))
	for _, p := range append([]string(nil), patterns...) {
		addPattern(spaceRe.ReplaceAllString(p, " "))
	}

	for _, pattern := range patterns {
		for _, ext := range screenshotExts {
			path := filepath.Join(dir, parent, pattern+ext)
			if _, err := os.Stat(path); err == nil {
				return path, true
			}
		}
	}
	return "", false
}

// screenshotBase strips the category extension from a ROM file name,
// falling back to plain extension removal for unknown suffixes.
func screenshotBase(name string, cat *Category) string {
	if cat != nil {
		lower := strings.ToLower(name)
		for _, ext := range cat.Extensions {
			if strings.HasSuffix(lower, ext) {
				return name[:len(name)-len(ext)]
			}
		}
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}
