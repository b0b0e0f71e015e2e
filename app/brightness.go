package app

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// backlightRoot is where Linux exposes panel backlights.
const backlightRoot = "/sys/class/backlight"

// applyBrightness maps level 1..10 onto every backlight device the
// kernel exposes. Errors are logged and swallowed; a desktop without a
// writable backlight still runs the shell.
func (a *App) applyBrightness(level int) {
	if level < 1 {
		level = 1
	}
	if level > 10 {
		level = 10
	}
	devs, err := os.ReadDir(backlightRoot)
	if err != nil {
		a.log.Debugf("no backlight control: %v", err)
		return
	}
	for _, d := range devs {
		dir := filepath.Join(backlightRoot, d.Name())
		raw, err := os.ReadFile(filepath.Join(dir, "max_brightness"))
		if err != nil {
			continue
		}
		max, err := strconv.Atoi(strings.TrimSpace(string(raw)))
		if err != nil || max <= 0 {
			continue
		}
		val := max * level / 10
		if val < 1 {
			val = 1
		}
		path := filepath.Join(dir, "brightness")
		if err := os.WriteFile(path, []byte(strconv.Itoa(val)), 0o644); err != nil {
			a.log.Debugf("backlight %s not set: %v", d.Name(), err)
			continue
		}
		a.log.WithField("device", d.Name()).Debugf("backlight set to %d/%d", val, max)
	}
}
