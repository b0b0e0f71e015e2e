package app

import (
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/game-de-it/pfe/input"
	"github.com/game-de-it/pfe/launch"
	"github.com/game-de-it/pfe/nav"
	"github.com/game-de-it/pfe/style"
)

// CoreSelectScreen picks the emulator core for one file. Confirming
// sets the scoped override and returns; the launch transaction is what
// persists the choice, so backing out changes nothing.
type CoreSelectScreen struct {
	list    List
	romPath string
	cores   []string
	pref    string
	defType string
}

func NewCoreSelectScreen() *CoreSelectScreen {
	return &CoreSelectScreen{list: NewList(style.ListRows)}
}

func (c *CoreSelectScreen) Activate(a *App) {
	c.romPath = a.machine.GetString(nav.KeySelectedFile, "")
	c.cores = nil
	if v, ok := a.machine.Get(nav.KeyAvailableCores); ok {
		if cores, ok := v.([]string); ok {
			c.cores = cores
		}
	}
	c.defType = "RA"
	if cat, ok := a.cfg.CategoryByTitle(a.machine.GetString(nav.KeySelectedCategory, "")); ok {
		c.defType = cat.Type
	}

	c.list = NewList(style.ListRows)
	c.list.SetCount(len(c.cores))

	// Preselect the core remembered from the last launch of this file.
	c.pref = ""
	if pref, ok := a.store.CorePreference(c.romPath); ok {
		c.pref = pref
		for i, core := range c.cores {
			if core == pref {
				c.list.SetCursor(i, 0)
				break
			}
		}
	}
}

func (c *CoreSelectScreen) Deactivate(a *App) {}

func (c *CoreSelectScreen) Update(a *App) {
	d := a.debouncer
	c.list.HandleUpDown(d)

	if d.Pressed(input.ActionA) {
		if i := c.list.Selected(); i >= 0 {
			a.machine.Set(nav.KeyCoreOverride, c.cores[i])
			a.machine.Back()
		}
		return
	}
	if d.Pressed(input.ActionB) {
		a.machine.Back()
	}
}

func (c *CoreSelectScreen) Draw(a *App, dst *ebiten.Image) {
	drawHeader(dst, "Select Core", filepath.Base(c.romPath))

	if len(c.cores) == 0 {
		drawMessage(dst, "No cores configured", style.TextSecondary)
		drawFooter(dst, "B: Back")
		return
	}

	face := *style.FontFace()
	start, end := c.list.VisibleRange()
	for i := start; i < end; i++ {
		y := c.list.rowY(i)
		if i == c.list.Index {
			fillRect(dst, style.SmallSpacing, y, style.ScreenWidth-2*style.SmallSpacing, style.ListRowHeight, style.Primary)
		}
		if c.cores[i] == c.pref {
			drawText(dst, "*", face, style.Padding, y+4, style.Accent)
		}
		label := launch.CoreDisplayName(c.cores[i], c.defType)
		label, _ = style.TruncateToWidth(label, face, style.ScreenWidth-4*style.Padding)
		drawText(dst, label, face, style.Padding+14, y+4, style.Text)
	}
	c.list.drawScrollbar(dst)

	drawFooter(dst, "A: Launch with core  B: Back  *: last used")
}
