package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/game-de-it/pfe/catalog"
	"github.com/game-de-it/pfe/input"
	"github.com/game-de-it/pfe/nav"
	"github.com/game-de-it/pfe/style"
)

const (
	// selectLongPress is how many ticks Select must be held to open the
	// quick jump keyboard; a shorter press opens core selection.
	selectLongPress = 15
	// slideshowTicks is the auto-advance interval in gallery slideshows.
	slideshowTicks = 90

	fileGalleryCols = 4
	fileGalleryRows = 3
)

// FileListScreen browses one category's ROM directory tree and stages
// launches. It owns the subdirectory stack that session snapshots
// capture and restore.
type FileListScreen struct {
	list     List
	catTitle string
	cat      *catalog.Category
	subdir   string
	stack    []string
	entries  []catalog.Entry

	gallery   bool
	showShots bool
	sortMode  string

	// restore holds a staged cursor from a resumed session, consumed by
	// the next reload.
	restore *nav.Position

	kb      Keyboard
	jumping bool

	selectDown     bool
	selectConsumed bool

	slideshow  bool
	slideTicks int

	shots map[string]*ebiten.Image
	dirty map[string]bool
}

func NewFileListScreen() *FileListScreen {
	return &FileListScreen{
		list:  NewList(style.ListRows),
		shots: make(map[string]*ebiten.Image),
		dirty: make(map[string]bool),
	}
}

// Invalidate marks a category's ROM directory as changed on disk. The
// list rescans when that category is in front.
func (f *FileListScreen) Invalidate(title string) {
	f.dirty[title] = true
}

func (f *FileListScreen) Activate(a *App) {
	f.showShots = a.store.SettingBool("show_screenshots")
	f.sortMode = a.store.Setting("sort_mode")
	f.gallery = a.store.Setting("view_mode") == "gallery"
	f.jumping = false
	f.selectDown = false
	f.selectConsumed = false

	title := a.machine.GetString(nav.KeySelectedCategory, "")
	if title != f.catTitle {
		f.catTitle = title
		f.subdir = ""
		f.stack = nil
		f.list = NewList(style.ListRows)
	}
	f.cat = nil
	if title != "" {
		if cat, ok := a.cfg.CategoryByTitle(title); ok {
			f.cat = cat
		} else {
			a.log.WithField("category", title).Warn("unknown category selected")
		}
	}

	// A resumed session stages the spot the player launched from.
	if v, ok := a.machine.Get(nav.KeySubdirectory); ok {
		if sub, ok := v.(string); ok {
			f.subdir = sub
		}
		if v, ok := a.machine.Get(nav.KeyDirStack); ok {
			if stack, ok := v.([]string); ok {
				f.stack = append([]string(nil), stack...)
			}
		}
		f.restore = &nav.Position{
			Index:  a.machine.GetInt(nav.KeyLaunchIndex, 0),
			Scroll: a.machine.GetInt(nav.KeyLaunchScroll, 0),
		}
		a.machine.Delete(nav.KeySubdirectory)
		a.machine.Delete(nav.KeyDirStack)
		a.machine.Delete(nav.KeyLaunchIndex)
		a.machine.Delete(nav.KeyLaunchScroll)
	}

	if f.cat != nil && len(f.cat.Cores) > 0 {
		a.machine.Set(nav.KeyAvailableCores, append([]string(nil), f.cat.Cores...))
	}

	f.reload(a)
}

func (f *FileListScreen) Deactivate(a *App) {
	if f.cat != nil && f.subdir == "" {
		a.machine.SetPosition(f.catTitle, nav.Position{Index: f.list.Index, Scroll: f.list.Scroll})
	}
	mode := "list"
	if f.gallery {
		mode = "gallery"
	}
	a.saveSetting("view_mode", mode)

	f.slideshow = false
	f.slideTicks = 0
	f.jumping = false

	// The subdirectory survives only across a launch; plain navigation
	// away resets browsing to the category root.
	if a.machine.GetString(nav.KeyLaunchROM, "") == "" {
		f.subdir = ""
		f.stack = nil
	}
}

// reload rescans the current directory level and restores the cursor:
// a staged session spot wins, then the remembered top-level position,
// then the top of the list.
func (f *FileListScreen) reload(a *App) {
	f.entries = nil
	f.shots = make(map[string]*ebiten.Image)
	if f.cat == nil {
		f.list.SetCount(0)
		f.restore = nil
		return
	}

	dir := f.cat.Dir
	if f.subdir != "" {
		dir = filepath.Join(f.cat.Dir, f.subdir)
	}
	entries, err := catalog.Scan(dir, f.cat)
	if err != nil {
		a.log.WithField("dir", dir).Warnf("scan failed: %v", err)
	}
	catalog.SortEntries(entries, f.sortMode)
	f.entries = entries
	f.list.SetCount(len(entries))

	switch {
	case f.restore != nil:
		f.list.SetCursor(f.restore.Index, f.restore.Scroll)
		f.restore = nil
	case f.subdir == "":
		p := a.machine.PositionFor(f.catTitle)
		f.list.SetCursor(p.Index, p.Scroll)
	default:
		f.list.SetCursor(0, 0)
	}
}

func (f *FileListScreen) selected() *catalog.Entry {
	i := f.list.Selected()
	if i < 0 || i >= len(f.entries) {
		return nil
	}
	return &f.entries[i]
}

func (f *FileListScreen) Update(a *App) {
	if f.dirty[f.catTitle] {
		delete(f.dirty, f.catTitle)
		f.reload(a)
	}

	if f.jumping {
		f.updateJump(a)
		return
	}

	// Returning from core selection launches the picked file.
	if ov := a.machine.GetString(nav.KeyCoreOverride, ""); ov != "" {
		if sel := a.machine.GetString(nav.KeySelectedFile, ""); sel != "" {
			f.stageLaunch(a, sel)
		}
		return
	}

	f.updateSelectPress(a)
	if f.jumping {
		return
	}

	if f.gallery {
		f.updateGallery(a)
	} else {
		f.updateList(a)
	}
}

// updateSelectPress splits the Select button into a short press (core
// selection) and a long hold (quick jump keyboard).
func (f *FileListScreen) updateSelectPress(a *App) {
	d := a.debouncer
	down := d.IsDown(input.ActionSelect)
	if down && d.TicksHeld(input.ActionSelect) == selectLongPress {
		f.kb.Reset()
		f.jumping = true
		f.selectConsumed = true
	}
	if !down && f.selectDown && !f.selectConsumed {
		f.openCoreSelect(a)
	}
	f.selectDown = down
	if !down {
		f.selectConsumed = false
	}
}

func (f *FileListScreen) openCoreSelect(a *App) {
	e := f.selected()
	if e == nil || e.IsDir || f.cat == nil || len(f.cat.Cores) == 0 {
		return
	}
	a.machine.Set(nav.KeySelectedFile, e.Path)
	a.machine.Set(nav.KeySelectedIndex, f.list.Index)
	a.machine.Go(nav.ScreenCoreSelect)
}

func (f *FileListScreen) updateList(a *App) {
	d := a.debouncer

	if d.Pressed(input.ActionX) {
		f.gallery = true
		f.shots = make(map[string]*ebiten.Image)
		a.saveSetting("view_mode", "gallery")
		return
	}

	f.list.HandleUpDown(d)
	switch {
	case d.Pressed(input.ActionL):
		f.list.Home()
	case d.Pressed(input.ActionR):
		f.list.End()
	case d.Pressed(input.ActionLeft):
		f.list.PageUp()
	case d.Pressed(input.ActionRight):
		f.list.PageDown()
	}

	if d.Pressed(input.ActionA) {
		f.open(a)
	}
	if d.Pressed(input.ActionStart) {
		f.toggleFavorite(a)
	}
	if d.Pressed(input.ActionY) {
		f.showShots = !f.showShots
		v := "Off"
		if f.showShots {
			v = "On"
		}
		a.saveSetting("show_screenshots", v)
	}
	if d.Pressed(input.ActionB) {
		f.back(a)
	}
}

func (f *FileListScreen) updateGallery(a *App) {
	d := a.debouncer

	if d.Pressed(input.ActionStart) {
		f.slideshow = !f.slideshow
		f.slideTicks = 0
	}
	if f.slideshow {
		if d.Pressed(input.ActionA) || d.Pressed(input.ActionB) ||
			d.Pressed(input.ActionX) || d.Pressed(input.ActionY) ||
			d.Pressed(input.ActionLeft) || d.Pressed(input.ActionRight) ||
			d.Pressed(input.ActionUp) || d.Pressed(input.ActionDown) {
			f.slideshow = false
		} else {
			f.slideTicks++
			if f.slideTicks >= slideshowTicks {
				f.slideTicks = 0
				if f.list.Index >= f.list.Count()-1 {
					f.list.Home()
				} else {
					f.list.Down()
				}
			}
			return
		}
	}

	if d.Pressed(input.ActionX) {
		f.gallery = false
		f.shots = make(map[string]*ebiten.Image)
		a.saveSetting("view_mode", "list")
		return
	}

	switch {
	case d.PressedOrRepeated(input.ActionLeft):
		f.list.MoveBy(-1)
	case d.PressedOrRepeated(input.ActionRight):
		f.list.MoveBy(1)
	case d.PressedOrRepeated(input.ActionUp):
		f.list.MoveBy(-fileGalleryCols)
	case d.PressedOrRepeated(input.ActionDown):
		f.list.MoveBy(fileGalleryCols)
	case d.Pressed(input.ActionL):
		f.list.Home()
	case d.Pressed(input.ActionR):
		f.list.End()
	}

	if d.Pressed(input.ActionA) {
		f.open(a)
	}
	if d.Pressed(input.ActionB) {
		f.back(a)
	}
}

func (f *FileListScreen) updateJump(a *App) {
	d := a.debouncer
	f.kb.HandleNav(d)
	switch {
	case d.Pressed(input.ActionA):
		f.jumpTo(f.kb.Rune())
		f.jumping = false
	case d.Pressed(input.ActionB), d.Pressed(input.ActionStart):
		f.jumping = false
	}
}

// jumpTo moves the cursor to the first entry sorting at or after the
// picked character.
func (f *FileListScreen) jumpTo(ch rune) {
	want := strings.ToLower(string(ch))
	for i := range f.entries {
		if strings.ToLower(f.entries[i].Name) >= want {
			f.list.SetCursor(i, f.list.Scroll)
			return
		}
	}
	f.list.End()
}

// open descends into a directory or stages the selected file for
// launch.
func (f *FileListScreen) open(a *App) {
	e := f.selected()
	if e == nil {
		return
	}
	if e.IsDir {
		f.stack = append(f.stack, f.subdir)
		if f.subdir == "" {
			f.subdir = e.Name
		} else {
			f.subdir = filepath.Join(f.subdir, e.Name)
		}
		f.reload(a)
		return
	}
	a.machine.Set(nav.KeySelectedFile, e.Path)
	a.machine.Set(nav.KeySelectedIndex, f.list.Index)
	f.stageLaunch(a, e.Path)
}

// back pops one directory level, or leaves the screen from the root.
func (f *FileListScreen) back(a *App) {
	if f.subdir != "" {
		if n := len(f.stack); n > 0 {
			f.subdir = f.stack[n-1]
			f.stack = f.stack[:n-1]
		} else {
			f.subdir = ""
		}
		f.reload(a)
		return
	}
	a.machine.Back()
}

// stageLaunch queues path together with the browsing context a resumed
// session needs to come back to this exact spot.
func (f *FileListScreen) stageLaunch(a *App, path string) {
	a.stageLaunch(path, f.catTitle)
	a.machine.Set(nav.KeySubdirectory, f.subdir)
	a.machine.Set(nav.KeyDirStack, append([]string(nil), f.stack...))
	a.machine.Set(nav.KeyLaunchIndex, f.list.Index)
	a.machine.Set(nav.KeyLaunchScroll, f.list.Scroll)
}

func (f *FileListScreen) toggleFavorite(a *App) {
	e := f.selected()
	if e == nil || e.IsDir || f.cat == nil {
		return
	}
	fav, err := a.store.ToggleFavorite(e.Path, f.catTitle)
	if err != nil {
		a.log.Warnf("favorite not saved: %v", err)
		return
	}
	if fav {
		a.toast.Show("Added to favorites: "+e.Name, toastTicks)
	} else {
		a.toast.Show("Removed from favorites: "+e.Name, toastTicks)
	}
}

// screenshotFor returns the cached screenshot for an entry, probing the
// disk once per entry and caching misses as nil.
func (f *FileListScreen) screenshotFor(a *App, e *catalog.Entry, maxW, maxH int) *ebiten.Image {
	if e == nil || e.IsDir || f.cat == nil {
		return nil
	}
	if img, ok := f.shots[e.Path]; ok {
		return img
	}
	if len(f.shots) > 128 {
		f.shots = make(map[string]*ebiten.Image)
	}
	var img *ebiten.Image
	if path, ok := catalog.FindScreenshot(a.cfg.ScreenshotDir, f.cat, e.Path); ok {
		loaded, err := loadImage(path, maxW, maxH)
		if err != nil {
			a.log.Debugf("screenshot not loaded: %v", err)
		} else {
			img = loaded
		}
	}
	f.shots[e.Path] = img
	return img
}

func (f *FileListScreen) Draw(a *App, dst *ebiten.Image) {
	title := f.catTitle
	if title == "" {
		title = "Files"
	}
	note := ""
	if n := f.list.Count(); n > 0 {
		note = fmt.Sprintf("%d/%d Items", f.list.Index+1, n)
	}
	drawHeader(dst, title, note)

	switch {
	case f.cat == nil:
		drawMessage(dst, "No category selected", style.TextSecondary)
	case len(f.entries) == 0:
		drawMessage(dst, "No files found", style.TextSecondary)
	case f.gallery:
		f.drawGallery(a, dst)
	default:
		f.drawList(a, dst)
	}

	if f.gallery {
		drawFooter(dst, "A: Open  B: Back  X: View  Start: Slideshow")
	} else {
		drawFooter(dst, "A: Open  B: Back  X: View  Y: Screenshot  Start: Favorite  Select: Core")
	}

	if f.jumping {
		f.drawJump(dst)
	}
}

func (f *FileListScreen) drawList(a *App, dst *ebiten.Image) {
	face := *style.FontFace()
	panel := f.showShots
	textW := float64(style.ScreenWidth - 4*style.Padding)
	if panel {
		textW = float64(style.ScreenWidth - style.ThumbnailMaxWidth - 5*style.Padding)
	}

	start, end := f.list.VisibleRange()
	for i := start; i < end; i++ {
		e := &f.entries[i]
		y := f.list.rowY(i)
		if i == f.list.Index {
			w := textW + 2*style.Padding
			fillRect(dst, style.SmallSpacing, y, w, style.ListRowHeight, style.Primary)
		}

		x := float64(style.Padding)
		if !e.IsDir && a.store.IsFavorite(e.Path) {
			drawText(dst, "*", face, x, y+4, style.Accent)
		}
		x += 14

		label := e.Name
		if e.IsDir {
			label = "[" + label + "]"
		}
		label, _ = style.TruncateToWidth(label, face, textW-14)
		clr := style.Text
		if e.IsDir {
			clr = style.TextSecondary
		}
		drawText(dst, label, face, x, y+4, clr)
	}
	f.list.drawScrollbar(dst)

	if panel {
		f.drawScreenshotPanel(a, dst)
	}
}

// drawScreenshotPanel shows the selected file's screenshot on the right
// with its size and modification date underneath.
func (f *FileListScreen) drawScreenshotPanel(a *App, dst *ebiten.Image) {
	px := float64(style.ScreenWidth - style.ThumbnailMaxWidth - 2*style.Padding)
	py := float64(style.ListTopY)
	pw := float64(style.ThumbnailMaxWidth + style.Padding)
	ph := float64(style.ThumbnailMaxHeight + style.Padding)
	fillRect(dst, px, py, pw, ph, style.Surface)
	strokeRect(dst, px, py, pw, ph, style.Border)

	e := f.selected()
	if img := f.screenshotFor(a, e, style.ThumbnailMaxWidth, style.ThumbnailMaxHeight); img != nil {
		drawImageCentered(dst, img, px+pw/2, py+ph/2)
	} else {
		drawTextCentered(dst, "No screenshot", *style.SmallFace(), px+pw/2, py+ph/2-6, style.TextSecondary)
	}

	if e != nil && !e.IsDir {
		small := *style.SmallFace()
		infoY := py + ph + 6
		drawText(dst, catalog.FormatSize(e.Size), small, px+4, infoY, style.TextSecondary)
		drawText(dst, style.FormatDate(e.ModTime), small, px+4, infoY+14, style.TextSecondary)
	}
}

// drawGallery renders one page of screenshot thumbnails.
func (f *FileListScreen) drawGallery(a *App, dst *ebiten.Image) {
	const (
		cellW  = 156
		cellH  = 128
		thumbW = 140
		thumbH = 92
	)
	originX := float64(style.ScreenWidth-fileGalleryCols*cellW) / 2
	originY := float64(style.ListTopY)
	perPage := fileGalleryCols * fileGalleryRows

	page := f.list.Index / perPage
	base := page * perPage
	face := *style.SmallFace()
	for slot := 0; slot < perPage && base+slot < len(f.entries); slot++ {
		i := base + slot
		e := &f.entries[i]
		x := originX + float64(slot%fileGalleryCols*cellW)
		y := originY + float64(slot/fileGalleryCols*cellH)

		if i == f.list.Index {
			fillRect(dst, x+2, y+2, cellW-4, cellH-4, style.Primary)
		}
		strokeRect(dst, x+2, y+2, cellW-4, cellH-4, style.Border)

		if e.IsDir {
			drawTextCentered(dst, "[DIR]", face, x+cellW/2, y+38, style.TextSecondary)
		} else if img := f.screenshotFor(a, e, thumbW, thumbH); img != nil {
			drawImageCentered(dst, img, x+cellW/2, y+6+thumbH/2)
		} else {
			drawTextCentered(dst, "No image", face, x+cellW/2, y+38, style.TextSecondary)
		}
		name, _ := style.TruncateToWidth(e.Name, face, cellW-2*style.SmallSpacing)
		drawTextCentered(dst, name, face, x+cellW/2, y+cellH-22, style.Text)
	}

	pages := (len(f.entries) + perPage - 1) / perPage
	label := fmt.Sprintf("Page %d/%d", page+1, pages)
	if f.slideshow {
		label = "Slideshow  " + label
	}
	drawTextRight(dst, label, face, style.ScreenWidth-style.Padding, float64(style.ScreenHeight-style.FooterHeight-18), style.TextSecondary)
}

// drawJump renders the quick jump keyboard over a dimmed list.
func (f *FileListScreen) drawJump(dst *ebiten.Image) {
	dimScreen(dst, 153)
	x := (float64(style.ScreenWidth) - f.kb.Width()) / 2
	y := (float64(style.ScreenHeight) - f.kb.Height()) / 2
	drawTextCentered(dst, "Jump to", *style.FontFace(), style.ScreenWidth/2, y-26, style.Text)
	f.kb.Draw(dst, x, y)
}
