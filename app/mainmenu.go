package app

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/game-de-it/pfe/input"
	"github.com/game-de-it/pfe/nav"
	"github.com/game-de-it/pfe/style"
)

const (
	galleryCols = 3
	galleryRows = 3
	galleryPage = galleryCols * galleryRows
)

// MainMenuScreen lists the configured categories, as text rows or as a
// grid of category images. The selection survives trips into other
// screens because the screen object does.
type MainMenuScreen struct {
	list    List
	gallery bool
	images  map[string]*ebiten.Image
}

func NewMainMenuScreen() *MainMenuScreen {
	return &MainMenuScreen{
		list:   NewList(style.ListRows),
		images: make(map[string]*ebiten.Image),
	}
}

func (m *MainMenuScreen) Activate(a *App) {
	m.gallery = a.store.Setting("view_mode") == "gallery"
	m.list.SetCount(len(a.cfg.Categories))
}

func (m *MainMenuScreen) Deactivate(a *App) {}

func (m *MainMenuScreen) Update(a *App) {
	d := a.debouncer

	if d.Pressed(input.ActionX) {
		m.gallery = !m.gallery
		mode := "list"
		if m.gallery {
			mode = "gallery"
		}
		a.saveSetting("view_mode", mode)
		return
	}
	if d.Pressed(input.ActionR) {
		a.machine.Go(nav.ScreenFavorites)
		return
	}
	if d.Pressed(input.ActionY) {
		a.machine.Go(nav.ScreenRecent)
		return
	}
	if d.Pressed(input.ActionStart) {
		a.machine.Go(nav.ScreenSearch)
		return
	}
	if d.Pressed(input.ActionSelect) {
		a.machine.Go(nav.ScreenSettings)
		return
	}

	if m.gallery {
		m.updateGalleryNav(d)
	} else {
		m.list.HandleUpDown(d)
		switch {
		case d.Pressed(input.ActionL):
			m.list.Home()
		case d.Pressed(input.ActionLeft):
			m.list.PageUp()
		case d.Pressed(input.ActionRight):
			m.list.PageDown()
		}
	}

	if d.Pressed(input.ActionA) {
		if i := m.list.Selected(); i >= 0 {
			a.machine.Set(nav.KeySelectedCategory, a.cfg.Categories[i].Title)
			a.machine.Go(nav.ScreenFileList)
		}
	}
	// B does nothing here; the main menu is the bottom of the stack.
}

// updateGalleryNav moves the cursor row-major through the image grid.
func (m *MainMenuScreen) updateGalleryNav(d *input.Debouncer) {
	switch {
	case d.PressedOrRepeated(input.ActionLeft):
		m.list.MoveBy(-1)
	case d.PressedOrRepeated(input.ActionRight):
		m.list.MoveBy(1)
	case d.PressedOrRepeated(input.ActionUp):
		m.list.MoveBy(-galleryCols)
	case d.PressedOrRepeated(input.ActionDown):
		m.list.MoveBy(galleryCols)
	case d.Pressed(input.ActionL):
		m.list.Home()
	case d.Pressed(input.ActionR):
		m.list.End()
	}
}

func (m *MainMenuScreen) Draw(a *App, dst *ebiten.Image) {
	note := fmt.Sprintf("%d systems", len(a.cfg.Categories))
	drawHeader(dst, "PFE", note)

	if len(a.cfg.Categories) == 0 {
		drawMessage(dst, "No categories configured", style.TextSecondary)
		drawFooter(dst, "Select: Settings")
		return
	}

	if m.gallery {
		m.drawGallery(a, dst)
	} else {
		start, end := m.list.VisibleRange()
		for i := start; i < end; i++ {
			m.list.drawRow(dst, i, a.cfg.Categories[i].Title, i == m.list.Index)
		}
		m.list.drawScrollbar(dst)
	}

	drawFooter(dst, "A: Open  X: View  Y: Recent  R: Favorites  Start: Search  Select: Settings")
}

// drawGallery renders one 3x3 page of category images around the
// cursor.
func (m *MainMenuScreen) drawGallery(a *App, dst *ebiten.Image) {
	const (
		cellW = 200
		cellH = 130
		imgW  = 180
		imgH  = 96
	)
	originX := float64(style.ScreenWidth-galleryCols*cellW) / 2
	originY := float64(style.ListTopY)

	page := m.list.Index / galleryPage
	base := page * galleryPage
	for slot := 0; slot < galleryPage && base+slot < m.list.Count(); slot++ {
		i := base + slot
		cat := &a.cfg.Categories[i]
		x := originX + float64(slot%galleryCols*cellW)
		y := originY + float64(slot/galleryCols*cellH)

		if i == m.list.Index {
			fillRect(dst, x+2, y+2, cellW-4, cellH-4, style.Primary)
		}
		strokeRect(dst, x+2, y+2, cellW-4, cellH-4, style.Border)

		if img := m.categoryImage(a, cat.Title, cat.Image, imgW, imgH); img != nil {
			drawImageCentered(dst, img, x+cellW/2, y+10+imgH/2)
		}
		title, _ := style.TruncateToWidth(cat.Title, *style.FontFace(), cellW-2*style.Padding)
		drawTextCentered(dst, title, *style.FontFace(), x+cellW/2, y+cellH-24, style.Text)
	}

	pages := (m.list.Count() + galleryPage - 1) / galleryPage
	label := fmt.Sprintf("Page %d/%d", page+1, pages)
	drawTextRight(dst, label, *style.SmallFace(), style.ScreenWidth-style.Padding, float64(style.ScreenHeight-style.FooterHeight-18), style.TextSecondary)
}

// categoryImage loads and caches one category image. A missing or bad
// image caches as nil so it is probed once.
func (m *MainMenuScreen) categoryImage(a *App, title, path string, maxW, maxH int) *ebiten.Image {
	if img, ok := m.images[title]; ok {
		return img
	}
	var img *ebiten.Image
	if path != "" {
		loaded, err := loadImage(a.cfg.ResolvePath(path), maxW, maxH)
		if err != nil {
			a.log.WithField("category", title).Debugf("image not loaded: %v", err)
		} else {
			img = loaded
		}
	}
	m.images[title] = img
	return img
}
