package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/game-de-it/pfe/input"
	"github.com/game-de-it/pfe/nav"
	"github.com/game-de-it/pfe/storage"
	"github.com/game-de-it/pfe/style"
)

// FavoritesScreen lists the starred ROMs across every category.
// Entries whose files vanished are hidden but never deleted; the ROM
// may live on removable storage.
type FavoritesScreen struct {
	list  List
	items []storage.Favorite
}

func NewFavoritesScreen() *FavoritesScreen {
	return &FavoritesScreen{list: NewList(style.ListRows)}
}

func (s *FavoritesScreen) Activate(a *App) {
	s.refresh(a)
}

func (s *FavoritesScreen) Deactivate(a *App) {}

func (s *FavoritesScreen) refresh(a *App) {
	s.items = s.items[:0]
	for _, fav := range a.store.Favorites() {
		if _, err := os.Stat(fav.ROMPath); err != nil {
			continue
		}
		s.items = append(s.items, fav)
	}
	s.list.SetCount(len(s.items))
}

func (s *FavoritesScreen) Update(a *App) {
	d := a.debouncer
	s.list.HandleUpDown(d)
	switch {
	case d.Pressed(input.ActionL):
		s.list.Home()
	case d.Pressed(input.ActionR):
		s.list.End()
	}

	if d.Pressed(input.ActionA) {
		if i := s.list.Selected(); i >= 0 {
			fav := s.items[i]
			a.stageLaunch(fav.ROMPath, fav.Category)
		}
		return
	}

	if d.Pressed(input.ActionStart) {
		if i := s.list.Selected(); i >= 0 {
			fav := s.items[i]
			if _, err := a.store.ToggleFavorite(fav.ROMPath, fav.Category); err != nil {
				a.log.Warnf("favorite not removed: %v", err)
			} else {
				a.toast.Show("Removed from favorites: "+filepath.Base(fav.ROMPath), toastTicks)
			}
			s.refresh(a)
		}
		return
	}

	// B jumps straight home; favorites can be the entry point of a
	// restored session with nothing beneath it.
	if d.Pressed(input.ActionB) {
		a.machine.ClearHistory()
		a.machine.Replace(nav.ScreenMainMenu)
	}
}

func (s *FavoritesScreen) Draw(a *App, dst *ebiten.Image) {
	drawHeader(dst, "Favorites", fmt.Sprintf("%d starred", len(s.items)))

	if len(s.items) == 0 {
		drawMessage(dst, "No favorites yet. Press Start on a file to add one.", style.TextSecondary)
		drawFooter(dst, "B: Back")
		return
	}

	face := *style.FontFace()
	start, end := s.list.VisibleRange()
	for i := start; i < end; i++ {
		fav := s.items[i]
		label := fmt.Sprintf("%s  (%s)", filepath.Base(fav.ROMPath), fav.Category)
		label, _ = style.TruncateToWidth(label, face, style.ScreenWidth-4*style.Padding)
		y := s.list.rowY(i)
		if i == s.list.Index {
			fillRect(dst, style.SmallSpacing, y, style.ScreenWidth-2*style.SmallSpacing, style.ListRowHeight, style.Primary)
		}
		drawText(dst, "*", face, style.Padding, y+4, style.Accent)
		drawText(dst, label, face, style.Padding+14, y+4, style.Text)
	}
	s.list.drawScrollbar(dst)

	drawFooter(dst, "A: Launch  Start: Remove  B: Main menu")
}
