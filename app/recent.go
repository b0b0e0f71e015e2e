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

// RecentScreen lists the launch history newest first, one row per ROM.
type RecentScreen struct {
	list  List
	items []storage.HistoryRecord
}

func NewRecentScreen() *RecentScreen {
	return &RecentScreen{list: NewList(style.ListRows)}
}

func (s *RecentScreen) Activate(a *App) {
	s.items = recentItems(a.store.History())
	s.list.SetCount(len(s.items))
}

func (s *RecentScreen) Deactivate(a *App) {}

// recentItems collapses the history to one row per ROM, newest first,
// dropping files that no longer exist. History is already newest first,
// so the first record seen for a path is its latest play.
func recentItems(hist []storage.HistoryRecord) []storage.HistoryRecord {
	seen := make(map[string]bool, len(hist))
	out := make([]storage.HistoryRecord, 0, len(hist))
	for _, rec := range hist {
		if seen[rec.ROMPath] {
			continue
		}
		seen[rec.ROMPath] = true
		if _, err := os.Stat(rec.ROMPath); err != nil {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func (s *RecentScreen) Update(a *App) {
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
			rec := s.items[i]
			a.stageLaunch(rec.ROMPath, rec.Category)
		}
		return
	}

	if d.Pressed(input.ActionB) {
		a.machine.ClearHistory()
		a.machine.Replace(nav.ScreenMainMenu)
	}
}

func (s *RecentScreen) Draw(a *App, dst *ebiten.Image) {
	drawHeader(dst, "Recently Played", fmt.Sprintf("%d games", len(s.items)))

	if len(s.items) == 0 {
		drawMessage(dst, "Nothing launched yet", style.TextSecondary)
		drawFooter(dst, "B: Back")
		return
	}

	face := *style.FontFace()
	small := *style.SmallFace()
	start, end := s.list.VisibleRange()
	for i := start; i < end; i++ {
		rec := s.items[i]
		y := s.list.rowY(i)
		if i == s.list.Index {
			fillRect(dst, style.SmallSpacing, y, style.ScreenWidth-2*style.SmallSpacing, style.ListRowHeight, style.Primary)
		}
		label := fmt.Sprintf("%s  (%s)", filepath.Base(rec.ROMPath), rec.Category)
		label, _ = style.TruncateToWidth(label, face, style.ScreenWidth-150)
		drawText(dst, label, face, style.Padding, y+4, style.Text)
		drawTextRight(dst, style.FormatLastPlayed(rec.LastPlayed), small, style.ScreenWidth-2*style.Padding, y+6, style.TextSecondary)
	}
	s.list.drawScrollbar(dst)

	drawFooter(dst, "A: Launch  B: Main menu")
}
