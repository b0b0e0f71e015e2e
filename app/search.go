package app

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/game-de-it/pfe/catalog"
	"github.com/game-de-it/pfe/input"
	"github.com/game-de-it/pfe/style"
)

const (
	// searchQueryMax caps the typed query length.
	searchQueryMax = 20
	// searchResultMax caps how many hits a scan collects.
	searchResultMax = 200
)

// SearchScreen finds ROMs by name across every category. The query is
// typed on the on-screen keyboard and survives leaving the screen for
// the rest of the session.
type SearchScreen struct {
	list   List
	query  string
	hits   []catalog.SearchHit
	kb     Keyboard
	typing bool
}

func NewSearchScreen() *SearchScreen {
	return &SearchScreen{list: NewList(style.ListRows - 2)}
}

func (s *SearchScreen) Activate(a *App) {
	s.typing = false
	if s.query != "" {
		s.search(a)
	}
}

func (s *SearchScreen) Deactivate(a *App) {}

func (s *SearchScreen) search(a *App) {
	s.hits = catalog.SearchAll(a.cfg, s.query, searchResultMax)
	s.list.SetCount(len(s.hits))
	s.list.SetCursor(0, 0)
}

func (s *SearchScreen) Update(a *App) {
	d := a.debouncer

	if s.typing {
		s.kb.HandleNav(d)
		switch {
		case d.Pressed(input.ActionA):
			if len(s.query) < searchQueryMax {
				s.query += string(s.kb.Rune())
				s.search(a)
			}
		case d.Pressed(input.ActionB):
			if s.query == "" {
				s.typing = false
			} else {
				s.query = s.query[:len(s.query)-1]
				s.search(a)
			}
		case d.Pressed(input.ActionStart):
			s.typing = false
		}
		return
	}

	if d.Pressed(input.ActionX) {
		s.typing = true
		s.kb.Reset()
		return
	}

	s.list.HandleUpDown(d)
	switch {
	case d.Pressed(input.ActionL):
		s.list.Home()
	case d.Pressed(input.ActionR):
		s.list.End()
	}

	if d.Pressed(input.ActionA) {
		if i := s.list.Selected(); i >= 0 {
			hit := s.hits[i]
			a.stageLaunch(hit.Path, hit.Category)
		}
		return
	}
	if d.Pressed(input.ActionB) {
		a.machine.Back()
	}
}

func (s *SearchScreen) Draw(a *App, dst *ebiten.Image) {
	note := ""
	if s.query != "" {
		note = fmt.Sprintf("%d hits", len(s.hits))
	}
	drawHeader(dst, "Search", note)

	face := *style.FontFace()
	query := s.query
	if s.typing {
		query += "_"
	}
	drawText(dst, "Query: "+query, face, style.Padding, style.ListTopY, style.Text)

	listTop := style.ListTopY + style.ListRowHeight + style.SmallSpacing
	switch {
	case s.query == "":
		drawMessage(dst, "Press X and pick letters to search", style.TextSecondary)
	case len(s.hits) == 0:
		drawMessage(dst, "No results", style.TextSecondary)
	default:
		start, end := s.list.VisibleRange()
		for i := start; i < end; i++ {
			hit := s.hits[i]
			y := float64(listTop + (i-s.list.Scroll)*style.ListRowHeight)
			if i == s.list.Index && !s.typing {
				fillRect(dst, style.SmallSpacing, y, style.ScreenWidth-2*style.SmallSpacing, style.ListRowHeight, style.Primary)
			}
			label := fmt.Sprintf("%s  (%s)", hit.Name, hit.Category)
			label, _ = style.TruncateToWidth(label, face, style.ScreenWidth-4*style.Padding)
			drawText(dst, label, face, style.Padding, y+4, style.Text)
		}
	}

	if s.typing {
		x := (float64(style.ScreenWidth) - s.kb.Width()) / 2
		y := float64(style.ScreenHeight-style.FooterHeight) - s.kb.Height() - 8
		s.kb.Draw(dst, x, y)
		drawFooter(dst, "A: Add letter  B: Delete  Start: Done")
		return
	}
	drawFooter(dst, "A: Launch  X: Edit query  B: Back")
}
