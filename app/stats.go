package app

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/game-de-it/pfe/input"
	"github.com/game-de-it/pfe/storage"
	"github.com/game-de-it/pfe/style"
)

const (
	statsRows    = 22
	statsLineH   = 18
	statsNameMax = 30
)

// statsName shortens a ROM path to a display name.
func statsName(romPath string) string {
	name := filepath.Base(romPath)
	if len(name) > statsNameMax {
		name = name[:statsNameMax-3] + "..."
	}
	return name
}

// buildStatsLines aggregates the raw launch records into the report
// shown on the statistics screen. History holds one record per launch,
// so play counts come from grouping by ROM path.
func buildStatsLines(records []storage.HistoryRecord, now time.Time) []string {
	if len(records) == 0 {
		return []string{"No play history found"}
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("Total Plays: %d", len(records)))
	lines = append(lines, "")

	// Per-ROM play counts, newest record first within the slice.
	plays := make(map[string]int)
	for _, rec := range records {
		plays[rec.ROMPath]++
	}

	lines = append(lines, "Most Played Games:")
	type romCount struct {
		path  string
		count int
	}
	ranked := make([]romCount, 0, len(plays))
	for path, count := range plays {
		ranked = append(ranked, romCount{path, count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].path < ranked[j].path
	})
	for i, rc := range ranked {
		if i >= 10 {
			break
		}
		lines = append(lines, fmt.Sprintf("  %d. %s", i+1, statsName(rc.path)))
		lines = append(lines, fmt.Sprintf("     Plays: %d", rc.count))
	}
	lines = append(lines, "")

	lines = append(lines, "Plays by Category:")
	catCounts := make(map[string]int)
	for _, rec := range records {
		cat := rec.Category
		if cat == "" {
			cat = "Unknown"
		}
		catCounts[cat]++
	}
	type catCount struct {
		name  string
		count int
	}
	cats := make([]catCount, 0, len(catCounts))
	for name, count := range catCounts {
		cats = append(cats, catCount{name, count})
	}
	sort.Slice(cats, func(i, j int) bool {
		if cats[i].count != cats[j].count {
			return cats[i].count > cats[j].count
		}
		return cats[i].name < cats[j].name
	})
	for _, cc := range cats {
		lines = append(lines, fmt.Sprintf("  %s: %d plays", cc.name, cc.count))
	}
	lines = append(lines, "")

	lines = append(lines, "Last 7 Days:")
	daily := make(map[string]int)
	for _, rec := range records {
		daily[rec.LastPlayed.Format("2006-01-02")]++
	}
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		count := daily[day.Format("2006-01-02")]
		bar := strings.Repeat("=", minInt(count, 20))
		lines = append(lines, fmt.Sprintf("  %s: %s (%d)", day.Format("01/02"), bar, count))
	}
	lines = append(lines, "")

	lines = append(lines, fmt.Sprintf("Unique Games Played: %d", len(plays)))
	lines = append(lines, "")

	lines = append(lines, "Recently Played:")
	seen := make(map[string]bool)
	shown := 0
	for _, rec := range records {
		if seen[rec.ROMPath] {
			continue
		}
		seen[rec.ROMPath] = true
		lines = append(lines, "  "+statsName(rec.ROMPath))
		lines = append(lines, "    "+rec.LastPlayed.Format("01/02 15:04"))
		shown++
		if shown >= 5 {
			break
		}
	}

	return lines
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// StatisticsScreen is a scrollable report over the launch history.
type StatisticsScreen struct {
	list  List
	lines []string
}

func NewStatisticsScreen() *StatisticsScreen {
	return &StatisticsScreen{list: NewList(statsRows)}
}

func (s *StatisticsScreen) Activate(a *App) {
	s.lines = buildStatsLines(a.store.History(), time.Now())
	s.list.SetCount(len(s.lines))
	s.list.SetCursor(0, 0)
}

func (s *StatisticsScreen) Deactivate(a *App) {}

func (s *StatisticsScreen) Update(a *App) {
	d := a.debouncer
	s.list.HandleUpDown(d)
	if d.Pressed(input.ActionL) {
		s.list.Home()
	}
	if d.Pressed(input.ActionR) {
		s.list.End()
	}
	if d.Pressed(input.ActionB) {
		a.machine.Back()
	}
}

func (s *StatisticsScreen) Draw(a *App, dst *ebiten.Image) {
	drawHeader(dst, "Statistics", fmt.Sprintf("%d/%d", s.list.Index+1, len(s.lines)))

	face := *style.SmallFace()
	start, end := s.list.VisibleRange()
	for i := start; i < end; i++ {
		y := float64(style.ListTopY + (i-s.list.Scroll)*statsLineH)
		line, _ := style.TruncateToWidth(s.lines[i], face, style.ScreenWidth-3*style.Padding)
		drawText(dst, line, face, style.Padding, y, style.Text)
	}

	// Dense lines need their own scrollbar math.
	if len(s.lines) > statsRows {
		areaH := float64(statsRows * statsLineH)
		barH := areaH * float64(statsRows) / float64(len(s.lines))
		if barH < 8 {
			barH = 8
		}
		maxScroll := float64(len(s.lines) - statsRows)
		barY := float64(style.ListTopY) + (areaH-barH)*float64(s.list.Scroll)/maxScroll
		fillRect(dst, style.ScreenWidth-4, style.ListTopY, 2, areaH, style.Border)
		fillRect(dst, style.ScreenWidth-4, barY, 2, barH, style.TextSecondary)
	}

	drawFooter(dst, "Up/Down: Scroll  L/R: Top/End  B: Back")
}
