package app

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/game-de-it/pfe/input"
	"github.com/game-de-it/pfe/style"
)

// Datetime field rows.
const (
	dtRowYear = iota
	dtRowMonth
	dtRowDay
	dtRowHour
	dtRowMinute
	dtRowApply
	dtRowCount
)

var dtRowNames = [dtRowCount]string{"Year", "Month", "Day", "Hour", "Minute", "Apply"}

// daysIn returns the number of days in a month, leap years included.
func daysIn(year, month int) int {
	return time.Date(year, time.Month(month+1), 0, 0, 0, 0, 0, time.UTC).Day()
}

// DatetimeScreen adjusts the system clock field by field and hands the
// result to the host datetime script. The clock itself is read once on
// entry; ticking it while the user edits would fight the cursor.
type DatetimeScreen struct {
	row    int
	year   int
	month  int
	day    int
	hour   int
	minute int

	message      string
	messageTicks int
}

func NewDatetimeScreen() *DatetimeScreen {
	return &DatetimeScreen{}
}

func (s *DatetimeScreen) Activate(a *App) {
	now := time.Now()
	s.row = 0
	s.year = now.Year()
	s.month = int(now.Month())
	s.day = now.Day()
	s.hour = now.Hour()
	s.minute = now.Minute()
	s.message = ""
	s.messageTicks = 0
}

func (s *DatetimeScreen) Deactivate(a *App) {}

func (s *DatetimeScreen) fieldRange(row int) (int, int) {
	switch row {
	case dtRowYear:
		return 2020, 2099
	case dtRowMonth:
		return 1, 12
	case dtRowDay:
		return 1, daysIn(s.year, s.month)
	case dtRowHour:
		return 0, 23
	default:
		return 0, 59
	}
}

func (s *DatetimeScreen) value(row int) int {
	switch row {
	case dtRowYear:
		return s.year
	case dtRowMonth:
		return s.month
	case dtRowDay:
		return s.day
	case dtRowHour:
		return s.hour
	default:
		return s.minute
	}
}

func (s *DatetimeScreen) setValue(row, v int) {
	switch row {
	case dtRowYear:
		s.year = v
	case dtRowMonth:
		s.month = v
	case dtRowDay:
		s.day = v
	case dtRowHour:
		s.hour = v
	default:
		s.minute = v
	}
	// Changing year or month can shrink the day range.
	if max := daysIn(s.year, s.month); s.day > max {
		s.day = max
	}
}

// adjust steps a field by dir with wraparound between its bounds.
func (s *DatetimeScreen) adjust(row, dir int) {
	min, max := s.fieldRange(row)
	v := s.value(row) + dir
	if v < min {
		v = max
	}
	if v > max {
		v = min
	}
	s.setValue(row, v)
}

func (s *DatetimeScreen) Update(a *App) {
	if s.messageTicks > 0 {
		s.messageTicks--
		if s.messageTicks == 0 {
			s.message = ""
		}
	}

	d := a.debouncer
	switch {
	case d.PressedOrRepeated(input.ActionUp):
		s.row = (s.row - 1 + dtRowCount) % dtRowCount
	case d.PressedOrRepeated(input.ActionDown):
		s.row = (s.row + 1) % dtRowCount
	}

	if s.row != dtRowApply {
		switch {
		case d.PressedOrRepeated(input.ActionLeft):
			s.adjust(s.row, -1)
		case d.PressedOrRepeated(input.ActionRight):
			s.adjust(s.row, 1)
		}
	}

	if d.Pressed(input.ActionA) {
		if s.row == dtRowApply {
			s.apply(a)
		} else {
			s.row = dtRowApply
		}
		return
	}
	if d.Pressed(input.ActionB) {
		a.machine.Back()
	}
}

func (s *DatetimeScreen) apply(a *App) {
	if a.cfg.Scripts.Datetime == "" {
		s.showMessage("No datetime script configured")
		return
	}
	a.startScript("Date & time", a.cfg.Scripts.Datetime,
		fmt.Sprintf("%04d", s.year), fmt.Sprintf("%02d", s.month), fmt.Sprintf("%02d", s.day),
		fmt.Sprintf("%02d", s.hour), fmt.Sprintf("%02d", s.minute))
}

func (s *DatetimeScreen) showMessage(msg string) {
	s.message = msg
	s.messageTicks = 90
}

// ScriptDone turns the datetime script result into the inline message.
func (s *DatetimeScreen) ScriptDone(a *App, res scriptResult) bool {
	if res.label != "Date & time" {
		return false
	}
	if res.err != nil {
		s.showMessage("Failed to set date/time")
	} else {
		s.showMessage("Date/Time updated!")
	}
	return true
}

func (s *DatetimeScreen) Draw(a *App, dst *ebiten.Image) {
	drawHeader(dst, "Date/Time", "")

	face := *style.FontFace()
	preview := fmt.Sprintf("%04d/%02d/%02d %02d:%02d", s.year, s.month, s.day, s.hour, s.minute)
	drawTextCentered(dst, preview, face, style.ScreenWidth/2, 60, style.Accent)

	startY := 100.0
	for i := 0; i < dtRowCount; i++ {
		y := startY + float64(i*style.ListRowHeight)
		if i == s.row {
			fillRect(dst, style.SmallSpacing, y, style.ScreenWidth-2*style.SmallSpacing, style.ListRowHeight, style.Primary)
		}
		if i == dtRowApply {
			drawTextCentered(dst, "[ Apply ]", face, style.ScreenWidth/2, y+4, style.Text)
			continue
		}
		drawText(dst, dtRowNames[i], face, style.Padding, y+4, style.Text)
		value := fmt.Sprintf("< %02d >", s.value(i))
		if i == dtRowYear {
			value = fmt.Sprintf("< %d >", s.year)
		}
		drawTextRight(dst, value, face, style.ScreenWidth-2*style.Padding, y+4, style.Text)
	}

	if s.message != "" {
		clr := style.Accent
		if s.message != "Date/Time updated!" {
			clr = style.Danger
		}
		drawTextCentered(dst, s.message, face, style.ScreenWidth/2, startY+float64(dtRowCount*style.ListRowHeight)+16, clr)
	}

	drawFooter(dst, "Up/Down: Select  Left/Right: Change  A: Apply  B: Back")
}
