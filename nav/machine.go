// Package nav holds the launcher's navigation state: which screen is
// showing, how the user got there, and the transient data screens pass to
// each other. It is pure state with no UI dependencies so transitions can
// be tested tick by tick.
package nav

// maxHistory caps the back stack. Pushing beyond it evicts the oldest entry.
const maxHistory = 10

// Well-known scoped data keys. Screens communicate through these rather
// than holding references to each other.
const (
	KeySelectedCategory = "selected_category"
	KeySelectedFile     = "selected_file"
	KeySelectedIndex    = "selected_file_index"
	KeyAvailableCores   = "available_cores"
	KeyCoreOverride     = "temp_core_override"
	KeyLaunchROM        = "rom_to_launch"
	KeyLaunchCategory   = "launch_category"
	KeyPostSplash       = "post_splash_screen"
	KeySubdirectory     = "launch_subdirectory"
	KeyDirStack         = "launch_directory_stack"
	KeyLaunchIndex      = "launch_selected_index"
	KeyLaunchScroll     = "launch_scroll_offset"
)

// Position is a saved cursor within a list: the selected index and the
// scroll offset of the visible window.
type Position struct {
	Index  int `json:"index"`
	Scroll int `json:"scroll"`
}

// Machine tracks the current screen, the back-navigation history, scoped
// data shared between screens, and per-category list positions.
//
// Machine is not safe for concurrent use. All access happens on the app
// tick; background work must hand results to the tick loop instead of
// touching the machine directly.
type Machine struct {
	current   ScreenID
	history   []ScreenID
	scoped    map[string]any
	positions map[string]Position
}

// NewMachine creates a machine starting on the given screen with empty
// history.
func NewMachine(start ScreenID) *Machine {
	return &Machine{
		current:   start,
		scoped:    make(map[string]any),
		positions: make(map[string]Position),
	}
}

// Current returns the active screen.
func (m *Machine) Current() ScreenID {
	return m.current
}

// Go transitions to next, pushing the current screen onto the history so
// Back can return to it. Transitioning to the screen already showing does
// not grow the history.
func (m *Machine) Go(next ScreenID) {
	if next != m.current {
		m.push(m.current)
	}
	m.current = next
}

// Replace transitions to next without recording the current screen. Used
// for transitions the user should not be able to back into, like leaving
// the splash screen.
func (m *Machine) Replace(next ScreenID) {
	m.current = next
}

// Back pops the most recent history entry and makes it current. With no
// history it falls back to the main menu. Back never fails.
func (m *Machine) Back() ScreenID {
	if len(m.history) == 0 {
		m.current = ScreenMainMenu
		return m.current
	}
	m.current = m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]
	return m.current
}

func (m *Machine) push(id ScreenID) {
	m.history = append(m.history, id)
	if len(m.history) > maxHistory {
		m.history = m.history[1:]
	}
}

// HistoryLen returns the current back-stack depth.
func (m *Machine) HistoryLen() int {
	return len(m.history)
}

// ClearHistory empties the back stack.
func (m *Machine) ClearHistory() {
	m.history = m.history[:0]
}

// SeedHistory replaces the back stack. Session restore uses this to give
// a restored screen a plausible back path.
func (m *Machine) SeedHistory(ids ...ScreenID) {
	m.history = append(m.history[:0], ids...)
	for len(m.history) > maxHistory {
		m.history = m.history[1:]
	}
}

// Set stores a scoped value. Scoped data survives transitions until
// deleted or cleared.
func (m *Machine) Set(key string, v any) {
	m.scoped[key] = v
}

// Get returns a scoped value and whether it was present.
func (m *Machine) Get(key string) (any, bool) {
	v, ok := m.scoped[key]
	return v, ok
}

// GetString returns a scoped string value, or def when absent or not a
// string.
func (m *Machine) GetString(key, def string) string {
	if v, ok := m.scoped[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

// GetInt returns a scoped int value, or def when absent or not an int.
func (m *Machine) GetInt(key string, def int) int {
	if v, ok := m.scoped[key]; ok {
		if n, ok := v.(int); ok {
			return n
		}
	}
	return def
}

// GetBool returns a scoped bool value, or def when absent or not a bool.
func (m *Machine) GetBool(key string, def bool) bool {
	if v, ok := m.scoped[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

// Delete removes one scoped value.
func (m *Machine) Delete(key string) {
	delete(m.scoped, key)
}

// ClearScoped removes all scoped values.
func (m *Machine) ClearScoped() {
	clear(m.scoped)
}

// PositionFor returns the saved list position for a category. Unknown
// categories get the zero position.
func (m *Machine) PositionFor(category string) Position {
	return m.positions[category]
}

// SetPosition saves the list position for a category.
func (m *Machine) SetPosition(category string, p Position) {
	m.positions[category] = p
}

// Positions returns a copy of all saved category positions for session
// persistence.
func (m *Machine) Positions() map[string]Position {
	out := make(map[string]Position, len(m.positions))
	for k, v := range m.positions {
		out[k] = v
	}
	return out
}

// RestorePositions replaces the saved category positions, typically from a
// loaded session.
func (m *Machine) RestorePositions(positions map[string]Position) {
	m.positions = make(map[string]Position, len(positions))
	for k, v := range positions {
		m.positions[k] = v
	}
}
