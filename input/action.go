// Package input turns raw keyboard and gamepad state into debounced
// logical actions. Screens only ever see Actions; which physical key or
// pad button produced one is decided here, by layout defaults overlaid
// with user overrides.
package input

import "strings"

// Action is a logical input the launcher reacts to.
type Action int

const (
	// ActionUp moves the selection up
	ActionUp Action = iota
	// ActionDown moves the selection down
	ActionDown
	// ActionLeft moves left or cycles a value down
	ActionLeft
	// ActionRight moves right or cycles a value up
	ActionRight
	// ActionA is the confirm face button
	ActionA
	// ActionB is the cancel face button
	ActionB
	// ActionX is the secondary face button (favorite toggle)
	ActionX
	// ActionY is the tertiary face button (core select)
	ActionY
	// ActionL is the left shoulder (page up)
	ActionL
	// ActionR is the right shoulder (page down)
	ActionR
	// ActionL2 is the left trigger (jump to start)
	ActionL2
	// ActionR2 is the right trigger (jump to end)
	ActionR2
	// ActionStart opens settings or confirms queries
	ActionStart
	// ActionSelect is the auxiliary menu button
	ActionSelect
)

// actionCount is the number of defined actions.
const actionCount = 14

// Logical aliases. The layout decides which physical pad button feeds
// ActionA/ActionB, so confirm and cancel follow the layout automatically.
const (
	ActionConfirm = ActionA
	ActionCancel  = ActionB
)

// String returns the string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionA:
		return "A"
	case ActionB:
		return "B"
	case ActionX:
		return "X"
	case ActionY:
		return "Y"
	case ActionL:
		return "L"
	case ActionR:
		return "R"
	case ActionL2:
		return "L2"
	case ActionR2:
		return "R2"
	case ActionStart:
		return "Start"
	case ActionSelect:
		return "Select"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action is a d-pad direction. Directions
// keep fixed bindings and cannot be overridden.
func (a Action) IsDirection() bool {
	return a >= ActionUp && a <= ActionRight
}

// ParseAction converts an action name to an Action.
// Returns the action and true if the name is valid, or 0 and false otherwise.
func ParseAction(name string) (Action, bool) {
	for a := Action(0); a < actionCount; a++ {
		if a.String() == name {
			return a, true
		}
	}
	return 0, false
}

// Actions returns all defined actions in declaration order.
func Actions() []Action {
	out := make([]Action, actionCount)
	for i := range out {
		out[i] = Action(i)
	}
	return out
}

// BindableActions returns the actions a user may rebind, which is every
// action except the four directions.
func BindableActions() []Action {
	out := make([]Action, 0, actionCount-4)
	for a := Action(0); a < actionCount; a++ {
		if !a.IsDirection() {
			out = append(out, a)
		}
	}
	return out
}

// Layout selects the physical placement of the face buttons.
type Layout int

const (
	// LayoutNintendo puts A on the east face button and B on the south
	LayoutNintendo Layout = iota
	// LayoutXbox puts A on the south face button and B on the east
	LayoutXbox
)

// String returns the string representation of the layout.
func (l Layout) String() string {
	switch l {
	case LayoutNintendo:
		return "Nintendo"
	case LayoutXbox:
		return "Xbox"
	default:
		return "Unknown"
	}
}

// ParseLayout converts a layout name to a Layout. Unrecognized names map
// to LayoutNintendo, the device default.
func ParseLayout(name string) Layout {
	if strings.EqualFold(name, "Xbox") {
		return LayoutXbox
	}
	return LayoutNintendo
}
