// Package control turns classified gesture modes into timed, rate-limited
// pointer and keyboard actions.
package control

import "fmt"

// ActionType identifies one kind of emitted control action.
type ActionType string

const (
	// ActionMove repositions the cursor to absolute screen pixels (X, Y).
	ActionMove ActionType = "move"
	// ActionClick presses and releases the left mouse button.
	ActionClick ActionType = "click"
	// ActionScrollTick scrolls by Amount units (negative scrolls down).
	ActionScrollTick ActionType = "scroll"
	// ActionSwipeBack sends the browser-back keyboard shortcut (Alt+Left).
	ActionSwipeBack ActionType = "swipe_back"
)

// Action is one emitted control event.
type Action struct {
	Type   ActionType
	X, Y   int // screen pixels, ActionMove only
	Amount int // scroll units, ActionScrollTick only
}

func (a Action) String() string {
	switch a.Type {
	case ActionMove:
		return fmt.Sprintf("move(%d,%d)", a.X, a.Y)
	case ActionScrollTick:
		return fmt.Sprintf("scroll(%d)", a.Amount)
	default:
		return string(a.Type)
	}
}
