package control

import (
	"log"
	"math"
	"time"

	"github.com/ayusman/mudra/internal/config"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/gesture"
)

type point struct {
	x, y float64
}

// Dispatcher is the stateful tail of the pipeline: it owns all cross-frame
// memory (debounce timestamps, the smoothed cursor position, the swipe
// reference centroid) and is the only component with side effects, performed
// through its Injector.
type Dispatcher struct {
	cfg      config.Config
	screenW  int
	screenH  int
	injector Injector
	onAction func(Action)

	lastClick  time.Time
	lastScroll time.Time
	lastSwipe  time.Time

	cursor       *point // last emitted cursor position, nil before first move
	pinchActive  bool
	scrollActive bool
	swipeRef     float64 // centroid x recorded at scroll entry
}

// NewDispatcher creates a Dispatcher for the given screen geometry. The
// configuration must already be validated.
func NewDispatcher(cfg config.Config, screenW, screenH int, injector Injector) *Dispatcher {
	return &Dispatcher{
		cfg:      cfg,
		screenW:  screenW,
		screenH:  screenH,
		injector: injector,
	}
}

// OnAction registers a callback invoked for every emitted action, after
// injection. Used for event logging and the tray display.
func (d *Dispatcher) OnAction(fn func(Action)) {
	d.onAction = fn
}

// Process handles one frame: given the classified mode and the hand that
// produced it (nil when absent), it updates the dispatcher state and emits
// zero or more actions. Frames must be processed in arrival order.
func (d *Dispatcher) Process(now time.Time, mode gesture.Mode, hand *detector.HandLandmarks) []Action {
	if hand == nil {
		mode = gesture.ModeIdle
	}

	// Transition effects: leaving scroll clears pending swipe state, leaving
	// pinch re-arms the click edge. Cursor smoothing state persists across
	// mode changes so the cursor does not jump when a pinch ends.
	if mode != gesture.ModeScroll && d.scrollActive {
		d.scrollActive = false
		d.swipeRef = 0
	}
	if mode != gesture.ModePinch {
		d.pinchActive = false
	}

	var emitted []Action

	switch mode {
	case gesture.ModePinch:
		if !d.pinchActive {
			d.pinchActive = true
			if elapsed(now, d.lastClick, d.cfg.ClickDebounce()) {
				d.lastClick = now
				emitted = d.emit(emitted, Action{Type: ActionClick})
			}
		}

	case gesture.ModeScroll:
		cx := hand.Centroid().X
		if !d.scrollActive {
			d.scrollActive = true
			d.swipeRef = cx
		}

		if cx-d.swipeRef > d.cfg.SwipeThreshold {
			// Rightward swipe past the threshold: browser back. The reference
			// resets on fire so repeated swipes each need a full crossing.
			if elapsed(now, d.lastSwipe, d.cfg.SwipeDebounce()) {
				d.lastSwipe = now
				d.swipeRef = cx
				emitted = d.emit(emitted, Action{Type: ActionSwipeBack})
			}
		} else if elapsed(now, d.lastScroll, d.cfg.ScrollIntervalDuration()) {
			d.lastScroll = now
			emitted = d.emit(emitted, Action{Type: ActionScrollTick, Amount: -d.cfg.ScrollSpeed})
		}

	case gesture.ModePoint:
		if a, ok := d.shapeCursor(hand); ok {
			emitted = d.emit(emitted, a)
		}
	}

	return emitted
}

// shapeCursor maps the index fingertip to screen pixels, applies exponential
// smoothing against the last emitted position, and suppresses moves whose
// pixel delta stays within the movement threshold.
func (d *Dispatcher) shapeCursor(hand *detector.HandLandmarks) (Action, bool) {
	tip := hand.Points[detector.IndexTip]
	raw := point{
		x: tip.X * float64(d.screenW),
		y: tip.Y * float64(d.screenH),
	}

	if d.cursor == nil {
		d.cursor = &raw
		return Action{Type: ActionMove, X: int(raw.x), Y: int(raw.y)}, true
	}

	alpha := d.cfg.CursorSmoothing
	smoothed := point{
		x: alpha*d.cursor.x + (1-alpha)*raw.x,
		y: alpha*d.cursor.y + (1-alpha)*raw.y,
	}

	if math.Hypot(smoothed.x-d.cursor.x, smoothed.y-d.cursor.y) <= d.cfg.MinMovementThreshold {
		// Not a no-op compute: an explicit do-not-move decision. The last
		// emitted position stays the smoothing anchor.
		return Action{}, false
	}

	d.cursor = &smoothed
	return Action{Type: ActionMove, X: int(smoothed.x), Y: int(smoothed.y)}, true
}

// emit injects the action and forwards it to the observer. Injection errors
// are logged, never propagated: a missed click is a tuning problem, not a
// pipeline fault.
func (d *Dispatcher) emit(list []Action, a Action) []Action {
	if err := d.inject(a); err != nil {
		log.Printf("inject %s: %v", a, err)
	}
	if d.onAction != nil {
		d.onAction(a)
	}
	return append(list, a)
}

func (d *Dispatcher) inject(a Action) error {
	switch a.Type {
	case ActionMove:
		return d.injector.MoveMouse(a.X, a.Y)
	case ActionClick:
		return d.injector.Click()
	case ActionScrollTick:
		return d.injector.Scroll(a.Amount)
	case ActionSwipeBack:
		return d.injector.BrowserBack()
	}
	return nil
}
