package control

import "time"

// elapsed reports whether an action gated on a last-fired timestamp may fire
// again. A zero last value means the action has never fired.
func elapsed(now, last time.Time, interval time.Duration) bool {
	if last.IsZero() {
		return true
	}
	return now.Sub(last) >= interval
}
