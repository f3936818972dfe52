package detector

import "math"

// Coordinate tolerance band around the normalized [0,1] range. MediaPipe can
// report landmarks slightly outside the frame while the hand is still usable.
const (
	minCoord = -0.5
	maxCoord = 1.5
)

// SelectHand picks the observation that should drive the control pipeline:
// the first detected hand matching the wanted handedness label that passes
// validation. A missing, mislabeled or malformed hand returns (nil, false) —
// absence is a normal operating condition, never an error.
func SelectHand(hands []HandLandmarks, handedness string) (*HandLandmarks, bool) {
	for i := range hands {
		h := &hands[i]
		if h.Handedness != handedness {
			continue
		}
		if !validObservation(h) {
			continue
		}
		return h, true
	}
	return nil, false
}

// validObservation rejects landmark sets the classifier cannot reason about:
// non-finite or far out-of-range coordinates, or an all-zero frame (the
// detector's value for "nothing tracked yet").
func validObservation(h *HandLandmarks) bool {
	allZero := true
	for i := 0; i < NumLandmarks; i++ {
		p := h.Points[i]
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return false
		}
		if p.X < minCoord || p.X > maxCoord || p.Y < minCoord || p.Y > maxCoord {
			return false
		}
		if p.X != 0 || p.Y != 0 || p.Z != 0 {
			allZero = false
		}
	}
	return !allZero
}
