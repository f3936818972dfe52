package gesture

import "github.com/ayusman/mudra/internal/detector"

// Mode is the control state classified for a single frame.
type Mode string

const (
	// ModeIdle means no hand or no recognized finger pattern.
	ModeIdle Mode = "idle"
	// ModePoint means the index finger alone is extended (cursor armed).
	ModePoint Mode = "point"
	// ModePinch means thumb and index tips are pinched (click armed).
	ModePinch Mode = "pinch"
	// ModeScroll means index and middle fingers are extended.
	ModeScroll Mode = "scroll"
)

// PinchDistance returns the normalized 2D distance between the thumb and
// index fingertips.
func PinchDistance(hand *detector.HandLandmarks) float64 {
	return hand.TipDistance(detector.ThumbTip, detector.IndexTip)
}

// Classify maps one frame's finger state and pinch geometry to a Mode.
//
// Precedence is fixed: pinch > scroll > point > idle, re-evaluated every
// frame with no latching. Pinch wins over everything else so that fingers
// curling mid-pinch cannot be misread as a scroll or a cursor move.
func Classify(hand *detector.HandLandmarks, fingers FingerState, pinchThreshold float64) Mode {
	if hand == nil {
		return ModeIdle
	}

	switch {
	case PinchDistance(hand) < pinchThreshold:
		return ModePinch
	case fingers.Index && fingers.Middle:
		return ModeScroll
	case fingers.Index && !fingers.Middle:
		return ModePoint
	default:
		return ModeIdle
	}
}
