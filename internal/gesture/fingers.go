// Package gesture derives finger states and control modes from hand landmarks.
package gesture

import "github.com/ayusman/mudra/internal/detector"

// FingerState holds the per-finger extended flag for one frame. It is a pure
// function of that frame's landmarks and carries no history.
type FingerState struct {
	Thumb  bool
	Index  bool
	Middle bool
	Ring   bool
	Pinky  bool
}

// DetectFingers computes the FingerState for a hand observation.
//
// A finger is extended when its tip sits above its PIP joint in image
// coordinates (y grows downward). The thumb extends sideways instead, so it
// compares tip and IP x-positions, with the direction flipped by handedness.
func DetectFingers(hand *detector.HandLandmarks) FingerState {
	if hand == nil {
		return FingerState{}
	}
	return FingerState{
		Thumb:  thumbUp(hand),
		Index:  fingerUp(hand, detector.IndexTip, detector.IndexPIP),
		Middle: fingerUp(hand, detector.MiddleTip, detector.MiddlePIP),
		Ring:   fingerUp(hand, detector.RingTip, detector.RingPIP),
		Pinky:  fingerUp(hand, detector.PinkyTip, detector.PinkyPIP),
	}
}

func fingerUp(hand *detector.HandLandmarks, tip, pip int) bool {
	return hand.Points[tip].Y < hand.Points[pip].Y
}

func thumbUp(hand *detector.HandLandmarks) bool {
	tip := hand.Points[detector.ThumbTip].X
	ip := hand.Points[detector.ThumbIP].X
	if hand.Handedness == "Left" {
		return tip < ip
	}
	return tip > ip
}
