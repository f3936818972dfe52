package gesture

import (
	"testing"

	"github.com/ayusman/mudra/internal/detector"
)

func TestDetectFingers_PointingHand(t *testing.T) {
	hand := detector.PointingHandLandmarks()
	fingers := DetectFingers(&hand)

	if !fingers.Index {
		t.Error("index should be extended in the pointing pose")
	}
	if fingers.Middle {
		t.Error("middle should be curled in the pointing pose")
	}
	if fingers.Ring {
		t.Error("ring should be curled in the pointing pose")
	}
	if fingers.Pinky {
		t.Error("pinky should be curled in the pointing pose")
	}
}

func TestDetectFingers_ScrollHand(t *testing.T) {
	hand := detector.ScrollHandLandmarks()
	fingers := DetectFingers(&hand)

	if !fingers.Index || !fingers.Middle {
		t.Errorf("index and middle should be extended, got %+v", fingers)
	}
	if fingers.Ring || fingers.Pinky {
		t.Errorf("ring and pinky should be curled, got %+v", fingers)
	}
}

func TestDetectFingers_Fist(t *testing.T) {
	hand := detector.FistLandmarks()
	fingers := DetectFingers(&hand)

	if fingers.Index || fingers.Middle || fingers.Ring || fingers.Pinky {
		t.Errorf("all fingers should be curled in a fist, got %+v", fingers)
	}
}

func TestDetectFingers_NilHand(t *testing.T) {
	fingers := DetectFingers(nil)
	if fingers != (FingerState{}) {
		t.Errorf("nil hand should yield the zero state, got %+v", fingers)
	}
}

// Finger state must depend only on the frame's landmarks: classifying the
// same observation twice yields identical output.
func TestDetectFingers_Deterministic(t *testing.T) {
	hand := detector.ScrollHandLandmarks()

	first := DetectFingers(&hand)
	second := DetectFingers(&hand)

	if first != second {
		t.Errorf("repeated extraction differs: %+v vs %+v", first, second)
	}
}

func TestDetectFingers_ThumbHandedness(t *testing.T) {
	right := detector.PointingHandLandmarks()
	if !DetectFingers(&right).Thumb {
		t.Error("thumb tip right of its IP joint should read extended on a right hand")
	}

	// Same geometry labeled as a left hand flips the comparison
	left := right
	left.Handedness = "Left"
	if DetectFingers(&left).Thumb {
		t.Error("same geometry should read curled on a left hand")
	}
}
