package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	hands []HandLandmarks
	err   error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.hands = hands
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// Translated returns a copy of the landmarks with every point shifted by
// (dx, dy). Handy for simulating hand movement across frames.
func (h HandLandmarks) Translated(dx, dy float64) HandLandmarks {
	for i := 0; i < NumLandmarks; i++ {
		h.Points[i].X += dx
		h.Points[i].Y += dy
	}
	return h
}

// PointingHandLandmarks returns a preset right hand with only the index
// finger extended (cursor-move pose). The index tip sits high in the frame
// (y=0.10) with its PIP joint well below it; all other fingers are curled
// and the thumb is far from the index tip.
func PointingHandLandmarks() HandLandmarks {
	hand := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	hand.Points[Wrist] = Point3D{X: 0.50, Y: 0.80, Z: 0.0}

	// Thumb off to the side, nowhere near the index tip
	hand.Points[ThumbCMC] = Point3D{X: 0.55, Y: 0.75, Z: 0.0}
	hand.Points[ThumbMCP] = Point3D{X: 0.60, Y: 0.72, Z: 0.0}
	hand.Points[ThumbIP] = Point3D{X: 0.63, Y: 0.70, Z: 0.0}
	hand.Points[ThumbTip] = Point3D{X: 0.66, Y: 0.68, Z: 0.0}

	// Index extended straight up
	hand.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.50, Z: 0.0}
	hand.Points[IndexPIP] = Point3D{X: 0.56, Y: 0.35, Z: 0.0}
	hand.Points[IndexDIP] = Point3D{X: 0.57, Y: 0.22, Z: 0.0}
	hand.Points[IndexTip] = Point3D{X: 0.57, Y: 0.10, Z: 0.0}

	// Middle curled (tip below its PIP joint)
	hand.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.55, Z: -0.02}
	hand.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.50, Z: -0.05}
	hand.Points[MiddleDIP] = Point3D{X: 0.49, Y: 0.56, Z: -0.04}
	hand.Points[MiddleTip] = Point3D{X: 0.48, Y: 0.60, Z: -0.02}

	// Ring curled
	hand.Points[RingMCP] = Point3D{X: 0.45, Y: 0.57, Z: -0.02}
	hand.Points[RingPIP] = Point3D{X: 0.45, Y: 0.52, Z: -0.05}
	hand.Points[RingDIP] = Point3D{X: 0.44, Y: 0.58, Z: -0.04}
	hand.Points[RingTip] = Point3D{X: 0.43, Y: 0.62, Z: -0.02}

	// Pinky curled
	hand.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.60, Z: -0.02}
	hand.Points[PinkyPIP] = Point3D{X: 0.40, Y: 0.56, Z: -0.05}
	hand.Points[PinkyDIP] = Point3D{X: 0.39, Y: 0.61, Z: -0.04}
	hand.Points[PinkyTip] = Point3D{X: 0.38, Y: 0.64, Z: -0.02}

	return hand
}

// PinchHandLandmarks returns a preset right hand with thumb and index tips
// pinched together: thumb tip at (0.50, 0.50), index tip at (0.515, 0.50),
// a normalized distance of 0.015. The index finger is still extended.
func PinchHandLandmarks() HandLandmarks {
	hand := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	hand.Points[Wrist] = Point3D{X: 0.50, Y: 0.85, Z: 0.0}

	hand.Points[ThumbCMC] = Point3D{X: 0.54, Y: 0.78, Z: 0.0}
	hand.Points[ThumbMCP] = Point3D{X: 0.52, Y: 0.70, Z: 0.0}
	hand.Points[ThumbIP] = Point3D{X: 0.51, Y: 0.60, Z: 0.0}
	hand.Points[ThumbTip] = Point3D{X: 0.50, Y: 0.50, Z: 0.0}

	hand.Points[IndexMCP] = Point3D{X: 0.53, Y: 0.68, Z: 0.0}
	hand.Points[IndexPIP] = Point3D{X: 0.52, Y: 0.60, Z: 0.0}
	hand.Points[IndexDIP] = Point3D{X: 0.52, Y: 0.55, Z: 0.0}
	hand.Points[IndexTip] = Point3D{X: 0.515, Y: 0.50, Z: 0.0}

	hand.Points[MiddleMCP] = Point3D{X: 0.49, Y: 0.66, Z: -0.02}
	hand.Points[MiddlePIP] = Point3D{X: 0.49, Y: 0.60, Z: -0.05}
	hand.Points[MiddleDIP] = Point3D{X: 0.48, Y: 0.65, Z: -0.04}
	hand.Points[MiddleTip] = Point3D{X: 0.47, Y: 0.68, Z: -0.02}

	hand.Points[RingMCP] = Point3D{X: 0.45, Y: 0.68, Z: -0.02}
	hand.Points[RingPIP] = Point3D{X: 0.45, Y: 0.62, Z: -0.05}
	hand.Points[RingDIP] = Point3D{X: 0.44, Y: 0.67, Z: -0.04}
	hand.Points[RingTip] = Point3D{X: 0.43, Y: 0.70, Z: -0.02}

	hand.Points[PinkyMCP] = Point3D{X: 0.41, Y: 0.70, Z: -0.02}
	hand.Points[PinkyPIP] = Point3D{X: 0.41, Y: 0.65, Z: -0.05}
	hand.Points[PinkyDIP] = Point3D{X: 0.40, Y: 0.69, Z: -0.04}
	hand.Points[PinkyTip] = Point3D{X: 0.39, Y: 0.72, Z: -0.02}

	return hand
}

// ScrollHandLandmarks returns a preset right hand with index and middle
// fingers extended (scroll pose) and the thumb well clear of the index tip.
func ScrollHandLandmarks() HandLandmarks {
	hand := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	hand.Points[Wrist] = Point3D{X: 0.50, Y: 0.80, Z: 0.0}

	hand.Points[ThumbCMC] = Point3D{X: 0.56, Y: 0.75, Z: 0.0}
	hand.Points[ThumbMCP] = Point3D{X: 0.61, Y: 0.71, Z: 0.0}
	hand.Points[ThumbIP] = Point3D{X: 0.65, Y: 0.68, Z: 0.0}
	hand.Points[ThumbTip] = Point3D{X: 0.68, Y: 0.65, Z: 0.0}

	hand.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.60, Z: 0.0}
	hand.Points[IndexPIP] = Point3D{X: 0.56, Y: 0.45, Z: 0.0}
	hand.Points[IndexDIP] = Point3D{X: 0.57, Y: 0.35, Z: 0.0}
	hand.Points[IndexTip] = Point3D{X: 0.57, Y: 0.25, Z: 0.0}

	hand.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.58, Z: 0.0}
	hand.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.42, Z: 0.0}
	hand.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.32, Z: 0.0}
	hand.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.20, Z: 0.0}

	hand.Points[RingMCP] = Point3D{X: 0.45, Y: 0.60, Z: -0.02}
	hand.Points[RingPIP] = Point3D{X: 0.45, Y: 0.54, Z: -0.05}
	hand.Points[RingDIP] = Point3D{X: 0.44, Y: 0.60, Z: -0.04}
	hand.Points[RingTip] = Point3D{X: 0.43, Y: 0.64, Z: -0.02}

	hand.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.63, Z: -0.02}
	hand.Points[PinkyPIP] = Point3D{X: 0.40, Y: 0.58, Z: -0.05}
	hand.Points[PinkyDIP] = Point3D{X: 0.39, Y: 0.63, Z: -0.04}
	hand.Points[PinkyTip] = Point3D{X: 0.38, Y: 0.66, Z: -0.02}

	return hand
}

// FistLandmarks returns a preset right hand with every finger curled and no
// pinch. The classifier resolves it to the idle mode.
func FistLandmarks() HandLandmarks {
	hand := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	hand.Points[Wrist] = Point3D{X: 0.50, Y: 0.80, Z: 0.0}

	hand.Points[ThumbCMC] = Point3D{X: 0.55, Y: 0.75, Z: 0.0}
	hand.Points[ThumbMCP] = Point3D{X: 0.58, Y: 0.70, Z: 0.0}
	hand.Points[ThumbIP] = Point3D{X: 0.59, Y: 0.66, Z: 0.0}
	hand.Points[ThumbTip] = Point3D{X: 0.60, Y: 0.63, Z: 0.0}

	hand.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.62, Z: -0.02}
	hand.Points[IndexPIP] = Point3D{X: 0.55, Y: 0.58, Z: -0.05}
	hand.Points[IndexDIP] = Point3D{X: 0.53, Y: 0.62, Z: -0.04}
	hand.Points[IndexTip] = Point3D{X: 0.52, Y: 0.66, Z: -0.02}

	hand.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.60, Z: -0.02}
	hand.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.56, Z: -0.05}
	hand.Points[MiddleDIP] = Point3D{X: 0.48, Y: 0.61, Z: -0.04}
	hand.Points[MiddleTip] = Point3D{X: 0.47, Y: 0.65, Z: -0.02}

	hand.Points[RingMCP] = Point3D{X: 0.45, Y: 0.62, Z: -0.02}
	hand.Points[RingPIP] = Point3D{X: 0.45, Y: 0.58, Z: -0.05}
	hand.Points[RingDIP] = Point3D{X: 0.43, Y: 0.63, Z: -0.04}
	hand.Points[RingTip] = Point3D{X: 0.42, Y: 0.67, Z: -0.02}

	hand.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.65, Z: -0.02}
	hand.Points[PinkyPIP] = Point3D{X: 0.40, Y: 0.61, Z: -0.05}
	hand.Points[PinkyDIP] = Point3D{X: 0.38, Y: 0.65, Z: -0.04}
	hand.Points[PinkyTip] = Point3D{X: 0.37, Y: 0.68, Z: -0.02}

	return hand
}
