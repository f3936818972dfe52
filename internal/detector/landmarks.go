// Package detector provides hand detection interfaces and types for the Mudra cursor control system.
package detector

import "math"

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point3D represents a 3D point with x, y in normalized image coordinates
// ([0,1] relative to frame width/height) and z as a relative depth estimate.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HandLandmarks represents the 21 hand landmarks detected for a single hand
// in one frame, tagged with a handedness label.
type HandLandmarks struct {
	Points     [NumLandmarks]Point3D `json:"points"`
	Handedness string                `json:"handedness"` // "Left" or "Right"
	Score      float64               `json:"score"`
}

// TipDistance returns the 2D Euclidean distance between two landmarks in
// normalized image coordinates. Depth is ignored: the pinch decision is made
// in the image plane, where the detector's x/y estimates are most reliable.
func (h *HandLandmarks) TipDistance(a, b int) float64 {
	dx := h.Points[a].X - h.Points[b].X
	dy := h.Points[a].Y - h.Points[b].Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Centroid returns the mean position of all 21 landmarks. Its x component is
// the swipe reference recorded when the scroll gesture starts.
func (h *HandLandmarks) Centroid() Point3D {
	var c Point3D
	for i := 0; i < NumLandmarks; i++ {
		c.X += h.Points[i].X
		c.Y += h.Points[i].Y
		c.Z += h.Points[i].Z
	}
	c.X /= NumLandmarks
	c.Y /= NumLandmarks
	c.Z /= NumLandmarks
	return c
}
