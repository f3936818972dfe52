package app

import (
	"log"
	"time"

	"github.com/ayusman/mudra/internal/gesture"
)

// runPipeline is the main control loop that processes frames from the camera.
// It manages the state transitions between idle and active modes based on
// motion detection.
//
// Pipeline logic:
// 1. Start in idle mode (IdleFPS=5)
// 2. On motion detected, switch to active mode (ActiveFPS=15)
// 3. Run hand detection
// 4. Classify the gesture and dispatch cursor/keyboard actions
// 5. After 2s no motion, switch back to idle mode
func (a *App) runPipeline() {
	// Track whether we're in active mode
	activeMode := false

	// Track the last motion detection time
	lastMotionTime := time.Now()

	// Frame interval based on current FPS
	frameInterval := time.Second / time.Duration(IdleFPS)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	lastMode := gesture.ModeIdle

	for {
		select {
		case <-a.stopCh:
			return
		case <-ticker.C:
			// Skip processing if control is disabled
			if !a.IsEnabled() {
				continue
			}

			// Read a frame from the camera
			frame, err := a.camera.ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			// Step 1: Motion detection
			motionDetected, _ := a.motion.Detect(frame)

			if motionDetected {
				lastMotionTime = time.Now()

				// Switch to active mode if not already
				if !activeMode {
					activeMode = true
					a.camera.SetFPS(ActiveFPS)
					frameInterval = time.Second / time.Duration(ActiveFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to active mode")
				}
			} else if activeMode {
				// Check if we should switch back to idle mode
				if time.Since(lastMotionTime) > time.Duration(IdleTimeoutMs)*time.Millisecond {
					activeMode = false
					a.camera.SetFPS(IdleFPS)
					frameInterval = time.Second / time.Duration(IdleFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to idle mode")
				}
			}

			det := a.Detector()

			// Skip further processing if not in active mode or no detector
			if !activeMode || det == nil {
				frame.Close()
				continue
			}

			// Step 2: Hand detection
			hands, err := det.Detect(frame)
			frame.Close() // Done with the frame

			if err != nil {
				log.Printf("Error detecting hands: %v", err)
				continue
			}

			// Step 3: Classify and dispatch. A frame with no usable hand
			// still goes through so the dispatcher sees the idle
			// transition and re-arms the click and swipe edges.
			mode, _ := a.ProcessFrame(time.Now(), hands)
			if mode != lastMode {
				log.Printf("Gesture mode: %s -> %s", lastMode, mode)
				lastMode = mode
			}
		}
	}
}
