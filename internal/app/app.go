// Package app wires the Mudra capture, detection and control pipeline together.
package app

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/config"
	"github.com/ayusman/mudra/internal/control"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/store"
)

// Pipeline timing constants.
const (
	// IdleFPS is the frame rate when no motion is detected.
	IdleFPS = 5
	// ActiveFPS is the frame rate during active detection.
	ActiveFPS = 15
	// IdleTimeoutMs is the time in milliseconds to wait before switching back to idle mode.
	IdleTimeoutMs = 2000
	// EventHistorySize is the number of action events kept in the store.
	EventHistorySize = 1000
)

// Config holds configuration options for the application.
type Config struct {
	Settings config.Config
	Store    *store.Store
	Injector control.Injector
	ScreenW  int
	ScreenH  int
}

// App is the main application that turns detected hand gestures into
// cursor and keyboard actions.
type App struct {
	config     Config
	camera     capture.Camera
	motion     *capture.MotionDetector
	detector   detector.Detector
	dispatcher *control.Dispatcher
	enabled    bool
	mu         sync.RWMutex
	stopCh     chan struct{}
	onAction   func(control.Action)
}

// New creates a new App instance with the given configuration. The settings
// must already be validated.
func New(cfg Config) *App {
	a := &App{
		config:  cfg,
		camera:  capture.NewCamera(cfg.Settings.CameraID, cfg.Settings.MirrorFrame),
		motion:  capture.NewMotionDetector(cfg.Settings.MotionThreshold),
		enabled: false,
		stopCh:  nil,
	}

	a.dispatcher = control.NewDispatcher(cfg.Settings, cfg.ScreenW, cfg.ScreenH, cfg.Injector)
	a.dispatcher.OnAction(a.handleAction)

	// Try MediaPipe first, fall back to mock detector
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	return a
}

// ProcessFrame runs the core pipeline for one frame's detector output:
// hand selection, finger-state extraction, gesture classification and
// dispatch. It is the only per-frame entry point; the capture loop and the
// tests both drive the core through it.
func (a *App) ProcessFrame(now time.Time, hands []detector.HandLandmarks) (gesture.Mode, []control.Action) {
	hand, ok := detector.SelectHand(hands, a.config.Settings.Handedness)
	if !ok {
		return gesture.ModeIdle, a.dispatcher.Process(now, gesture.ModeIdle, nil)
	}

	fingers := gesture.DetectFingers(hand)
	mode := gesture.Classify(hand, fingers, a.config.Settings.PinchThreshold)

	return mode, a.dispatcher.Process(now, mode, hand)
}

// handleAction records emitted actions and forwards them to the registered
// observer. Cursor moves are not persisted: at active frame rates they
// would dominate the history without telling anyone anything.
func (a *App) handleAction(act control.Action) {
	if a.config.Store != nil && act.Type != control.ActionMove {
		err := a.config.Store.Events().Record(&store.ActionEvent{
			ID:     uuid.NewString(),
			Type:   string(act.Type),
			X:      act.X,
			Y:      act.Y,
			Amount: act.Amount,
		})
		if err != nil {
			log.Printf("record action event: %v", err)
		}
	}

	a.mu.RLock()
	fn := a.onAction
	a.mu.RUnlock()
	if fn != nil {
		fn(act)
	}
}

// OnAction registers a callback for every emitted action (tray display).
func (a *App) OnAction(fn func(control.Action)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onAction = fn
}

// SetEnabled enables or disables gesture control. Re-enabling drops the
// motion baseline so a stale frame cannot trigger a phantom wake-up.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	wasEnabled := a.enabled
	a.enabled = enabled
	a.mu.Unlock()

	if enabled && !wasEnabled {
		a.motion.Reset()
	}
}

// IsEnabled returns whether gesture control is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetDetector sets the hand detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detector
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	return a.camera
}

// MotionDetector returns the motion detector instance.
func (a *App) MotionDetector() *capture.MotionDetector {
	return a.motion
}

// PruneHistory trims the stored action history to EventHistorySize entries.
func (a *App) PruneHistory() error {
	if a.config.Store == nil {
		return nil
	}
	return a.config.Store.Events().Prune(EventHistorySize)
}

// Start begins the capture and control pipeline.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Don't start if already running
	if a.stopCh != nil {
		return nil
	}

	// Open the camera
	if err := a.camera.Open(); err != nil {
		return err
	}

	// Set initial FPS to idle mode
	a.camera.SetFPS(IdleFPS)

	// Create stop channel and start the pipeline
	a.stopCh = make(chan struct{})
	go a.runPipeline()

	log.Println("Control pipeline started")
	return nil
}

// Stop halts the pipeline and releases resources.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Signal the pipeline to stop
	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	// Close the camera
	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	// Close motion detector
	a.motion.Close()

	// Close the hand detector if set
	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Control pipeline stopped")
}
