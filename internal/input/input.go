// Package input injects OS-level mouse and keyboard events via robotgo.
package input

import (
	"github.com/go-vgo/robotgo"
)

// RobotInjector implements control.Injector using robotgo. All methods act
// on the OS input layer directly.
type RobotInjector struct{}

// NewRobotInjector creates a new RobotInjector instance.
func NewRobotInjector() *RobotInjector {
	return &RobotInjector{}
}

// MoveMouse repositions the cursor to absolute screen coordinates.
func (i *RobotInjector) MoveMouse(x, y int) error {
	robotgo.Move(x, y)
	return nil
}

// Click performs a single left button press and release.
func (i *RobotInjector) Click() error {
	robotgo.Click("left")
	return nil
}

// Scroll scrolls vertically by the given number of units; negative is down.
func (i *RobotInjector) Scroll(amount int) error {
	if amount < 0 {
		robotgo.ScrollDir(-amount, "down")
	} else {
		robotgo.ScrollDir(amount, "up")
	}
	return nil
}

// BrowserBack sends Alt+Left Arrow.
func (i *RobotInjector) BrowserBack() error {
	return robotgo.KeyTap("left", "alt")
}

// ScreenSize returns the primary display size in pixels. Queried once at
// startup; the geometry is assumed constant for the process lifetime.
func ScreenSize() (width, height int) {
	return robotgo.GetScreenSize()
}
