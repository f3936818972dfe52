package control

// Injector defines the interface to the OS input layer. Implementations
// perform the actual cursor, mouse button, scroll wheel and keyboard events.
type Injector interface {
	// MoveMouse repositions the cursor to absolute screen coordinates.
	MoveMouse(x, y int) error

	// Click performs a single left button press and release at the current
	// cursor position.
	Click() error

	// Scroll scrolls by the given number of units; negative is down.
	Scroll(amount int) error

	// BrowserBack sends the keyboard combination for "browser back"
	// (Alt+Left Arrow).
	BrowserBack() error
}
