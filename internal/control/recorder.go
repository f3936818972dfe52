package control

// Recorder is a test implementation of the Injector interface that records
// every injected action instead of touching the OS.
type Recorder struct {
	Actions []Action
	err     error
}

// NewRecorder creates a new Recorder instance.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// SetError sets the error every injection call will return.
func (r *Recorder) SetError(err error) {
	r.err = err
}

// Reset clears the recorded actions.
func (r *Recorder) Reset() {
	r.Actions = r.Actions[:0]
}

// ByType returns the recorded actions of one type, in order.
func (r *Recorder) ByType(t ActionType) []Action {
	var out []Action
	for _, a := range r.Actions {
		if a.Type == t {
			out = append(out, a)
		}
	}
	return out
}

func (r *Recorder) MoveMouse(x, y int) error {
	r.Actions = append(r.Actions, Action{Type: ActionMove, X: x, Y: y})
	return r.err
}

func (r *Recorder) Click() error {
	r.Actions = append(r.Actions, Action{Type: ActionClick})
	return r.err
}

func (r *Recorder) Scroll(amount int) error {
	r.Actions = append(r.Actions, Action{Type: ActionScrollTick, Amount: amount})
	return r.err
}

func (r *Recorder) BrowserBack() error {
	r.Actions = append(r.Actions, Action{Type: ActionSwipeBack})
	return r.err
}
