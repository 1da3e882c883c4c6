package editor

// Key identifies the keyboard keys the editor reacts to. The window layer
// maps native key codes onto these.
type Key int

const (
	KeyUnknown Key = iota
	KeyQ
	KeyR
	KeyEscape
	KeySpace
	KeyBackspace
	KeyLeftShift
	KeyRightShift
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

var keyNames = [...]string{
	KeyUnknown:    "unknown",
	KeyQ:          "q",
	KeyR:          "r",
	KeyEscape:     "escape",
	KeySpace:      "space",
	KeyBackspace:  "backspace",
	KeyLeftShift:  "left-shift",
	KeyRightShift: "right-shift",
	KeyLeft:       "left",
	KeyRight:      "right",
	KeyUp:         "up",
	KeyDown:       "down",
}

func (k Key) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return keyNames[KeyUnknown]
	}
	return keyNames[k]
}

// Action is the state change carried by a key or mouse button event.
type Action int

const (
	Release Action = iota
	Press
	Repeat
)

func (a Action) String() string {
	switch a {
	case Press:
		return "press"
	case Repeat:
		return "repeat"
	default:
		return "release"
	}
}

// MouseButton identifies a mouse button.
type MouseButton int

// Mouse button constants
const (
	MouseLeft   MouseButton = 0
	MouseRight  MouseButton = 1
	MouseMiddle MouseButton = 2
)

func isShift(k Key) bool { return k == KeyLeftShift || k == KeyRightShift }

// HandleKey applies a key event and reports whether it was consumed.
func (e *Editor) HandleKey(key Key, action Action) bool {
	switch action {
	case Release:
		if isShift(key) {
			e.SetShift(false)
			return true
		}
		return false
	case Press:
		switch {
		case key == KeyQ || key == KeyEscape:
			e.RequestQuit()
			return true
		case key == KeyR:
			e.ResetState()
			return true
		case isShift(key):
			e.SetShift(true)
			return true
		}
	default:
		// Auto-repeat is ignored: one press, one edit.
		return false
	}

	switch key {
	case KeySpace:
		e.IncrementCell(e.cursorX, e.cursorY)
	case KeyBackspace:
		e.DecrementCell(e.cursorX, e.cursorY)
	case KeyLeft:
		e.MoveCursor(-1, 0)
	case KeyRight:
		e.MoveCursor(1, 0)
	case KeyUp:
		e.MoveCursor(0, -1)
	case KeyDown:
		e.MoveCursor(0, 1)
	default:
		return false
	}
	return true
}

// HandleMouseButton applies a mouse button event. A left press outside the
// GUI starts a rotation drag; any other button event ends it.
func (e *Editor) HandleMouseButton(button MouseButton, action Action, overGUI bool) bool {
	e.dragging = false
	if overGUI {
		return false
	}
	if action == Press && button == MouseLeft {
		e.dragging = true
		return true
	}
	return false
}

// HandleCursorPos applies a mouse move. While dragging, horizontal motion
// rotates the view. The last position is tracked even when the GUI has the
// mouse so that a drag never starts with a jump.
func (e *Editor) HandleCursorPos(x, y float64, overGUI bool) bool {
	handled := false
	if e.dragging && !overGUI {
		e.RotateView(float32(x - e.lastX))
		handled = true
	}
	e.lastX = x
	return handled
}

// HandleScroll zooms the view by the vertical scroll offset. The horizontal
// offset is ignored.
func (e *Editor) HandleScroll(xoff, yoff float64) bool {
	e.AdjustZoom(e.opts.ZoomStep * float32(yoff))
	return true
}

// Dragging reports whether a rotation drag is in progress.
func (e *Editor) Dragging() bool { return e.dragging }
