package main

import (
	"log/slog"

	"cube-stack/editor"
	"cube-stack/renderer"
)

// listener routes window events to the GUI first and then to the editor.
// Mouse input over a GUI window never reaches the editor. A right click on
// the board moves the cursor to the clicked cell.
type listener struct {
	ed *editor.Editor
	re *renderer.RenderEngine

	mouseX, mouseY float64
}

func (l *listener) Key(key editor.Key, action editor.Action) {
	if l.ed.HandleKey(key, action) {
		x, y := l.ed.Cursor()
		slog.Debug("key", "key", key, "action", action, "cursor", [2]int{x, y})
	}
}

func (l *listener) MouseButton(button editor.MouseButton, action editor.Action) {
	l.re.MouseButton(int(button), action == editor.Press)
	overGUI := l.re.WantsMouse()
	l.ed.HandleMouseButton(button, action, overGUI)
	if button == editor.MouseRight && action == editor.Press && !overGUI {
		if x, y, ok := l.re.PickCell(l.ed.Grid(), l.mouseX, l.mouseY); ok {
			l.ed.SetActiveCell(x, y)
			slog.Debug("picked cell", "x", x, "y", y)
		}
	}
}

func (l *listener) CursorPos(x, y float64) {
	l.mouseX, l.mouseY = x, y
	l.ed.HandleCursorPos(x, y, l.re.WantsMouse())
}

func (l *listener) Scroll(xoff, yoff float64) {
	l.re.Scroll(xoff, yoff)
	if !l.re.WantsMouse() {
		l.ed.HandleScroll(xoff, yoff)
	}
}

func (l *listener) Resize(width, height int) {
	l.re.Resize(width, height)
}
