package core

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"cube-stack/editor"
)

func init() {
	runtime.LockOSThread()
}

// Listener receives window events, already translated to editor values.
// Methods are called from PollEvents on the main thread.
type Listener interface {
	Key(key editor.Key, action editor.Action)
	MouseButton(button editor.MouseButton, action editor.Action)
	CursorPos(x, y float64)
	Scroll(xoff, yoff float64)
	Resize(width, height int)
}

// Window is a GLFW window with a current OpenGL context. Width and Height
// track the framebuffer size reported by resize events.
type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	Title  string
}

// WindowConfig holds the settings NewWindow opens a window with.
type WindowConfig struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
	VSync     bool
}

// DefaultWindowConfig returns a resizable 1024x768 window with vsync.
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:     1024,
		Height:    768,
		Title:     "Assignment 1",
		Resizable: true,
		VSync:     true,
	}
}

// NewWindow opens a window with a current OpenGL 4.1 core context.
func NewWindow(config WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, boolToInt(config.Resizable))
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)

	handle, err := glfw.CreateWindow(config.Width, config.Height, config.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	handle.MakeContextCurrent()
	glfw.SwapInterval(boolToInt(config.VSync))

	window := &Window{
		Handle: handle,
		Width:  config.Width,
		Height: config.Height,
		Title:  config.Title,
	}
	return window, nil
}

// SetListener routes GLFW input and resize callbacks to l, replacing any
// previously installed ones.
func (w *Window) SetListener(l Listener) {
	w.Handle.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		l.Key(TranslateKey(key), TranslateAction(action))
	})
	w.Handle.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		l.MouseButton(editor.MouseButton(button), TranslateAction(action))
	})
	w.Handle.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		l.CursorPos(x, y)
	})
	w.Handle.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		l.Scroll(xoff, yoff)
	})
	w.Handle.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.Width, w.Height = width, height
		l.Resize(width, height)
	})
}

// ShouldClose reports whether the user or the program asked to close.
func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

// SetShouldClose sets the close flag checked by ShouldClose.
func (w *Window) SetShouldClose(v bool) {
	w.Handle.SetShouldClose(v)
}

// PollEvents processes pending events, invoking the installed Listener.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.Handle.SwapBuffers()
}

// GetFramebufferSize returns the framebuffer size in pixels.
func (w *Window) GetFramebufferSize() (int, int) {
	return w.Handle.GetFramebufferSize()
}

// GetSize returns the window size in screen coordinates.
func (w *Window) GetSize() (int, int) {
	return w.Handle.GetSize()
}

// Destroy closes the window and terminates GLFW.
func (w *Window) Destroy() {
	w.Handle.Destroy()
	glfw.Terminate()
}

// Time returns seconds since GLFW was initialised.
func Time() float64 {
	return glfw.GetTime()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
