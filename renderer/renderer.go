package renderer

import (
	"fmt"
	"log/slog"

	"cube-stack/core"
	"cube-stack/editor"
	"cube-stack/grid"
	"cube-stack/internal/gui"
	"cube-stack/internal/opengl"
	"cube-stack/palette"
	"cube-stack/scene"
)

// RenderEngine drives the OpenGL backend and the GUI overlay for one window.
// Each frame: BeginFrame, Render, Present.
type RenderEngine struct {
	gl     *opengl.Renderer
	gui    *gui.Context
	window *core.Window

	View  *scene.View
	Panel *gui.Panel

	frame scene.Frame
}

// NewRenderEngine creates the renderer for a dim x dim board viewed with the
// given vertical field of view in degrees. window's context must be current.
func NewRenderEngine(window *core.Window, dim int, fov float32) (*RenderEngine, error) {
	glRenderer, err := opengl.NewRenderer(dim)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenGL renderer: %w", err)
	}

	ui, err := gui.NewContext(window)
	if err != nil {
		glRenderer.Destroy()
		return nil, fmt.Errorf("failed to create GUI: %w", err)
	}

	fw, fh := window.GetFramebufferSize()
	glRenderer.SetViewport(fw, fh)

	slog.Debug("render engine initialized", "dim", dim, "fov", fov, "framebuffer", fmt.Sprintf("%dx%d", fw, fh))
	return &RenderEngine{
		gl:     glRenderer,
		gui:    ui,
		window: window,
		View:   scene.NewView(dim, fov, window.Width, window.Height),
		Panel:  gui.NewPanel(),
	}, nil
}

// BeginFrame starts the GUI frame and submits the panel, which may act on ed
// and pal before the scene is drawn.
func (re *RenderEngine) BeginFrame(ed *editor.Editor, pal *palette.Palette) {
	re.gui.NewFrame()
	re.Panel.Draw(ed, pal, re.gui.Framerate())
}

// Render draws the board for the current editor state.
func (re *RenderEngine) Render(ed *editor.Editor, pal *palette.Palette) {
	re.frame.Build(ed, pal, re.View)
	re.gl.Draw(&re.frame)
}

// Present draws the GUI on top of the scene and swaps buffers.
func (re *RenderEngine) Present() {
	re.gui.Render()
	re.window.SwapBuffers()
}

// Resize updates the viewport and aspect ratio to a new framebuffer size.
func (re *RenderEngine) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	re.gl.SetViewport(width, height)
	re.View.Resize(width, height)
}

// WantsMouse reports whether the GUI is consuming mouse input.
func (re *RenderEngine) WantsMouse() bool {
	return re.gui.WantsMouse()
}

// MouseButton forwards a button event to the GUI.
func (re *RenderEngine) MouseButton(button int, pressed bool) {
	re.gui.MouseButton(button, pressed)
}

// Scroll forwards a wheel event to the GUI.
func (re *RenderEngine) Scroll(xoff, yoff float64) {
	re.gui.Scroll(xoff, yoff)
}

// PickCell returns the board cell under window position (x, y) as drawn in
// the last frame.
func (re *RenderEngine) PickCell(g *grid.Grid, x, y float64) (int, int, bool) {
	w, h := re.window.GetSize()
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}
	ray := re.View.ScreenToRay(float32(x), float32(y), float32(w), float32(h))
	return scene.PickCell(ray, g, re.frame.World)
}

// DrawStats returns the number of cubes drawn in the last frame.
func (re *RenderEngine) DrawStats() (cubes int) {
	return len(re.frame.Cubes)
}

func (re *RenderEngine) Destroy() {
	re.gui.Destroy()
	re.gl.Destroy()
}
