package gui

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"

	"cube-stack/core"
)

// platform feeds window state into imgui: display size, frame time, mouse and
// keyboard. Mouse and keys are polled once per frame; wheel deltas and
// characters arrive through callbacks.
type platform struct {
	imguiIO imgui.IO
	window  *core.Window

	time             float64
	mouseJustPressed [3]bool
}

// keys lists the GLFW keys imgui needs for navigation and text editing.
var keys = map[int]glfw.Key{
	imgui.KeyTab:        glfw.KeyTab,
	imgui.KeyLeftArrow:  glfw.KeyLeft,
	imgui.KeyRightArrow: glfw.KeyRight,
	imgui.KeyUpArrow:    glfw.KeyUp,
	imgui.KeyDownArrow:  glfw.KeyDown,
	imgui.KeyPageUp:     glfw.KeyPageUp,
	imgui.KeyPageDown:   glfw.KeyPageDown,
	imgui.KeyHome:       glfw.KeyHome,
	imgui.KeyEnd:        glfw.KeyEnd,
	imgui.KeyInsert:     glfw.KeyInsert,
	imgui.KeyDelete:     glfw.KeyDelete,
	imgui.KeyBackspace:  glfw.KeyBackspace,
	imgui.KeySpace:      glfw.KeySpace,
	imgui.KeyEnter:      glfw.KeyEnter,
	imgui.KeyEscape:     glfw.KeyEscape,
	imgui.KeyA:          glfw.KeyA,
	imgui.KeyC:          glfw.KeyC,
	imgui.KeyV:          glfw.KeyV,
	imgui.KeyX:          glfw.KeyX,
	imgui.KeyY:          glfw.KeyY,
	imgui.KeyZ:          glfw.KeyZ,
}

var modifiers = []glfw.Key{
	glfw.KeyLeftControl, glfw.KeyRightControl,
	glfw.KeyLeftShift, glfw.KeyRightShift,
	glfw.KeyLeftAlt, glfw.KeyRightAlt,
	glfw.KeyLeftSuper, glfw.KeyRightSuper,
}

func newPlatform(io imgui.IO, window *core.Window) *platform {
	p := &platform{imguiIO: io, window: window}

	for imguiKey, glfwKey := range keys {
		io.KeyMap(imguiKey, int(glfwKey))
	}
	io.KeyCtrl(int(glfw.KeyLeftControl), int(glfw.KeyRightControl))
	io.KeyShift(int(glfw.KeyLeftShift), int(glfw.KeyRightShift))
	io.KeyAlt(int(glfw.KeyLeftAlt), int(glfw.KeyRightAlt))
	io.KeySuper(int(glfw.KeyLeftSuper), int(glfw.KeyRightSuper))

	window.Handle.SetCharCallback(func(_ *glfw.Window, char rune) {
		p.imguiIO.AddInputCharacters(string(char))
	})
	return p
}

// newFrame updates display size, delta time, mouse and keyboard state.
func (p *platform) newFrame() {
	w, h := p.window.GetSize()
	p.imguiIO.SetDisplaySize(imgui.Vec2{X: float32(w), Y: float32(h)})

	now := core.Time()
	if p.time > 0 {
		p.imguiIO.SetDeltaTime(float32(now - p.time))
	}
	p.time = now

	handle := p.window.Handle
	if handle.GetAttrib(glfw.Focused) != 0 {
		x, y := handle.GetCursorPos()
		p.imguiIO.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
	} else {
		p.imguiIO.SetMousePosition(imgui.Vec2{X: -math.MaxFloat32, Y: -math.MaxFloat32})
	}

	for i := range p.mouseJustPressed {
		down := p.mouseJustPressed[i] || handle.GetMouseButton(glfw.MouseButton(i)) == glfw.Press
		p.imguiIO.SetMouseButtonDown(i, down)
		p.mouseJustPressed[i] = false
	}

	for _, k := range keys {
		p.setKey(k)
	}
	for _, k := range modifiers {
		p.setKey(k)
	}
}

func (p *platform) setKey(k glfw.Key) {
	if p.window.Handle.GetKey(k) == glfw.Release {
		p.imguiIO.KeyRelease(int(k))
	} else {
		p.imguiIO.KeyPress(int(k))
	}
}

// mouseButton records presses shorter than a frame so imgui still sees them.
func (p *platform) mouseButton(button int, pressed bool) {
	if pressed && button >= 0 && button < len(p.mouseJustPressed) {
		p.mouseJustPressed[button] = true
	}
}

func (p *platform) scroll(xoff, yoff float64) {
	p.imguiIO.AddMouseWheelDelta(float32(xoff), float32(yoff))
}

// framebufferScale is the ratio of framebuffer pixels to window coordinates.
func (p *platform) framebufferScale() imgui.Vec2 {
	w, h := p.window.GetSize()
	fw, fh := p.window.GetFramebufferSize()
	if w <= 0 || h <= 0 {
		return imgui.Vec2{X: 1, Y: 1}
	}
	return imgui.Vec2{X: float32(fw) / float32(w), Y: float32(fh) / float32(h)}
}
