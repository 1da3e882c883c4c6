// Package gui draws the immediate-mode debug overlay with imgui on top of the
// scene.
package gui

import (
	"fmt"

	"github.com/inkyblackness/imgui-go/v4"

	"cube-stack/core"
)

// Context owns the imgui context together with its GLFW input bridge and
// OpenGL draw-data renderer.
type Context struct {
	imgui    *imgui.Context
	io       imgui.IO
	platform *platform
	renderer *drawRenderer
}

// NewContext creates the imgui context for window. The window's GL context
// must be current.
func NewContext(window *core.Window) (*Context, error) {
	ctx := imgui.CreateContext(nil)
	io := imgui.CurrentIO()
	io.SetIniFilename("")

	r, err := newDrawRenderer(io)
	if err != nil {
		ctx.Destroy()
		return nil, fmt.Errorf("gui renderer: %w", err)
	}

	return &Context{
		imgui:    ctx,
		io:       io,
		platform: newPlatform(io, window),
		renderer: r,
	}, nil
}

// NewFrame starts a new imgui frame. Widgets may be submitted until Render.
func (c *Context) NewFrame() {
	c.platform.newFrame()
	imgui.NewFrame()
}

// Render finishes the frame and draws it over the current framebuffer.
func (c *Context) Render() {
	imgui.Render()
	c.renderer.render(c.io.DisplaySize(), c.platform.framebufferScale(), imgui.RenderedDrawData())
}

// WantsMouse reports whether the pointer is over, or interacting with, an
// imgui window. Mouse input must not reach the scene while it does.
func (c *Context) WantsMouse() bool {
	return c.io.WantCaptureMouse()
}

// MouseButton forwards a button event so clicks shorter than a frame register.
func (c *Context) MouseButton(button int, pressed bool) {
	c.platform.mouseButton(button, pressed)
}

// Scroll forwards a wheel event.
func (c *Context) Scroll(xoff, yoff float64) {
	c.platform.scroll(xoff, yoff)
}

// Framerate returns imgui's rolling frames-per-second estimate.
func (c *Context) Framerate() float32 {
	return c.io.Framerate()
}

// Destroy releases the GL resources and the imgui context.
func (c *Context) Destroy() {
	c.renderer.destroy()
	c.imgui.Destroy()
}
