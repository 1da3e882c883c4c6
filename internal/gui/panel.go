package gui

import (
	"fmt"

	"github.com/inkyblackness/imgui-go/v4"

	"cube-stack/editor"
	"cube-stack/palette"
)

// buttonsPerRow is how many colour radio buttons share a line.
const buttonsPerRow = 3

// Panel is the "Debug Window": quit button, colour picker and frame rate.
type Panel struct {
	// ShowDebug is cleared when the user closes the window.
	ShowDebug bool
	// ShowDemo opens imgui's built-in demo window.
	ShowDemo bool

	// Alpha is the window background opacity.
	Alpha float32
}

// NewPanel returns a visible panel.
func NewPanel() *Panel {
	return &Panel{ShowDebug: true, Alpha: 0.5}
}

// Draw submits the panel widgets for this frame. Selecting a colour makes it
// active in ed; the sliders edit the active palette entry in pal.
func (p *Panel) Draw(ed *editor.Editor, pal *palette.Palette, framerate float32) {
	if p.ShowDebug {
		p.drawDebug(ed, pal, framerate)
	}
	if p.ShowDemo {
		imgui.ShowDemoWindow(&p.ShowDemo)
	}
}

func (p *Panel) drawDebug(ed *editor.Editor, pal *palette.Palette, framerate float32) {
	imgui.SetNextWindowBgAlpha(p.Alpha)
	defer imgui.End()
	if !imgui.BeginV("Debug Window", &p.ShowDebug, imgui.WindowFlagsAlwaysAutoResize) {
		return
	}

	if imgui.Button("Quit Application") {
		ed.RequestQuit()
	}

	imgui.Text("Colour Options:")
	active := ed.ActiveColour()
	for i, idx := range palette.ButtonOrder {
		if i%buttonsPerRow != 0 {
			imgui.SameLine()
		}
		if imgui.RadioButton(fmt.Sprintf("Color %d", i+1), idx == active) {
			ed.SetActiveColour(idx)
			active = idx
		}
	}

	c := pal.At(active)
	rgb := [3]float32{c.R, c.G, c.B}
	if imgui.ColorEdit3V("##Colour", &rgb, imgui.ColorEditFlagsNoInputs) {
		pal.Set(active, palette.RGB{R: rgb[0], G: rgb[1], B: rgb[2]})
		c = pal.At(active)
	}

	changed := imgui.SliderFloat("R", &c.R, 0, 1)
	changed = imgui.SliderFloat("G", &c.G, 0, 1) || changed
	changed = imgui.SliderFloat("B", &c.B, 0, 1) || changed
	if changed {
		pal.Set(active, c)
	}

	imgui.Text(fmt.Sprintf("Framerate: %.1f FPS", framerate))
}
