package gui

import (
	"testing"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cube-stack/editor"
	"cube-stack/grid"
	"cube-stack/palette"
)

// headless runs fn inside one imgui frame without a window or GL context.
func headless(t *testing.T, fn func()) imgui.DrawData {
	t.Helper()
	ctx := imgui.CreateContext(nil)
	t.Cleanup(ctx.Destroy)

	io := imgui.CurrentIO()
	io.SetIniFilename("")
	io.SetDisplaySize(imgui.Vec2{X: 800, Y: 600})
	io.SetDeltaTime(1.0 / 60)
	io.Fonts().TextureDataAlpha8()

	imgui.NewFrame()
	fn()
	imgui.Render()
	return imgui.RenderedDrawData()
}

func TestPanelDrawsWithoutInput(t *testing.T) {
	g, err := grid.New(4)
	require.NoError(t, err)
	ed := editor.New(g, editor.Options{})
	ed.IncrementCell(0, 0)
	pal := palette.Default()
	p := NewPanel()

	data := headless(t, func() { p.Draw(ed, &pal, 60) })

	assert.NotEmpty(t, data.CommandLists())
	assert.True(t, p.ShowDebug)
	assert.False(t, ed.QuitRequested())
	assert.Equal(t, 0, ed.ActiveColour())
	assert.Equal(t, palette.Default(), pal, "palette untouched without input")
}

func TestHiddenPanelSubmitsNothing(t *testing.T) {
	g, err := grid.New(2)
	require.NoError(t, err)
	ed := editor.New(g, editor.Options{})
	pal := palette.Default()
	p := &Panel{}

	data := headless(t, func() { p.Draw(ed, &pal, 0) })

	var vertices int
	for _, list := range data.CommandLists() {
		_, size := list.VertexBuffer()
		vertices += size
	}
	assert.Zero(t, vertices)
}
