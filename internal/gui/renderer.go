package gui

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/inkyblackness/imgui-go/v4"

	"cube-stack/internal/opengl"
)

// drawRenderer uploads imgui draw lists each frame and renders them with
// alpha blending and scissor clipping over the scene.
type drawRenderer struct {
	program     uint32
	texLoc      int32
	projLoc     int32
	fontTexture uint32

	vao uint32
	vbo uint32
	ebo uint32
}

const guiVertSrc = `
#version 410 core
layout(location = 0) in vec2 inPosition;
layout(location = 1) in vec2 inUV;
layout(location = 2) in vec4 inColor;

uniform mat4 projection;

out vec2 fragUV;
out vec4 fragColor;

void main() {
    fragUV = inUV;
    fragColor = inColor;
    gl_Position = projection * vec4(inPosition, 0.0, 1.0);
}
` + "\x00"

const guiFragSrc = `
#version 410 core
in vec2 fragUV;
in vec4 fragColor;

uniform sampler2D tex;

out vec4 outColor;

void main() {
    outColor = vec4(fragColor.rgb, fragColor.a * texture(tex, fragUV).r);
}
` + "\x00"

func newDrawRenderer(io imgui.IO) (*drawRenderer, error) {
	prog, err := opengl.NewProgram(guiVertSrc, guiFragSrc)
	if err != nil {
		return nil, fmt.Errorf("gui shader: %w", err)
	}
	r := &drawRenderer{program: prog}
	r.texLoc = gl.GetUniformLocation(prog, gl.Str("tex\x00"))
	r.projLoc = gl.GetUniformLocation(prog, gl.Str("projection\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.GenBuffers(1, &r.ebo)

	vertexSize, posOffset, uvOffset, colOffset := imgui.VertexBufferLayout()
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, int32(vertexSize), gl.PtrOffset(posOffset))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, int32(vertexSize), gl.PtrOffset(uvOffset))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.UNSIGNED_BYTE, true, int32(vertexSize), gl.PtrOffset(colOffset))
	gl.BindVertexArray(0)

	r.uploadFonts(io.Fonts())
	return r, nil
}

func (r *drawRenderer) uploadFonts(fonts imgui.FontAtlas) {
	image := fonts.TextureDataAlpha8()

	gl.GenTextures(1, &r.fontTexture)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTexture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(image.Width), int32(image.Height),
		0, gl.RED, gl.UNSIGNED_BYTE, image.Pixels)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	fonts.SetTextureID(imgui.TextureID(r.fontTexture))
}

// render draws data over whatever is in the framebuffer. displaySize is in
// window coordinates and fbScale converts it to framebuffer pixels.
func (r *drawRenderer) render(displaySize, fbScale imgui.Vec2, data imgui.DrawData) {
	fbWidth := displaySize.X * fbScale.X
	fbHeight := displaySize.Y * fbScale.Y
	if fbWidth <= 0 || fbHeight <= 0 {
		return
	}
	data.ScaleClipRects(fbScale)

	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)

	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	projection := [16]float32{
		2 / displaySize.X, 0, 0, 0,
		0, -2 / displaySize.Y, 0, 0,
		0, 0, -1, 0,
		-1, 1, 0, 1,
	}
	gl.UseProgram(r.program)
	gl.Uniform1i(r.texLoc, 0)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &projection[0])
	gl.ActiveTexture(gl.TEXTURE0)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	indexSize := imgui.IndexBufferLayout()
	indexType := uint32(gl.UNSIGNED_SHORT)
	if indexSize == 4 {
		indexType = gl.UNSIGNED_INT
	}

	for _, list := range data.CommandLists() {
		vertexBuffer, vertexBufferSize := list.VertexBuffer()
		gl.BufferData(gl.ARRAY_BUFFER, vertexBufferSize, vertexBuffer, gl.STREAM_DRAW)
		indexBuffer, indexBufferSize := list.IndexBuffer()
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, indexBufferSize, indexBuffer, gl.STREAM_DRAW)

		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
				continue
			}
			gl.BindTexture(gl.TEXTURE_2D, uint32(cmd.TextureID()))
			clip := cmd.ClipRect()
			gl.Scissor(int32(clip.X), int32(fbHeight)-int32(clip.W), int32(clip.Z-clip.X), int32(clip.W-clip.Y))
			gl.DrawElementsBaseVertex(gl.TRIANGLES, int32(cmd.ElementCount()), indexType,
				gl.PtrOffset(cmd.IndexOffset()*indexSize), int32(cmd.VertexOffset()))
		}
	}

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)
	gl.Disable(gl.SCISSOR_TEST)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

func (r *drawRenderer) destroy() {
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteBuffers(1, &r.ebo)
	gl.DeleteTextures(1, &r.fontTexture)
	gl.DeleteProgram(r.program)
}
