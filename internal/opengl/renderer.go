package opengl

import (
	"fmt"
	"log/slog"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"cube-stack/palette"
	"cube-stack/scene"
)

// ClearColour is the background colour of every frame.
var ClearColour = palette.RGB{R: 0.3, G: 0.5, B: 0.7}

var (
	gridColour = palette.RGB{R: 1, G: 1, B: 1}
	edgeColour = palette.RGB{}
)

// GPUMesh holds the OpenGL buffer objects for an uploaded mesh.
type GPUMesh struct {
	VAO         uint32
	VBO         uint32
	EBO         uint32
	IndexCount  int32
	InstanceVBO uint32 // per-instance data VBO (0 = not yet allocated)
	InstanceCap int    // capacity of InstanceVBO in instances
}

// Renderer draws a scene.Frame: the floor grid, the stacked cubes with their
// edges, and the cursor column on top of everything.
type Renderer struct {
	program uint32

	projLoc      int32
	viewLoc      int32
	modelLoc     int32
	colourLoc    int32
	instancedLoc int32
	edgesLoc     int32

	grid *scene.Mesh
	cube *scene.Mesh

	gpuMeshes map[*scene.Mesh]*GPUMesh
}

// ── Shaders ───────────────────────────────────────────────────────────────────

// vertSrc transforms either by the uniform model matrix or, when instanced,
// by the per-instance matrix streamed at locations 1-4.
const vertSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;
layout(location = 1) in mat4 inModel;
layout(location = 5) in vec3 inColour;

uniform mat4 P;
uniform mat4 V;
uniform mat4 M;
uniform vec3 colour;
uniform bool instanced;
uniform bool edges;

out vec3 fragColour;

void main() {
    mat4 model = instanced ? inModel : M;
    fragColour = (instanced && !edges) ? inColour : colour;
    gl_Position = P * V * model * vec4(inPosition, 1.0);
}
` + "\x00"

const fragSrc = `
#version 410 core
in vec3 fragColour;
out vec4 outColor;

void main() {
    outColor = vec4(fragColour, 1.0);
}
` + "\x00"

// ── Construction ──────────────────────────────────────────────────────────────

// NewRenderer initialises the GL function pointers for the current context,
// builds the shader program and uploads the floor grid for a dim x dim board.
func NewRenderer(dim int) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	slog.Info("opengl context",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	prog, err := NewProgram(vertSrc, fragSrc)
	if err != nil {
		return nil, fmt.Errorf("cube shader: %w", err)
	}

	r := &Renderer{
		program:   prog,
		grid:      scene.GridLines(dim),
		cube:      scene.UnitCube(),
		gpuMeshes: make(map[*scene.Mesh]*GPUMesh),
	}
	r.projLoc = gl.GetUniformLocation(prog, gl.Str("P\x00"))
	r.viewLoc = gl.GetUniformLocation(prog, gl.Str("V\x00"))
	r.modelLoc = gl.GetUniformLocation(prog, gl.Str("M\x00"))
	r.colourLoc = gl.GetUniformLocation(prog, gl.Str("colour\x00"))
	r.instancedLoc = gl.GetUniformLocation(prog, gl.Str("instanced\x00"))
	r.edgesLoc = gl.GetUniformLocation(prog, gl.Str("edges\x00"))

	r.ensureUploaded(r.grid)
	r.ensureUploaded(r.cube)
	return r, nil
}

// SetViewport sets the GL viewport to the framebuffer size.
func (r *Renderer) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// ── Drawing ───────────────────────────────────────────────────────────────────

// Draw clears the framebuffer and renders f.
func (r *Renderer) Draw(f *scene.Frame) {
	gl.ClearColor(ClearColour.R, ClearColour.G, ClearColour.B, 1)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &f.Projection[0])
	gl.UniformMatrix4fv(r.viewLoc, 1, false, &f.View[0])

	r.drawMesh(r.grid, f.World, gridColour)

	if len(f.Cubes) > 0 {
		// Faces are pushed back slightly so the edge pass is not z-fought away.
		gl.Enable(gl.POLYGON_OFFSET_FILL)
		gl.PolygonOffset(1, 1)
		r.drawCubes(f.Cubes, false)
		gl.Disable(gl.POLYGON_OFFSET_FILL)

		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		r.drawCubes(f.Cubes, true)
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	r.drawMesh(r.cube, f.Marker, edgeColour)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	gl.Enable(gl.DEPTH_TEST)

	gl.UseProgram(0)
}

// drawMesh draws mesh once with a uniform model matrix and colour.
// r.program must be in use.
func (r *Renderer) drawMesh(mesh *scene.Mesh, model mgl32.Mat4, c palette.RGB) {
	gpu := r.ensureUploaded(mesh)
	if gpu == nil {
		return
	}
	gl.Uniform1i(r.instancedLoc, 0)
	gl.Uniform1i(r.edgesLoc, 0)
	gl.UniformMatrix4fv(r.modelLoc, 1, false, &model[0])
	gl.Uniform3f(r.colourLoc, c.R, c.G, c.B)

	gl.BindVertexArray(gpu.VAO)
	gl.DrawElements(primitive(mesh.DrawMode), gpu.IndexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// drawCubes renders every instance in a single draw call. With edges set the
// instance colours are replaced by the edge colour.
func (r *Renderer) drawCubes(cubes []scene.Instance, edges bool) {
	gpu := r.ensureUploaded(r.cube)
	if gpu == nil {
		return
	}
	if !edges {
		r.uploadInstanceVBO(gpu, cubes)
	}

	gl.Uniform1i(r.instancedLoc, 1)
	gl.Uniform1i(r.edgesLoc, boolToInt(edges))
	gl.Uniform3f(r.colourLoc, edgeColour.R, edgeColour.G, edgeColour.B)

	gl.BindVertexArray(gpu.VAO)
	gl.DrawElementsInstanced(gl.TRIANGLES, gpu.IndexCount, gl.UNSIGNED_INT, nil, int32(len(cubes)))
	gl.BindVertexArray(0)

	gl.Uniform1i(r.instancedLoc, 0)
	gl.Uniform1i(r.edgesLoc, 0)
}

func primitive(mode scene.DrawMode) uint32 {
	if mode == scene.DrawLines {
		return gl.LINES
	}
	return gl.TRIANGLES
}

// ── Buffers ───────────────────────────────────────────────────────────────────

// uploadInstanceVBO streams cubes into the per-mesh instance buffer, growing
// it when needed. scene.Instance is laid out as a column-major mat4 followed
// by an RGB triple, so the slice is uploaded as is.
func (r *Renderer) uploadInstanceVBO(gpu *GPUMesh, cubes []scene.Instance) {
	stride := int32(unsafe.Sizeof(scene.Instance{}))

	if gpu.InstanceVBO == 0 {
		gl.GenBuffers(1, &gpu.InstanceVBO)
		gl.BindVertexArray(gpu.VAO)
		gl.BindBuffer(gl.ARRAY_BUFFER, gpu.InstanceVBO)

		var inst scene.Instance
		modelOff := int(unsafe.Offsetof(inst.Model))
		colourOff := int(unsafe.Offsetof(inst.Colour))

		// Model columns at locations 1-4
		for i := uint32(0); i < 4; i++ {
			gl.EnableVertexAttribArray(1 + i)
			gl.VertexAttribPointer(1+i, 4, gl.FLOAT, false, stride, gl.PtrOffset(modelOff+int(i)*16))
			gl.VertexAttribDivisor(1+i, 1)
		}
		gl.EnableVertexAttribArray(5)
		gl.VertexAttribPointer(5, 3, gl.FLOAT, false, stride, gl.PtrOffset(colourOff))
		gl.VertexAttribDivisor(5, 1)
		gl.BindVertexArray(0)
	}

	byteSize := len(cubes) * int(stride)
	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.InstanceVBO)
	if len(cubes) > gpu.InstanceCap {
		gl.BufferData(gl.ARRAY_BUFFER, byteSize, gl.Ptr(cubes), gl.DYNAMIC_DRAW)
		gpu.InstanceCap = len(cubes)
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, byteSize, gl.Ptr(cubes))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// ensureUploaded uploads vertex/index data if not already done.
func (r *Renderer) ensureUploaded(mesh *scene.Mesh) *GPUMesh {
	if gpu, ok := r.gpuMeshes[mesh]; ok {
		return gpu
	}
	if len(mesh.Vertices) == 0 || len(mesh.Indices) == 0 {
		return nil
	}

	stride := int32(unsafe.Sizeof(scene.Vertex{}))

	gpu := &GPUMesh{IndexCount: int32(len(mesh.Indices))}

	gl.GenVertexArrays(1, &gpu.VAO)
	gl.GenBuffers(1, &gpu.VBO)
	gl.BindVertexArray(gpu.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.VBO)
	gl.BufferData(gl.ARRAY_BUFFER,
		len(mesh.Vertices)*int(stride),
		gl.Ptr(mesh.Vertices),
		gl.STATIC_DRAW)

	var v scene.Vertex
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(v.Position))))

	gl.GenBuffers(1, &gpu.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER,
		len(mesh.Indices)*4,
		gl.Ptr(mesh.Indices),
		gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	r.gpuMeshes[mesh] = gpu
	return gpu
}

// ReleaseMesh frees GPU buffers for the given mesh.
func (r *Renderer) ReleaseMesh(mesh *scene.Mesh) {
	if gpu, ok := r.gpuMeshes[mesh]; ok {
		gl.DeleteVertexArrays(1, &gpu.VAO)
		gl.DeleteBuffers(1, &gpu.VBO)
		gl.DeleteBuffers(1, &gpu.EBO)
		if gpu.InstanceVBO != 0 {
			gl.DeleteBuffers(1, &gpu.InstanceVBO)
		}
		delete(r.gpuMeshes, mesh)
	}
}

// Destroy releases all GPU resources.
func (r *Renderer) Destroy() {
	for mesh := range r.gpuMeshes {
		r.ReleaseMesh(mesh)
	}
	gl.DeleteProgram(r.program)
}

// ── Shader helpers ────────────────────────────────────────────────────────────

// NewProgram compiles and links a vertex/fragment shader pair. Sources must be
// NUL terminated.
func NewProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vert)
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)
	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("link failed: %v", log)
	}
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile failed: %v", log)
	}
	return shader, nil
}

func boolToInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
