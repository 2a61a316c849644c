package glbackend

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/visuals/engine/core"
)

// TriangleVertices is the fixed triangle, three XYZ positions in clip space.
var TriangleVertices = [9]float32{
	//  X,    Y,   Z
	-0.5, -0.5, 0.0,
	0.5, -0.5, 0.0,
	0.0, 0.5, 0.0,
}

type RendererGL struct {
	win     core.Window
	program uint32
	vao     uint32
	vbo     uint32
}

// NewRendererGL compiles the given shader sources and uploads the triangle.
// Shader compile or link failures are logged, not returned: the renderer keeps
// running with whatever program GL produced.
func NewRendererGL(win core.Window, _ core.Config, vertSrc, fragSrc string) (*RendererGL, error) {
	r := &RendererGL{win: win}

	var err error
	r.program, err = makeProgram(vertSrc, fragSrc)
	if err != nil {
		log.Printf("shader: %v", err)
	}

	verts := TriangleVertices
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(&verts[0]), gl.STATIC_DRAW)

	// layout(location = 0) in vec3 aPos;
	const stride = 3 * 4 // bytes
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(0)))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return nil, fmt.Errorf("upload triangle: gl error 0x%x", code)
	}
	return r, nil
}

func (r *RendererGL) Shutdown() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (r *RendererGL) DrawTriangle() {
	gl.UseProgram(r.program)
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// --- Shader utilities ---

func makeShader(src string, shaderType uint32) (uint32, error) {
	if !strings.HasSuffix(src, "\x00") {
		src += "\x00"
	}
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen)+1)
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		return sh, fmt.Errorf("%s compile error: %s", shaderKind(shaderType), strings.TrimRight(log, "\x00\n"))
	}
	return sh, nil
}

// makeProgram always returns a program object. A non-nil error means the
// program did not compile or link cleanly and will draw nothing useful.
func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, vsErr := makeShader(vsSrc, gl.VERTEX_SHADER)
	fs, fsErr := makeShader(fsSrc, gl.FRAGMENT_SHADER)

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var linkErr error
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen)+1)
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		linkErr = fmt.Errorf("program link error: %s", strings.TrimRight(log, "\x00\n"))
	}
	return prog, errors.Join(vsErr, fsErr, linkErr)
}

func shaderKind(t uint32) string {
	switch t {
	case gl.VERTEX_SHADER:
		return "vertex shader"
	case gl.FRAGMENT_SHADER:
		return "fragment shader"
	default:
		return "shader"
	}
}
