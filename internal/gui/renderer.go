package gui

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

var vertexShaderSource = `
	#version 410
	layout(location = 0) in vec3 vp;
	uniform mat4 view;
	uniform mat4 projection;
	uniform int totalPoints;
	out float age;
	void main() {
		gl_Position = projection * view * vec4(vp, 1.0);
		age = totalPoints > 1 ? float(gl_VertexID) / float(totalPoints - 1) : 1.0;
	}
` + "\x00"

var fragmentShaderSource = `
	#version 410
	in float age;
	uniform float alpha;
	out vec4 frag_colour;
	void main() {
		vec3 old = vec3(0.15, 0.25, 0.60);
		vec3 fresh = vec3(0.95, 0.85, 0.30);
		frag_colour = vec4(mix(old, fresh, age), alpha);
	}
` + "\x00"

// Renderer owns the line-strip pipeline: one shader program and one
// dynamically re-uploaded vertex buffer holding the trajectory.
type Renderer struct {
	program uint32
	vao     uint32
	vbo     uint32

	viewUniform  int32
	projUniform  int32
	alphaUniform int32
	totalUniform int32

	scratch []float32
}

// NewRenderer compiles the shaders and allocates the buffers. Requires a
// current GL context.
func NewRenderer() (*Renderer, error) {
	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, err
	}

	r := &Renderer{program: program}
	r.viewUniform = gl.GetUniformLocation(program, gl.Str("view\x00"))
	r.projUniform = gl.GetUniformLocation(program, gl.Str("projection\x00"))
	r.alphaUniform = gl.GetUniformLocation(program, gl.Str("alpha\x00"))
	r.totalUniform = gl.GetUniformLocation(program, gl.Str("totalPoints\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 0, gl.PtrOffset(0))

	gl.BindVertexArray(0)

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.MULTISAMPLE)
	gl.Enable(gl.LINE_SMOOTH)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.LineWidth(1.5)
	gl.ClearColor(0.05, 0.05, 0.1, 1.0)

	return r, nil
}

// Draw uploads the trajectory and issues the line-strip draw call. The
// trajectory is read exactly once, after the solver has settled for this
// frame.
func (r *Renderer) Draw(trajectory []mgl64.Vec3, view, projection mgl32.Mat4, alpha float32) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	if len(trajectory) == 0 {
		return
	}

	if cap(r.scratch) < len(trajectory)*3 {
		r.scratch = make([]float32, 0, len(trajectory)*3)
	}
	r.scratch = r.scratch[:0]
	for _, p := range trajectory {
		r.scratch = append(r.scratch, float32(p[0]), float32(p[1]), float32(p[2]))
	}

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.viewUniform, 1, false, &view[0])
	gl.UniformMatrix4fv(r.projUniform, 1, false, &projection[0])
	gl.Uniform1f(r.alphaUniform, alpha)
	gl.Uniform1i(r.totalUniform, int32(len(trajectory)))

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.scratch)*4, gl.Ptr(r.scratch), gl.DYNAMIC_DRAW)

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.LINE_STRIP, 0, int32(len(trajectory)))
	gl.BindVertexArray(0)
}

func resizeViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Close releases GL objects.
func (r *Renderer) Close() {
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteProgram(r.program)
}

func newProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))

		return 0, fmt.Errorf("failed to link program: %v", infoLog)
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))

		return 0, fmt.Errorf("failed to compile shader: %v", infoLog)
	}

	return shader, nil
}
