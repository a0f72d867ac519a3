// Package gui runs the interactive OpenGL visualization: a GLFW window, a
// line-strip renderer fed by the solver's trajectory, and an orbit camera
// driven by mouse and keyboard.
//
// The frame loop is single-threaded and strictly ordered: poll input, then
// advance the solver, then read the trajectory for upload. The solver is
// never mutated while the renderer reads it.
package gui

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/san-kum/lorenzvis/internal/app"
	"github.com/san-kum/lorenzvis/internal/camera"
	"github.com/san-kum/lorenzvis/internal/config"
	"github.com/san-kum/lorenzvis/internal/lorenz"
)

const baseTitle = "Lorenz Attractor"

// App owns the window, the shared state record, and the core components.
type App struct {
	window   *glfw.Window
	state    *app.State
	solver   *lorenz.Solver
	camera   *camera.Orbit
	renderer *Renderer

	width  int
	height int

	// Mouse drag bookkeeping.
	lastMouseX float64
	lastMouseY float64
	leftDown   bool
	rightDown  bool
	firstMouse bool

	// Live parameter editing: index into paramNames, adjusted by arrow keys.
	paramSel int

	frameCount int
	fpsTimer   float64
	fps        float64
}

var paramNames = []string{"sigma", "rho", "beta", "dt"}

// Run opens the window and blocks until it closes. Must be called from the
// main goroutine.
func Run(cfg *config.Config) error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("gui: glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height,
		baseTitle+" [press SPACE to start]", nil, nil)
	if err != nil {
		return fmt.Errorf("gui: create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gui: gl init: %w", err)
	}

	renderer, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	defer renderer.Close()

	state := app.FromConfig(cfg)

	a := &App{
		window:     window,
		state:      state,
		solver:     lorenz.NewSolver(state.Params),
		camera:     camera.NewOrbit(cfg.Camera.Distance, cfg.Camera.Yaw, cfg.Camera.Pitch),
		renderer:   renderer,
		width:      cfg.Window.Width,
		height:     cfg.Window.Height,
		firstMouse: true,
		fpsTimer:   glfw.GetTime(),
	}
	a.installCallbacks()

	for !window.ShouldClose() {
		glfw.PollEvents()
		a.update()
		a.draw()
		window.SwapBuffers()
		a.tickFPS()
	}
	return nil
}

// update advances the solver for this frame, then applies a single eviction
// pass so the trajectory obeys MaxPoints before the renderer reads it.
func (a *App) update() {
	if !a.state.Running {
		return
	}
	a.solver.SetParameters(a.state.Params.Sigma, a.state.Params.Rho, a.state.Params.Beta)
	a.solver.Advance(a.state.Dt, a.state.StepsPerFrame)
	a.solver.ClearOldest(a.state.MaxPoints)
}

func (a *App) draw() {
	aspect := float32(a.width) / float32(a.height)
	a.renderer.Draw(
		a.solver.Trajectory(),
		a.camera.ViewMatrix(),
		a.camera.ProjectionMatrix(aspect),
		float32(a.state.LineAlpha),
	)
}

func (a *App) tickFPS() {
	a.frameCount++
	now := glfw.GetTime()
	if elapsed := now - a.fpsTimer; elapsed >= 1.0 {
		a.fps = float64(a.frameCount) / elapsed
		a.frameCount = 0
		a.fpsTimer = now
		a.refreshTitle()
	}
}

func (a *App) refreshTitle() {
	status := "PAUSED - press SPACE"
	if a.state.Running {
		status = "RUNNING"
	}
	a.window.SetTitle(fmt.Sprintf("%s - %.0f FPS | %d points | %s=%.3f [%s]",
		baseTitle, a.fps, len(a.solver.Trajectory()),
		paramNames[a.paramSel], a.selectedParam(), status))
}

func (a *App) selectedParam() float64 {
	switch paramNames[a.paramSel] {
	case "sigma":
		return a.state.Params.Sigma
	case "rho":
		return a.state.Params.Rho
	case "beta":
		return a.state.Params.Beta
	default:
		return a.state.Dt
	}
}

func (a *App) adjustParam(dir float64) {
	switch paramNames[a.paramSel] {
	case "sigma":
		a.state.Params.Sigma += dir * 0.5
	case "rho":
		a.state.Params.Rho += dir * 0.5
	case "beta":
		a.state.Params.Beta += dir * 0.1
	default:
		a.state.Dt += dir * 0.001
	}
	a.refreshTitle()
}
