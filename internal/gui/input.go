package gui

import "github.com/go-gl/glfw/v3.3/glfw"

// installCallbacks wires raw GLFW events to camera deltas and simulation
// toggles. All callbacks run on the main thread during PollEvents.
func (a *App) installCallbacks() {
	a.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		a.width, a.height = width, height
		// Viewport follows the framebuffer; matrices pick up the new aspect
		// on the next draw.
		resizeViewport(width, height)
	})

	a.window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		switch button {
		case glfw.MouseButtonLeft:
			a.leftDown = action == glfw.Press
		case glfw.MouseButtonRight:
			a.rightDown = action == glfw.Press
		}
		if action == glfw.Press {
			a.firstMouse = true
		}
	})

	a.window.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		if a.firstMouse {
			a.lastMouseX, a.lastMouseY = xpos, ypos
			a.firstMouse = false
			return
		}
		dx := xpos - a.lastMouseX
		dy := ypos - a.lastMouseY
		a.lastMouseX, a.lastMouseY = xpos, ypos

		if a.leftDown {
			a.camera.Rotate(dx*0.3, -dy*0.3)
		}
		if a.rightDown {
			a.camera.Pan(-dx, dy)
		}
	})

	a.window.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		a.camera.Zoom(-yoff * 3.0)
	})

	a.window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeySpace:
			a.state.Running = !a.state.Running
			a.refreshTitle()
		case glfw.KeyR:
			a.camera.Reset()
		case glfw.KeyX:
			a.solver.Reset()
			a.refreshTitle()
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		case glfw.Key1, glfw.Key2, glfw.Key3, glfw.Key4:
			a.paramSel = int(key - glfw.Key1)
			a.refreshTitle()
		case glfw.KeyLeft:
			a.adjustParam(-1)
		case glfw.KeyRight:
			a.adjustParam(+1)
		case glfw.KeyMinus:
			if a.state.StepsPerFrame > 1 {
				a.state.StepsPerFrame--
			}
		case glfw.KeyEqual:
			if a.state.StepsPerFrame < 20 {
				a.state.StepsPerFrame++
			}
		}
	})
}
