package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/datagrid"
)

// GLFWInputAdapter adapts GLFW input to datagrid.InputState.
//
// Per frame:
//
//	adapter.NewFrame()
//	glfw.PollEvents()
//	grid.HandleInput(adapter.Update())
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *datagrid.InputState

	onResize    func(width, height int)
	onFocusLost func()
	resizeCur   *glfw.Cursor
}

// NewGLFWInputAdapter creates an adapter and installs its callbacks on window.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	a := &GLFWInputAdapter{
		window: window,
		input:  datagrid.NewInputState(),
	}

	window.SetKeyCallback(a.keyCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetScrollCallback(a.scrollCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)
	window.SetFramebufferSizeCallback(a.framebufferSizeCallback)
	window.SetFocusCallback(a.focusCallback)

	return a
}

// OnResize sets the callback for framebuffer size changes.
func (a *GLFWInputAdapter) OnResize(fn func(width, height int)) {
	a.onResize = fn
}

// OnFocusLost sets the callback fired when the window loses focus. Hosts
// cancel the active grid gesture there, since the release may never arrive.
func (a *GLFWInputAdapter) OnFocusLost(fn func()) {
	a.onFocusLost = fn
}

// SelectionHook returns a hook for datagrid.SetSelectionHook that shows a
// crosshair cursor while a gesture suppresses selection.
func (a *GLFWInputAdapter) SelectionHook() func(suppressed bool) {
	return func(suppressed bool) {
		if !suppressed {
			a.window.SetCursor(nil)
			return
		}
		if a.resizeCur == nil {
			a.resizeCur = glfw.CreateStandardCursor(glfw.CrosshairCursor)
		}
		a.window.SetCursor(a.resizeCur)
	}
}

// NewFrame clears per-frame state. Call it before glfw.PollEvents.
func (a *GLFWInputAdapter) NewFrame() {
	a.input.Reset()
}

// Update refreshes the pointer and modifiers after events were polled.
func (a *GLFWInputAdapter) Update() *datagrid.InputState {
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	a.input.ModCtrl = a.window.GetKey(glfw.KeyLeftControl) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightControl) == glfw.Press
	a.input.ModShift = a.window.GetKey(glfw.KeyLeftShift) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightShift) == glfw.Press
	a.input.ModAlt = a.window.GetKey(glfw.KeyLeftAlt) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightAlt) == glfw.Press

	return a.input
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *datagrid.InputState {
	return a.input
}

// Destroy releases the cursor created by SelectionHook.
func (a *GLFWInputAdapter) Destroy() {
	if a.resizeCur != nil {
		a.resizeCur.Destroy()
		a.resizeCur = nil
	}
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKeyToGridKey(key)
	if k == datagrid.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButtonToGrid(button)
	if b < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(a.input.MouseWheelX+float32(xoff), a.input.MouseWheelY+float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

func (a *GLFWInputAdapter) framebufferSizeCallback(w *glfw.Window, width, height int) {
	if a.onResize != nil {
		a.onResize(width, height)
	}
}

func (a *GLFWInputAdapter) focusCallback(w *glfw.Window, focused bool) {
	if focused {
		return
	}
	// Buttons held when focus left will never see their release.
	for b := datagrid.MouseButtonLeft; b < datagrid.MouseButtonCount; b++ {
		a.input.SetMouseButton(b, false)
	}
	if a.onFocusLost != nil {
		a.onFocusLost()
	}
}

// glfwKeyToGridKey maps the GLFW keys the grid reacts to.
func glfwKeyToGridKey(key glfw.Key) datagrid.Key {
	switch key {
	case glfw.KeyEscape:
		return datagrid.KeyEscape
	case glfw.KeyHome:
		return datagrid.KeyHome
	case glfw.KeyEnd:
		return datagrid.KeyEnd
	case glfw.KeyPageUp:
		return datagrid.KeyPageUp
	case glfw.KeyPageDown:
		return datagrid.KeyPageDown
	default:
		return datagrid.KeyNone
	}
}

// glfwMouseButtonToGrid maps GLFW mouse buttons to grid mouse buttons.
func glfwMouseButtonToGrid(button glfw.MouseButton) datagrid.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return datagrid.MouseButtonLeft
	case glfw.MouseButtonRight:
		return datagrid.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return datagrid.MouseButtonMiddle
	default:
		return -1
	}
}
