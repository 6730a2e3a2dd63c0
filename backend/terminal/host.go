package terminal

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/datagrid"
)

// Host connects a grid to a tcell screen. Every tcell event is treated as
// one input frame.
type Host struct {
	screen tcell.Screen
	grid   *datagrid.Grid
	input  *datagrid.InputState
	canvas *Canvas
}

// NewHost creates a host and sizes the grid to the screen.
func NewHost(screen tcell.Screen, grid *datagrid.Grid) *Host {
	h := &Host{
		screen: screen,
		grid:   grid,
		input:  datagrid.NewInputState(),
		canvas: NewCanvas(screen),
	}
	w, ht := screen.Size()
	grid.Resize(datagrid.Rect{W: float32(w), H: float32(ht)})
	return h
}

// SelectionHook returns a hook for datagrid.SetSelectionHook. While a gesture
// is active the screen reports every pointer motion, so hover feedback keeps
// up; otherwise only button and drag events are reported.
func (h *Host) SelectionHook() func(suppressed bool) {
	return func(suppressed bool) {
		if suppressed {
			h.screen.EnableMouse(tcell.MouseMotionEvents)
			return
		}
		h.screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	}
}

// Input returns the input state fed to the grid.
func (h *Host) Input() *datagrid.InputState { return h.input }

// HandleEvent applies one tcell event. It returns true when the user asked
// to quit.
func (h *Host) HandleEvent(ev tcell.Event) (quit bool) {
	h.input.Reset()

	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, ht := ev.Size()
		h.grid.Resize(datagrid.Rect{W: float32(w), H: float32(ht)})
		h.screen.Sync()

	case *tcell.EventMouse:
		h.applyMouse(ev)
		h.grid.HandleInput(h.input)

	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return true
		}
		k := tcellKeyToGridKey(ev.Key())
		if k == datagrid.KeyNone {
			return false
		}
		// Terminals send no key releases.
		h.input.SetKey(k, true)
		h.grid.HandleInput(h.input)
		h.input.SetKey(k, false)

	case *tcell.EventFocus:
		if !ev.Focused {
			h.grid.CancelGesture()
		}
	}
	return false
}

// applyMouse copies position, buttons, wheel and modifiers into the input
// state. The pointer is placed at the centre of its cell.
func (h *Host) applyMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	h.input.SetMousePos(float32(x)+0.5, float32(y)+0.5)

	btn := ev.Buttons()
	h.input.SetMouseButton(datagrid.MouseButtonLeft, btn&tcell.Button1 != 0)
	h.input.SetMouseButton(datagrid.MouseButtonRight, btn&tcell.Button2 != 0)
	h.input.SetMouseButton(datagrid.MouseButtonMiddle, btn&tcell.Button3 != 0)

	var wx, wy float32
	if btn&tcell.WheelUp != 0 {
		wy++
	}
	if btn&tcell.WheelDown != 0 {
		wy--
	}
	if btn&tcell.WheelLeft != 0 {
		wx++
	}
	if btn&tcell.WheelRight != 0 {
		wx--
	}
	h.input.SetMouseWheel(wx, wy)

	mod := ev.Modifiers()
	h.input.ModShift = mod&tcell.ModShift != 0
	h.input.ModCtrl = mod&tcell.ModCtrl != 0
	h.input.ModAlt = mod&tcell.ModAlt != 0
}

// Draw paints the grid and shows the screen.
func (h *Host) Draw() {
	h.canvas.Reset()
	h.screen.Clear()
	h.grid.Draw(h.canvas)
	h.screen.Show()
}

// Run draws the grid and processes events until the user quits, the screen
// is finalized or ctx is done.
func (h *Host) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	h.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if h.HandleEvent(ev) {
				return nil
			}
			h.Draw()
		}
	}
}

// tcellKeyToGridKey maps the tcell keys the grid reacts to.
func tcellKeyToGridKey(k tcell.Key) datagrid.Key {
	switch k {
	case tcell.KeyEscape:
		return datagrid.KeyEscape
	case tcell.KeyHome:
		return datagrid.KeyHome
	case tcell.KeyEnd:
		return datagrid.KeyEnd
	case tcell.KeyPgUp:
		return datagrid.KeyPageUp
	case tcell.KeyPgDn:
		return datagrid.KeyPageDown
	default:
		return datagrid.KeyNone
	}
}
