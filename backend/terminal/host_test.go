package terminal

import (
	"fmt"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/datagrid"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

// newTestHost builds a 65x20 grid: a 5 cell gutter, a 1 cell header and
// three 20 cell columns over 20 rows of height 2.
func newTestHost(t *testing.T) (*Host, *datagrid.Grid, tcell.SimulationScreen) {
	t.Helper()
	screen := newTestScreen(t, 65, 20)

	rows := make([][]any, 20)
	for r := range rows {
		rows[r] = []any{fmt.Sprintf("r%d-c0", r), fmt.Sprintf("r%d-c1", r), r}
	}
	grid := datagrid.New(
		[]datagrid.ColumnSpec{{Name: "Alpha"}, {Name: "Beta"}, {Name: "Gamma"}},
		rows,
		datagrid.WithStyle(datagrid.TerminalStyle()),
		datagrid.WithHeadHeight(1),
		datagrid.WithMinRowHeight(2),
		datagrid.WithMinColWidth(10),
		datagrid.WithWheelStep(2),
		datagrid.WithRowNumberConfig(datagrid.RowNumberConfig{Width: 5, MinWidth: 4}),
		datagrid.WithPagination(false),
	)
	return NewHost(screen, grid), grid, screen
}

func readScreenLine(screen tcell.Screen, x, y, width int) string {
	runes := make([]rune, width)
	for i := 0; i < width; i++ {
		ch, _, _, _ := screen.GetContent(x+i, y)
		if ch == 0 {
			ch = ' '
		}
		runes[i] = ch
	}
	return string(runes)
}

func TestHost_DrawsHeaderBodyAndGutter(t *testing.T) {
	h, _, screen := newTestHost(t)
	h.Draw()

	if got := readScreenLine(screen, 6, 0, 5); got != "Alpha" {
		t.Errorf("Expected header %q, got %q", "Alpha", got)
	}
	if got := readScreenLine(screen, 26, 0, 4); got != "Beta" {
		t.Errorf("Expected header %q, got %q", "Beta", got)
	}
	if got := readScreenLine(screen, 6, 1, 5); got != "r0-c0" {
		t.Errorf("Expected first cell %q, got %q", "r0-c0", got)
	}
	if got := readScreenLine(screen, 1, 3, 1); got != "2" {
		t.Errorf("Expected row number 2, got %q", got)
	}
	if ch, _, _, _ := screen.GetContent(24, 1); ch != lineV {
		t.Errorf("Expected column separator at x=24, got %q", ch)
	}
}

func TestHost_ColumnResizeWithMouse(t *testing.T) {
	h, grid, _ := newTestHost(t)
	datagrid.SetSelectionHook(h.SelectionHook())
	t.Cleanup(func() { datagrid.SetSelectionHook(nil) })

	// The separator of column 0 sits in cell 24.
	h.HandleEvent(tcell.NewEventMouse(24, 0, tcell.Button1, tcell.ModNone))
	if !grid.Drag().Active() || !datagrid.SelectionSuppressed() {
		t.Fatal("Expected a column resize with selection suppressed")
	}
	h.HandleEvent(tcell.NewEventMouse(29, 0, tcell.Button1, tcell.ModNone))
	h.HandleEvent(tcell.NewEventMouse(29, 0, tcell.ButtonNone, tcell.ModNone))

	cols := grid.Columns()
	if cols[0].Width != 25 || cols[1].Left != 25 {
		t.Errorf("Expected column 0 widened to 25, got width %v, next left %v", cols[0].Width, cols[1].Left)
	}
	if grid.Drag().Active() || datagrid.SelectionSuppressed() {
		t.Error("Expected gesture finished")
	}
}

func TestHost_WheelAndKeys(t *testing.T) {
	h, grid, screen := newTestHost(t)

	h.HandleEvent(tcell.NewEventMouse(30, 10, tcell.WheelDown, tcell.ModNone))
	if top := grid.Scroll().State().Top; top != 2 {
		t.Fatalf("Expected top 2, got %v", top)
	}

	h.Draw()
	if got := readScreenLine(screen, 6, 1, 5); got != "r1-c0" {
		t.Errorf("Expected second row at the top, got %q", got)
	}

	h.HandleEvent(tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone))
	if top := grid.Scroll().State().Top; top != 21 {
		t.Errorf("Expected top 21 after End, got %v", top)
	}
	h.HandleEvent(tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone))
	if top := grid.Scroll().State().Top; top != 0 {
		t.Errorf("Expected top 0 after Home, got %v", top)
	}
}

func TestHost_QuitKeys(t *testing.T) {
	h, _, _ := newTestHost(t)

	tests := []struct {
		name string
		ev   *tcell.EventKey
		quit bool
	}{
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), true},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), false},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.HandleEvent(tt.ev); got != tt.quit {
				t.Errorf("Expected quit=%v, got %v", tt.quit, got)
			}
		})
	}
}

func TestHost_FocusLossCancels(t *testing.T) {
	h, grid, _ := newTestHost(t)

	h.HandleEvent(tcell.NewEventMouse(24, 0, tcell.Button1, tcell.ModNone))
	h.HandleEvent(tcell.NewEventMouse(34, 0, tcell.Button1, tcell.ModNone))
	h.HandleEvent(tcell.NewEventFocus(false))

	if grid.Drag().Active() {
		t.Error("Expected gesture cancelled on focus loss")
	}
	if grid.Columns()[0].Width != 20 {
		t.Errorf("Expected width unchanged, got %v", grid.Columns()[0].Width)
	}
}

func TestHost_Resize(t *testing.T) {
	h, grid, screen := newTestHost(t)

	screen.SetSize(85, 20)
	h.HandleEvent(tcell.NewEventResize(85, 20))

	var widths []float32
	for _, c := range grid.Columns() {
		widths = append(widths, c.Width)
	}
	if len(widths) != 3 || widths[0] != 26 || widths[1] != 26 || widths[2] != 28 {
		t.Errorf("Expected widths [26 26 28], got %v", widths)
	}
}

func TestCanvas_LinesAndClip(t *testing.T) {
	screen := newTestScreen(t, 10, 4)
	c := NewCanvas(screen)

	c.AddLine(0, 0.5, 5, 0.5, datagrid.ColorWhite, 1)
	c.AddLine(2.5, 0, 2.5, 3, datagrid.ColorWhite, 1)
	if ch, _, _, _ := screen.GetContent(2, 0); ch != lineCross {
		t.Errorf("Expected crossing at (2,0), got %q", ch)
	}
	if ch, _, _, _ := screen.GetContent(2, 2); ch != lineV {
		t.Errorf("Expected vertical line at (2,2), got %q", ch)
	}

	c.PushClipRect(0, 3, 3, 4)
	c.AddText(0, 3, "hello", datagrid.ColorWhite)
	c.PopClipRect()
	if got := readScreenLine(screen, 0, 3, 5); got != "hel  " {
		t.Errorf("Expected clipped text %q, got %q", "hel  ", got)
	}

	if got := c.MeasureText("表a"); got.X != 3 || got.Y != 1 {
		t.Errorf("Expected wide rune measured as 3x1, got %+v", got)
	}
}
