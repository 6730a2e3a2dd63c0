package datagrid

import "testing"

type resizeCall struct {
	index int
	delta float32
}

// fakeSink records the commits a DragController makes.
type fakeSink struct {
	gutterWidth   float32
	viewportWidth float32

	columnResizes []resizeCall
	rowResizes    []resizeCall
	gutterWidths  []float32
	swaps         [][2]int
	colHighlights []int
	rowHighlights []int
}

func (s *fakeSink) resizeColumn(index int, delta float32) {
	s.columnResizes = append(s.columnResizes, resizeCall{index, delta})
}

func (s *fakeSink) resizeRow(index int, delta float32) {
	s.rowResizes = append(s.rowResizes, resizeCall{index, delta})
}

func (s *fakeSink) gutterMetrics() (float32, float32) { return s.gutterWidth, s.viewportWidth }

func (s *fakeSink) setGutterWidth(w float32) { s.gutterWidths = append(s.gutterWidths, w) }

func (s *fakeSink) swapColumns(from, to int) { s.swaps = append(s.swaps, [2]int{from, to}) }

func (s *fakeSink) highlightColumn(i int) { s.colHighlights = append(s.colHighlights, i) }

func (s *fakeSink) highlightRow(i int) { s.rowHighlights = append(s.rowHighlights, i) }

func newTestController() (*DragController, *fakeSink) {
	sink := &fakeSink{gutterWidth: 40, viewportWidth: 400}
	return newDragController(sink, 40), sink
}

func TestDragController_ColumnResizeCommitsOnRelease(t *testing.T) {
	c, sink := newTestController()

	if !c.BeginResize(DragColumnResize, 1, 100, true) {
		t.Fatal("Expected resize to start")
	}
	if !SelectionSuppressed() {
		t.Error("Expected selection suppressed during the gesture")
	}

	c.Move(130, true)
	c.Move(110, true)

	s, ok := c.Session()
	if !ok || s.Live != 110 || s.Delta() != 10 {
		t.Errorf("Expected live 110 and delta 10, got %+v", s)
	}
	if len(sink.columnResizes) != 0 {
		t.Error("Expected no commit before release")
	}

	c.End()

	if len(sink.columnResizes) != 1 || sink.columnResizes[0] != (resizeCall{1, 10}) {
		t.Errorf("Expected one commit {1 10}, got %v", sink.columnResizes)
	}
	if c.Active() {
		t.Error("Expected controller idle after release")
	}
	if SelectionSuppressed() {
		t.Error("Expected selection restored after release")
	}

	c.End()
	if len(sink.columnResizes) != 1 {
		t.Error("Expected a second End to commit nothing")
	}
}

func TestDragController_ZeroDeltaStillCommits(t *testing.T) {
	c, sink := newTestController()

	c.BeginResize(DragRowResize, 3, 200, true)
	c.End()

	if len(sink.rowResizes) != 1 || sink.rowResizes[0] != (resizeCall{3, 0}) {
		t.Errorf("Expected one zero-delta commit for row 3, got %v", sink.rowResizes)
	}
}

func TestDragController_OneGestureAtATime(t *testing.T) {
	c, _ := newTestController()

	c.BeginResize(DragColumnResize, 0, 10, true)
	defer c.Cancel()

	if c.BeginResize(DragRowResize, 0, 10, true) {
		t.Error("Expected second resize to be refused")
	}
	if c.BeginReorder(1, true) {
		t.Error("Expected reorder to be refused while resizing")
	}
	if s, _ := c.Session(); s.Kind != DragColumnResize {
		t.Errorf("Expected the first gesture to survive, got %v", s.Kind)
	}
}

func TestDragController_NonPrimaryIgnored(t *testing.T) {
	c, sink := newTestController()

	if c.BeginResize(DragColumnResize, 0, 10, false) {
		t.Fatal("Expected gesture without primary button to be refused")
	}
	if SelectionSuppressed() {
		t.Error("Expected no suppression for a refused gesture")
	}

	c.BeginResize(DragColumnResize, 0, 10, true)
	c.Move(90, false)
	if s, _ := c.Session(); s.Live != 10 {
		t.Errorf("Expected move without primary ignored, live %v", s.Live)
	}
	c.End()
	if sink.columnResizes[0].delta != 0 {
		t.Errorf("Expected zero delta, got %v", sink.columnResizes[0].delta)
	}
}

func TestDragController_CancelCommitsNothing(t *testing.T) {
	c, sink := newTestController()

	c.BeginResize(DragColumnResize, 2, 50, true)
	c.Move(150, true)
	c.Cancel()

	if len(sink.columnResizes) != 0 {
		t.Errorf("Expected no commit after cancel, got %v", sink.columnResizes)
	}
	if c.Active() || SelectionSuppressed() {
		t.Error("Expected idle controller and restored selection after cancel")
	}
}

func TestDragController_GutterClamp(t *testing.T) {
	tests := []struct {
		name string
		move float32
		want float32
	}{
		{"grow", 90, 90},
		{"below minimum", 0, 40},
		{"past half the viewport", 500, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, sink := newTestController()
			c.BeginResize(DragGutterResize, -1, 40, true)
			c.Move(tt.move, true)
			c.End()
			if len(sink.gutterWidths) != 1 || sink.gutterWidths[0] != tt.want {
				t.Errorf("Expected gutter width %v, got %v", tt.want, sink.gutterWidths)
			}
		})
	}
}

func TestDragController_Reorder(t *testing.T) {
	c, sink := newTestController()

	if !c.BeginReorder(0, true) {
		t.Fatal("Expected reorder to start")
	}
	c.DragOver(0) // source
	c.DragOver(2)
	c.DragOver(2) // already hovered
	c.Drop(2)

	if len(sink.colHighlights) != 1 || sink.colHighlights[0] != 2 {
		t.Errorf("Expected a single highlight of column 2, got %v", sink.colHighlights)
	}
	if len(sink.swaps) != 1 || sink.swaps[0] != [2]int{0, 2} {
		t.Errorf("Expected swap {0 2}, got %v", sink.swaps)
	}
	if c.Highlighted() != -1 {
		t.Errorf("Expected highlight cleared by the swap, got %d", c.Highlighted())
	}
	if c.Active() || SelectionSuppressed() {
		t.Error("Expected idle controller after drop")
	}
}

func TestDragController_DropWithoutSwap(t *testing.T) {
	c, sink := newTestController()

	c.BeginReorder(1, true)
	c.Drop(1)
	c.BeginReorder(1, true)
	c.End()

	if len(sink.swaps) != 0 {
		t.Errorf("Expected no swaps, got %v", sink.swaps)
	}
	if c.Active() {
		t.Error("Expected idle controller")
	}
}

func TestDragController_ToggleHighlight(t *testing.T) {
	c, sink := newTestController()

	c.ToggleHighlight(1)
	c.ToggleHighlight(2)
	c.ToggleHighlight(2)

	want := []int{1, 2, -1}
	if len(sink.colHighlights) != len(want) {
		t.Fatalf("Expected %v, got %v", want, sink.colHighlights)
	}
	for i := range want {
		if sink.colHighlights[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, sink.colHighlights)
			break
		}
	}

	c.ToggleRowHighlight(4)
	c.ToggleRowHighlight(4)
	if c.HighlightedRow() != -1 || len(sink.rowHighlights) != 2 {
		t.Errorf("Expected row highlight toggled off, got %d (%v)", c.HighlightedRow(), sink.rowHighlights)
	}
}

func TestClampGutterWidth(t *testing.T) {
	tests := []struct {
		width, min, viewport, want float32
	}{
		{50, 40, 400, 50},
		{10, 40, 400, 40},
		{500, 40, 400, 200},
		{50, 40, 60, 30}, // upper bound wins
	}
	for _, tt := range tests {
		if got := ClampGutterWidth(tt.width, tt.min, tt.viewport); got != tt.want {
			t.Errorf("ClampGutterWidth(%v, %v, %v) = %v, want %v", tt.width, tt.min, tt.viewport, got, tt.want)
		}
	}
}

func TestDragKind_String(t *testing.T) {
	if DragColumnReorder.String() != "column-reorder" {
		t.Errorf("unexpected name %q", DragColumnReorder.String())
	}
	if DragKind(42).String() != "DragKind(42)" {
		t.Errorf("unexpected name %q", DragKind(42).String())
	}
}

// panickingSink fails every commit.
type panickingSink struct{ fakeSink }

func (s *panickingSink) resizeColumn(int, float32) { panic("resize failed") }

func (s *panickingSink) swapColumns(int, int) { panic("swap failed") }

func TestDragController_SinkPanicReleasesGesture(t *testing.T) {
	c := newDragController(&panickingSink{}, 40)

	commit := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected the commit panic to reach the caller", name)
			}
		}()
		fn()
	}

	if !c.BeginResize(DragColumnResize, 0, 10, true) {
		t.Fatal("Expected resize to start")
	}
	c.Move(30, true)
	commit("resize", c.End)

	if c.Active() || SelectionSuppressed() {
		t.Fatalf("Expected idle and selection restored after a failed resize, active=%v suppressed=%v",
			c.Active(), SelectionSuppressed())
	}

	if !c.BeginReorder(0, true) {
		t.Fatal("Expected a new gesture to start after the failed one")
	}
	commit("reorder", func() { c.Drop(2) })

	if c.Active() || SelectionSuppressed() {
		t.Errorf("Expected idle and selection restored after a failed swap, active=%v suppressed=%v",
			c.Active(), SelectionSuppressed())
	}
}
