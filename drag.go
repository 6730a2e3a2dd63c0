package datagrid

import "fmt"

// DragKind identifies the gesture a DragSession tracks.
type DragKind int

const (
	DragNone DragKind = iota
	DragColumnResize
	DragRowResize
	DragGutterResize
	DragColumnReorder
)

func (k DragKind) String() string {
	switch k {
	case DragNone:
		return "none"
	case DragColumnResize:
		return "column-resize"
	case DragRowResize:
		return "row-resize"
	case DragGutterResize:
		return "gutter-resize"
	case DragColumnReorder:
		return "column-reorder"
	default:
		return fmt.Sprintf("DragKind(%d)", int(k))
	}
}

// DragSession tracks one active gesture.
// Pointer offsets are measured along the gesture's axis in the coordinate
// space of the panel hosting the handle.
type DragSession struct {
	Kind   DragKind
	Target int     // Column or row index; source column for a reorder
	Anchor float32 // Pointer offset when the gesture started
	Last   float32 // Most recent pointer offset
	Live   float32 // Marker position for visual feedback
	Hover  int     // Reorder only: last hovered column, -1 for none
}

// Delta returns the distance travelled since the gesture started.
func (s DragSession) Delta() float32 {
	return s.Last - s.Anchor
}

// gestureSink receives committed gestures. The grid is the only implementation.
type gestureSink interface {
	resizeColumn(index int, delta float32)
	resizeRow(index int, delta float32)
	gutterMetrics() (width, viewportWidth float32)
	setGutterWidth(width float32)
	swapColumns(from, to int)
	highlightColumn(index int)
	highlightRow(index int)
}

// DragController turns pointer sequences into geometry commits. At most one
// session exists at a time; committed widths and heights only change when a
// session ends.
type DragController struct {
	sink           gestureSink
	minGutterWidth float32

	session *DragSession
	release func()

	highlighted    int // Exclusive column highlight, -1 for none
	highlightedRow int // Exclusive row highlight, -1 for none
}

func newDragController(sink gestureSink, minGutterWidth float32) *DragController {
	return &DragController{
		sink:           sink,
		minGutterWidth: minGutterWidth,
		highlighted:    -1,
		highlightedRow: -1,
	}
}

// Active returns true while a gesture is in progress.
func (c *DragController) Active() bool {
	return c.session != nil
}

// Session returns a copy of the active session.
func (c *DragController) Session() (DragSession, bool) {
	if c.session == nil {
		return DragSession{}, false
	}
	return *c.session, true
}

// BeginResize starts a column, row or gutter resize at pointer. It refuses to
// start when another gesture is active or the primary button is not held.
func (c *DragController) BeginResize(kind DragKind, target int, pointer float32, primaryHeld bool) bool {
	switch kind {
	case DragColumnResize, DragRowResize, DragGutterResize:
	default:
		return false
	}
	if !c.begin(primaryHeld) {
		return false
	}
	c.session = &DragSession{
		Kind:   kind,
		Target: target,
		Anchor: pointer,
		Last:   pointer,
		Live:   pointer,
		Hover:  -1,
	}
	gridLogger.Debug("gesture started", "kind", kind, "target", target, "pointer", pointer)
	return true
}

// BeginReorder starts dragging the column at source.
func (c *DragController) BeginReorder(source int, primaryHeld bool) bool {
	if !c.begin(primaryHeld) {
		return false
	}
	c.session = &DragSession{Kind: DragColumnReorder, Target: source, Hover: -1}
	gridLogger.Debug("gesture started", "kind", DragColumnReorder, "target", source)
	return true
}

func (c *DragController) begin(primaryHeld bool) bool {
	if c.session != nil {
		gridLogger.Debug("gesture refused, another is active", "active", c.session.Kind)
		return false
	}
	if !primaryHeld {
		return false
	}
	c.release = AcquireSelectionSuppression()
	return true
}

// Move records a pointer move for a resize gesture. Moves without the primary
// button held are ignored.
func (c *DragController) Move(pointer float32, primaryHeld bool) {
	s := c.session
	if s == nil || s.Kind == DragColumnReorder || !primaryHeld {
		return
	}
	s.Live += pointer - s.Last
	s.Last = pointer
}

// End commits the active resize exactly once, even with a zero delta, and
// returns to idle. A reorder that ends here was dropped outside any column and
// commits nothing.
func (c *DragController) End() {
	s := c.session
	if s == nil {
		return
	}
	defer c.finish()

	switch s.Kind {
	case DragColumnResize:
		c.sink.resizeColumn(s.Target, s.Delta())
	case DragRowResize:
		c.sink.resizeRow(s.Target, s.Delta())
	case DragGutterResize:
		width, viewportWidth := c.sink.gutterMetrics()
		c.sink.setGutterWidth(ClampGutterWidth(width+s.Delta(), c.minGutterWidth, viewportWidth))
	}
}

// Cancel abandons the active gesture without committing it.
func (c *DragController) Cancel() {
	if c.session == nil {
		return
	}
	gridLogger.Debug("gesture cancelled", "kind", c.session.Kind)
	c.finish()
}

// finish destroys the session and releases selection suppression. Every exit
// path of an active gesture ends here.
func (c *DragController) finish() {
	c.session = nil
	if c.release != nil {
		c.release()
		c.release = nil
	}
}

// DragOver records the column under the pointer during a reorder. The hovered
// column is highlighted unless it is the source or was already the last one
// hovered.
func (c *DragController) DragOver(index int) {
	s := c.session
	if s == nil || s.Kind != DragColumnReorder {
		return
	}
	if index != s.Target && index != s.Hover && index >= 0 {
		c.setHighlight(index)
	}
	s.Hover = index
}

// Drop ends a reorder over the column at index, swapping it with the source.
// Dropping onto the source is a no-op.
func (c *DragController) Drop(index int) {
	s := c.session
	if s == nil || s.Kind != DragColumnReorder {
		return
	}
	defer c.finish()

	if index < 0 || index == s.Target {
		return
	}
	c.sink.swapColumns(s.Target, index)
	c.highlighted = -1
}

// ToggleHighlight highlights the column at index exclusively, or clears the
// highlight when that column is already highlighted.
func (c *DragController) ToggleHighlight(index int) {
	if c.highlighted == index {
		c.setHighlight(-1)
		return
	}
	c.setHighlight(index)
}

// ToggleRowHighlight is ToggleHighlight for rows.
func (c *DragController) ToggleRowHighlight(index int) {
	if c.highlightedRow == index {
		index = -1
	}
	c.highlightedRow = index
	c.sink.highlightRow(index)
}

// Highlighted returns the highlighted column index or -1.
func (c *DragController) Highlighted() int { return c.highlighted }

// HighlightedRow returns the highlighted row index or -1.
func (c *DragController) HighlightedRow() int { return c.highlightedRow }

func (c *DragController) setHighlight(index int) {
	c.highlighted = index
	c.sink.highlightColumn(index)
}

// resetColumnHighlight forgets the column highlight after the header set is
// replaced.
func (c *DragController) resetColumnHighlight() {
	c.highlighted = -1
}

// ClampGutterWidth limits a gutter width to [minWidth, viewportWidth/2].
// The upper bound wins when the two conflict.
func ClampGutterWidth(width, minWidth, viewportWidth float32) float32 {
	return minf(maxf(width, minWidth), viewportWidth/2)
}
