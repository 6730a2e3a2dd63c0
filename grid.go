package datagrid

import (
	"errors"
	"fmt"
)

// Renderer is the interface for rendering grid draw data.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// Grid is a virtualized data grid: a header row, a row-number gutter, a
// scrollable body and an optional pagination footer. Hosts feed it a
// per-frame InputState and draw it into a Canvas or a Renderer.
//
// A Grid is not safe for concurrent use; drive it from the thread that owns
// the window or screen.
type Grid struct {
	cfg   config
	style Style
	rows  [][]any

	geom   *Geometry
	scroll *ScrollCoordinator
	drag   *DragController
	pager  *Pager

	header *HeaderPanel
	gutter *RowNumberPanel
	body   *BodyGrid
	footer *footerPanel
	vbar   *Scrollbar
	hbar   *Scrollbar

	container   Rect
	gutterWidth float32
	lastPointer Vec2
}

// New creates a grid showing headers over rows. Call Resize before the first
// draw to give it a container.
func New(headers []ColumnSpec, rows [][]any, opts ...Option) *Grid {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Grid{
		cfg:   cfg,
		style: cfg.style,
		geom:  NewGeometry(cfg.minColWidth, cfg.minRowHeight),
		header: &HeaderPanel{
			render: cfg.headItemRender,
		},
		gutter: &RowNumberPanel{
			render:    cfg.rowNumber.Render,
			wheelStep: cfg.wheelStep,
		},
		body: &BodyGrid{
			render:    cfg.colItemRender,
			empty:     cfg.emptyRender,
			wheelStep: cfg.wheelStep,
		},
		vbar: &Scrollbar{Vertical: true},
		hbar: &Scrollbar{},
	}
	if cfg.rowNumbers {
		g.gutterWidth = cfg.rowNumber.Width
	}

	g.pager = NewPager(cfg.page)
	g.pager.onChange = g.cfg.events.page
	g.pager.onSizeChange = g.cfg.events.pageSize
	g.footer = &footerPanel{pager: g.pager}

	g.scroll = NewScrollCoordinator(gridBounds{g}, g.header, g.gutter, g.body)
	g.scroll.OnChange(g.cfg.events.scroll)
	g.drag = newDragController(g, cfg.rowNumber.MinWidth)

	g.geom.SetColumns(headers, 0)
	g.SetRows(rows)
	return g
}

// gridBounds exposes the data extent and body viewport to the scroll
// coordinator.
type gridBounds struct{ g *Grid }

func (b gridBounds) ContentSize() Vec2 {
	return Vec2{X: b.g.geom.ContentWidth(), Y: b.g.geom.ContentHeight()}
}

func (b gridBounds) ViewportSize() Vec2 {
	r := b.g.body.rect
	return Vec2{X: r.W, Y: r.H}
}

// Resize lays the grid out in container. Columns are redistributed over the
// new body width and the scroll offset is clamped to the new bounds.
func (g *Grid) Resize(container Rect) {
	g.container = container
	if g.cfg.rowNumbers && g.gutterWidth > (container.W-g.gutterWidth)/2 {
		// The widest gutter within half the new viewport is a third of the
		// container. A shrinking container never takes it below its minimum.
		g.gutterWidth = maxf(container.W/3, g.cfg.rowNumber.MinWidth)
	}
	g.layoutPanels()
	g.geom.Layout(g.body.rect.W)
	g.scroll.Clamp()
	gridLogger.Debug("grid resized", "container", container, "viewport", g.body.rect)
}

// layoutPanels places every panel from the container and the gutter width.
func (g *Grid) layoutPanels() {
	c := g.container
	gw := float32(0)
	if g.cfg.rowNumbers {
		gw = minf(g.gutterWidth, c.W)
	}
	head := minf(g.cfg.headHeight, c.H)
	foot := float32(0)
	if g.cfg.pagination {
		foot = minf(g.cfg.page.Height, maxf(0, c.H-head))
	}

	right := Rect{X: c.X + gw, Y: c.Y, W: maxf(0, c.W-gw), H: c.H}
	g.header.rect = Rect{X: right.X, Y: c.Y, W: right.W, H: head}
	g.body.rect = Rect{X: right.X, Y: c.Y + head, W: right.W, H: maxf(0, c.H-head-foot)}
	g.footer.rect = Rect{X: right.X, Y: c.Bottom() - foot, W: right.W, H: foot}
	g.gutter.layout(Rect{X: c.X, Y: c.Y, W: gw, H: c.H}, head, foot)
	g.vbar.layout(g.body.rect, g.style.ScrollbarSize)
	g.hbar.layout(g.body.rect, g.style.ScrollbarSize)
}

// SetHeaders replaces the header set and lays it out over the current body
// width. Any column gesture in progress is cancelled.
func (g *Grid) SetHeaders(headers []ColumnSpec) {
	if s, ok := g.drag.Session(); ok && s.Kind != DragRowResize && s.Kind != DragGutterResize {
		g.drag.Cancel()
	}
	g.header.press = false
	g.geom.SetColumns(headers, g.body.rect.W)
	g.drag.resetColumnHighlight()
	g.scroll.Clamp()
}

// SetRows replaces the data rows. Row specs grow to cover them; existing
// heights are kept.
func (g *Grid) SetRows(rows [][]any) {
	g.rows = rows
	g.geom.SetRowCount(len(rows))
	g.scroll.Clamp()
}

// SetPageOptions replaces the pagination state. Zero fields keep their
// current values.
func (g *Grid) SetPageOptions(po PageOptions) {
	g.cfg.page = mergePageOptions(g.cfg.page, po)
	g.pager.Update(g.cfg.page)
	g.layoutPanels()
	g.scroll.Clamp()
}

// ErrNoRenderer is returned by Render when given a nil renderer.
var ErrNoRenderer = errors.New("datagrid: nil renderer")

// Render draws the grid into a pooled DrawList and submits it to r.
func (g *Grid) Render(r Renderer) error {
	if r == nil {
		return ErrNoRenderer
	}
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.FontTextureID = r.FontTextureID()
	dl.CharWidth = g.style.CharWidth
	dl.CharHeight = g.style.CharHeight
	dl.FontScale = g.style.FontScale

	g.Draw(dl)
	dl.Finalize()

	if err := r.Render(dl); err != nil {
		return fmt.Errorf("render grid: %w", err)
	}
	return nil
}

// Draw paints the grid into c.
func (g *Grid) Draw(c Canvas) {
	ct := g.container
	if ct.W <= 0 || ct.H <= 0 {
		return
	}
	c.PushClipRect(ct.X, ct.Y, ct.Right(), ct.Bottom())
	defer c.PopClipRect()

	g.body.Draw(c, g.geom, g.rows, g.style)
	g.vbar.Draw(c, g.scroll, g.style)
	g.hbar.Draw(c, g.scroll, g.style)
	g.header.Draw(c, g.geom, g.style)
	if g.cfg.rowNumbers {
		g.gutter.Draw(c, g.geom, g.style)
	}
	if g.cfg.pagination {
		g.footer.Draw(c, g.style)
	}
	g.drawMarker(c)
}

// drawMarker paints the live line of an active resize so the user sees the
// pending size before it commits.
func (g *Grid) drawMarker(c Canvas) {
	s, ok := g.drag.Session()
	if !ok {
		return
	}
	ct := g.container
	color := g.style.MarkerColor
	w := g.style.MarkerWidth
	switch s.Kind {
	case DragColumnResize:
		x := g.header.rect.X + s.Live
		c.AddLine(x, g.header.rect.Y, x, g.body.rect.Bottom(), color, w)
	case DragRowResize:
		y := ct.Y + s.Live
		c.AddLine(ct.X, y, ct.Right(), y, color, w)
	case DragGutterResize:
		x := ct.X + s.Live
		c.AddLine(x, ct.Y, x, g.body.rect.Bottom(), color, w)
	}
}

// HandleInput applies one frame of input: gestures, clicks, wheel and keys.
func (g *Grid) HandleInput(in *InputState) {
	if in == nil {
		return
	}
	p := in.MousePos()
	defer func() { g.lastPointer = p }()

	if in.KeyPressed(KeyEscape) && (g.drag.Active() || g.header.press) {
		g.CancelGesture()
		return
	}

	switch {
	case g.drag.Active():
		g.trackGesture(in, p)
	case g.header.press:
		g.trackHeaderPress(in, p)
	case in.MouseClicked(MouseButtonLeft):
		g.press(in, p)
	}

	if in.MouseWheelX != 0 || in.MouseWheelY != 0 {
		g.wheel(in, p)
	}
	g.keys(in)
}

// CancelGesture abandons any gesture in progress without committing it.
// Hosts call it when the window loses focus or the pointer is lost.
func (g *Grid) CancelGesture() {
	g.header.press = false
	g.drag.Cancel()
}

func (g *Grid) press(in *InputState, p Vec2) {
	primary := in.PrimaryOnly()
	handle := g.style.HandleSize

	if g.cfg.rowNumbers {
		switch kind, row := g.gutter.hitTest(g.geom, p, handle); kind {
		case gutterHitWidth:
			g.drag.BeginResize(DragGutterResize, -1, p.X-g.container.X, primary)
			return
		case gutterHitRowHandle:
			g.drag.BeginResize(DragRowResize, row, p.Y-g.container.Y, primary)
			return
		case gutterHitRow:
			g.drag.ToggleRowHighlight(row)
			return
		}
	}

	if col, onHandle := g.header.HitTest(g.geom, p, handle); col >= 0 {
		if onHandle {
			g.drag.BeginResize(DragColumnResize, col, p.X-g.header.rect.X, primary)
			return
		}
		if primary {
			g.header.press = true
			g.header.pressIndex = col
			g.header.pressAt = p
		}
		return
	}

	if g.cfg.pagination && g.footer.Click(p, g.style) {
		return
	}

	if !g.vbar.Click(p, g.scroll) {
		g.hbar.Click(p, g.scroll)
	}
}

// trackGesture feeds the active session. A frame without the primary button
// held ends it; a reorder released outside the header ends with no swap.
func (g *Grid) trackGesture(in *InputState, p Vec2) {
	s, _ := g.drag.Session()
	held := in.MouseDown(MouseButtonLeft)

	if s.Kind == DragColumnReorder {
		over := g.header.ColumnAt(g.geom, p)
		if held {
			g.drag.DragOver(over)
			return
		}
		if over >= 0 {
			g.drag.Drop(over)
		} else {
			g.drag.End()
		}
		return
	}

	if !held {
		g.drag.End()
		return
	}
	if p == g.lastPointer {
		return
	}
	g.drag.Move(g.axisPointer(s.Kind, p), in.PrimaryOnly())
}

// axisPointer returns the pointer offset along a resize axis in the space of
// the panel that hosts the handle.
func (g *Grid) axisPointer(kind DragKind, p Vec2) float32 {
	switch kind {
	case DragColumnResize:
		return p.X - g.header.rect.X
	case DragRowResize:
		return p.Y - g.container.Y
	default:
		return p.X - g.container.X
	}
}

// trackHeaderPress decides whether a header press is a click, which toggles
// the column highlight, or the start of a reorder.
func (g *Grid) trackHeaderPress(in *InputState, p Vec2) {
	h := g.header
	if !in.MouseDown(MouseButtonLeft) {
		h.press = false
		if h.ColumnAt(g.geom, p) == h.pressIndex {
			g.drag.ToggleHighlight(h.pressIndex)
		}
		return
	}
	d := p.Sub(h.pressAt)
	if absf(d.X) < g.style.DragThreshold && absf(d.Y) < g.style.DragThreshold {
		return
	}
	h.press = false
	if g.drag.BeginReorder(h.pressIndex, in.PrimaryOnly()) {
		g.drag.DragOver(h.ColumnAt(g.geom, p))
	}
}

func (g *Grid) wheel(in *InputState, p Vec2) {
	if g.drag.Active() {
		return
	}
	if g.cfg.rowNumbers && g.gutter.items.Contains(p) {
		g.gutter.Wheel(in.MouseWheelY, g.scroll)
		return
	}
	if g.body.rect.Contains(p) || g.header.rect.Contains(p) {
		g.body.Wheel(in, g.scroll)
	}
}

func (g *Grid) keys(in *InputState) {
	if g.drag.Active() {
		return
	}
	st := g.scroll.State()
	page := g.body.rect.H
	switch {
	case in.KeyPressed(KeyHome):
		st.Top = 0
	case in.KeyPressed(KeyEnd):
		st.Top = g.scroll.MaxTop()
	case in.KeyPressed(KeyPageUp):
		st.Top -= page
	case in.KeyPressed(KeyPageDown):
		st.Top += page
	default:
		return
	}
	g.scroll.SetScroll(st)
}

// Commit targets for the drag controller.

func (g *Grid) resizeColumn(index int, delta float32) {
	w, ok := g.geom.ResizeColumn(index, delta)
	if !ok {
		return
	}
	gridLogger.Debug("column resized", "index", index, "delta", delta, "width", w)
	g.scroll.Clamp()
	g.cfg.events.columnWidth(index, w)
}

func (g *Grid) resizeRow(index int, delta float32) {
	h, ok := g.geom.ResizeRow(index, delta)
	if !ok {
		return
	}
	gridLogger.Debug("row resized", "index", index, "delta", delta, "height", h)
	g.scroll.Clamp()
	g.cfg.events.rowHeight(index, h)
}

func (g *Grid) gutterMetrics() (width, viewportWidth float32) {
	return g.gutterWidth, g.body.rect.W
}

func (g *Grid) setGutterWidth(width float32) {
	g.gutterWidth = width
	g.layoutPanels()
	g.scroll.Clamp()
	gridLogger.Debug("gutter resized", "width", width)
	g.cfg.events.gutterWidth(width)
}

func (g *Grid) swapColumns(from, to int) {
	hadHighlight := g.geom.HighlightedColumn() >= 0
	if !g.geom.SwapColumns(from, to) {
		return
	}
	gridLogger.Debug("columns swapped", "from", from, "to", to)
	g.cfg.events.columnOrder(from, to)
	if hadHighlight {
		g.cfg.events.columnHighlight(-1)
	}
}

func (g *Grid) highlightColumn(index int) {
	if index == g.geom.HighlightedColumn() {
		return
	}
	g.geom.HighlightColumn(index)
	g.cfg.events.columnHighlight(index)
}

func (g *Grid) highlightRow(index int) {
	if index == g.geom.HighlightedRow() {
		return
	}
	g.geom.HighlightRow(index)
	g.cfg.events.rowHighlight(index)
}

// Accessors.

// Geometry returns a snapshot of the grid's geometry. Mutating it does not
// affect the grid; use gestures or the grid's setters instead.
func (g *Grid) Geometry() *Geometry { return g.geom.Clone() }

// Scroll returns the scroll coordinator.
func (g *Grid) Scroll() *ScrollCoordinator { return g.scroll }

// Drag returns the drag controller.
func (g *Grid) Drag() *DragController { return g.drag }

// Pager returns the pagination state.
func (g *Grid) Pager() *Pager { return g.pager }

// Columns returns a copy of the laid-out columns.
func (g *Grid) Columns() []Column { return g.geom.Columns() }

// Rows returns a copy of the row specs, lookahead included.
func (g *Grid) Rows() []RowSpec { return g.geom.Rows() }

// GutterWidth returns the committed gutter width, 0 when the gutter is off.
func (g *Grid) GutterWidth() float32 {
	if !g.cfg.rowNumbers {
		return 0
	}
	return g.gutterWidth
}

// Container returns the rectangle passed to the last Resize.
func (g *Grid) Container() Rect { return g.container }

// Viewport returns the body viewport.
func (g *Grid) Viewport() Rect { return g.body.rect }

// HeaderRect returns the header bounds.
func (g *Grid) HeaderRect() Rect { return g.header.rect }

// GutterRect returns the gutter bounds.
func (g *Grid) GutterRect() Rect { return g.gutter.rect }

// FooterRect returns the footer bounds.
func (g *Grid) FooterRect() Rect { return g.footer.rect }

// Style returns the grid style.
func (g *Grid) Style() Style { return g.style }
