package datagrid

// HeaderPanel paints the column headers and hit-tests resize handles. It
// follows the horizontal scroll offset only.
type HeaderPanel struct {
	rect       Rect
	scrollLeft float32
	render     HeadItemRender

	// Pending press on a header cell; it becomes a click or a reorder.
	press      bool
	pressIndex int
	pressAt    Vec2
}

// FollowScroll mirrors the horizontal offset.
func (h *HeaderPanel) FollowScroll(s ScrollState) {
	h.scrollLeft = s.Left
}

// Rect returns the panel bounds.
func (h *HeaderPanel) Rect() Rect { return h.rect }

// HitTest returns the column under p and whether p is on its right-edge
// resize handle. index is -1 outside any column.
func (h *HeaderPanel) HitTest(geom *Geometry, p Vec2, handle float32) (index int, onHandle bool) {
	if !h.rect.Contains(p) {
		return -1, false
	}
	x := p.X - h.rect.X + h.scrollLeft
	for i := 0; i < geom.ColumnCount(); i++ {
		c, _ := geom.Column(i)
		edge := c.Left + c.Width
		if x >= edge-handle && x < edge+handle {
			return i, true
		}
	}
	return geom.ColumnAt(x), false
}

// ColumnAt returns the column under p, ignoring handles.
func (h *HeaderPanel) ColumnAt(geom *Geometry, p Vec2) int {
	if !h.rect.Contains(p) {
		return -1
	}
	return geom.ColumnAt(p.X - h.rect.X + h.scrollLeft)
}

// Draw paints the visible header cells.
func (h *HeaderPanel) Draw(c Canvas, geom *Geometry, style Style) {
	r := h.rect
	if r.W <= 0 || r.H <= 0 {
		return
	}
	c.PushClipRect(r.X, r.Y, r.Right(), r.Bottom())
	defer c.PopClipRect()

	c.AddRect(r.X, r.Y, r.W, r.H, style.HeaderBgColor)

	clipper := NewListClipper(geom.ColumnCount(), geom.ColumnWidth, r.W, h.scrollLeft)
	for i := clipper.StartIdx; i < clipper.EndIdx; i++ {
		col, _ := geom.Column(i)
		cell := Rect{X: r.X + clipper.ItemPos(i) - h.scrollLeft, Y: r.Y, W: col.Width, H: r.H}

		textColor := style.headerText()
		if col.Highlighted {
			c.AddRect(cell.X, cell.Y, cell.W, cell.H, style.HighlightBgColor)
			textColor = style.HighlightTextColor
		}

		c.PushClipRect(cell.X, cell.Y, cell.Right(), cell.Bottom())
		if h.render != nil {
			h.render(c, col, cell)
		} else {
			drawCellText(c, col.Name, cell, style, textColor)
		}
		c.PopClipRect()

		// Right edge doubles as the resize handle.
		c.AddLine(cell.Right()-0.5, cell.Y, cell.Right()-0.5, cell.Bottom(), style.HandleColor, 1)
	}
	// No room for a border under a single text line.
	if r.H > style.CharHeight*style.FontScale {
		c.AddLine(r.X, r.Bottom()-0.5, r.Right(), r.Bottom()-0.5, style.BorderColor, 1)
	}
}

// drawCellText draws text left-aligned and vertically centred in cell,
// truncated to the padded width.
func drawCellText(c Canvas, text string, cell Rect, style Style, color uint32) {
	if text == "" {
		return
	}
	text = truncateText(c, text, cell.W-style.CellPadding*2)
	if text == "" {
		return
	}
	size := c.MeasureText(text)
	y := cell.Y + floorf((cell.H-size.Y)/2)
	c.AddText(cell.X+style.CellPadding, y, text, color)
}
