package datagrid

import "fmt"

// BodyGrid is the scrollable cell area. Only the rows and columns that
// intersect the viewport are painted.
type BodyGrid struct {
	rect      Rect
	scroll    ScrollState
	render    ColItemRender
	empty     EmptyRender
	wheelStep float32
}

// FollowScroll mirrors both axes.
func (b *BodyGrid) FollowScroll(s ScrollState) {
	b.scroll = s
}

// Rect returns the viewport bounds.
func (b *BodyGrid) Rect() Rect { return b.rect }

// Wheel applies a wheel event to the body. Shift turns vertical wheel motion
// into horizontal. The resulting offset is reported to the coordinator as an
// authoritative scroll; it returns whether the offset changed.
func (b *BodyGrid) Wheel(in *InputState, sc *ScrollCoordinator) bool {
	dx := -in.MouseWheelX * b.wheelStep
	dy := -in.MouseWheelY * b.wheelStep
	if in.ModShift && dx == 0 {
		dx, dy = dy, 0
	}
	if dx == 0 && dy == 0 {
		return false
	}
	st := sc.State()
	return sc.SetScroll(ScrollState{Top: st.Top + dy, Left: st.Left + dx})
}

// CellAt returns the data row and visual column under p, or -1s.
func (b *BodyGrid) CellAt(geom *Geometry, p Vec2) (row, col int) {
	if !b.rect.Contains(p) {
		return -1, -1
	}
	local := b.rect.Local(p)
	row = geom.RowAt(local.Y + b.scroll.Top)
	if row >= geom.RowCount() {
		row = -1
	}
	return row, geom.ColumnAt(local.X + b.scroll.Left)
}

// Draw paints the visible cells of rows.
func (b *BodyGrid) Draw(c Canvas, geom *Geometry, rows [][]any, style Style) {
	r := b.rect
	if r.W <= 0 || r.H <= 0 {
		return
	}
	c.PushClipRect(r.X, r.Y, r.Right(), r.Bottom())
	defer c.PopClipRect()

	c.AddRect(r.X, r.Y, r.W, r.H, style.BackgroundColor)

	if geom.RowCount() == 0 {
		if b.empty != nil {
			b.empty(c, r)
		}
		return
	}

	rowClip := NewOffsetClipper(geom.RowCount(), geom.RowTop, r.H, b.scroll.Top)
	colClip := NewListClipper(geom.ColumnCount(), geom.ColumnWidth, r.W, b.scroll.Left)

	for ri := rowClip.StartIdx; ri < rowClip.EndIdx; ri++ {
		row, _ := geom.Row(ri)
		y := r.Y + rowClip.ItemPos(ri) - b.scroll.Top

		if row.Highlighted {
			c.AddRect(r.X, y, r.W, row.Height, style.HighlightBgColor)
		} else if ri%2 == 0 {
			c.AddRect(r.X, y, r.W, row.Height, style.RowBgAltColor)
		}

		var data []any
		if ri < len(rows) {
			data = rows[ri]
		}

		for ci := colClip.StartIdx; ci < colClip.EndIdx; ci++ {
			col, _ := geom.Column(ci)
			cell := Cell{
				Row:         ri,
				Col:         ci,
				Column:      col,
				Rect:        Rect{X: r.X + colClip.ItemPos(ci) - b.scroll.Left, Y: y, W: col.Width, H: row.Height},
				Highlighted: col.Highlighted || row.Highlighted,
			}
			if col.DataIndex >= 0 && col.DataIndex < len(data) {
				cell.Value = data[col.DataIndex]
			}

			textColor := style.TextColor
			if col.Highlighted && !row.Highlighted {
				c.AddRect(cell.Rect.X, cell.Rect.Y, cell.Rect.W, cell.Rect.H, style.HighlightBgColor)
			}
			if cell.Highlighted {
				textColor = style.HighlightTextColor
			}

			c.PushClipRect(cell.Rect.X, cell.Rect.Y, cell.Rect.Right(), cell.Rect.Bottom())
			if b.render != nil {
				b.render(c, cell)
			} else {
				drawCellText(c, formatValue(cell.Value), cell.Rect, style, textColor)
			}
			c.PopClipRect()

			c.AddLine(cell.Rect.Right()-0.5, y, cell.Rect.Right()-0.5, y+row.Height, style.BorderColor, 1)
		}
		c.AddLine(r.X, y+row.Height-0.5, r.Right(), y+row.Height-0.5, style.BorderColor, 1)
	}
}

// formatValue renders a cell value with its default format; nil is blank.
func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
