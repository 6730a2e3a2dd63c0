package datagrid

import "strconv"

// gutterHitKind classifies a point inside the row-number gutter.
type gutterHitKind int

const (
	gutterHitNone gutterHitKind = iota
	gutterHitWidth
	gutterHitRowHandle
	gutterHitRow
)

// RowNumberPanel is the gutter left of the body. It has a top block aligned
// with the header, one cell per row spec, and a bottom block aligned with the
// footer. It follows the vertical scroll offset only.
type RowNumberPanel struct {
	rect      Rect // Whole gutter
	items     Rect // Row cells, between the top and bottom blocks
	scrollTop float32
	render    RowNumRender
	wheelStep float32
}

// FollowScroll mirrors the vertical offset.
func (p *RowNumberPanel) FollowScroll(s ScrollState) {
	p.scrollTop = s.Top
}

// Rect returns the panel bounds.
func (p *RowNumberPanel) Rect() Rect { return p.rect }

func (p *RowNumberPanel) layout(rect Rect, headHeight, footerHeight float32) {
	p.rect = rect
	p.items = Rect{
		X: rect.X,
		Y: rect.Y + headHeight,
		W: rect.W,
		H: maxf(0, rect.H-headHeight-footerHeight),
	}
}

// hitTest classifies p. For row hits, row is the row spec index.
func (p *RowNumberPanel) hitTest(geom *Geometry, pt Vec2, handle float32) (kind gutterHitKind, row int) {
	if p.rect.W <= 0 || pt.Y < p.rect.Y || pt.Y >= p.rect.Bottom() {
		return gutterHitNone, -1
	}
	right := p.rect.Right()
	if pt.X >= right-handle && pt.X < right+handle {
		return gutterHitWidth, -1
	}
	if !p.items.Contains(pt) {
		return gutterHitNone, -1
	}

	y := pt.Y - p.items.Y + p.scrollTop
	r := geom.RowAt(y)
	if r < 0 {
		return gutterHitNone, -1
	}
	if geom.RowTop(r+1)-y <= handle {
		return gutterHitRowHandle, r
	}
	if r > 0 && y-geom.RowTop(r) < handle {
		return gutterHitRowHandle, r - 1
	}
	return gutterHitRow, r
}

// Wheel scrolls by a fixed step per notch through the coordinator. Scrolling
// down is suppressed once the body is at its bottom. It returns whether the
// offset changed.
func (p *RowNumberPanel) Wheel(wheelY float32, sc *ScrollCoordinator) bool {
	if wheelY == 0 {
		return false
	}
	delta := -wheelY * p.wheelStep
	if delta > 0 && sc.AtBottom() {
		return false
	}
	return sc.ScrollByDelta(delta)
}

// Draw paints the gutter blocks and the visible row numbers.
func (p *RowNumberPanel) Draw(c Canvas, geom *Geometry, style Style) {
	r := p.rect
	if r.W <= 0 || r.H <= 0 {
		return
	}
	c.PushClipRect(r.X, r.Y, r.Right(), r.Bottom())
	defer c.PopClipRect()

	c.AddRect(r.X, r.Y, r.W, r.H, style.GutterBgColor)

	it := p.items
	c.PushClipRect(it.X, it.Y, it.Right(), it.Bottom())
	clipper := NewOffsetClipper(len(geom.rows), geom.RowTop, it.H, p.scrollTop)
	for i := clipper.StartIdx; i < clipper.EndIdx; i++ {
		row, _ := geom.Row(i)
		cell := Rect{X: it.X, Y: it.Y + clipper.ItemPos(i) - p.scrollTop, W: it.W, H: row.Height}

		textColor := style.gutterText()
		if row.Highlighted {
			c.AddRect(cell.X, cell.Y, cell.W, cell.H, style.HighlightBgColor)
			textColor = style.HighlightTextColor
		}
		if p.render != nil {
			p.render(c, row, cell)
		} else {
			drawCellText(c, strconv.Itoa(row.Index), cell, style, textColor)
		}
		// Bottom edge doubles as the row resize handle.
		c.AddLine(cell.X, cell.Bottom()-0.5, cell.Right(), cell.Bottom()-0.5, style.HandleColor, 1)
	}
	c.PopClipRect()

	c.AddLine(r.X, it.Y-0.5, r.Right(), it.Y-0.5, style.BorderColor, 1)
	c.AddLine(r.X, it.Bottom()+0.5, r.Right(), it.Bottom()+0.5, style.BorderColor, 1)
	c.AddLine(r.Right()-0.5, r.Y, r.Right()-0.5, r.Bottom(), style.HandleColor, 1)
}
