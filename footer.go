package datagrid

// footerEntry is a laid-out pager item.
type footerEntry struct {
	item  PageItem
	label string
	rect  Rect
}

// footerPanel paints the pager below the body and maps clicks back to pager
// actions. Item widths come from the style's monospace metrics so hit tests
// need no canvas.
type footerPanel struct {
	rect  Rect
	pager *Pager
}

func (f *footerPanel) entries(style Style) []footerEntry {
	items := f.pager.Items()
	out := make([]footerEntry, 0, len(items))
	charW := style.CharWidth * style.FontScale
	x := f.rect.X + style.PageItemGap
	for _, it := range items {
		label := it.Label(f.pager.PageSize())
		w := float32(len(label))*charW + style.CellPadding*2
		out = append(out, footerEntry{
			item:  it,
			label: label,
			rect:  Rect{X: x, Y: f.rect.Y, W: w, H: f.rect.H},
		})
		x += w + style.PageItemGap
	}
	return out
}

// Click activates the item under p. It returns true when p is inside the
// footer.
func (f *footerPanel) Click(p Vec2, style Style) bool {
	if f.pager == nil || !f.rect.Contains(p) {
		return false
	}
	for _, e := range f.entries(style) {
		if e.rect.Contains(p) {
			f.pager.Activate(e.item)
			break
		}
	}
	return true
}

// Draw paints the footer.
func (f *footerPanel) Draw(c Canvas, style Style) {
	r := f.rect
	if f.pager == nil || r.W <= 0 || r.H <= 0 {
		return
	}
	c.PushClipRect(r.X, r.Y, r.Right(), r.Bottom())
	defer c.PopClipRect()

	c.AddRect(r.X, r.Y, r.W, r.H, style.FooterBgColor)
	if r.H > style.CharHeight*style.FontScale {
		c.AddLine(r.X, r.Y+0.5, r.Right(), r.Y+0.5, style.BorderColor, 1)
	}

	for _, e := range f.entries(style) {
		color := style.TextColor
		switch {
		case e.item.Disabled:
			color = style.PageDisabledColor
		case e.item.Current:
			color = style.PageCurrentColor
		}
		size := c.MeasureText(e.label)
		y := e.rect.Y + floorf((e.rect.H-size.Y)/2)
		c.AddText(e.rect.X+style.CellPadding, y, e.label, color)
	}
}
