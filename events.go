package datagrid

// Events holds the callbacks a host can subscribe to. Indices are 0-based
// visual positions; -1 means none. Every callback is optional.
type Events struct {
	ColumnWidthChanged     func(index int, width float32)
	ColumnOrderChanged     func(from, to int)
	ColumnHighlightChanged func(index int)
	RowHeightChanged       func(index int, height float32)
	RowHighlightChanged    func(index int)
	GutterWidthChanged     func(width float32)
	ScrollChanged          func(s ScrollState)
	PageChanged            func(page, pageSize int)
	PageSizeChanged        func(page, pageSize int)
}

func (e *Events) columnWidth(index int, width float32) {
	if e.ColumnWidthChanged != nil {
		e.ColumnWidthChanged(index, width)
	}
}

func (e *Events) columnOrder(from, to int) {
	if e.ColumnOrderChanged != nil {
		e.ColumnOrderChanged(from, to)
	}
}

func (e *Events) columnHighlight(index int) {
	if e.ColumnHighlightChanged != nil {
		e.ColumnHighlightChanged(index)
	}
}

func (e *Events) rowHeight(index int, height float32) {
	if e.RowHeightChanged != nil {
		e.RowHeightChanged(index, height)
	}
}

func (e *Events) rowHighlight(index int) {
	if e.RowHighlightChanged != nil {
		e.RowHighlightChanged(index)
	}
}

func (e *Events) gutterWidth(width float32) {
	if e.GutterWidthChanged != nil {
		e.GutterWidthChanged(width)
	}
}

func (e *Events) scroll(s ScrollState) {
	if e.ScrollChanged != nil {
		e.ScrollChanged(s)
	}
}

func (e *Events) page(page, size int) {
	if e.PageChanged != nil {
		e.PageChanged(page, size)
	}
}

func (e *Events) pageSize(page, size int) {
	if e.PageSizeChanged != nil {
		e.PageSizeChanged(page, size)
	}
}
