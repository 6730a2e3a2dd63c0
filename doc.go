/*
Package datagrid provides a virtualized, interactive data grid: a fixed header
row, a row-number gutter, a scrollable body and a pagination footer, with
column and row resizing, column reordering and synchronized scrolling.

# Overview

The grid owns all geometry and interaction state. Hosts hand it a container
rectangle, one InputState per frame and a paint surface; the grid hit-tests
the pointer, runs gestures, and paints only the cells that intersect the
viewport. Nothing is retained on the host side except the callbacks it
subscribes to.

Two hosts ship with the package: backend/opengl draws through a DrawList on
OpenGL 4.1 with GLFW input, and backend/terminal paints character cells with
tcell.

# Quick Start

	// Setup
	renderer, _ := opengl.NewRenderer(1280, 720)
	grid := datagrid.New(headers, rows,
	    datagrid.OnColumnWidthChange(func(i int, w float32) { ... }),
	    datagrid.OnPageChange(func(page, size int) { ... }),
	)
	grid.Resize(datagrid.Rect{W: 1280, H: 720})

	// Frame loop
	for !window.ShouldClose() {
	    input := pollInput(window)
	    grid.HandleInput(input)
	    if err := grid.Render(renderer); err != nil {
	        return err
	    }
	    window.SwapBuffers()
	}

# Panels

	Header      Column titles. Follows horizontal scroll. Right edge of each
	            cell is a resize handle; press and drag a title to reorder.
	Gutter      Row ordinals. Follows vertical scroll. Bottom edge of each
	            cell resizes the row; its own right edge resizes the gutter.
	Body        The cells. The only panel that scrolls natively (wheel,
	            Shift+wheel, scrollbar track, Home/End/PageUp/PageDown).
	Footer      Previous, page numbers, jumps of 5, next, page size.

# Geometry

Columns are laid out over the body width: each gets floor(width/count),
raised to the minimum column width, and the last one also takes the
remainder. Row specs are kept RowLookahead entries ahead of the data so
appended rows need no re-layout. Geometry is the single owner of widths,
heights and offsets; everything else reads copies.

The pure functions LayoutColumns, ResizeColumn, ReorderColumn, ResizeRow and
GrowRowSpecs expose the same rules without any grid around them.

# Gestures

A DragController runs at most one gesture at a time:

	column resize   header handle, commits the width delta on release
	row resize      gutter row handle, commits the height delta on release
	gutter resize   gutter right edge, clamped to [min, container width/2]
	column reorder  header press past the drag threshold, swaps on drop

Until release only a marker line moves; widths and heights commit once when
the gesture ends, even with a zero delta. Escape, CancelGesture or a focus
loss abandon the gesture without committing. While a gesture is active, text
selection on the host is suppressed through a reference-counted guard; see
SetSelectionHook.

A header click without movement toggles an exclusive highlight on that
column. A gutter click does the same for the row.

# Scrolling

The ScrollCoordinator owns the offset. Every change, whatever its source,
reaches the header (horizontal), the gutter (vertical) and the body in the
same update. Bounds are computed on demand from the data rows only:

	maxTop  = max(0, sum(row heights) - viewport height)
	maxLeft = max(0, sum(column widths) - viewport width)

Wheel events over the gutter move by a fixed step and are ignored once the
body is at its bottom.

# Render Hooks

	WithHeadItemRender   header cell content
	WithColItemRender    body cell content
	WithRowNumberConfig  gutter cell content (Render field)
	WithEmptyRender      body content when there are no rows

Hooks paint into the same Canvas as the grid, already clipped to the cell.

# Events

All indices are 0-based visual positions, -1 for none.

	OnColumnWidthChange  OnColumnOrderChange  OnColumnHighlight
	OnRowHeightChange    OnRowHighlight       OnGutterWidthChange
	OnScroll             OnPageChange         OnPageSizeChange

# Logging

The package logs gesture and layout decisions at debug level through
log/slog. Call SetVerbose(true) to see them.

# Performance

  - DrawLists are pooled with sync.Pool; a frame allocates no vertex buffers
    after warm-up.
  - Rows and columns go through ListClipper, so cost scales with the visible
    window, not the dataset.
  - Row offsets are cached as prefix sums and rebuilt only after a row
    height changes.
*/
package datagrid
