package datagrid

import "sort"

// ListClipper virtualizes a list of variable-size items by calculating the
// range that intersects the viewport. Rows and columns both go through it, so
// only the visible window of the dataset is ever painted.
//
// Usage:
//
//	clipper := NewListClipper(count, sizeFn, viewportSize, offset)
//	for i := clipper.StartIdx; i < clipper.EndIdx; i++ {
//	    pos := clipper.ItemPos(i) - offset
//	    // Draw item at pos
//	}
type ListClipper struct {
	StartIdx   int // First visible item index (inclusive)
	EndIdx     int // Last visible item index (exclusive)
	TotalItems int

	starts []float32 // starts[i-StartIdx] is the offset of visible item i
}

// NewListClipper calculates the visible range of count items whose sizes are
// given by size, for a viewport of viewportSize scrolled to offset.
func NewListClipper(count int, size func(int) float32, viewportSize, offset float32) *ListClipper {
	start, end := VisibleRange(offset, viewportSize, size, count)
	c := &ListClipper{StartIdx: start, EndIdx: end, TotalItems: count}
	if end <= start {
		return c
	}

	pos := float32(0)
	for i := 0; i < start; i++ {
		pos += size(i)
	}
	c.starts = make([]float32, 0, end-start)
	for i := start; i < end; i++ {
		c.starts = append(c.starts, pos)
		pos += size(i)
	}
	return c
}

// NewOffsetClipper is NewListClipper for items whose offsets are already
// known. top(i) returns the start of item i and top(count) the total; it must
// not decrease. Both edges are found by binary search, so only the visible
// items are touched.
func NewOffsetClipper(count int, top func(int) float32, viewportSize, offset float32) *ListClipper {
	c := &ListClipper{TotalItems: count}
	if count <= 0 || viewportSize <= 0 {
		return c
	}
	offset = maxf(offset, 0)

	start := sort.Search(count, func(i int) bool { return top(i+1) > offset })
	if start == count {
		c.StartIdx, c.EndIdx = count, count
		return c
	}
	limit := offset + viewportSize
	rest := count - start - 1
	end := start + 1 + sort.Search(rest, func(i int) bool { return top(start+1+i) >= limit })

	c.StartIdx, c.EndIdx = start, end
	c.starts = make([]float32, 0, end-start)
	for i := start; i < end; i++ {
		c.starts = append(c.starts, top(i))
	}
	return c
}

// VisibleRange maps a scroll offset and viewport size to the half-open range
// [start, end) of items that intersect the viewport. Items with a non-positive
// size occupy no space and are skipped at the edges.
func VisibleRange(offset, viewportSize float32, size func(int) float32, count int) (start, end int) {
	if count <= 0 || viewportSize <= 0 {
		return 0, 0
	}
	if offset < 0 {
		offset = 0
	}

	pos := float32(0)
	start = count
	for i := 0; i < count; i++ {
		next := pos + size(i)
		if next > offset {
			start = i
			break
		}
		pos = next
	}
	if start == count {
		return count, count
	}

	limit := offset + viewportSize
	end = start
	for end < count && pos < limit {
		pos += size(end)
		end++
	}
	return start, end
}

// ShouldRender returns true if the item at the given index is visible.
func (c *ListClipper) ShouldRender(idx int) bool {
	return idx >= c.StartIdx && idx < c.EndIdx
}

// ItemPos returns the content offset of a visible item.
func (c *ListClipper) ItemPos(idx int) float32 {
	if !c.ShouldRender(idx) {
		return 0
	}
	return c.starts[idx-c.StartIdx]
}

// VisibleCount returns the number of items that should be rendered.
func (c *ListClipper) VisibleCount() int {
	return c.EndIdx - c.StartIdx
}
