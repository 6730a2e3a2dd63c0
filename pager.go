package datagrid

import (
	"fmt"
	"strconv"
)

// PageItemKind identifies an entry of the pagination footer.
type PageItemKind int

const (
	PagePrev PageItemKind = iota
	PageNumber
	PageJumpBack
	PageJumpForward
	PageNext
	PageSizeSelect
)

// pageJump is how far the jump items move.
const pageJump = 5

// PageItem is one entry of the footer, left to right.
type PageItem struct {
	Kind     PageItemKind
	Page     int // PageNumber only
	Current  bool
	Disabled bool
}

// Label returns the text drawn for the item. size is the current page size,
// used by the size selector.
func (it PageItem) Label(size int) string {
	switch it.Kind {
	case PagePrev:
		return "<"
	case PageNext:
		return ">"
	case PageJumpBack:
		return "<<"
	case PageJumpForward:
		return ">>"
	case PageSizeSelect:
		return fmt.Sprintf("%d / page", size)
	default:
		return strconv.Itoa(it.Page)
	}
}

// Pager holds the pagination state. It never fetches data; hosts react to
// its callbacks and supply the rows of the selected page.
type Pager struct {
	current     int
	pageSize    int
	total       int
	sizeOptions []int

	onChange     func(page, pageSize int)
	onSizeChange func(page, pageSize int)
}

// NewPager creates a pager from options. Zero fields take the defaults.
func NewPager(opts PageOptions) *Pager {
	p := &Pager{}
	p.Update(opts)
	return p
}

// Update replaces the pager state with host-supplied values.
func (p *Pager) Update(opts PageOptions) {
	p.current = opts.Current
	if p.current < 1 {
		p.current = 1
	}
	p.pageSize = opts.PageSize
	if p.pageSize <= 0 {
		p.pageSize = DefaultPageSize
	}
	p.total = opts.Total
	if p.total < 0 {
		p.total = 0
	}
	p.sizeOptions = append([]int(nil), opts.PageSizeOptions...)
	if len(p.sizeOptions) == 0 {
		p.sizeOptions = append([]int(nil), DefaultPageSizeOptions...)
	}
}

// Current returns the 1-based current page.
func (p *Pager) Current() int { return p.current }

// PageSize returns the number of rows per page.
func (p *Pager) PageSize() int { return p.pageSize }

// Total returns the record count across all pages.
func (p *Pager) Total() int { return p.total }

// PageSizeOptions returns a copy of the selectable page sizes.
func (p *Pager) PageSizeOptions() []int { return append([]int(nil), p.sizeOptions...) }

// LastPage returns the number of pages, 0 when there are no records.
func (p *Pager) LastPage() int {
	return (p.total + p.pageSize - 1) / p.pageSize
}

// Items returns the footer entries for the current state: previous, page 1,
// a backward jump once the current page is 5 or more, the window of pages
// within 2 of the current one, a forward jump while the current page is more
// than 2 before the last, the last page, next and the size selector.
func (p *Pager) Items() []PageItem {
	last := p.LastPage()
	cur := p.current

	items := make([]PageItem, 0, 12)
	items = append(items, PageItem{Kind: PagePrev, Disabled: cur <= 1})
	if last > 0 {
		lo := max(1, cur-2)
		hi := min(last, cur+2)
		if lo > 1 {
			items = append(items, p.numberItem(1))
		}
		if cur >= pageJump {
			items = append(items, PageItem{Kind: PageJumpBack})
		}
		for n := lo; n <= hi; n++ {
			items = append(items, p.numberItem(n))
		}
		if cur < last-2 {
			items = append(items, PageItem{Kind: PageJumpForward})
		}
		if hi < last {
			items = append(items, p.numberItem(last))
		}
	}
	items = append(items,
		PageItem{Kind: PageNext, Disabled: cur >= last},
		PageItem{Kind: PageSizeSelect},
	)
	return items
}

func (p *Pager) numberItem(n int) PageItem {
	return PageItem{Kind: PageNumber, Page: n, Current: n == p.current}
}

// Select moves to page, clamped to [1, LastPage]. It returns false when the
// page does not change.
func (p *Pager) Select(page int) bool {
	last := max(p.LastPage(), 1)
	page = min(max(page, 1), last)
	if page == p.current {
		return false
	}
	p.current = page
	gridLogger.Debug("page selected", "page", page, "size", p.pageSize)
	if p.onChange != nil {
		p.onChange(p.current, p.pageSize)
	}
	return true
}

// Prev selects the previous page.
func (p *Pager) Prev() bool { return p.Select(p.current - 1) }

// Next selects the next page.
func (p *Pager) Next() bool { return p.Select(p.current + 1) }

// JumpBack moves five pages back, stopping at page 1.
func (p *Pager) JumpBack() bool { return p.Select(p.current - pageJump) }

// JumpForward moves five pages forward, stopping at the last page.
func (p *Pager) JumpForward() bool { return p.Select(p.current + pageJump) }

// SetPageSize changes the page size and pulls the current page back into
// range. It returns false for a non-positive or unchanged size.
func (p *Pager) SetPageSize(size int) bool {
	if size <= 0 || size == p.pageSize {
		return false
	}
	p.pageSize = size
	if last := max(p.LastPage(), 1); p.current > last {
		p.current = last
	}
	gridLogger.Debug("page size changed", "page", p.current, "size", size)
	if p.onSizeChange != nil {
		p.onSizeChange(p.current, p.pageSize)
	}
	return true
}

// CyclePageSize switches to the next configured page size, wrapping around.
func (p *Pager) CyclePageSize() bool {
	next := p.sizeOptions[0]
	for i, s := range p.sizeOptions {
		if s == p.pageSize {
			next = p.sizeOptions[(i+1)%len(p.sizeOptions)]
			break
		}
	}
	return p.SetPageSize(next)
}

// Activate performs the action of a footer item.
func (p *Pager) Activate(it PageItem) bool {
	if it.Disabled {
		return false
	}
	switch it.Kind {
	case PagePrev:
		return p.Prev()
	case PageNext:
		return p.Next()
	case PageJumpBack:
		return p.JumpBack()
	case PageJumpForward:
		return p.JumpForward()
	case PageNumber:
		return p.Select(it.Page)
	case PageSizeSelect:
		return p.CyclePageSize()
	}
	return false
}
