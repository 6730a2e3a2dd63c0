package datagrid

// Default dimensions. Terminal hosts override them with cell-sized values.
const (
	DefaultHeadHeight       = 40
	DefaultRowHeight        = 30
	DefaultColumnWidth      = 100
	DefaultRowNumberWidth   = 40
	DefaultPaginationHeight = 42
	DefaultPageSize         = 30
	DefaultWheelStep        = 100
)

// DefaultPageSizeOptions are the page sizes offered when none are configured.
var DefaultPageSizeOptions = []int{30, 50, 80, 100}

// Cell describes one body cell handed to a ColItemRender hook.
type Cell struct {
	Row         int // Data row index
	Col         int // Visual column index
	Column      Column
	Value       any
	Rect        Rect
	Highlighted bool // Column or row highlighted
}

// HeadItemRender paints the content of one header cell.
type HeadItemRender func(c Canvas, col Column, rect Rect)

// ColItemRender paints the content of one body cell.
type ColItemRender func(c Canvas, cell Cell)

// RowNumRender paints the content of one gutter cell.
type RowNumRender func(c Canvas, row RowSpec, rect Rect)

// EmptyRender paints the body when there are no data rows.
type EmptyRender func(c Canvas, viewport Rect)

// RowNumberConfig configures the row-number gutter.
type RowNumberConfig struct {
	Width    float32 // Initial width
	MinWidth float32 // Floor applied while resizing
	Render   RowNumRender
}

// PageOptions configures the pagination footer. Total is the record count
// across all pages; the grid itself only shows the rows it is given.
type PageOptions struct {
	Current         int // 1-based
	PageSize        int
	Total           int
	PageSizeOptions []int
	Height          float32
}

// Option configures a Grid.
type Option func(*config)

type config struct {
	headHeight   float32
	minRowHeight float32
	minColWidth  float32
	wheelStep    float32

	rowNumbers bool
	rowNumber  RowNumberConfig

	pagination bool
	page       PageOptions

	headItemRender HeadItemRender
	colItemRender  ColItemRender
	emptyRender    EmptyRender

	style  Style
	events Events
}

func defaultConfig() config {
	return config{
		headHeight:   DefaultHeadHeight,
		minRowHeight: DefaultRowHeight,
		minColWidth:  DefaultColumnWidth,
		wheelStep:    DefaultWheelStep,
		rowNumbers:   true,
		rowNumber: RowNumberConfig{
			Width:    DefaultRowNumberWidth,
			MinWidth: DefaultRowNumberWidth,
		},
		pagination: true,
		page: PageOptions{
			Current:         1,
			PageSize:        DefaultPageSize,
			PageSizeOptions: DefaultPageSizeOptions,
			Height:          DefaultPaginationHeight,
		},
		style: DefaultStyle(),
	}
}

// WithHeadHeight sets the header row height.
func WithHeadHeight(h float32) Option {
	return func(c *config) {
		if h >= 0 {
			c.headHeight = h
		}
	}
}

// WithMinRowHeight sets the default and minimum row height.
func WithMinRowHeight(h float32) Option {
	return func(c *config) {
		if h > 0 {
			c.minRowHeight = h
		}
	}
}

// WithMinColWidth sets the minimum column width, used both for the initial
// layout and as the resize floor.
func WithMinColWidth(w float32) Option {
	return func(c *config) {
		if w > 0 {
			c.minColWidth = w
		}
	}
}

// WithWheelStep sets the distance scrolled per wheel notch.
func WithWheelStep(step float32) Option {
	return func(c *config) {
		if step > 0 {
			c.wheelStep = step
		}
	}
}

// WithRowNumbers shows or hides the row-number gutter.
func WithRowNumbers(enabled bool) Option {
	return func(c *config) {
		c.rowNumbers = enabled
	}
}

// WithRowNumberConfig enables the gutter with the given configuration.
// Zero fields keep their defaults.
func WithRowNumberConfig(rc RowNumberConfig) Option {
	return func(c *config) {
		c.rowNumbers = true
		if rc.Width > 0 {
			c.rowNumber.Width = rc.Width
		}
		if rc.MinWidth > 0 {
			c.rowNumber.MinWidth = rc.MinWidth
		}
		if rc.Render != nil {
			c.rowNumber.Render = rc.Render
		}
	}
}

// WithPagination shows or hides the pagination footer.
func WithPagination(enabled bool) Option {
	return func(c *config) {
		c.pagination = enabled
	}
}

// WithPageOptions enables pagination with the given options.
// Zero fields keep their defaults.
func WithPageOptions(po PageOptions) Option {
	return func(c *config) {
		c.pagination = true
		c.page = mergePageOptions(c.page, po)
	}
}

func mergePageOptions(base, po PageOptions) PageOptions {
	if po.Current > 0 {
		base.Current = po.Current
	}
	if po.PageSize > 0 {
		base.PageSize = po.PageSize
	}
	if po.Total >= 0 {
		base.Total = po.Total
	}
	if len(po.PageSizeOptions) > 0 {
		base.PageSizeOptions = append([]int(nil), po.PageSizeOptions...)
	}
	if po.Height > 0 {
		base.Height = po.Height
	}
	return base
}

// WithHeadItemRender replaces the default header cell painter.
func WithHeadItemRender(fn HeadItemRender) Option {
	return func(c *config) {
		c.headItemRender = fn
	}
}

// WithColItemRender replaces the default body cell painter.
func WithColItemRender(fn ColItemRender) Option {
	return func(c *config) {
		c.colItemRender = fn
	}
}

// WithEmptyRender sets the painter used when there are no rows.
func WithEmptyRender(fn EmptyRender) Option {
	return func(c *config) {
		c.emptyRender = fn
	}
}

// WithStyle sets the visual style.
func WithStyle(s Style) Option {
	return func(c *config) {
		c.style = s
	}
}

// WithEvents installs all event callbacks at once.
func WithEvents(e Events) Option {
	return func(c *config) {
		c.events = e
	}
}

// OnColumnWidthChange is called after a column resize commits.
func OnColumnWidthChange(fn func(index int, width float32)) Option {
	return func(c *config) {
		c.events.ColumnWidthChanged = fn
	}
}

// OnColumnOrderChange is called after two columns are swapped.
func OnColumnOrderChange(fn func(from, to int)) Option {
	return func(c *config) {
		c.events.ColumnOrderChanged = fn
	}
}

// OnColumnHighlight is called when the highlighted column changes.
func OnColumnHighlight(fn func(index int)) Option {
	return func(c *config) {
		c.events.ColumnHighlightChanged = fn
	}
}

// OnRowHeightChange is called after a row resize commits.
func OnRowHeightChange(fn func(index int, height float32)) Option {
	return func(c *config) {
		c.events.RowHeightChanged = fn
	}
}

// OnRowHighlight is called when the highlighted row changes.
func OnRowHighlight(fn func(index int)) Option {
	return func(c *config) {
		c.events.RowHighlightChanged = fn
	}
}

// OnGutterWidthChange is called after a gutter resize commits.
func OnGutterWidthChange(fn func(width float32)) Option {
	return func(c *config) {
		c.events.GutterWidthChanged = fn
	}
}

// OnScroll is called whenever the shared scroll offset changes.
func OnScroll(fn func(ScrollState)) Option {
	return func(c *config) {
		c.events.ScrollChanged = fn
	}
}

// OnPageChange is called when the user selects another page.
func OnPageChange(fn func(page, pageSize int)) Option {
	return func(c *config) {
		c.events.PageChanged = fn
	}
}

// OnPageSizeChange is called when the user picks another page size.
func OnPageSizeChange(fn func(page, pageSize int)) Option {
	return func(c *config) {
		c.events.PageSizeChanged = fn
	}
}
