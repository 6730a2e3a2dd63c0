package datagrid

// Style defines the visual appearance and interaction metrics of the grid.
// Pixel hosts use DefaultStyle; terminal hosts use TerminalStyle, where one
// unit is one character cell.
type Style struct {
	// Colors
	TextColor         uint32
	TextDisabledColor uint32
	BackgroundColor   uint32
	BorderColor       uint32 // Grid lines between cells

	// Header
	HeaderBgColor   uint32
	HeaderTextColor uint32 // 0 = use TextColor

	// Gutter (row numbers)
	GutterBgColor   uint32
	GutterTextColor uint32 // 0 = use TextDisabledColor

	// Rows
	RowBgAltColor      uint32 // Striped rows
	HighlightBgColor   uint32 // Highlighted column or row
	HighlightTextColor uint32

	// Drag feedback
	HandleColor uint32 // Resize handle when idle
	MarkerColor uint32 // Live resize marker line

	// Footer
	FooterBgColor     uint32
	PageCurrentColor  uint32
	PageDisabledColor uint32

	// Scrollbar
	ScrollbarBgColor   uint32
	ScrollbarGrabColor uint32

	// Sizing
	FontScale   float32
	CharWidth   float32
	CharHeight  float32
	CellPadding float32 // Horizontal padding inside a cell

	// Interaction metrics
	HandleSize    float32 // Grab tolerance around a resize edge
	DragThreshold float32 // Pointer travel that turns a header press into a reorder
	MarkerWidth   float32
	ScrollbarSize float32
	PageItemGap   float32
}

// DefaultStyle returns the default style for pixel-based hosts.
func DefaultStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,
		BackgroundColor:   RGBA(24, 24, 26, 255),
		BorderColor:       RGBA(70, 70, 70, 255),

		HeaderBgColor:   RGBA(40, 40, 45, 255),
		HeaderTextColor: 0,

		GutterBgColor:   RGBA(34, 34, 38, 255),
		GutterTextColor: 0,

		RowBgAltColor:      RGBA(32, 32, 34, 255),
		HighlightBgColor:   RGBA(50, 100, 150, 255),
		HighlightTextColor: ColorWhite,

		HandleColor: RGBA(90, 90, 90, 255),
		MarkerColor: RGBA(0, 180, 255, 220),

		FooterBgColor:     RGBA(30, 30, 33, 255),
		PageCurrentColor:  RGBA(255, 200, 0, 255),
		PageDisabledColor: RGBA(90, 90, 90, 255),

		ScrollbarBgColor:   RGBA(30, 30, 30, 255),
		ScrollbarGrabColor: RGBA(80, 80, 80, 255),

		FontScale:   1.0,
		CharWidth:   8,
		CharHeight:  8,
		CellPadding: 6,

		HandleSize:    3,
		DragThreshold: 4,
		MarkerWidth:   2,
		ScrollbarSize: 8,
		PageItemGap:   6,
	}
}

// TerminalStyle returns a style measured in character cells.
// Combine it with cell-sized options such as WithHeadHeight(1).
func TerminalStyle() Style {
	s := DefaultStyle()
	s.CharWidth = 1
	s.CharHeight = 1
	s.CellPadding = 1
	s.HandleSize = 0.5
	s.DragThreshold = 1
	s.MarkerWidth = 1
	s.ScrollbarSize = 1
	s.PageItemGap = 1
	return s
}

// headerText returns the header text color, falling back to TextColor.
func (s Style) headerText() uint32 {
	if s.HeaderTextColor != 0 {
		return s.HeaderTextColor
	}
	return s.TextColor
}

// gutterText returns the gutter text color, falling back to TextDisabledColor.
func (s Style) gutterText() uint32 {
	if s.GutterTextColor != 0 {
		return s.GutterTextColor
	}
	return s.TextDisabledColor
}
