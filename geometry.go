package datagrid

import "sort"

// RowLookahead is the number of row specs pre-built beyond the known row count,
// so appended rows can be shown without a full re-layout.
const RowLookahead = 100

// ColumnSpec is a construction-time header: a display name and an opaque payload
// handed back to render hooks.
type ColumnSpec struct {
	Name string
	Data any
}

// Column is a laid-out header.
//
// Left is the running total of the widths before it. After a resize commit the
// owning Geometry reflows offsets; a slice returned by ResizeColumn still
// carries the stale offsets until that pass runs.
type Column struct {
	Name        string
	DataIndex   int // Index into each data row; travels with the column on reorder
	Width       float32
	Left        float32
	Highlighted bool
	Data        any
}

// RowSpec holds the geometry of one row. Index is the 1-based ordinal shown in
// the gutter.
type RowSpec struct {
	Index       int
	Height      float32
	Highlighted bool
}

// ColumnsFromSpecs converts header specs into unsized columns whose DataIndex
// matches their position.
func ColumnsFromSpecs(specs []ColumnSpec) []Column {
	cols := make([]Column, len(specs))
	for i, s := range specs {
		cols[i] = Column{Name: s.Name, DataIndex: i, Data: s.Data}
	}
	return cols
}

// LayoutColumns distributes totalWidth across the columns.
// Each column gets floor(totalWidth/count), raised to minWidth; the last
// column also absorbs the remainder so that, whenever the share is not
// clamped, the widths sum to totalWidth exactly. Offsets are assigned as a
// running total of the pre-remainder share. Names, payloads, DataIndex and
// highlight flags are kept.
func LayoutColumns(cols []Column, totalWidth, minWidth float32) []Column {
	n := len(cols)
	if n == 0 {
		return []Column{}
	}
	if totalWidth < 0 {
		totalWidth = 0
	}

	share := floorf(totalWidth / float32(n))
	residual := totalWidth - share*float32(n)
	width := maxf(share, minWidth)

	out := make([]Column, n)
	left := float32(0)
	for i, c := range cols {
		c.Width = width
		if i == n-1 {
			c.Width = width + residual
		}
		c.Left = left
		out[i] = c
		left += width
	}
	return out
}

// ResizeColumn returns a copy of cols with column index widened by delta and
// floored at minWidth. Offsets of later columns are left as they were.
// An out-of-range index returns an unchanged copy.
func ResizeColumn(cols []Column, index int, delta, minWidth float32) []Column {
	out := append([]Column(nil), cols...)
	if index < 0 || index >= len(out) {
		gridLogger.Debug("resize column ignored", "index", index, "count", len(out))
		return out
	}
	out[index].Width = maxf(out[index].Width+delta, minWidth)
	return out
}

// ReorderColumn swaps the columns at from and to. It is a swap, not a move:
// the columns in between keep their positions. All highlights are cleared and
// offsets recomputed.
func ReorderColumn(cols []Column, from, to int) []Column {
	out := append([]Column(nil), cols...)
	if from < 0 || from >= len(out) || to < 0 || to >= len(out) {
		gridLogger.Debug("reorder column ignored", "from", from, "to", to, "count", len(out))
		return out
	}
	out[from], out[to] = out[to], out[from]
	for i := range out {
		out[i].Highlighted = false
	}
	reflowColumns(out)
	return out
}

// reflowColumns rebuilds Left as the prefix sum of Width in place.
func reflowColumns(cols []Column) {
	left := float32(0)
	for i := range cols {
		cols[i].Left = left
		left += cols[i].Width
	}
}

// RowHeight returns the height of the row at index, or 0 when out of range.
func RowHeight(rows []RowSpec, index int) float32 {
	if index < 0 || index >= len(rows) {
		return 0
	}
	return rows[index].Height
}

// ResizeRow returns the row at index with its height changed by delta and
// floored at minHeight. ok is false when index is out of range.
func ResizeRow(rows []RowSpec, index int, delta, minHeight float32) (row RowSpec, ok bool) {
	if index < 0 || index >= len(rows) {
		gridLogger.Debug("resize row ignored", "index", index, "count", len(rows))
		return RowSpec{}, false
	}
	row = rows[index]
	row.Height = maxf(row.Height+delta, minHeight)
	return row, true
}

// GrowRowSpecs makes sure at least required+RowLookahead specs exist. Existing
// specs keep their heights; new ones get defaultHeight and the next ordinal.
func GrowRowSpecs(rows []RowSpec, required int, defaultHeight float32) []RowSpec {
	want := required + RowLookahead
	if len(rows) >= want {
		return rows
	}
	out := make([]RowSpec, len(rows), want)
	copy(out, rows)
	for i := len(rows); i < want; i++ {
		out = append(out, RowSpec{Index: i + 1, Height: defaultHeight})
	}
	return out
}

// Geometry is the single owner of column and row dimensions. Callers get
// copies; every mutation goes through its methods.
type Geometry struct {
	columns  []Column
	rows     []RowSpec
	rowCount int // Rows that actually hold data; the rest is lookahead

	minColWidth  float32
	minRowHeight float32

	// rowTops[i] is the top of row i; rowTops[len] is the total. Rebuilt on
	// demand after any row mutation.
	rowTops   []float32
	topsStale bool
}

// NewGeometry creates a geometry with the given floors. minRowHeight is also
// the height of newly created rows.
func NewGeometry(minColWidth, minRowHeight float32) *Geometry {
	return &Geometry{
		minColWidth:  minColWidth,
		minRowHeight: minRowHeight,
		topsStale:    true,
	}
}

// SetColumns replaces the header set wholesale and lays it out over width.
func (g *Geometry) SetColumns(specs []ColumnSpec, width float32) {
	g.columns = LayoutColumns(ColumnsFromSpecs(specs), width, g.minColWidth)
}

// Layout redistributes the current columns, in their current order, over width.
func (g *Geometry) Layout(width float32) {
	g.columns = LayoutColumns(g.columns, width, g.minColWidth)
}

// SetRowCount records the number of data rows and grows the row specs.
func (g *Geometry) SetRowCount(n int) {
	if n < 0 {
		n = 0
	}
	g.rowCount = n
	g.rows = GrowRowSpecs(g.rows, n, g.minRowHeight)
	g.topsStale = true
}

// Clone returns an independent copy. Changes to either side do not reach
// the other.
func (g *Geometry) Clone() *Geometry {
	return &Geometry{
		columns:      g.Columns(),
		rows:         g.Rows(),
		rowCount:     g.rowCount,
		minColWidth:  g.minColWidth,
		minRowHeight: g.minRowHeight,
		topsStale:    true,
	}
}

// Columns returns a copy of the laid-out columns.
func (g *Geometry) Columns() []Column {
	return append([]Column(nil), g.columns...)
}

// Column returns the column at index.
func (g *Geometry) Column(index int) (Column, bool) {
	if index < 0 || index >= len(g.columns) {
		return Column{}, false
	}
	return g.columns[index], true
}

// ColumnCount returns the number of columns.
func (g *Geometry) ColumnCount() int { return len(g.columns) }

// Rows returns a copy of the row specs, lookahead included.
func (g *Geometry) Rows() []RowSpec {
	return append([]RowSpec(nil), g.rows...)
}

// Row returns the row spec at index.
func (g *Geometry) Row(index int) (RowSpec, bool) {
	if index < 0 || index >= len(g.rows) {
		return RowSpec{}, false
	}
	return g.rows[index], true
}

// RowCount returns the number of data rows.
func (g *Geometry) RowCount() int { return g.rowCount }

// ColumnWidth returns the width of column index, or 0 when out of range.
func (g *Geometry) ColumnWidth(index int) float32 {
	if index < 0 || index >= len(g.columns) {
		return 0
	}
	return g.columns[index].Width
}

// RowHeight returns the height of row index, or 0 when out of range.
func (g *Geometry) RowHeight(index int) float32 {
	return RowHeight(g.rows, index)
}

// ResizeColumn commits a width delta and reflows offsets.
func (g *Geometry) ResizeColumn(index int, delta float32) (float32, bool) {
	if index < 0 || index >= len(g.columns) {
		gridLogger.Debug("resize column ignored", "index", index, "count", len(g.columns))
		return 0, false
	}
	g.columns = ResizeColumn(g.columns, index, delta, g.minColWidth)
	reflowColumns(g.columns)
	return g.columns[index].Width, true
}

// SwapColumns commits a reorder. Equal or out-of-range indices are no-ops.
func (g *Geometry) SwapColumns(from, to int) bool {
	if from == to || from < 0 || to < 0 || from >= len(g.columns) || to >= len(g.columns) {
		return false
	}
	g.columns = ReorderColumn(g.columns, from, to)
	return true
}

// HighlightColumn marks exactly one column, or none when index is negative.
func (g *Geometry) HighlightColumn(index int) {
	for i := range g.columns {
		g.columns[i].Highlighted = i == index
	}
}

// HighlightedColumn returns the highlighted column index or -1.
func (g *Geometry) HighlightedColumn() int {
	for i, c := range g.columns {
		if c.Highlighted {
			return i
		}
	}
	return -1
}

// ResizeRow commits a height delta for row index.
func (g *Geometry) ResizeRow(index int, delta float32) (float32, bool) {
	row, ok := ResizeRow(g.rows, index, delta, g.minRowHeight)
	if !ok {
		return 0, false
	}
	g.rows[index] = row
	g.topsStale = true
	return row.Height, true
}

// HighlightRow marks exactly one row, or none when index is negative.
func (g *Geometry) HighlightRow(index int) {
	for i := range g.rows {
		g.rows[i].Highlighted = i == index
	}
}

// HighlightedRow returns the highlighted row index or -1.
func (g *Geometry) HighlightedRow() int {
	for i, r := range g.rows {
		if r.Highlighted {
			return i
		}
	}
	return -1
}

// ContentWidth returns the sum of all column widths.
func (g *Geometry) ContentWidth() float32 {
	total := float32(0)
	for _, c := range g.columns {
		total += c.Width
	}
	return total
}

// ContentHeight returns the summed height of the data rows.
func (g *Geometry) ContentHeight() float32 {
	return g.RowTop(g.rowCount)
}

// RowTop returns the top offset of row index as a prefix sum of the heights
// before it. index may equal the number of specs to get the total.
func (g *Geometry) RowTop(index int) float32 {
	g.buildTops()
	if index <= 0 {
		return 0
	}
	if index >= len(g.rowTops) {
		index = len(g.rowTops) - 1
	}
	return g.rowTops[index]
}

// RowAt returns the index of the row spec containing offset y, lookahead rows
// included, or -1 past the last spec.
func (g *Geometry) RowAt(y float32) int {
	n := len(g.rows)
	if y < 0 || n == 0 {
		return -1
	}
	g.buildTops()
	i := sort.Search(n, func(i int) bool { return g.rowTops[i+1] > y })
	if i >= n {
		return -1
	}
	return i
}

// ColumnAt returns the column index containing offset x, or -1.
func (g *Geometry) ColumnAt(x float32) int {
	if x < 0 {
		return -1
	}
	for i, c := range g.columns {
		if x < c.Left+c.Width {
			return i
		}
	}
	return -1
}

func (g *Geometry) buildTops() {
	if !g.topsStale && len(g.rowTops) == len(g.rows)+1 {
		return
	}
	tops := g.rowTops[:0]
	if cap(tops) < len(g.rows)+1 {
		tops = make([]float32, 0, len(g.rows)+1)
	}
	top := float32(0)
	tops = append(tops, 0)
	for _, r := range g.rows {
		top += r.Height
		tops = append(tops, top)
	}
	g.rowTops = tops
	g.topsStale = false
}
