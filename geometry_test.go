package datagrid

import "testing"

func specs(names ...string) []ColumnSpec {
	out := make([]ColumnSpec, len(names))
	for i, n := range names {
		out[i] = ColumnSpec{Name: n}
	}
	return out
}

func widths(cols []Column) []float32 {
	out := make([]float32, len(cols))
	for i, c := range cols {
		out[i] = c.Width
	}
	return out
}

func lefts(cols []Column) []float32 {
	out := make([]float32, len(cols))
	for i, c := range cols {
		out[i] = c.Left
	}
	return out
}

func equalFloats(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestLayoutColumns_RemainderGoesToLast(t *testing.T) {
	cols := LayoutColumns(ColumnsFromSpecs(specs("A", "B", "C")), 100, 0)

	if got, want := widths(cols), []float32{33, 33, 34}; !equalFloats(got, want) {
		t.Errorf("Expected widths %v, got %v", want, got)
	}
	if got, want := lefts(cols), []float32{0, 33, 66}; !equalFloats(got, want) {
		t.Errorf("Expected offsets %v, got %v", want, got)
	}
}

func TestLayoutColumns_WidthConservation(t *testing.T) {
	for _, total := range []float32{700, 1000, 1001, 1999} {
		cols := LayoutColumns(ColumnsFromSpecs(specs("A", "B", "C", "D", "E", "F", "G")), total, 100)
		sum := float32(0)
		for _, c := range cols {
			sum += c.Width
		}
		if sum != total {
			t.Errorf("total %v: expected widths to sum to it, got %v", total, sum)
		}
	}
}

func TestLayoutColumns_MinWidthClamp(t *testing.T) {
	cols := LayoutColumns(ColumnsFromSpecs(specs("A", "B", "C")), 200, 100)

	if got, want := widths(cols), []float32{100, 100, 102}; !equalFloats(got, want) {
		t.Errorf("Expected widths %v, got %v", want, got)
	}
	if got, want := lefts(cols), []float32{0, 100, 200}; !equalFloats(got, want) {
		t.Errorf("Expected offsets %v, got %v", want, got)
	}
}

func TestLayoutColumns_Empty(t *testing.T) {
	cols := LayoutColumns(nil, 500, 100)
	if cols == nil || len(cols) != 0 {
		t.Errorf("Expected empty non-nil slice, got %#v", cols)
	}
}

func TestLayoutColumns_KeepsIdentity(t *testing.T) {
	cols := ColumnsFromSpecs([]ColumnSpec{{Name: "A", Data: "x"}, {Name: "B"}})
	cols[0], cols[1] = cols[1], cols[0]
	cols[1].Highlighted = true

	out := LayoutColumns(cols, 400, 0)
	if out[0].Name != "B" || out[0].DataIndex != 1 {
		t.Errorf("Expected B with data index 1 first, got %+v", out[0])
	}
	if out[1].Data != "x" || !out[1].Highlighted {
		t.Errorf("Expected payload and highlight kept, got %+v", out[1])
	}
}

func TestResizeColumn_FloorAndStaleOffsets(t *testing.T) {
	cols := LayoutColumns(ColumnsFromSpecs(specs("A", "B", "C")), 100, 0)

	out := ResizeColumn(cols, 1, -500, 20)
	if out[1].Width != 20 {
		t.Errorf("Expected width floored to 20, got %v", out[1].Width)
	}
	if out[2].Left != 66 {
		t.Errorf("Expected later offsets untouched, got %v", out[2].Left)
	}
	if cols[1].Width != 33 {
		t.Errorf("Expected input slice unchanged, got %v", cols[1].Width)
	}

	same := ResizeColumn(cols, 5, 10, 20)
	if !equalFloats(widths(same), widths(cols)) {
		t.Errorf("Expected out-of-range resize to return an equal copy")
	}
}

func TestReorderColumn_SwapClearsHighlights(t *testing.T) {
	cols := LayoutColumns(ColumnsFromSpecs(specs("A", "B", "C")), 100, 0)
	cols[1].Highlighted = true

	out := ReorderColumn(cols, 0, 2)

	names := []string{out[0].Name, out[1].Name, out[2].Name}
	if names[0] != "C" || names[1] != "B" || names[2] != "A" {
		t.Errorf("Expected [C B A], got %v", names)
	}
	for i, c := range out {
		if c.Highlighted {
			t.Errorf("Expected column %d not highlighted", i)
		}
	}
	if got, want := lefts(out), []float32{0, 34, 67}; !equalFloats(got, want) {
		t.Errorf("Expected offsets %v, got %v", want, got)
	}
	if out[0].DataIndex != 2 {
		t.Errorf("Expected data index to travel with the column, got %d", out[0].DataIndex)
	}
}

func TestReorderColumn_DoubleSwapIsIdentity(t *testing.T) {
	cols := LayoutColumns(ColumnsFromSpecs(specs("A", "B", "C", "D")), 400, 0)

	out := ReorderColumn(ReorderColumn(cols, 1, 3), 1, 3)
	for i := range cols {
		if out[i].Name != cols[i].Name || out[i].Width != cols[i].Width || out[i].Left != cols[i].Left {
			t.Errorf("index %d: expected %+v, got %+v", i, cols[i], out[i])
		}
	}
}

func TestResizeRow(t *testing.T) {
	rows := GrowRowSpecs(nil, 2, 30)

	row, ok := ResizeRow(rows, 1, -50, 30)
	if !ok || row.Height != 30 {
		t.Errorf("Expected height floored to 30, got %v (ok=%v)", row.Height, ok)
	}
	row, _ = ResizeRow(rows, 1, 10, 30)
	if row.Height != 40 {
		t.Errorf("Expected height 40, got %v", row.Height)
	}
	if rows[1].Height != 30 {
		t.Errorf("Expected input unchanged, got %v", rows[1].Height)
	}
	if _, ok := ResizeRow(rows, len(rows), 10, 30); ok {
		t.Error("Expected out-of-range resize to report false")
	}
}

func TestGrowRowSpecs(t *testing.T) {
	rows := []RowSpec{{Index: 1, Height: 50}, {Index: 2, Height: 30}, {Index: 3, Height: 30}}

	out := GrowRowSpecs(rows, 5, 30)
	if len(out) != 5+RowLookahead {
		t.Fatalf("Expected %d specs, got %d", 5+RowLookahead, len(out))
	}
	if out[0].Height != 50 {
		t.Errorf("Expected existing height kept, got %v", out[0].Height)
	}
	last := out[len(out)-1]
	if last.Index != 5+RowLookahead || last.Height != 30 {
		t.Errorf("Expected last spec {%d 30}, got %+v", 5+RowLookahead, last)
	}

	again := GrowRowSpecs(out, 5, 30)
	if len(again) != len(out) {
		t.Errorf("Expected no growth when enough specs exist, got %d", len(again))
	}
}

func TestGeometry_ResizeColumnReflows(t *testing.T) {
	g := NewGeometry(100, 30)
	g.SetColumns(specs("A", "B", "C"), 600)

	w, ok := g.ResizeColumn(0, 50)
	if !ok || w != 250 {
		t.Fatalf("Expected width 250, got %v (ok=%v)", w, ok)
	}
	if got, want := lefts(g.Columns()), []float32{0, 250, 450}; !equalFloats(got, want) {
		t.Errorf("Expected offsets %v, got %v", want, got)
	}
	if g.ContentWidth() != 850 {
		t.Errorf("Expected content width 850, got %v", g.ContentWidth())
	}
}

func TestGeometry_RowOffsets(t *testing.T) {
	g := NewGeometry(100, 30)
	g.SetRowCount(3)

	if g.ContentHeight() != 90 {
		t.Errorf("Expected content height 90, got %v", g.ContentHeight())
	}
	if _, ok := g.ResizeRow(1, 20); !ok {
		t.Fatal("Expected row resize to succeed")
	}
	if g.RowTop(2) != 80 {
		t.Errorf("Expected row 2 at 80, got %v", g.RowTop(2))
	}
	if g.ContentHeight() != 110 {
		t.Errorf("Expected content height 110, got %v", g.ContentHeight())
	}

	cases := []struct {
		y    float32
		want int
	}{
		{-1, -1}, {0, 0}, {29.9, 0}, {30, 1}, {79, 1}, {80, 2}, {110, 3},
	}
	for _, tc := range cases {
		if got := g.RowAt(tc.y); got != tc.want {
			t.Errorf("RowAt(%v): expected %d, got %d", tc.y, tc.want, got)
		}
	}
}

func TestGeometry_SetRowCountKeepsHeights(t *testing.T) {
	g := NewGeometry(100, 30)
	g.SetRowCount(2)
	g.ResizeRow(0, 15)
	g.SetRowCount(400)

	if g.RowHeight(0) != 45 {
		t.Errorf("Expected resized height kept, got %v", g.RowHeight(0))
	}
	if len(g.Rows()) != 400+RowLookahead {
		t.Errorf("Expected %d specs, got %d", 400+RowLookahead, len(g.Rows()))
	}
}

func TestGeometry_LayoutKeepsOrderAndHighlight(t *testing.T) {
	g := NewGeometry(100, 30)
	g.SetColumns(specs("A", "B", "C"), 600)
	g.SwapColumns(0, 2)
	g.HighlightColumn(1)

	g.Layout(900)

	cols := g.Columns()
	if cols[0].Name != "C" || cols[0].Width != 300 {
		t.Errorf("Expected C at 300 first, got %+v", cols[0])
	}
	if g.HighlightedColumn() != 1 {
		t.Errorf("Expected highlight on 1, got %d", g.HighlightedColumn())
	}
}

func TestGeometry_SwapColumnsNoOps(t *testing.T) {
	g := NewGeometry(100, 30)
	g.SetColumns(specs("A", "B"), 200)

	if g.SwapColumns(1, 1) {
		t.Error("Expected swap with itself to be a no-op")
	}
	if g.SwapColumns(0, 2) {
		t.Error("Expected out-of-range swap to be a no-op")
	}
}

func TestGeometry_HighlightExclusive(t *testing.T) {
	g := NewGeometry(100, 30)
	g.SetColumns(specs("A", "B", "C"), 300)
	g.SetRowCount(5)

	g.HighlightColumn(0)
	g.HighlightColumn(2)
	count := 0
	for _, c := range g.Columns() {
		if c.Highlighted {
			count++
		}
	}
	if count != 1 || g.HighlightedColumn() != 2 {
		t.Errorf("Expected only column 2 highlighted, got %d highlighted, index %d", count, g.HighlightedColumn())
	}

	g.HighlightRow(3)
	g.HighlightRow(-1)
	if g.HighlightedRow() != -1 {
		t.Errorf("Expected no highlighted row, got %d", g.HighlightedRow())
	}
}

func TestGeometry_CloneIsIndependent(t *testing.T) {
	g := NewGeometry(100, 30)
	g.SetColumns(specs("A", "B", "C"), 600)
	g.SetRowCount(3)

	c := g.Clone()
	c.HighlightColumn(2)
	c.ResizeRow(0, 20)
	c.SetRowCount(10)

	if g.HighlightedColumn() != -1 || g.RowHeight(0) != 30 || g.RowCount() != 3 {
		t.Errorf("Expected original untouched, got highlight %d height %v rows %d",
			g.HighlightedColumn(), g.RowHeight(0), g.RowCount())
	}
	if g.ContentHeight() != 90 {
		t.Errorf("Expected original content height 90, got %v", g.ContentHeight())
	}
	if c.HighlightedColumn() != 2 || c.ContentHeight() != 50+9*30 {
		t.Errorf("Expected clone mutated, got highlight %d height %v", c.HighlightedColumn(), c.ContentHeight())
	}
}
