package datagrid

import "testing"

func uniform(size float32) func(int) float32 {
	return func(int) float32 { return size }
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		name       string
		offset     float32
		viewport   float32
		count      int
		start, end int
	}{
		{"top", 0, 30, 100, 0, 3},
		{"partial rows at both edges", 25, 30, 100, 2, 6},
		{"past the end", 2000, 30, 100, 100, 100},
		{"empty viewport", 0, 0, 100, 0, 0},
		{"no items", 0, 30, 0, 0, 0},
		{"negative offset", -10, 30, 100, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := VisibleRange(tt.offset, tt.viewport, uniform(10), tt.count)
			if start != tt.start || end != tt.end {
				t.Errorf("Expected [%d, %d), got [%d, %d)", tt.start, tt.end, start, end)
			}
		})
	}
}

func TestListClipper_VariableSizes(t *testing.T) {
	sizes := []float32{10, 20, 30, 40}
	c := NewListClipper(len(sizes), func(i int) float32 { return sizes[i] }, 20, 15)

	if c.StartIdx != 1 || c.EndIdx != 3 {
		t.Fatalf("Expected [1, 3), got [%d, %d)", c.StartIdx, c.EndIdx)
	}
	if c.VisibleCount() != 2 {
		t.Errorf("Expected 2 visible, got %d", c.VisibleCount())
	}
	if c.ItemPos(1) != 10 || c.ItemPos(2) != 30 {
		t.Errorf("Expected positions 10 and 30, got %v and %v", c.ItemPos(1), c.ItemPos(2))
	}
	if c.ShouldRender(0) || c.ItemPos(0) != 0 {
		t.Error("Expected item 0 not rendered")
	}
}

func prefixTops(sizes []float32) func(int) float32 {
	tops := make([]float32, len(sizes)+1)
	for i, s := range sizes {
		tops[i+1] = tops[i] + s
	}
	return func(i int) float32 { return tops[i] }
}

func TestOffsetClipper_MatchesListClipper(t *testing.T) {
	sizes := []float32{10, 0, 20, 30, 0, 0, 40, 10, 25}
	size := func(i int) float32 { return sizes[i] }
	top := prefixTops(sizes)

	for _, viewport := range []float32{0, 5, 20, 60, 500} {
		for offset := float32(-10); offset <= 150; offset += 5 {
			want := NewListClipper(len(sizes), size, viewport, offset)
			got := NewOffsetClipper(len(sizes), top, viewport, offset)
			if got.StartIdx != want.StartIdx || got.EndIdx != want.EndIdx {
				t.Fatalf("viewport %v offset %v: expected [%d, %d), got [%d, %d)",
					viewport, offset, want.StartIdx, want.EndIdx, got.StartIdx, got.EndIdx)
			}
			for i := got.StartIdx; i < got.EndIdx; i++ {
				if got.ItemPos(i) != want.ItemPos(i) {
					t.Errorf("viewport %v offset %v: item %d at %v, want %v",
						viewport, offset, i, got.ItemPos(i), want.ItemPos(i))
				}
			}
		}
	}
}

func TestOffsetClipper_TouchesOnlyTheVisibleWindow(t *testing.T) {
	const count = 1_000_000
	calls := 0
	top := func(i int) float32 {
		calls++
		return float32(i) * 30
	}

	c := NewOffsetClipper(count, top, 300, 15_000_000)

	if c.StartIdx != 500_000 || c.EndIdx != 500_010 {
		t.Fatalf("Expected [500000, 500010), got [%d, %d)", c.StartIdx, c.EndIdx)
	}
	if calls > 100 {
		t.Errorf("Expected a logarithmic number of offset lookups, got %d", calls)
	}
}
