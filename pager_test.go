package datagrid

import (
	"strings"
	"testing"
)

func labels(p *Pager) string {
	items := p.Items()
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Label(p.PageSize())
		if it.Current {
			out[i] = "[" + out[i] + "]"
		}
		if it.Disabled {
			out[i] = "(" + out[i] + ")"
		}
	}
	return strings.Join(out, " ")
}

func TestPager_Items(t *testing.T) {
	tests := []struct {
		current int
		total   int
		want    string
	}{
		{1, 305, "(<) [1] 2 3 >> 11 > 30 / page"},
		{4, 305, "< 1 2 3 [4] 5 6 >> 11 > 30 / page"},
		{6, 305, "< 1 << 4 5 [6] 7 8 >> 11 > 30 / page"},
		{11, 305, "< 1 << 9 10 [11] (>) 30 / page"},
		{1, 0, "(<) (>) 30 / page"},
		{1, 30, "(<) [1] (>) 30 / page"},
	}

	for _, tt := range tests {
		p := NewPager(PageOptions{Current: tt.current, PageSize: 30, Total: tt.total})
		if got := labels(p); got != tt.want {
			t.Errorf("current %d of %d:\n got  %q\n want %q", tt.current, tt.total, got, tt.want)
		}
	}
}

func TestPager_Navigation(t *testing.T) {
	var changes [][2]int
	p := NewPager(PageOptions{Current: 1, PageSize: 30, Total: 305})
	p.onChange = func(page, size int) { changes = append(changes, [2]int{page, size}) }

	if p.Prev() {
		t.Error("Expected prev on page 1 to be a no-op")
	}
	p.Next()
	p.Prev()
	if p.Current() != 1 {
		t.Errorf("Expected to be back on page 1, got %d", p.Current())
	}

	p.Select(10)
	p.Next()
	if p.Current() != 11 {
		t.Errorf("Expected next to reach the last page, got %d", p.Current())
	}
	if p.Next() {
		t.Error("Expected next on the last page to be a no-op")
	}

	p.Select(8)
	p.JumpForward()
	if p.Current() != 11 {
		t.Errorf("Expected jump forward clamped to 11, got %d", p.Current())
	}
	p.Select(3)
	p.JumpBack()
	if p.Current() != 1 {
		t.Errorf("Expected jump back clamped to 1, got %d", p.Current())
	}

	if p.Select(99); p.Current() != 11 {
		t.Errorf("Expected select clamped to 11, got %d", p.Current())
	}
	if p.Select(11) {
		t.Error("Expected selecting the current page to be a no-op")
	}

	last := changes[len(changes)-1]
	if last != [2]int{11, 30} {
		t.Errorf("Expected last change {11 30}, got %v", last)
	}
}

func TestPager_PageSize(t *testing.T) {
	var sizes [][2]int
	p := NewPager(PageOptions{Current: 11, PageSize: 30, Total: 305})
	p.onSizeChange = func(page, size int) { sizes = append(sizes, [2]int{page, size}) }

	p.SetPageSize(100)
	if p.Current() != 4 {
		t.Errorf("Expected current pulled back to 4, got %d", p.Current())
	}
	if len(sizes) != 1 || sizes[0] != [2]int{4, 100} {
		t.Errorf("Expected size change {4 100}, got %v", sizes)
	}

	p.CyclePageSize()
	if p.PageSize() != 30 {
		t.Errorf("Expected cycle to wrap to 30, got %d", p.PageSize())
	}
	p.CyclePageSize()
	if p.PageSize() != 50 {
		t.Errorf("Expected 50, got %d", p.PageSize())
	}

	if p.SetPageSize(0) || p.SetPageSize(50) {
		t.Error("Expected invalid or unchanged size to be refused")
	}
}

func TestPager_ActivateDisabled(t *testing.T) {
	p := NewPager(PageOptions{Current: 1, PageSize: 30, Total: 305})

	if p.Activate(PageItem{Kind: PagePrev, Disabled: true}) {
		t.Error("Expected disabled item to do nothing")
	}
	if !p.Activate(PageItem{Kind: PageNumber, Page: 3}) || p.Current() != 3 {
		t.Errorf("Expected page 3, got %d", p.Current())
	}
}
