// Package terminal draws a datagrid into a tcell screen and feeds it tcell
// mouse and key events. One grid unit is one character cell.
package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/go-theft-auto/datagrid"
)

// Box-drawing runes used for grid lines.
const (
	lineH     = '─'
	lineV     = '│'
	lineCross = '┼'
)

// Canvas implements datagrid.Canvas on a tcell screen. Rectangles paint cell
// backgrounds, lines become box-drawing runes and text keeps the background
// already under it.
type Canvas struct {
	screen tcell.Screen
	clips  [][4]float32
}

// NewCanvas creates a canvas over screen.
func NewCanvas(screen tcell.Screen) *Canvas {
	return &Canvas{screen: screen}
}

// Reset clears the clip stack. Call it before each frame.
func (c *Canvas) Reset() {
	c.clips = c.clips[:0]
}

// PushClipRect intersects the clip with the given bounds.
func (c *Canvas) PushClipRect(x1, y1, x2, y2 float32) {
	if n := len(c.clips); n > 0 {
		cur := c.clips[n-1]
		x1 = max(x1, cur[0])
		y1 = max(y1, cur[1])
		x2 = min(x2, cur[2])
		y2 = min(y2, cur[3])
	}
	c.clips = append(c.clips, [4]float32{x1, y1, x2, y2})
}

// PopClipRect restores the previous clip.
func (c *Canvas) PopClipRect() {
	if n := len(c.clips); n > 0 {
		c.clips = c.clips[:n-1]
	}
}

// visible reports whether the cell at (x, y) is inside the clip and screen.
// A cell counts as inside when its centre is.
func (c *Canvas) visible(x, y int) bool {
	w, h := c.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return false
	}
	if n := len(c.clips); n > 0 {
		cl := c.clips[n-1]
		cx, cy := float32(x)+0.5, float32(y)+0.5
		return cx >= cl[0] && cx < cl[2] && cy >= cl[1] && cy < cl[3]
	}
	return true
}

// AddRect fills the covered cells with color, clearing their content.
func (c *Canvas) AddRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 || w <= 0 || h <= 0 {
		return
	}
	bg := toColor(color)
	x0, x1 := cellSpan(x, x+w)
	y0, y1 := cellSpan(y, y+h)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			if !c.visible(cx, cy) {
				continue
			}
			_, _, st, _ := c.screen.GetContent(cx, cy)
			c.screen.SetContent(cx, cy, ' ', nil, st.Background(bg))
		}
	}
}

// AddLine draws a horizontal or vertical line. Diagonal lines are ignored.
func (c *Canvas) AddLine(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}
	fg := toColor(color)
	switch {
	case y1 == y2:
		y := int(math.Floor(float64(y1)))
		a, b := cellSpan(min(x1, x2), max(x1, x2))
		for x := a; x < b; x++ {
			c.putLine(x, y, lineH, fg)
		}
	case x1 == x2:
		x := int(math.Floor(float64(x1)))
		a, b := cellSpan(min(y1, y2), max(y1, y2))
		for y := a; y < b; y++ {
			c.putLine(x, y, lineV, fg)
		}
	}
}

func (c *Canvas) putLine(x, y int, r rune, fg tcell.Color) {
	if !c.visible(x, y) {
		return
	}
	prev, _, st, _ := c.screen.GetContent(x, y)
	if (prev == lineH && r == lineV) || (prev == lineV && r == lineH) || prev == lineCross {
		r = lineCross
	}
	c.screen.SetContent(x, y, r, nil, st.Foreground(fg))
}

// AddText writes text starting at the cell containing (x, y). Wide runes
// take two cells.
func (c *Canvas) AddText(x, y float32, text string, color uint32) {
	if color&0xFF000000 == 0 || text == "" {
		return
	}
	fg := toColor(color)
	cx := int(math.Floor(float64(x)))
	cy := int(math.Floor(float64(y)))
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if c.visible(cx, cy) && (w == 1 || c.visible(cx+1, cy)) {
			_, _, st, _ := c.screen.GetContent(cx, cy)
			c.screen.SetContent(cx, cy, r, nil, st.Foreground(fg))
		}
		cx += w
	}
}

// MeasureText returns the width of text in cells and a height of one row.
func (c *Canvas) MeasureText(text string) datagrid.Vec2 {
	return datagrid.Vec2{X: float32(runewidth.StringWidth(text)), Y: 1}
}

// cellSpan maps the half-open range [a, b) to the cells whose centres fall
// inside it.
func cellSpan(a, b float32) (int, int) {
	return int(math.Floor(float64(a) + 0.5)), int(math.Floor(float64(b) + 0.5))
}

// toColor converts a packed 0xAABBGGRR color to a tcell RGB color.
func toColor(c uint32) tcell.Color {
	r, g, b, _ := datagrid.UnpackRGBA(c)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

var _ datagrid.Canvas = (*Canvas)(nil)
