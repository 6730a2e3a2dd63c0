package datagrid

// Scrollbar mirrors the shared scroll offset along one axis. Clicking the
// track above or below the thumb pages by one viewport.
type Scrollbar struct {
	Vertical bool
	track    Rect
}

// layout places the bar along the right or bottom edge of viewport.
func (s *Scrollbar) layout(viewport Rect, size float32) {
	if s.Vertical {
		s.track = Rect{X: viewport.Right() - size, Y: viewport.Y, W: size, H: viewport.H}
		return
	}
	s.track = Rect{X: viewport.X, Y: viewport.Bottom() - size, W: viewport.W, H: size}
}

// Track returns the bar bounds.
func (s *Scrollbar) Track() Rect { return s.track }

// metrics returns the offset, maximum offset and viewport length along the
// bar's axis.
func (s *Scrollbar) metrics(sc *ScrollCoordinator) (offset, maxOffset, viewport float32) {
	st := sc.State()
	if s.Vertical {
		return st.Top, sc.MaxTop(), sc.bounds.ViewportSize().Y
	}
	return st.Left, sc.MaxLeft(), sc.bounds.ViewportSize().X
}

// Visible reports whether there is anything to scroll.
func (s *Scrollbar) Visible(sc *ScrollCoordinator) bool {
	_, maxOffset, _ := s.metrics(sc)
	return maxOffset > 0 && s.track.W > 0 && s.track.H > 0
}

// Thumb returns the thumb rectangle for the current offset.
func (s *Scrollbar) Thumb(sc *ScrollCoordinator) Rect {
	offset, maxOffset, viewport := s.metrics(sc)
	length := s.track.H
	if !s.Vertical {
		length = s.track.W
	}
	content := viewport + maxOffset
	if content <= 0 || length <= 0 {
		return Rect{}
	}
	thumb := maxf(length*viewport/content, minf(length, 2*s.thickness()))
	pos := float32(0)
	if maxOffset > 0 {
		pos = (length - thumb) * offset / maxOffset
	}
	if s.Vertical {
		return Rect{X: s.track.X, Y: s.track.Y + pos, W: s.track.W, H: thumb}
	}
	return Rect{X: s.track.X + pos, Y: s.track.Y, W: thumb, H: s.track.H}
}

func (s *Scrollbar) thickness() float32 {
	if s.Vertical {
		return s.track.W
	}
	return s.track.H
}

// Click pages the offset when p is on the track outside the thumb. It
// returns true when p hit the bar at all.
func (s *Scrollbar) Click(p Vec2, sc *ScrollCoordinator) bool {
	if !s.Visible(sc) || !s.track.Contains(p) {
		return false
	}
	thumb := s.Thumb(sc)
	if thumb.Contains(p) {
		return true
	}
	_, _, page := s.metrics(sc)
	st := sc.State()
	if s.Vertical {
		if p.Y < thumb.Y {
			page = -page
		}
		st.Top += page
	} else {
		if p.X < thumb.X {
			page = -page
		}
		st.Left += page
	}
	sc.SetScroll(st)
	return true
}

// Draw paints the track and thumb.
func (s *Scrollbar) Draw(c Canvas, sc *ScrollCoordinator, style Style) {
	if !s.Visible(sc) {
		return
	}
	t := s.track
	c.AddRect(t.X, t.Y, t.W, t.H, style.ScrollbarBgColor)
	th := s.Thumb(sc)
	c.AddRect(th.X, th.Y, th.W, th.H, style.ScrollbarGrabColor)
}
