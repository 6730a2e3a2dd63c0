package datagrid

// ScrollState is the shared scroll offset of the body. Panels receive it by
// value; only the ScrollCoordinator writes it.
type ScrollState struct {
	Top  float32
	Left float32
}

// ScrollFollower is a panel that mirrors the shared scroll offset.
type ScrollFollower interface {
	FollowScroll(s ScrollState)
}

// ScrollBounds reports the current content size and viewport size. It is
// queried on every clamp so bounds always reflect the latest geometry.
type ScrollBounds interface {
	ContentSize() Vec2
	ViewportSize() Vec2
}

// ScrollCoordinator owns the scroll offset and propagates every change, in
// the same update, to its followers. Followers never write back.
type ScrollCoordinator struct {
	state     ScrollState
	bounds    ScrollBounds
	followers []ScrollFollower
	onChange  func(ScrollState)
}

// NewScrollCoordinator creates a coordinator clamped by bounds.
func NewScrollCoordinator(bounds ScrollBounds, followers ...ScrollFollower) *ScrollCoordinator {
	return &ScrollCoordinator{bounds: bounds, followers: followers}
}

// OnChange sets the callback fired after each propagated change.
func (sc *ScrollCoordinator) OnChange(fn func(ScrollState)) {
	sc.onChange = fn
}

// State returns the current scroll offset.
func (sc *ScrollCoordinator) State() ScrollState {
	return sc.state
}

// MaxTop returns the largest valid Top: data height minus viewport height,
// never negative.
func (sc *ScrollCoordinator) MaxTop() float32 {
	return maxf(0, sc.bounds.ContentSize().Y-sc.bounds.ViewportSize().Y)
}

// MaxLeft returns the largest valid Left: total column width minus viewport
// width, never negative.
func (sc *ScrollCoordinator) MaxLeft() float32 {
	return maxf(0, sc.bounds.ContentSize().X-sc.bounds.ViewportSize().X)
}

// AtBottom reports whether no more rows can be revealed by scrolling down.
func (sc *ScrollCoordinator) AtBottom() bool {
	return sc.state.Top >= sc.MaxTop()
}

// SetScroll overwrites the offset with an authoritative value, such as a
// native scroll reported by the body. Nothing propagates when the clamped
// value equals the current offset; it returns whether the offset changed.
func (sc *ScrollCoordinator) SetScroll(next ScrollState) bool {
	next = sc.clamp(next)
	if next == sc.state {
		return false
	}
	sc.state = next
	sc.propagate()
	return true
}

// ScrollByDelta moves Top by delta, clamped to [0, MaxTop]. It returns false,
// and propagates nothing, when the offset does not change.
func (sc *ScrollCoordinator) ScrollByDelta(delta float32) bool {
	top := sc.state.Top
	if delta > 0 {
		top = minf(top+delta, sc.MaxTop())
	} else if top > 0 {
		top = maxf(top+delta, 0)
	}
	if top == sc.state.Top {
		return false
	}
	sc.state.Top = top
	sc.propagate()
	return true
}

// ScrollLeftByDelta is ScrollByDelta for the horizontal axis.
func (sc *ScrollCoordinator) ScrollLeftByDelta(delta float32) bool {
	left := clampf(sc.state.Left+delta, 0, sc.MaxLeft())
	if left == sc.state.Left {
		return false
	}
	sc.state.Left = left
	sc.propagate()
	return true
}

// Clamp pulls the offset back into bounds after a geometry or viewport change.
// It propagates only when the offset moved.
func (sc *ScrollCoordinator) Clamp() bool {
	next := sc.clamp(sc.state)
	if next == sc.state {
		return false
	}
	sc.state = next
	sc.propagate()
	return true
}

func (sc *ScrollCoordinator) clamp(s ScrollState) ScrollState {
	return ScrollState{
		Top:  clampf(s.Top, 0, sc.MaxTop()),
		Left: clampf(s.Left, 0, sc.MaxLeft()),
	}
}

func (sc *ScrollCoordinator) propagate() {
	for _, f := range sc.followers {
		f.FollowScroll(sc.state)
	}
	if sc.onChange != nil {
		sc.onChange(sc.state)
	}
}
