// Package pagination computes the page group size (number of pagination
// links shown together) from the viewport width and keeps a consumer in
// sync across resize events.
package pagination

import "sync"

// Viewport width breakpoints.
const (
	narrowWidth = 480
	mediumWidth = 768
	wideWidth   = 1024
)

// Group sizes per breakpoint band.
const (
	narrowGroupSize  = 3
	mediumGroupSize  = 5
	wideGroupSize    = 10
	defaultGroupSize = 20
)

// GroupSize returns the page group size for a viewport width. Bands switch
// exactly at the breakpoints: <480→3, <768→5, <1024→10, else→20.
func GroupSize(viewportWidth int) int {
	switch {
	case viewportWidth < narrowWidth:
		return narrowGroupSize
	case viewportWidth < mediumWidth:
		return mediumGroupSize
	case viewportWidth < wideWidth:
		return wideGroupSize
	default:
		return defaultGroupSize
	}
}

// Pager is the consumer whose PageGroupSize the Sizer keeps current.
type Pager struct {
	PageGroupSize int
}

// Sizer recomputes the group size on viewport-resize notifications and,
// only when the value changed, updates the bound Pager and signals the
// registered listeners.
type Sizer struct {
	mu        sync.Mutex
	pager     *Pager
	size      int
	listeners []func(size int)
}

// NewSizer binds a Sizer to its consumer, seeding PageGroupSize for the
// initial viewport width.
func NewSizer(pager *Pager, initialWidth int) *Sizer {
	s := &Sizer{pager: pager, size: GroupSize(initialWidth)}
	pager.PageGroupSize = s.size
	return s
}

// OnResize registers a listener for the "pagination resized" signal.
func (s *Sizer) OnResize(fn func(size int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Resize handles a viewport-resize notification. Listeners fire only when
// the group size actually changed.
func (s *Sizer) Resize(viewportWidth int) {
	s.mu.Lock()
	size := GroupSize(viewportWidth)
	if size == s.size {
		s.mu.Unlock()
		return
	}
	s.size = size
	s.pager.PageGroupSize = size
	listeners := make([]func(int), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(size)
	}
}

// Size returns the current page group size.
func (s *Sizer) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.size
}
