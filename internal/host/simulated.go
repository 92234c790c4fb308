package host

// Simulated is an in-memory host driven by explicit calls. Notifications are
// delivered synchronously on the calling goroutine.
type Simulated struct {
	*hub
	noBoundary   bool
	noStandalone bool
}

// SimulatedOption customizes a Simulated host.
type SimulatedOption func(*Simulated)

// WithoutBoundaryWatch makes WatchMinWidth report the capability as absent.
func WithoutBoundaryWatch() SimulatedOption {
	return func(s *Simulated) { s.noBoundary = true }
}

// WithoutStandaloneQuery makes Standalone report the capability as absent.
func WithoutStandaloneQuery() SimulatedOption {
	return func(s *Simulated) { s.noStandalone = true }
}

// WithStandalone sets the initial display mode.
func WithStandalone(standalone bool) SimulatedOption {
	return func(s *Simulated) { s.hub.standalone = standalone }
}

// NewSimulated returns a ready host with the given initial geometry.
func NewSimulated(size Size, opts ...SimulatedOption) *Simulated {
	s := &Simulated{hub: newHub()}
	s.hub.size = size
	s.hub.ready = true
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resize publishes a new geometry.
func (s *Simulated) Resize(width, height int) {
	s.publish(Size{Width: width, Height: height})
}

// Rotate swaps width and height, announcing the orientation change before
// the resulting resize.
func (s *Simulated) Rotate() {
	size, _ := s.Viewport()
	rotated := Size{Width: size.Height, Height: size.Width}
	if size.Width == size.Height {
		s.rotate(rotated)
	}
	s.publish(rotated)
}

// SetStandalone changes the display mode and notifies display-mode
// listeners. Resize listeners are not called.
func (s *Simulated) SetStandalone(standalone bool) {
	s.setStandalone(standalone)
}

// WatchMinWidth honours WithoutBoundaryWatch.
func (s *Simulated) WatchMinWidth(minWidth int, fn func(bool)) (Unsubscribe, bool) {
	if s.noBoundary {
		return noop, false
	}
	return s.hub.WatchMinWidth(minWidth, fn)
}

// Standalone honours WithoutStandaloneQuery.
func (s *Simulated) Standalone() (bool, bool) {
	if s.noStandalone {
		return false, false
	}
	return s.hub.Standalone()
}

var (
	_ Environment         = (*Simulated)(nil)
	_ DisplayModeNotifier = (*Simulated)(nil)
)
