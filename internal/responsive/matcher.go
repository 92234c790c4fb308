package responsive

import (
	"sync"

	"github.com/alexisbeaulieu97/vpwatch/internal/host"
	"github.com/alexisbeaulieu97/vpwatch/internal/logger"
	"github.com/alexisbeaulieu97/vpwatch/internal/reactive"
)

// BreakpointMatcher tracks whether the viewport is at least as wide as one
// breakpoint. It relies on the host's boundary watch, so it only republishes
// when the answer flips.
type BreakpointMatcher struct {
	env  host.Environment
	cell *reactive.Cell[bool]
	log  *logger.Logger
	life lifecycle

	mu      sync.Mutex
	target  Breakpoint
	unwatch host.Unsubscribe
	gen     uint64
	static  bool
}

// NewBreakpointMatcher returns an inactive matcher for bp. An invalid bp is
// treated as sm. Before activation Matches is derived from DesktopFallback.
func NewBreakpointMatcher(env host.Environment, bp Breakpoint, opts ...Option) *BreakpointMatcher {
	if env == nil {
		env = host.None()
	}
	if !bp.Valid() {
		bp = BreakpointSM
	}
	s := buildSettings("matcher", opts)
	return &BreakpointMatcher{
		env:    env,
		cell:   reactive.NewCell(DesktopFallback.Width >= bp.MinWidth()),
		log:    s.log,
		target: bp,
	}
}

// Activate computes the current match and installs a boundary watch for the
// target breakpoint. See ViewportObserver.Activate for repeated calls.
func (m *BreakpointMatcher) Activate() (deactivate func()) {
	if !m.life.begin() {
		if m.life.closed() {
			m.log.Warn("activate called on deactivated breakpoint matcher")
			return func() {}
		}
		return m.Deactivate
	}

	m.subscribe()
	m.life.adopt(m.stopWatch)
	return m.Deactivate
}

// Deactivate removes the boundary watch. It is idempotent.
func (m *BreakpointMatcher) Deactivate() {
	if m.life.end() {
		m.log.Debug("breakpoint matcher deactivated")
	}
}

// SetBreakpoint retargets the matcher. On an active matcher the previous
// watch is removed before one scoped to bp is installed.
func (m *BreakpointMatcher) SetBreakpoint(bp Breakpoint) {
	if !bp.Valid() {
		bp = BreakpointSM
	}

	m.mu.Lock()
	if bp == m.target {
		m.mu.Unlock()
		return
	}
	previous := m.target
	m.target = bp
	m.mu.Unlock()

	if !m.life.active() {
		return
	}
	m.stopWatch()
	m.subscribe()
	m.log.WithFields(map[string]any{
		"from": previous.String(),
		"to":   bp.String(),
	}).Debug("breakpoint matcher resubscribed")
}

// Breakpoint returns the current target.
func (m *BreakpointMatcher) Breakpoint() Breakpoint {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.target
}

// Matches reports whether the viewport width is >= the target's minimum.
func (m *BreakpointMatcher) Matches() bool {
	return m.cell.Get()
}

// Static reports whether the host lacked a boundary watch, leaving the
// value fixed at its initial computation.
func (m *BreakpointMatcher) Static() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.static
}

// Subscribe registers fn for every flip.
func (m *BreakpointMatcher) Subscribe(fn func(bool)) (cancel func()) {
	return m.cell.Subscribe(fn)
}

func (m *BreakpointMatcher) subscribe() {
	m.mu.Lock()
	target := m.target
	m.gen++
	gen := m.gen
	m.mu.Unlock()

	m.cell.Set(m.measure(target))

	unwatch, ok := m.env.WatchMinWidth(target.MinWidth(), func(matches bool) {
		m.onFlip(gen, matches)
	})

	m.mu.Lock()
	if gen != m.gen {
		// Retargeted or deactivated while installing.
		m.mu.Unlock()
		unwatch()
		return
	}
	m.unwatch = unwatch
	m.static = !ok
	m.mu.Unlock()

	log := m.log.With("breakpoint", target.String())
	if !ok {
		log.Debug("boundary watch unavailable, match is static")
		return
	}
	log.Debug("boundary watch installed")
}

func (m *BreakpointMatcher) onFlip(gen uint64, matches bool) {
	m.mu.Lock()
	stale := gen != m.gen
	m.mu.Unlock()
	if stale || !m.life.active() {
		return
	}
	m.cell.Set(matches)
}

func (m *BreakpointMatcher) stopWatch() {
	m.mu.Lock()
	unwatch := m.unwatch
	m.unwatch = nil
	m.gen++
	m.mu.Unlock()

	if unwatch != nil {
		unwatch()
	}
}

func (m *BreakpointMatcher) measure(target Breakpoint) bool {
	width := DesktopFallback.Width
	if size, ok := m.env.Viewport(); ok {
		width = size.Width
	}
	return width >= target.MinWidth()
}
