package responsive

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/vpwatch/internal/logger"
)

type phase int

const (
	phaseInactive phase = iota
	phaseActive
	phaseClosed
)

// lifecycle tracks Inactive -> Active -> Closed and owns the cleanups
// registered during activation. Closed is terminal.
type lifecycle struct {
	mu       sync.Mutex
	phase    phase
	cleanups []func()
}

// begin moves Inactive to Active and reports whether it did.
func (l *lifecycle) begin() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.phase != phaseInactive {
		return false
	}
	l.phase = phaseActive
	return true
}

// adopt records cleanups for the current activation. If the observer was
// closed while activating, they run immediately.
func (l *lifecycle) adopt(fns ...func()) {
	l.mu.Lock()
	if l.phase == phaseClosed {
		l.mu.Unlock()
		runReverse(fns)
		return
	}
	l.cleanups = append(l.cleanups, fns...)
	l.mu.Unlock()
}

func (l *lifecycle) active() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.phase == phaseActive
}

func (l *lifecycle) closed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.phase == phaseClosed
}

// end closes the lifecycle and runs cleanups in reverse registration order.
// It reports whether this call performed the transition.
func (l *lifecycle) end() bool {
	l.mu.Lock()
	if l.phase == phaseClosed {
		l.mu.Unlock()
		return false
	}
	l.phase = phaseClosed
	fns := l.cleanups
	l.cleanups = nil
	l.mu.Unlock()

	runReverse(fns)
	return true
}

func runReverse(fns []func()) {
	for i := len(fns) - 1; i >= 0; i-- {
		if fns[i] != nil {
			fns[i]()
		}
	}
}

// Option configures an observer.
type Option func(*settings)

type settings struct {
	log      *logger.Logger
	debounce time.Duration
}

// WithLogger attaches a logger. Observers log lifecycle transitions at
// debug level.
func WithLogger(log *logger.Logger) Option {
	return func(s *settings) { s.log = log }
}

// WithDebounce coalesces resize bursts shorter than d into one recompute.
// Only the viewport observer honours it; zero disables debouncing.
func WithDebounce(d time.Duration) Option {
	return func(s *settings) {
		if d > 0 {
			s.debounce = d
		}
	}
}

func buildSettings(kind string, opts []Option) settings {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	s.log = s.log.WithFields(map[string]any{
		"observer":    kind,
		"observer_id": uuid.NewString(),
	})
	return s
}
