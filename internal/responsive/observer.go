package responsive

import (
	"github.com/alexisbeaulieu97/vpwatch/internal/debounce"
	"github.com/alexisbeaulieu97/vpwatch/internal/host"
	"github.com/alexisbeaulieu97/vpwatch/internal/logger"
	"github.com/alexisbeaulieu97/vpwatch/internal/reactive"
)

// ViewportObserver publishes the ResponsiveState of its environment and
// recomputes it on every resize notification.
type ViewportObserver struct {
	env       host.Environment
	cell      *reactive.Cell[ResponsiveState]
	log       *logger.Logger
	debouncer *debounce.Debouncer
	life      lifecycle
}

// NewViewportObserver returns an inactive observer. Until Activate runs,
// State reports DesktopFallback.
func NewViewportObserver(env host.Environment, opts ...Option) *ViewportObserver {
	if env == nil {
		env = host.None()
	}
	s := buildSettings("viewport", opts)
	o := &ViewportObserver{
		env:  env,
		cell: reactive.NewCell(DesktopFallback),
		log:  s.log,
	}
	if s.debounce > 0 {
		o.debouncer = debounce.New(s.debounce)
	}
	return o
}

// Activate publishes the initial state and subscribes to resize
// notifications. The returned func deactivates the observer. Activating an
// active observer returns the same deactivator; activating a deactivated
// one does nothing.
func (o *ViewportObserver) Activate() (deactivate func()) {
	if !o.life.begin() {
		if o.life.closed() {
			o.log.Warn("activate called on deactivated viewport observer")
			return func() {}
		}
		return o.Deactivate
	}

	initial, ok := o.measure()
	if !ok {
		o.log.Debug("no window context, publishing desktop fallback")
	}
	o.cell.Set(initial)

	unsubscribe := o.env.OnResize(o.handleResize)
	cleanups := []func(){unsubscribe}
	if o.debouncer != nil {
		cleanups = append(cleanups, o.debouncer.Cancel)
	}
	o.life.adopt(cleanups...)

	o.log.WithFields(map[string]any{
		"breakpoint": initial.Breakpoint.String(),
		"width":      initial.Width,
		"height":     initial.Height,
	}).Debug("viewport observer activated")
	return o.Deactivate
}

// Deactivate removes every listener. It is idempotent.
func (o *ViewportObserver) Deactivate() {
	if o.life.end() {
		o.log.Debug("viewport observer deactivated")
	}
}

// State returns the latest snapshot.
func (o *ViewportObserver) State() ResponsiveState {
	return o.cell.Get()
}

// Subscribe registers fn for every published change.
func (o *ViewportObserver) Subscribe(fn func(ResponsiveState)) (cancel func()) {
	return o.cell.Subscribe(fn)
}

func (o *ViewportObserver) handleResize(host.Size) {
	if o.debouncer != nil {
		o.debouncer.Trigger(o.recompute)
		return
	}
	o.recompute()
}

func (o *ViewportObserver) recompute() {
	if !o.life.active() {
		return
	}
	state, _ := o.measure()
	if o.cell.Set(state) {
		o.log.WithFields(map[string]any{
			"breakpoint": state.Breakpoint.String(),
			"width":      state.Width,
			"height":     state.Height,
		}).Debug("viewport state published")
	}
}

func (o *ViewportObserver) measure() (ResponsiveState, bool) {
	size, ok := o.env.Viewport()
	if !ok {
		return DesktopFallback, false
	}
	return Classify(size.Width, size.Height), true
}
