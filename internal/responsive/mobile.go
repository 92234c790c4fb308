package responsive

import (
	"sync"

	"github.com/alexisbeaulieu97/vpwatch/internal/host"
	"github.com/alexisbeaulieu97/vpwatch/internal/logger"
	"github.com/alexisbeaulieu97/vpwatch/internal/reactive"
)

// MobileFeatures combines the viewport's mobile flag with orientation and
// standalone display mode, each observed on its own path.
//
// Standalone mode is re-checked on every resize. Hosts implementing
// host.DisplayModeNotifier also push changes directly, which covers
// display-mode switches that happen without a resize.
type MobileFeatures struct {
	env      host.Environment
	viewport *ViewportObserver
	cell     *reactive.Cell[MobileFeatureState]
	log      *logger.Logger
	life     lifecycle

	// mu serializes read-modify-write updates of cell.
	mu sync.Mutex
}

// NewMobileFeatures returns an inactive aggregator with its own viewport
// observer. Options apply to both.
func NewMobileFeatures(env host.Environment, opts ...Option) *MobileFeatures {
	if env == nil {
		env = host.None()
	}
	s := buildSettings("mobile", opts)
	initial := MobileFeatureState{IsMobile: DesktopFallback.IsMobile}.
		withOrientation(OrientationOf(DesktopFallback.Width, DesktopFallback.Height))
	return &MobileFeatures{
		env:      env,
		viewport: NewViewportObserver(env, opts...),
		cell:     reactive.NewCell(initial),
		log:      s.log,
	}
}

// Activate activates the inner viewport observer, publishes the initial
// state and subscribes to resize, orientation and display-mode changes.
func (f *MobileFeatures) Activate() (deactivate func()) {
	if !f.life.begin() {
		if f.life.closed() {
			f.log.Warn("activate called on deactivated mobile features")
			return func() {}
		}
		return f.Deactivate
	}

	cleanups := []func(){f.viewport.Activate()}
	cleanups = append(cleanups, f.viewport.Subscribe(f.mirrorViewport))

	f.update(func(MobileFeatureState) MobileFeatureState { return f.measure() })

	cleanups = append(cleanups,
		f.env.OnResize(func(host.Size) { f.recheck() }),
		f.env.OnOrientationChange(func(host.Size) { f.reorient() }),
	)

	pushed := false
	if notifier, ok := f.env.(host.DisplayModeNotifier); ok {
		cleanups = append(cleanups, notifier.OnDisplayModeChange(f.setStandalone))
		pushed = true
	}
	f.life.adopt(cleanups...)

	state := f.cell.Get()
	f.log.WithFields(map[string]any{
		"orientation":       string(state.Orientation),
		"standalone":        state.IsStandalone,
		"display_mode_push": pushed,
	}).Debug("mobile features activated")
	return f.Deactivate
}

// Deactivate removes every listener, including those of the inner viewport
// observer. It is idempotent.
func (f *MobileFeatures) Deactivate() {
	if f.life.end() {
		f.log.Debug("mobile features deactivated")
	}
}

// State returns the latest snapshot.
func (f *MobileFeatures) State() MobileFeatureState {
	return f.cell.Get()
}

// Responsive returns the inner viewport observer's snapshot.
func (f *MobileFeatures) Responsive() ResponsiveState {
	return f.viewport.State()
}

// Subscribe registers fn for every published change.
func (f *MobileFeatures) Subscribe(fn func(MobileFeatureState)) (cancel func()) {
	return f.cell.Subscribe(fn)
}

func (f *MobileFeatures) mirrorViewport(s ResponsiveState) {
	f.update(func(st MobileFeatureState) MobileFeatureState {
		st.IsMobile = s.IsMobile
		return st
	})
}

func (f *MobileFeatures) recheck() {
	f.update(func(st MobileFeatureState) MobileFeatureState {
		st.IsStandalone = f.standalone()
		return st.withOrientation(f.orientation())
	})
}

func (f *MobileFeatures) reorient() {
	f.update(func(st MobileFeatureState) MobileFeatureState {
		return st.withOrientation(f.orientation())
	})
}

func (f *MobileFeatures) setStandalone(standalone bool) {
	f.update(func(st MobileFeatureState) MobileFeatureState {
		st.IsStandalone = standalone
		return st
	})
}

func (f *MobileFeatures) update(fn func(MobileFeatureState) MobileFeatureState) {
	if !f.life.active() {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cell.Set(fn(f.cell.Get()))
}

func (f *MobileFeatures) measure() MobileFeatureState {
	return MobileFeatureState{
		IsMobile:     f.viewport.State().IsMobile,
		IsStandalone: f.standalone(),
	}.withOrientation(f.orientation())
}

func (f *MobileFeatures) orientation() Orientation {
	size, ok := f.env.Viewport()
	if !ok {
		return OrientationOf(DesktopFallback.Width, DesktopFallback.Height)
	}
	return OrientationOf(size.Width, size.Height)
}

func (f *MobileFeatures) standalone() bool {
	standalone, supported := f.env.Standalone()
	return supported && standalone
}
