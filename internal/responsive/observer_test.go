package responsive

import (
	"bytes"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/vpwatch/internal/host"
	"github.com/alexisbeaulieu97/vpwatch/internal/logger"
)

func TestViewportObserverInitialStateFromWindow(t *testing.T) {
	t.Parallel()

	sim := host.NewSimulated(host.Size{Width: 800, Height: 1000})
	obs := NewViewportObserver(sim)
	require.Equal(t, DesktopFallback, obs.State(), "inactive observer reports the fallback")

	deactivate := obs.Activate()
	defer deactivate()

	assert.Equal(t, Classify(800, 1000), obs.State())
	assert.True(t, obs.State().IsTablet)
}

func TestViewportObserverNoWindowFallback(t *testing.T) {
	t.Parallel()

	obs := NewViewportObserver(host.None())
	defer obs.Activate()()

	state := obs.State()
	assert.Equal(t, ResponsiveState{IsDesktop: true, Breakpoint: BreakpointLG, Width: 1024, Height: 768}, state)
	assert.False(t, state.IsMobile)
	assert.False(t, state.IsTablet)
}

func TestViewportObserverNilEnvironmentFallsBack(t *testing.T) {
	t.Parallel()

	obs := NewViewportObserver(nil)
	defer obs.Activate()()
	assert.Equal(t, DesktopFallback, obs.State())
}

func TestViewportObserverRecomputesOnResize(t *testing.T) {
	t.Parallel()

	sim := host.NewSimulated(host.Size{Width: 375, Height: 812})
	obs := NewViewportObserver(sim)
	defer obs.Activate()()

	var published []Breakpoint
	obs.Subscribe(func(s ResponsiveState) { published = append(published, s.Breakpoint) })

	sim.Resize(768, 1024)
	sim.Resize(1536, 900)
	sim.Resize(1536, 900)

	assert.Equal(t, []Breakpoint{BreakpointMD, Breakpoint2XL}, published)
	assert.Equal(t, Classify(1536, 900), obs.State())
}

func TestViewportObserverDeactivateRemovesListeners(t *testing.T) {
	t.Parallel()

	sim := host.NewSimulated(host.Size{Width: 375, Height: 812})
	obs := NewViewportObserver(sim)
	obs.Activate()
	require.Equal(t, 1, sim.ListenerCount())

	before := obs.State()
	obs.Deactivate()
	assert.Equal(t, 0, sim.ListenerCount())

	sim.Resize(1920, 1080)
	assert.Equal(t, before, obs.State())
}

func TestViewportObserverDeactivateIsIdempotent(t *testing.T) {
	t.Parallel()

	sim := host.NewSimulated(host.Size{Width: 375, Height: 812})

	never := NewViewportObserver(sim)
	require.NotPanics(t, func() {
		never.Deactivate()
		never.Deactivate()
	})

	obs := NewViewportObserver(sim)
	deactivate := obs.Activate()
	require.NotPanics(t, func() {
		deactivate()
		deactivate()
		obs.Deactivate()
	})
	assert.Equal(t, 0, sim.ListenerCount())
}

func TestViewportObserverReactivationNeedsFreshInstance(t *testing.T) {
	t.Parallel()

	sim := host.NewSimulated(host.Size{Width: 375, Height: 812})
	obs := NewViewportObserver(sim)
	obs.Activate()
	again := obs.Activate()
	assert.Equal(t, 1, sim.ListenerCount(), "activating twice registers once")

	again()
	obs.Activate()
	assert.Equal(t, 0, sim.ListenerCount(), "a deactivated observer stays inactive")
}

func TestViewportObserverInstancesAreIndependent(t *testing.T) {
	t.Parallel()

	sim := host.NewSimulated(host.Size{Width: 375, Height: 812})
	first := NewViewportObserver(sim)
	second := NewViewportObserver(sim)
	first.Activate()
	defer second.Activate()()
	require.Equal(t, 2, sim.ListenerCount())

	first.Deactivate()
	assert.Equal(t, 1, sim.ListenerCount())

	sim.Resize(1280, 800)
	assert.Equal(t, BreakpointSM, first.State().Breakpoint)
	assert.Equal(t, BreakpointXL, second.State().Breakpoint)
}

func TestViewportObserverDebounceCoalescesBursts(t *testing.T) {
	t.Parallel()

	sim := host.NewSimulated(host.Size{Width: 375, Height: 812})
	obs := NewViewportObserver(sim, WithDebounce(20*time.Millisecond))
	defer obs.Activate()()

	var publishes atomic.Int32
	obs.Subscribe(func(ResponsiveState) { publishes.Add(1) })

	sim.Resize(700, 812)
	sim.Resize(900, 812)
	sim.Resize(1300, 812)
	assert.Equal(t, BreakpointSM, obs.State().Breakpoint, "recompute waits for the burst to settle")

	require.Eventually(t, func() bool {
		return obs.State().Breakpoint == BreakpointXL
	}, time.Second, 5*time.Millisecond)
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, int32(1), publishes.Load())
}

func TestViewportObserverLogsLifecycle(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	obs := NewViewportObserver(host.None(), WithLogger(log))
	obs.Activate()
	obs.Deactivate()

	out := buf.String()
	assert.Contains(t, out, "no window context")
	assert.Contains(t, out, "viewport observer activated")
	assert.Contains(t, out, "viewport observer deactivated")
	assert.Contains(t, out, `"observer_id"`)
}
