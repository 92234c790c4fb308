package host

import (
	"sort"
	"sync"
)

// boundaryWatch remembers the last side of minWidth it reported. A watch
// registered before the first geometry has no side yet and is always
// notified by the first publish.
type boundaryWatch struct {
	minWidth int
	matched  bool
	known    bool
	fn       func(bool)
}

// hub is the listener registry shared by the concrete hosts. It keeps the
// last published geometry and dispatches outside of its lock, in
// registration order.
type hub struct {
	mu          sync.Mutex
	size        Size
	ready       bool
	standalone  bool
	nextID      uint64
	resize      map[uint64]func(Size)
	orientation map[uint64]func(Size)
	displayMode map[uint64]func(bool)
	watches     map[uint64]*boundaryWatch
}

func newHub() *hub {
	return &hub{
		resize:      make(map[uint64]func(Size)),
		orientation: make(map[uint64]func(Size)),
		displayMode: make(map[uint64]func(bool)),
		watches:     make(map[uint64]*boundaryWatch),
	}
}

func (h *hub) Viewport() (Size, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.size, h.ready
}

func (h *hub) OnResize(fn func(Size)) Unsubscribe {
	if fn == nil {
		return noop
	}
	h.mu.Lock()
	id := h.register()
	h.resize[id] = fn
	h.mu.Unlock()
	return h.remover(func() { delete(h.resize, id) })
}

func (h *hub) OnOrientationChange(fn func(Size)) Unsubscribe {
	if fn == nil {
		return noop
	}
	h.mu.Lock()
	id := h.register()
	h.orientation[id] = fn
	h.mu.Unlock()
	return h.remover(func() { delete(h.orientation, id) })
}

func (h *hub) OnDisplayModeChange(fn func(bool)) Unsubscribe {
	if fn == nil {
		return noop
	}
	h.mu.Lock()
	id := h.register()
	h.displayMode[id] = fn
	h.mu.Unlock()
	return h.remover(func() { delete(h.displayMode, id) })
}

func (h *hub) WatchMinWidth(minWidth int, fn func(bool)) (Unsubscribe, bool) {
	if fn == nil {
		return noop, true
	}
	h.mu.Lock()
	id := h.register()
	h.watches[id] = &boundaryWatch{
		minWidth: minWidth,
		matched:  h.ready && h.size.Width >= minWidth,
		known:    h.ready,
		fn:       fn,
	}
	h.mu.Unlock()
	return h.remover(func() { delete(h.watches, id) }), true
}

func (h *hub) Standalone() (bool, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.standalone, true
}

// ListenerCount returns the number of live registrations of any kind.
func (h *hub) ListenerCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.resize) + len(h.orientation) + len(h.displayMode) + len(h.watches)
}

// publish records size and dispatches orientation listeners (when the
// aspect flipped), resize listeners, then boundary watches that crossed or
// had not seen a geometry yet.
func (h *hub) publish(size Size) {
	h.mu.Lock()
	rotated := h.ready && h.size.Portrait() != size.Portrait()
	h.size = size
	h.ready = true

	var orientation []func(Size)
	if rotated {
		orientation = ordered(h.orientation)
	}
	resize := ordered(h.resize)

	var flips []func()
	for _, id := range sortedIDs(h.watches) {
		w := h.watches[id]
		matched := size.Width >= w.minWidth
		if w.known && matched == w.matched {
			continue
		}
		w.known = true
		w.matched = matched
		fn := w.fn
		flips = append(flips, func() { fn(matched) })
	}
	h.mu.Unlock()

	for _, fn := range orientation {
		fn(size)
	}
	for _, fn := range resize {
		fn(size)
	}
	for _, fn := range flips {
		fn()
	}
}

// rotate forces an orientation notification even when the aspect did not
// flip, mirroring devices that report rotation before reflowing.
func (h *hub) rotate(size Size) {
	h.mu.Lock()
	fns := ordered(h.orientation)
	h.mu.Unlock()
	for _, fn := range fns {
		fn(size)
	}
}

func (h *hub) setStandalone(standalone bool) {
	h.mu.Lock()
	if h.standalone == standalone {
		h.mu.Unlock()
		return
	}
	h.standalone = standalone
	fns := ordered(h.displayMode)
	h.mu.Unlock()

	for _, fn := range fns {
		fn(standalone)
	}
}

// register must be called with h.mu held.
func (h *hub) register() uint64 {
	h.nextID++
	return h.nextID
}

func (h *hub) remover(del func()) Unsubscribe {
	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			del()
			h.mu.Unlock()
		})
	}
}

func sortedIDs[V any](m map[uint64]V) []uint64 {
	ids := make([]uint64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func ordered[T any](m map[uint64]func(T)) []func(T) {
	ids := sortedIDs(m)
	fns := make([]func(T), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, m[id])
	}
	return fns
}
