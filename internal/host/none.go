package host

// none is the environment of a process with no window context. Every
// capability is absent and every subscription is a no-op.
type none struct{}

// None returns the no-window environment.
func None() Environment {
	return none{}
}

func (none) Viewport() (Size, bool) { return Size{}, false }

func (none) OnResize(func(Size)) Unsubscribe { return noop }

func (none) OnOrientationChange(func(Size)) Unsubscribe { return noop }

func (none) WatchMinWidth(int, func(bool)) (Unsubscribe, bool) { return noop, false }

func (none) Standalone() (bool, bool) { return false, false }
