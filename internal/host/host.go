// Package host abstracts the environment a viewport observer runs in: where
// geometry comes from and which change notifications are available.
//
// Implementations:
//   - None: no window at all (non-interactive runs, pre-render).
//   - Simulated: scripted geometry for tests and demos.
//   - Terminal: a real TTY, resized through SIGWINCH.
//   - Tea: a Bubble Tea program, resized through tea.WindowSizeMsg.
//
// Every subscription returns an Unsubscribe that is safe to call more than
// once. Capability gaps are reported through the boolean results rather than
// errors so that callers can fall back to static defaults.
package host

import (
	"errors"
	"fmt"
)

// ErrNotTerminal is returned when a terminal host is requested for a file
// that is not attached to a TTY.
var ErrNotTerminal = errors.New("not a terminal")

// Size is a viewport geometry in pixels.
type Size struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Portrait reports whether the size is taller than it is wide.
func (s Size) Portrait() bool {
	return s.Height > s.Width
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Unsubscribe removes a previously registered listener.
type Unsubscribe func()

func noop() {}

// Environment is the capability provider every observer is built on.
type Environment interface {
	// Viewport returns the current geometry; ok is false when there is no
	// window context yet.
	Viewport() (size Size, ok bool)
	// OnResize registers fn for every geometry-change notification.
	OnResize(fn func(Size)) Unsubscribe
	// OnOrientationChange registers fn for orientation-change notifications.
	OnOrientationChange(fn func(Size)) Unsubscribe
	// WatchMinWidth registers fn to be called only when "width >= minWidth"
	// flips. ok is false when boundary watches are unsupported.
	WatchMinWidth(minWidth int, fn func(matches bool)) (unsubscribe Unsubscribe, ok bool)
	// Standalone reports whether the UI runs without surrounding chrome;
	// supported is false when the host cannot tell.
	Standalone() (standalone, supported bool)
}

// DisplayModeNotifier is implemented by hosts that can announce standalone
// display-mode changes directly instead of relying on resize re-checks.
type DisplayModeNotifier interface {
	OnDisplayModeChange(fn func(standalone bool)) Unsubscribe
}

// CellSize converts terminal cells into pixels when the terminal does not
// report its pixel dimensions.
type CellSize struct {
	Width  int `yaml:"cell_width"`
	Height int `yaml:"cell_height"`
}

// DefaultCellSize approximates a common monospace cell.
var DefaultCellSize = CellSize{Width: 8, Height: 16}

// Scale converts a column/row count into pixels.
func (c CellSize) Scale(cols, rows int) Size {
	if c.Width <= 0 || c.Height <= 0 {
		c = DefaultCellSize
	}
	return Size{Width: cols * c.Width, Height: rows * c.Height}
}
