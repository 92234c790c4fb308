package host

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vpwatch/internal/logger"
)

// Tea is a host fed by a Bubble Tea program. The program forwards its
// messages through Observe from Update, so every notification is delivered
// on the program's event loop.
//
// The host has no window until the first tea.WindowSizeMsg arrives.
type Tea struct {
	*hub
	cells CellSize
	log   *logger.Logger
}

// NewTea returns a host awaiting its first window size.
func NewTea(opts ...Option) *Tea {
	o := buildOptions(opts)
	t := &Tea{
		hub:   newHub(),
		cells: o.cells,
		log:   o.log.With("host", "tea"),
	}
	t.hub.standalone = DetectStandalone(o.getenv)
	return t
}

// Observe consumes geometry messages and reports whether msg was one.
func (t *Tea) Observe(msg tea.Msg) bool {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return false
	}
	scaled := t.cells.Scale(size.Width, size.Height)
	t.log.WithFields(map[string]any{
		"cols":   size.Width,
		"rows":   size.Height,
		"width":  scaled.Width,
		"height": scaled.Height,
	}).Debug("window size observed")
	t.publish(scaled)
	return true
}

// SetStandalone overrides the detected display mode.
func (t *Tea) SetStandalone(standalone bool) {
	t.setStandalone(standalone)
}

// Cells returns the active cell-to-pixel conversion.
func (t *Tea) Cells() CellSize {
	return t.cells
}

var (
	_ Environment         = (*Tea)(nil)
	_ DisplayModeNotifier = (*Tea)(nil)
)
