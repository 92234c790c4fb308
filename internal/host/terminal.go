package host

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/alexisbeaulieu97/vpwatch/internal/logger"
	apperrors "github.com/alexisbeaulieu97/vpwatch/pkg/errors"
)

// multiplexerEnv lists variables set by terminal multiplexers. Running
// inside one means the UI shares the screen with multiplexer chrome.
var multiplexerEnv = []string{"TMUX", "STY", "ZELLIJ"}

// DetectStandalone reports whether the process owns its terminal window
// outright, i.e. is not nested inside a multiplexer.
func DetectStandalone(getenv func(string) string) bool {
	if getenv == nil {
		getenv = os.Getenv
	}
	for _, key := range multiplexerEnv {
		if getenv(key) != "" {
			return false
		}
	}
	return true
}

// Option configures the Terminal and Tea hosts.
type Option func(*options)

type options struct {
	cells  CellSize
	log    *logger.Logger
	getenv func(string) string
}

func buildOptions(opts []Option) options {
	o := options{cells: DefaultCellSize, getenv: os.Getenv}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithCellSize overrides the cell-to-pixel conversion.
func WithCellSize(cells CellSize) Option {
	return func(o *options) {
		if cells.Width > 0 && cells.Height > 0 {
			o.cells = cells
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(log *logger.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithGetenv replaces the environment lookup used for standalone detection.
func WithGetenv(getenv func(string) string) Option {
	return func(o *options) {
		if getenv != nil {
			o.getenv = getenv
		}
	}
}

// Terminal is a host backed by a TTY. Geometry is re-read on every resize
// signal delivered while Run is active.
type Terminal struct {
	*hub
	file  *os.File
	cells CellSize
	log   *logger.Logger
}

// NewTerminal probes file and returns a ready host. It fails with a
// *errors.HostError when file is not a terminal or its size is unreadable.
func NewTerminal(file *os.File, opts ...Option) (*Terminal, error) {
	if file == nil || !term.IsTerminal(int(file.Fd())) {
		return nil, apperrors.NewHostError("terminal", ErrNotTerminal)
	}

	o := buildOptions(opts)
	t := &Terminal{
		hub:   newHub(),
		file:  file,
		cells: o.cells,
		log:   o.log.With("host", "terminal"),
	}
	t.hub.standalone = DetectStandalone(o.getenv)

	size, err := t.measure()
	if err != nil {
		return nil, apperrors.NewHostError("geometry", err)
	}
	t.publish(size)
	return t, nil
}

// Refresh re-reads the terminal geometry and publishes it.
func (t *Terminal) Refresh() error {
	size, err := t.measure()
	if err != nil {
		return err
	}
	t.publish(size)
	return nil
}

// Run dispatches resize notifications until ctx is done. All listeners are
// invoked from this goroutine. On platforms without a resize signal Run only
// waits for cancellation.
func (t *Terminal) Run(ctx context.Context) error {
	signals, stop := resizeSignals()
	defer stop()

	t.log.Debug("terminal resize loop started")
	for {
		select {
		case <-ctx.Done():
			t.log.Debug("terminal resize loop stopped")
			return nil
		case <-signals:
			if err := t.Refresh(); err != nil {
				t.log.Error(err, "failed to read terminal size")
			}
		}
	}
}

func (t *Terminal) measure() (Size, error) {
	fd := int(t.file.Fd())
	cols, rows, err := term.GetSize(fd)
	if err != nil {
		return Size{}, fmt.Errorf("read terminal size: %w", err)
	}
	if px, py := pixelSize(fd); px > 0 && py > 0 {
		return Size{Width: px, Height: py}, nil
	}
	return t.cells.Scale(cols, rows), nil
}

var (
	_ Environment         = (*Terminal)(nil)
	_ DisplayModeNotifier = (*Terminal)(nil)
)
