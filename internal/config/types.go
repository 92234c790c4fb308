package config

import (
	"time"

	"github.com/alexisbeaulieu97/vpwatch/internal/host"
	"github.com/alexisbeaulieu97/vpwatch/internal/responsive"
)

// Config represents the full vpwatch configuration document.
type Config struct {
	Log   LogSettings   `yaml:"log"`
	Host  HostSettings  `yaml:"host"`
	Watch WatchSettings `yaml:"watch"`
}

// LogSettings configures the zerolog output.
type LogSettings struct {
	Level         string `yaml:"level" validate:"required,oneof=debug info warn error"`
	HumanReadable bool   `yaml:"human_readable"`
}

// HostSettings controls how terminal cells map to viewport pixels when the
// terminal does not report pixel dimensions.
type HostSettings struct {
	CellWidth  int `yaml:"cell_width" validate:"min=1,max=64"`
	CellHeight int `yaml:"cell_height" validate:"min=1,max=64"`
}

// WatchSettings configures the watch session.
type WatchSettings struct {
	Breakpoint string        `yaml:"breakpoint" validate:"required,breakpoint"`
	Debounce   time.Duration `yaml:"debounce" validate:"min=0,max=5s"`
	Output     string        `yaml:"output" validate:"required,oneof=text json"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Log: LogSettings{
			Level:         "info",
			HumanReadable: true,
		},
		Host: HostSettings{
			CellWidth:  host.DefaultCellSize.Width,
			CellHeight: host.DefaultCellSize.Height,
		},
		Watch: WatchSettings{
			Breakpoint: responsive.BreakpointMD.String(),
			Output:     "text",
		},
	}
}

// CellSize returns the host cell conversion.
func (c Config) CellSize() host.CellSize {
	return host.CellSize{Width: c.Host.CellWidth, Height: c.Host.CellHeight}
}

// Target returns the breakpoint the watch session's matcher follows. The
// value has already been validated; an unparsable one yields md.
func (w WatchSettings) Target() responsive.Breakpoint {
	bp, err := responsive.ParseBreakpoint(w.Breakpoint)
	if err != nil {
		return responsive.BreakpointMD
	}
	return bp
}
