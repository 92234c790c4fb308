package responsive

import (
	"fmt"
	"strings"
)

// Breakpoint names a minimum viewport width. Breakpoints are ordered by
// that width.
type Breakpoint int

const (
	BreakpointSM Breakpoint = iota
	BreakpointMD
	BreakpointLG
	BreakpointXL
	Breakpoint2XL
)

// Threshold pairs a breakpoint with its minimum width in pixels.
type Threshold struct {
	Breakpoint Breakpoint
	MinWidth   int
}

// table is ordered by strictly increasing MinWidth and never mutated.
var table = [...]Threshold{
	{Breakpoint: BreakpointSM, MinWidth: 640},
	{Breakpoint: BreakpointMD, MinWidth: 768},
	{Breakpoint: BreakpointLG, MinWidth: 1024},
	{Breakpoint: BreakpointXL, MinWidth: 1280},
	{Breakpoint: Breakpoint2XL, MinWidth: 1536},
}

var names = [...]string{"sm", "md", "lg", "xl", "2xl"}

// Breakpoints returns a copy of the breakpoint table, smallest first.
func Breakpoints() [len(table)]Threshold {
	return table
}

// MinWidth returns the minimum width of bp, or 0 for an invalid value.
func (bp Breakpoint) MinWidth() int {
	if !bp.Valid() {
		return 0
	}
	return table[bp].MinWidth
}

// Valid reports whether bp is one of the defined breakpoints.
func (bp Breakpoint) Valid() bool {
	return bp >= BreakpointSM && bp <= Breakpoint2XL
}

// Next returns the following breakpoint, wrapping from 2xl to sm.
func (bp Breakpoint) Next() Breakpoint {
	if !bp.Valid() || bp == Breakpoint2XL {
		return BreakpointSM
	}
	return bp + 1
}

func (bp Breakpoint) String() string {
	if !bp.Valid() {
		return fmt.Sprintf("Breakpoint(%d)", int(bp))
	}
	return names[bp]
}

// ParseBreakpoint converts a name such as "md" or "2xl" into a Breakpoint.
func ParseBreakpoint(name string) (Breakpoint, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i, n := range names {
		if n == normalized {
			return Breakpoint(i), nil
		}
	}
	return BreakpointSM, fmt.Errorf("unknown breakpoint %q (want one of %s)", name, strings.Join(names[:], ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (bp Breakpoint) MarshalText() ([]byte, error) {
	if !bp.Valid() {
		return nil, fmt.Errorf("invalid breakpoint %d", int(bp))
	}
	return []byte(bp.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (bp *Breakpoint) UnmarshalText(text []byte) error {
	parsed, err := ParseBreakpoint(string(text))
	if err != nil {
		return err
	}
	*bp = parsed
	return nil
}
