package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/vpwatch/internal/host"
)

// parseDimension parses a non-negative pixel or cell count.
func parseDimension(name, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be an integer", name, raw)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid %s %d: must not be negative", name, n)
	}
	return n, nil
}

// parseSize parses "WxH", e.g. "1280x720".
func parseSize(raw string) (host.Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(raw), "x")
	if !ok {
		return host.Size{}, fmt.Errorf("invalid size %q: want WIDTHxHEIGHT", raw)
	}
	width, err := parseDimension("width", w)
	if err != nil {
		return host.Size{}, err
	}
	height, err := parseDimension("height", h)
	if err != nil {
		return host.Size{}, err
	}
	return host.Size{Width: width, Height: height}, nil
}

// parseCellSize parses the --cell-size flag. Both sides must be positive.
func parseCellSize(raw string) (host.CellSize, error) {
	size, err := parseSize(raw)
	if err != nil {
		return host.CellSize{}, err
	}
	if size.Width == 0 || size.Height == 0 {
		return host.CellSize{}, fmt.Errorf("invalid cell size %q: both sides must be positive", raw)
	}
	return host.CellSize{Width: size.Width, Height: size.Height}, nil
}
