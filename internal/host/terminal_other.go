//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package host

import "os"

// No resize signal exists here; the nil channel blocks forever.
func resizeSignals() (<-chan os.Signal, func()) {
	return nil, func() {}
}

func pixelSize(int) (int, int) {
	return 0, 0
}
