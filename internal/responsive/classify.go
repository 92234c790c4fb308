package responsive

// breakpointFor scans the table from the widest threshold down and returns
// the first breakpoint whose minimum is <= width, or sm when none is.
func breakpointFor(width int) Breakpoint {
	for i := len(table) - 1; i >= 0; i-- {
		if table[i].MinWidth <= width {
			return table[i].Breakpoint
		}
	}
	return BreakpointSM
}

// DeviceClass projects bp onto a device class: below md is mobile, below lg
// is tablet, anything wider is desktop.
func (bp Breakpoint) DeviceClass() DeviceClass {
	switch {
	case bp < BreakpointMD:
		return Mobile
	case bp < BreakpointLG:
		return Tablet
	default:
		return Desktop
	}
}

// Classify derives the responsive state for a viewport. Negative widths are
// treated as zero.
func Classify(width, height int) ResponsiveState {
	if width < 0 {
		width = 0
	}
	bp := breakpointFor(width)
	class := bp.DeviceClass()
	return ResponsiveState{
		IsMobile:   class == Mobile,
		IsTablet:   class == Tablet,
		IsDesktop:  class == Desktop,
		Breakpoint: bp,
		Width:      width,
		Height:     height,
	}
}

// OrientationOf returns portrait only when height strictly exceeds width.
func OrientationOf(width, height int) Orientation {
	if height > width {
		return Portrait
	}
	return Landscape
}
