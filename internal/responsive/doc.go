// Package responsive classifies viewport geometry into layout signals and
// keeps them current as the geometry changes.
//
// # Breakpoints
//
// The breakpoint table is fixed:
//
//	sm   640
//	md   768
//	lg  1024
//	xl  1280
//	2xl 1536
//
// Classify picks the widest breakpoint whose minimum fits the width (sm for
// anything narrower) and derives the device class from that breakpoint:
// mobile below md, tablet below lg, desktop otherwise.
//
// # Observers
//
// Three observers publish through reactive cells:
//
//   - ViewportObserver: the full ResponsiveState, recomputed on every resize.
//   - BreakpointMatcher: width >= one breakpoint, driven by boundary watches.
//   - MobileFeatures: mobile flag, orientation and standalone display mode.
//
// Each observer is created inactive, subscribes on Activate and releases all
// of its listeners on Deactivate:
//
//	obs := responsive.NewViewportObserver(env)
//	defer obs.Activate()()
//	obs.Subscribe(func(s responsive.ResponsiveState) { render(s) })
//
// When the environment has no window, observers publish DesktopFallback and
// stay static instead of failing.
package responsive
