package responsive

// DeviceClass buckets a viewport into mobile, tablet or desktop.
type DeviceClass int

const (
	Mobile DeviceClass = iota
	Tablet
	Desktop
)

func (c DeviceClass) String() string {
	switch c {
	case Mobile:
		return "mobile"
	case Tablet:
		return "tablet"
	default:
		return "desktop"
	}
}

// Orientation of the viewport.
type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// ResponsiveState is the full classification of one viewport geometry.
// Exactly one of IsMobile, IsTablet and IsDesktop is set.
type ResponsiveState struct {
	IsMobile   bool       `json:"isMobile" yaml:"isMobile"`
	IsTablet   bool       `json:"isTablet" yaml:"isTablet"`
	IsDesktop  bool       `json:"isDesktop" yaml:"isDesktop"`
	Breakpoint Breakpoint `json:"breakpoint" yaml:"breakpoint"`
	Width      int        `json:"width" yaml:"width"`
	Height     int        `json:"height" yaml:"height"`
}

// DeviceClass returns the class flagged in s.
func (s ResponsiveState) DeviceClass() DeviceClass {
	switch {
	case s.IsMobile:
		return Mobile
	case s.IsTablet:
		return Tablet
	default:
		return Desktop
	}
}

// DesktopFallback is published when no window context exists.
var DesktopFallback = ResponsiveState{
	IsDesktop:  true,
	Breakpoint: BreakpointLG,
	Width:      1024,
	Height:     768,
}

// MobileFeatureState bundles the signals mobile-specific views depend on.
// IsPortrait and IsLandscape mirror Orientation.
type MobileFeatureState struct {
	IsMobile     bool        `json:"isMobile" yaml:"isMobile"`
	Orientation  Orientation `json:"orientation" yaml:"orientation"`
	IsStandalone bool        `json:"isStandalone" yaml:"isStandalone"`
	IsPortrait   bool        `json:"isPortrait" yaml:"isPortrait"`
	IsLandscape  bool        `json:"isLandscape" yaml:"isLandscape"`
}

func (s MobileFeatureState) withOrientation(o Orientation) MobileFeatureState {
	s.Orientation = o
	s.IsPortrait = o == Portrait
	s.IsLandscape = o == Landscape
	return s
}
