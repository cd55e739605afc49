// Package viewport classifies the measured viewport width and tells
// subscribers whenever the platform reports a resize.
package viewport

const (
	TabletMinWidth  = 640
	DesktopMinWidth = 1024
)

type Class int

const (
	Mobile Class = iota
	Tablet
	Desktop
)

func (c Class) String() string {
	switch c {
	case Mobile:
		return "mobile"
	case Tablet:
		return "tablet"
	case Desktop:
		return "desktop"
	default:
		return "unknown"
	}
}

// Classify maps a width in pixels to a class. Negative widths are treated
// as zero.
func Classify(width int) Class {
	if width < 0 {
		width = 0
	}
	switch {
	case width < TabletMinWidth:
		return Mobile
	case width < DesktopMinWidth:
		return Tablet
	default:
		return Desktop
	}
}

// Flags are the two overlapping booleans older layout code expects:
// IsTablet is true for every width below the desktop breakpoint, so it also
// holds on mobile.
type Flags struct {
	IsMobile bool
	IsTablet bool
}

func (c Class) Flags() Flags {
	return Flags{
		IsMobile: c == Mobile,
		IsTablet: c == Mobile || c == Tablet,
	}
}
