package viewer

import (
	"image/color"
	"math"

	"github.com/philipparndt/rdclock/pkg/clock"
	"github.com/philipparndt/rdclock/pkg/config"
	"github.com/philipparndt/rdclock/pkg/geometry"
	"github.com/philipparndt/rdclock/pkg/selection"
)

var (
	backgroundColor = color.Transparent
	ringColor       = color.RGBA{235, 235, 240, 255}
	ringHoverColor  = color.RGBA{215, 225, 245, 255}
	detachedColor   = color.RGBA{210, 60, 60, 255}
	detachedHover   = color.RGBA{230, 90, 90, 255}
	dividerColor    = color.RGBA{150, 150, 160, 255}
	edgeColor       = color.RGBA{90, 90, 100, 255}
)

const (
	// half width of hour dividers in degrees
	dividerWidth = 0.6
	// ring edge thickness as a fraction of the face radius
	edgeWidth = 0.008
)

// shade returns the color of one pixel of the segment ring. x and y are
// pixel coordinates inside a w by h raster.
func shade(x, y, w, h int, state selection.State, display config.DisplayConfig) color.Color {
	bounds := geometry.NewRect(float64(w), float64(h))
	px, py := float64(x)+0.5, float64(y)+0.5

	r := geometry.PointerRadius(px, py, bounds)
	if r < display.InnerRadius-edgeWidth || r > display.OuterRadius+edgeWidth {
		return backgroundColor
	}
	if r < display.InnerRadius || r > display.OuterRadius {
		return edgeColor
	}

	angle := geometry.PointerToAngle(px, py, bounds)
	if onHourDivider(angle) {
		return dividerColor
	}

	segment := geometry.DegreeToSegment(angle)
	hovered := state.Hovered != 0 && segment.Hour() == state.Hovered

	switch {
	case state.Detachment.Has(segment) && hovered:
		return detachedHover
	case state.Detachment.Has(segment):
		return detachedColor
	case hovered:
		return ringHoverColor
	default:
		return ringColor
	}
}

// onHourDivider reports whether angle lies on the boundary between two hour arcs
func onHourDivider(angle float64) bool {
	first, _ := clock.HourToSegmentRange(1)
	offset := math.Mod(geometry.NormalizeDegrees(angle-geometry.SegmentToDegree(first.Start)), clock.DegreesPerHour)
	return offset < dividerWidth || offset > clock.DegreesPerHour-dividerWidth
}

// pixel is the raster callback
func (r *clockFaceRenderer) pixel(x, y, w, h int) color.Color {
	state, display, _ := r.face.snapshot()
	return shade(x, y, w, h, state, display)
}
