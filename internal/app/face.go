package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/rdclock/pkg/clock"
	"github.com/philipparndt/rdclock/pkg/geometry"
	"github.com/philipparndt/rdclock/pkg/gesture"
)

var (
	ringColor      = rl.NewColor(60, 64, 76, 255)
	ringHoverColor = rl.NewColor(80, 90, 115, 255)
	detachedColor  = rl.NewColor(210, 60, 60, 255)
	detachedHover  = rl.NewColor(235, 95, 95, 255)
	dividerColor   = rl.NewColor(15, 18, 25, 255)
	markerColor    = rl.NewColor(200, 200, 210, 255)
	tearColor      = rl.NewColor(40, 110, 230, 255)
	pressColor     = rl.NewColor(250, 190, 40, 255)
)

// raylib measures angles from +X, clock angles from 12 o'clock
func toRaylibAngle(clockDegrees float64) float32 {
	return float32(clockDegrees - 90)
}

func vec(v geometry.Vector2) rl.Vector2 {
	return rl.Vector2{X: float32(v.X), Y: float32(v.Y)}
}

// drawFace draws the segment ring, hour dividers and tear markers
func (app *App) drawFace() {
	bounds := app.Face.bounds
	if bounds.Degenerate() {
		return
	}

	state := app.Face.store.Snapshot()
	display := app.Face.display
	center := bounds.Center()
	radius := bounds.Radius()
	inner := float32(radius * display.InnerRadius)
	outer := float32(radius * display.OuterRadius)

	for s := clock.Segment(0); s < clock.SegmentCount; s++ {
		hovered := state.Hovered != 0 && s.Hour() == state.Hovered
		col := ringColor
		switch {
		case state.Detachment.Has(s) && hovered:
			col = detachedHover
		case state.Detachment.Has(s):
			col = detachedColor
		case hovered:
			col = ringHoverColor
		}

		start := geometry.SegmentToDegree(s)
		rl.DrawRing(vec(center), inner, outer, toRaylibAngle(start), toRaylibAngle(start+clock.DegreesPerSegment), 4, col)
	}

	// Hour dividers at the first segment of every hour
	for h := clock.Hour(1); h <= clock.HourCount; h++ {
		r, _ := clock.HourToSegmentRange(h)
		angle := geometry.SegmentToDegree(r.Start)
		from := center.Add(geometry.PolarToCartesian(angle, float64(inner)))
		to := center.Add(geometry.PolarToCartesian(angle, float64(outer)))
		rl.DrawLineEx(vec(from), vec(to), 2, dividerColor)
	}

	app.drawMarkers(state.Tears, state.Hovered)
}

func (app *App) drawMarkers(tears clock.HourSet, hovered clock.Hour) {
	display := app.Face.display
	pressed := clock.Hour(0)
	if app.Interaction.heldMarker != 0 && app.Face.controller.Press() == gesture.PressFired {
		pressed = app.Interaction.heldMarker
	}

	fontSize := float32(18)
	for h := clock.Hour(1); h <= clock.HourCount; h++ {
		pos := vec(geometry.HourMarkerPosition(h, app.Face.bounds, display.MarkerRing))

		col := markerColor
		switch {
		case h == pressed:
			col = pressColor
		case tears.Has(h):
			col = tearColor
		}
		rl.DrawCircleV(pos, float32(display.MarkerHitRadius), col)
		if h == hovered {
			rl.DrawCircleLines(int32(pos.X), int32(pos.Y), float32(display.MarkerHitRadius)+2, rl.White)
		}

		label := fmt.Sprintf("%d", h)
		size := rl.MeasureTextEx(app.UI.font, label, fontSize, 1)
		rl.DrawTextEx(app.UI.font, label, rl.Vector2{X: pos.X - size.X/2, Y: pos.Y - size.Y/2}, fontSize, 1, dividerColor)
	}
}
