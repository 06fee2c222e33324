package viewer

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"github.com/philipparndt/rdclock/pkg/geometry"
	"github.com/philipparndt/rdclock/pkg/gesture"
)

var (
	_ desktop.Mouseable = (*ClockFace)(nil)
	_ desktop.Hoverable = (*ClockFace)(nil)
	_ fyne.Draggable    = (*ClockFace)(nil)
	_ mobile.Touchable  = (*ClockFace)(nil)
)

func (f *ClockFace) hit(pos fyne.Position) geometry.Target {
	_, display, _ := f.snapshot()
	return geometry.Locate(float64(pos.X), float64(pos.Y), f.bounds(), display.Layout())
}

func (f *ClockFace) pointer(pos fyne.Position, device gesture.Device) gesture.Pointer {
	return gesture.Pointer{
		X:      float64(pos.X),
		Y:      float64(pos.Y),
		Bounds: f.bounds(),
		Device: device,
	}
}

// MouseDown starts a stroke on the ring or toggles a tear marker
func (f *ClockFace) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}

	f.device = gesture.Mouse
	t := f.hit(e.Position)
	switch t.Kind {
	case geometry.TargetMarker:
		f.clickMarker = true
		f.controller.TearClick(t.Hour)
	case geometry.TargetRing:
		f.controller.PointerDown(f.pointer(e.Position, gesture.Mouse))
	}
}

// MouseUp ends the stroke
func (f *ClockFace) MouseUp(e *desktop.MouseEvent) {
	f.clickMarker = false
	f.controller.PointerUp()
}

// Dragged extends the stroke, or tracks a held tear marker
func (f *ClockFace) Dragged(e *fyne.DragEvent) {
	if f.touchMarker != 0 {
		f.controller.TearPressMove(float64(e.Position.X), float64(e.Position.Y))
		return
	}
	if f.clickMarker {
		return
	}
	f.controller.PointerMove(f.pointer(e.Position, f.device))
}

// DragEnd ends the stroke. A held tear marker is resolved by TouchUp.
func (f *ClockFace) DragEnd() {
	if f.touchMarker != 0 {
		return
	}
	f.controller.PointerUp()
}

// MouseIn highlights the hour under the pointer
func (f *ClockFace) MouseIn(e *desktop.MouseEvent) {
	f.hover(e.Position)
}

// MouseMoved highlights the hour under the pointer
func (f *ClockFace) MouseMoved(e *desktop.MouseEvent) {
	f.hover(e.Position)
}

// MouseOut clears the hover highlight
func (f *ClockFace) MouseOut() {
	f.controller.Store().SetHovered(0)
}

func (f *ClockFace) hover(pos fyne.Position) {
	f.controller.Store().SetHovered(f.hit(pos).Hour)
}

// TouchDown arms a long press on a tear marker or starts a stroke on the ring
func (f *ClockFace) TouchDown(e *mobile.TouchEvent) {
	f.device = gesture.Touch
	t := f.hit(e.Position)
	switch t.Kind {
	case geometry.TargetMarker:
		f.touchMarker = t.Hour
		f.controller.TearPressStart(t.Hour, float64(e.Position.X), float64(e.Position.Y))
	case geometry.TargetRing:
		f.controller.PointerDown(f.pointer(e.Position, gesture.Touch))
	}
}

// TouchUp resolves a long press or ends the stroke
func (f *ClockFace) TouchUp(e *mobile.TouchEvent) {
	if f.touchMarker != 0 {
		f.touchMarker = 0
		f.controller.TearPressEnd()
		f.clearPressed()
		return
	}
	f.controller.PointerUp()
}

// TouchCancel abandons whatever gesture was in progress
func (f *ClockFace) TouchCancel(e *mobile.TouchEvent) {
	f.touchMarker = 0
	f.controller.TearPressCancel()
	f.controller.PointerCancel()
	f.clearPressed()
}

func (f *ClockFace) clearPressed() {
	f.mu.Lock()
	f.pressed = 0
	f.mu.Unlock()
	f.Refresh()
}
