package viewer

import (
	"fmt"
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/rdclock/pkg/clock"
	"github.com/philipparndt/rdclock/pkg/config"
	"github.com/philipparndt/rdclock/pkg/geometry"
	"github.com/philipparndt/rdclock/pkg/gesture"
	"github.com/philipparndt/rdclock/pkg/selection"
)

var (
	markerColor      = color.RGBA{200, 200, 210, 255}
	markerTearColor  = color.RGBA{40, 110, 230, 255}
	markerPressColor = color.RGBA{250, 190, 40, 255}
	markerTextColor  = color.RGBA{30, 30, 40, 255}
)

const markerTextSize = 13

// ClockFace is an interactive clock face. Dragging over the ring paints
// detachment segments; the twelve hour markers toggle tears.
type ClockFace struct {
	widget.BaseWidget

	controller *gesture.Controller

	mu      sync.RWMutex
	display config.DisplayConfig
	state   selection.State
	pressed clock.Hour // marker held past the long-press duration

	// input bookkeeping, touched only on the UI thread
	device      gesture.Device
	touchMarker clock.Hour
	clickMarker bool
}

// NewClockFace creates a clock face driving the given controller
func NewClockFace(controller *gesture.Controller, display config.DisplayConfig) *ClockFace {
	f := &ClockFace{
		controller: controller,
		display:    display,
		state:      controller.Store().Snapshot(),
	}
	f.ExtendBaseWidget(f)

	store := controller.Store()
	store.OnSegmentsChanged(func(clock.SegmentSet) { f.syncState() })
	store.OnHoursChanged(func(h clock.HourSet) {
		if h.Empty() {
			f.mu.Lock()
			f.pressed = 0
			f.mu.Unlock()
		}
		f.syncState()
	})
	store.OnHoverChanged(func(clock.Hour) { f.syncState() })

	// The long-press hook runs on a timer goroutine
	controller.OnLongPress(func(h clock.Hour) {
		fyne.Do(func() {
			f.mu.Lock()
			f.pressed = h
			f.mu.Unlock()
			f.Refresh()
		})
	})
	return f
}

// SetDisplay applies new layout settings
func (f *ClockFace) SetDisplay(display config.DisplayConfig) {
	f.mu.Lock()
	f.display = display
	f.mu.Unlock()
	f.Refresh()
}

// Reset abandons any gesture in progress and starts a new session with an
// empty selection
func (f *ClockFace) Reset() {
	f.touchMarker = 0
	f.clickMarker = false
	f.controller.TearPressCancel()
	f.controller.PointerCancel()
	f.controller.Store().Reset()
	f.clearPressed()
}

// Controller returns the gesture controller behind the widget
func (f *ClockFace) Controller() *gesture.Controller {
	return f.controller
}

func (f *ClockFace) syncState() {
	f.mu.Lock()
	f.state = f.controller.Store().Snapshot()
	f.mu.Unlock()
	f.Refresh()
}

func (f *ClockFace) snapshot() (selection.State, config.DisplayConfig, clock.Hour) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.state, f.display, f.pressed
}

// bounds returns the widget area in widget coordinates
func (f *ClockFace) bounds() geometry.Rect {
	size := f.Size()
	return geometry.NewRect(float64(size.Width), float64(size.Height))
}

// CreateRenderer creates the renderer for the widget
func (f *ClockFace) CreateRenderer() fyne.WidgetRenderer {
	r := &clockFaceRenderer{face: f}
	r.raster = canvas.NewRasterWithPixels(r.pixel)

	for i := range r.markers {
		hour := clock.Hour(i + 1)
		marker := canvas.NewCircle(markerColor)
		marker.StrokeColor = markerTextColor
		marker.StrokeWidth = 1

		label := canvas.NewText(fmt.Sprintf("%d", hour), markerTextColor)
		label.TextSize = markerTextSize
		label.Alignment = fyne.TextAlignCenter
		label.TextStyle = fyne.TextStyle{Bold: true}

		r.markers[i] = marker
		r.labels[i] = label
	}
	return r
}

// clockFaceRenderer implements fyne.WidgetRenderer
type clockFaceRenderer struct {
	face    *ClockFace
	raster  *canvas.Raster
	markers [clock.HourCount]*canvas.Circle
	labels  [clock.HourCount]*canvas.Text
}

func (r *clockFaceRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)
	r.raster.Move(fyne.NewPos(0, 0))

	_, display, _ := r.face.snapshot()
	bounds := geometry.NewRect(float64(size.Width), float64(size.Height))
	diameter := float32(display.MarkerHitRadius * 2)

	for i := range r.markers {
		p := geometry.HourMarkerPosition(clock.Hour(i+1), bounds, display.MarkerRing)
		r.markers[i].Resize(fyne.NewSize(diameter, diameter))
		r.markers[i].Move(fyne.NewPos(float32(p.X)-diameter/2, float32(p.Y)-diameter/2))

		textSize := r.labels[i].MinSize()
		r.labels[i].Resize(fyne.NewSize(diameter, textSize.Height))
		r.labels[i].Move(fyne.NewPos(float32(p.X)-diameter/2, float32(p.Y)-textSize.Height/2))
	}
}

func (r *clockFaceRenderer) MinSize() fyne.Size {
	return fyne.NewSize(320, 320)
}

func (r *clockFaceRenderer) Refresh() {
	state, _, pressed := r.face.snapshot()

	for i, marker := range r.markers {
		hour := clock.Hour(i + 1)
		switch {
		case hour == pressed:
			marker.FillColor = markerPressColor
		case state.Tears.Has(hour):
			marker.FillColor = markerTearColor
		default:
			marker.FillColor = markerColor
		}
		marker.StrokeWidth = 1
		if hour == state.Hovered {
			marker.StrokeWidth = 3
		}
		marker.Refresh()
		r.labels[i].Refresh()
	}

	r.Layout(r.face.Size())
	r.raster.Refresh()
	canvas.Refresh(r.face)
}

func (r *clockFaceRenderer) Objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, 1+2*clock.HourCount)
	objects = append(objects, r.raster)
	for i := range r.markers {
		objects = append(objects, r.markers[i], r.labels[i])
	}
	return objects
}

// Destroy releases the gesture timers when the widget goes away
func (r *clockFaceRenderer) Destroy() {
	r.face.controller.Close()
}
