package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/rdclock/pkg/geometry"
	"github.com/philipparndt/rdclock/pkg/gesture"
)

// handleInput processes user input
func (app *App) handleInput() {
	if rl.IsKeyPressed(rl.KeyEscape) || rl.IsKeyPressed(rl.KeyDelete) {
		app.Face.store.ClearAll()
	}
	if rl.IsKeyPressed(rl.KeyN) {
		app.Face.store.Reset()
		app.updateResult()
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.UI.showHelp = !app.UI.showHelp
	}

	// Touch screens report touch points; everything else is the mouse
	touchCount := rl.GetTouchPointCount()
	if touchCount > 0 || app.Interaction.touchCount > 0 {
		app.handleTouch(touchCount)
		app.Interaction.touchCount = touchCount
		return
	}
	app.handleMouse()
}

func (app *App) handleMouse() {
	pos := rl.GetMousePosition()
	target := app.locate(pos)

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		switch target.Kind {
		case geometry.TargetMarker:
			app.Interaction.clickMarker = true
			app.Face.controller.TearClick(target.Hour)
		case geometry.TargetRing:
			app.Interaction.device = gesture.Mouse
			app.Face.controller.PointerDown(app.pointer(pos, gesture.Mouse))
		}
	}

	if rl.IsMouseButtonDown(rl.MouseLeftButton) && app.Interaction.device == gesture.Mouse {
		if pos != app.Interaction.lastPointer {
			app.Face.controller.PointerMove(app.pointer(pos, gesture.Mouse))
		}
	}

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		app.Interaction.clickMarker = false
		app.Interaction.device = 0
		app.Face.controller.PointerUp()
	}

	app.Face.store.SetHovered(target.Hour)
	app.Interaction.lastPointer = pos
}

func (app *App) handleTouch(touchCount int32) {
	previous := app.Interaction.touchCount

	// Finger lifted
	if touchCount == 0 {
		if app.Interaction.heldMarker != 0 {
			app.Interaction.heldMarker = 0
			app.Face.controller.TearPressEnd()
		} else {
			app.Face.controller.PointerUp()
		}
		app.Interaction.device = 0
		app.Face.store.SetHovered(0)
		return
	}

	// A second finger turns the gesture into something we do not handle
	if touchCount > 1 {
		if previous == 1 {
			app.Interaction.heldMarker = 0
			app.Face.controller.TearPressCancel()
			app.Face.controller.PointerCancel()
		}
		return
	}

	pos := rl.GetTouchPosition(0)

	// Finger down
	if previous == 0 {
		app.Interaction.device = gesture.Touch
		target := app.locate(pos)
		switch target.Kind {
		case geometry.TargetMarker:
			app.Interaction.heldMarker = target.Hour
			app.Face.controller.TearPressStart(target.Hour, float64(pos.X), float64(pos.Y))
		case geometry.TargetRing:
			app.Face.controller.PointerDown(app.pointer(pos, gesture.Touch))
		}
		app.Interaction.lastPointer = pos
		return
	}

	if pos == app.Interaction.lastPointer {
		return
	}
	if app.Interaction.heldMarker != 0 {
		app.Face.controller.TearPressMove(float64(pos.X), float64(pos.Y))
	} else {
		app.Face.controller.PointerMove(app.pointer(pos, gesture.Touch))
	}
	app.Interaction.lastPointer = pos
}

func (app *App) locate(pos rl.Vector2) geometry.Target {
	return geometry.Locate(float64(pos.X), float64(pos.Y), app.Face.bounds, app.Face.display.Layout())
}

func (app *App) pointer(pos rl.Vector2, device gesture.Device) gesture.Pointer {
	return gesture.Pointer{
		X:      float64(pos.X),
		Y:      float64(pos.Y),
		Bounds: app.Face.bounds,
		Device: device,
	}
}
