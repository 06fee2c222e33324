package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/rdclock/version"
)

// drawUI draws the result panel right of the clock face
func (app *App) drawUI() {
	lineHeight := float32(22)
	fontSize16 := float32(16)
	fontSize14 := float32(14)
	fontSize12 := float32(12)

	x := float32(rl.GetScreenWidth()) - app.UI.panelWidth
	y := float32(20)
	result := app.Result.assessment

	// === DETACHMENT ===
	rl.DrawTextEx(app.UI.font, "Detachment:", rl.Vector2{X: x, Y: y}, fontSize16, 1, rl.Yellow)
	y += lineHeight
	rl.DrawTextEx(app.UI.font, "  "+result.DetachmentText, rl.Vector2{X: x, Y: y}, fontSize16, 1, rl.White)
	y += lineHeight
	rl.DrawTextEx(app.UI.font, fmt.Sprintf("  Segments: %d", result.SegmentCount), rl.Vector2{X: x, Y: y}, fontSize14, 1, rl.LightGray)
	y += lineHeight * 1.5

	// === BREAKS ===
	rl.DrawTextEx(app.UI.font, "Retinal breaks:", rl.Vector2{X: x, Y: y}, fontSize16, 1, rl.Yellow)
	y += lineHeight
	rl.DrawTextEx(app.UI.font, "  "+result.TearText, rl.Vector2{X: x, Y: y}, fontSize16, 1, rl.White)
	y += lineHeight * 1.5

	// === RISK MODEL ===
	rl.DrawTextEx(app.UI.font, "Risk model inputs:", rl.Vector2{X: x, Y: y}, fontSize16, 1, rl.Yellow)
	y += lineHeight
	rl.DrawTextEx(app.UI.font, fmt.Sprintf("  Extent: %s", result.Detachment), rl.Vector2{X: x, Y: y}, fontSize14, 1, rl.NewColor(100, 200, 255, 255))
	y += lineHeight
	rl.DrawTextEx(app.UI.font, fmt.Sprintf("  Break location: %s", result.BreakLocation), rl.Vector2{X: x, Y: y}, fontSize14, 1, rl.NewColor(100, 200, 255, 255))
	y += lineHeight
	rl.DrawTextEx(app.UI.font, fmt.Sprintf("  Inferior hours: %d", result.InferiorHours), rl.Vector2{X: x, Y: y}, fontSize14, 1, rl.NewColor(100, 200, 255, 255))
	y += lineHeight * 1.5

	// === CONTROLS ===
	if app.UI.showHelp {
		rl.DrawTextEx(app.UI.font, "Controls:", rl.Vector2{X: x, Y: y}, fontSize16, 1, rl.Yellow)
		y += lineHeight
		for _, line := range []string{
			"  Drag on ring: Mark detachment",
			"  Drag from marked: Erase (mouse)",
			"  Click hour: Toggle break",
			"  Hold hour: Toggle break (touch)",
			"  ESC: Clear | N: New patient",
			"  H: Hide help",
		} {
			rl.DrawTextEx(app.UI.font, line, rl.Vector2{X: x, Y: y}, fontSize14, 1, rl.LightGray)
			y += lineHeight
		}
	}

	// Version, session and FPS in the bottom-right corner
	bottomY := float32(rl.GetScreenHeight()) - 30
	footer := fmt.Sprintf("v%s  session %s", version.GetVersion(), shortSession(app.Result.session))
	rl.DrawTextEx(app.UI.font, footer, rl.Vector2{X: x, Y: bottomY}, fontSize12, 1, rl.Gray)

	fpsText := fmt.Sprintf("FPS: %d", rl.GetFPS())
	footerWidth := rl.MeasureTextEx(app.UI.font, footer, fontSize12, 1).X
	rl.DrawTextEx(app.UI.font, fpsText, rl.Vector2{X: x + footerWidth + 15, Y: bottomY}, fontSize12, 1, rl.Lime)
}

func shortSession(session string) string {
	if len(session) > 8 {
		return session[:8]
	}
	return session
}
