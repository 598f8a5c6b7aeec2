package systems

import (
	"fmt"
	"math"

	"github.com/weldworks/weldsparks/components"
	cfg "github.com/weldworks/weldsparks/config"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateCalibration turns clicks into image anchors while calibration is on.
// The result is logged, shown on the HUD and saved for the next start; the
// running origin is left alone.
func UpdateCalibration(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	if !settings.Calibrating {
		return
	}
	input := getOrCreateInput(e)
	if !GetAction(input, cfg.ActionCalibrate).JustPressed {
		return
	}
	hero, ok := heroEntry(e)
	if !ok {
		return
	}

	cal := getOrCreateCalibration(e)
	obj := components.Object.Get(hero)
	origin := components.Origin.Get(hero)

	ax, ay, ok := CalibrateAnchor(obj.W, obj.H, origin, input.CursorX, input.CursorY)
	if !ok {
		cal.Message = "image size unknown, cannot calibrate"
		return
	}

	cal.AnchorX = math.Round(ax)
	cal.AnchorY = math.Round(ay)
	cal.HasAnchor = true
	cal.Message = fmt.Sprintf("anchor_x: %.0f  anchor_y: %.0f", cal.AnchorX, cal.AnchorY)

	zap.S().Infow("calibrated anchor", "anchorX", cal.AnchorX, "anchorY", cal.AnchorY)

	_ = SaveAnchor(SavedAnchor{
		ImageSrc: cal.ImageSrc,
		AnchorX:  cal.AnchorX,
		AnchorY:  cal.AnchorY,
	})
}

// getOrCreateCalibration returns the singleton Calibration component, creating if needed
func getOrCreateCalibration(e *ecs.ECS) *components.CalibrationData {
	entry, ok := components.Calibration.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Calibration))
	}
	return components.Calibration.Get(entry)
}
