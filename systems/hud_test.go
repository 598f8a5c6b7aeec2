package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/weldworks/weldsparks/components"
)

func TestHUDLinesHidden(t *testing.T) {
	e, _ := newTestECS(400, 200, 1)
	assert.Empty(t, HUDLines(e, &components.SettingsData{}))
}

func TestHUDLinesDebug(t *testing.T) {
	e, hero := newTestECS(400, 200, 1)
	addSpark(e, components.SparkData{Life: 1, MaxLife: 1})
	addSpark(e, components.SparkData{Life: 1, MaxLife: 1})

	lines := HUDLines(e, &components.SettingsData{Debug: true})
	assert.Equal(t, []string{
		"sparks 2/70",
		"origin 200.0, 100.0",
		"surface 400x200 @1x (400x200)",
		"image pending, 50% / 50%",
	}, lines)

	origin := components.Origin.Get(hero)
	origin.NaturalW, origin.NaturalH = 1600, 900
	origin.AnchorX, origin.AnchorY = 1190, 640
	lines = HUDLines(e, &components.SettingsData{Debug: true})
	assert.Equal(t, "image 1600x900 anchor 1190, 640", lines[3])
}

func TestHUDLinesCalibrating(t *testing.T) {
	e, _ := newTestECS(400, 200, 1)

	lines := HUDLines(e, &components.SettingsData{Calibrating: true})
	assert.Equal(t, []string{"calibrate: click the weld point"}, lines)

	getOrCreateCalibration(e).Message = "anchor_x: 1  anchor_y: 2"
	lines = HUDLines(e, &components.SettingsData{Calibrating: true})
	assert.Equal(t, []string{"calibrate: anchor_x: 1  anchor_y: 2"}, lines)
}
