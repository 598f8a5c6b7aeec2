package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/weldworks/weldsparks/components"
	cfg "github.com/weldworks/weldsparks/config"
	"github.com/weldworks/weldsparks/fonts"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the debug overlay and calibration status
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Debug && !settings.Calibrating {
		return
	}
	hero, ok := heroEntry(e)
	if !ok || !fonts.Loaded(fonts.Mono) {
		return
	}

	surface := components.Surface.Get(hero)
	dpr := float32(surface.DPR)
	if dpr <= 0 {
		dpr = 1
	}

	ox, oy := heroOrigin(hero)
	size := float32(cfg.HUD.CrosshairSize)
	x, y := float32(ox)*dpr, float32(oy)*dpr
	vector.StrokeLine(screen, x-size*dpr, y, x+size*dpr, y, dpr, cfg.HUD.CrosshairColor, true)
	vector.StrokeLine(screen, x, y-size*dpr, x, y+size*dpr, dpr, cfg.HUD.CrosshairColor, true)

	lines := HUDLines(e, settings)
	face := fonts.Mono.Get()
	for i, line := range lines {
		lx := int(cfg.HUD.Margin * float64(dpr))
		ly := int((cfg.HUD.Margin + cfg.HUD.LineHeight*float64(i+1)) * float64(dpr))
		text.Draw(screen, line, face, lx, ly, cfg.HUD.TextColor)
	}
}

// HUDLines returns the overlay text for the current state
func HUDLines(e *ecs.ECS, settings *components.SettingsData) []string {
	hero, ok := heroEntry(e)
	if !ok {
		return nil
	}
	em := components.Emitter.Get(hero)
	obj := components.Object.Get(hero)
	surface := components.Surface.Get(hero)
	origin := components.Origin.Get(hero)
	ox, oy := OriginPx(obj.W, obj.H, origin)

	var lines []string
	if settings.Debug {
		lines = append(lines,
			fmt.Sprintf("sparks %d/%d", CountSparks(e), Capacity(em.Intensity)),
			fmt.Sprintf("origin %.1f, %.1f", ox, oy),
			fmt.Sprintf("surface %.0fx%.0f @%.2gx (%dx%d)", obj.W, obj.H, surface.DPR, surface.BackingW, surface.BackingH),
		)
		if origin.NaturalW > 0 && origin.NaturalH > 0 {
			lines = append(lines, fmt.Sprintf("image %.0fx%.0f anchor %.0f, %.0f", origin.NaturalW, origin.NaturalH, origin.AnchorX, origin.AnchorY))
		} else {
			lines = append(lines, fmt.Sprintf("image pending, %.0f%% / %.0f%%", origin.XPercent, origin.YPercent))
		}
	}
	if settings.Calibrating {
		cal := getOrCreateCalibration(e)
		msg := cal.Message
		if msg == "" {
			msg = "click the weld point"
		}
		lines = append(lines, "calibrate: "+msg)
	}
	return lines
}
