package systems

import (
	"github.com/weldworks/weldsparks/components"
	cfg "github.com/weldworks/weldsparks/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings flips the runtime toggles bound to keys
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
	}
	if GetAction(input, cfg.ActionToggleCalibration).JustPressed {
		settings.Calibrating = !settings.Calibrating
	}
	if GetAction(input, cfg.ActionQuit).JustPressed {
		settings.QuitRequested = true
	}
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(ent, components.SettingsData{
			Debug:       cfg.Debug.ShowHUD,
			Calibrating: cfg.Debug.Calibrate,
		})
	}

	ent, _ := components.Settings.First(e.World)
	return components.Settings.Get(ent)
}
