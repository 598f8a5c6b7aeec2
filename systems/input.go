package systems

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/weldworks/weldsparks/components"
	cfg "github.com/weldworks/weldsparks/config"
	"github.com/yohamta/donburi/ecs"
)

var gamepadIDs []ebiten.GamepadID

// UpdateInput samples keys, mouse and gamepads into the Input component.
// Runs first so the settings and calibration systems see this frame's actions.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)

	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for action, binding := range cfg.Input.Bindings {
		input.Current[action] = bindingHeld(binding, gamepadIDs)
	}

	// The cursor is reported in backing pixels; convert to logical ones
	dpr := 1.0
	if hero, ok := heroEntry(e); ok {
		if d := components.Surface.Get(hero).DPR; d > 0 {
			dpr = d
		}
	}
	cx, cy := ebiten.CursorPosition()
	input.CursorX = float64(cx) / dpr
	input.CursorY = float64(cy) / dpr
}

func bindingHeld(b cfg.InputBinding, pads []ebiten.GamepadID) bool {
	if slices.ContainsFunc(b.Keys, ebiten.IsKeyPressed) {
		return true
	}
	if slices.ContainsFunc(b.MouseButtons, ebiten.IsMouseButtonPressed) {
		return true
	}
	for _, id := range pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, btn := range b.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(id, btn) {
				return true
			}
		}
	}
	return false
}

// GetAction returns the temporal state of an action
func GetAction(input *components.InputData, action cfg.ActionID) components.ActionState {
	cur := input.Current[action]
	prev := input.Previous[action]
	return components.ActionState{
		Pressed:      cur,
		JustPressed:  cur && !prev,
		JustReleased: !cur && prev,
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}
