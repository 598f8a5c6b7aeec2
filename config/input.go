package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical user action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionCalibrate
	ActionToggleCalibration
	ActionToggleDebug
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys, mouse buttons and gamepad buttons bound to an action
type InputBinding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionCalibrate: {
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
			},
			ActionToggleCalibration: {
				Keys: []ebiten.Key{ebiten.KeyC},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3, ebiten.KeyD},
				// Select / Share button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			ActionQuit: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
		},
	}
}
