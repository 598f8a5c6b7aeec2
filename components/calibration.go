package components

import "github.com/yohamta/donburi"

// CalibrationData stores the last anchor picked by clicking on the hero
type CalibrationData struct {
	ImageSrc         string
	AnchorX, AnchorY float64
	HasAnchor        bool
	Message          string // last status line shown on the HUD
}

var Calibration = donburi.NewComponentType[CalibrationData]()
