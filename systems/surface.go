package systems

import (
	"math"

	"github.com/weldworks/weldsparks/components"
	cfg "github.com/weldworks/weldsparks/config"
	"github.com/yohamta/donburi"
)

// ResizeSurface fits the hero's drawing surface to a container of w x h
// logical pixels on a display with the given device scale factor. Drawing
// code keeps working in logical pixels and multiplies by DPR.
func ResizeSurface(entry *donburi.Entry, w, h, deviceScale float64) {
	obj := components.Object.Get(entry)
	obj.W = math.Max(0, w)
	obj.H = math.Max(0, h)

	surface := components.Surface.Get(entry)
	surface.DPR = SurfaceDPR(deviceScale)
	surface.BackingW, surface.BackingH = BackingSize(obj.W, obj.H, surface.DPR)
}

// SurfaceDPR caps the device scale factor; unknown or invalid factors count as 1
func SurfaceDPR(deviceScale float64) float64 {
	if deviceScale <= 0 || math.IsNaN(deviceScale) {
		deviceScale = 1
	}
	return math.Min(deviceScale, cfg.Surface.MaxDPR)
}

// BackingSize returns the pixel size of the backing image, never below 1x1
func BackingSize(w, h, dpr float64) (int, int) {
	bw := int(math.Floor(w * dpr))
	bh := int(math.Floor(h * dpr))
	return max(1, bw), max(1, bh)
}
