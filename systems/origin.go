package systems

import (
	"math"

	"github.com/weldworks/weldsparks/components"
)

// OriginPx maps the configured weld point to container pixels.
//
// Without the image's natural size the origin is a plain percentage of the
// container. Once the size is known the anchor (in source image pixels) is
// pushed through the same cover-fit transform the background uses, so the
// sparks stay glued to the same feature of the picture on every resize.
func OriginPx(cw, ch float64, o *components.OriginData) (float64, float64) {
	if o.NaturalW <= 0 || o.NaturalH <= 0 {
		return o.XPercent / 100 * cw, o.YPercent / 100 * ch
	}

	scale, offX, offY := coverFit(cw, ch, o.NaturalW, o.NaturalH, o.ObjectPosX, o.ObjectPosY)
	return offX + o.AnchorX*scale, offY + o.AnchorY*scale
}

// CalibrateAnchor inverts the cover-fit transform: it turns a point clicked in
// the container into source image pixels. ok is false while the natural size
// of the image is unknown.
func CalibrateAnchor(cw, ch float64, o *components.OriginData, cx, cy float64) (ax, ay float64, ok bool) {
	if o.NaturalW <= 0 || o.NaturalH <= 0 {
		return 0, 0, false
	}

	scale, offX, offY := coverFit(cw, ch, o.NaturalW, o.NaturalH, o.ObjectPosX, o.ObjectPosY)
	if scale == 0 {
		return 0, 0, false
	}
	return (cx - offX) / scale, (cy - offY) / scale, true
}

// coverFit returns the scale and top-left offset of an image of natural size
// nw x nh drawn to cover a cw x ch container with the given alignment.
func coverFit(cw, ch, nw, nh, alignX, alignY float64) (scale, offX, offY float64) {
	scale = math.Max(cw/nw, ch/nh)
	dispW := nw * scale
	dispH := nh * scale
	offX = (cw - dispW) * alignX
	offY = (ch - dispH) * alignY
	return scale, offX, offY
}
