package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/tanema/gween/ease"
	"github.com/weldworks/weldsparks/assets"
	"github.com/weldworks/weldsparks/components"
	cfg "github.com/weldworks/weldsparks/config"
	"github.com/weldworks/weldsparks/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var flashOp = &ebiten.DrawRectShaderOptions{}

// DrawFlash renders the short blue-white flare at the weld point right after
// a spark is born.
func DrawFlash(e *ecs.ECS, screen *ebiten.Image) {
	hero, ok := heroEntry(e)
	if !ok {
		return
	}
	em := components.Emitter.Get(hero)
	if !em.HasFlash {
		return
	}

	alpha := FlashAlpha(em.Now - em.LastFlash)
	if alpha <= 0 {
		return
	}

	ox, oy := heroOrigin(hero)
	dpr := components.Surface.Get(hero).DPR
	if dpr <= 0 {
		dpr = 1
	}
	r := cfg.Flash.Radius * FlashPulse(em.Now)

	if assets.FlashShader == nil {
		// No shader (e.g. compile failure): plain additive disc in the mid stop color
		mid := cfg.Flash.Stops[len(cfg.Flash.Stops)/2].Color
		newCanvas(screen, dpr).fillCircle(ox, oy, r, rgba{
			R: float64(mid.R) / 255,
			G: float64(mid.G) / 255,
			B: float64(mid.B) / 255,
			A: float64(mid.A) / 255 * alpha,
		})
		return
	}

	size := int(math.Ceil(2 * r * dpr))
	if size <= 0 {
		return
	}

	flashOp.GeoM.Reset()
	flashOp.GeoM.Translate((ox-r)*dpr, (oy-r)*dpr)
	flashOp.Blend = ebiten.BlendLighter
	flashOp.Uniforms = flashUniforms(ox*dpr, oy*dpr, r*dpr, dpr, alpha)

	screen.DrawRectShader(size, size, assets.FlashShader, flashOp)
}

// FlashAlpha is the flare opacity ms after the last emission: it starts at
// the peak and falls linearly to exactly zero at the end of the window.
func FlashAlpha(since float64) float64 {
	d := cfg.Flash.DurationMS
	if since < 0 || since >= d {
		return 0
	}
	peak := float32(cfg.Flash.PeakAlpha)
	return float64(ease.Linear(float32(since), peak, -peak, float32(d)))
}

// FlashPulse is the small radius wobble of the flare at time now (ms)
func FlashPulse(now float64) float64 {
	return 1 + math.Sin(now*cfg.Flash.PulseFrequency)*cfg.Flash.PulseAmplitude
}

func flashUniforms(cx, cy, radius, dpr, alpha float64) map[string]any {
	stops := cfg.Flash.Stops
	u := map[string]any{
		"Center": []float32{float32(cx), float32(cy)},
		"Focus":  []float32{float32(cx + cfg.Flash.FocusOffsetX*dpr), float32(cy + cfg.Flash.FocusOffsetY*dpr)},
		"Radius": float32(radius),
		"Alpha":  float32(alpha),
	}
	offsets := make([]float32, 4)
	for i := 0; i < 4; i++ {
		s := stops[min(i, len(stops)-1)]
		offsets[i] = float32(s.Offset)
		u[flashColorUniforms[i]] = []float32{
			float32(s.Color.R) / 255,
			float32(s.Color.G) / 255,
			float32(s.Color.B) / 255,
			float32(s.Color.A) / 255,
		}
	}
	u["Offsets"] = offsets
	return u
}

var flashColorUniforms = [4]string{"Color0", "Color1", "Color2", "Color3"}

// DrawSparks renders each spark as a short trail plus a glowing head
func DrawSparks(e *ecs.ECS, screen *ebiten.Image) {
	hero, ok := heroEntry(e)
	if !ok {
		return
	}
	cv := newCanvas(screen, components.Surface.Get(hero).DPR)
	c := &cfg.Sparks

	tags.Spark.Each(e.World, func(entry *donburi.Entry) {
		p := components.Spark.Get(entry)

		alpha := SparkAlpha(p)
		if alpha <= 0 {
			return
		}

		tx, ty := TrailEnd(p, c.Tail)
		cv.strokeLine(p.X, p.Y, tx, ty, p.Size, sparkColor(p.Hue, c.TrailSat, c.TrailLight, alpha))
		cv.fillCircle(p.X, p.Y, p.Size*c.HeadRadius, sparkColor(p.Hue, c.HeadSat, c.HeadLight, alpha))
	})
}

// SparkAlpha fades a spark over its life, mostly towards the end
func SparkAlpha(p *components.SparkData) float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	lifeK := math.Max(0, p.Life/p.MaxLife)
	return math.Pow(lifeK, cfg.Sparks.FadePow)
}

// TrailEnd returns the far end of the trail: tail px behind the spark along
// its last frame-to-frame displacement. A spark that has not moved yet gets
// a zero-length trail.
func TrailEnd(p *components.SparkData, tail float64) (float64, float64) {
	dx := p.X - p.PrevX
	dy := p.Y - p.PrevY
	l := math.Hypot(dx, dy)
	if l == 0 {
		l = 1
	}
	return p.X - dx/l*tail, p.Y - dy/l*tail
}

func sparkColor(hue, sat, light, alpha float64) rgba {
	c := colorful.Hsl(hue, sat, light).Clamped()
	return rgba{R: c.R, G: c.G, B: c.B, A: alpha}
}
