package scenes

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/weldworks/weldsparks/archetypes"
	"github.com/weldworks/weldsparks/assets"
	"github.com/weldworks/weldsparks/components"
	cfg "github.com/weldworks/weldsparks/config"
	"github.com/weldworks/weldsparks/systems"
	"github.com/weldworks/weldsparks/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// HeroScene runs the weld sparks effect over the hero container.
// Every method runs on the game loop goroutine.
type HeroScene struct {
	ecs         *ecs.ECS
	hero        *donburi.Entry
	config      cfg.HeroConfig
	rng         systems.Rand
	interactive bool

	start time.Time
	once  sync.Once

	meta   <-chan assets.ImageMeta
	cancel context.CancelFunc

	resizeAttached bool
	destroyed      bool
}

// NewHeroScene creates the interactive scene: keyboard toggles, calibration
// clicks and a time-seeded random source.
func NewHeroScene(hero cfg.HeroConfig) *HeroScene {
	return &HeroScene{
		config:      hero,
		rng:         systems.NewRand(),
		interactive: true,
		start:       time.Now(),
	}
}

// NewHeadlessHeroScene creates a scene without input handling, driven by rng.
func NewHeadlessHeroScene(hero cfg.HeroConfig, rng systems.Rand) *HeroScene {
	return &HeroScene{
		config: hero,
		rng:    rng,
		start:  time.Now(),
	}
}

// Update advances the effect to the current wall-clock time
func (hs *HeroScene) Update() {
	hs.Tick(float64(time.Since(hs.start).Microseconds()) / 1000)
}

// Tick runs one frame at now, in ms since the scene was created
func (hs *HeroScene) Tick(now float64) {
	hs.once.Do(hs.configure)
	if hs.destroyed {
		return
	}

	hs.drainImageMeta()

	em := components.Emitter.Get(hs.hero)
	em.Dt = math.Max(0, math.Min(cfg.Sparks.MaxDtMS, now-em.LastT)) / 1000
	em.LastT = now
	em.Now = now

	hs.ecs.Update()
}

func (hs *HeroScene) Draw(screen *ebiten.Image) {
	if hs.destroyed || hs.ecs == nil {
		return
	}
	screen.Clear()
	hs.ecs.Draw(screen)
}

// Resize is the container resize hook. w and h are logical pixels.
func (hs *HeroScene) Resize(w, h, deviceScale float64) {
	hs.once.Do(hs.configure)
	if hs.destroyed || !hs.resizeAttached {
		return
	}
	systems.ResizeSurface(hs.hero, w, h, deviceScale)
}

// BackingSize returns the pixel size of the drawing surface
func (hs *HeroScene) BackingSize() (int, int) {
	hs.once.Do(hs.configure)
	surface := components.Surface.Get(hs.hero)
	return surface.BackingW, surface.BackingH
}

// ApplyImageMeta records the background image's natural size. It is a no-op
// once the scene is closed.
func (hs *HeroScene) ApplyImageMeta(meta assets.ImageMeta) {
	hs.once.Do(hs.configure)
	if hs.destroyed {
		return
	}
	origin := components.Origin.Get(hs.hero)
	origin.NaturalW = float64(meta.Width)
	origin.NaturalH = float64(meta.Height)

	zap.L().Debug("hero image size known",
		zap.Int("width", meta.Width),
		zap.Int("height", meta.Height),
		zap.String("format", meta.Format),
	)
}

// QuitRequested reports whether the user asked to leave
func (hs *HeroScene) QuitRequested() bool {
	if hs.ecs == nil {
		return false
	}
	return systems.GetOrCreateSettings(hs.ecs).QuitRequested
}

// Close tears the scene down: no more ticks, frames or resizes, and a
// pending image load is abandoned. Calling it again does nothing.
func (hs *HeroScene) Close() {
	hs.once.Do(hs.configure)
	if hs.destroyed {
		return
	}
	hs.destroyed = true
	hs.resizeAttached = false
	if hs.cancel != nil {
		hs.cancel()
	}
	hs.meta = nil

	var sparks []donburi.Entity
	tags.Spark.Each(hs.ecs.World, func(e *donburi.Entry) {
		sparks = append(sparks, e.Entity())
	})
	for _, s := range sparks {
		hs.ecs.World.Remove(s)
	}
}

// drainImageMeta applies a finished background load without blocking
func (hs *HeroScene) drainImageMeta() {
	if hs.meta == nil {
		return
	}
	select {
	case meta, ok := <-hs.meta:
		hs.meta = nil
		if ok {
			hs.ApplyImageMeta(meta)
		}
	default:
	}
}

func (hs *HeroScene) configure() {
	hs.ecs = ecs.NewECS(donburi.NewWorld())

	if hs.interactive {
		hs.ecs.AddSystem(systems.UpdateInput)
		hs.ecs.AddSystem(systems.UpdateSettings)
		hs.ecs.AddSystem(systems.UpdateCalibration)
	}
	hs.ecs.AddSystem(systems.NewUpdateSpawner(hs.rng))
	hs.ecs.AddSystem(systems.NewUpdateSparkPhysics(hs.rng))

	hs.ecs.AddRenderer(cfg.Default, systems.DrawFlash)
	hs.ecs.AddRenderer(cfg.Default, systems.DrawSparks)
	hs.ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)

	hs.hero = archetypes.Hero.Spawn(hs.ecs)

	obj := resolv.NewObject(0, 0, 0, 0, tags.ResolvContainer)
	obj.Data = hs.hero
	components.Object.Set(hs.hero, &components.ObjectData{Object: obj})

	components.Origin.SetValue(hs.hero, components.OriginData{
		XPercent:   hs.config.XPercent,
		YPercent:   hs.config.YPercent,
		AnchorX:    hs.config.AnchorX,
		AnchorY:    hs.config.AnchorY,
		ObjectPosX: hs.config.ObjectPosX,
		ObjectPosY: hs.config.ObjectPosY,
	})

	components.Emitter.SetValue(hs.hero, components.EmitterData{
		Intensity: hs.config.Intensity,
	})

	hs.resizeAttached = true
	systems.ResizeSurface(hs.hero, 0, 0, 1)

	if hs.interactive {
		cal := hs.ecs.World.Entry(hs.ecs.World.Create(components.Calibration))
		components.Calibration.SetValue(cal, components.CalibrationData{ImageSrc: hs.config.ImageSrc})
	}

	if hs.config.ImageSrc != "" {
		ctx, cancel := context.WithCancel(context.Background())
		hs.cancel = cancel
		hs.meta = assets.LoadImageMeta(ctx, hs.config.ImageSrc)
	}
}
