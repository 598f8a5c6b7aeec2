package scenes

import (
	"bytes"
	"image"
	"image/png"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weldworks/weldsparks/assets"
	"github.com/weldworks/weldsparks/components"
	cfg "github.com/weldworks/weldsparks/config"
	"github.com/weldworks/weldsparks/systems"
	"go.uber.org/goleak"
)

func newTestScene(t *testing.T, hero cfg.HeroConfig) *HeroScene {
	t.Helper()
	hs := NewHeadlessHeroScene(hero, rand.New(rand.NewPCG(3, 5)))
	hs.Resize(800, 450, 1)
	t.Cleanup(hs.Close)
	return hs
}

func runFrames(hs *HeroScene, from, to, step float64) float64 {
	now := from
	for now < to {
		now += step
		hs.Tick(now)
	}
	return now
}

func TestHeroSceneEmits(t *testing.T) {
	hs := newTestScene(t, cfg.DefaultHero())

	runFrames(hs, 0, 3000, 16)

	em := components.Emitter.Get(hs.hero)
	assert.True(t, em.HasFlash)
	assert.LessOrEqual(t, systems.CountSparks(hs.ecs), systems.Capacity(1))
	assert.InDelta(t, 0.016, em.Dt, 1e-9)
}

func TestHeroSceneClampsDt(t *testing.T) {
	hs := newTestScene(t, cfg.DefaultHero())

	hs.Tick(16)
	hs.Tick(5016)
	assert.InDelta(t, 0.064, components.Emitter.Get(hs.hero).Dt, 1e-12)

	hs.Tick(4000)
	assert.Equal(t, 0.0, components.Emitter.Get(hs.hero).Dt)
}

func TestHeroSceneResize(t *testing.T) {
	hs := newTestScene(t, cfg.DefaultHero())

	hs.Resize(1000, 500, 3)
	w, h := hs.BackingSize()
	assert.Equal(t, 2000, w)
	assert.Equal(t, 1000, h)

	hs.Resize(0, 0, 1)
	w, h = hs.BackingSize()
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}

func TestHeroSceneImageMetaMovesOrigin(t *testing.T) {
	hero := cfg.DefaultHero()
	hero.AnchorX, hero.AnchorY = 1200, 600
	hs := newTestScene(t, hero)
	hs.Resize(800, 450, 1)

	hs.ApplyImageMeta(assets.ImageMeta{Width: 1600, Height: 900, Format: "png"})

	origin := components.Origin.Get(hs.hero)
	x, y := systems.OriginPx(800, 450, origin)
	assert.Equal(t, 600.0, x)
	assert.Equal(t, 300.0, y)
}

func TestHeroSceneLoadsImageInBackground(t *testing.T) {
	defer goleak.VerifyNone(t)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 160, 90))))
	path := filepath.Join(t.TempDir(), "hero.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	hero := cfg.DefaultHero()
	hero.ImageSrc = path
	hs := NewHeadlessHeroScene(hero, rand.New(rand.NewPCG(1, 1)))
	defer hs.Close()

	origin := func() *components.OriginData { return components.Origin.Get(hs.hero) }

	now := 0.0
	require.Eventually(t, func() bool {
		now += 16
		hs.Tick(now)
		return origin().NaturalW > 0
	}, 5*time.Second, 5*time.Millisecond)

	assert.Equal(t, 160.0, origin().NaturalW)
	assert.Equal(t, 90.0, origin().NaturalH)
}

func TestHeroSceneClose(t *testing.T) {
	defer goleak.VerifyNone(t)

	hero := cfg.DefaultHero()
	hero.ImageSrc = filepath.Join(t.TempDir(), "never-read.png")
	hs := NewHeadlessHeroScene(hero, rand.New(rand.NewPCG(9, 9)))
	hs.Resize(800, 450, 1)
	runFrames(hs, 0, 2000, 16)

	hs.Close()
	assert.Equal(t, 0, systems.CountSparks(hs.ecs))

	em := *components.Emitter.Get(hs.hero)
	runFrames(hs, 2000, 4000, 16)
	assert.Equal(t, 0, systems.CountSparks(hs.ecs), "no spawns after teardown")
	assert.Equal(t, em, *components.Emitter.Get(hs.hero), "clock stopped")

	hs.ApplyImageMeta(assets.ImageMeta{Width: 10, Height: 10})
	assert.Equal(t, 0.0, components.Origin.Get(hs.hero).NaturalW, "late image load ignored")

	hs.Resize(100, 100, 1)
	assert.Equal(t, 800.0, components.Object.Get(hs.hero).W, "resize hook detached")

	assert.NotPanics(t, func() { hs.Draw(nil) }, "no frames after teardown")
	assert.NotPanics(t, hs.Close, "closing twice")
}

func TestHeroSceneCloseBeforeFirstTick(t *testing.T) {
	hs := NewHeadlessHeroScene(cfg.DefaultHero(), rand.New(rand.NewPCG(2, 2)))
	hs.Close()
	hs.Tick(16)
	assert.Equal(t, 0, systems.CountSparks(hs.ecs))
	assert.False(t, hs.QuitRequested())
}
