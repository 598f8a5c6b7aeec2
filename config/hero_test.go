package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeHero(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hero.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadHeroKeepsDefaultsForMissingKeys(t *testing.T) {
	path := writeHero(t, "intensity: 1.5\nimage_src: hero.webp\nanchor_x: 812\nanchor_y: 430\n")

	hero, err := LoadHero(path)
	require.NoError(t, err)

	assert.Equal(t, 1.5, hero.Intensity)
	assert.Equal(t, "hero.webp", hero.ImageSrc)
	assert.Equal(t, 812.0, hero.AnchorX)
	assert.Equal(t, 430.0, hero.AnchorY)
	assert.Equal(t, 65.0, hero.XPercent)
	assert.Equal(t, 65.0, hero.YPercent)
	assert.Equal(t, 0.5, hero.ObjectPosX)
	assert.Equal(t, 0.5, hero.ObjectPosY)
	assert.True(t, hero.HasAnchor())
}

func TestLoadHeroMissingFile(t *testing.T) {
	_, err := LoadHero(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadHeroRejectsInvalidValues(t *testing.T) {
	path := writeHero(t, "intensity: 0\n")

	_, err := LoadHero(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadHeroBadYAML(t *testing.T) {
	path := writeHero(t, "intensity: [1, 2\n")

	_, err := LoadHero(path)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(h *HeroConfig)
		ok     bool
	}{
		{"defaults", func(h *HeroConfig) {}, true},
		{"negative intensity", func(h *HeroConfig) { h.Intensity = -1 }, false},
		{"x percent over 100", func(h *HeroConfig) { h.XPercent = 101 }, false},
		{"y percent below 0", func(h *HeroConfig) { h.YPercent = -0.1 }, false},
		{"object pos x over 1", func(h *HeroConfig) { h.ObjectPosX = 1.2 }, false},
		{"object pos y below 0", func(h *HeroConfig) { h.ObjectPosY = -0.5 }, false},
		{"edges", func(h *HeroConfig) { h.XPercent, h.YPercent, h.ObjectPosX, h.ObjectPosY = 0, 100, 0, 1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := DefaultHero()
			tt.mutate(&h)
			err := h.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

func TestHasAnchor(t *testing.T) {
	assert.False(t, DefaultHero().HasAnchor())
	h := DefaultHero()
	h.AnchorY = 12
	assert.True(t, h.HasAnchor())
}
