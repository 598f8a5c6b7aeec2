package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure of a HeroConfig
var ErrInvalidConfig = errors.New("invalid hero config")

// HeroConfig describes where and how hard the sparks fly over the hero image.
// It is set once before the scene starts and never mutated by the loop.
type HeroConfig struct {
	// Fallback origin as a percentage of the container
	XPercent float64 `yaml:"x_percent"`
	YPercent float64 `yaml:"y_percent"`

	// 0.5 = fewer sparks, 1 = normal, 2+ = many
	Intensity float64 `yaml:"intensity"`

	// Background image, only read for its natural pixel size
	ImageSrc string `yaml:"image_src"`

	// Origin in pixels of the source image, used once its natural size is known
	AnchorX float64 `yaml:"anchor_x"`
	AnchorY float64 `yaml:"anchor_y"`

	// Cover alignment: 0 = start, 0.5 = center, 1 = end
	ObjectPosX float64 `yaml:"object_pos_x"`
	ObjectPosY float64 `yaml:"object_pos_y"`
}

// DefaultHero returns the configuration used when no file is given
func DefaultHero() HeroConfig {
	return HeroConfig{
		XPercent:   65,
		YPercent:   65,
		Intensity:  1,
		ObjectPosX: 0.5,
		ObjectPosY: 0.5,
	}
}

// LoadHero reads a YAML hero config. Keys missing from the file keep their defaults.
func LoadHero(path string) (HeroConfig, error) {
	hero := DefaultHero()

	data, err := os.ReadFile(path)
	if err != nil {
		return hero, fmt.Errorf("read hero config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &hero); err != nil {
		return hero, fmt.Errorf("parse hero config %s: %w", path, err)
	}
	if err := hero.Validate(); err != nil {
		return hero, fmt.Errorf("hero config %s: %w", path, err)
	}
	return hero, nil
}

// Validate rejects values the engine cannot work with
func (h HeroConfig) Validate() error {
	if h.Intensity <= 0 {
		return fmt.Errorf("%w: intensity must be positive, got %v", ErrInvalidConfig, h.Intensity)
	}
	if h.XPercent < 0 || h.XPercent > 100 {
		return fmt.Errorf("%w: x_percent must be within 0-100, got %v", ErrInvalidConfig, h.XPercent)
	}
	if h.YPercent < 0 || h.YPercent > 100 {
		return fmt.Errorf("%w: y_percent must be within 0-100, got %v", ErrInvalidConfig, h.YPercent)
	}
	if h.ObjectPosX < 0 || h.ObjectPosX > 1 {
		return fmt.Errorf("%w: object_pos_x must be within 0-1, got %v", ErrInvalidConfig, h.ObjectPosX)
	}
	if h.ObjectPosY < 0 || h.ObjectPosY > 1 {
		return fmt.Errorf("%w: object_pos_y must be within 0-1, got %v", ErrInvalidConfig, h.ObjectPosY)
	}
	return nil
}

// HasAnchor reports whether an image anchor was configured
func (h HeroConfig) HasAnchor() bool {
	return h.AnchorX != 0 || h.AnchorY != 0
}
