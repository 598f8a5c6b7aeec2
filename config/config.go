package config

import "image/color"

// SparkConfig contains the physics, look and emission tuning for weld sparks
type SparkConfig struct {
	// Physics
	Gravity       float64 // px/s^2
	Drag          float64 // per-frame velocity damping (0.97-0.995)
	DragFrameRate float64 // frames per second the drag factor is expressed in
	MaxDtMS       float64 // upper bound for a single step, avoids blowups after tab switches

	// Turbulence (per-frame velocity deltas, px/s)
	TurbulenceXMin float64
	TurbulenceXMax float64
	TurbulenceYMin float64
	TurbulenceYMax float64

	// Look
	FadePow    float64 // 1 = linear, larger fades out later
	Tail       float64 // trail length in px
	HeadRadius float64 // head circle radius as a fraction of size
	SizeMin    float64
	SizeMax    float64
	HueMin     float64 // degrees
	HueMax     float64
	TrailSat   float64
	TrailLight float64
	HeadSat    float64
	HeadLight  float64

	// Launch
	SpeedMin         float64
	SpeedMax         float64
	SpeedJitterMin   float64 // multiplicative jitter applied to the launch speed
	SpeedJitterMax   float64
	LifeMinMS        float64
	LifeMaxMS        float64
	ThetaSpread      float64 // spread around pi (leftward)
	FullRandomChance float64 // chance of a uniform 360 degree launch
	UpBias           float64 // fraction of speed subtracted from vy at most
	VerticalScale    float64 // vy is cos/sin * speed * VerticalScale

	// Emission schedule (ms)
	BaseIntervalMin float64
	BaseIntervalMax float64
	PauseChance     float64
	PauseMin        float64
	PauseMax        float64
	BurstChance     float64
	BurstCountMin   float64
	BurstCountMax   float64
	BurstStepMin    float64
	BurstStepMax    float64

	// Store
	PopulationFactor float64 // capacity = floor(PopulationFactor * intensity)
	ExitMargin       float64 // px outside the visible rect before a spark is culled
}

// GradientStop is one color stop of the flash gradient
type GradientStop struct {
	Offset float64
	Color  color.NRGBA
}

// FlashConfig contains the emission flare configuration
type FlashConfig struct {
	DurationMS     float64
	PeakAlpha      float64
	Radius         float64
	FocusOffsetX   float64 // inner circle of the radial gradient sits off-center
	FocusOffsetY   float64
	PulseFrequency float64 // radians per ms
	PulseAmplitude float64
	Stops          []GradientStop
}

// SurfaceConfig contains drawing surface configuration
type SurfaceConfig struct {
	MaxDPR float64
}

// HUDConfig contains debug overlay configuration
type HUDConfig struct {
	TextColor      color.RGBA
	CrosshairColor color.RGBA
	CrosshairSize  float64
	Margin         float64
	LineHeight     float64
	FontSize       float64
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowHUD   bool // draw spark count, origin and surface info
	Calibrate bool // start with click-to-calibrate enabled
}

// Global configuration instances
var C *Config
var Sparks SparkConfig
var Flash FlashConfig
var Surface SurfaceConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "Weld Sparks",
	}

	Sparks = SparkConfig{
		Gravity:       2200,
		Drag:          0.985,
		DragFrameRate: 60,
		MaxDtMS:       64,

		TurbulenceXMin: -30,
		TurbulenceXMax: 30,
		TurbulenceYMin: -40,
		TurbulenceYMax: 20,

		FadePow:    2.10,
		Tail:       12,
		HeadRadius: 0.9,
		SizeMin:    1.4,
		SizeMax:    2.6,
		HueMin:     26,
		HueMax:     42,
		TrailSat:   0.90,
		TrailLight: 0.58,
		HeadSat:    0.95,
		HeadLight:  0.70,

		SpeedMin:         520, // violent start
		SpeedMax:         1100,
		SpeedJitterMin:   0.9,
		SpeedJitterMax:   1.2,
		LifeMinMS:        400, // short life
		LifeMaxMS:        750,
		ThetaSpread:      0.9,
		FullRandomChance: 0.35,
		UpBias:           0.12,
		VerticalScale:    0.18,

		BaseIntervalMin: 90,
		BaseIntervalMax: 280,
		PauseChance:     0.35,
		PauseMin:        450,
		PauseMax:        1200,
		BurstChance:     0.35,
		BurstCountMin:   1,
		BurstCountMax:   3,
		BurstStepMin:    16,
		BurstStepMax:    35,

		PopulationFactor: 70,
		ExitMargin:       50,
	}

	Flash = FlashConfig{
		DurationMS:     10,
		PeakAlpha:      0.85,
		Radius:         60,
		FocusOffsetX:   8,
		FocusOffsetY:   4,
		PulseFrequency: 0.025,
		PulseAmplitude: 0.04,
		Stops: []GradientStop{
			{Offset: 0, Color: color.NRGBA{R: 255, G: 255, B: 255, A: 242}},
			{Offset: 0.15, Color: color.NRGBA{R: 180, G: 235, B: 255, A: 242}},
			{Offset: 0.35, Color: color.NRGBA{R: 45, G: 183, B: 255, A: 191}},
			{Offset: 1, Color: color.NRGBA{R: 45, G: 183, B: 255, A: 0}},
		},
	}

	Surface = SurfaceConfig{
		MaxDPR: 2,
	}

	HUD = HUDConfig{
		TextColor:      White,
		CrosshairColor: LightBlue,
		CrosshairSize:  8,
		Margin:         10,
		LineHeight:     16,
		FontSize:       12,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		ShowHUD:   false,
		Calibrate: false,
	}
}
