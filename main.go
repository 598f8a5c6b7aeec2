package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"github.com/weldworks/weldsparks/assets"
	"github.com/weldworks/weldsparks/config"
	"github.com/weldworks/weldsparks/fonts"
	"github.com/weldworks/weldsparks/scenes"
	"github.com/weldworks/weldsparks/systems"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath string
	verbose    bool
	hero       = config.DefaultHero()
)

var rootCmd = &cobra.Command{
	Use:   "weldsparks",
	Short: "Animated weld sparks over a hero image",
	Long: `weldsparks renders short-lived welding sparks and a blue-white flash at a
point of a hero image, scaled to the window and the display's pixel density.

The weld point is either a percentage of the window or, when --image is
given, a pixel anchor in that image kept in place across resizes.
Press C and click the weld point to calibrate the anchor.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err := zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		zap.ReplaceGlobals(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
	RunE: run,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&configPath, "config", "", "YAML hero config file")
	f.StringVar(&hero.ImageSrc, "image", hero.ImageSrc, "hero image path or URL, read for its size only")
	f.Float64Var(&hero.Intensity, "intensity", hero.Intensity, "spark density: 0.5 fewer, 1 normal, 2+ many")
	f.Float64Var(&hero.XPercent, "x", hero.XPercent, "fallback weld point, percent of width")
	f.Float64Var(&hero.YPercent, "y", hero.YPercent, "fallback weld point, percent of height")
	f.Float64Var(&hero.AnchorX, "anchor-x", hero.AnchorX, "weld point x in image pixels")
	f.Float64Var(&hero.AnchorY, "anchor-y", hero.AnchorY, "weld point y in image pixels")
	f.Float64Var(&hero.ObjectPosX, "object-pos-x", hero.ObjectPosX, "horizontal cover alignment, 0-1")
	f.Float64Var(&hero.ObjectPosY, "object-pos-y", hero.ObjectPosY, "vertical cover alignment, 0-1")
	f.IntVar(&config.C.Width, "width", config.C.Width, "initial window width")
	f.IntVar(&config.C.Height, "height", config.C.Height, "initial window height")
	f.BoolVar(&config.Debug.Calibrate, "calibrate", false, "start in click-to-calibrate mode")
	f.BoolVar(&config.Debug.ShowHUD, "debug", false, "show the debug overlay")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// heroFlags are the flags that override values from --config
var heroFlags = []string{
	"image", "intensity", "x", "y",
	"anchor-x", "anchor-y", "object-pos-x", "object-pos-y",
}

func run(cmd *cobra.Command, args []string) error {
	h, err := resolveHero(cmd)
	if err != nil {
		return err
	}

	if err := fonts.LoadDefaults(config.HUD.FontSize); err != nil {
		return fmt.Errorf("load fonts: %w", err)
	}
	if err := assets.LoadShaders(); err != nil {
		zap.S().Warnw("flash shader unavailable, using plain flash", "error", err)
	}

	if err := systems.InitPersistence("weldsparks"); err == nil {
		applySavedAnchor(&h)
	}

	zap.S().Infow("starting",
		"intensity", h.Intensity,
		"image", h.ImageSrc,
		"anchorX", h.AnchorX,
		"anchorY", h.AnchorY,
	)

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := NewGame(h)
	defer g.scene.Close()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// resolveHero merges the config file with the flags the user actually set
func resolveHero(cmd *cobra.Command) (config.HeroConfig, error) {
	if configPath == "" {
		return hero, hero.Validate()
	}

	h, err := config.LoadHero(configPath)
	if err != nil {
		return h, err
	}

	flags := cmd.Flags()
	for _, name := range heroFlags {
		if !flags.Changed(name) {
			continue
		}
		switch name {
		case "image":
			h.ImageSrc = hero.ImageSrc
		case "intensity":
			h.Intensity = hero.Intensity
		case "x":
			h.XPercent = hero.XPercent
		case "y":
			h.YPercent = hero.YPercent
		case "anchor-x":
			h.AnchorX = hero.AnchorX
		case "anchor-y":
			h.AnchorY = hero.AnchorY
		case "object-pos-x":
			h.ObjectPosX = hero.ObjectPosX
		case "object-pos-y":
			h.ObjectPosY = hero.ObjectPosY
		}
	}
	return h, h.Validate()
}

// applySavedAnchor uses the last calibration for the same image when no
// anchor was configured
func applySavedAnchor(h *config.HeroConfig) {
	if h.HasAnchor() || h.ImageSrc == "" {
		return
	}
	saved, err := systems.LoadAnchor()
	if err != nil || saved == nil || saved.ImageSrc != h.ImageSrc {
		return
	}
	h.AnchorX = saved.AnchorX
	h.AnchorY = saved.AnchorY
	zap.S().Infow("using saved anchor", "anchorX", h.AnchorX, "anchorY", h.AnchorY)
}

type Game struct {
	scene *scenes.HeroScene
}

func NewGame(h config.HeroConfig) *Game {
	return &Game{
		scene: scenes.NewHeroScene(h),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.scene.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout sizes the screen to the window's backing pixels so sparks stay sharp
// on high density displays.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.Resize(float64(outsideWidth), float64(outsideHeight), ebiten.Monitor().DeviceScaleFactor())
	return g.scene.BackingSize()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
