package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

// FlashShader draws the radial flare at the weld point. It stays nil until
// LoadShaders succeeds.
var FlashShader *ebiten.Shader

var shaderSources = map[string]**ebiten.Shader{
	"shaders/flash.kage": &FlashShader,
}

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	for path, dst := range shaderSources {
		src, err := shaderFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read shader %s: %w", path, err)
		}
		sh, err := ebiten.NewShader(src)
		if err != nil {
			return fmt.Errorf("compile shader %s: %w", path, err)
		}
		*dst = sh
	}
	return nil
}
