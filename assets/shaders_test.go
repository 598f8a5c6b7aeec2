package assets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShaderSourcesEmbedded(t *testing.T) {
	for path := range shaderSources {
		src, err := shaderFS.ReadFile(path)
		require.NoError(t, err, path)
		assert.True(t, strings.HasPrefix(string(src), "//kage:unit pixels"), path)
	}
}

func TestFlashShaderUniforms(t *testing.T) {
	src, err := shaderFS.ReadFile("shaders/flash.kage")
	require.NoError(t, err)

	for _, name := range []string{"Center", "Focus", "Radius", "Alpha", "Offsets", "Color0", "Color1", "Color2", "Color3"} {
		assert.Contains(t, string(src), "var "+name+" ", name)
	}
}
