package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// PostShader adds scanlines and a vignette to the composed frame
	PostShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	src, err := shaderFS.ReadFile("shaders/post.kage")
	if err != nil {
		return Error.Wrap(err)
	}
	PostShader, err = ebiten.NewShader(src)
	if err != nil {
		return Error.Wrap(err)
	}
	return nil
}
