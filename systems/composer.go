package systems

import (
	"github.com/automoto/testarossa/assets"
	cfg "github.com/automoto/testarossa/config"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	sceneImage *ebiten.Image
	blitOp     = &ebiten.DrawImageOptions{}
	shaderOp   = &ebiten.DrawRectShaderOptions{}
)

// offscreen returns the frame buffer the scene is drawn into, reallocated
// when the screen size changes.
func offscreen(w, h int) *ebiten.Image {
	if sceneImage != nil {
		b := sceneImage.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return sceneImage
		}
		sceneImage.Deallocate()
	}
	sceneImage = ebiten.NewImage(w, h)
	return sceneImage
}

// compose copies src onto screen through the post-processing shader, or as a
// plain blit when the shader is not available.
func compose(screen, src *ebiten.Image) {
	if assets.PostShader == nil {
		blitOp.GeoM.Reset()
		screen.DrawImage(src, blitOp)
		return
	}

	b := src.Bounds()
	shaderOp.Images[0] = src
	shaderOp.Uniforms = map[string]any{
		"Scanlines": cfg.Scene.Scanlines,
		"Vignette":  cfg.Scene.Vignette,
	}
	screen.DrawRectShader(b.Dx(), b.Dy(), assets.PostShader, shaderOp)
}
