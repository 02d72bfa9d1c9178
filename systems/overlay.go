package systems

import (
	"github.com/automoto/testarossa/components"
	cfg "github.com/automoto/testarossa/config"
	"github.com/automoto/testarossa/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawOverlay renders the loading or failure notice centered on screen.
func DrawOverlay(e *ecs.ECS, screen *ebiten.Image) {
	if !fonts.Loaded(fonts.Title) {
		return
	}
	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	components.Overlay.Each(e.World, func(entry *donburi.Entry) {
		overlay := components.Overlay.Get(entry)

		face := fonts.Title.Get()
		c := cfg.Overlay.TextColor
		if overlay.Failed {
			face = fonts.Regular.Get()
			c = cfg.Overlay.FailureColor
		}

		textWidth := font.MeasureString(face, overlay.Message).Ceil()
		x := (width - textWidth) / 2
		y := height / 2
		text.Draw(screen, overlay.Message, face, x, y, withAlpha(c, overlay.Alpha))
	})
}
