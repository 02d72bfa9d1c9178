package systems

import (
	"fmt"

	"github.com/automoto/testarossa/components"
	cfg "github.com/automoto/testarossa/config"
	"github.com/automoto/testarossa/fonts"
	"github.com/automoto/testarossa/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	statsMargin     = 8
	statsLineHeight = 14
	statsWidth      = 190
)

// DrawStats renders the development overlay: frame rate and the car's state.
func DrawStats(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowStats || !fonts.Loaded(fonts.Mono) {
		return
	}

	lines := []string{
		fmt.Sprintf("FPS %5.1f  TPS %5.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
	}
	if carEntry, ok := tags.Car.First(e.World); ok {
		m := components.Motion.Get(carEntry)
		lines = append(lines,
			fmt.Sprintf("frame  %d", m.Frame),
			fmt.Sprintf("x      %+.3f", m.PositionX),
			fmt.Sprintf("target %+.3f", m.TargetX),
			fmt.Sprintf("yaw    %+.4f", m.RotationY),
		)
	}
	if srcEntry, ok := components.InputSource.First(e.World); ok {
		src := components.InputSource.Get(srcEntry)
		lines = append(lines, fmt.Sprintf("input  %s (%d/%d)", src.Mode, src.Samples, src.Rejected))
	}

	vector.FillRect(screen,
		statsMargin, statsMargin,
		statsWidth, float32(len(lines)*statsLineHeight+8),
		cfg.Scene.ClearColor, false)

	face := fonts.Mono.Get()
	for i, line := range lines {
		y := statsMargin + (i+1)*statsLineHeight
		text.Draw(screen, line, face, statsMargin+4, y, cfg.Overlay.StatsTextColor)
	}
}
