package systems

import (
	"math"

	"github.com/automoto/testarossa/components"
	cfg "github.com/automoto/testarossa/config"
	"github.com/automoto/testarossa/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStreet scrolls the grid toward the camera, wrapping every line
// spacing so the pattern repeats seamlessly.
func UpdateStreet(e *ecs.ECS) {
	tags.Street.Each(e.World, func(entry *donburi.Entry) {
		grid := components.Grid.Get(entry)
		spacing := grid.Spacing()
		if spacing <= 0 {
			return
		}
		grid.Offset = math.Mod(grid.Offset+cfg.Grid.ScrollSpeed, spacing)
	})
}
