package components

import "github.com/yohamta/donburi"

type GridData struct {
	Size      float64
	Divisions int
	Offset    float64 // scroll toward the camera, in [0, spacing)
}

// Spacing is the distance between adjacent grid lines.
func (g *GridData) Spacing() float64 {
	if g.Divisions <= 0 {
		return g.Size
	}
	return g.Size / float64(g.Divisions)
}

var Grid = donburi.NewComponentType[GridData]()
