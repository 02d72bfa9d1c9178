package components

import (
	"image/color"

	"github.com/automoto/testarossa/assets"
	"github.com/yohamta/donburi"
)

type ModelData struct {
	Name  string
	Mesh  *assets.Mesh
	Color color.NRGBA
}

var Model = donburi.NewComponentType[ModelData]()
