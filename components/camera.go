package components

import (
	"github.com/automoto/testarossa/gamemath"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	gamemath.Perspective
}

var Camera = donburi.NewComponentType[CameraData]()
