package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// OverlayData is the loading/failure notice drawn over the scene.
type OverlayData struct {
	Message string
	Failed  bool
	Pulse   *gween.Tween
	Alpha   float64
}

var Overlay = donburi.NewComponentType[OverlayData]()
