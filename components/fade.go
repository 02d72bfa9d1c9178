package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FadeData drives an entity's opacity from a tween.
type FadeData struct {
	Tween *gween.Tween
	Alpha float64
	Done  bool
}

var Fade = donburi.NewComponentType[FadeData]()
