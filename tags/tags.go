package tags

import "github.com/yohamta/donburi"

var (
	Car      = donburi.NewTag().SetName("Car")
	Street   = donburi.NewTag().SetName("Street")
	Viewport = donburi.NewTag().SetName("Viewport")
	Overlay  = donburi.NewTag().SetName("Overlay")
)
