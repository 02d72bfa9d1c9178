package components

import "github.com/yohamta/donburi"

// ViewportData mirrors the drawing surface. AspectRatio is always
// Width/Height of the same update.
type ViewportData struct {
	Width            int
	Height           int
	AspectRatio      float64
	HorizontalCenter float64 // half the window width, in pointer coordinates
}

var Viewport = donburi.NewComponentType[ViewportData]()
