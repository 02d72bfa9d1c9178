//go:build !js

package ebitenhost

import (
	"github.com/automoto/testarossa/host"
	"github.com/automoto/testarossa/logging"
	"github.com/hajimehoshi/ebiten/v2"
)

func windowSize() host.Size {
	w, h := ebiten.WindowSize()
	return host.Size{Width: w, Height: h}
}

// Desktop windows report no touch capability; touches still arrive as
// pointer moves through ebiten.
func touchCapable() bool {
	return false
}

func listenOrientation(func(host.OrientationEvent)) {
	logging.L().Named("host").Warn("device orientation is not available on this platform")
}
