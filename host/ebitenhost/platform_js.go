//go:build js && wasm

package ebitenhost

import (
	"syscall/js"

	"github.com/automoto/testarossa/host"
)

func windowSize() host.Size {
	w := js.Global().Get("window")
	return host.Size{
		Width:  w.Get("innerWidth").Int(),
		Height: w.Get("innerHeight").Int(),
	}
}

func touchCapable() bool {
	return js.Global().Get("Reflect").Call("has", js.Global().Get("window"), "ontouchstart").Bool()
}

// listenOrientation registers a deviceorientation listener for the page's
// lifetime. The callback runs outside the game loop, so it only queues.
func listenOrientation(push func(host.OrientationEvent)) {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		var ev host.OrientationEvent
		if len(args) > 0 {
			if gamma := args[0].Get("gamma"); gamma.Type() == js.TypeNumber {
				ev.Gamma = gamma.Float()
				ev.Valid = true
			}
		}
		push(ev)
		return nil
	})
	js.Global().Get("window").Call("addEventListener", "deviceorientation", fn, true)
}
