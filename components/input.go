package components

import (
	cfg "github.com/automoto/testarossa/config"
	"github.com/yohamta/donburi"
)

// InputSourceData records the one input source chosen at scene start.
type InputSourceData struct {
	Mode     cfg.InputModeID
	Samples  uint64 // samples applied to the target
	Rejected uint64 // samples ignored for missing or non-finite coordinates
}

var InputSource = donburi.NewComponentType[InputSourceData]()
