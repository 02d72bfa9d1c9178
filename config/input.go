package config

// InputModeID is the single input source selected at scene start
type InputModeID int

const (
	InputModeNone InputModeID = iota
	InputModePointer
	InputModeOrientation
)

func (m InputModeID) String() string {
	switch m {
	case InputModePointer:
		return "pointer"
	case InputModeOrientation:
		return "orientation"
	}
	return "none"
}
