package config

// PhaseID is the frame driver's lifecycle phase
type PhaseID int

const (
	PhaseIdle    PhaseID = iota // model still loading, loop not started
	PhaseRunning                // frame loop active
	PhaseFailed                 // model load failed; terminal
)

func (p PhaseID) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}
