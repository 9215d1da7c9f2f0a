package blocks

import "time"

// Status is the per-frame control state of a game. It is passed and
// returned by value.
type Status struct {
	IsGameOver              bool
	IsFirstRun              bool
	IsPaused                bool
	ShouldRedraw            bool
	ShouldResetLastDownTick bool
	FinishedRowCount        int
	LastDownTick            time.Duration // Time of the last automatic descent
	TimeFrame               time.Duration // Time of the current frame
}

// NewStatus returns the state of a game that has not been started: paused
// on the welcome screen.
func NewStatus() Status {
	return Status{
		IsFirstRun:              true,
		IsPaused:                true,
		ShouldRedraw:            true,
		ShouldResetLastDownTick: true,
	}
}

// Phase names what the player is looking at.
type Phase string

const (
	PhaseWelcome  Phase = "welcome"
	PhasePlaying  Phase = "playing"
	PhasePaused   Phase = "paused"
	PhaseGameOver Phase = "game_over"
)

// Phase derives the current phase from the flags.
func (s Status) Phase() Phase {
	switch {
	case !s.IsPaused:
		return PhasePlaying
	case s.IsFirstRun:
		return PhaseWelcome
	case s.IsGameOver:
		return PhaseGameOver
	default:
		return PhasePaused
	}
}
