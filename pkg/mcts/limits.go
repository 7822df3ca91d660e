package mcts

import "math"

// StopReason tells why a search ended, valid on the search result.
type StopReason int

const (
	StopNone      StopReason = iota
	StopInterrupt            // stopped by the caller, via Stop()
	StopMovetime             // time budget exhausted
	StopCycles               // cycle budget exhausted
)

func (reason StopReason) String() string {
	switch reason {
	case StopInterrupt:
		return "Interrupt"
	case StopMovetime:
		return "Movetime"
	case StopCycles:
		return "Cycles"
	default:
		return "None"
	}
}

// Limits bound a search. A limit left at its default does not apply;
// setting any limit clears the Infinite flag.
type Limits struct {
	// Number of full select/expand/simulate/backpropagate cycles to run.
	Cycles uint32

	// Time budget in milliseconds, -1 for no time limit.
	Movetime int

	// Run until Stop() is called, ignoring the other limits.
	Infinite bool
}

const (
	DefaultCyclesLimit   uint32 = math.MaxUint32
	DefaultMovetimeLimit int    = -1
)

func DefaultLimits() *Limits {
	return &Limits{
		Cycles:   DefaultCyclesLimit,
		Movetime: DefaultMovetimeLimit,
		Infinite: true,
	}
}

// Set the number of search cycles to run
func (l *Limits) SetCycles(cycles uint32) *Limits {
	l.Cycles = cycles
	l.Infinite = false
	return l
}

// Set the maximum time to search, in milliseconds
func (l *Limits) SetMovetime(movetime int) *Limits {
	l.Movetime = movetime
	l.Infinite = false
	return l
}
