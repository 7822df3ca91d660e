package mcts

// ListenerStats is a snapshot of the running search, handed to listener
// callbacks.
type ListenerStats struct {
	Cycles     uint32
	Cps        uint32
	TimeMs     int
	Size       int
	Path       []int // current best line, arena indices from the root's child down
	StopReason StopReason
}

// Listener function callback, receives the current search statistics
type ListenerFunc func(ListenerStats)

// StatsListener delivers periodic updates from a running search.
type StatsListener struct {
	// called every N full cycles
	onCycle ListenerFunc
	nCycles int

	// called once, when the search stops, making the StopReason available
	onStop ListenerFunc
}

func NewStatsListener() StatsListener {
	return StatsListener{nCycles: 1}
}

// Attach an on-cycle callback. Every call re-traces the current best line,
// which slows the search down noticeably for small intervals, so combine it
// with SetCycleInterval.
func (listener *StatsListener) OnCycle(onCycle ListenerFunc) *StatsListener {
	listener.onCycle = onCycle
	return listener
}

// Call the on-cycle callback every n cycles
func (listener *StatsListener) SetCycleInterval(n int) *StatsListener {
	if n < 1 {
		n = 1
	}
	listener.nCycles = n
	return listener
}

// Attach an 'on search end' callback, called once when the search stops
func (listener *StatsListener) OnStop(onStop ListenerFunc) *StatsListener {
	listener.onStop = onStop
	return listener
}

// SetListener replaces the tree's search listener.
func (tree *Tree[T, S]) SetListener(listener StatsListener) {
	tree.listener = listener
}

// StatsListener exposes the tree's search listener for configuration.
func (tree *Tree[T, S]) StatsListener() *StatsListener {
	return &tree.listener
}
