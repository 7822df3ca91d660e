package mcts

import (
	"github.com/rs/zerolog/log"
)

// SearchResult summarizes a finished search.
type SearchResult struct {
	// Best line found, as arena indices from the root's immediate child
	// down to the deepest node on the line. Empty when the root is terminal.
	Path []int

	// Arena index of the root child on the best line, NoParent when the
	// root has no children.
	BestChild int

	Cycles     uint32
	Cps        uint32
	TimeMs     int
	StopReason StopReason
}

// Search runs full select -> expand -> simulate -> backpropagate cycles
// against the tree until the limits are exhausted or Stop is called, using
// ExplorationParam for the descent. It then re-runs selection with an
// exploration factor of zero (pure exploitation) from the root and reports
// the reconstructed path as the best line.
func (tree *Tree[T, S]) Search(limits *Limits) SearchResult {
	tree.stop.Store(false)
	timer := newSearchTimer()
	timer.movetime(limits.Movetime)

	var cycles uint32
	reason := StopNone

	for {
		if tree.stop.Load() {
			reason = StopInterrupt
			break
		}
		if !limits.Infinite && cycles >= limits.Cycles {
			reason = StopCycles
			break
		}
		if !limits.Infinite && timer.isEnd() {
			reason = StopMovetime
			break
		}

		selected := tree.Select(0, ExplorationParam)
		expanded := tree.Expand(selected)
		result := tree.Simulate(expanded)
		tree.Backpropagate(expanded, result)

		cycles++
		if tree.listener.onCycle != nil && cycles%uint32(tree.listener.nCycles) == 0 {
			tree.listener.onCycle(tree.listenerStats(cycles, &timer, StopNone))
		}
	}

	stats := tree.listenerStats(cycles, &timer, reason)
	if tree.listener.onStop != nil {
		tree.listener.onStop(stats)
	}

	bestChild := NoParent
	if len(stats.Path) > 0 {
		bestChild = stats.Path[0]
	}

	log.Debug().
		Uint32("cycles", cycles).
		Uint32("cps", stats.Cps).
		Int("size", tree.Size()).
		Stringer("stop", reason).
		Msg("search finished")

	return SearchResult{
		Path:       stats.Path,
		BestChild:  bestChild,
		Cycles:     cycles,
		Cps:        stats.Cps,
		TimeMs:     stats.TimeMs,
		StopReason: reason,
	}
}

// Stop interrupts a running search. The only tree method safe to call from
// another goroutine.
func (tree *Tree[T, S]) Stop() {
	tree.stop.Store(true)
}

func (tree *Tree[T, S]) listenerStats(cycles uint32, timer *searchTimer, reason StopReason) ListenerStats {
	elapsed := timer.deltatime()
	return ListenerStats{
		Cycles:     cycles,
		Cps:        cycles * 1000 / uint32(elapsed),
		TimeMs:     elapsed,
		Size:       tree.Size(),
		Path:       tree.TracePath(tree.Select(0, 0)),
		StopReason: reason,
	}
}
