package mcts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// coinState is a tiny two-outcome game: six plies of binary choices, the
// last action played decides the winner.
type coinState struct {
	depth int
	last  uint16
}

func (coinState) Parse(string) (coinState, error) {
	return coinState{}, nil
}

func (s coinState) ApplyAction(action uint16) coinState {
	return coinState{depth: s.depth + 1, last: action}
}

func (coinState) StatusWithMovesLeft() bool { return true }

func (s coinState) Result() GameResult {
	if s.last == 0 {
		return FirstPlayerWin
	}
	return SecondPlayerWin
}

func (s coinState) GenerateLegalActions() []uint16 {
	if s.depth >= 6 {
		return nil
	}
	return []uint16{0, 1}
}

func (s coinState) SideToMove() bool { return s.depth%2 == 0 }

func TestSearchCycleBudget(t *testing.T) {
	tree := NewTreeFromState[uint16](coinState{}, WithSeed(42))

	result := tree.Search(DefaultLimits().SetCycles(500))

	require.Equal(t, uint32(500), result.Cycles)
	require.Equal(t, StopCycles, result.StopReason)

	// Every cycle backpropagates through the root exactly once.
	require.Equal(t, uint32(500), tree.Root().Sims)

	// The best line starts at a direct child of the root and ends at the
	// selected leaf.
	require.NotEmpty(t, result.Path)
	require.Equal(t, result.Path[0], result.BestChild)
	require.Equal(t, 0, tree.Arena[result.BestChild].Parent)

	for i := range tree.Arena {
		node := &tree.Arena[i]
		require.LessOrEqual(t, node.Wins+node.Draws, node.Sims)
	}
}

func TestSearchReproducibleWithSeed(t *testing.T) {
	run := func() SearchResult {
		tree := NewTreeFromState[uint16](coinState{}, WithSeed(3))
		return tree.Search(DefaultLimits().SetCycles(200))
	}

	require.Equal(t, run().Path, run().Path)
}

func TestSearchMovetime(t *testing.T) {
	tree := NewTreeFromState[uint16](coinState{})

	result := tree.Search(DefaultLimits().SetMovetime(30))

	require.Equal(t, StopMovetime, result.StopReason)
	require.NotZero(t, result.Cycles)
}

func TestSearchStop(t *testing.T) {
	tree := NewTreeFromState[uint16](coinState{})

	go func() {
		time.Sleep(20 * time.Millisecond)
		tree.Stop()
	}()

	result := tree.Search(DefaultLimits())
	require.Equal(t, StopInterrupt, result.StopReason)
}

func TestSearchListener(t *testing.T) {
	tree := NewTreeFromState[uint16](coinState{}, WithSeed(1))

	var cycleCalls int
	var stopped *ListenerStats
	tree.StatsListener().
		OnCycle(func(ListenerStats) { cycleCalls++ }).
		SetCycleInterval(100).
		OnStop(func(stats ListenerStats) { stopped = &stats })

	tree.Search(DefaultLimits().SetCycles(500))

	require.Equal(t, 5, cycleCalls)
	require.NotNil(t, stopped)
	require.Equal(t, StopCycles, stopped.StopReason)
	require.Equal(t, uint32(500), stopped.Cycles)
	require.NotEmpty(t, stopped.Path)
}

func TestSearchTerminalRoot(t *testing.T) {
	// A root with no legal actions at all: the search still runs its
	// cycles, but there is no line to report.
	tree := NewTreeFromState[uint16](placeholderState{})

	result := tree.Search(DefaultLimits().SetCycles(10))

	require.Equal(t, NoParent, result.BestChild)
	require.Empty(t, result.Path)
	require.Equal(t, 1, tree.Size())
}
