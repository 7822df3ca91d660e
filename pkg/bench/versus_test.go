package bench

import (
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/aklimk/mcts/pkg/mcts"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	m.Run()
}

// fixedGame always ends after four plies with a first-player win, which
// makes the expected match accounting exact.
type fixedGame struct {
	depth int
}

func (fixedGame) Parse(string) (fixedGame, error) {
	return fixedGame{}, nil
}

func (g fixedGame) ApplyAction(uint16) fixedGame {
	return fixedGame{depth: g.depth + 1}
}

func (fixedGame) StatusWithMovesLeft() bool { return true }
func (fixedGame) Result() mcts.GameResult   { return mcts.FirstPlayerWin }

func (g fixedGame) GenerateLegalActions() []uint16 {
	if g.depth >= 4 {
		return nil
	}
	return []uint16{0, 1}
}

func (g fixedGame) SideToMove() bool { return g.depth%2 == 0 }

func TestVersusAccounting(t *testing.T) {
	player := Player{
		Limits:      mcts.DefaultLimits().SetCycles(50),
		Exploration: math.Sqrt2,
	}

	stats := Versus[uint16](fixedGame{}, player, player, 4, mcts.WithSeed(5))

	// The first player always wins, and first-move duty alternates.
	require.Equal(t, 4, stats.Total())
	require.Equal(t, 2, stats.P1Wins)
	require.Equal(t, 2, stats.P2Wins)
	require.Zero(t, stats.Draws)
}

func TestVersusRestoresExploration(t *testing.T) {
	previous := mcts.ExplorationParam

	player := Player{Limits: mcts.DefaultLimits().SetCycles(10), Exploration: 0.1}
	Versus[uint16](fixedGame{}, player, player, 1)

	require.Equal(t, previous, mcts.ExplorationParam)
}
