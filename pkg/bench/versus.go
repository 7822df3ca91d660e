// Package bench plays series of games between two search configurations,
// to compare exploration settings or budgets against each other.
package bench

import (
	"github.com/rs/zerolog/log"

	"github.com/aklimk/mcts/pkg/mcts"
)

// Player is one search configuration taking part in a match.
type Player struct {
	Limits      *mcts.Limits
	Exploration float64
}

// Stats accounts the results of a match series from player 1's perspective.
type Stats struct {
	P1Wins int
	P2Wins int
	Draws  int
}

func (s Stats) Total() int {
	return s.P1Wins + s.P2Wins + s.Draws
}

// Games are cut off after this many plies and scored as draws, so a series
// between two cautious configurations always finishes.
const MaxGamePlies = 400

// Versus plays 'games' matches between the two configurations, starting
// every game from 'start' and alternating which player moves first. A fresh
// tree is built for every decision point; 'options' configure those trees.
func Versus[T mcts.ActionLike, S mcts.GameState[T, S]](start S, p1, p2 Player, games int, options ...mcts.Option) Stats {
	previous := mcts.ExplorationParam
	defer mcts.SetExplorationParam(previous)

	stats := Stats{}
	for game := 0; game < games; game++ {
		firstIsP1 := game%2 == 0
		result := playGame[T](start, p1, p2, firstIsP1, options)

		// Map the engine-convention winner onto the players. Player 1
		// owns the side to move at the start when it moves first.
		p1Side := start.SideToMove() == firstIsP1
		switch {
		case result == mcts.Draw:
			stats.Draws++
		case (result == mcts.FirstPlayerWin) == p1Side:
			stats.P1Wins++
		default:
			stats.P2Wins++
		}

		log.Debug().
			Int("game", game).
			Bool("p1_moved_first", firstIsP1).
			Stringer("result", result).
			Msg("versus game finished")
	}

	return stats
}

func playGame[T mcts.ActionLike, S mcts.GameState[T, S]](start S, p1, p2 Player, firstIsP1 bool, options []mcts.Option) mcts.GameResult {
	state := start
	for ply := 0; ; ply++ {
		if len(state.GenerateLegalActions()) == 0 || !state.StatusWithMovesLeft() {
			return state.Result()
		}
		if ply >= MaxGamePlies {
			return mcts.Draw
		}

		player := p1
		if (ply%2 == 0) != firstIsP1 {
			player = p2
		}

		mcts.SetExplorationParam(player.Exploration)
		tree := mcts.NewTreeFromState[T](state, options...)
		result := tree.Search(player.Limits)
		if result.BestChild == mcts.NoParent {
			return state.Result()
		}

		state = tree.Arena[result.BestChild].State
	}
}
