package mcts

// Other shared types, which didn't fit the tree or node files

// ActionLike is the constraint for the action (move) representation of a game.
// Actions only need to be copyable and comparable, the engine never inspects them.
type ActionLike comparable

// GameResult holds the outcome of a finished two-player, turn-based game.
type GameResult uint8

const (
	FirstPlayerWin GameResult = iota
	SecondPlayerWin
	Draw
)

func (result GameResult) String() string {
	switch result {
	case FirstPlayerWin:
		return "FirstPlayerWin"
	case SecondPlayerWin:
		return "SecondPlayerWin"
	default:
		return "Draw"
	}
}
