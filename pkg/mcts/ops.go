package mcts

// GameState is the contract a game implementation must satisfy for the
// engine to build, explore and evaluate its game tree. The engine is written
// against this interface only, it never inspects the rules of the game.
//
// S is the implementing type itself, so every transform returns a plain
// value of the concrete game state.
type GameState[T ActionLike, S any] interface {
	// Parse a game state from an opaque position encoding (for chess, a FEN
	// string). Called on a zero value of S by the tree constructor, so it
	// must not depend on receiver state.
	Parse(encoding string) (S, error)

	// Generate a copy of the state with 'action' applied to it.
	// Must not mutate the receiver.
	ApplyAction(action T) S

	// Reports whether the game is still ongoing, given the fact that there
	// are legal actions left. Returning false forces the game to be treated
	// as ended (for example a move-count based draw rule).
	//
	// Callers must have confirmed at least one legal action exists,
	// the result is meaningless otherwise.
	StatusWithMovesLeft() bool

	// The outcome of the game. Valid only on terminal positions, that is
	// when GenerateLegalActions is empty or StatusWithMovesLeft is false.
	Result() GameResult

	// All legal actions from this position. May be empty (terminal by
	// exhaustion).
	GenerateLegalActions() []T

	// True if the first player (by the engine's fixed convention) is due
	// to move in this position. Lets the engine attribute wins and losses
	// per node, regardless of whose move produced the position.
	SideToMove() bool
}
