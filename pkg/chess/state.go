// Package chess adapts the dragontoothmg move generator to the engine's
// game-state contract, the way the original console example plays it.
//
// Known limitations, carried deliberately: "no legal moves while in check"
// is used as the checkmate test (a position with checking pieces and no
// moves counts as mate, anything else as stalemate), and 3-fold repetition
// draws are not detected. Both are properties of this adapter, not of the
// search engine.
package chess

import (
	"fmt"

	dragon "github.com/IlikeChooros/dragontoothmg"

	"github.com/aklimk/mcts/pkg/mcts"
)

// FiftyMoveLimit is the number of half-moves without a capture or pawn move
// after which the game is treated as drawn.
const FiftyMoveLimit = 50

// State is one chess position. It wraps the dragontoothmg board with the
// extra bookkeeping the board itself doesn't carry: the running
// capture/pawn-move counter and the provenance move that produced the
// position.
type State struct {
	board            dragon.Board
	fiftyMoveCounter uint16
	lastMove         dragon.Move
	hasLastMove      bool
}

var _ mcts.GameState[dragon.Move, State] = State{}

// NewState returns the standard starting position.
func NewState() State {
	board, err := dragon.ParseFen(dragon.Startpos)
	if err != nil {
		panic(fmt.Sprintf("chess: start position rejected: %v", err))
	}
	return State{board: board}
}

// Parse builds a state from a FEN encoding.
func (State) Parse(fen string) (State, error) {
	board, err := dragon.ParseFen(fen)
	if err != nil {
		return State{}, fmt.Errorf("chess: parse fen %q: %w", fen, err)
	}
	return State{board: board}, nil
}

// ApplyAction returns the position after 'move', leaving the receiver
// untouched. Captures and pawn moves reset the fifty-move counter.
// En-passant captures don't land on an occupied square, so they slip past
// the capture test; their pawn move resets the counter anyway.
func (s State) ApplyAction(move dragon.Move) State {
	counter := s.fiftyMoveCounter + 1

	occupied := s.board.White.All | s.board.Black.All
	isCapture := occupied&(uint64(1)<<move.To()) != 0
	pawnMoved := (s.board.White.Pawns|s.board.Black.Pawns)&(uint64(1)<<move.From()) != 0
	if isCapture || pawnMoved {
		counter = 0
	}

	next := s.board
	next.Apply(move)

	return State{
		board:            next,
		fiftyMoveCounter: counter,
		lastMove:         move,
		hasLastMove:      true,
	}
}

// StatusWithMovesLeft reports whether the game is still ongoing given that
// legal moves exist. Only the fifty-move rule can end it early.
func (s State) StatusWithMovesLeft() bool {
	return s.fiftyMoveCounter < FiftyMoveLimit
}

// Result classifies a finished game. With no checking pieces (or the
// fifty-move rule tripped) it is a draw; otherwise the side to move has
// been mated, so the other player won.
func (s State) Result() mcts.GameResult {
	if !s.board.OurKingInCheck() || s.fiftyMoveCounter >= FiftyMoveLimit {
		return mcts.Draw
	}
	if s.board.Wtomove {
		return mcts.SecondPlayerWin
	}
	return mcts.FirstPlayerWin
}

// GenerateLegalActions lists every legal move from this position.
func (s State) GenerateLegalActions() []dragon.Move {
	return s.board.GenerateLegalMoves()
}

// SideToMove is true when white (the first player) is due to move.
func (s State) SideToMove() bool {
	return s.board.Wtomove
}

// LastMove returns the move that produced this position, false for a
// freshly parsed state.
func (s State) LastMove() (dragon.Move, bool) {
	return s.lastMove, s.hasLastMove
}

// Fen returns the FEN encoding of the wrapped board.
func (s State) Fen() string {
	return s.board.ToFen()
}

// Board exposes a copy of the underlying board.
func (s State) Board() dragon.Board {
	return s.board
}
