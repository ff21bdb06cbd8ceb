package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ApplyResult is the outcome of executing a move.
type ApplyResult struct {
	// Board is the new position. The input board is never modified.
	Board *chess.Board

	// Move is the executed move with its derived flags set.
	Move chess.Move

	// CapturedPiece is the removed piece, zero if none.
	CapturedPiece chess.Piece

	// PromotedPiece is the piece placed on the last rank, zero if none.
	PromotedPiece chess.Piece

	// NeedsPromotion is set when a pawn reached the last rank without a
	// promotion choice and a queen was substituted.
	NeedsPromotion bool
}

// ApplyMove validates and executes the move from -> to on board. A
// promotion of chess.Empty means "no choice given". The result board is a
// fresh value. En passant is unavailable here; see Play.
func ApplyMove(board *chess.Board, from, to chess.Square, promotion chess.PieceType) (ApplyResult, error) {
	return applyMove(board, from, to, promotion, chess.NoSquare)
}

func applyMove(board *chess.Board, from, to chess.Square, promotion chess.PieceType, ep chess.Square) (ApplyResult, error) {
	piece := board.Get(from)
	if piece.IsEmpty() {
		return ApplyResult{}, moveError(errors.ErrNoPieceAtSource, from, to)
	}

	needsPromotion := false
	if piece.Type == chess.Pawn && to.Row == chess.PromotionRow(piece.Colour) && promotion == chess.Empty {
		promotion = chess.Queen
		needsPromotion = true
	}

	for _, m := range legalMovesFrom(nil, board, from, ep, true) {
		if m.To != to || m.Promotion() != promotion {
			continue
		}
		return ApplyResult{
			Board:          makeMove(board, m),
			Move:           m,
			CapturedPiece:  m.CapturedPiece,
			PromotedPiece:  m.PromotedPiece,
			NeedsPromotion: needsPromotion,
		}, nil
	}
	return ApplyResult{}, moveError(errors.ErrIllegalMove, from, to)
}

// Play executes a move for the side to move in state and returns the
// successor state. En passant is available against the history-derived
// target. state itself is left unchanged.
func Play(state *chess.GameState, from, to chess.Square, promotion chess.PieceType) (*chess.GameState, ApplyResult, error) {
	piece := state.Board.Get(from)
	if piece.IsEmpty() {
		return nil, ApplyResult{}, moveError(errors.ErrNoPieceAtSource, from, to)
	}
	if piece.Colour != state.ToMove {
		return nil, ApplyResult{}, moveError(
			errors.Wrapf(errors.ErrIllegalMove, "%s to move", state.ToMove), from, to)
	}

	ep, _ := state.EnPassantTarget()
	result, err := applyMove(state.Board, from, to, promotion, ep)
	if err != nil {
		return nil, ApplyResult{}, err
	}
	return state.Append(result.Move, result.Board), result, nil
}

// Replay rebuilds state as it stood after the first n moves of its history.
// Replay(state, state.Ply()-1) undoes the last move.
func Replay(state *chess.GameState, n int) (*chess.GameState, error) {
	if n < 0 || n > len(state.History) {
		return nil, errors.Wrapf(errors.ErrIllegalMove, "replay prefix %d of %d moves", n, len(state.History))
	}

	start := state.Start
	replayed := chess.NewGameFrom(start.Board, start.ToMove, start.EnPassant,
		start.HalfmoveClock, start.FullmoveNumber)
	for i, m := range state.History[:n] {
		next, _, err := Play(replayed, m.From, m.To, m.Promotion())
		if err != nil {
			return nil, errors.Wrapf(err, "replay ply %d", i+1)
		}
		replayed = next
	}
	return replayed, nil
}

func moveError(err error, from, to chess.Square) error {
	return &errors.MoveError{Err: err, From: from.String(), To: to.String()}
}
