package notation

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Parse resolves a move token for colour on board. Without a move history
// there is no en passant target; use ParseState when one is available.
func Parse(text string, board *chess.Board, colour chess.Colour) (chess.Move, error) {
	return ParseState(text, chess.NewGameFrom(board, colour, chess.NoSquare, 0, 1))
}

// ParseState resolves a move token for the side to move in state.
//
// The token must name exactly one legal move. A missing capture marker is
// tolerated, a capture marker on a quiet move is not. The check suffix must
// agree with the position the move produces: '+' for check, '#' for mate and
// nothing otherwise. A pawn reaching the last rank with no promotion letter
// promotes to a queen.
func ParseState(text string, state *chess.GameState) (chess.Move, error) {
	tok, err := DecodeMove(text)
	if err != nil {
		return chess.Move{}, withPly(err, state)
	}
	m, err := Resolve(tok, state)
	if err != nil {
		return chess.Move{}, &errors.NotationError{Err: err, Token: text, Ply: state.Ply() + 1}
	}
	return m, nil
}

// Resolve matches a decoded token against the legal moves in state.
func Resolve(tok Token, state *chess.GameState) (chess.Move, error) {
	var (
		found   chess.Move
		sources []chess.Square
	)
	for _, m := range engine.GameLegalMoves(state) {
		if !tok.matches(m) {
			continue
		}
		if !containsSquare(sources, m.From) {
			sources = append(sources, m.From)
		}
		found = m
	}

	switch {
	case len(sources) == 0:
		return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove, "no %s can play it", describe(tok, state.ToMove))
	case len(sources) > 1:
		return chess.Move{}, errors.Wrapf(errors.ErrAmbiguousMove, "%d pieces can play it", len(sources))
	}

	if tok.Capture && !found.IsCapture {
		return chess.Move{}, errors.Wrap(errors.ErrIllegalMove, "nothing to capture")
	}
	if want := suffixOf(found); tok.Suffix != want {
		return chess.Move{}, errors.Wrapf(errors.ErrCheckSuffixMismatch, "move gives %q, token says %q", want, tok.Suffix)
	}
	return found, nil
}

// matches reports whether m is a move the token could denote. The capture
// marker and check suffix are checked after resolution.
func (tok Token) matches(m chess.Move) bool {
	if tok.Castle != NoCastle {
		if !m.IsCastle {
			return false
		}
		return m.IsKingsideCastle == (tok.Castle == Kingside)
	}

	if m.IsCastle || m.Piece.Type != tok.Piece || m.To != tok.To {
		return false
	}
	if tok.FromCol >= 0 && m.From.Col != tok.FromCol {
		return false
	}
	if tok.FromRow >= 0 && m.From.Row != tok.FromRow {
		return false
	}

	promotion := tok.Promotion
	if promotion == chess.Empty && m.IsPromotion() {
		promotion = chess.Queen
	}
	return m.Promotion() == promotion
}

// suffixOf returns the marker a move's check state calls for.
func suffixOf(m chess.Move) Suffix {
	switch {
	case m.IsCheckmate:
		return MateSuffix
	case m.IsCheck:
		return CheckSuffix
	}
	return NoSuffix
}

func describe(tok Token, colour chess.Colour) string {
	if tok.Castle != NoCastle {
		return colour.String() + " king"
	}
	return colour.String() + " " + tok.Piece.String()
}

func containsSquare(squares []chess.Square, sq chess.Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}

func withPly(err error, state *chess.GameState) error {
	if ne, ok := err.(*errors.NotationError); ok {
		ne.Ply = state.Ply() + 1
	}
	return err
}
