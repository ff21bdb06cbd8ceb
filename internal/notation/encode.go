package notation

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Render writes the move from -> to for the piece on board in standard
// algebraic notation. Promotion of chess.Empty on a promoting pawn move
// renders the queen promotion.
func Render(board *chess.Board, from, to chess.Square, promotion chess.PieceType) (string, error) {
	piece := board.Get(from)
	if piece.IsEmpty() {
		return "", &errors.MoveError{Err: errors.ErrNoPieceAtSource, From: from.String(), To: to.String()}
	}
	return RenderState(chess.NewGameFrom(board, piece.Colour, chess.NoSquare, 0, 1), from, to, promotion)
}

// RenderState is Render for the side to move in state, with en passant
// available.
func RenderState(state *chess.GameState, from, to chess.Square, promotion chess.PieceType) (string, error) {
	if state.Board.Get(from).IsEmpty() {
		return "", &errors.MoveError{Err: errors.ErrNoPieceAtSource, From: from.String(), To: to.String()}
	}

	legal := engine.GameLegalMoves(state)
	for _, m := range legal {
		if m.From != from || m.To != to {
			continue
		}
		want := promotion
		if m.IsPromotion() && want == chess.Empty {
			want = chess.Queen
		}
		if m.Promotion() != want {
			continue
		}
		return renderMove(m, legal), nil
	}
	return "", &errors.MoveError{Err: errors.ErrIllegalMove, From: from.String(), To: to.String()}
}

// RenderMove writes a legal move of the side to move in state. The check
// and capture flags are taken from m.
func RenderMove(state *chess.GameState, m chess.Move) string {
	return renderMove(m, engine.GameLegalMoves(state))
}

// RenderAll writes every legal move of the side to move in state.
func RenderAll(state *chess.GameState) []string {
	legal := engine.GameLegalMoves(state)
	out := make([]string, len(legal))
	for i, m := range legal {
		out[i] = renderMove(m, legal)
	}
	return out
}

func renderMove(m chess.Move, legal []chess.Move) string {
	var sb strings.Builder

	switch {
	case m.IsKingsideCastle:
		sb.WriteString("O-O")
	case m.IsQueensideCastle:
		sb.WriteString("O-O-O")
	default:
		if m.Piece.Type == chess.Pawn {
			if m.IsCapture {
				sb.WriteByte(m.From.File())
			}
		} else {
			sb.WriteByte(m.Piece.Type.Letter())
			writeDisambiguation(&sb, m, legal)
		}

		if m.IsCapture {
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())

		if m.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte(m.Promotion().Letter())
		}
	}

	sb.WriteString(suffixOf(m).String())
	return sb.String()
}

// writeDisambiguation adds the least source information that separates m
// from other pieces of the same type reaching the same square: nothing,
// then the file, then the rank, then both.
func writeDisambiguation(sb *strings.Builder, m chess.Move, legal []chess.Move) {
	rivals, sameFile, sameRank := false, false, false
	for _, other := range legal {
		if other.IsCastle || other.From == m.From || other.To != m.To || other.Piece.Type != m.Piece.Type {
			continue
		}
		rivals = true
		if other.From.Col == m.From.Col {
			sameFile = true
		}
		if other.From.Row == m.From.Row {
			sameRank = true
		}
	}

	switch {
	case !rivals:
	case !sameFile:
		sb.WriteByte(m.From.File())
	case !sameRank:
		sb.WriteByte(m.From.Rank())
	default:
		sb.WriteString(m.From.String())
	}
}
