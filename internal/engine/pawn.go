package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// PromotionChoices lists the piece types a pawn may become, queen first.
var PromotionChoices = []chess.PieceType{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// IsPromotionChoice reports whether p is a valid promotion piece type.
func IsPromotionChoice(p chess.PieceType) bool {
	for _, choice := range PromotionChoices {
		if p == choice {
			return true
		}
	}
	return false
}

// promotionMoves expands a pawn move onto the last rank into one move per
// promotion choice.
func promotionMoves(m chess.Move) []chess.Move {
	moves := make([]chess.Move, 0, len(PromotionChoices))
	for _, choice := range PromotionChoices {
		promoted := m
		promoted.PromotedPiece = chess.NewPiece(m.Piece.Colour, choice).Moved()
		moves = append(moves, promoted)
	}
	return moves
}

// enPassantMove returns the en passant capture available to the pawn on
// from against target ep, if any.
func enPassantMove(board *chess.Board, from chess.Square, ep chess.Square) (chess.Move, bool) {
	if !ep.OnBoard() {
		return chess.Move{}, false
	}
	pawn := board.Get(from)
	dir := chess.PawnDirection(pawn.Colour)
	if ep.Row != from.Row+dir || abs(ep.Col-from.Col) != 1 || !board.Get(ep).IsEmpty() {
		return chess.Move{}, false
	}

	// The pawn being captured sits beside the capturer, behind the target.
	victim := board.Get(chess.Sq(from.Row, ep.Col))
	if !victim.Is(pawn.Colour.Opposite(), chess.Pawn) {
		return chess.Move{}, false
	}

	return chess.Move{
		From:          from,
		To:            ep,
		Piece:         pawn,
		CapturedPiece: victim,
		IsCapture:     true,
		IsEnPassant:   true,
	}, true
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
