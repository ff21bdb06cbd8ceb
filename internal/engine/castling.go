package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// castlingMoves returns the castling moves available to the king on from.
// Both pieces must be unmoved on their home squares, every square between
// them empty, and the king's current, transit and destination squares
// unattacked.
func castlingMoves(board *chess.Board, from chess.Square) []chess.Move {
	king := board.Get(from)
	colour := king.Colour
	row := chess.HomeRow(colour)

	if king.Type != chess.King || king.HasMoved || from != chess.Sq(row, chess.KingCol) {
		return nil
	}
	opponent := colour.Opposite()
	if IsSquareAttacked(board, from, opponent) {
		return nil
	}

	var moves []chess.Move
	for _, rookCol := range []int{chess.KingsideRookCol, chess.QueensideRookCol} {
		rookSq := chess.Sq(row, rookCol)
		rook := board.Get(rookSq)
		if !rook.Is(colour, chess.Rook) || rook.HasMoved {
			continue
		}
		if !board.PathClear(from, rookSq) {
			continue
		}

		dir := 1
		if rookCol == chess.QueensideRookCol {
			dir = -1
		}
		transit := from.Offset(0, dir)
		dest := from.Offset(0, 2*dir)
		if IsSquareAttacked(board, transit, opponent) || IsSquareAttacked(board, dest, opponent) {
			continue
		}

		moves = append(moves, chess.Move{
			From:              from,
			To:                dest,
			Piece:             king,
			IsCastle:          true,
			IsKingsideCastle:  dir > 0,
			IsQueensideCastle: dir < 0,
		})
	}
	return moves
}

// castlingRookSquares returns where the rook stands before and after a
// castling move.
func castlingRookSquares(m chess.Move) (chess.Square, chess.Square) {
	row := m.From.Row
	if m.IsKingsideCastle {
		return chess.Sq(row, chess.KingsideRookCol), chess.Sq(row, chess.KingCol+1)
	}
	return chess.Sq(row, chess.QueensideRookCol), chess.Sq(row, chess.KingCol-1)
}
