package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsSquareAttacked returns true if any piece of byColour attacks sq.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	for _, from := range board.Occupied(byColour) {
		for _, target := range AttackTargets(board, from) {
			if target == sq {
				return true
			}
		}
	}
	return false
}

// IsInCheck returns true if the given colour's king is attacked. It fails
// with ErrKingNotFound when that colour has no king on the board.
func IsInCheck(board *chess.Board, colour chess.Colour) (bool, error) {
	kingSq, err := board.FindKing(colour)
	if err != nil {
		return false, err
	}
	return IsSquareAttacked(board, kingSq, colour.Opposite()), nil
}

// InCheck is IsInCheck with a missing king treated as "not in check".
func InCheck(board *chess.Board, colour chess.Colour) bool {
	inCheck, err := IsInCheck(board, colour)
	return err == nil && inCheck
}
