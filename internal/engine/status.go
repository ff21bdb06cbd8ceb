package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// TerminationStatus classifies the position for the side to move:
// checkmate and stalemate when it has no legal move, check when its king is
// attacked, playing otherwise. Draws by repetition, the fifty-move rule or
// insufficient material are not reported.
func TerminationStatus(board *chess.Board, colour chess.Colour) chess.Status {
	return status(board, colour, chess.NoSquare)
}

// GameStatus is TerminationStatus for the side to move in state, counting
// en passant captures as available moves.
func GameStatus(state *chess.GameState) chess.Status {
	ep, _ := state.EnPassantTarget()
	return status(state.Board, state.ToMove, ep)
}

// IsCheckmate returns true if colour is in check with no legal move.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return TerminationStatus(board, colour) == chess.Checkmate
}

// IsStalemate returns true if colour is not in check and has no legal move.
func IsStalemate(board *chess.Board, colour chess.Colour) bool {
	return TerminationStatus(board, colour) == chess.Stalemate
}

func status(board *chess.Board, colour chess.Colour, ep chess.Square) chess.Status {
	inCheck := InCheck(board, colour)
	if hasLegalMoves(board, colour, ep) {
		if inCheck {
			return chess.Check
		}
		return chess.Playing
	}
	if inCheck {
		return chess.Checkmate
	}
	return chess.Stalemate
}
