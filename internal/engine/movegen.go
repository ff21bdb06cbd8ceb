// Package engine provides chess move generation, legality and board manipulation.
package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// PseudoLegalTargets returns the destination squares reachable by the piece
// on from under its movement rule, ignoring whether the mover's king would
// be left in check. Castling and en passant are not included; they depend
// on state beyond the piece itself. An empty source yields nil.
func PseudoLegalTargets(board *chess.Board, from chess.Square) []chess.Square {
	piece := board.Get(from)

	switch piece.Type {
	case chess.Pawn:
		return pawnTargets(board, from, piece)
	case chess.Knight:
		return stepTargets(board, from, piece.Colour, chess.KnightOffsets)
	case chess.Bishop:
		return slideTargets(board, from, piece.Colour, chess.DiagonalDirs)
	case chess.Rook:
		return slideTargets(board, from, piece.Colour, chess.OrthogonalDirs)
	case chess.Queen:
		return append(
			slideTargets(board, from, piece.Colour, chess.DiagonalDirs),
			slideTargets(board, from, piece.Colour, chess.OrthogonalDirs)...)
	case chess.King:
		return stepTargets(board, from, piece.Colour, chess.KingOffsets)
	}
	return nil
}

// AttackTargets returns the squares the piece on from attacks. It equals the
// pseudo-legal target set except for pawns, which attack both forward
// diagonals whether or not anything stands there.
func AttackTargets(board *chess.Board, from chess.Square) []chess.Square {
	piece := board.Get(from)
	if piece.Type != chess.Pawn {
		return PseudoLegalTargets(board, from)
	}

	dir := chess.PawnDirection(piece.Colour)
	var targets []chess.Square
	for _, dc := range []int{-1, 1} {
		if to := from.Offset(dir, dc); to.OnBoard() {
			targets = append(targets, to)
		}
	}
	return targets
}

// pawnTargets generates forward pushes and diagonal captures.
func pawnTargets(board *chess.Board, from chess.Square, pawn chess.Piece) []chess.Square {
	var targets []chess.Square
	dir := chess.PawnDirection(pawn.Colour)

	// Forward move
	one := from.Offset(dir, 0)
	if one.OnBoard() && board.Get(one).IsEmpty() {
		targets = append(targets, one)

		// Double push from the unmoved starting rank
		two := from.Offset(2*dir, 0)
		if from.Row == chess.PawnRow(pawn.Colour) && !pawn.HasMoved && board.Get(two).IsEmpty() {
			targets = append(targets, two)
		}
	}

	// Captures
	for _, dc := range []int{-1, 1} {
		to := from.Offset(dir, dc)
		if !to.OnBoard() {
			continue
		}
		target := board.Get(to)
		if !target.IsEmpty() && target.Colour != pawn.Colour {
			targets = append(targets, to)
		}
	}
	return targets
}

// stepTargets handles the single-step pieces (knight and king).
func stepTargets(board *chess.Board, from chess.Square, colour chess.Colour, offsets [][2]int) []chess.Square {
	var targets []chess.Square
	for _, offset := range offsets {
		to := from.Offset(offset[0], offset[1])
		if !to.OnBoard() {
			continue
		}
		target := board.Get(to)
		if target.IsEmpty() || target.Colour != colour {
			targets = append(targets, to)
		}
	}
	return targets
}

// slideTargets walks each ray until the board edge or the first piece,
// including that piece's square only when it is an opponent.
func slideTargets(board *chess.Board, from chess.Square, colour chess.Colour, dirs [][2]int) []chess.Square {
	var targets []chess.Square
	for _, dir := range dirs {
		for to := from.Offset(dir[0], dir[1]); to.OnBoard(); to = to.Offset(dir[0], dir[1]) {
			target := board.Get(to)
			if !target.IsEmpty() {
				if target.Colour != colour {
					targets = append(targets, to)
				}
				break // Blocked
			}
			targets = append(targets, to)
		}
	}
	return targets
}
