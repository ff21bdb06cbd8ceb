package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// LegalMoves returns every legal move for colour on board. Castling is
// included; en passant is not, since it depends on the previous move. Use
// GameLegalMoves when a move history is available. Each move carries its
// IsCheck and IsCheckmate flags.
func LegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	return generateLegal(board, colour, chess.NoSquare, true)
}

// LegalMovesFrom returns the legal moves of the piece on from.
func LegalMovesFrom(board *chess.Board, from chess.Square) []chess.Move {
	return legalMovesFrom(nil, board, from, chess.NoSquare, true)
}

// GameLegalMoves returns every legal move for the side to move in state,
// including en passant captures against the history-derived target.
func GameLegalMoves(state *chess.GameState) []chess.Move {
	ep, _ := state.EnPassantTarget()
	return generateLegal(state.Board, state.ToMove, ep, true)
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	return hasLegalMoves(board, colour, chess.NoSquare)
}

// generateLegal is the union of per-piece legal moves for every piece of colour.
func generateLegal(board *chess.Board, colour chess.Colour, ep chess.Square, annotate bool) []chess.Move {
	var moves []chess.Move
	for _, from := range board.Occupied(colour) {
		moves = legalMovesFrom(moves, board, from, ep, annotate)
	}
	return moves
}

// legalMovesFrom appends to moves the candidates from one square that do not
// leave the mover's own king attacked.
func legalMovesFrom(moves []chess.Move, board *chess.Board, from chess.Square, ep chess.Square, annotate bool) []chess.Move {
	for _, m := range candidateMoves(board, from, ep) {
		after := makeMove(board, m)
		if InCheck(after, m.Piece.Colour) {
			continue
		}
		if annotate {
			annotateCheck(&m, after)
		}
		moves = append(moves, m)
	}
	return moves
}

// hasLegalMoves stops at the first legal move found.
func hasLegalMoves(board *chess.Board, colour chess.Colour, ep chess.Square) bool {
	for _, from := range board.Occupied(colour) {
		for _, m := range candidateMoves(board, from, ep) {
			if !InCheck(makeMove(board, m), colour) {
				return true
			}
		}
	}
	return false
}

// candidateMoves builds the pseudo-legal move records for the piece on from,
// adding promotions, en passant and castling on top of the piece-local targets.
func candidateMoves(board *chess.Board, from chess.Square, ep chess.Square) []chess.Move {
	piece := board.Get(from)
	if piece.IsEmpty() {
		return nil
	}

	var moves []chess.Move
	for _, to := range PseudoLegalTargets(board, from) {
		m := chess.Move{From: from, To: to, Piece: piece}
		if captured := board.Get(to); !captured.IsEmpty() {
			m.CapturedPiece = captured
			m.IsCapture = true
		}
		if piece.Type == chess.Pawn && to.Row == chess.PromotionRow(piece.Colour) {
			moves = append(moves, promotionMoves(m)...)
			continue
		}
		moves = append(moves, m)
	}

	switch piece.Type {
	case chess.Pawn:
		if m, ok := enPassantMove(board, from, ep); ok {
			moves = append(moves, m)
		}
	case chess.King:
		moves = append(moves, castlingMoves(board, from)...)
	}
	return moves
}

// annotateCheck sets the check and checkmate flags of m from the position
// it produces.
func annotateCheck(m *chess.Move, after *chess.Board) {
	opponent := m.Piece.Colour.Opposite()
	m.IsCheck = InCheck(after, opponent)
	if m.IsCheck {
		m.IsCheckmate = !hasLegalMoves(after, opponent, enPassantAfter(*m))
	}
}

// enPassantAfter returns the en passant target created by m, if any.
func enPassantAfter(m chess.Move) chess.Square {
	if !m.IsDoublePawnPush() {
		return chess.NoSquare
	}
	return chess.Sq((m.From.Row+m.To.Row)/2, m.From.Col)
}

// makeMove executes m on a copy of board. The moved piece is flagged as
// moved and the input board is left untouched.
func makeMove(board *chess.Board, m chess.Move) *chess.Board {
	next := board.Copy()
	next.Clear(m.From)

	if m.IsEnPassant {
		next.Clear(chess.Sq(m.From.Row, m.To.Col))
	}
	if m.IsCastle {
		rookFrom, rookTo := castlingRookSquares(m)
		rook := next.Get(rookFrom)
		next.Clear(rookFrom)
		next.Set(rookTo, rook.Moved())
	}

	placed := m.Piece.Moved()
	if m.IsPromotion() {
		placed = m.PromotedPiece.Moved()
	}
	next.Set(m.To, placed)
	return next
}
