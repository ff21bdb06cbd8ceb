package chess

// Move describes one transition between positions. It is a value record,
// not a reference into a board.
type Move struct {
	// Source and destination squares.
	From Square
	To   Square

	// The piece being moved, as it stood before the move.
	Piece Piece

	// The piece captured (zero value if none). For en passant this is the
	// pawn removed from beside the destination.
	CapturedPiece Piece

	// The piece a pawn is replaced by on the last rank (zero value if none).
	PromotedPiece Piece

	IsCapture         bool
	IsEnPassant       bool
	IsCastle          bool
	IsKingsideCastle  bool
	IsQueensideCastle bool

	// Whether this move gives check or checkmate.
	IsCheck     bool
	IsCheckmate bool
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return !m.PromotedPiece.IsEmpty()
}

// Promotion returns the promoted piece type, or Empty.
func (m Move) Promotion() PieceType {
	return m.PromotedPiece.Type
}

// IsPawnMove reports whether a pawn was moved.
func (m Move) IsPawnMove() bool {
	return m.Piece.Type == Pawn
}

// IsDoublePawnPush reports whether the move advanced a pawn two squares.
func (m Move) IsDoublePawnPush() bool {
	return m.Piece.Type == Pawn && abs(m.To.Row-m.From.Row) == 2
}

// UCI returns the coordinate form of the move, e.g. "e2e4" or "e7e8q".
func (m Move) UCI() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		letter := m.PromotedPiece.Type.Letter()
		s += string(letter + ('a' - 'A'))
	}
	return s
}

// SameAction reports whether two moves denote the same from/to/promotion,
// ignoring the derived flags.
func (m Move) SameAction(other Move) bool {
	return m.From == other.From && m.To == other.To && m.Promotion() == other.Promotion()
}
