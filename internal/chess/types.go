// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceType represents a chess piece type. Empty marks an unoccupied square.
type PieceType int

const (
	Empty PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceTypes
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceTypeFromLetter converts an uppercase or lowercase piece letter
// to a piece type. It returns Empty for anything else.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	case 'P', 'p':
		return Pawn
	default:
		return Empty
	}
}

// Piece is a coloured piece together with its movement history flag.
// The zero value is an empty square.
type Piece struct {
	Type     PieceType
	Colour   Colour
	HasMoved bool
}

// NewPiece creates an unmoved piece.
func NewPiece(colour Colour, pieceType PieceType) Piece {
	return Piece{Type: pieceType, Colour: colour}
}

// W creates an unmoved white piece.
func W(pieceType PieceType) Piece {
	return NewPiece(White, pieceType)
}

// B creates an unmoved black piece.
func B(pieceType PieceType) Piece {
	return NewPiece(Black, pieceType)
}

// IsEmpty reports whether the piece value denotes an empty square.
func (p Piece) IsEmpty() bool {
	return p.Type == Empty
}

// Is reports whether p has the given colour and type.
func (p Piece) Is(colour Colour, pieceType PieceType) bool {
	return p.Type == pieceType && p.Type != Empty && p.Colour == colour
}

// Moved returns a copy of p with HasMoved set.
func (p Piece) Moved() Piece {
	p.HasMoved = true
	return p
}

// FENLetter returns the position-string letter: uppercase for White,
// lowercase for Black.
func (p Piece) FENLetter() byte {
	letter := p.Type.Letter()
	if p.Colour == Black && letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a short description such as "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Type.String()
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase = '1'
	ColBase  = 'a'
)

// PawnDirection returns the row delta of a pawn advance: White moves
// towards row 0 (rank 8), Black towards row 7.
func PawnDirection(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// HomeRow returns the row holding the colour's king and rooks at the start.
func HomeRow(colour Colour) int {
	if colour == White {
		return 7
	}
	return 0
}

// PawnRow returns the row holding the colour's pawns at the start.
func PawnRow(colour Colour) int {
	if colour == White {
		return 6
	}
	return 1
}

// PromotionRow returns the farthest row from the colour's own side.
func PromotionRow(colour Colour) int {
	if colour == White {
		return 0
	}
	return 7
}

// Status is the derived game-termination state of the side to move.
type Status int

const (
	Playing Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the lowercase name used in the host contract.
func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "unknown"
}

// IsOver reports whether no further moves are possible.
func (s Status) IsOver() bool {
	return s == Checkmate || s == Stalemate
}
