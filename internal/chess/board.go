package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Board is an 8x8 grid of optional pieces, indexed [row][col] with row 0
// holding rank 8. Boards are used as values: operations that change a
// position work on a Copy and return it.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board with the standard starting layout.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{}

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[HomeRow(Black)][col] = B(backRank[col])
		b.Squares[PawnRow(Black)][col] = B(Pawn)
		b.Squares[PawnRow(White)][col] = W(Pawn)
		b.Squares[HomeRow(White)][col] = W(backRank[col])
	}
}

// Get returns the piece at sq. Empty and off-board squares yield the zero Piece.
func (b *Board) Get(sq Square) Piece {
	if !sq.OnBoard() {
		return Piece{}
	}
	return b.Squares[sq.Row][sq.Col]
}

// Set places a piece at sq. Writes outside the board are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.OnBoard() {
		b.Squares[sq.Row][sq.Col] = piece
	}
}

// Clear empties sq.
func (b *Board) Clear(sq Square) {
	b.Set(sq, Piece{})
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Find returns every square holding a piece of the given colour and type,
// scanning rank 8 to rank 1 and file a to file h.
func (b *Board) Find(colour Colour, pieceType PieceType) []Square {
	var squares []Square
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col].Is(colour, pieceType) {
				squares = append(squares, Sq(row, col))
			}
		}
	}
	return squares
}

// Occupied returns every square holding a piece of the given colour.
func (b *Board) Occupied(colour Colour) []Square {
	var squares []Square
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.Squares[row][col]
			if !p.IsEmpty() && p.Colour == colour {
				squares = append(squares, Sq(row, col))
			}
		}
	}
	return squares
}

// FindKing locates the king of the given colour.
func (b *Board) FindKing(colour Colour) (Square, error) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col].Is(colour, King) {
				return Sq(row, col), nil
			}
		}
	}
	return NoSquare, fmt.Errorf("%s king: %w", colour, errors.ErrKingNotFound)
}

// Equal reports whether both boards hold the same pieces with the same flags.
func (b *Board) Equal(other *Board) bool {
	return b.Squares == other.Squares
}

// SamePlacement reports whether both boards hold the same coloured pieces on
// the same squares, ignoring movement flags.
func (b *Board) SamePlacement(other *Board) bool {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p, q := b.Squares[row][col], other.Squares[row][col]
			if p.Type != q.Type || (!p.IsEmpty() && p.Colour != q.Colour) {
				return false
			}
		}
	}
	return true
}

// String renders the board as eight lines of piece letters, rank 8 first,
// with '.' for empty squares.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		sb.WriteByte(byte(RankBase + BoardSize - 1 - row))
		sb.WriteByte(' ')
		for col := 0; col < BoardSize; col++ {
			p := b.Squares[row][col]
			if p.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(p.FENLetter())
			}
			if col < BoardSize-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
