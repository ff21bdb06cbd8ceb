package chess

import "fmt"

// Square is a (row, col) board coordinate. Row 0 is rank 8, col 0 is file a.
type Square struct {
	Row int
	Col int
}

// NoSquare is returned where a square is required but none exists.
var NoSquare = Square{Row: -1, Col: -1}

// Sq creates a square from row and column indices.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// OnBoard reports whether the square lies within the 8x8 grid.
func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// File returns the file letter 'a'-'h'.
func (s Square) File() byte {
	return byte(ColBase + s.Col)
}

// Rank returns the rank digit '1'-'8'.
func (s Square) Rank() byte {
	return byte(RankBase + (BoardSize - 1 - s.Row))
}

// String returns the algebraic form, e.g. "e4", or "-" when off the board.
func (s Square) String() string {
	if !s.OnBoard() {
		return "-"
	}
	return string([]byte{s.File(), s.Rank()})
}

// Offset returns the square shifted by the given row and column deltas.
func (s Square) Offset(dRow, dCol int) Square {
	return Square{Row: s.Row + dRow, Col: s.Col + dCol}
}

// IsFile reports whether c is a file letter.
func IsFile(c byte) bool {
	return c >= ColBase && c < ColBase+BoardSize
}

// IsRank reports whether c is a rank digit.
func IsRank(c byte) bool {
	return c >= RankBase && c < RankBase+BoardSize
}

// ColFromFile converts a file letter to a column index.
func ColFromFile(c byte) int {
	return int(c - ColBase)
}

// RowFromRank converts a rank digit to a row index.
func RowFromRank(c byte) int {
	return BoardSize - 1 - int(c-RankBase)
}

// ParseSquare converts algebraic notation such as "e4" to a square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || !IsFile(s[0]) || !IsRank(s[1]) {
		return NoSquare, fmt.Errorf("invalid square %q", s)
	}
	return Square{Row: RowFromRank(s[1]), Col: ColFromFile(s[0])}, nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// It is intended for constants and tests.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}
