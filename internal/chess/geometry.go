package chess

// Direction offsets, as (row, col) deltas.
var (
	OrthogonalDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	DiagonalDirs   = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	KingOffsets    = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	KnightOffsets  = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
)

// SameRank reports whether a and b share a row.
func SameRank(a, b Square) bool {
	return a.Row == b.Row
}

// SameFile reports whether a and b share a column.
func SameFile(a, b Square) bool {
	return a.Col == b.Col
}

// SameDiagonal reports whether a and b lie on a common diagonal or anti-diagonal.
func SameDiagonal(a, b Square) bool {
	return abs(a.Row-b.Row) == abs(a.Col-b.Col)
}

// Distance returns the Chebyshev (king-move) distance between two squares.
func Distance(a, b Square) int {
	dr := abs(a.Row - b.Row)
	dc := abs(a.Col - b.Col)
	if dr > dc {
		return dr
	}
	return dc
}

// DiagonalDistance returns the number of diagonal steps between a and b,
// or -1 when they do not share a diagonal.
func DiagonalDistance(a, b Square) int {
	if !SameDiagonal(a, b) {
		return -1
	}
	return abs(a.Row - b.Row)
}

// Between returns the squares strictly between a and b when they share a
// rank, file or diagonal, in order from a towards b. Otherwise it returns nil.
func Between(a, b Square) []Square {
	if a == b || !(SameRank(a, b) || SameFile(a, b) || SameDiagonal(a, b)) {
		return nil
	}
	dRow := sign(b.Row - a.Row)
	dCol := sign(b.Col - a.Col)

	var squares []Square
	for sq := a.Offset(dRow, dCol); sq != b; sq = sq.Offset(dRow, dCol) {
		squares = append(squares, sq)
	}
	return squares
}

// PathClear reports whether every square strictly between a and b is empty.
// Adjacent squares are trivially clear; squares that share no line are not.
func (b *Board) PathClear(from, to Square) bool {
	if Distance(from, to) <= 1 {
		return true
	}
	between := Between(from, to)
	if between == nil {
		return false
	}
	for _, sq := range between {
		if !b.Get(sq).IsEmpty() {
			return false
		}
	}
	return true
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
