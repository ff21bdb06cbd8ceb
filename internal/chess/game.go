package chess

// CastlingRights records, per side and wing, whether castling is still
// permitted.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// Any reports whether any right remains.
func (c CastlingRights) Any() bool {
	return c.WhiteKingside || c.WhiteQueenside || c.BlackKingside || c.BlackQueenside
}

// Kingside returns the kingside right for colour.
func (c CastlingRights) Kingside(colour Colour) bool {
	if colour == White {
		return c.WhiteKingside
	}
	return c.BlackKingside
}

// Queenside returns the queenside right for colour.
func (c CastlingRights) Queenside(colour Colour) bool {
	if colour == White {
		return c.WhiteQueenside
	}
	return c.BlackQueenside
}

// Home columns of the castling pieces.
const (
	KingCol          = 4
	KingsideRookCol  = 7
	QueensideRookCol = 0
)

// CastlingRights derives the rights from the board: a side keeps a wing
// while its king and that wing's rook are both unmoved on their home squares.
// A rook that was captured and replaced counts as moved.
func (b *Board) CastlingRights() CastlingRights {
	return CastlingRights{
		WhiteKingside:  b.canCastle(White, KingsideRookCol),
		WhiteQueenside: b.canCastle(White, QueensideRookCol),
		BlackKingside:  b.canCastle(Black, KingsideRookCol),
		BlackQueenside: b.canCastle(Black, QueensideRookCol),
	}
}

func (b *Board) canCastle(colour Colour, rookCol int) bool {
	row := HomeRow(colour)
	king := b.Get(Sq(row, KingCol))
	rook := b.Get(Sq(row, rookCol))
	return king.Is(colour, King) && !king.HasMoved &&
		rook.Is(colour, Rook) && !rook.HasMoved
}

// StartInfo is the metadata of the position a game's history starts from.
// For a game decoded from a position string it holds the decoded fields,
// since the moves that led there are unrecoverable.
type StartInfo struct {
	Board          *Board
	ToMove         Colour
	EnPassant      Square
	HalfmoveClock  uint
	FullmoveNumber uint
}

// GameState is a position plus the moves played from its start. History is
// append-only; en-passant target and move clocks are derived from it.
type GameState struct {
	Board   *Board
	ToMove  Colour
	History []Move
	Start   StartInfo
}

// NewGame creates a game at the standard initial position.
func NewGame() *GameState {
	return NewGameFrom(NewInitialBoard(), White, NoSquare, 0, 1)
}

// NewGameFrom creates a game that starts from an arbitrary position.
func NewGameFrom(board *Board, toMove Colour, enPassant Square, halfmove, fullmove uint) *GameState {
	if fullmove == 0 {
		fullmove = 1
	}
	return &GameState{
		Board:  board.Copy(),
		ToMove: toMove,
		Start: StartInfo{
			Board:          board.Copy(),
			ToMove:         toMove,
			EnPassant:      enPassant,
			HalfmoveClock:  halfmove,
			FullmoveNumber: fullmove,
		},
	}
}

// Append returns a new state with move recorded and board as the resulting
// position. The receiver is not modified.
func (g *GameState) Append(move Move, board *Board) *GameState {
	history := make([]Move, len(g.History), len(g.History)+1)
	copy(history, g.History)
	return &GameState{
		Board:   board,
		ToMove:  g.ToMove.Opposite(),
		History: append(history, move),
		Start:   g.Start,
	}
}

// Copy returns an independent copy of the state.
func (g *GameState) Copy() *GameState {
	history := make([]Move, len(g.History))
	copy(history, g.History)
	return &GameState{
		Board:   g.Board.Copy(),
		ToMove:  g.ToMove,
		History: history,
		Start:   g.Start,
	}
}

// LastMove returns the most recent move, if any.
func (g *GameState) LastMove() (Move, bool) {
	if len(g.History) == 0 {
		return Move{}, false
	}
	return g.History[len(g.History)-1], true
}

// EnPassantTarget returns the square skipped by a two-square pawn advance
// made on the immediately preceding move. The target is recorded whether or
// not an enemy pawn is placed to capture.
func (g *GameState) EnPassantTarget() (Square, bool) {
	last, ok := g.LastMove()
	if !ok {
		return g.Start.EnPassant, g.Start.EnPassant.OnBoard()
	}
	if !last.IsDoublePawnPush() {
		return NoSquare, false
	}
	return Sq((last.From.Row+last.To.Row)/2, last.From.Col), true
}

// HalfmoveClock counts moves since the last pawn move or capture.
func (g *GameState) HalfmoveClock() uint {
	clock := g.Start.HalfmoveClock
	for _, m := range g.History {
		if m.IsPawnMove() || m.IsCapture {
			clock = 0
		} else {
			clock++
		}
	}
	return clock
}

// FullmoveNumber starts at 1 and increments after each Black move.
func (g *GameState) FullmoveNumber() uint {
	n := g.Start.FullmoveNumber
	side := g.Start.ToMove
	for range g.History {
		if side == Black {
			n++
		}
		side = side.Opposite()
	}
	return n
}

// CastlingRights derives the castling rights of the current board.
func (g *GameState) CastlingRights() CastlingRights {
	return g.Board.CastlingRights()
}

// Ply returns the number of moves recorded in the history.
func (g *GameState) Ply() int {
	return len(g.History)
}
