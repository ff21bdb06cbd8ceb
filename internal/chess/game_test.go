package chess

import "testing"

// push builds a move record for a game test; it does not check legality.
func push(b *Board, from, to string) (Move, *Board) {
	f, t := MustParseSquare(from), MustParseSquare(to)
	m := Move{From: f, To: t, Piece: b.Get(f), CapturedPiece: b.Get(t)}
	m.IsCapture = !m.CapturedPiece.IsEmpty()

	next := b.Copy()
	next.Clear(f)
	next.Set(t, m.Piece.Moved())
	return m, next
}

func TestNewGame(t *testing.T) {
	g := NewGame()
	if g.ToMove != White {
		t.Errorf("ToMove = %v; want White", g.ToMove)
	}
	if g.Ply() != 0 {
		t.Errorf("Ply() = %d; want 0", g.Ply())
	}
	if ep, ok := g.EnPassantTarget(); ok {
		t.Errorf("EnPassantTarget() = %v; want none", ep)
	}
	if g.HalfmoveClock() != 0 || g.FullmoveNumber() != 1 {
		t.Errorf("clocks = %d %d; want 0 1", g.HalfmoveClock(), g.FullmoveNumber())
	}
	if !g.CastlingRights().Any() {
		t.Error("initial position should have castling rights")
	}
}

func TestNewGameFrom_ZeroFullmove(t *testing.T) {
	g := NewGameFrom(NewBoard(), Black, NoSquare, 3, 0)
	if g.FullmoveNumber() != 1 {
		t.Errorf("FullmoveNumber() = %d; want 1", g.FullmoveNumber())
	}
	if g.HalfmoveClock() != 3 {
		t.Errorf("HalfmoveClock() = %d; want 3", g.HalfmoveClock())
	}
}

func TestGameState_DerivedFields(t *testing.T) {
	g := NewGame()

	m, b := push(g.Board, "e2", "e4")
	g = g.Append(m, b)
	if ep, ok := g.EnPassantTarget(); !ok || ep.String() != "e3" {
		t.Errorf("after e4: EnPassantTarget() = %v, %v; want e3", ep, ok)
	}
	if g.HalfmoveClock() != 0 || g.FullmoveNumber() != 1 || g.ToMove != Black {
		t.Errorf("after e4: clocks %d %d, to move %v", g.HalfmoveClock(), g.FullmoveNumber(), g.ToMove)
	}

	m, b = push(g.Board, "g8", "f6")
	g = g.Append(m, b)
	if _, ok := g.EnPassantTarget(); ok {
		t.Error("after Nf6: en passant target should be gone")
	}
	if g.HalfmoveClock() != 1 || g.FullmoveNumber() != 2 {
		t.Errorf("after Nf6: clocks = %d %d; want 1 2", g.HalfmoveClock(), g.FullmoveNumber())
	}

	m, b = push(g.Board, "b1", "c3")
	g = g.Append(m, b)
	m, b = push(g.Board, "f6", "e4")
	g = g.Append(m, b)
	if g.HalfmoveClock() != 0 {
		t.Errorf("after capture: HalfmoveClock() = %d; want 0", g.HalfmoveClock())
	}
	if g.FullmoveNumber() != 3 {
		t.Errorf("FullmoveNumber() = %d; want 3", g.FullmoveNumber())
	}
	if last, ok := g.LastMove(); !ok || !last.IsCapture {
		t.Errorf("LastMove() = %+v, %v; want the capture", last, ok)
	}
}

func TestGameState_StartEnPassant(t *testing.T) {
	g := NewGameFrom(NewInitialBoard(), Black, MustParseSquare("e3"), 0, 1)
	if ep, ok := g.EnPassantTarget(); !ok || ep.String() != "e3" {
		t.Errorf("EnPassantTarget() = %v, %v; want e3 from start metadata", ep, ok)
	}

	m, b := push(g.Board, "g8", "f6")
	g = g.Append(m, b)
	if _, ok := g.EnPassantTarget(); ok {
		t.Error("start en passant target should not survive a move")
	}
}

func TestGameState_AppendDoesNotAlias(t *testing.T) {
	g := NewGame()
	m, b := push(g.Board, "e2", "e4")
	g1 := g.Append(m, b)

	m2, b2 := push(g1.Board, "e7", "e5")
	g2 := g1.Append(m2, b2)
	m3, b3 := push(g1.Board, "d7", "d5")
	g3 := g1.Append(m3, b3)

	if g2.History[1].To == g3.History[1].To {
		t.Error("sibling states share history storage")
	}
	if g.Ply() != 0 || g1.Ply() != 1 {
		t.Errorf("plies = %d %d; want 0 1", g.Ply(), g1.Ply())
	}
}

func TestGameState_Copy(t *testing.T) {
	g := NewGame()
	c := g.Copy()
	c.Board.Clear(MustParseSquare("e2"))
	if g.Board.Get(MustParseSquare("e2")).IsEmpty() {
		t.Error("Copy shares its board")
	}
}
