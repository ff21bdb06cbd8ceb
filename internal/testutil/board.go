// Package testutil provides shared test utilities for the chessrules-go project.
// These utilities reduce code duplication across test files and provide
// consistent board setup helpers.
package testutil

import (
	"sort"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Well-known positions used across package tests.
const (
	// KiwipeteFEN exercises castling, en passant, promotion and pins.
	KiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	// BareKingsFEN has only a white king on a1 and a black king on h8.
	BareKingsFEN = "7k/8/8/8/8/8/8/K7 w - - 0 1"

	// TwoQueenMateFEN is checkmate for Black: queens on g7 and h6 box in
	// the king on h8.
	TwoQueenMateFEN = "7k/6Q1/7Q/8/8/8/8/K7 b - - 0 1"

	// QueenStalemateFEN is stalemate for Black: king on a8, queen on c7.
	QueenStalemateFEN = "k7/2Q5/1K6/8/8/8/8/8 b - - 0 1"

	// KnightsToD7FEN has Black knights on b8 and f8 that both reach d7.
	KnightsToD7FEN = "1n2kn2/8/8/8/8/8/8/4K3 b - - 0 1"
)

// NewBoard builds a board from algebraic square names. Pieces keep the
// HasMoved flag they are given.
func NewBoard(t *testing.T, pieces map[string]chess.Piece) *chess.Board {
	t.Helper()
	board := chess.NewBoard()
	for name, piece := range pieces {
		sq, err := chess.ParseSquare(name)
		if err != nil {
			t.Fatalf("NewBoard: %v", err)
		}
		board.Set(sq, piece)
	}
	return board
}

// MoveStrings returns the coordinate form of each move, sorted.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.UCI()
	}
	sort.Strings(out)
	return out
}

// Sq parses a square name, failing the test on malformed input.
func Sq(t *testing.T, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("Sq(%q): %v", name, err)
	}
	return sq
}
