package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

var benchFENs = map[string]string{
	"Initial":   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	"Castling":  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
}

func BenchmarkDecodePosition(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				DecodePosition(fen)
			}
		})
	}
}

func BenchmarkEncodePosition(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			state, _ := DecodePosition(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				EncodePosition(state)
			}
		})
	}
}

func BenchmarkFEN_RoundTrip(b *testing.B) {
	fen := benchFENs["Midgame"]
	for i := 0; i < b.N; i++ {
		state, _ := DecodePosition(fen)
		EncodePosition(state)
	}
}

func BenchmarkApplyMove(b *testing.B) {
	cases := []struct {
		name     string
		fen      string
		from, to chess.Square
	}{
		{"PawnMove", benchFENs["Initial"], chess.MustParseSquare("e2"), chess.MustParseSquare("e4")},
		{"PieceMove", benchFENs["Initial"], chess.MustParseSquare("g1"), chess.MustParseSquare("f3")},
		{"KingsideCastle", benchFENs["Castling"], chess.MustParseSquare("e1"), chess.MustParseSquare("g1")},
		{"QueensideCastle", benchFENs["Castling"], chess.MustParseSquare("e1"), chess.MustParseSquare("c1")},
		{"Promotion", "8/P7/8/8/8/8/8/4K2k w - - 0 1", chess.MustParseSquare("a7"), chess.MustParseSquare("a8")},
	}

	for _, tt := range cases {
		b.Run(tt.name, func(b *testing.B) {
			state, _ := DecodePosition(tt.fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				ApplyMove(state.Board, tt.from, tt.to, chess.Empty)
			}
		})
	}
}

func BenchmarkPlay_EnPassant(b *testing.B) {
	state, _ := DecodePosition(benchFENs["EnPassant"])
	from, to := chess.MustParseSquare("f5"), chess.MustParseSquare("e6")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Play(state, from, to, chess.Empty)
	}
}

func BenchmarkIsInCheck(b *testing.B) {
	checkFEN := "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"

	b.Run("NoCheck", func(b *testing.B) {
		board, _ := NewBoardFromFEN(benchFENs["Initial"])
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			IsInCheck(board, chess.White)
		}
	})

	b.Run("InCheck", func(b *testing.B) {
		board, _ := NewBoardFromFEN(checkFEN)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			IsInCheck(board, chess.White)
		}
	})
}

func BenchmarkLegalMoves(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			state, _ := DecodePosition(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				GameLegalMoves(state)
			}
		})
	}
}

func BenchmarkHasLegalMoves(b *testing.B) {
	positions := []string{"Initial", "Midgame", "Endgame"}
	for _, name := range positions {
		b.Run(name, func(b *testing.B) {
			board, _ := NewBoardFromFEN(benchFENs[name])
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				HasLegalMoves(board, chess.White)
			}
		})
	}
}

func BenchmarkPerft3(b *testing.B) {
	state, _ := DecodePosition(benchFENs["Initial"])
	for i := 0; i < b.N; i++ {
		Perft(state, 3)
	}
}

func BenchmarkBoardCopy(b *testing.B) {
	board, _ := NewBoardFromFEN(benchFENs["Midgame"])
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board.Copy()
	}
}
