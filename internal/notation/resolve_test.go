package notation

import (
	"errors"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

const (
	castlingFEN  = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	backRankFEN  = "6k1/5ppp/8/8/8/8/8/K2R4 w - - 0 1"
	promotionFEN = "8/P7/8/8/8/8/8/4K2k w - - 0 1"
	enPassantFEN = "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3"
)

func mustDecode(t *testing.T, fen string) *chess.GameState {
	t.Helper()
	state, err := engine.DecodePosition(fen)
	if err != nil {
		t.Fatalf("DecodePosition(%q) error: %v", fen, err)
	}
	return state
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		text string
		want string
	}{
		{"pawn push", engine.InitialFEN, "e4", "e2e4"},
		{"single push", engine.InitialFEN, "e3", "e2e3"},
		{"knight", engine.InitialFEN, "Nf3", "g1f3"},
		{"file disambiguation", testutil.KnightsToD7FEN, "Nbd7", "b8d7"},
		{"other knight", testutil.KnightsToD7FEN, "Nfd7", "f8d7"},
		{"full disambiguation", testutil.KnightsToD7FEN, "Nb8d7", "b8d7"},
		{"unneeded disambiguation", engine.InitialFEN, "Ngf3", "g1f3"},
		{"kingside castle", castlingFEN, "O-O", "e1g1"},
		{"queenside castle digits", castlingFEN, "0-0-0", "e1c1"},
		{"rook capture", castlingFEN, "Rxa8+", "a1a8"},
		{"missing capture marker", castlingFEN, "Ra8+", "a1a8"},
		{"checkmate", backRankFEN, "Rd8#", "d1d8"},
		{"quiet rook", backRankFEN, "Rd2", "d1d2"},
		{"promotion default", promotionFEN, "a8+", "a7a8q"},
		{"promotion to queen", promotionFEN, "a8=Q+", "a7a8q"},
		{"underpromotion", promotionFEN, "a8=N", "a7a8n"},
		{"underpromotion without equals", promotionFEN, "a8R", "a7a8r"},
		{"lowercase after equals", promotionFEN, "a8=b+", "a7a8b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := mustDecode(t, tt.fen)
			got, err := Parse(tt.text, state.Board, state.ToMove)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got.UCI(), tt.want)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		text string
		want error
	}{
		{"ambiguous knights", testutil.KnightsToD7FEN, "Nd7", chesserrors.ErrAmbiguousMove},
		{"rank does not separate", testutil.KnightsToD7FEN, "N8d7", chesserrors.ErrAmbiguousMove},
		{"wrong file", testutil.KnightsToD7FEN, "Nad7", chesserrors.ErrIllegalMove},
		{"blocked king", engine.InitialFEN, "Ke2", chesserrors.ErrIllegalMove},
		{"no pawn capture", engine.InitialFEN, "exd5", chesserrors.ErrIllegalMove},
		{"nothing to capture", engine.InitialFEN, "Nxf3", chesserrors.ErrIllegalMove},
		{"king two squares is not castling", castlingFEN, "Kg1", chesserrors.ErrIllegalMove},
		{"piece for the wrong side", engine.InitialFEN, "Nf6", chesserrors.ErrIllegalMove},
		{"check on a quiet move", engine.InitialFEN, "Nf3+", chesserrors.ErrCheckSuffixMismatch},
		{"mate on a quiet move", engine.InitialFEN, "e4#", chesserrors.ErrCheckSuffixMismatch},
		{"missing check", castlingFEN, "Rxa8", chesserrors.ErrCheckSuffixMismatch},
		{"check on a mate", backRankFEN, "Rd8+", chesserrors.ErrCheckSuffixMismatch},
		{"missing mate", backRankFEN, "Rd8", chesserrors.ErrCheckSuffixMismatch},
		{"promotion missing check", promotionFEN, "a8=Q", chesserrors.ErrCheckSuffixMismatch},
		{"promotion off the last rank", engine.InitialFEN, "e4=Q", chesserrors.ErrIllegalMove},
		{"malformed", engine.InitialFEN, "Nz9", chesserrors.ErrMalformedNotation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := mustDecode(t, tt.fen)
			_, err := Parse(tt.text, state.Board, state.ToMove)
			testutil.AssertErrorIs(t, err, tt.want)
		})
	}
}

func TestParseState_EnPassant(t *testing.T) {
	state := mustDecode(t, enPassantFEN)

	m, err := ParseState("fxe6", state)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.UCI(), "f5e6")
	if !m.IsEnPassant || !m.IsCapture {
		t.Errorf("fxe6: IsEnPassant = %v, IsCapture = %v; want both", m.IsEnPassant, m.IsCapture)
	}

	// The board alone carries no en passant target.
	_, err = Parse("fxe6", state.Board, state.ToMove)
	testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove)
}

func TestParseState_ErrorCarriesPly(t *testing.T) {
	state := chess.NewGame()
	next, err := ParseState("e4", state)
	testutil.AssertNoError(t, err)

	after, _, err := engine.Play(state, next.From, next.To, chess.Empty)
	testutil.AssertNoError(t, err)

	tests := []struct {
		text string
	}{
		{"Nd7"},
		{"e4!?"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := ParseState(tt.text, after)
			var ne *chesserrors.NotationError
			if !errors.As(err, &ne) {
				t.Fatalf("ParseState(%q) error = %v; want a NotationError", tt.text, err)
			}
			testutil.AssertEqual(t, ne.Token, tt.text)
			testutil.AssertEqual(t, ne.Ply, 2)
		})
	}
}
