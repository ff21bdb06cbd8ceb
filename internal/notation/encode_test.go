package notation

import (
	"sort"
	"testing"

	notnil "github.com/notnil/chess"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// Positions whose legal moves are rendered and parsed back.
var inversePositions = []string{
	engine.InitialFEN,
	testutil.KiwipeteFEN,
	testutil.KnightsToD7FEN,
	castlingFEN,
	backRankFEN,
	promotionFEN,
	enPassantFEN,
	"n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1",
	"4k3/8/8/8/8/Q7/8/Q1Q4K w - - 0 1",
	"1k6/8/8/3N1N2/8/3N1N2/8/K7 w - - 0 1",
}

func TestRender(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		from, to  string
		promotion chess.PieceType
		want      string
	}{
		{"pawn push", engine.InitialFEN, "e2", "e4", chess.Empty, "e4"},
		{"knight", engine.InitialFEN, "g1", "f3", chess.Empty, "Nf3"},
		{"file disambiguation", testutil.KnightsToD7FEN, "b8", "d7", chess.Empty, "Nbd7"},
		{"rank disambiguation", "4k3/8/8/R7/8/8/8/R3K3 w - - 0 1", "a1", "a3", chess.Empty, "R1a3"},
		{"other rook", "4k3/8/8/R7/8/8/8/R3K3 w - - 0 1", "a5", "a3", chess.Empty, "R5a3"},
		{"square disambiguation", "4k3/8/8/8/8/Q7/8/Q1Q4K w - - 0 1", "a1", "b2", chess.Empty, "Qa1b2"},
		{"rank among three", "4k3/8/8/8/8/Q7/8/Q1Q4K w - - 0 1", "a3", "b2", chess.Empty, "Q3b2"},
		{"file among three", "4k3/8/8/8/8/Q7/8/Q1Q4K w - - 0 1", "c1", "b2", chess.Empty, "Qcb2"},
		{"pawn capture", "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", "e4", "d5", chess.Empty, "exd5"},
		{"piece capture", castlingFEN, "a1", "a8", chess.Empty, "Rxa8+"},
		{"kingside castle", castlingFEN, "e1", "g1", chess.Empty, "O-O"},
		{"queenside castle", castlingFEN, "e1", "c1", chess.Empty, "O-O-O"},
		{"checkmate", backRankFEN, "d1", "d8", chess.Empty, "Rd8#"},
		{"default promotion", promotionFEN, "a7", "a8", chess.Empty, "a8=Q+"},
		{"underpromotion", promotionFEN, "a7", "a8", chess.Knight, "a8=N"},
		{"capture promotion", "n1n5/PPPk4/8/8/8/8/4Kppp/5N1N w - - 0 1", "b7", "a8", chess.Rook, "bxa8=R"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := mustDecode(t, tt.fen)
			got, err := Render(state.Board, testutil.Sq(t, tt.from), testutil.Sq(t, tt.to), tt.promotion)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestRender_Errors(t *testing.T) {
	board := chess.NewInitialBoard()

	_, err := Render(board, chess.MustParseSquare("e4"), chess.MustParseSquare("e5"), chess.Empty)
	testutil.AssertErrorIs(t, err, chesserrors.ErrNoPieceAtSource)

	_, err = Render(board, chess.MustParseSquare("e2"), chess.MustParseSquare("e5"), chess.Empty)
	testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove)

	_, err = Render(board, chess.MustParseSquare("e2"), chess.MustParseSquare("e4"), chess.Queen)
	testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove)
}

// Render accepts exactly the promotion choices ApplyMove accepts.
func TestRender_PromotionAgreesWithApplyMove(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		from, to  string
		promotion chess.PieceType
		legal     bool
	}{
		{"push with queen", engine.InitialFEN, "e2", "e4", chess.Queen, false},
		{"knight with knight", engine.InitialFEN, "g1", "f3", chess.Knight, false},
		{"promotion default", promotionFEN, "a7", "a8", chess.Empty, true},
		{"promotion to bishop", promotionFEN, "a7", "a8", chess.Bishop, true},
		{"promotion to king", promotionFEN, "a7", "a8", chess.King, false},
		{"promotion to pawn", promotionFEN, "a7", "a8", chess.Pawn, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustDecode(t, tt.fen).Board
			from, to := testutil.Sq(t, tt.from), testutil.Sq(t, tt.to)

			_, renderErr := Render(board, from, to, tt.promotion)
			_, applyErr := engine.ApplyMove(board, from, to, tt.promotion)
			if tt.legal {
				testutil.AssertNoError(t, renderErr, "Render")
				testutil.AssertNoError(t, applyErr, "ApplyMove")
				return
			}
			testutil.AssertErrorIs(t, renderErr, chesserrors.ErrIllegalMove, "Render")
			testutil.AssertErrorIs(t, applyErr, chesserrors.ErrIllegalMove, "ApplyMove")
		})
	}
}

func TestRenderState_EnPassant(t *testing.T) {
	state := mustDecode(t, enPassantFEN)
	got, err := RenderState(state, chess.MustParseSquare("f5"), chess.MustParseSquare("e6"), chess.Empty)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, "fxe6")
}

// Rendering then parsing every legal move must give the move back.
func TestRenderParse_Inverse(t *testing.T) {
	for _, fen := range inversePositions {
		t.Run(fen, func(t *testing.T) {
			state := mustDecode(t, fen)
			for _, m := range engine.GameLegalMoves(state) {
				text := RenderMove(state, m)
				got, err := ParseState(text, state)
				if err != nil {
					t.Errorf("%s rendered as %q: %v", m.UCI(), text, err)
					continue
				}
				if !got.SameAction(m) {
					t.Errorf("%q parsed to %s, want %s", text, got.UCI(), m.UCI())
				}
			}
		})
	}
}

// Rendered moves agree with notnil/chess's algebraic encoder.
func TestRenderAll_MatchesReference(t *testing.T) {
	for _, fen := range inversePositions {
		t.Run(fen, func(t *testing.T) {
			opt, err := notnil.FEN(fen)
			if err != nil {
				t.Fatalf("notnil.FEN(%q) error: %v", fen, err)
			}
			pos := notnil.NewGame(opt).Position()

			var want []string
			for _, m := range pos.ValidMoves() {
				want = append(want, notnil.AlgebraicNotation{}.Encode(pos, m))
			}
			sort.Strings(want)

			got := RenderAll(mustDecode(t, fen))
			sort.Strings(got)
			testutil.AssertEqual(t, got, want)
		})
	}
}
