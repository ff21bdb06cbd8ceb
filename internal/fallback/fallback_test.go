package fallback

import (
	"math/rand"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// One capture available (exd5) among many quiet moves.
const oneCaptureFEN = "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2"

func mustDecode(t *testing.T, fen string) *chess.GameState {
	t.Helper()
	state, err := engine.DecodePosition(fen)
	if err != nil {
		t.Fatalf("DecodePosition(%q) error: %v", fen, err)
	}
	return state
}

func TestParseTier(t *testing.T) {
	tests := []struct {
		in   string
		want Tier
	}{
		{"low", Low},
		{"Medium", Medium},
		{" HIGH ", High},
	}
	for _, tt := range tests {
		got, err := ParseTier(tt.in)
		testutil.AssertNoError(t, err, tt.in)
		testutil.AssertEqual(t, got, tt.want)
		testutil.AssertEqual(t, got.String(), tt.want.String())
	}

	_, err := ParseTier("grandmaster")
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidConfig)
}

func TestResolveOrFallback_Strict(t *testing.T) {
	state := chess.NewGame()
	res, err := ResolveOrFallback("Nf3", state.Board, state.ToMove, Low, rand.New(rand.NewSource(1)))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, res.Move.UCI(), "g1f3")
	testutil.AssertEqual(t, res.Text, "Nf3")
	if res.Fallback || res.Reason != nil {
		t.Errorf("Fallback = %v, Reason = %v; want a strict resolution", res.Fallback, res.Reason)
	}
}

// Whatever the token, a legal move comes back while one exists.
func TestResolveOrFallback_Totality(t *testing.T) {
	tokens := []string{"", "garbage", "Ke2", "Nd7", "Nf3+", "O-O-O", "e8=Q#", "xx"}
	positions := []string{engine.InitialFEN, testutil.KiwipeteFEN, testutil.KnightsToD7FEN, oneCaptureFEN}
	rng := rand.New(rand.NewSource(42))

	for _, fen := range positions {
		state := mustDecode(t, fen)
		legal := testutil.MoveStrings(engine.GameLegalMoves(state))
		for _, tier := range []Tier{Low, Medium, High} {
			for _, token := range tokens {
				res, err := ResolveState(token, state, tier, rng)
				if err != nil {
					t.Fatalf("%s %s %q: %v", fen, tier, token, err)
				}
				if !containsString(legal, res.Move.UCI()) {
					t.Errorf("%s %s %q: %s is not legal", fen, tier, token, res.Move.UCI())
				}
				if res.Fallback && res.Reason == nil {
					t.Errorf("%s %s %q: fallback without a reason", fen, tier, token)
				}
			}
		}
	}
}

func TestResolveOrFallback_ReasonKeepsKind(t *testing.T) {
	state := mustDecode(t, testutil.KnightsToD7FEN)
	res, err := ResolveState("Nd7", state, Low, rand.New(rand.NewSource(1)))
	testutil.AssertNoError(t, err)
	if !res.Fallback {
		t.Fatal("ambiguous token should fall back")
	}
	testutil.AssertErrorIs(t, res.Reason, chesserrors.ErrAmbiguousMove)
	testutil.AssertKind(t, res.Reason, "ambiguous_move")
}

func TestResolveOrFallback_NoLegalMoves(t *testing.T) {
	for _, fen := range []string{testutil.TwoQueenMateFEN, testutil.QueenStalemateFEN} {
		state := mustDecode(t, fen)
		_, err := ResolveState("Kg8", state, Medium, rand.New(rand.NewSource(1)))
		testutil.AssertErrorIs(t, err, chesserrors.ErrNoLegalMoves, fen)
	}
}

func TestChoose_Tiers(t *testing.T) {
	state := mustDecode(t, oneCaptureFEN)
	legal := engine.GameLegalMoves(state)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 20; i++ {
		for _, tier := range []Tier{Medium, High} {
			m, err := Choose(legal, tier, rng)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, m.UCI(), "e4d5", tier.String())
		}
	}

	// Without captures, medium keeps to the centre.
	quiet := mustDecode(t, engine.InitialFEN)
	for i := 0; i < 20; i++ {
		m, err := Choose(engine.GameLegalMoves(quiet), Medium, rng)
		testutil.AssertNoError(t, err)
		if !IsCentral(m.To) {
			t.Errorf("medium chose %s, want a central destination", m.UCI())
		}
	}

	_, err := Choose(nil, Low, rng)
	testutil.AssertErrorIs(t, err, chesserrors.ErrNoLegalMoves)
}

// Low and High fall back to the whole move list when nothing is preferred.
func TestChoose_Uniform(t *testing.T) {
	moves := engine.GameLegalMoves(chess.NewGame())
	seen := make(map[string]bool)
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 2000; i++ {
		m, err := Choose(moves, High, rng)
		testutil.AssertNoError(t, err)
		seen[m.UCI()] = true
	}
	testutil.AssertEqual(t, len(seen), len(moves))
}

func TestIsCentral(t *testing.T) {
	count := 0
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if IsCentral(chess.Sq(row, col)) {
				count++
			}
		}
	}
	testutil.AssertEqual(t, count, 16)
	testutil.AssertEqual(t, IsCentral(chess.MustParseSquare("c3")), true)
	testutil.AssertEqual(t, IsCentral(chess.MustParseSquare("f6")), true)
	testutil.AssertEqual(t, IsCentral(chess.MustParseSquare("b4")), false)
	testutil.AssertEqual(t, IsCentral(chess.MustParseSquare("e7")), false)
}

func TestSelector_Reproducible(t *testing.T) {
	state := chess.NewGame()
	a, b := NewSelector(Low, 99), NewSelector(Low, 99)
	for i := 0; i < 10; i++ {
		ra, err := a.Resolve("??", state)
		testutil.AssertNoError(t, err)
		rb, err := b.Resolve("??", state)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, ra.Move.UCI(), rb.Move.UCI())
	}
	testutil.AssertEqual(t, a.Tier(), Low)
}

func TestSelector_ResolveFirst(t *testing.T) {
	state := chess.NewGame()
	sel := NewSelector(High, 1)

	res, err := sel.ResolveFirst([]string{"Ke2", "Nc3", "e4"}, state, High, 2)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, res.Text, "Nc3")
	testutil.AssertEqual(t, res.Fallback, false)

	res, err = sel.ResolveFirst([]string{"Ke2", "Nd7"}, state, High, 2)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, res.Fallback, true)
	testutil.AssertErrorIs(t, res.Reason, chesserrors.ErrIllegalMove)

	res, err = sel.ResolveFirst(nil, state, High, 2)
	testutil.AssertNoError(t, err)
	testutil.AssertErrorIs(t, res.Reason, chesserrors.ErrMalformedNotation)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
