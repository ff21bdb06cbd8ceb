// Package fallback validates moves proposed by an outside source and
// substitutes a legal move when the proposal cannot be played.
package fallback

import (
	"math/rand"
	"sync"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/notation"
)

// Resolution is the outcome of resolving a proposed move.
type Resolution struct {
	Move     chess.Move
	Text     string // Canonical notation of Move
	Fallback bool   // Move was substituted
	Reason   error  // Why the proposal was rejected, when Fallback is set
}

// ResolveOrFallback resolves token for colour on board, substituting a move
// chosen by tier when the token does not name a legal move. The only error
// is ErrNoLegalMoves.
func ResolveOrFallback(token string, board *chess.Board, colour chess.Colour, tier Tier, rng *rand.Rand) (Resolution, error) {
	return ResolveState(token, chess.NewGameFrom(board, colour, chess.NoSquare, 0, 1), tier, rng)
}

// ResolveState is ResolveOrFallback for the side to move in state.
func ResolveState(token string, state *chess.GameState, tier Tier, rng *rand.Rand) (Resolution, error) {
	m, err := notation.ParseState(token, state)
	if err == nil {
		return Resolution{Move: m, Text: notation.RenderMove(state, m)}, nil
	}
	return substitute(state, tier, rng, err)
}

func substitute(state *chess.GameState, tier Tier, rng *rand.Rand, reason error) (Resolution, error) {
	m, err := Choose(engine.GameLegalMoves(state), tier, rng)
	if err != nil {
		return Resolution{Reason: reason}, err
	}
	return Resolution{
		Move:     m,
		Text:     notation.RenderMove(state, m),
		Fallback: true,
		Reason:   reason,
	}, nil
}

// Choose picks a move from moves by tier.
func Choose(moves []chess.Move, tier Tier, rng *rand.Rand) (chess.Move, error) {
	if len(moves) == 0 {
		return chess.Move{}, errors.ErrNoLegalMoves
	}

	switch tier {
	case Medium:
		if captures := filter(moves, isCapture); len(captures) > 0 {
			return pick(captures, rng), nil
		}
		if central := filter(moves, isCentral); len(central) > 0 {
			return pick(central, rng), nil
		}
	case High:
		if captures := filter(moves, isCapture); len(captures) > 0 {
			return pick(captures, rng), nil
		}
	}
	return pick(moves, rng), nil
}

// IsCentral reports whether sq is one of the 16 squares c3-f6.
func IsCentral(sq chess.Square) bool {
	return sq.Row >= 2 && sq.Row <= 5 && sq.Col >= 2 && sq.Col <= 5
}

func isCapture(m chess.Move) bool { return m.IsCapture }

func isCentral(m chess.Move) bool { return IsCentral(m.To) }

func filter(moves []chess.Move, keep func(chess.Move) bool) []chess.Move {
	var out []chess.Move
	for _, m := range moves {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}

func pick(moves []chess.Move, rng *rand.Rand) chess.Move {
	if rng == nil {
		return moves[rand.Intn(len(moves))]
	}
	return moves[rng.Intn(len(moves))]
}

// Selector resolves proposals with a fixed tier and its own random source.
// It is safe for concurrent use.
type Selector struct {
	tier Tier

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSelector creates a selector whose choices are reproducible for a seed.
func NewSelector(tier Tier, seed int64) *Selector {
	return &Selector{tier: tier, rng: rand.New(rand.NewSource(seed))}
}

// Tier returns the selector's default tier.
func (s *Selector) Tier() Tier {
	return s.tier
}

// Resolve resolves token for the side to move in state with the default tier.
func (s *Selector) Resolve(token string, state *chess.GameState) (Resolution, error) {
	return s.ResolveWithTier(token, state, s.tier)
}

// ResolveWithTier resolves token with an explicit tier.
func (s *Selector) ResolveWithTier(token string, state *chess.GameState, tier Tier) (Resolution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ResolveState(token, state, tier, s.rng)
}

// ResolveFirst resolves the first of several candidate tokens that names a
// legal move, substituting a move when none does. The rejection reason is
// the first candidate's error.
func (s *Selector) ResolveFirst(tokens []string, state *chess.GameState, tier Tier, workers int) (Resolution, error) {
	var reason error = errors.Wrap(errors.ErrMalformedNotation, "no candidate moves")
	for i, check := range ValidateBatch(state, tokens, workers) {
		if check.Err == nil {
			return Resolution{Move: check.Move, Text: notation.RenderMove(state, check.Move)}, nil
		}
		if i == 0 {
			reason = check.Err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return substitute(state, tier, s.rng, reason)
}
