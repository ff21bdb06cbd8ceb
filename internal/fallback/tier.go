package fallback

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Tier selects the heuristic used to pick a substitute move.
type Tier int

const (
	// Low picks uniformly from all legal moves.
	Low Tier = iota
	// Medium prefers captures, then moves onto the central squares.
	Medium
	// High prefers captures.
	High
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	}
	return "unknown"
}

// ParseTier converts a tier name, ignoring case.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return Low, nil
	case "medium":
		return Medium, nil
	case "high":
		return High, nil
	}
	return Low, errors.Wrapf(errors.ErrInvalidConfig, "unknown tier %q", s)
}
