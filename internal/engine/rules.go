package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// DrawRuleResult contains the results of draw rule detection. None of these
// conditions ends a game by itself; TerminationStatus never reports them.
type DrawRuleResult struct {
	// FiftyMoveRule is true once 50 moves (100 half-moves) have been made
	// without a pawn move or capture.
	FiftyMoveRule bool

	// ThreefoldRepetition is true if the current position occurred at
	// least three times in the game's history.
	ThreefoldRepetition bool

	// InsufficientMaterial is true if neither side can deliver mate.
	InsufficientMaterial bool
}

// Any reports whether any draw condition holds.
func (r DrawRuleResult) Any() bool {
	return r.FiftyMoveRule || r.ThreefoldRepetition || r.InsufficientMaterial
}

// AnalyzeDrawRules analyzes a game state for claimable draw conditions.
// Repetition is counted over the positions reached since the state's start.
func AnalyzeDrawRules(state *chess.GameState) DrawRuleResult {
	return DrawRuleResult{
		FiftyMoveRule:        state.HalfmoveClock() >= 100,
		ThreefoldRepetition:  repetitionCount(state) >= 3,
		InsufficientMaterial: HasInsufficientMaterial(state.Board),
	}
}

// repetitionCount replays the history and counts how often the current
// position occurred. Positions compare by Zobrist key.
func repetitionCount(state *chess.GameState) int {
	start := state.Start
	replayed := chess.NewGameFrom(start.Board, start.ToMove, start.EnPassant,
		start.HalfmoveClock, start.FullmoveNumber)

	seen := hashing.NewTable()
	seen.Add(hashing.Key(replayed))
	for _, m := range state.History {
		next, _, err := Play(replayed, m.From, m.To, m.Promotion())
		if err != nil {
			break
		}
		replayed = next
		seen.Add(hashing.Key(replayed))
	}
	return seen.Count(hashing.Key(state))
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.PieceType
	var whiteBishopOnLight, blackBishopOnLight bool

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(row, col)
			piece := board.Get(sq)
			if piece.IsEmpty() || piece.Type == chess.King {
				continue
			}

			// Any pawn, rook, or queen means sufficient material
			if piece.Type == chess.Pawn || piece.Type == chess.Rook || piece.Type == chess.Queen {
				return false
			}

			if piece.Colour == chess.White {
				whitePieces = append(whitePieces, piece.Type)
				if piece.Type == chess.Bishop {
					whiteBishopOnLight = isLightSquare(sq)
				}
			} else {
				blackPieces = append(blackPieces, piece.Type)
				if piece.Type == chess.Bishop {
					blackBishopOnLight = isLightSquare(sq)
				}
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}

// isLightSquare returns true if the given square is a light square.
// a1 (row 7, col 0) is dark.
func isLightSquare(sq chess.Square) bool {
	return (sq.Row+sq.Col)%2 == 0
}
