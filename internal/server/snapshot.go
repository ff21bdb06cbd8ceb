package server

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/notation"
)

// Snapshot is the JSON view of a session.
type Snapshot struct {
	ID         string    `json:"id"`
	FEN        string    `json:"fen"`
	Status     string    `json:"status"`
	ToMove     string    `json:"toMove"`
	LegalMoves []string  `json:"legalMoves"`
	History    []string  `json:"history"`
	Draw       DrawState `json:"draw"`
}

// DrawState lists the claimable draw conditions.
type DrawState struct {
	FiftyMoveRule        bool `json:"fiftyMoveRule"`
	ThreefoldRepetition  bool `json:"threefoldRepetition"`
	InsufficientMaterial bool `json:"insufficientMaterial"`
}

func newSnapshot(id string, state *chess.GameState, history []string) Snapshot {
	draw := engine.AnalyzeDrawRules(state)
	played := make([]string, len(history))
	copy(played, history)
	return Snapshot{
		ID:         id,
		FEN:        engine.EncodePosition(state),
		Status:     engine.GameStatus(state).String(),
		ToMove:     colourName(state.ToMove),
		LegalMoves: notation.RenderAll(state),
		History:    played,
		Draw: DrawState{
			FiftyMoveRule:        draw.FiftyMoveRule,
			ThreefoldRepetition:  draw.ThreefoldRepetition,
			InsufficientMaterial: draw.InsufficientMaterial,
		},
	}
}

func colourName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}
