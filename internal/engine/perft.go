package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// Perft counts the leaf nodes of the legal move tree of state to depth.
func Perft(state *chess.GameState, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	ep, _ := state.EnPassantTarget()
	return perft(state.Board, state.ToMove, ep, depth)
}

func perft(board *chess.Board, colour chess.Colour, ep chess.Square, depth int) uint64 {
	moves := generateLegal(board, colour, ep, false)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		nodes += perft(makeMove(board, m), colour.Opposite(), enPassantAfter(m), depth-1)
	}
	return nodes
}

// DivideEntry is the perft count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// Divide runs perft below each legal root move, one subtree per work item,
// on the given number of workers. Entries follow move generation order.
func Divide(state *chess.GameState, depth, workers int) []DivideEntry {
	if depth < 1 {
		return nil
	}
	ep, _ := state.EnPassantTarget()
	moves := generateLegal(state.Board, state.ToMove, ep, false)
	if len(moves) == 0 {
		return nil
	}

	items := make([]worker.WorkItem, len(moves))
	for i, m := range moves {
		items[i] = worker.WorkItem{State: state.Append(m, makeMove(state.Board, m)), Move: m, Depth: depth - 1}
	}
	results := worker.Run(func(item worker.WorkItem) worker.ProcessResult {
		return worker.ProcessResult{Move: item.Move, Nodes: Perft(item.State, item.Depth)}
	}, items, worker.WithWorkers(workers))

	entries := make([]DivideEntry, len(results))
	for i, r := range results {
		entries[i] = DivideEntry{Move: r.Move, Nodes: r.Nodes}
	}
	return entries
}
