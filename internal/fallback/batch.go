package fallback

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/notation"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// Check is the strict validation result of one token.
type Check struct {
	Token string
	Move  chess.Move
	Err   error
}

// ValidateBatch validates every token against state on a pool of workers.
// Results are in token order.
func ValidateBatch(state *chess.GameState, tokens []string, workers int) []Check {
	if len(tokens) == 0 {
		return nil
	}

	items := make([]worker.WorkItem, len(tokens))
	for i, token := range tokens {
		items[i] = worker.WorkItem{State: state, Token: token}
	}
	results := worker.Run(func(item worker.WorkItem) worker.ProcessResult {
		m, err := notation.ParseState(item.Token, item.State)
		return worker.ProcessResult{Move: m, Error: err}
	}, items, worker.WithWorkers(workers))

	checks := make([]Check, len(results))
	for i, r := range results {
		checks[i] = Check{Token: r.Token, Move: r.Move, Err: r.Error}
	}
	return checks
}
