package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/fallback"
	"github.com/lgbarn/chessrules-go/internal/notation"
)

// run executes the one-shot queries selected by flags. Results go to
// cfg.OutputFile, diagnostics to cfg.LogFile.
func run(cfg *config.Config) error {
	state, err := loadPosition(*fenFlag)
	if err != nil {
		return err
	}

	state, err = playMoves(cfg, state, splitList(*movesFlag))
	if err != nil {
		return err
	}

	out := cfg.OutputFile
	if *showBoard {
		fmt.Fprint(out, state.Board.String())
	}
	if *listLegal {
		printLegalMoves(out, state)
	}
	if *renderFlag != "" {
		if err := renderMoves(out, state, splitList(*renderFlag)); err != nil {
			return err
		}
	}
	if *perftDepth > 0 {
		printPerft(out, state, *perftDepth, *divide, cfg.Engine.Workers)
	}
	if *suggestFlag != "" {
		if state, err = resolveSuggestion(cfg, state, splitList(*suggestFlag)); err != nil {
			return err
		}
	}

	printSummary(out, state)
	return nil
}

// loadPosition decodes fen, or returns the initial position when fen is empty.
func loadPosition(fen string) (*chess.GameState, error) {
	if fen == "" {
		return chess.NewGame(), nil
	}
	return engine.DecodePosition(fen)
}

// playMoves plays strict algebraic moves in order.
func playMoves(cfg *config.Config, state *chess.GameState, moves []string) (*chess.GameState, error) {
	for _, text := range moves {
		m, err := notation.ParseState(text, state)
		if err != nil {
			return nil, err
		}
		next, result, err := engine.Play(state, m.From, m.To, m.Promotion())
		if err != nil {
			return nil, err
		}
		if cfg.Verbosity > 1 {
			fmt.Fprintf(cfg.LogFile, "%d. %s (%s)\n", state.Ply()+1, text, result.Move.UCI())
		}
		state = next
	}
	return state, nil
}

func printLegalMoves(w io.Writer, state *chess.GameState) {
	moves := notation.RenderAll(state)
	sort.Strings(moves)
	fmt.Fprintf(w, "%d legal move(s): %s\n", len(moves), strings.Join(moves, " "))
}

// renderMoves writes coordinate moves such as "e2e4" or "e7e8n" in
// algebraic notation, playing each so later moves see the new position.
func renderMoves(w io.Writer, state *chess.GameState, moves []string) error {
	var rendered []string
	for _, uci := range moves {
		from, to, promotion, err := parseCoordinates(uci)
		if err != nil {
			return err
		}
		text, err := notation.RenderState(state, from, to, promotion)
		if err != nil {
			return err
		}
		next, _, err := engine.Play(state, from, to, promotion)
		if err != nil {
			return err
		}
		rendered = append(rendered, text)
		state = next
	}
	fmt.Fprintln(w, strings.Join(rendered, " "))
	return nil
}

func parseCoordinates(uci string) (chess.Square, chess.Square, chess.PieceType, error) {
	if len(uci) != 4 && len(uci) != 5 {
		return chess.NoSquare, chess.NoSquare, chess.Empty, fmt.Errorf("bad coordinate move %q", uci)
	}
	from, err := chess.ParseSquare(uci[0:2])
	if err != nil {
		return chess.NoSquare, chess.NoSquare, chess.Empty, err
	}
	to, err := chess.ParseSquare(uci[2:4])
	if err != nil {
		return chess.NoSquare, chess.NoSquare, chess.Empty, err
	}
	promotion := chess.Empty
	if len(uci) == 5 {
		promotion = chess.PieceTypeFromLetter(uci[4])
		if !engine.IsPromotionChoice(promotion) {
			return chess.NoSquare, chess.NoSquare, chess.Empty, fmt.Errorf("bad promotion in %q", uci)
		}
	}
	return from, to, promotion, nil
}

func printPerft(w io.Writer, state *chess.GameState, depth int, divided bool, workers int) {
	if !divided {
		fmt.Fprintf(w, "perft(%d) = %d\n", depth, engine.Perft(state, depth))
		return
	}

	var total uint64
	for _, e := range engine.Divide(state, depth, workers) {
		fmt.Fprintf(w, "%s: %d\n", e.Move.UCI(), e.Nodes)
		total += e.Nodes
	}
	fmt.Fprintf(w, "perft(%d) = %d\n", depth, total)
}

// resolveSuggestion plays the first legal candidate or a substitute.
func resolveSuggestion(cfg *config.Config, state *chess.GameState, candidates []string) (*chess.GameState, error) {
	selector := fallback.NewSelector(cfg.Engine.Tier, cfg.Engine.Seed)
	res, err := selector.ResolveFirst(candidates, state, cfg.Engine.Tier, cfg.Engine.Workers)
	if err != nil {
		return nil, err
	}

	if res.Fallback {
		if cfg.Verbosity > 0 {
			fmt.Fprintf(cfg.LogFile, "rejected %s: %v\n", strings.Join(candidates, ","), res.Reason)
		}
		fmt.Fprintf(cfg.OutputFile, "fallback (%s): %s\n", cfg.Engine.Tier, res.Text)
	} else {
		fmt.Fprintf(cfg.OutputFile, "move: %s\n", res.Text)
	}

	next, _, err := engine.Play(state, res.Move.From, res.Move.To, res.Move.Promotion())
	if err != nil {
		return nil, err
	}
	return next, nil
}

func printSummary(w io.Writer, state *chess.GameState) {
	fmt.Fprintln(w, engine.EncodePosition(state))
	fmt.Fprintf(w, "status: %s\n", engine.GameStatus(state))

	draw := engine.AnalyzeDrawRules(state)
	var claims []string
	if draw.FiftyMoveRule {
		claims = append(claims, "fifty-move rule")
	}
	if draw.ThreefoldRepetition {
		claims = append(claims, "threefold repetition")
	}
	if draw.InsufficientMaterial {
		claims = append(claims, "insufficient material")
	}
	if len(claims) > 0 {
		fmt.Fprintf(w, "draw: %s\n", strings.Join(claims, ", "))
	}
}

// splitList splits on commas and whitespace.
func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}
