package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dylhunn/dragontoothmg"
	"github.com/notnil/chess"

	"tactics-engine/engine"
	"tactics-engine/store"
	"tactics-engine/tactics"
)

// Replays a PGN game and prints the tactical patterns behind every move
// actually played, plus the move the ordering would have ranked first.
func main() {
	pgnPath := flag.String("pgn", "", "PGN file to annotate (required)")
	cacheDir := flag.String("cache", "", "Optional analysis cache directory")
	flag.Parse()

	if *pgnPath == "" {
		fmt.Fprintln(os.Stderr, "-pgn is required")
		os.Exit(2)
	}
	f, err := os.Open(*pgnPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening pgn: %v\n", err)
		os.Exit(2)
	}
	defer f.Close()

	pgn, err := chess.PGN(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parsing pgn: %v\n", err)
		os.Exit(2)
	}
	game := chess.NewGame(pgn)

	var cache *store.Store
	if *cacheDir != "" {
		cache, err = store.Open(*cacheDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "opening cache: %v\n", err)
			os.Exit(2)
		}
		defer cache.Close()
	}

	positions := game.Positions()
	for i, played := range game.Moves() {
		fen := positions[i].String()
		analysis, err := analyze(fen, cache)
		if err != nil {
			fmt.Fprintf(os.Stderr, "analyzing %s: %v\n", fen, err)
			os.Exit(1)
		}
		printMove(i, uciString(played), analysis)
	}
}

// analyze orders every legal move of the position, going through the cache
// when one is configured.
func analyze(fen string, cache *store.Store) (*store.PositionAnalysis, error) {
	if cache != nil {
		if hit, ok, err := cache.Get(fen); err != nil {
			return nil, err
		} else if ok {
			return hit, nil
		}
	}

	board := dragontoothmg.ParseFen(fen)
	ordered := engine.OrderLegalMoves(&board, engine.DefaultOrderingWeights())
	analysis := &store.PositionAnalysis{FEN: fen, Moves: make([]store.MoveAnalysis, len(ordered))}
	for i, ms := range ordered {
		analysis.Moves[i] = store.MoveAnalysis{Move: ms.Move.String(), Score: ms.Score, Report: ms.Report}
	}

	if cache != nil {
		if err := cache.Put(analysis); err != nil {
			return nil, err
		}
	}
	return analysis, nil
}

func printMove(ply int, played string, analysis *store.PositionAnalysis) {
	var playedScore int
	var playedReport tactics.Report
	for _, ma := range analysis.Moves {
		if ma.Move == played {
			playedScore = ma.Score
			playedReport = ma.Report
			break
		}
	}
	moveNo := ply/2 + 1
	dots := "."
	if ply%2 == 1 {
		dots = "..."
	}
	fmt.Printf("%d%s %s \t%d \t%s", moveNo, dots, played, playedScore, describe(playedReport))
	if len(analysis.Moves) > 0 && analysis.Moves[0].Move != played {
		fmt.Printf(" \t(ordering preferred %s, %d)", analysis.Moves[0].Move, analysis.Moves[0].Score)
	}
	fmt.Println()
}

func describe(rep tactics.Report) string {
	if rep.Empty() {
		return "quiet"
	}
	out := ""
	for _, m := range rep.Matches() {
		if out != "" {
			out += " "
		}
		out += fmt.Sprintf("%s=%d", m.Kind, m.Score)
	}
	if rep.Promotion {
		if out != "" {
			out += " "
		}
		out += "promotion"
	}
	return out
}

// uciString renders a played move in coordinate form to match the generator.
func uciString(m *chess.Move) string {
	s := m.S1().String() + m.S2().String()
	if m.Promo() != chess.NoPieceType {
		s += m.Promo().String()
	}
	return s
}
