package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dylhunn/dragontoothmg"

	"tactics-engine/engine"
	"tactics-engine/tactics"
)

func main() {
	shellLoop(os.Stdin, os.Stdout)
}

// shellLoop reads line commands and prints analysis. Factored over reader and
// writer so tests can drive it.
func shellLoop(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	board := dragontoothmg.ParseFen(engine.StartposFEN) // the analysis board
	searcher := engine.NewSearcher()

	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "position":
			next, err := parsePosition(tokens[1:])
			if err != nil {
				fmt.Fprintln(out, "error:", err)
				continue
			}
			board = next
		case "moveordering":
			ordered := engine.OrderLegalMoves(&board, searcher.Ordering)
			for _, ms := range ordered {
				fmt.Fprintf(out, "%s\t%d\t%s\n", ms.Move.String(), ms.Score, describeReport(ms.Report))
			}
		case "eval":
			weights := engine.H3
			if len(tokens) > 1 {
				var err error
				weights, err = weightsByName(tokens[1])
				if err != nil {
					fmt.Fprintln(out, "error:", err)
					continue
				}
			}
			fs := engine.ExtractFeatures(&board)
			fmt.Fprintf(out, "material %.3f positional %.3f mobility %.3f center %.3f kingsafety %.3f development %.3f\n",
				fs.Material, fs.Positional, fs.Mobility, fs.Center, fs.KingSafety, fs.Development)
			fmt.Fprintf(out, "eval %.4f\n", weights.Evaluate(&board, board.Wtomove))
		case "go":
			if len(tokens) >= 3 && tokens[1] == "depth" {
				if d, err := strconv.Atoi(tokens[2]); err == nil && d > 0 {
					searcher.MaxDepth = d
				}
			}
			move, ok := searcher.BestMove(&board)
			if !ok {
				fmt.Fprintln(out, "bestmove (none)")
				continue
			}
			fmt.Fprintf(out, "info nodes %d pruned %d depth %d\n",
				searcher.Stats.NodesVisited, searcher.Stats.PruningCount, searcher.Stats.MaxDepthReached)
			fmt.Fprintln(out, "bestmove", move.String())
		case "fen":
			fmt.Fprintln(out, board.ToFen())
		case "quit":
			return
		default:
			fmt.Fprintln(out, "unknown command:", tokens[0])
		}
	}
}

// parsePosition handles "startpos [moves ...]" and "fen <6 fields> [moves ...]".
func parsePosition(tokens []string) (dragontoothmg.Board, error) {
	var board dragontoothmg.Board
	if len(tokens) == 0 {
		return board, fmt.Errorf("position needs startpos or fen")
	}
	var moveTokens []string
	switch tokens[0] {
	case "startpos":
		board = dragontoothmg.ParseFen(engine.StartposFEN)
		moveTokens = tokens[1:]
	case "fen":
		if len(tokens) < 7 {
			return board, fmt.Errorf("fen needs 6 fields")
		}
		board = dragontoothmg.ParseFen(strings.Join(tokens[1:7], " "))
		moveTokens = tokens[7:]
	default:
		return board, fmt.Errorf("position needs startpos or fen")
	}
	if len(moveTokens) > 0 {
		if moveTokens[0] != "moves" {
			return board, fmt.Errorf("expected moves, got %q", moveTokens[0])
		}
		for _, tok := range moveTokens[1:] {
			move, err := findLegalMove(&board, tok)
			if err != nil {
				return board, err
			}
			board.Apply(move)
		}
	}
	return board, nil
}

// describeReport condenses the detected patterns into one annotation column.
func describeReport(rep tactics.Report) string {
	var parts []string
	for _, match := range rep.Matches() {
		parts = append(parts, fmt.Sprintf("%s %d", match.Kind, match.Score))
	}
	if rep.Promotion {
		parts = append(parts, "promotion")
	}
	if len(parts) == 0 {
		return "quiet"
	}
	return strings.Join(parts, ", ")
}

func weightsByName(name string) (engine.HeuristicWeights, error) {
	switch strings.ToLower(name) {
	case "h1":
		return engine.H1, nil
	case "h2":
		return engine.H2, nil
	case "h3":
		return engine.H3, nil
	}
	return engine.HeuristicWeights{}, fmt.Errorf("unknown weight set %q", name)
}

// findLegalMove resolves a coordinate move string against the generator.
func findLegalMove(b *dragontoothmg.Board, uci string) (dragontoothmg.Move, error) {
	uci = strings.ToLower(strings.TrimSpace(uci))
	for _, move := range b.GenerateLegalMoves() {
		if move.String() == uci {
			return move, nil
		}
	}
	return 0, fmt.Errorf("illegal move %q", uci)
}
