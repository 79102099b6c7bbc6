package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/dylhunn/dragontoothmg"

	"tactics-engine/engine"
	"tactics-engine/tactics"
)

func main() {
	fen := flag.String("fen", engine.StartposFEN, "FEN string (defaults to initial position)")
	policy := flag.String("policy", "best", "Pattern scoring policy: best or sum")
	top := flag.Int("top", 0, "Print only the N best moves (0 for all)")
	asJSON := flag.Bool("json", false, "Emit the full pattern reports as JSON")
	flag.Parse()

	weights := engine.DefaultOrderingWeights()
	switch *policy {
	case "best":
		weights.Policy = tactics.PolicyBest
	case "sum":
		weights.Policy = tactics.PolicySum
	default:
		fmt.Fprintln(os.Stderr, "-policy must be best or sum")
		os.Exit(2)
	}

	board := dragontoothmg.ParseFen(*fen)
	ordered := engine.OrderLegalMoves(&board, weights)
	if *top > 0 && *top < len(ordered) {
		ordered = ordered[:*top]
	}

	if *asJSON {
		type row struct {
			Move   string         `json:"move"`
			Score  int            `json:"score"`
			Report tactics.Report `json:"report"`
		}
		rows := make([]row, len(ordered))
		for i, ms := range ordered {
			rows[i] = row{Move: ms.Move.String(), Score: ms.Score, Report: ms.Report}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rows); err != nil {
			fmt.Fprintf(os.Stderr, "encoding error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	for _, ms := range ordered {
		fmt.Printf("%s \t%d \t%s\n", ms.Move.String(), ms.Score, annotation(ms.Report))
	}
}

func annotation(rep tactics.Report) string {
	if rep.Empty() {
		return "-"
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
