package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

func TestSearcherFindsMateInOne(t *testing.T) {
	// Rh8 is mate: the b6 king covers the escape squares.
	board := dragontoothmg.ParseFen("k7/8/1K6/8/8/8/8/7R w - - 0 1")
	s := NewSearcher()
	move, ok := s.BestMove(&board)
	if !ok {
		t.Fatalf("expected a legal move")
	}
	if got := move.String(); got != "h1h8" {
		t.Fatalf("expected mate in one h1h8, got %s", got)
	}
	if s.Stats.NodesVisited == 0 {
		t.Fatalf("expected search statistics to be collected")
	}
}

func TestSearcherPrefersTheMateOverTheQueenGrab(t *testing.T) {
	// Back-rank mate with the rook beats winning the hanging queen on h3.
	board := dragontoothmg.ParseFen("6k1/5ppp/8/8/8/7q/5PP1/R3K3 w - - 0 1")
	s := NewSearcher()
	move, ok := s.BestMove(&board)
	if !ok {
		t.Fatalf("expected a legal move")
	}
	if got := move.String(); got != "a1a8" {
		t.Fatalf("expected a1a8 mate, got %s", got)
	}
}

func TestSearcherReportsNoMoveWhenMated(t *testing.T) {
	board := dragontoothmg.ParseFen("R5k1/5ppp/8/8/8/8/8/4K3 b - - 0 1")
	s := NewSearcher()
	if _, ok := s.BestMove(&board); ok {
		t.Fatalf("expected no move in a mated position")
	}
}

func TestSearcherRestoresTheBoard(t *testing.T) {
	board := dragontoothmg.ParseFen(StartposFEN)
	s := NewSearcher()
	s.MaxDepth = 2
	if _, ok := s.BestMove(&board); !ok {
		t.Fatalf("expected a legal move")
	}
	if fen := board.ToFen(); fen != StartposFEN {
		t.Fatalf("search mutated the board: %s", fen)
	}
}

func TestSearcherPrunes(t *testing.T) {
	board := dragontoothmg.ParseFen("r1bqkbnr/pppp1ppp/2n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4")
	s := NewSearcher()
	if _, ok := s.BestMove(&board); !ok {
		t.Fatalf("expected a legal move")
	}
	if s.Stats.PruningCount == 0 {
		t.Fatalf("expected alpha-beta to prune with tactical move ordering")
	}
	if s.Stats.MaxDepthReached != s.MaxDepth {
		t.Fatalf("expected the search to reach depth %d, got %d", s.MaxDepth, s.Stats.MaxDepthReached)
	}
}
