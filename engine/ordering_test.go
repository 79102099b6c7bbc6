package engine

import (
	"reflect"
	"strings"
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

func TestOrderMovesPutsQueenCaptureFirst(t *testing.T) {
	// White rook can take the queen on d5; everything else is quiet.
	board := dragontoothmg.ParseFen("k7/8/8/3q4/8/8/3R4/K7 w - - 0 1")
	ordered := OrderLegalMoves(&board, DefaultOrderingWeights())
	if len(ordered) == 0 {
		t.Fatalf("expected legal moves")
	}
	if got := ordered[0].Move.String(); got != "d2d5" {
		t.Fatalf("expected d2d5 first, got %s (score %d)", got, ordered[0].Score)
	}
	// MVV-LVA 10*9-5 = 85, tripled by the pattern scale.
	if ordered[0].Score < 255 {
		t.Fatalf("expected capture score >= 255, got %d", ordered[0].Score)
	}
	if !ordered[0].Report.IsCapture {
		t.Fatalf("expected the capture flagged in the report")
	}
}

func TestOrderMovesPutsForkFirst(t *testing.T) {
	// Nc7+ forks king and queen: fork base 100 + 3*106 plus the check bonus.
	board := dragontoothmg.ParseFen("k3q3/8/8/1N6/8/8/8/7K w - - 0 1")
	ordered := OrderLegalMoves(&board, DefaultOrderingWeights())
	if got := ordered[0].Move.String(); got != "b5c7" {
		t.Fatalf("expected b5c7 first, got %s", got)
	}
	if want := 100 + 3*106 + 50; ordered[0].Score != want {
		t.Fatalf("expected fork score %d, got %d", want, ordered[0].Score)
	}
}

func TestOrderMovesRanksPromotions(t *testing.T) {
	board := dragontoothmg.ParseFen("8/P7/8/8/8/8/8/k6K w - - 0 1")
	ordered := OrderLegalMoves(&board, DefaultOrderingWeights())
	if len(ordered) == 0 {
		t.Fatalf("expected legal moves")
	}
	if !strings.HasPrefix(ordered[0].Move.String(), "a7a8") {
		t.Fatalf("expected a promotion first, got %s", ordered[0].Move.String())
	}
	if !ordered[0].Report.Promotion {
		t.Fatalf("expected the promotion flagged in the report")
	}
	if ordered[0].Score < 800 {
		t.Fatalf("expected promotion score >= 800, got %d", ordered[0].Score)
	}
}

func TestOrderMovesSortsDescendingAndKeepsTiesStable(t *testing.T) {
	// Every opening move is pattern-free and scores 0, so the stable sort
	// must hand back the generator's order untouched.
	board := dragontoothmg.ParseFen(StartposFEN)
	moves := board.GenerateLegalMoves()
	ordered := OrderMoves(&board, moves, DefaultOrderingWeights())
	if len(ordered) != len(moves) {
		t.Fatalf("expected %d ordered moves, got %d", len(moves), len(ordered))
	}
	for i, ms := range ordered {
		if ms.Score != 0 {
			t.Fatalf("expected quiet opening move, %s scored %d", ms.Move.String(), ms.Score)
		}
		if ms.Move != moves[i] {
			t.Fatalf("tied scores reordered: %s at %d, want %s", ms.Move.String(), i, moves[i].String())
		}
	}

	board = dragontoothmg.ParseFen("r1bqkbnr/pppp1ppp/2n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4")
	ordered = OrderLegalMoves(&board, DefaultOrderingWeights())
	for i := 1; i < len(ordered); i++ {
		if ordered[i].Score > ordered[i-1].Score {
			t.Fatalf("score rises at index %d: %d after %d", i, ordered[i].Score, ordered[i-1].Score)
		}
	}
}

func TestOrderMovesIsDeterministic(t *testing.T) {
	board := dragontoothmg.ParseFen("r1bqkbnr/pppp1ppp/2n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4")
	first := OrderLegalMoves(&board, DefaultOrderingWeights())
	for i := 0; i < 5; i++ {
		if again := OrderLegalMoves(&board, DefaultOrderingWeights()); !reflect.DeepEqual(first, again) {
			t.Fatalf("ordering differs between identical inputs")
		}
	}
}

func TestOrderMovesLeavesBoardUntouched(t *testing.T) {
	board := dragontoothmg.ParseFen("k3q3/8/8/1N6/8/8/8/7K w - - 0 1")
	before := board.ToFen()
	OrderLegalMoves(&board, DefaultOrderingWeights())
	if after := board.ToFen(); after != before {
		t.Fatalf("ordering mutated the board:\nbefore %s\nafter  %s", before, after)
	}
}

func TestOrderNextMoveSelectsBestIncrementally(t *testing.T) {
	list := moveList{moves: []scoredMove{
		{score: 10}, {score: 500}, {score: 250},
	}}
	orderNextMove(0, &list)
	if list.moves[0].score != 500 {
		t.Fatalf("expected best score first, got %d", list.moves[0].score)
	}
	orderNextMove(1, &list)
	if list.moves[1].score != 250 {
		t.Fatalf("expected second best next, got %d", list.moves[1].score)
	}
}
