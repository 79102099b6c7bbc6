package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"tactics-engine/engine"
)

func runShell(t *testing.T, script string) string {
	t.Helper()
	var out bytes.Buffer
	shellLoop(strings.NewReader(script), &out)
	return out.String()
}

func TestShellMoveOrdering(t *testing.T) {
	out := runShell(t, "position fen k7/8/8/3q4/8/8/3R4/K7 w - - 0 1\nmoveordering\nquit\n")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) == 0 {
		t.Fatalf("expected ordered moves, got %q", out)
	}
	if !strings.HasPrefix(lines[0], "d2d5\t") {
		t.Fatalf("expected the queen capture first, got %q", lines[0])
	}
	if !strings.Contains(lines[0], "capture") {
		t.Fatalf("expected a capture annotation, got %q", lines[0])
	}
}

func TestShellPositionWithMoves(t *testing.T) {
	out := runShell(t, "position startpos moves e2e4 e7e5\nfen\nquit\n")
	if !strings.Contains(out, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w") {
		t.Fatalf("unexpected position after e2e4 e7e5: %q", out)
	}
}

func TestShellRejectsIllegalMoves(t *testing.T) {
	out := runShell(t, "position startpos moves e2e5\nquit\n")
	if !strings.Contains(out, "illegal move") {
		t.Fatalf("expected an illegal move error, got %q", out)
	}
}

func TestShellGoFindsMate(t *testing.T) {
	out := runShell(t, "position fen k7/8/1K6/8/8/8/8/7R w - - 0 1\ngo depth 3\nquit\n")
	if !strings.Contains(out, "bestmove h1h8") {
		t.Fatalf("expected bestmove h1h8, got %q", out)
	}
	if !strings.Contains(out, "info nodes") {
		t.Fatalf("expected search statistics, got %q", out)
	}
}

func TestShellEval(t *testing.T) {
	out := runShell(t, "eval h1\nquit\n")
	if !strings.Contains(out, "material 0.500") {
		t.Fatalf("expected balanced startpos features, got %q", out)
	}
	if !strings.Contains(out, "eval 0.5") {
		t.Fatalf("expected a near-even evaluation, got %q", out)
	}
}

func TestDescribeReportAnnotatesPatterns(t *testing.T) {
	board := dragontoothmg.ParseFen("k3q3/8/8/1N6/8/8/8/7K w - - 0 1")
	ordered := engine.OrderLegalMoves(&board, engine.DefaultOrderingWeights())
	if got := describeReport(ordered[0].Report); !strings.Contains(got, "fork 106") {
		t.Fatalf("expected a fork annotation, got %q", got)
	}
}
