package bench

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
	gm "github.com/Oliverans/GooseEngineMG/goosemg"

	"tactics-engine/engine"
	"tactics-engine/tactics"
)

const kiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func benchOrderLegalMoves(b *testing.B, fen string) {
	board := dragontoothmg.ParseFen(fen)
	weights := engine.DefaultOrderingWeights()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.OrderLegalMoves(&board, weights)
	}
}

func BenchmarkOrderLegalMoves_Initial(b *testing.B) {
	benchOrderLegalMoves(b, engine.StartposFEN)
}

func BenchmarkOrderLegalMoves_Kiwipete(b *testing.B) {
	benchOrderLegalMoves(b, kiwipeteFEN)
}

func BenchmarkOrderLegalMoves_Pos6(b *testing.B) {
	benchOrderLegalMoves(b, "r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10")
}

// One shared detector per position, the way a search node uses it.
func BenchmarkDetect_Kiwipete(b *testing.B) {
	board := dragontoothmg.ParseFen(kiwipeteFEN)
	facts := engine.BoardFacts(&board)
	moves := board.GenerateLegalMoves()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d := tactics.NewDetector(facts)
		for _, m := range moves {
			d.Detect(engine.MoveFacts(m))
		}
	}
}

// Feeds the scorer straight from the buffered bitboard generator.
func BenchmarkScoreGeneratedMoves_Kiwipete(b *testing.B) {
	board, err := gm.ParseFEN(kiwipeteFEN)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	dt := dragontoothmg.ParseFen(kiwipeteFEN)
	facts := engine.BoardFacts(&dt)
	scorer := tactics.NewScorer(tactics.PolicyBest)
	buf := make([]gm.Move, 0, 256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = board.GenerateMovesInto(buf)
		d := tactics.NewDetector(facts)
		for _, m := range buf {
			from := int(m.From())
			to := int(m.To())
			scorer.Score(d, tactics.Move{
				From: tactics.Square{Row: int8(from/8 + 1), Col: int8(from%8 + 1)},
				To:   tactics.Square{Row: int8(to/8 + 1), Col: int8(to%8 + 1)},
			})
		}
		buf = buf[:0]
	}
}

func BenchmarkEvaluate_Kiwipete(b *testing.B) {
	board := dragontoothmg.ParseFen(kiwipeteFEN)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.H3.Evaluate(&board, board.Wtomove)
	}
}

func BenchmarkBestMoveDepth3_Kiwipete(b *testing.B) {
	board := dragontoothmg.ParseFen(kiwipeteFEN)
	s := engine.NewSearcher()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := s.BestMove(&board); !ok {
			b.Fatalf("expected a best move")
		}
	}
}
