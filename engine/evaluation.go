package engine

import (
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"

	"tactics-engine/tactics"
)

// Heuristic position evaluation: a weighted linear combination of normalized
// features, each mapped into [0,1] from white's point of view. This is the
// cheap hand-rolled evaluator the search leans on at the leaves; it is
// deliberately simple.

// matValue is the material table for evaluation; the king carries no material.
var matValue = [7]int{
	tactics.Pawn:   1,
	tactics.Knight: 3,
	tactics.Bishop: 3,
	tactics.Rook:   5,
	tactics.Queen:  9,
	tactics.King:   0,
}

// Piece-square tables, white's perspective, a1 = index 0. Black mirrors
// vertically (sq ^ 56).
var pawnTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, -20, -20, 10, 10, 5,
	5, -5, -10, 0, 0, -10, -5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, 5, 10, 25, 25, 10, 5, 5,
	10, 10, 20, 30, 30, 20, 10, 10,
	50, 50, 50, 50, 50, 50, 50, 50,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightTable = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopTable = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queenTable = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingTable = [64]int{
	20, 30, 10, 0, 0, 10, 30, 20,
	20, 20, 0, 0, 0, 0, 20, 20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
}

var pieceTables = [7]*[64]int{
	tactics.Pawn:   &pawnTable,
	tactics.Knight: &knightTable,
	tactics.Bishop: &bishopTable,
	tactics.Rook:   &rookTable,
	tactics.Queen:  &queenTable,
	tactics.King:   &kingTable,
}

// FeatureSet holds the normalized position features, white's point of view,
// each in [0,1] with 0.5 meaning balance.
type FeatureSet struct {
	Material    float64
	Positional  float64
	Mobility    float64
	Center      float64
	KingSafety  float64
	Development float64
}

func clipF(x, low, high float64) float64 {
	if x < low {
		return low
	}
	if x > high {
		return high
	}
	return x
}

// squareIndex is the inverse of SquareFacts.
func squareIndex(sq tactics.Square) int {
	return int(sq.Row-1)*8 + int(sq.Col-1)
}

// ExtractFeatures computes every feature for the position. The board is only
// ever read; mobility counts the opponent's moves on a private copy.
func ExtractFeatures(b *dragontoothmg.Board) FeatureSet {
	facts := BoardFacts(b)

	var fs FeatureSet
	fs.Material = materialFeature(facts)
	fs.Positional = positionalFeature(facts)
	fs.Mobility = mobilityFeature(b)
	fs.Center = centerFeature(facts)
	fs.KingSafety = kingSafetyFeature(b, facts)
	fs.Development = developmentFeature(facts)
	return fs
}

func materialFeature(facts *tactics.Board) float64 {
	var diff int
	for _, p := range facts.Pieces() {
		if p.Color == tactics.White {
			diff += matValue[p.Type]
		} else {
			diff -= matValue[p.Type]
		}
	}
	return (float64(diff) + 39) / 78
}

func positionalFeature(facts *tactics.Board) float64 {
	var diff float64
	for _, p := range facts.Pieces() {
		idx := squareIndex(p.Square)
		if p.Color == tactics.Black {
			idx ^= 56 // vertical mirror
		}
		v := float64(pieceTables[p.Type][idx]) / 100
		if p.Color == tactics.White {
			diff += v
		} else {
			diff -= v
		}
	}
	return (clipF(diff, -6, 6) + 6) / 12
}

func mobilityFeature(b *dragontoothmg.Board) float64 {
	own := len(b.GenerateLegalMoves())
	// The generator make/unmakes moves internally while filtering for
	// legality, so the opponent's count runs on a value copy; the live
	// board is never touched with the wrong side to move.
	flipped := *b
	flipped.Wtomove = !flipped.Wtomove
	other := len(flipped.GenerateLegalMoves())

	white, black := own, other
	if !b.Wtomove {
		white, black = other, own
	}
	return (float64(white-black) + 80) / 160
}

var centerSquares = [4]tactics.Square{
	{Row: 4, Col: 4}, {Row: 4, Col: 5}, // d4 e4
	{Row: 5, Col: 4}, {Row: 5, Col: 5}, // d5 e5
}

func centerFeature(facts *tactics.Board) float64 {
	var diff int
	for _, sq := range centerSquares {
		if p, ok := facts.PieceAt(sq); ok {
			if p.Color == tactics.White {
				diff++
			} else {
				diff--
			}
		}
	}
	return (clipF(float64(diff), -4, 4) + 4) / 8
}

// castlingRights reads the rights field out of the FEN rather than poking at
// generator internals.
func castlingRights(b *dragontoothmg.Board, white bool) bool {
	fields := strings.Fields(b.ToFen())
	if len(fields) < 3 {
		return false
	}
	if white {
		return strings.ContainsAny(fields[2], "KQ")
	}
	return strings.ContainsAny(fields[2], "kq")
}

func kingSafetyFeature(b *dragontoothmg.Board, facts *tactics.Board) float64 {
	safety := func(c tactics.Color, white bool) float64 {
		sq, ok := facts.KingSquare(c)
		if !ok {
			return 0
		}
		file := float64(sq.Col - 1)
		s := minF(file, 7-file) / 3.5
		if castlingRights(b, white) {
			s += 0.5
		}
		return s
	}
	diff := safety(tactics.White, true) - safety(tactics.Black, false)
	return (clipF(diff, -4, 4) + 4) / 8
}

func minF(x, y float64) float64 {
	if x < y {
		return x
	}
	return y
}

func developmentFeature(facts *tactics.Board) float64 {
	var diff int
	for _, p := range facts.Pieces() {
		if p.Type != tactics.Knight && p.Type != tactics.Bishop {
			continue
		}
		if p.Color == tactics.White && p.Square.Row > 1 {
			diff++
		} else if p.Color == tactics.Black && p.Square.Row < 8 {
			diff--
		}
	}
	return (clipF(float64(diff), -4, 4) + 4) / 8
}

// HeuristicWeights combines the normalized features linearly. Weights must be
// non-negative and sum to 1.
type HeuristicWeights struct {
	Material    float64
	Positional  float64
	Mobility    float64
	Center      float64
	KingSafety  float64
	Development float64
}

// Validate rejects weight sets that would break the [0,1] evaluation range.
func (w HeuristicWeights) Validate() error {
	sum := 0.0
	for _, v := range []float64{w.Material, w.Positional, w.Mobility, w.Center, w.KingSafety, w.Development} {
		if v < 0 {
			return fmt.Errorf("heuristic weights must be non-negative, got %v", v)
		}
		sum += v
	}
	if sum < 1-1e-6 || sum > 1+1e-6 {
		return fmt.Errorf("heuristic weights must sum to 1.0, got %v", sum)
	}
	return nil
}

// Evaluate scores the position for the given side, clipped into (0.01, 0.99)
// so the terminal utilities 0 and 1 always dominate.
func (w HeuristicWeights) Evaluate(b *dragontoothmg.Board, white bool) float64 {
	fs := ExtractFeatures(b)
	score := w.Material*fs.Material +
		w.Positional*fs.Positional +
		w.Mobility*fs.Mobility +
		w.Center*fs.Center +
		w.KingSafety*fs.KingSafety +
		w.Development*fs.Development
	if !white {
		score = 1 - score
	}
	return clipF(score, 0.01, 0.99)
}

// The stock heuristics. H1 weighs everything equally; H2 leans on king safety
// and development; H3 is material-first and is the default for the tactical
// searcher.
var (
	H1 = HeuristicWeights{
		Material: 1.0 / 6, Positional: 1.0 / 6, Mobility: 1.0 / 6,
		Center: 1.0 / 6, KingSafety: 1.0 / 6, Development: 1.0 / 6,
	}
	H2 = HeuristicWeights{Material: 0.1, Positional: 0.1, KingSafety: 0.5, Development: 0.3}
	H3 = HeuristicWeights{Material: 0.5, Positional: 0.2, Mobility: 0.2, KingSafety: 0.1}
)
