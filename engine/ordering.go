package engine

import (
	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"

	"tactics-engine/tactics"
)

type scoredMove struct {
	move   dragontoothmg.Move
	score  int
	report tactics.Report
}

type moveList struct {
	moves []scoredMove
}

/*
	Move ordering offsets!
	The raw pattern scores come out of the tactics detectors; the baselines
	below stack them into a hierarchy for the search:
	king-involved tactics > good captures > minor tactics ~ medium captures,
	with promotions above everything but an immediate tactical crush.
*/
type OrderingWeights struct {
	AbsolutePinBase int
	RelativePinBase int
	ForkBase        int
	SkewerBase      int
	// PatternScale multiplies every raw detector score.
	PatternScale   int
	PromotionBonus int
	CheckBonus     int
	// Policy folds multiple matches of one kind into the raw score.
	Policy tactics.Policy
}

// DefaultOrderingWeights returns the tuned baseline+3x scheme.
func DefaultOrderingWeights() OrderingWeights {
	return OrderingWeights{
		AbsolutePinBase: 50,
		RelativePinBase: 30,
		ForkBase:        100,
		SkewerBase:      80,
		PatternScale:    3,
		PromotionBonus:  800,
		CheckBonus:      50,
		Policy:          tactics.PolicyBest,
	}
}

func (w OrderingWeights) scoreReport(rep tactics.Report) int {
	var score int
	if s := w.fold(rep, tactics.AbsolutePinKind); s > 0 {
		score += w.AbsolutePinBase + s*w.PatternScale
	}
	if s := w.fold(rep, tactics.RelativePinKind); s > 0 {
		score += w.RelativePinBase + s*w.PatternScale
	}
	if s := w.fold(rep, tactics.ForkKind); s > 0 {
		score += w.ForkBase + s*w.PatternScale
	}
	if s := w.fold(rep, tactics.SkewerKind); s > 0 {
		score += w.SkewerBase + s*w.PatternScale
	}
	if rep.IsCapture && rep.Capture.Score > 0 {
		score += rep.Capture.Score * w.PatternScale
	}
	if rep.Promotion {
		score += w.PromotionBonus
	}
	return score
}

func (w OrderingWeights) fold(rep tactics.Report, k tactics.Kind) int {
	if w.Policy == tactics.PolicySum {
		var sum int
		for _, m := range rep.Matches() {
			if m.Kind == k {
				sum += m.Score
			}
		}
		return sum
	}
	return rep.Best(k)
}

// givesCheck plays the move and asks whether the opponent's king hangs.
func givesCheck(b *dragontoothmg.Board, move dragontoothmg.Move) bool {
	unapply := b.Apply(move)
	check := b.OurKingInCheck()
	unapply()
	return check
}

// scoreMovesList runs the detectors once per candidate move against a single
// fact snapshot; the detector's line-of-sight cache is shared across the
// whole node.
func scoreMovesList(b *dragontoothmg.Board, moves []dragontoothmg.Move, w OrderingWeights) (movesList moveList) {
	detector := tactics.NewDetector(BoardFacts(b))

	movesList.moves = make([]scoredMove, len(moves))
	for i := 0; i < len(moves); i++ {
		rep := detector.Detect(MoveFacts(moves[i]))
		score := w.scoreReport(rep)
		if w.CheckBonus != 0 && givesCheck(b, moves[i]) {
			score += w.CheckBonus
		}
		movesList.moves[i] = scoredMove{move: moves[i], score: score, report: rep}
	}
	return movesList
}

// Ordering the moves one at a time, at index given
func orderNextMove(currIndex int, moves *moveList) {
	bestIndex := currIndex
	bestScore := moves.moves[bestIndex].score

	for index := bestIndex + 1; index < len(moves.moves); index++ {
		if moves.moves[index].score > bestScore {
			bestIndex = index
			bestScore = moves.moves[index].score
		}
	}

	tempMove := moves.moves[currIndex]
	moves.moves[currIndex] = moves.moves[bestIndex]
	moves.moves[bestIndex] = tempMove
}

// MoveScore is one ordered candidate with its tactical breakdown.
type MoveScore struct {
	Move   dragontoothmg.Move
	Score  int
	Report tactics.Report
}

// OrderMoves scores and fully sorts the candidate moves, best first. The sort
// is stable, so equal scores keep generator order and identical inputs always
// produce identical output.
func OrderMoves(b *dragontoothmg.Board, moves []dragontoothmg.Move, w OrderingWeights) []MoveScore {
	list := scoreMovesList(b, moves, w)
	slices.SortStableFunc(list.moves, func(x, y scoredMove) bool {
		return x.score > y.score
	})
	out := make([]MoveScore, len(list.moves))
	for i, sm := range list.moves {
		out[i] = MoveScore{Move: sm.move, Score: sm.score, Report: sm.report}
	}
	return out
}

// OrderLegalMoves generates and orders every legal move of the position.
func OrderLegalMoves(b *dragontoothmg.Board, w OrderingWeights) []MoveScore {
	return OrderMoves(b, b.GenerateLegalMoves(), w)
}
