package engine

import (
	"math"

	"github.com/dylhunn/dragontoothmg"
)

// SearchStatistics counts what one search visited and pruned.
type SearchStatistics struct {
	NodesVisited    int
	PruningCount    int
	MaxDepthReached int
}

// EvalFunc scores a non-terminal position in [0,1] for the given side.
type EvalFunc func(b *dragontoothmg.Board, white bool) float64

// Searcher runs fixed-depth alpha-beta with tactical move ordering. Terminal
// positions score 1 (root side mates), 0 (root side mated) and 0.5 (draw);
// the heuristic evaluation stays strictly inside that range.
type Searcher struct {
	MaxDepth int
	Eval     EvalFunc
	Ordering OrderingWeights

	Stats SearchStatistics
}

// NewSearcher builds the default tactical searcher: depth 3, H3 evaluation.
func NewSearcher() *Searcher {
	return &Searcher{
		MaxDepth: 3,
		Eval:     H3.Evaluate,
		Ordering: DefaultOrderingWeights(),
	}
}

// BestMove searches the position and returns the best move found. The board
// is restored before returning. ok is false when no legal move exists.
func (s *Searcher) BestMove(b *dragontoothmg.Board) (best dragontoothmg.Move, ok bool) {
	s.Stats = SearchStatistics{}
	rootWhite := b.Wtomove

	moves := b.GenerateLegalMoves()
	if len(moves) == 0 {
		return 0, false
	}

	alpha, beta := math.Inf(-1), math.Inf(1)
	bestValue := math.Inf(-1)
	list := scoreMovesList(b, moves, s.Ordering)
	for i := 0; i < len(list.moves); i++ {
		orderNextMove(i, &list)
		move := list.moves[i].move

		unapply := b.Apply(move)
		value := s.search(b, rootWhite, 1, alpha, beta, false)
		unapply()

		if value > bestValue {
			bestValue = value
			best = move
		}
		if bestValue > alpha {
			alpha = bestValue
		}
	}
	return best, true
}

// search is the plain AIMA max/min pair collapsed into one function; the
// evaluation is always from the root player's point of view.
func (s *Searcher) search(b *dragontoothmg.Board, rootWhite bool, depth int, alpha, beta float64, maximizing bool) float64 {
	s.Stats.NodesVisited++
	if depth > s.Stats.MaxDepthReached {
		s.Stats.MaxDepthReached = depth
	}

	moves := b.GenerateLegalMoves()
	if len(moves) == 0 {
		return s.terminalUtility(b, rootWhite)
	}
	if depth >= s.MaxDepth {
		return s.Eval(b, rootWhite)
	}

	list := scoreMovesList(b, moves, s.Ordering)
	if maximizing {
		best := math.Inf(-1)
		for i := 0; i < len(list.moves); i++ {
			orderNextMove(i, &list)
			unapply := b.Apply(list.moves[i].move)
			value := s.search(b, rootWhite, depth+1, alpha, beta, false)
			unapply()
			if value > best {
				best = value
			}
			if best > alpha {
				alpha = best
			}
			if alpha >= beta {
				s.Stats.PruningCount++
				return best
			}
		}
		return best
	}

	best := math.Inf(1)
	for i := 0; i < len(list.moves); i++ {
		orderNextMove(i, &list)
		unapply := b.Apply(list.moves[i].move)
		value := s.search(b, rootWhite, depth+1, alpha, beta, true)
		unapply()
		if value < best {
			best = value
		}
		if best < beta {
			beta = best
		}
		if alpha >= beta {
			s.Stats.PruningCount++
			return best
		}
	}
	return best
}

// terminalUtility maps a no-legal-moves position to the root player's payoff.
func (s *Searcher) terminalUtility(b *dragontoothmg.Board, rootWhite bool) float64 {
	if !b.OurKingInCheck() {
		return 0.5 // stalemate
	}
	// Side to move is mated.
	if b.Wtomove == rootWhite {
		return 0
	}
	return 1
}
