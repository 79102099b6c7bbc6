package tactics

// Pure geometric predicates over squares. The path queries take the Board only
// to ask occupancy; they never mutate it.

func abs8(x int8) int8 {
	if x < 0 {
		return -x
	}
	return x
}

func sign8(x int8) int8 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// SameRow reports whether a and b share a row.
func SameRow(a, b Square) bool { return a.Row == b.Row }

// SameColumn reports whether a and b share a column.
func SameColumn(a, b Square) bool { return a.Col == b.Col }

// SameDiagonal reports whether a and b lie on one diagonal (distinct squares).
func SameDiagonal(a, b Square) bool {
	dr := abs8(a.Row - b.Row)
	dc := abs8(a.Col - b.Col)
	return dr == dc && dr != 0
}

// aligned reports whether a and b share a row, column or diagonal.
func aligned(a, b Square) bool {
	return SameRow(a, b) || SameColumn(a, b) || SameDiagonal(a, b)
}

// OnSameLine reports whether a, b, c are colinear in strictly that order along
// one row, column or diagonal, with b strictly between a and c.
func OnSameLine(a, b, c Square) bool {
	switch {
	case SameRow(a, b) && SameRow(b, c):
		return between8(a.Col, b.Col, c.Col)
	case SameColumn(a, b) && SameColumn(b, c):
		return between8(a.Row, b.Row, c.Row)
	case SameDiagonal(a, b) && SameDiagonal(b, c) && SameDiagonal(a, c):
		// The two legs must run along the same diagonal direction.
		return sign8(b.Row-a.Row) == sign8(c.Row-b.Row) &&
			sign8(b.Col-a.Col) == sign8(c.Col-b.Col) &&
			between8(a.Row, b.Row, c.Row)
	}
	return false
}

func between8(a, b, c int8) bool {
	return (a < b && b < c) || (a > b && b > c)
}

// PathClear reports whether no occupied square lies strictly between a and b
// on their shared row, column or diagonal.
func PathClear(b *Board, from, to Square) bool {
	return PathClearIgnoring(b, from, to, Square{})
}

// PathClearIgnoring is PathClear with one square treated as vacant regardless
// of occupancy, simulating the mover having left its origin. The zero Square
// excludes nothing. Misaligned inputs report false (fail-soft).
func PathClearIgnoring(b *Board, from, to Square, excluded Square) bool {
	if from == to || !aligned(from, to) {
		return false
	}
	dr := sign8(to.Row - from.Row)
	dc := sign8(to.Col - from.Col)
	for sq := (Square{from.Row + dr, from.Col + dc}); sq != to; sq.Row, sq.Col = sq.Row+dr, sq.Col+dc {
		if sq == excluded {
			continue
		}
		if b.Occupied(sq) {
			return false
		}
	}
	return true
}

// KnightReachable reports whether a knight leaps from a to b.
func KnightReachable(a, b Square) bool {
	dr := abs8(a.Row - b.Row)
	dc := abs8(a.Col - b.Col)
	return (dr == 1 && dc == 2) || (dr == 2 && dc == 1)
}

// CanAttackIgnoring reports whether a piece of the given type and color,
// standing on from, attacks to while excluded is treated as vacant. Pawns
// attack one rank diagonally toward the opponent; sliders need a matching
// line type plus a clear path; kings reach Chebyshev distance one.
func CanAttackIgnoring(b *Board, pt PieceType, c Color, from, to Square, excluded Square) bool {
	if from == to || !from.OnBoard() || !to.OnBoard() {
		return false
	}
	return attackShape(pt, c, from, to, func(a, z Square) bool {
		return PathClearIgnoring(b, a, z, excluded)
	})
}

// attackShape is the per-piece-type attack rule with the line-of-sight query
// abstracted out, so cached and uncached callers share one definition.
func attackShape(pt PieceType, c Color, from, to Square, clear func(from, to Square) bool) bool {
	switch pt {
	case Pawn:
		forward := int8(1)
		if c == Black {
			forward = -1
		}
		return to.Row-from.Row == forward && abs8(to.Col-from.Col) == 1
	case Knight:
		return KnightReachable(from, to)
	case Bishop:
		return SameDiagonal(from, to) && clear(from, to)
	case Rook:
		return (SameRow(from, to) || SameColumn(from, to)) && clear(from, to)
	case Queen:
		return aligned(from, to) && clear(from, to)
	case King:
		return abs8(to.Row-from.Row) <= 1 && abs8(to.Col-from.Col) <= 1
	}
	return false
}
