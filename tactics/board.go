// Package tactics detects tactical patterns (pins, forks, skewers, captures,
// promotions) created by a single candidate move, for use in move ordering.
//
// The package holds no state: every query takes an immutable Board snapshot
// plus a Move and reasons about the hypothetical post-move position without
// materializing it. The mover is treated as already standing on Move.To while
// Move.From is considered vacant in every line-of-sight query.
package tactics

// Square is a board coordinate, 1-indexed on both axes (1..8).
type Square struct {
	Row int8
	Col int8
}

// OnBoard reports whether both axes are within the 8x8 board.
func (s Square) OnBoard() bool {
	return s.Row >= 1 && s.Row <= 8 && s.Col >= 1 && s.Col <= 8
}

// Color is the side owning a piece.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType is a colorless piece kind used for table lookups.
type PieceType uint8

const (
	NoPieceType PieceType = 0
	Pawn        PieceType = 1
	Knight      PieceType = 2
	Bishop      PieceType = 3
	Rook        PieceType = 4
	Queen       PieceType = 5
	King        PieceType = 6
)

var pieceTypeNames = [7]string{"none", "pawn", "knight", "bishop", "rook", "queen", "king"}

func (pt PieceType) String() string {
	if pt > King {
		return "none"
	}
	return pieceTypeNames[pt]
}

// Slider reports whether the piece attacks along rows, columns or diagonals.
func (pt PieceType) Slider() bool {
	return pt == Bishop || pt == Rook || pt == Queen
}

// PieceValue is the general value table used by the pin/fork/skewer scores.
var PieceValue = [7]int{
	Pawn:   1,
	Knight: 3,
	Bishop: 3,
	Rook:   5,
	Queen:  9,
	King:   100,
}

// MvvLvaValue is the capture-ordering table; identical to PieceValue except the
// king, which is worth 10 here so capture scores stay in a sane range.
var MvvLvaValue = [7]int{
	Pawn:   1,
	Knight: 3,
	Bishop: 3,
	Rook:   5,
	Queen:  9,
	King:   10,
}

// Piece is one placed piece in a board snapshot.
type Piece struct {
	Type   PieceType
	Color  Color
	Square Square
}

// Move is a candidate move from the legal-move generator. The mover is still
// on From in the Board snapshot; detectors reason as though it sits on To.
type Move struct {
	From Square
	To   Square
}

// Board is an immutable piece-placement snapshot for one search node. Build it
// with NewBoard and never mutate it afterwards; concurrent reads are safe.
type Board struct {
	pieces []Piece
	// occ[r][c] holds 1+index into pieces, 0 for empty.
	occ [9][9]uint8
}

// NewBoard builds a snapshot from a piece list. A later piece on an occupied
// square replaces the earlier one, keeping occupancy a partial function.
func NewBoard(pieces ...Piece) *Board {
	b := &Board{pieces: make([]Piece, 0, len(pieces))}
	for _, p := range pieces {
		if !p.Square.OnBoard() || p.Type == NoPieceType || p.Type > King {
			continue
		}
		if idx := b.occ[p.Square.Row][p.Square.Col]; idx != 0 {
			b.pieces[idx-1] = p
			continue
		}
		b.pieces = append(b.pieces, p)
		b.occ[p.Square.Row][p.Square.Col] = uint8(len(b.pieces))
	}
	return b
}

// PieceAt returns the piece on sq, if any.
func (b *Board) PieceAt(sq Square) (Piece, bool) {
	if !sq.OnBoard() {
		return Piece{}, false
	}
	idx := b.occ[sq.Row][sq.Col]
	if idx == 0 {
		return Piece{}, false
	}
	return b.pieces[idx-1], true
}

// Occupied reports whether sq holds a piece.
func (b *Board) Occupied(sq Square) bool {
	return sq.OnBoard() && b.occ[sq.Row][sq.Col] != 0
}

// Pieces returns the snapshot's piece list. Callers must not modify it.
func (b *Board) Pieces() []Piece {
	return b.pieces
}

// KingSquare finds the king of the given color. Reports false when the king is
// absent or ambiguous (more than one); detectors then simply report no match.
func (b *Board) KingSquare(c Color) (Square, bool) {
	var found bool
	var sq Square
	for _, p := range b.pieces {
		if p.Type == King && p.Color == c {
			if found {
				return Square{}, false
			}
			found = true
			sq = p.Square
		}
	}
	return sq, found
}
