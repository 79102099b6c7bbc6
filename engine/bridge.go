// Package engine drives the tactics detectors over real positions: it
// converts dragontoothmg boards into fact snapshots, orders legal moves by
// tactical pattern scores and runs a heuristic alpha-beta search on top.
package engine

import (
	"github.com/dylhunn/dragontoothmg"

	"tactics-engine/tactics"
)

// StartposFEN is the standard initial position.
const StartposFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Nice helper to get what piece is at a square :)
func pieceTypeAt(position uint8, bitboards *dragontoothmg.Bitboards) (pieceType tactics.PieceType, occupied bool) {
	if bitboards.Pawns&(1<<position) > 0 {
		return tactics.Pawn, true
	} else if bitboards.Knights&(1<<position) > 0 {
		return tactics.Knight, true
	} else if bitboards.Bishops&(1<<position) > 0 {
		return tactics.Bishop, true
	} else if bitboards.Rooks&(1<<position) > 0 {
		return tactics.Rook, true
	} else if bitboards.Queens&(1<<position) > 0 {
		return tactics.Queen, true
	} else if bitboards.Kings&(1<<position) > 0 {
		return tactics.King, true
	}
	return 0, false
}

// SquareFacts converts a 0-63 square index to 1-indexed fact coordinates.
func SquareFacts(position uint8) tactics.Square {
	return tactics.Square{Row: int8(position/8) + 1, Col: int8(position%8) + 1}
}

// MoveFacts strips a generator move down to the from/to pair the detectors
// reason about.
func MoveFacts(m dragontoothmg.Move) tactics.Move {
	return tactics.Move{From: SquareFacts(m.From()), To: SquareFacts(m.To())}
}

// BoardFacts snapshots piece placement as an immutable fact store, one
// snapshot per search node. Castling rights, en passant and the side to move
// stay with the generator; the detectors never consult them.
func BoardFacts(b *dragontoothmg.Board) *tactics.Board {
	pieces := make([]tactics.Piece, 0, 32)
	for position := uint8(0); position < 64; position++ {
		if pt, ok := pieceTypeAt(position, &b.White); ok {
			pieces = append(pieces, tactics.Piece{Type: pt, Color: tactics.White, Square: SquareFacts(position)})
		} else if pt, ok := pieceTypeAt(position, &b.Black); ok {
			pieces = append(pieces, tactics.Piece{Type: pt, Color: tactics.Black, Square: SquareFacts(position)})
		}
	}
	return tactics.NewBoard(pieces...)
}
