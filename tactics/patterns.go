package tactics

// Kind names one tactical motif a move can create.
type Kind uint8

const (
	AbsolutePinKind Kind = iota
	RelativePinKind
	ForkKind
	SkewerKind
	CaptureKind
	PromotionKind
)

var kindNames = [...]string{"absolute_pin", "relative_pin", "fork", "skewer", "capture", "promotion"}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[int(k)]
}

// PatternMatch is one detected motif instance for a (Board, Move) query.
// Ephemeral: produced per query, never stored by the engine.
type PatternMatch struct {
	Kind  Kind
	Score int
}

// Detector answers pattern queries against one Board snapshot. It memoizes
// line-of-sight results, which repeat heavily across the candidate moves of a
// search node. The cache is a performance detail only; results are identical
// with or without it. A Detector serves a single goroutine; for parallel move
// evaluation give each worker its own Detector over the shared Board.
type Detector struct {
	board *Board
	cache map[pathKey]bool
}

type pathKey struct {
	from, to, excluded Square
}

// NewDetector wraps a board snapshot for one node's move-ordering pass.
func NewDetector(b *Board) *Detector {
	return &Detector{board: b}
}

// Board returns the wrapped snapshot.
func (d *Detector) Board() *Board { return d.board }

func (d *Detector) clear(from, to, excluded Square) bool {
	key := pathKey{from, to, excluded}
	if v, ok := d.cache[key]; ok {
		return v
	}
	v := PathClearIgnoring(d.board, from, to, excluded)
	if d.cache == nil {
		d.cache = make(map[pathKey]bool, 64)
	}
	d.cache[key] = v
	return v
}

func (d *Detector) canAttack(pt PieceType, c Color, from, to, excluded Square) bool {
	if from == to || !from.OnBoard() || !to.OnBoard() {
		return false
	}
	return attackShape(pt, c, from, to, func(a, b Square) bool {
		return d.clear(a, b, excluded)
	})
}

// moverAt fetches the moving piece. Every detector is fail-soft: an empty or
// off-board From simply yields no matches.
func moverAt(b *Board, m Move) (Piece, bool) {
	if !m.From.OnBoard() || !m.To.OnBoard() || m.From == m.To {
		return Piece{}, false
	}
	return b.PieceAt(m.From)
}

// AbsolutePins reports every absolute pin the move creates: a slider lands on
// To and lines up an enemy piece with the enemy king behind it, both segments
// clear with From treated as vacant.
func (d *Detector) AbsolutePins(m Move) []PatternMatch {
	mover, ok := moverAt(d.board, m)
	if !ok || !mover.Type.Slider() {
		return nil
	}
	kingSq, ok := d.board.KingSquare(opponent(mover.Color))
	if !ok || kingSq == m.From {
		return nil
	}
	var matches []PatternMatch
	for _, pinned := range d.board.Pieces() {
		if pinned.Color == mover.Color || pinned.Square == kingSq || pinned.Square == m.From {
			continue
		}
		if !d.pinGeometry(m, pinned.Square, kingSq) {
			continue
		}
		score := (PieceValue[pinned.Type] + PieceValue[King] - PieceValue[mover.Type]) / 2
		matches = append(matches, PatternMatch{Kind: AbsolutePinKind, Score: score})
	}
	return matches
}

// RelativePins is the same geometry as AbsolutePins with a non-king piece
// behind, which must outvalue both the pinned piece and the mover.
func (d *Detector) RelativePins(m Move) []PatternMatch {
	mover, ok := moverAt(d.board, m)
	if !ok || !mover.Type.Slider() {
		return nil
	}
	var matches []PatternMatch
	for _, pinned := range d.board.Pieces() {
		if pinned.Color == mover.Color || pinned.Square == m.From {
			continue
		}
		for _, shielded := range d.board.Pieces() {
			if shielded.Color == mover.Color || shielded.Type == King {
				continue
			}
			if shielded.Square == pinned.Square || shielded.Square == m.From {
				continue
			}
			if PieceValue[shielded.Type] <= PieceValue[pinned.Type] ||
				PieceValue[shielded.Type] <= PieceValue[mover.Type] {
				continue
			}
			if !d.pinGeometry(m, pinned.Square, shielded.Square) {
				continue
			}
			score := (PieceValue[pinned.Type] + PieceValue[shielded.Type] - PieceValue[mover.Type]) / 2
			matches = append(matches, PatternMatch{Kind: RelativePinKind, Score: score})
		}
	}
	return matches
}

// pinGeometry holds for pins and skewers alike: To, front, back colinear in
// that order, both segments clear with the mover's origin vacated.
func (d *Detector) pinGeometry(m Move, front, back Square) bool {
	return OnSameLine(m.To, front, back) &&
		d.clear(m.To, front, m.From) &&
		d.clear(front, back, m.From)
}

// Forks reports every pair of big enemy pieces (king, queen or rook) the moved
// piece attacks at once from To. A piece standing on To itself is about to be
// captured and never counts as a fork target.
func (d *Detector) Forks(m Move) []PatternMatch {
	mover, ok := moverAt(d.board, m)
	if !ok {
		return nil
	}
	var targets []Piece
	for _, p := range d.board.Pieces() {
		if p.Color == mover.Color || p.Square == m.From || p.Square == m.To {
			continue
		}
		if p.Type != King && p.Type != Queen && p.Type != Rook {
			continue
		}
		if d.canAttack(mover.Type, mover.Color, m.To, p.Square, m.From) {
			targets = append(targets, p)
		}
	}
	if len(targets) < 2 {
		return nil
	}
	var matches []PatternMatch
	for i := 0; i < len(targets); i++ {
		for j := i + 1; j < len(targets); j++ {
			score := PieceValue[targets[i].Type] + PieceValue[targets[j].Type] - PieceValue[mover.Type]
			matches = append(matches, PatternMatch{Kind: ForkKind, Score: score})
		}
	}
	return matches
}

// Skewers reports every skewer the move creates: a slider on To attacks a big
// enemy piece (king, queen or rook) with a cheaper, non-king enemy piece
// behind it on the same line. A king behind is an absolute pin, never a
// skewer; the two detectors cannot match the same piece triple.
func (d *Detector) Skewers(m Move) []PatternMatch {
	mover, ok := moverAt(d.board, m)
	if !ok || !mover.Type.Slider() {
		return nil
	}
	var matches []PatternMatch
	for _, front := range d.board.Pieces() {
		if front.Color == mover.Color || front.Square == m.From {
			continue
		}
		if front.Type != King && front.Type != Queen && front.Type != Rook {
			continue
		}
		for _, behind := range d.board.Pieces() {
			if behind.Color == mover.Color || behind.Type == King {
				continue
			}
			if behind.Square == front.Square || behind.Square == m.From {
				continue
			}
			if PieceValue[front.Type] <= PieceValue[behind.Type] {
				continue
			}
			if !d.pinGeometry(m, front.Square, behind.Square) {
				continue
			}
			score := PieceValue[front.Type] + PieceValue[behind.Type] - PieceValue[mover.Type]
			matches = append(matches, PatternMatch{Kind: SkewerKind, Score: score})
		}
	}
	return matches
}

// Capture scores an enemy-occupied destination by MVV-LVA: ten times the
// victim minus the attacker, with the king worth 10 in this table only.
func (d *Detector) Capture(m Move) (PatternMatch, bool) {
	mover, ok := moverAt(d.board, m)
	if !ok {
		return PatternMatch{}, false
	}
	victim, ok := d.board.PieceAt(m.To)
	if !ok || victim.Color == mover.Color {
		return PatternMatch{}, false
	}
	score := 10*MvvLvaValue[victim.Type] - MvvLvaValue[mover.Type]
	return PatternMatch{Kind: CaptureKind, Score: score}, true
}

// IsPromotion reports whether a pawn reaches its last rank. A boolean signal;
// callers add their own fixed bonus.
func (d *Detector) IsPromotion(m Move) bool {
	mover, ok := moverAt(d.board, m)
	if !ok || mover.Type != Pawn {
		return false
	}
	if mover.Color == White {
		return m.To.Row == 8
	}
	return m.To.Row == 1
}

// One-shot variants for callers without a per-node Detector.

func AbsolutePins(b *Board, m Move) []PatternMatch { return NewDetector(b).AbsolutePins(m) }
func RelativePins(b *Board, m Move) []PatternMatch { return NewDetector(b).RelativePins(m) }
func Forks(b *Board, m Move) []PatternMatch        { return NewDetector(b).Forks(m) }
func Skewers(b *Board, m Move) []PatternMatch      { return NewDetector(b).Skewers(m) }
func DetectCapture(b *Board, m Move) (PatternMatch, bool) {
	return NewDetector(b).Capture(m)
}
func IsPromotion(b *Board, m Move) bool { return NewDetector(b).IsPromotion(m) }

func opponent(c Color) Color {
	if c == White {
		return Black
	}
	return White
}
