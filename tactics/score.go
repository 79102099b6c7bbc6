package tactics

// Report collects every detector's output for one candidate move.
type Report struct {
	AbsolutePins []PatternMatch `json:"absolute_pins,omitempty"`
	RelativePins []PatternMatch `json:"relative_pins,omitempty"`
	Forks        []PatternMatch `json:"forks,omitempty"`
	Skewers      []PatternMatch `json:"skewers,omitempty"`
	// Capture is nil for quiet moves so it drops out of the JSON encoding.
	Capture   *PatternMatch `json:"capture,omitempty"`
	IsCapture bool          `json:"is_capture,omitempty"`
	Promotion bool          `json:"promotion,omitempty"`
}

// Empty reports whether no detector matched.
func (r Report) Empty() bool {
	return len(r.AbsolutePins) == 0 && len(r.RelativePins) == 0 &&
		len(r.Forks) == 0 && len(r.Skewers) == 0 && !r.IsCapture && !r.Promotion
}

// Matches returns every scored match in the report, in detector order.
func (r Report) Matches() []PatternMatch {
	n := len(r.AbsolutePins) + len(r.RelativePins) + len(r.Forks) + len(r.Skewers)
	if r.IsCapture {
		n++
	}
	if n == 0 {
		return nil
	}
	out := make([]PatternMatch, 0, n)
	out = append(out, r.AbsolutePins...)
	out = append(out, r.RelativePins...)
	out = append(out, r.Forks...)
	out = append(out, r.Skewers...)
	if r.IsCapture {
		out = append(out, *r.Capture)
	}
	return out
}

// Best returns the highest score per kind, zero for kinds without a match.
func (r Report) Best(k Kind) int {
	var best int
	var seen bool
	for _, m := range r.Matches() {
		if m.Kind != k {
			continue
		}
		if !seen || m.Score > best {
			best = m.Score
			seen = true
		}
	}
	return best
}

// Detect runs every detector against the move.
func (d *Detector) Detect(m Move) Report {
	rep := Report{
		AbsolutePins: d.AbsolutePins(m),
		RelativePins: d.RelativePins(m),
		Forks:        d.Forks(m),
		Skewers:      d.Skewers(m),
		Promotion:    d.IsPromotion(m),
	}
	if c, ok := d.Capture(m); ok {
		rep.Capture, rep.IsCapture = &c, true
	}
	return rep
}

// Detect is the one-shot variant of Detector.Detect.
func Detect(b *Board, m Move) Report { return NewDetector(b).Detect(m) }

// Policy selects how the scorer folds multiple matches into one value. The
// upstream search driver owns this choice; the detectors impose none.
type Policy uint8

const (
	// PolicyBest scores a move by its single best match.
	PolicyBest Policy = iota
	// PolicySum adds every match together.
	PolicySum
)

// Scorer turns a move's detector output into one deterministic ordering value.
type Scorer struct {
	Policy Policy
	// PromotionBonus is added when the move promotes; the promotion detector
	// itself carries no score.
	PromotionBonus int
}

// DefaultPromotionBonus keeps promotions above every plain tactic score.
const DefaultPromotionBonus = 800

// NewScorer returns a scorer with the default promotion bonus.
func NewScorer(p Policy) Scorer {
	return Scorer{Policy: p, PromotionBonus: DefaultPromotionBonus}
}

// Score evaluates one candidate move using the detector's node-local cache.
func (s Scorer) Score(d *Detector, m Move) int {
	return s.ScoreReport(d.Detect(m))
}

// ScoreBoard is Score without a shared Detector.
func (s Scorer) ScoreBoard(b *Board, m Move) int {
	return s.Score(NewDetector(b), m)
}

// ScoreReport folds an already-computed report per the scorer's policy.
func (s Scorer) ScoreReport(rep Report) int {
	var total int
	switch s.Policy {
	case PolicySum:
		for _, m := range rep.Matches() {
			total += m.Score
		}
	default: // PolicyBest
		for i, m := range rep.Matches() {
			if i == 0 || m.Score > total {
				total = m.Score
			}
		}
	}
	if rep.Promotion {
		total += s.PromotionBonus
	}
	return total
}
