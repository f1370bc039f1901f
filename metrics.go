package cubesim

// Metrics summarizes a move sequence under the two standard move counts.
type Metrics struct {
	HTM int // Half-Turn Metric: a 180 turn counts as one move
	QTM int // Quarter-Turn Metric: a 180 turn counts as two moves
}

// Canonicalize merges consecutive same-face tokens by summing their
// quarter-turn amounts modulo 4. A run that sums to 0 disappears; the
// survivors are expressed as plain (1), half (2) or prime (3) turns.
// Elimination can make earlier tokens adjacent, so merging runs to a
// fixed point: R L L' R canonicalizes to R2, not R R.
func Canonicalize(moves []Move) []Move {
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		amount := m.quarters()
		// Adjacent entries in out always differ in face, so at most one
		// merge is needed per incoming token.
		if len(out) > 0 && out[len(out)-1].Face == m.Face {
			amount = (amount + out[len(out)-1].quarters()) % 4
			out = out[:len(out)-1]
		}
		if amount == 0 {
			continue
		}
		out = append(out, Move{Face: m.Face, Turn: turnFromQuarters(amount)})
	}
	return out
}

// ComputeMetrics canonicalizes moves and counts them: HTM is the token
// count, QTM counts half turns twice.
func ComputeMetrics(moves []Move) Metrics {
	canon := Canonicalize(moves)
	m := Metrics{HTM: len(canon)}
	for _, mv := range canon {
		if mv.Turn == Double {
			m.QTM += 2
		} else {
			m.QTM++
		}
	}
	return m
}

// Comparison holds metrics for a reference sequence and, optionally, an
// alternative, for judging solver quality.
type Comparison struct {
	Reference   Metrics
	Alternative *Metrics // nil when no alternative was supplied
	DeltaHTM    int      // alternative minus reference; valid when Alternative is set
	DeltaQTM    int
}

// CompareMetrics computes metrics for a reference sequence and an optional
// alternative. Pass a nil alternative to skip the comparison; the deltas
// are meaningful only when Alternative is non-nil.
func CompareMetrics(reference, alternative []Move) Comparison {
	cmp := Comparison{Reference: ComputeMetrics(reference)}
	if alternative == nil {
		return cmp
	}
	alt := ComputeMetrics(alternative)
	cmp.Alternative = &alt
	cmp.DeltaHTM = alt.HTM - cmp.Reference.HTM
	cmp.DeltaQTM = alt.QTM - cmp.Reference.QTM
	return cmp
}
