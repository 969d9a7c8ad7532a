package align

// TraceLocal extracts every Smith–Waterman alignment whose start cell scores
// at least threshold.
//
// Threshold resolution: a negative threshold (see BestOnly) is replaced by
// the maximum of Score, so only the best-scoring alignment(s) are reported.
// Ties at the maximum each yield an alignment.
//
// Enumeration: cells are visited in row-major order; each qualifying cell
// starts an independent walk that follows Trace until a None cell and emits
// (A, B, Score[i][j]). Overlapping or prefix-related alignments along one
// path are all reported; there is no deduplication. When the resolved
// threshold is 0, every cell qualifies, including those that yield empty
// alignments.
//
// Errors (malformed matrices only):
//   - ErrDimensionMismatch: nil matrices or wrong shape.
//   - ErrBrokenTrace:       a direction that would step off the grid.
//
// Complexity: O(N·M) scan plus O(N+M) per reported alignment.
func TraceLocal(seq1, seq2 string, m *Matrices, threshold int) ([]Alignment, error) {
	if err := checkShape(seq1, seq2, m); err != nil {
		return nil, err
	}
	if threshold < 0 {
		threshold = MaxScore(m)
	}

	var out []Alignment
	w := newWalker(seq1, seq2, m)
	for a := 0; a < m.Score.Rows(); a++ {
		scores := m.Score.Row(a)
		for b, s := range scores {
			if s < threshold {
				continue
			}
			aln, err := traceLocalFrom(w, a, b, s)
			if err != nil {
				return nil, err
			}
			out = append(out, aln)
		}
	}

	return out, nil
}

// traceLocalFrom walks from (a, b) to the first None cell.
func traceLocalFrom(w *walker, a, b, score int) (Alignment, error) {
	i, j := a, b
	for {
		d, err := w.m.Trace.At(i, j)
		if err != nil {
			return Alignment{}, err
		}
		if d == None {
			break
		}
		if i, j, err = w.step(d, i, j); err != nil {
			return Alignment{}, err
		}
	}

	return w.emit(Coord{I: i, J: j}, Coord{I: a, J: b}, score), nil
}
