package align

// TraceGlobal extracts the single Needleman–Wunsch alignment.
//
// The walk starts at (len(seq1), len(seq2)) and follows Trace until it
// reaches (0,0); it relies on the Left/Up boundary that a Global Build
// writes. Left prepends (gap, seq2[j-1]), Diagonal (seq1[i-1], seq2[j-1]),
// Up (seq1[i-1], gap).
//
// The result always has length 1 and its Score equals
// Score[len(seq1)][len(seq2)].
//
// Errors (malformed matrices only):
//   - ErrDimensionMismatch: nil matrices or wrong shape.
//   - ErrBrokenTrace:       a None cell, or a step off the grid, before the origin.
//
// Complexity: O(len(seq1)+len(seq2)).
func TraceGlobal(seq1, seq2 string, m *Matrices) ([]Alignment, error) {
	if err := checkShape(seq1, seq2, m); err != nil {
		return nil, err
	}

	i, j := len(seq1), len(seq2)
	end := Coord{I: i, J: j}
	w := newWalker(seq1, seq2, m)
	for i != 0 || j != 0 {
		d, err := m.Trace.At(i, j)
		if err != nil {
			return nil, err
		}
		if i, j, err = w.step(d, i, j); err != nil {
			return nil, err
		}
	}

	score, err := m.Score.At(end.I, end.J)
	if err != nil {
		return nil, err
	}

	return []Alignment{w.emit(Coord{}, end, score)}, nil
}
