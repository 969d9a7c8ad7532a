package align

import (
	"fmt"
	"slices"
)

// checkShape verifies that m holds two grids of shape (len(seq1)+1)×(len(seq2)+1).
func checkShape(seq1, seq2 string, m *Matrices) error {
	if m == nil || m.Score == nil || m.Trace == nil {
		return fmt.Errorf("%w: nil matrices", ErrDimensionMismatch)
	}
	rows, cols := len(seq1)+1, len(seq2)+1
	if m.Score.Rows() != rows || m.Score.Cols() != cols ||
		m.Trace.Rows() != rows || m.Trace.Cols() != cols {
		return fmt.Errorf("%w: score %dx%d, trace %dx%d, want %dx%d", ErrDimensionMismatch,
			m.Score.Rows(), m.Score.Cols(), m.Trace.Rows(), m.Trace.Cols(), rows, cols)
	}

	return nil
}

// walker accumulates one alignment back to front while following Trace.
type walker struct {
	seq1, seq2 string
	m          *Matrices
	a, b       []byte // reversed aligned columns
}

func newWalker(seq1, seq2 string, m *Matrices) *walker {
	n := len(seq1) + len(seq2)
	return &walker{seq1: seq1, seq2: seq2, m: m, a: make([]byte, 0, n), b: make([]byte, 0, n)}
}

// step emits the column for d at (i, j) and returns the predecessor cell.
func (w *walker) step(d Direction, i, j int) (int, int, error) {
	switch d {
	case Left:
		if j == 0 {
			break
		}
		w.a = append(w.a, GapSymbol)
		w.b = append(w.b, w.seq2[j-1])
		return i, j - 1, nil
	case Diagonal:
		if i == 0 || j == 0 {
			break
		}
		w.a = append(w.a, w.seq1[i-1])
		w.b = append(w.b, w.seq2[j-1])
		return i - 1, j - 1, nil
	case Up:
		if i == 0 {
			break
		}
		w.a = append(w.a, w.seq1[i-1])
		w.b = append(w.b, GapSymbol)
		return i - 1, j, nil
	}

	return i, j, fmt.Errorf("%w: %v at (%d,%d)", ErrBrokenTrace, d, i, j)
}

// emit reverses the collected columns into an Alignment and resets the walker.
func (w *walker) emit(from, to Coord, score int) Alignment {
	slices.Reverse(w.a)
	slices.Reverse(w.b)
	aln := Alignment{A: string(w.a), B: string(w.b), Score: score, From: from, To: to}
	w.a, w.b = w.a[:0], w.b[:0]

	return aln
}
