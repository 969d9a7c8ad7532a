package align

import (
	"fmt"

	"github.com/katalvlaran/seqalign/matrix"
)

// Build fills the score and direction matrices for seq1 against seq2.
//
// Algorithm Outline:
//  1. Let a = len(seq1), b = len(seq2). Allocate (a+1)x(b+1) Score and Trace,
//     zero / None everywhere.
//  2. Global only: Score[i][0] = -i·gap with Up, Score[0][j] = -j·gap with
//     Left, so a global trace always runs out along the boundary to (0,0).
//  3. For i = 1..a, j = 1..b:
//     left = Score[i][j-1]   - gap
//     diag = Score[i-1][j-1] + sub(seq1[i-1], seq2[j-1])
//     up   = Score[i-1][j]   - gap
//     best = max(left, diag, up)            (Global)
//     best = max(0, left, diag, up)         (Local)
//     Trace[i][j] = first of Left, Diagonal, Up whose value equals best,
//     else None.
//
// Errors:
//   - ErrInvalidModality:          mode is neither Global nor Local.
//   - ErrNegativeGap:              gapPenalty < 0.
//   - ErrNilScorer:                sub is nil.
//   - ErrMissingSubstitutionScore: first pair the scorer cannot resolve,
//     wrapped with the cell; no matrices are returned.
//
// Complexity: O(a·b) time and memory.
func Build(seq1, seq2 string, sub Scorer, gapPenalty int, mode Modality) (*Matrices, error) {
	if !mode.valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidModality, mode)
	}
	if gapPenalty < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeGap, gapPenalty)
	}
	if sub == nil {
		return nil, ErrNilScorer
	}

	a, b := len(seq1), len(seq2)
	score, err := matrix.NewGrid[int](a+1, b+1)
	if err != nil {
		return nil, err
	}
	trace, err := matrix.NewGrid[Direction](a+1, b+1)
	if err != nil {
		return nil, err
	}

	if mode == Global {
		fillGlobalBoundary(score, trace, gapPenalty)
	}

	prev := score.Row(0)
	for i := 1; i <= a; i++ {
		cur, dirs := score.Row(i), trace.Row(i)
		for j := 1; j <= b; j++ {
			s, err := sub.Score(seq1[i-1], seq2[j-1])
			if err != nil {
				return nil, fmt.Errorf("align: cell (%d,%d): %w", i, j, err)
			}
			left := cur[j-1] - gapPenalty
			diag := prev[j-1] + s
			up := prev[j] - gapPenalty
			cur[j], dirs[j] = choose(left, diag, up, mode)
		}
		prev = cur
	}

	return &Matrices{Score: score, Trace: trace, Modality: mode}, nil
}

// fillGlobalBoundary writes the cumulative gap run along row 0 and column 0.
func fillGlobalBoundary(score *matrix.Grid[int], trace *matrix.Grid[Direction], gapPenalty int) {
	row0, dir0 := score.Row(0), trace.Row(0)
	for j := 1; j < len(row0); j++ {
		row0[j] = row0[j-1] - gapPenalty
		dir0[j] = Left
	}
	for i := 1; i < score.Rows(); i++ {
		above := score.Row(i - 1)[0]
		score.Row(i)[0] = above - gapPenalty
		trace.Row(i)[0] = Up
	}
}

// choose picks the cell score and direction. The comparison order is the
// tie-break: Left, Diagonal, Up. In Local mode the zero floor is applied to
// best only, so a branch that scored exactly 0 still wins over None.
func choose(left, diag, up int, mode Modality) (int, Direction) {
	best := max(left, diag, up)
	if mode == Local {
		best = max(best, 0)
	}

	switch best {
	case left:
		return best, Left
	case diag:
		return best, Diagonal
	case up:
		return best, Up
	}

	return best, None
}

// MaxScore returns the largest value in m.Score, or 0 for nil matrices.
// Complexity: O(N·M).
func MaxScore(m *Matrices) int {
	if m == nil || m.Score == nil {
		return 0
	}
	best, first := 0, true
	m.Score.Each(func(_, _ int, v int) bool {
		if first || v > best {
			best, first = v, false
		}
		return true
	})

	return best
}
