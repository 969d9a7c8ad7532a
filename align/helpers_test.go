package align_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/matrix"
	"github.com/katalvlaran/seqalign/substitution"
)

// identity builds a +match/-mismatch table over the symbols of both sequences.
func identity(t testing.TB, seq1, seq2 string, match, mismatch int) *substitution.Table {
	t.Helper()
	var seen [256]bool
	var alphabet []byte
	for _, s := range []byte(seq1 + seq2) {
		if !seen[s] {
			seen[s] = true
			alphabet = append(alphabet, s)
		}
	}
	tbl, err := substitution.MatchMismatch(string(alphabet), match, mismatch)
	require.NoError(t, err)

	return tbl
}

// scoreRows copies a score grid into nested slices for readable assertions.
func scoreRows(g *matrix.Grid[int]) [][]int {
	out := make([][]int, g.Rows())
	for i := range out {
		out[i] = append([]int(nil), g.Row(i)...)
	}

	return out
}

// traceRows converts a direction grid into the 0..3 codes used in fixtures.
func traceRows(g *matrix.Grid[align.Direction]) [][]int {
	out := make([][]int, g.Rows())
	for i := range out {
		for _, d := range g.Row(i) {
			out[i] = append(out[i], int(d))
		}
	}

	return out
}

// triple strips coordinates so fixtures can list (A, B, Score) only.
type triple struct {
	A, B  string
	Score int
}

func triples(alns []align.Alignment) []triple {
	out := make([]triple, len(alns))
	for i, a := range alns {
		out[i] = triple{a.A, a.B, a.Score}
	}

	return out
}
