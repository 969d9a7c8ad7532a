// SPDX-License-Identifier: MIT

package substitution

import (
	"fmt"
	"slices"
)

// pair is an ordered (row symbol, column symbol) key.
type pair struct {
	a, b byte
}

// Table maps ordered symbol pairs to integer scores.
// The zero value is not usable; construct with New or one of the builders.
// A Table is safe for concurrent reads once fully populated.
type Table struct {
	scores map[pair]int
}

// New returns an empty table.
func New() *Table {
	return &Table{scores: make(map[pair]int)}
}

// Set stores the score for the ordered pair (a, b).
func (t *Table) Set(a, b byte, score int) {
	t.scores[pair{a, b}] = score
}

// SetSymmetric stores score for both (a, b) and (b, a).
func (t *Table) SetSymmetric(a, b byte, score int) {
	t.scores[pair{a, b}] = score
	t.scores[pair{b, a}] = score
}

// Score returns the score for aligning a against b.
// Returns ErrMissingScore (wrapped with the pair) if the pair was never set.
// Complexity: O(1).
func (t *Table) Score(a, b byte) (int, error) {
	if t == nil {
		return 0, ErrNilTable
	}
	s, ok := t.scores[pair{a, b}]
	if !ok {
		return 0, fmt.Errorf("%w: (%q, %q)", ErrMissingScore, a, b)
	}

	return s, nil
}

// Has reports whether the ordered pair (a, b) is defined.
func (t *Table) Has(a, b byte) bool {
	_, ok := t.scores[pair{a, b}]
	return ok
}

// Len returns the number of defined pairs.
func (t *Table) Len() int {
	return len(t.scores)
}

// Symbols returns every symbol that appears on either side of a defined
// pair, sorted ascending.
func (t *Table) Symbols() []byte {
	seen := make(map[byte]struct{})
	for p := range t.scores {
		seen[p.a] = struct{}{}
		seen[p.b] = struct{}{}
	}
	out := make([]byte, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	slices.Sort(out)

	return out
}

// Symmetric reports whether every defined (a, b) has an equal (b, a).
func (t *Table) Symmetric() bool {
	for p, s := range t.scores {
		if r, ok := t.scores[pair{p.b, p.a}]; !ok || r != s {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of t.
func (t *Table) Clone() *Table {
	c := &Table{scores: make(map[pair]int, len(t.scores))}
	for p, s := range t.scores {
		c.scores[p] = s
	}

	return c
}

// MatchMismatch builds a table over alphabet where identical symbols score
// match and every other ordered pair scores mismatch.
// An empty alphabet yields an empty table.
// Returns ErrDuplicateSymbol if alphabet repeats a symbol.
// Complexity: O(k²) for k symbols.
func MatchMismatch(alphabet string, match, mismatch int) (*Table, error) {
	if err := checkAlphabet(alphabet); err != nil {
		return nil, err
	}
	t := New()
	for i := 0; i < len(alphabet); i++ {
		for j := 0; j < len(alphabet); j++ {
			if i == j {
				t.Set(alphabet[i], alphabet[j], match)
			} else {
				t.Set(alphabet[i], alphabet[j], mismatch)
			}
		}
	}

	return t, nil
}

// FromRows builds a table where rows[i][j] is the score of
// (alphabet[i], alphabet[j]).
// Returns ErrBadShape unless rows is len(alphabet)×len(alphabet), and
// ErrDuplicateSymbol if alphabet repeats a symbol.
func FromRows(alphabet string, rows [][]int) (*Table, error) {
	if err := checkAlphabet(alphabet); err != nil {
		return nil, err
	}
	if len(rows) != len(alphabet) {
		return nil, fmt.Errorf("%w: %d rows for %d symbols", ErrBadShape, len(rows), len(alphabet))
	}
	t := New()
	for i, row := range rows {
		if len(row) != len(alphabet) {
			return nil, fmt.Errorf("%w: row %q has %d scores, want %d", ErrBadShape, alphabet[i], len(row), len(alphabet))
		}
		for j, s := range row {
			t.Set(alphabet[i], alphabet[j], s)
		}
	}

	return t, nil
}

// DNA returns a match/mismatch table over the nucleotides ACGT and the
// ambiguity code N. N scores like any other symbol: match only against N.
func DNA(match, mismatch int) *Table {
	t, _ := MatchMismatch("ACGTN", match, mismatch) // fixed alphabet has no duplicates

	return t
}

// checkAlphabet rejects repeated symbols.
func checkAlphabet(alphabet string) error {
	var seen [256]bool
	for i := 0; i < len(alphabet); i++ {
		if seen[alphabet[i]] {
			return fmt.Errorf("%w: %q", ErrDuplicateSymbol, alphabet[i])
		}
		seen[alphabet[i]] = true
	}

	return nil
}
