package align

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/seqalign/matrix"
)

// GapSymbol marks a gap column in aligned output.
const GapSymbol = '-'

// BestOnly is the TraceLocal threshold that restricts output to the
// alignment(s) starting at the matrix maximum. Any negative threshold
// behaves the same.
const BestOnly = -1

// Direction records which recurrence branch produced a cell.
//
// The declaration order is also the tie-break priority used by Build:
// Left, then Diagonal, then Up.
type Direction uint8

const (
	// None marks the alignment boundary: the global origin, local boundary
	// cells, and local cells where every branch scored below zero.
	None Direction = iota

	// Left is a gap in seq1; the step consumes one symbol of seq2.
	Left

	// Diagonal is a match or mismatch; the step consumes one symbol of each.
	Diagonal

	// Up is a gap in seq2; the step consumes one symbol of seq1.
	Up
)

// String returns the upper-case name of d.
func (d Direction) String() string {
	switch d {
	case None:
		return "NONE"
	case Left:
		return "LEFT"
	case Diagonal:
		return "DIAGONAL"
	case Up:
		return "UP"
	}

	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Glyph returns a one-rune arrow for compact matrix display.
func (d Direction) Glyph() rune {
	switch d {
	case Left:
		return '←'
	case Diagonal:
		return '↖'
	case Up:
		return '↑'
	}

	return '·'
}

// Modality selects the alignment algorithm.
type Modality int

const (
	// Global is Needleman–Wunsch: end-to-end alignment.
	Global Modality = iota

	// Local is Smith–Waterman: scores floored at 0, traces stop at None.
	Local
)

// String returns "global" or "local".
func (m Modality) String() string {
	switch m {
	case Global:
		return "global"
	case Local:
		return "local"
	}

	return fmt.Sprintf("Modality(%d)", int(m))
}

// valid reports whether m is one of the declared modalities.
func (m Modality) valid() bool {
	return m == Global || m == Local
}

// ParseModality maps a case-insensitive name to a Modality.
// Accepted: "global", "nw", "needleman-wunsch", "local", "sw", "smith-waterman".
func ParseModality(s string) (Modality, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "global", "nw", "needleman-wunsch":
		return Global, nil
	case "local", "sw", "smith-waterman":
		return Local, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidModality, s)
}

// Scorer supplies substitution scores. *substitution.Table implements it.
// Score must return an error wrapping ErrMissingSubstitutionScore for an
// unknown pair.
type Scorer interface {
	Score(a, b byte) (int, error)
}

// ScoreFunc adapts an ordinary function to the Scorer interface.
type ScoreFunc func(a, b byte) (int, error)

// Score calls f(a, b).
func (f ScoreFunc) Score(a, b byte) (int, error) {
	return f(a, b)
}

// Coord is a cell position in the DP grids: I indexes seq1, J indexes seq2.
type Coord struct {
	I, J int
}

// Matrices is the output of Build. Score and Trace always share dimensions
// (len(seq1)+1)×(len(seq2)+1) and are read-only once returned.
type Matrices struct {
	Score    *matrix.Grid[int]
	Trace    *matrix.Grid[Direction]
	Modality Modality
}

// Alignment is one traced path.
//
// A and B have equal length; removing GapSymbol from A yields
// seq1[From.I:To.I] and from B yields seq2[From.J:To.J].
type Alignment struct {
	A, B  string // aligned seq1 and seq2
	Score int    // Score[To.I][To.J]

	From Coord // cell where the trace stopped
	To   Coord // cell where the trace started
}

// String renders the alignment as the "Aln1/Aln2/Score" triple.
func (a Alignment) String() string {
	return fmt.Sprintf("Aln1:\t%s\nAln2:\t%s\nScore:\t%d", a.A, a.B, a.Score)
}
