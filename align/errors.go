package align

import (
	"errors"

	"github.com/katalvlaran/seqalign/substitution"
)

var (
	// ErrInvalidModality indicates a modality other than Global or Local.
	ErrInvalidModality = errors.New("align: invalid modality")

	// ErrNegativeGap indicates a gap penalty below zero.
	ErrNegativeGap = errors.New("align: gap penalty must be non-negative")

	// ErrNilScorer indicates that no substitution scorer was supplied.
	ErrNilScorer = errors.New("align: nil substitution scorer")

	// ErrDimensionMismatch indicates matrices whose shape does not match
	// (len(seq1)+1)×(len(seq2)+1), or nil matrices.
	ErrDimensionMismatch = errors.New("align: matrix shape does not match sequences")

	// ErrBrokenTrace indicates a direction the tracer cannot follow: a None
	// cell hit by a global trace before the origin, or a direction that would
	// step off the grid edge. Either means the matrices were not produced by
	// Build in the matching modality.
	ErrBrokenTrace = errors.New("align: trace stopped before the origin")
)

// ErrMissingSubstitutionScore is returned by Build when a symbol pair of the
// input sequences has no score. It is the substitution package sentinel, so
// errors.Is matches either name.
var ErrMissingSubstitutionScore = substitution.ErrMissingScore
