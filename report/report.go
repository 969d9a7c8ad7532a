// SPDX-License-Identifier: MIT

// Package report formats alignment results for people: DP matrices row by
// row, and alignments as "Aln1/Aln2/Score" triples. It is a pure consumer
// of the align package's output.
package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/matrix"
)

// WriteMatrix writes g as one bracketed row per line, cells right-aligned to
// the widest value, followed by a blank line:
//
//	[ 0, -1, -2]
//	[-1,  1,  0]
//
// Returns matrix.ErrNilGrid for a nil grid, or the first write error.
func WriteMatrix[T comparable](w io.Writer, g *matrix.Grid[T]) error {
	if g == nil {
		return matrix.ErrNilGrid
	}
	cells := make([]string, 0, g.Rows()*g.Cols())
	width := 0
	g.Each(func(_, _ int, v T) bool {
		s := fmt.Sprint(v)
		width = max(width, utf8.RuneCountInString(s))
		cells = append(cells, s)
		return true
	})

	var sb strings.Builder
	for i := 0; i < g.Rows(); i++ {
		sb.WriteByte('[')
		for j, s := range cells[i*g.Cols() : (i+1)*g.Cols()] {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strings.Repeat(" ", width-utf8.RuneCountInString(s)))
			sb.WriteString(s)
		}
		sb.WriteString("]\n")
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())

	return err
}

// WriteDirections writes a direction grid using one glyph per cell
// (· none, ← left, ↖ diagonal, ↑ up), followed by a blank line.
func WriteDirections(w io.Writer, g *matrix.Grid[align.Direction]) error {
	if g == nil {
		return matrix.ErrNilGrid
	}
	var sb strings.Builder
	for i := 0; i < g.Rows(); i++ {
		for j, d := range g.Row(i) {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(d.Glyph())
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())

	return err
}

// WriteAlignments writes each alignment as
//
//	Aln1:	<aligned seq1>
//	Aln2:	<aligned seq2>
//	Score:	<score>
//
// and a blank line after the list. An empty list writes only the blank line.
func WriteAlignments(w io.Writer, alns []align.Alignment) error {
	var sb strings.Builder
	for _, a := range alns {
		sb.WriteString(a.String())
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())

	return err
}
