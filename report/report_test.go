package report_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/matrix"
	"github.com/katalvlaran/seqalign/report"
	"github.com/katalvlaran/seqalign/substitution"
)

// failingWriter rejects every write.
type failingWriter struct{}

var errWrite = errors.New("write refused")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

// TestWriteMatrix checks padding and the trailing blank line.
func TestWriteMatrix(t *testing.T) {
	m, err := align.Build("ACGT", "AGT", substitution.DNA(1, -1), 1, align.Global)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteMatrix(&buf, m.Score))
	assert.Equal(t, ""+
		"[ 0, -1, -2, -3]\n"+
		"[-1,  1,  0, -1]\n"+
		"[-2,  0,  0, -1]\n"+
		"[-3, -1,  1,  0]\n"+
		"[-4, -2,  0,  2]\n"+
		"\n", buf.String())
}

// TestWriteMatrix_Directions prints direction names through fmt.
func TestWriteMatrix_Directions(t *testing.T) {
	g, err := matrix.FromRows([][]align.Direction{{align.None, align.Left}, {align.Up, align.Diagonal}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteMatrix(&buf, g))
	assert.Equal(t, "[    NONE,     LEFT]\n[      UP, DIAGONAL]\n\n", buf.String())
}

// TestWriteDirections checks the glyph rendering of a global trace grid.
func TestWriteDirections(t *testing.T) {
	m, err := align.Build("AC", "A", substitution.DNA(1, -1), 1, align.Global)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteDirections(&buf, m.Trace))
	assert.Equal(t, "· ←\n↑ ↖\n↑ ↑\n\n", buf.String())
}

// TestWriteAlignments checks the triple layout for zero, one and two entries.
func TestWriteAlignments(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteAlignments(&buf, nil))
	assert.Equal(t, "\n", buf.String())

	buf.Reset()
	alns := []align.Alignment{
		{A: "G-AT", B: "GCAT", Score: 2},
		{A: "CA", B: "CA", Score: 2},
	}
	require.NoError(t, report.WriteAlignments(&buf, alns))
	assert.Equal(t, ""+
		"Aln1:\tG-AT\nAln2:\tGCAT\nScore:\t2\n"+
		"Aln1:\tCA\nAln2:\tCA\nScore:\t2\n"+
		"\n", buf.String())
}

// TestWrite_Errors covers nil grids and writer failures.
func TestWrite_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, report.WriteMatrix[int](&buf, nil), matrix.ErrNilGrid)
	assert.ErrorIs(t, report.WriteDirections(&buf, nil), matrix.ErrNilGrid)

	g, _ := matrix.NewGrid[int](1, 1)
	assert.ErrorIs(t, report.WriteMatrix(failingWriter{}, g), errWrite)
	assert.ErrorIs(t, report.WriteAlignments(failingWriter{}, nil), errWrite)
}
