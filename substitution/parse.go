// SPDX-License-Identifier: MIT

package substitution

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

//go:embed data/blosum62.txt
var blosum62Text string

// blosum62 parses the embedded matrix once; BLOSUM62 hands out clones.
var blosum62 = sync.OnceValues(func() (*Table, error) {
	return Parse(strings.NewReader(blosum62Text))
})

// BLOSUM62 returns a fresh copy of the BLOSUM62 protein table, including the
// ambiguity codes B, Z, X and the stop symbol '*'.
func BLOSUM62() *Table {
	t, err := blosum62()
	if err != nil {
		// embedded data is fixed at build time
		panic(err)
	}

	return t.Clone()
}

// Parse reads a substitution matrix in the NCBI/EMBOSS text layout:
//
//	# comment
//	   A  C  G  T
//	A  1 -1 -1 -1
//	C -1  1 -1 -1
//	...
//
// Blank lines and lines starting with '#' are skipped. The first remaining
// line lists the column symbols; each following line starts with its row
// symbol and carries exactly one integer per column. Rows may cover a subset
// of the column symbols.
//
// Errors are ErrParse or ErrDuplicateSymbol, wrapped with the line number.
func Parse(r io.Reader) (*Table, error) {
	var (
		sc     = bufio.NewScanner(r)
		header []byte
		rowSet = make(map[byte]bool)
		t      = New()
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		// Stage 1: header of column symbols.
		if header == nil {
			cols, err := symbolsOf(fields)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if err = checkAlphabet(string(cols)); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			header = cols
			continue
		}

		// Stage 2: labelled score rows.
		if len(fields[0]) != 1 {
			return nil, fmt.Errorf("line %d: %w: row label %q is not a single symbol", lineNo, ErrParse, fields[0])
		}
		sym := fields[0][0]
		if rowSet[sym] {
			return nil, fmt.Errorf("line %d: %w: %q", lineNo, ErrDuplicateSymbol, sym)
		}
		rowSet[sym] = true
		if len(fields)-1 != len(header) {
			return nil, fmt.Errorf("line %d: %w: expected %d scores, got %d", lineNo, ErrParse, len(header), len(fields)-1)
		}
		for j, f := range fields[1:] {
			s, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: %v", lineNo, ErrParse, err)
			}
			t.Set(sym, header[j], s)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if header == nil {
		return nil, fmt.Errorf("%w: missing header line", ErrParse)
	}

	return t, nil
}

// symbolsOf converts single-character header fields into symbols.
func symbolsOf(fields []string) ([]byte, error) {
	out := make([]byte, len(fields))
	for i, f := range fields {
		if len(f) != 1 {
			return nil, fmt.Errorf("%w: column label %q is not a single symbol", ErrParse, f)
		}
		out[i] = f[0]
	}

	return out, nil
}
