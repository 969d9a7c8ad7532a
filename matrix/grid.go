// SPDX-License-Identifier: MIT

// Package matrix provides the two-dimensional storage used by the dynamic
// programming tables: a row-major Grid of comparable cells, storing elements
// in a flat slice for performance and cache friendliness.
package matrix

import (
	"fmt"
	"strings"
)

// gridErrorf wraps an underlying error with Grid method context.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}

// Grid is a row-major matrix of T values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Grid[T comparable] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}

// NewGrid creates an r×c Grid with every cell set to the zero value of T.
// Returns ErrInvalidDimensions if rows or cols is not positive.
// Complexity: O(r*c) time and memory.
func NewGrid[T comparable](rows, cols int) (*Grid[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewGrid(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Grid[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// FromRows builds a Grid from a rectangular slice of rows, deep-copying the
// input. Returns ErrInvalidDimensions for empty or ragged input.
// Complexity: O(r*c).
func FromRows[T comparable](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrInvalidDimensions)
	}
	g, err := NewGrid[T](len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != g.c {
			return nil, fmt.Errorf("FromRows: row %d has %d cells, want %d: %w", i, len(row), g.c, ErrInvalidDimensions)
		}
		copy(g.data[i*g.c:(i+1)*g.c], row)
	}

	return g, nil
}

// Rows returns the number of rows in the grid.
func (g *Grid[T]) Rows() int {
	return g.r
}

// Cols returns the number of columns in the grid.
func (g *Grid[T]) Cols() int {
	return g.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (g *Grid[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= g.r || col < 0 || col >= g.c {
		return 0, gridErrorf(method, row, col, ErrOutOfRange)
	}

	return row*g.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (g *Grid[T]) At(row, col int) (T, error) {
	idx, err := g.indexOf("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return g.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (g *Grid[T]) Set(row, col int, v T) error {
	idx, err := g.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	g.data[idx] = v

	return nil
}

// Row returns a view of row i backed by the grid storage; writes through the
// view modify the grid. Returns nil when i is out of range.
// Complexity: O(1).
func (g *Grid[T]) Row(i int) []T {
	if i < 0 || i >= g.r {
		return nil
	}

	return g.data[i*g.c : (i+1)*g.c : (i+1)*g.c]
}

// Each calls fn for every cell in row-major order and stops early when fn
// returns false.
func (g *Grid[T]) Each(fn func(i, j int, v T) bool) {
	for idx, v := range g.data {
		if !fn(idx/g.c, idx%g.c, v) {
			return
		}
	}
}

// Clone returns a deep copy of the grid.
// Complexity: O(r*c) time and memory.
func (g *Grid[T]) Clone() *Grid[T] {
	data := make([]T, len(g.data))
	copy(data, g.data)

	return &Grid[T]{r: g.r, c: g.c, data: data}
}

// Equal reports whether g and other have the same shape and cell values.
// Two nil grids are equal.
func (g *Grid[T]) Equal(other *Grid[T]) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.r != other.r || g.c != other.c {
		return false
	}
	for i := range g.data {
		if g.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging: one bracketed,
// comma-separated row per line.
func (g *Grid[T]) String() string {
	var sb strings.Builder
	for i := 0; i < g.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < g.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprint(&sb, g.data[i*g.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
