// SPDX-License-Identifier: MIT

package substitution

import "errors"

var (
	// ErrMissingScore indicates that a symbol pair has no entry in the table.
	ErrMissingScore = errors.New("substitution: missing score for symbol pair")

	// ErrDuplicateSymbol indicates that an alphabet lists the same symbol twice.
	ErrDuplicateSymbol = errors.New("substitution: duplicate symbol in alphabet")

	// ErrBadShape indicates that a score grid does not match its alphabet.
	ErrBadShape = errors.New("substitution: score rows do not match alphabet")

	// ErrParse indicates malformed matrix text.
	ErrParse = errors.New("substitution: malformed matrix")

	// ErrNilTable indicates that a nil *Table was queried.
	ErrNilTable = errors.New("substitution: nil table")
)
