// Package substitution holds per-symbol-pair scores used by pairwise
// alignment: the reward or penalty for aligning symbol a against symbol b.
//
// What:
//
//   - Table maps an ordered pair of byte symbols to an integer score.
//   - MatchMismatch builds the usual identity table over an alphabet.
//   - FromRows builds a table from a square score grid.
//   - Parse reads the NCBI/EMBOSS text layout (a header of column symbols,
//     then one labelled row per symbol, '#' comments).
//   - BLOSUM62 and DNA provide ready-made tables.
//
// Lookups are exact: symbols are not case-folded, and a pair that was never
// set yields ErrMissingScore rather than a default score.
//
// Errors:
//
//   - ErrMissingScore:    pair absent from the table.
//   - ErrDuplicateSymbol: an alphabet or matrix lists a symbol twice.
//   - ErrBadShape:        rows do not match the alphabet size.
//   - ErrParse:           malformed matrix text (wrapped with the line number).
package substitution
