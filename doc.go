// Package seqalign is a playground for pairwise sequence alignment by
// dynamic programming: global (Needleman–Wunsch) and local (Smith–Waterman)
// alignment under a substitution table and a linear gap penalty.
//
// 🚀 What is in the box?
//
//   - align/: matrix construction (Build) and the two tracers
//     (TraceGlobal, TraceLocal), plus the Align façade
//   - substitution/: score tables (match/mismatch, BLOSUM62, text parser)
//   - matrix/: the row-major Grid used for score and direction matrices
//   - report/: human-readable matrices and Aln1/Aln2/Score triples
//   - cmd/seqalign: command-line driver
//
// Quick example:
//
//	seq1 = ACGT, seq2 = AGT, match +1, mismatch -1, gap 1
//
//	    Aln1: ACGT
//	    Aln2: A-GT
//	    Score: 2
//
//	go get github.com/katalvlaran/seqalign
package seqalign
