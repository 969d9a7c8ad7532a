// Package align computes optimal pairwise sequence alignments by dynamic
// programming, in two modalities:
//
//   - Global (Needleman–Wunsch): the alignment spans both sequences end to end.
//   - Local (Smith–Waterman): alignments of high-scoring contiguous regions,
//     with every score floored at 0.
//
// 🚀 How it works
//
//	Build fills two (len(seq1)+1)×(len(seq2)+1) grids from the sequences, a
//	substitution Scorer and a linear gap penalty:
//	  • Score[i][j]: best score of seq1[:i] against seq2[:j]
//	  • Trace[i][j]: the recurrence branch that produced it (Left, Diagonal, Up)
//	TraceGlobal walks Trace from the bottom-right corner to the origin.
//	TraceLocal starts a walk at every cell whose score reaches a threshold
//	and stops at the first None cell.
//
// Tie-breaking is fixed: Left beats Diagonal beats Up. In Local mode a cell
// whose best score is 0 still records a branch when that branch itself
// scored exactly 0; only a cell where every branch was negative is None.
//
// ⚙️ Usage:
//
//	sub := substitution.DNA(1, -1)
//	m, err := align.Build("ACGT", "AGT", sub, 1, align.Global)
//	alns, err := align.TraceGlobal("ACGT", "AGT", m)
//	// alns[0] = {A: "ACGT", B: "A-GT", Score: 2}
//
// or, in one call:
//
//	opts := align.DefaultOptions()
//	opts.Modality = align.Local
//	alns, err := align.Align("ACGT", "AGT", sub, &opts)
//
// Performance:
//
//   - Build:       O(N·M) time and memory
//   - TraceGlobal: O(N+M)
//   - TraceLocal:  O(N·M) scan plus O(N+M) per reported alignment
//
// Every function is pure over its inputs; independent alignments may run
// concurrently without coordination.
package align
