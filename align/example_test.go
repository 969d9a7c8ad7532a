package align_test

import (
	"fmt"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/substitution"
)

// ExampleTraceGlobal aligns two short DNA fragments end to end.
//
// Scenario:
//
//	seq1 = ACGT, seq2 = AGT, match +1, mismatch -1, gap 1.
//
// The C of seq1 has no partner; with LEFT-first tie-breaking the gap is
// placed as early as possible.
func ExampleTraceGlobal() {
	sub := substitution.DNA(1, -1)
	m, err := align.Build("ACGT", "AGT", sub, 1, align.Global)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	alns, _ := align.TraceGlobal("ACGT", "AGT", m)
	fmt.Println(alns[0])
	// Output:
	// Aln1:	ACGT
	// Aln2:	A-GT
	// Score:	2
}

// ExampleTraceLocal reports every local alignment whose start cell scores at
// least 2. The table spans both alphabets since seq2 carries a U.
func ExampleTraceLocal() {
	sub, err := substitution.MatchMismatch("ACGTU", 1, -1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	m, err := align.Build("GATTACA", "GCATGCU", sub, 1, align.Local)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	alns, err := align.TraceLocal("GATTACA", "GCATGCU", m, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, a := range alns {
		fmt.Printf("%s / %s  score=%d\n", a.A, a.B, a.Score)
	}
	// Output:
	// G-AT / GCAT  score=2
	// CA / CA  score=2
}

// ExampleAlign uses the one-call façade with BLOSUM62 and the best-only threshold.
func ExampleAlign() {
	opts := align.DefaultOptions()
	opts.Modality = align.Local
	opts.GapPenalty = 8

	alns, err := align.Align("HEAGAWGHEE", "PAWHEAE", substitution.BLOSUM62(), &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, a := range alns {
		fmt.Printf("%s\n%s\nscore=%d\n", a.A, a.B, a.Score)
	}
	// Output:
	// AWGHE
	// AW-HE
	// score=20
}
