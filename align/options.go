package align

// Options configures Align.
//
// Fields:
//   - Modality:   Global (Needleman–Wunsch) or Local (Smith–Waterman).
//   - GapPenalty: linear cost subtracted per gap column; must be ≥ 0.
//   - Threshold:  Local only: minimum start-cell score to report.
//     Negative (BestOnly) reports only the best-scoring alignment(s).
//
// Example:
//
//	opts := align.DefaultOptions()
//	opts.Modality = align.Local
//	opts.Threshold = 3
//	alns, err := align.Align(seq1, seq2, sub, &opts)
type Options struct {
	Modality   Modality
	GapPenalty int
	Threshold  int
}

// DefaultOptions returns Global modality, GapPenalty=1, Threshold=BestOnly.
func DefaultOptions() Options {
	return Options{
		Modality:   Global,
		GapPenalty: 1,
		Threshold:  BestOnly,
	}
}

// Align builds the matrices for seq1 against seq2 and traces them with the
// aligner matching opts.Modality. A nil opts means DefaultOptions().
//
// Errors are those of Build, TraceGlobal and TraceLocal.
func Align(seq1, seq2 string, sub Scorer, opts *Options) ([]Alignment, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	m, err := Build(seq1, seq2, sub, o.GapPenalty, o.Modality)
	if err != nil {
		return nil, err
	}
	if o.Modality == Local {
		return TraceLocal(seq1, seq2, m, o.Threshold)
	}

	return TraceGlobal(seq1, seq2, m)
}
