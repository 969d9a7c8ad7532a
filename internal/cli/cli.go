// Package cli is the command-line driver: it parses flags with cobra, loads
// a substitution table, runs the aligner and prints through package report.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/report"
	"github.com/katalvlaran/seqalign/substitution"
)

// Exit codes returned by Run.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// BuiltinBLOSUM62 is the --matrix value selecting the embedded BLOSUM62 table.
const BuiltinBLOSUM62 = "blosum62"

// Options holds all CLI flags.
type Options struct {
	Mode         string
	Gap          int
	Threshold    int
	Match        int
	Mismatch     int
	Matrix       string
	ShowMatrices bool
}

// usageError marks errors caused by bad invocation rather than bad data.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// Run executes the command with argv (without the program name) and returns
// a process exit code. Failures are logged to stderr.
func Run(argv []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "seqalign: ", 0)

	if argv == nil {
		// cobra reads os.Args when SetArgs receives nil
		argv = []string{}
	}
	cmd := NewCommand(stdout, stderr)
	cmd.SetArgs(argv)
	err := cmd.Execute()
	if err == nil {
		return ExitOK
	}

	logger.Println(err)
	var ue usageError
	if errors.As(err, &ue) {
		_, _ = fmt.Fprintln(stderr, cmd.UsageString())
		return ExitUsage
	}

	return ExitFailure
}

// NewCommand builds the root cobra command writing results to stdout.
func NewCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := Options{}
	def := align.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "seqalign [flags] SEQ1 SEQ2",
		Short: "Pairwise global (Needleman-Wunsch) or local (Smith-Waterman) alignment",
		Long: `seqalign aligns two sequences by dynamic programming.

Global mode traces one end-to-end alignment. Local mode reports every
alignment whose start cell scores at least --threshold; a negative
threshold reports only the best-scoring alignment(s).`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 {
				return usageError{fmt.Errorf("expected SEQ1 and SEQ2, got %d argument(s)", len(args))}
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(stdout, args[0], args[1], opts)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	fs := cmd.Flags()
	fs.StringVarP(&opts.Mode, "mode", "m", def.Modality.String(), "alignment modality: global|local (aliases nw|sw)")
	fs.IntVarP(&opts.Gap, "gap", "g", def.GapPenalty, "linear gap penalty (>= 0)")
	fs.IntVarP(&opts.Threshold, "threshold", "t", def.Threshold, "local mode: minimum start-cell score; negative = best only")
	fs.IntVar(&opts.Match, "match", 1, "score for identical symbols (ignored with --matrix)")
	fs.IntVar(&opts.Mismatch, "mismatch", -1, "score for differing symbols (ignored with --matrix)")
	fs.StringVar(&opts.Matrix, "matrix", "", `substitution matrix: "blosum62" or a path to a matrix file`)
	fs.BoolVar(&opts.ShowMatrices, "show-matrices", false, "print the score and direction matrices")

	return cmd
}

// run aligns seq1 against seq2 and writes the report.
func run(w io.Writer, seq1, seq2 string, opts Options) error {
	mode, err := align.ParseModality(opts.Mode)
	if err != nil {
		return usageError{err}
	}
	if opts.Gap < 0 {
		return usageError{fmt.Errorf("%w: %d", align.ErrNegativeGap, opts.Gap)}
	}
	sub, err := loadTable(opts, seq1+seq2)
	if err != nil {
		return err
	}

	m, err := align.Build(seq1, seq2, sub, opts.Gap, mode)
	if err != nil {
		return err
	}
	if opts.ShowMatrices {
		if err = report.WriteMatrix(w, m.Score); err != nil {
			return err
		}
		if err = report.WriteDirections(w, m.Trace); err != nil {
			return err
		}
	}

	var alns []align.Alignment
	if mode == align.Local {
		alns, err = align.TraceLocal(seq1, seq2, m, opts.Threshold)
	} else {
		alns, err = align.TraceGlobal(seq1, seq2, m)
	}
	if err != nil {
		return err
	}

	return report.WriteAlignments(w, alns)
}

// loadTable resolves --matrix, falling back to a match/mismatch table over
// the symbols that occur in the input.
func loadTable(opts Options, symbols string) (*substitution.Table, error) {
	switch {
	case strings.EqualFold(opts.Matrix, BuiltinBLOSUM62):
		return substitution.BLOSUM62(), nil
	case opts.Matrix != "":
		f, err := os.Open(opts.Matrix)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		t, err := substitution.Parse(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opts.Matrix, err)
		}
		return t, nil
	}

	return substitution.MatchMismatch(uniqueSymbols(symbols), opts.Match, opts.Mismatch)
}

// uniqueSymbols returns the distinct bytes of s in first-seen order.
func uniqueSymbols(s string) string {
	var seen [256]bool
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if !seen[s[i]] {
			seen[s[i]] = true
			out = append(out, s[i])
		}
	}

	return string(out)
}
