package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/bridgerepair/calibrate"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/exp/maps"
)

type options struct {
	part    int
	workers int
	explain bool
	debug   bool
}

func (o *options) bind(fs *pflag.FlagSet) {
	fs.IntVar(&o.part, "part", 2, "puzzle part to solve: 1 (+ *) or 2 (+ * ||)")
	fs.IntVar(&o.workers, "workers", 0, "maximum goroutines searching at once (0 means GOMAXPROCS)")
	fs.BoolVar(&o.explain, "explain", false, "print a witness for every valid equation to stderr")
	fs.BoolVar(&o.debug, "debug", false, "debug logging")
}

func (o *options) logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if o.debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (o *options) solverOptions(logger *slog.Logger) []calibrate.Option {
	return []calibrate.Option{
		calibrate.WithWorkers(o.workers),
		calibrate.WithLogger(logger),
	}
}

func lookupPart(n int) (partFunc, error) {
	fn, ok := parts[n]
	if !ok {
		return nil, fmt.Errorf("%w: %d", calibrate.ErrUnknownPart, n)
	}
	return fn, nil
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:          "calibrate <input>",
		Short:        "Sum the calibration equations that can be made true",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &opts, args[0])
		},
	}
	opts.bind(cmd.PersistentFlags())
	cmd.AddCommand(newSampleCmd(&opts))
	cmd.SetErrPrefix("calibrate:")
	return cmd
}

func run(cmd *cobra.Command, opts *options, path string) error {
	newSolver, err := lookupPart(opts.part)
	if err != nil {
		return err
	}
	logger := opts.logger(cmd.ErrOrStderr())

	t0 := time.Now()
	eqs, err := calibrate.ParseFile(path)
	if err != nil {
		return err
	}
	logger.Debug("parsed", "path", path, "equations", len(eqs), "took", time.Since(t0))

	solver := newSolver(opts.solverOptions(logger)...)
	var sum uint64
	if opts.explain {
		res, err := solver.Solve(cmd.Context(), eqs)
		if err != nil {
			return err
		}
		for _, c := range res.Valid {
			fmt.Fprintln(cmd.ErrOrStderr(), c)
		}
		sum = res.Sum
	} else if sum, err = solver.Sum(cmd.Context(), eqs); err != nil {
		return err
	}
	logger.Debug("done", "part", opts.part, "sum", sum, "took", time.Since(t0))
	fmt.Fprintf(cmd.OutOrStdout(), "Sum of valid equations: %d\n", sum)
	return nil
}

var errSampleMismatch = errors.New("sample answer mismatch")

func newSampleCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Check every part against the sample embedded in its doc comment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			only := 0
			if cmd.Flags().Changed("part") {
				only = opts.part
				if _, err := lookupPart(only); err != nil {
					return err
				}
			}
			return runSamples(cmd, opts, only)
		},
	}
}

// runSamples solves each part's sample and compares the answer with the
// one recorded next to it. only restricts the run to one part if non-zero.
func runSamples(cmd *cobra.Command, opts *options, only int) error {
	samples, err := calibrate.ExtractSamples("parts.go", partsSource)
	if err != nil {
		return err
	}
	logger := opts.logger(cmd.ErrOrStderr())
	out := cmd.OutOrStdout()

	nums := maps.Keys(parts)
	slices.Sort(nums)
	for _, n := range nums {
		if only != 0 && n != only {
			continue
		}
		sample, ok := samples[partNames[n]]
		if !ok {
			return fmt.Errorf("no sample found for part %d", n)
		}
		eqs, err := calibrate.ParseString(sample.Input)
		if err != nil {
			return fmt.Errorf("part %d sample: %w", n, err)
		}
		t0 := time.Now()
		sum, err := parts[n](opts.solverOptions(logger)...).Sum(cmd.Context(), eqs)
		if err != nil {
			return err
		}
		if got := fmt.Sprint(sum); got != sample.Want {
			fmt.Fprintf(out, "part %d: %v ❌; want %v\n", n, got, sample.Want)
			return fmt.Errorf("%w: part %d", errSampleMismatch, n)
		}
		fmt.Fprintf(out, "part %d sample: %v ✅ (%v)\n", n, sum, time.Since(t0).Round(time.Microsecond))
	}
	return nil
}
