package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/bmssp/bmssp"
	"github.com/katalvlaran/bmssp/builder"
	"github.com/katalvlaran/bmssp/core"
	"github.com/katalvlaran/bmssp/dijkstra"
)

// benchOptions carries the benchmark-sweep flags.
type benchOptions struct {
	sizes      []int
	edgeFactor int
	reps       int
	maxWeight  int64
	seed       int64
	out        string
}

// newBenchCmd builds the `bmssp bench` subcommand: a timing sweep of the
// solver against the Dijkstra reference with CSV export.
func newBenchCmd(verbose *bool) *cobra.Command {
	opts := benchOptions{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "time the solver against the Dijkstra reference",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(*verbose)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return runBench(log, opts)
		},
	}

	cmd.Flags().IntSliceVar(&opts.sizes, "sizes", []int{1000, 10000, 100000}, "vertex counts to sweep")
	cmd.Flags().IntVar(&opts.edgeFactor, "edge-factor", 4, "arcs per vertex in generated graphs")
	cmd.Flags().IntVar(&opts.reps, "reps", 5, "repetitions per size")
	cmd.Flags().Int64Var(&opts.maxWeight, "max-weight", 1000, "largest arc weight to sample")
	cmd.Flags().Int64Var(&opts.seed, "seed", 1, "generator seed")
	cmd.Flags().StringVar(&opts.out, "out", "", "CSV output path (logged summary only when empty)")

	return cmd
}

// sample is one timed run.
type sample struct {
	algorithm string
	n, m      int
	rep       int
	elapsed   time.Duration
}

// runBench sweeps the configured sizes and reports mean timings plus the
// speedup of the solver over the reference.
func runBench(log *zap.Logger, opts benchOptions) error {
	var samples []sample

	for _, n := range opts.sizes {
		g, err := builder.RandomConnected(n, opts.edgeFactor*n,
			builder.WithSeed(opts.seed), builder.WithMaxWeight(opts.maxWeight))
		if err != nil {
			return fmt.Errorf("bench: generate n=%d: %w", n, err)
		}

		solverMean, err := timeSolver(g, opts.reps, &samples)
		if err != nil {
			return err
		}
		dijkstraMean, err := timeDijkstra(g, opts.reps, &samples)
		if err != nil {
			return err
		}

		log.Info("size finished",
			zap.Int("n", n),
			zap.Int("m", g.EdgeCount()),
			zap.Duration("bmssp_mean", solverMean),
			zap.Duration("dijkstra_mean", dijkstraMean),
			zap.Float64("speedup", float64(dijkstraMean)/float64(solverMean)))
	}

	if opts.out != "" {
		if err := writeCSV(opts.out, samples); err != nil {
			return err
		}
		log.Info("results exported", zap.String("path", opts.out), zap.Int("rows", len(samples)))
	}

	return nil
}

// timeSolver measures full solver Runs and appends one sample per rep.
func timeSolver(g *core.Graph, reps int, out *[]sample) (time.Duration, error) {
	s := bmssp.FromGraph(g)
	var total time.Duration
	for rep := 0; rep < reps; rep++ {
		start := time.Now()
		if err := s.Run(0); err != nil {
			return 0, fmt.Errorf("bench: solver run: %w", err)
		}
		elapsed := time.Since(start)
		total += elapsed
		*out = append(*out, sample{
			algorithm: "bmssp",
			n:         g.VertexCount(),
			m:         g.EdgeCount(),
			rep:       rep,
			elapsed:   elapsed,
		})
	}

	return total / time.Duration(reps), nil
}

// timeDijkstra measures reference runs and appends one sample per rep.
func timeDijkstra(g *core.Graph, reps int, out *[]sample) (time.Duration, error) {
	var total time.Duration
	for rep := 0; rep < reps; rep++ {
		start := time.Now()
		if _, _, err := dijkstra.Dijkstra(g, 0); err != nil {
			return 0, fmt.Errorf("bench: dijkstra run: %w", err)
		}
		elapsed := time.Since(start)
		total += elapsed
		*out = append(*out, sample{
			algorithm: "dijkstra",
			n:         g.VertexCount(),
			m:         g.EdgeCount(),
			rep:       rep,
			elapsed:   elapsed,
		})
	}

	return total / time.Duration(reps), nil
}

// writeCSV exports the raw samples for downstream analysis.
func writeCSV(path string, samples []sample) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bench: create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"algorithm", "n", "m", "rep", "micros"}); err != nil {
		return fmt.Errorf("bench: write header: %w", err)
	}
	for _, s := range samples {
		row := []string{
			s.algorithm,
			strconv.Itoa(s.n),
			strconv.Itoa(s.m),
			strconv.Itoa(s.rep),
			strconv.FormatInt(s.elapsed.Microseconds(), 10),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("bench: write row: %w", err)
		}
	}
	w.Flush()

	return w.Error()
}
