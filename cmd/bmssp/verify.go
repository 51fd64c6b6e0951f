package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/bmssp/bmssp"
	"github.com/katalvlaran/bmssp/builder"
	"github.com/katalvlaran/bmssp/core"
	"github.com/katalvlaran/bmssp/dijkstra"
)

// verifyOptions carries the verify-campaign flags.
type verifyOptions struct {
	tests     int
	maxN      int
	maxWeight int64
	seed      int64
}

// newVerifyCmd builds the `bmssp verify` subcommand: a randomized
// campaign comparing the solver against the Dijkstra reference on every
// vertex of every generated graph.
func newVerifyCmd(verbose *bool) *cobra.Command {
	opts := verifyOptions{}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "cross-check the solver against the Dijkstra reference",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(*verbose)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return runVerify(log, opts)
		},
	}

	cmd.Flags().IntVar(&opts.tests, "tests", 200, "number of random test cases")
	cmd.Flags().IntVar(&opts.maxN, "max-n", 2000, "largest vertex count for random-connected, star, path and tree cases")
	cmd.Flags().Int64Var(&opts.maxWeight, "max-weight", 1000, "largest arc weight to sample")
	cmd.Flags().Int64Var(&opts.seed, "seed", 1, "campaign seed")

	return cmd
}

// campaignCase is one generator slot in the campaign mix: mostly random
// connected graphs, a slice of complete graphs, and the boundary
// topologies.
type campaignCase struct {
	name  string
	share int
	build func(rng *rand.Rand, maxN int, maxWeight int64) (*core.Graph, error)
}

func campaign() []campaignCase {
	return []campaignCase{
		{"random-connected", 60, func(rng *rand.Rand, maxN int, maxWeight int64) (*core.Graph, error) {
			n := 2 + rng.Intn(maxN-1)
			m := (n - 1) + rng.Intn(3*n)

			return builder.RandomConnected(n, m, builder.WithRand(rng), builder.WithMaxWeight(maxWeight))
		}},
		{"complete", 20, func(rng *rand.Rand, _ int, maxWeight int64) (*core.Graph, error) {
			n := 2 + rng.Intn(80)

			return builder.Complete(n, builder.WithRand(rng), builder.WithMaxWeight(maxWeight))
		}},
		{"grid", 5, func(rng *rand.Rand, _ int, maxWeight int64) (*core.Graph, error) {
			rows := 1 + rng.Intn(40)
			cols := 1 + rng.Intn(40)

			return builder.Grid(rows, cols, builder.WithRand(rng), builder.WithMaxWeight(maxWeight))
		}},
		{"star", 5, func(rng *rand.Rand, maxN int, maxWeight int64) (*core.Graph, error) {
			n := 2 + rng.Intn(maxN-1)

			return builder.Star(n, builder.WithRand(rng), builder.WithMaxWeight(maxWeight))
		}},
		{"path", 5, func(rng *rand.Rand, maxN int, maxWeight int64) (*core.Graph, error) {
			n := 1 + rng.Intn(maxN)

			return builder.Path(n, builder.WithRand(rng), builder.WithMaxWeight(maxWeight))
		}},
		{"random-tree", 5, func(rng *rand.Rand, maxN int, maxWeight int64) (*core.Graph, error) {
			n := 1 + rng.Intn(maxN)

			return builder.RandomTree(n, builder.WithRand(rng), builder.WithMaxWeight(maxWeight))
		}},
	}
}

// runVerify executes every case of the campaign and returns an error at
// the end if any case had mismatches.
func runVerify(log *zap.Logger, opts verifyOptions) error {
	rng := rand.New(rand.NewSource(opts.seed))
	cases := campaign()

	totalShare := 0
	for _, c := range cases {
		totalShare += c.share
	}

	passed, failed := 0, 0
	for i := 0; i < opts.tests; i++ {
		// Pick a generator slot proportional to its share.
		pick := rng.Intn(totalShare)
		var tc campaignCase
		for _, c := range cases {
			if pick < c.share {
				tc = c

				break
			}
			pick -= c.share
		}

		g, err := tc.build(rng, opts.maxN, opts.maxWeight)
		if err != nil {
			return fmt.Errorf("test %d (%s): generate: %w", i, tc.name, err)
		}
		source := rng.Intn(g.VertexCount())

		mismatches, err := compare(g, source)
		if err != nil {
			return fmt.Errorf("test %d (%s): %w", i, tc.name, err)
		}

		if mismatches == 0 {
			passed++
			log.Debug("case passed",
				zap.Int("test", i),
				zap.String("shape", tc.name),
				zap.Int("n", g.VertexCount()),
				zap.Int("m", g.EdgeCount()),
				zap.Int("source", source))

			continue
		}

		failed++
		log.Error("case failed",
			zap.Int("test", i),
			zap.String("shape", tc.name),
			zap.Int("n", g.VertexCount()),
			zap.Int("m", g.EdgeCount()),
			zap.Int("source", source),
			zap.Int("mismatches", mismatches))
	}

	log.Info("campaign finished",
		zap.Int("tests", opts.tests),
		zap.Int("passed", passed),
		zap.Int("failed", failed))

	if failed > 0 {
		return fmt.Errorf("verify: %d of %d cases disagreed with the reference", failed, opts.tests)
	}

	return nil
}

// compare runs both algorithms from source and counts per-vertex
// disagreements.
func compare(g *core.Graph, source int) (int, error) {
	want, _, err := dijkstra.Dijkstra(g, source)
	if err != nil {
		return 0, fmt.Errorf("dijkstra: %w", err)
	}

	s := bmssp.FromGraph(g)
	if err := s.Run(source); err != nil {
		return 0, fmt.Errorf("solver: %w", err)
	}
	got, err := s.Distances()
	if err != nil {
		return 0, err
	}

	mismatches := 0
	for v := range want {
		if got[v] != want[v] {
			mismatches++
		}
	}

	return mismatches, nil
}
