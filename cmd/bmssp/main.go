// Command bmssp drives the shortest-path solver from the command line:
//
//	bmssp verify — randomized cross-check of the solver against the
//	               Dijkstra reference over a campaign of generated graphs.
//	bmssp bench  — timing comparison over a size sweep with CSV export.
//
// Both commands are deterministic for a fixed --seed.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd assembles the command tree.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "bmssp",
		Short:         "verify and benchmark the BMSSP shortest-path solver",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "per-case debug logging")

	root.AddCommand(newVerifyCmd(&verbose))
	root.AddCommand(newBenchCmd(&verbose))

	return root
}

// newLogger builds the process logger; debug level when verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableCaller = true
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	return cfg.Build()
}
