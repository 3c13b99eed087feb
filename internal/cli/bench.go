package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/LeJamon/ordmap/internal/workload"
)

type benchFlags struct {
	sizes    []int
	orders   []string
	rounds   int
	seed     int64
	workers  int
	validate bool
	format   string
}

func newBenchCmd(root *rootOptions) *cobra.Command {
	flags := &benchFlags{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark the ordered map over several key orders",
		Long: `Build one map per job, timing insertion, lookup, in-order iteration
and erasure of every other key. Jobs are the product of sizes, orders and
rounds, and run concurrently. Flags override the [bench] configuration.

Examples:
    ordmap bench
    ordmap bench --sizes 1000,1000000 --orders asc,random
    ordmap bench --format json --workers 2 > results.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, root, flags)
		},
	}

	cmd.Flags().IntSliceVar(&flags.sizes, "sizes", nil, "number of keys per map")
	cmd.Flags().StringSliceVar(&flags.orders, "orders", nil, "key orders: ascending, descending, random, zigzag")
	cmd.Flags().IntVar(&flags.rounds, "rounds", 0, "repetitions of every size/order pair")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "seed for random orders")
	cmd.Flags().IntVarP(&flags.workers, "workers", "w", 0, "concurrent jobs (0 means one per CPU)")
	cmd.Flags().BoolVar(&flags.validate, "validate", true, "check tree invariants after building and erasing")
	cmd.Flags().StringVarP(&flags.format, "format", "o", "", "report format: text or json")

	return cmd
}

func runBench(cmd *cobra.Command, root *rootOptions, flags *benchFlags) error {
	bc := root.cfg.Bench

	// Explicit flags win over the configuration file
	f := cmd.Flags()
	if f.Changed("sizes") {
		bc.Sizes = flags.sizes
	}
	if f.Changed("orders") {
		bc.Orders = flags.orders
	}
	if f.Changed("rounds") {
		bc.Rounds = flags.rounds
	}
	if f.Changed("seed") {
		bc.Seed = flags.seed
	}
	if f.Changed("workers") {
		bc.Workers = flags.workers
	}
	if f.Changed("validate") {
		bc.ValidateTree = flags.validate
	}
	if f.Changed("format") {
		bc.Format = flags.format
	}
	if err := bc.Validate(); err != nil {
		return fmt.Errorf("invalid bench options: %w", err)
	}

	orders, err := bc.ParsedOrders()
	if err != nil {
		return err
	}

	src, err := workload.NewKeySource(bc.KeyCacheSize)
	if err != nil {
		return fmt.Errorf("failed to create key source: %w", err)
	}

	jobs := workload.Plan(bc.Sizes, orders, bc.Rounds, bc.Seed)
	root.logger.Info("starting benchmark",
		zap.Int("jobs", len(jobs)),
		zap.Int("workers", bc.Workers),
		zap.Bool("validate", bc.ValidateTree))

	report := &workload.Report{Started: time.Now()}
	results, err := workload.RunAll(cmd.Context(), src, jobs, workload.Options{
		Workers:  bc.Workers,
		Validate: bc.ValidateTree,
		Logger:   root.logger,
	})
	if err != nil {
		return fmt.Errorf("benchmark aborted: %w", err)
	}
	report.Elapsed = time.Since(report.Started)
	report.Results = results
	report.CacheHits, _ = src.Stats()

	if err := report.Write(cmd.OutOrStdout(), bc.Format); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if failed := report.Failed(); len(failed) > 0 {
		return fmt.Errorf("%d of %d jobs produced an invalid tree", len(failed), len(results))
	}
	root.logger.Info("benchmark finished", zap.Duration("elapsed", report.Elapsed))
	return nil
}
