package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/LeJamon/ordmap/internal/workload"
)

type checkFlags struct {
	operations    int
	keySpace      int
	seed          int64
	validateEvery int
}

func newCheckCmd(root *rootOptions) *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run a randomized differential check",
		Long: `Drive the ordered map and Go's built-in map with the same random
inserts, index writes, erasures, range erasures and lookups. Stops at the
first disagreement or broken tree invariant.

Examples:
    ordmap check
    ordmap check --ops 1000000 --keys 100 --seed 7
    ordmap check --validate-every 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, root, flags)
		},
	}

	cmd.Flags().IntVar(&flags.operations, "ops", 0, "number of random operations")
	cmd.Flags().IntVar(&flags.keySpace, "keys", 0, "keys are drawn from [0, keys)")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "random seed")
	cmd.Flags().IntVar(&flags.validateEvery, "validate-every", 0, "validate invariants every N operations (0 only at the end)")

	return cmd
}

func runCheck(cmd *cobra.Command, root *rootOptions, flags *checkFlags) error {
	cc := root.cfg.Check

	f := cmd.Flags()
	if f.Changed("ops") {
		cc.Operations = flags.operations
	}
	if f.Changed("keys") {
		cc.KeySpace = flags.keySpace
	}
	if f.Changed("seed") {
		cc.Seed = flags.seed
	}
	if f.Changed("validate-every") {
		cc.ValidateEvery = flags.validateEvery
	}
	if err := cc.Validate(); err != nil {
		return fmt.Errorf("invalid check options: %w", err)
	}

	root.logger.Info("starting differential check",
		zap.Int("operations", cc.Operations),
		zap.Int("key_space", cc.KeySpace),
		zap.Int64("seed", cc.Seed))

	result, err := workload.Check(cmd.Context(), workload.CheckOptions{
		Operations:    cc.Operations,
		KeySpace:      cc.KeySpace,
		Seed:          cc.Seed,
		ValidateEvery: cc.ValidateEvery,
		Logger:        root.logger,
	})
	if err != nil {
		return fmt.Errorf("check failed (seed %d): %w", cc.Seed, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "OK: %s\n", result)
	return nil
}
