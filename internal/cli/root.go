package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/LeJamon/ordmap/internal/config"
)

// Version is the tool version reported by the version command
var Version = "0.1.0-dev"

// rootOptions holds the global flags and the state shared by subcommands
type rootOptions struct {
	configFile string
	debug      bool
	verbose    bool
	quiet      bool

	cfg    *config.Config
	logger *zap.Logger
}

// NewRootCommand builds the ordmap command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "ordmap",
		Short: "ordmap - ordered map workbench",
		Long: `ordmap exercises the red-black tree backed ordered map.

It benchmarks insertion, lookup, iteration and erasure over several key
orders, and runs randomized differential checks against Go's built-in map
while validating the tree invariants.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.initConfig()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "conf", "", "configuration file path")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable normally suppressed debug logging")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "only log errors")

	rootCmd.AddCommand(
		newBenchCmd(opts),
		newCheckCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// initConfig loads the configuration file and environment, then builds the logger.
func (o *rootOptions) initConfig() error {
	cfg, err := config.LoadConfig(o.configFile)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Log, o.debug, o.verbose, o.quiet)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	o.cfg = cfg
	o.logger = logger
	o.logger.Debug("configuration loaded",
		zap.String("path", cfg.GetConfigPath()),
		zap.Ints("sizes", cfg.Bench.Sizes),
		zap.Strings("orders", cfg.Bench.Orders))
	return nil
}
