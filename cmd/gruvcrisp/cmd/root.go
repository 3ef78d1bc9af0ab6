package cmd

import (
	"fmt"
	"os"

	"github.com/amirkhaki/gruvcrisp/pkg/config"
	"github.com/amirkhaki/gruvcrisp/pkg/demo"
	"github.com/amirkhaki/gruvcrisp/pkg/trace"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd runs every demo and echoes its arguments. It parses no flags and
// has no subcommands, so every argument is echoed as given.
var rootCmd = &cobra.Command{
	Use:   "gruvcrisp [args...]",
	Short: "Gruvbox Crisp theme showcase",
	Long: `gruvcrisp prints a fixed sequence of small demonstrations (pointers,
dynamic memory, bit flags, file I/O, records and unions) so a terminal
color theme can be checked against real output.

Any arguments are echoed back; none are interpreted. Settings come from
the file named by GRUVCRISP_CONFIG and the GRUVCRISP_* variables.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRun:  syncLogger,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The leading "--" added by runRoot is not a user argument.
		if len(args) > 0 && args[0] == "--" {
			args = args[1:]
		}
		if err := newRunner(cmd).Main(args); err != nil {
			logger.Error("run finished with errors", zap.Error(err))
		}
		return nil
	},
}

// Execute runs the root command with the process arguments. It always
// returns normally so the process exits with status 0.
func Execute() {
	if err := runRoot(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "gruvcrisp: %v\n", err)
	}
}

// runRoot executes rootCmd with args. The "--" prefix keeps cobra from
// treating any argument as a command name.
func runRoot(args []string) error {
	rootCmd.SetArgs(append([]string{"--"}, args...))
	return rootCmd.Execute()
}

// setup loads configuration, applies tool flag overrides and builds the
// logger. A config file that cannot be loaded falls back to the defaults.
func setup(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if path == "" {
		path = os.Getenv(config.PathEnv)
	}
	var loadErr error
	cfg, loadErr = config.Load(path)
	if loadErr != nil {
		cfg = config.FromEnv()
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if traceFile != "" {
		cfg.TraceFile = traceFile
	}
	if noColor {
		cfg.Color = false
	}
	if verbose {
		cfg.Debug = true
	}

	zc := zap.NewProductionConfig()
	if cfg.Debug {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	var err error
	logger, err = zc.Build()
	if err != nil {
		logger = zap.NewNop()
		fmt.Fprintf(cmd.ErrOrStderr(), "gruvcrisp: failed to initialize logger: %v\n", err)
	}
	if loadErr != nil {
		logger.Warn("config not loaded, using defaults", zap.String("path", path), zap.Error(loadErr))
	}
	return nil
}

func syncLogger(cmd *cobra.Command, args []string) {
	if logger != nil {
		_ = logger.Sync()
	}
}

func newRunner(cmd *cobra.Command) *demo.Runner {
	var obs trace.Observer = trace.Nop{}
	if cfg.TraceFile != "" {
		rec := trace.NewRecorder(cfg.TraceFile)
		logger.Debug("recording trace", zap.String("file", cfg.TraceFile), zap.String("run", rec.RunID()))
		obs = rec
	}
	return demo.NewRunner(demo.Options{
		Out:      cmd.OutOrStdout(),
		Err:      cmd.ErrOrStderr(),
		Logger:   logger,
		Config:   cfg,
		Observer: obs,
	})
}
