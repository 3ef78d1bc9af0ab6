package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// Tool flags
	cfgFile   string
	verbose   bool
	seed      int64
	traceFile string
	noColor   bool
)

// toolsCmd groups the helper commands. They live apart from rootCmd so no
// echoed argument can be taken for a command name or flag.
var toolsCmd = &cobra.Command{
	Use:               "gruvcrisp-tools",
	Short:             "run single gruvcrisp demos and inspect run traces",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: syncLogger,
}

// ExecuteTools runs the tools command.
func ExecuteTools() {
	if err := toolsCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := toolsCmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "path to a YAML config file (default $GRUVCRISP_CONFIG)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 seeds from the clock)")
	pf.StringVar(&traceFile, "trace", "", "write a JSON-lines trace of the run to this file")
	pf.BoolVar(&noColor, "no-color", false, "disable colored output")
}
