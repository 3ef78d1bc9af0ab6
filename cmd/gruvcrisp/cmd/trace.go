package cmd

import (
	"fmt"

	"github.com/amirkhaki/gruvcrisp/pkg/trace"
	"github.com/spf13/cobra"
)

// traceCmd prints a trace written with --trace
var traceCmd = &cobra.Command{
	Use:   "trace [file]",
	Short: "print a recorded run trace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := trace.LoadTrace(args[0])
		if log == nil {
			return err
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "run %s\n", log.Header.Run)
		for _, e := range log.Events {
			fmt.Fprintf(w, "%3d  %-8s %-6s %s\n", e.Seq, e.Demo, e.Kind, e.Detail)
		}
		fmt.Fprintf(w, "%d events, %d failed\n", log.Header.Events, log.Header.Failed)
		return err
	},
}

func init() {
	toolsCmd.AddCommand(traceCmd)
}
