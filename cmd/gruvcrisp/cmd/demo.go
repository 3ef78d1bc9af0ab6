package cmd

import (
	"fmt"

	"github.com/amirkhaki/gruvcrisp/pkg/demo"
	"github.com/spf13/cobra"
)

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "run selected demos",
	Long: `Runs only the demos named with --name, in their usual order.
Use --list to see the available names.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if list {
			for _, d := range demo.Demos() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", d.Name, d.Short)
			}
			return nil
		}
		if len(names) == 0 {
			return fmt.Errorf("no demo selected, use --name or --list")
		}
		return newRunner(cmd).Run(names...)
	},
}

var names []string
var list bool

func init() {
	toolsCmd.AddCommand(demoCmd)

	demoCmd.Flags().StringArrayVarP(&names, "name", "n",
		[]string{}, "demo to run (repeatable)")
	demoCmd.Flags().BoolVarP(&list, "list", "l", false,
		"list available demos")
}
