package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var paramCmd = &cobra.Command{
	Use:   "param [name]",
	Short: "Print a parameter, or every parameter, at the hardfork.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  paramRun,
}

func init() {
	rootCmd.AddCommand(paramCmd)
}

func paramRun(cmd *cobra.Command, args []string) error {
	e, err := newEngine()
	if err != nil {
		return err
	}

	table := e.Params()

	names := table.Names()
	if len(args) == 1 {
		if _, err := table.Get(args[0]); err != nil {
			return err
		}
		names = args
	}

	for _, name := range names {
		v, _ := table.Get(name)
		src, _ := table.Source(name)
		fmt.Printf("%-40s %-24s %s\n", name, v, src)
	}

	return nil
}
