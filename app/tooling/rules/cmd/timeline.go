package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Print the hardfork timeline of the chain.",
	RunE:  timelineRun,
}

func init() {
	rootCmd.AddCommand(timelineCmd)
}

func timelineRun(cmd *cobra.Command, args []string) error {
	e, err := newEngine()
	if err != nil {
		return err
	}

	fmt.Printf("chain %s (%s)\n", e.ChainName(), e.ChainID())
	for _, rec := range e.Timeline().Records() {
		hash, err := e.ForkHash(rec.Name)
		if err != nil {
			return err
		}

		marker := " "
		if rec.Name == e.Hardfork() {
			marker = "*"
		}

		fmt.Printf("%s %-20s %-30s %s\n", marker, rec.Name, rec.Condition, hash)
	}

	return nil
}
