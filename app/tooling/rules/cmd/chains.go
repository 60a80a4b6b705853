package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var chainsCmd = &cobra.Command{
	Use:   "chains",
	Short: "Print the registered chains.",
	RunE:  chainsRun,
}

func init() {
	rootCmd.AddCommand(chainsCmd)
}

func chainsRun(cmd *cobra.Command, args []string) error {
	e, err := newEngine()
	if err != nil {
		return err
	}

	for _, d := range e.Chains() {
		fmt.Printf("%-20s %-12s %s/%s\n", d.Name, d.ChainID, d.Consensus.Type, d.Consensus.Algorithm)
	}

	return nil
}
