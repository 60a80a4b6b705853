package cmd

import (
	"github.com/ardanlabs/chainrules/business/core/network"
	"github.com/ardanlabs/chainrules/foundation/blockchain/timeline"
	"github.com/spf13/cobra"
)

var (
	block     uint64
	timestamp uint64
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the rules in effect at a block and timestamp.",
	RunE:  resolveRun,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().Uint64VarP(&block, "block", "b", 0, "Block number.")
	resolveCmd.Flags().Uint64VarP(&timestamp, "timestamp", "t", 0, "Block timestamp.")
}

func resolveRun(cmd *cobra.Command, args []string) error {
	e, err := newEngine()
	if err != nil {
		return err
	}

	p := timeline.At(block)
	if cmd.Flags().Changed("timestamp") {
		p = timeline.AtTime(block, timestamp)
	}

	e.SetHardforkBy(p)

	res, err := network.NewResolution(e)
	if err != nil {
		return err
	}

	return printJSON(res)
}
