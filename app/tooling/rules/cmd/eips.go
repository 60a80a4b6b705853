package cmd

import (
	"fmt"

	"github.com/ardanlabs/chainrules/foundation/blockchain/hardfork"
	"github.com/spf13/cobra"
)

var allEIPs bool

var eipsCmd = &cobra.Command{
	Use:   "eips",
	Short: "Print the EIPs active at the hardfork.",
	RunE:  eipsRun,
}

func init() {
	rootCmd.AddCommand(eipsCmd)
	eipsCmd.Flags().BoolVarP(&allEIPs, "all", "a", false, "Print every known EIP.")
}

func eipsRun(cmd *cobra.Command, args []string) error {
	e, err := newEngine()
	if err != nil {
		return err
	}

	ids := e.EIPs()
	if allEIPs {
		ids = hardfork.KnownEIPs()
	}

	for _, id := range ids {
		eip, _ := hardfork.LookupEIP(id)

		active := " "
		if e.IsActivatedEIP(id) {
			active = "*"
		}

		fmt.Printf("%s EIP-%-6d %s\n", active, id, eip.Comment)
	}

	return nil
}
