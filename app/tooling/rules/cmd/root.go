// Package cmd contains the rules tooling commands.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ardanlabs/chainrules/business/core/network"
	"github.com/ardanlabs/chainrules/foundation/blockchain/rules"
	"github.com/spf13/cobra"
)

var (
	chainName       string
	hardforkName    string
	customChains    string
	customHardforks string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&chainName, "chain", "c", "mainnet", "Name or chain id of the chain.")
	rootCmd.PersistentFlags().StringVarP(&hardforkName, "hardfork", "f", "", "Hardfork to start at, the chain default when empty.")
	rootCmd.PersistentFlags().StringVar(&customChains, "custom-chains", "", "Folder of custom chain documents.")
	rootCmd.PersistentFlags().StringVar(&customHardforks, "custom-hardforks", "", "File of custom hardfork definitions.")
}

var rootCmd = &cobra.Command{
	Use:          "rules",
	Short:        "Inspect the consensus rules of a chain",
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newEngine() (*rules.Engine, error) {
	core, err := network.New(network.Config{
		Chain:               chainName,
		Hardfork:            hardforkName,
		CustomChainsFolder:  customChains,
		CustomHardforksFile: customHardforks,
	})
	if err != nil {
		return nil, err
	}

	return core.Snapshot(), nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(data))
	return nil
}
