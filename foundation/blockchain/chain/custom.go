package chain

import (
	"fmt"
	"math/big"
	"slices"

	"github.com/ardanlabs/chainrules/foundation/blockchain/timeline"
	"github.com/ethereum/go-ethereum/common/math"
)

// DefaultCustomName is the name given to a custom chain that doesn't
// declare one.
const DefaultCustomName = "custom-chain"

// Set of preset custom chain names.
const (
	PolygonMainnet     = "polygon-mainnet"
	PolygonMumbai      = "polygon-mumbai"
	ArbitrumOne        = "arbitrum-one"
	XDaiChain          = "x-dai-chain"
	OptimisticKovan    = "optimistic-kovan"
	OptimisticEthereum = "optimistic-ethereum"
)

var presets = map[string]Document{
	PolygonMainnet:     {Name: PolygonMainnet, ChainID: hexOrDecimal(137), Comment: "Polygon Mainnet"},
	PolygonMumbai:      {Name: PolygonMumbai, ChainID: hexOrDecimal(80001), Comment: "Polygon Mumbai Testnet"},
	ArbitrumOne:        {Name: ArbitrumOne, ChainID: hexOrDecimal(42161), Comment: "Arbitrum One"},
	XDaiChain:          {Name: XDaiChain, ChainID: hexOrDecimal(100), Comment: "Gnosis chain, formerly xDai"},
	OptimisticKovan:    {Name: OptimisticKovan, ChainID: hexOrDecimal(69), Comment: "Optimistic Ethereum on Kovan"},
	OptimisticEthereum: {Name: OptimisticEthereum, ChainID: hexOrDecimal(10), Comment: "Optimistic Ethereum"},
}

func hexOrDecimal(n int64) *math.HexOrDecimal256 {
	return (*math.HexOrDecimal256)(big.NewInt(n))
}

// Preset returns the partial document of a well known chain that runs the
// rules of a base chain under its own name and chain id.
func Preset(name string) (Document, error) {
	doc, exists := presets[name]
	if !exists {
		return Document{}, fmt.Errorf("%w: custom chain %q", ErrUnsupportedChain, name)
	}

	doc.ChainID = hexOrDecimal((*big.Int)(doc.ChainID).Int64())
	return doc, nil
}

// Presets returns the names of the preset chains in sorted order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Custom constructs a descriptor from a partial document. Every field the
// document leaves out is taken from the base chain, except the name which
// defaults to DefaultCustomName.
func Custom(doc Document, base Descriptor) Descriptor {
	d := base.Clone()

	d.Name = DefaultCustomName
	if doc.Name != "" {
		d.Name = doc.Name
	}
	if doc.ChainID != nil {
		d.ChainID = new(big.Int).Set((*big.Int)(doc.ChainID))
	}
	if doc.Comment != "" {
		d.Comment = doc.Comment
	}
	if doc.URL != "" {
		d.URL = doc.URL
	}
	if doc.DefaultHardfork != "" {
		d.DefaultHardfork = doc.DefaultHardfork
	}
	if doc.Genesis != nil {
		d.Genesis = doc.Genesis.Clone()
	}
	if doc.Hardforks != nil {
		d.Timeline = timeline.New(doc.Hardforks...)
	}
	if doc.BootstrapNodes != nil {
		d.BootstrapNodes = slices.Clone(doc.BootstrapNodes)
	}
	if doc.Consensus != nil {
		d.Consensus = *doc.Consensus
	}
	if doc.DepositContractAddress != nil {
		addr := *doc.DepositContractAddress
		d.DepositContract = &addr
	}
	if doc.Params != nil {
		d.Params = doc.Params.Clone()
	}
	if doc.CustomHardforks != nil {
		d.CustomHardforks = doc.CustomHardforks
	}

	return d.Clone()
}
