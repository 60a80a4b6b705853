package network

import (
	"github.com/ardanlabs/chainrules/foundation/blockchain/fieldset"
	"github.com/ardanlabs/chainrules/foundation/blockchain/rules"
	"github.com/ardanlabs/chainrules/foundation/blockchain/timeline"
)

// Resolution represents the rules in effect at one cursor position.
type Resolution struct {
	Chain     string           `json:"chain"`
	ChainID   string           `json:"chainId"`
	Hardfork  string           `json:"hardfork"`
	Custom    bool             `json:"custom"`
	Block     *uint64          `json:"block,omitempty"`
	Timestamp *uint64          `json:"timestamp,omitempty"`
	ForkHash  string           `json:"forkHash,omitempty"`
	EIPs      []int            `json:"eips"`
	Fields    fieldset.Fields  `json:"fields"`
	Next      *timeline.Record `json:"next,omitempty"`
}

// NewResolution captures the cursor position of the engine.
func NewResolution(e *rules.Engine) (Resolution, error) {
	fields, err := fieldset.Select(e)
	if err != nil {
		return Resolution{}, err
	}

	res := Resolution{
		Chain:    e.ChainName(),
		ChainID:  e.ChainID().String(),
		Hardfork: e.Hardfork(),
		Custom:   e.IsCustomHardfork(e.Hardfork()),
		EIPs:     e.EIPs(),
		Fields:   fields,
	}

	if n, ok := e.HardforkBlock(); ok {
		res.Block = &n
	}

	if ts, ok := e.HardforkTimestamp(); ok {
		res.Timestamp = &ts
	}

	// Hardforks missing from the chain's timeline have no fork hash.
	if hash, err := e.ForkHash(""); err == nil {
		res.ForkHash = hash.String()
	}

	if rec, ok := e.NextHardforkBoundary(); ok {
		res.Next = &rec
	}

	return res, nil
}
