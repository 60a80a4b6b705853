package rulesgrp

import (
	"github.com/ardanlabs/chainrules/foundation/blockchain/params"
	"github.com/ardanlabs/chainrules/foundation/blockchain/timeline"
)

type chainInfo struct {
	Name      string `json:"name"`
	ChainID   string `json:"chainId"`
	Consensus string `json:"consensus"`
	Current   bool   `json:"current"`
}

type hardforkInfo struct {
	Name      string `json:"name"`
	Custom    bool   `json:"custom"`
	Scheduled bool   `json:"scheduled"`
	Current   bool   `json:"current"`
	EIPs      []int  `json:"eips"`
}

type param struct {
	Name   string       `json:"name"`
	Value  params.Value `json:"value"`
	Source string       `json:"source,omitempty"`
}

type eip struct {
	ID      int        `json:"id"`
	Comment string     `json:"comment,omitempty"`
	Active  bool       `json:"active"`
	Params  params.Set `json:"params,omitempty"`
}

type timelineInfo struct {
	Chain   string            `json:"chain"`
	Current string            `json:"current"`
	Records []timeline.Record `json:"records"`
}

// =============================================================================

type setHardfork struct {
	Name string `json:"name" validate:"required"`
}

type setHardforkBy struct {
	Block     *uint64 `json:"block" validate:"required"`
	Timestamp *uint64 `json:"timestamp"`
}

type setChain struct {
	Chain    string `json:"chain" validate:"required"`
	Hardfork string `json:"hardfork"`
}
