package rules

import (
	"fmt"
	"math/big"
	"slices"

	"github.com/ardanlabs/chainrules/foundation/blockchain/chain"
	"github.com/ardanlabs/chainrules/foundation/blockchain/hardfork"
	"github.com/ardanlabs/chainrules/foundation/blockchain/params"
	"github.com/ardanlabs/chainrules/foundation/blockchain/timeline"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ChainName returns the name of the current chain.
func (e *Engine) ChainName() string {
	return e.chain.Name
}

// ChainID returns the chain id of the current chain.
func (e *Engine) ChainID() *big.Int {
	return new(big.Int).Set(e.chain.ChainID)
}

// Chain returns a copy of the current chain's descriptor.
func (e *Engine) Chain() chain.Descriptor {
	return e.chain.Clone()
}

// Chains returns every chain the engine can switch to.
func (e *Engine) Chains() []chain.Descriptor {
	return e.registry.Chains()
}

// ConsensusType returns the consensus family of the current chain.
func (e *Engine) ConsensusType() string {
	return e.chain.Consensus.Type
}

// ConsensusAlgorithm returns the consensus algorithm of the current chain.
func (e *Engine) ConsensusAlgorithm() string {
	return e.chain.Consensus.Algorithm
}

// Genesis returns the genesis metadata of the current chain.
func (e *Engine) Genesis() chain.Genesis {
	return e.chain.Genesis.Clone()
}

// BootstrapNodes returns the bootstrap nodes of the current chain.
func (e *Engine) BootstrapNodes() []chain.BootstrapNode {
	return slices.Clone(e.chain.BootstrapNodes)
}

// Timeline returns the activation timeline of the current chain.
func (e *Engine) Timeline() timeline.Timeline {
	return e.chain.Timeline
}

// DepositContract returns the deposit contract address of the current chain
// if it has one.
func (e *Engine) DepositContract() (common.Address, bool) {
	if e.chain.DepositContract == nil {
		return common.Address{}, false
	}
	return *e.chain.DepositContract, true
}

// =============================================================================

// Hardfork returns the name of the current hardfork.
func (e *Engine) Hardfork() string {
	return e.hardfork
}

// Definition returns the definition of the current hardfork.
func (e *Engine) Definition() hardfork.Definition {
	return hardfork.Definition{
		Name:   e.def.Name,
		EIPs:   slices.Clone(e.def.EIPs),
		Params: e.def.Params.Clone(),
	}
}

// HardforkDefinition returns the definition of the named hardfork without
// moving the cursor.
func (e *Engine) HardforkDefinition(name string) (hardfork.Definition, error) {
	def, err := e.catalog.Lookup(name)
	if err != nil {
		return hardfork.Definition{}, err
	}

	return hardfork.Definition{
		Name:   def.Name,
		EIPs:   slices.Clone(def.EIPs),
		Params: def.Params.Clone(),
	}, nil
}

// Hardforks returns the names of every hardfork the engine knows, built-ins
// first.
func (e *Engine) Hardforks() []string {
	return e.catalog.Names()
}

// IsCustomHardfork reports if the named hardfork is a custom definition.
func (e *Engine) IsCustomHardfork(name string) bool {
	return e.catalog.IsCustom(name)
}

// HardforkBlock returns the activation block of the current hardfork on the
// current chain. There is no block when the hardfork is timestamp gated,
// pending or not scheduled.
func (e *Engine) HardforkBlock() (uint64, bool) {
	rec, exists := e.chain.Timeline.Find(e.hardfork)
	if !exists {
		return 0, false
	}
	return rec.Condition.Block()
}

// HardforkTimestamp returns the activation timestamp of the current hardfork
// on the current chain when it is timestamp gated.
func (e *Engine) HardforkTimestamp() (uint64, bool) {
	rec, exists := e.chain.Timeline.Find(e.hardfork)
	if !exists {
		return 0, false
	}
	return rec.Condition.Timestamp()
}

// HardforkIsActiveOnBlock reports if the named hardfork is block gated on the
// current chain and active at the specified block.
func (e *Engine) HardforkIsActiveOnBlock(name string, number uint64) bool {
	rec, exists := e.chain.Timeline.Find(name)
	if !exists {
		return false
	}

	n, ok := rec.Condition.Block()
	return ok && n <= number
}

// GteHardfork reports if the current hardfork is the named hardfork or a
// later one. Positions come from the current chain's timeline when both
// hardforks are scheduled on it, else from the catalog order.
func (e *Engine) GteHardfork(name string) (bool, error) {
	if !e.catalog.Has(name) {
		return false, fmt.Errorf("%w: %q", hardfork.ErrUnknownUpgrade, name)
	}

	cur, other := e.chain.Timeline.Index(e.hardfork), e.chain.Timeline.Index(name)
	if cur < 0 || other < 0 {
		names := e.catalog.Names()
		cur, other = slices.Index(names, e.hardfork), slices.Index(names, name)
	}

	return cur >= other, nil
}

// NextHardforkBoundary returns the first block or timestamp gated record
// scheduled after the current hardfork on the current chain.
func (e *Engine) NextHardforkBoundary() (timeline.Record, bool) {
	idx := e.chain.Timeline.Index(e.hardfork)
	if idx < 0 {
		return timeline.Record{}, false
	}

	cur, _ := e.chain.Timeline.Find(e.hardfork)
	for {
		rec, next, ok := e.chain.Timeline.Next(idx)
		if !ok {
			return timeline.Record{}, false
		}

		// Records sharing the current activation point are not a boundary.
		if !sameCondition(rec.Condition, cur.Condition) {
			return rec, true
		}
		idx = next
	}
}

func sameCondition(a, b timeline.Condition) bool {
	ab, aok := a.Block()
	bb, bok := b.Block()
	at, atok := a.Timestamp()
	bt, btok := b.Timestamp()
	return aok == bok && ab == bb && atok == btok && at == bt
}

// ForkHash returns the EIP-2124 fork hash of the named hardfork on the
// current chain. An empty name uses the current hardfork.
func (e *Engine) ForkHash(name string) (hexutil.Bytes, error) {
	if name == "" {
		name = e.hardfork
	}
	return e.chain.ForkHash(name)
}

// =============================================================================

// Param returns the value of the named parameter at the current hardfork.
func (e *Engine) Param(name string) (params.Value, error) {
	return e.table.Get(name)
}

// Params returns the merged parameter table at the current hardfork.
func (e *Engine) Params() params.Table {
	return e.table
}

// ParamByHardfork returns the value of the named parameter at the named
// hardfork without moving the cursor.
func (e *Engine) ParamByHardfork(name string, hf string) (params.Value, error) {
	def, err := e.catalog.Lookup(hf)
	if err != nil {
		return params.Value{}, err
	}

	return merge(e.chain, def).Get(name)
}

// ParamByEIP returns the value the specified EIP assigns to the named
// parameter, independent of the current hardfork.
func (e *Engine) ParamByEIP(name string, id int) (params.Value, error) {
	eip, exists := hardfork.LookupEIP(id)
	if !exists {
		return params.Value{}, fmt.Errorf("%w: %d", hardfork.ErrUnknownEIP, id)
	}

	return params.Merge(params.Layer{Source: fmt.Sprintf("eip:%d", id), Set: eip.Params}).Get(name)
}

// IsActivatedEIP reports if the specified EIP belongs to the current
// hardfork. Activation is not cumulative: moving back to an earlier hardfork
// deactivates the EIPs it doesn't list.
func (e *Engine) IsActivatedEIP(id int) bool {
	return e.def.HasEIP(id)
}

// EIPs returns the EIPs of the current hardfork in declaration order.
func (e *Engine) EIPs() []int {
	return slices.Clone(e.def.EIPs)
}
