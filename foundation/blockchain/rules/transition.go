package rules

import (
	"fmt"

	"github.com/ardanlabs/chainrules/foundation/blockchain/chain"
	"github.com/ardanlabs/chainrules/foundation/blockchain/hardfork"
	"github.com/ardanlabs/chainrules/foundation/blockchain/timeline"
)

// SetHardfork moves the cursor to the named hardfork. The hardfork must be
// scheduled on the current chain's timeline, pending records included.
func (e *Engine) SetHardfork(name string) error {
	if e.chain.Timeline.Index(name) < 0 {
		return fmt.Errorf("%w: %q is not scheduled on chain %q", hardfork.ErrUnknownUpgrade, name, e.chain.Name)
	}

	def, err := e.catalog.Lookup(name)
	if err != nil {
		return err
	}

	e.activate(def)
	e.evHandler("rules: SetHardfork: chain[%s]: hardfork[%s]", e.chain.Name, e.hardfork)

	return nil
}

// SetHardforkBy moves the cursor to the hardfork active at the specified
// point on the current chain and returns its name. Resolution can't fail,
// a point before every activation resolves to the first record.
func (e *Engine) SetHardforkBy(p timeline.Point) string {
	rec, _ := e.chain.Timeline.Active(p)

	// Every timeline was validated against the catalog at construction.
	def, err := e.catalog.Lookup(rec.Name)
	if err != nil {
		panic(err)
	}

	if def.Name != e.hardfork {
		e.activate(def)
		e.evHandler("rules: SetHardforkBy: chain[%s]: point[%s]: hardfork[%s]", e.chain.Name, p, e.hardfork)
	}

	return e.hardfork
}

// =============================================================================

// ChainOption changes how SetChain picks the hardfork of the new chain.
type ChainOption func(*chainOptions)

type chainOptions struct {
	hardfork string
}

// WithHardfork sets the hardfork to move to on the new chain.
func WithHardfork(name string) ChainOption {
	return func(opts *chainOptions) {
		opts.hardfork = name
	}
}

// SetChain moves the cursor to the chain selected by the identifier, which
// can be a name, a Go integer or big integer chain id, or a chain.Identifier.
// The hardfork is the WithHardfork option when given, else the chain's
// declared default, else the most recently defined built-in hardfork. The
// previous hardfork is never carried over. On failure the cursor is left
// unchanged.
func (e *Engine) SetChain(id any, options ...ChainOption) error {
	var opts chainOptions
	for _, option := range options {
		option(&opts)
	}

	ident, err := chain.ParseIdentifier(id)
	if err != nil {
		return err
	}

	d, err := e.registry.Lookup(ident)
	if err != nil {
		return err
	}

	if err := e.enter(d, opts.hardfork); err != nil {
		return err
	}

	e.evHandler("rules: SetChain: chain[%s]: hardfork[%s]", e.chain.Name, e.hardfork)

	return nil
}
