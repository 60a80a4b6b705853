// Package rules is the core API for resolving the consensus rules in effect
// at any point of a chain's history. An Engine holds a cursor made of the
// current chain and the current hardfork and answers parameter and EIP
// queries for that cursor.
package rules

import (
	"fmt"
	"maps"
	"slices"

	"github.com/ardanlabs/chainrules/foundation/blockchain/chain"
	"github.com/ardanlabs/chainrules/foundation/blockchain/hardfork"
	"github.com/ardanlabs/chainrules/foundation/blockchain/params"
)

// EventHandler defines a function that is called when the engine changes
// its cursor.
type EventHandler func(v string, args ...any)

// Config represents the configuration required to construct an engine.
//
// Chain selects the initial chain. It can be a name, a Go integer or big
// integer chain id, a chain.Identifier, or a chain.Document or
// chain.Descriptor to run a chain that is not registered. A document or
// descriptor can't be used together with CustomChains. When Chain is nil
// mainnet is used.
type Config struct {
	Chain           any
	Hardfork        string
	CustomChains    []chain.Document
	CustomHardforks map[string]hardfork.Definition
	EvHandler       EventHandler
}

// Engine manages the cursor over the registered chains and the hardfork
// catalog. An Engine is not safe for concurrent use while the cursor is
// being changed, use Clone to give each goroutine its own cursor.
type Engine struct {
	registry  *chain.Registry
	catalog   *hardfork.Catalog
	evHandler EventHandler

	chain    chain.Descriptor
	hardfork string
	def      hardfork.Definition
	table    params.Table
}

// New constructs an engine. Every custom chain and custom hardfork is
// validated before the engine is returned.
func New(cfg Config) (*Engine, error) {

	// Build a safe event handler function for use.
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	custom := make([]chain.Descriptor, 0, len(cfg.CustomChains))
	for i, doc := range cfg.CustomChains {
		d, err := doc.Descriptor()
		if err != nil {
			return nil, fmt.Errorf("custom chain %d: %w", i, err)
		}
		custom = append(custom, d)
	}

	registry, err := chain.NewRegistry(custom...)
	if err != nil {
		return nil, err
	}

	current, err := selectChain(cfg.Chain, registry, len(cfg.CustomChains) > 0)
	if err != nil {
		return nil, err
	}

	// A registered chain was already collected with the custom chains.
	chains := custom
	if unregistered(cfg.Chain) {
		chains = append(slices.Clone(custom), current)
	}

	catalog, err := buildCatalog(cfg.CustomHardforks, chains)
	if err != nil {
		return nil, err
	}

	for _, d := range chains {
		if err := validateChain(d, catalog); err != nil {
			return nil, err
		}
	}

	e := Engine{
		registry:  registry,
		catalog:   catalog,
		evHandler: ev,
	}

	if err := e.enter(current, cfg.Hardfork); err != nil {
		return nil, err
	}

	ev("rules: New: chain[%s]: hardfork[%s]", e.chain.Name, e.hardfork)

	return &e, nil
}

// NewCustom constructs an engine running a chain built from a partial
// document. Every field the document leaves out is taken from the chain
// selected by cfg.Chain, which defaults to mainnet.
func NewCustom(doc chain.Document, cfg Config) (*Engine, error) {
	registry, err := chain.NewRegistry()
	if err != nil {
		return nil, err
	}

	base, err := selectChain(cfg.Chain, registry, false)
	if err != nil {
		return nil, err
	}

	d := chain.Custom(doc, base)

	cfg.Chain = &d
	return New(cfg)
}

// selectChain resolves the configured chain selector.
func selectChain(v any, registry *chain.Registry, withCustom bool) (chain.Descriptor, error) {
	switch c := v.(type) {
	case nil:
		return registry.Lookup(chain.ByName(chain.Mainnet))

	case chain.Document, *chain.Document, chain.Descriptor, *chain.Descriptor:
		if withCustom {
			return chain.Descriptor{}, fmt.Errorf("%w: got %T", chain.ErrInvalidIdentifierType, v)
		}

		switch c := c.(type) {
		case chain.Document:
			return c.Descriptor()
		case *chain.Document:
			if c == nil {
				break
			}
			return c.Descriptor()
		case chain.Descriptor:
			return c.Clone(), nil
		case *chain.Descriptor:
			if c == nil {
				break
			}
			return c.Clone(), nil
		}
	}

	id, err := chain.ParseIdentifier(v)
	if err != nil {
		return chain.Descriptor{}, err
	}

	return registry.Lookup(id)
}

// unregistered reports if the chain selector carries its own chain instead
// of naming one from the registry.
func unregistered(v any) bool {
	switch c := v.(type) {
	case chain.Document, chain.Descriptor:
		return true
	case *chain.Document:
		return c != nil
	case *chain.Descriptor:
		return c != nil
	}
	return false
}

// buildCatalog merges the custom hardforks supplied directly with the ones
// declared by chains. A name can only be declared once.
func buildCatalog(direct map[string]hardfork.Definition, chains []chain.Descriptor) (*hardfork.Catalog, error) {
	custom := maps.Clone(direct)
	if custom == nil {
		custom = make(map[string]hardfork.Definition)
	}

	for _, d := range chains {
		for _, name := range slices.Sorted(maps.Keys(d.CustomHardforks)) {
			if _, exists := custom[name]; exists {
				return nil, fmt.Errorf("%w: %q declared twice, again by chain %q", hardfork.ErrInvalidDefinition, name, d.Name)
			}
			custom[name] = d.CustomHardforks[name]
		}
	}

	return hardfork.NewCatalog(custom)
}

// validateChain checks the chain's timeline and declared default against
// the catalog.
func validateChain(d chain.Descriptor, catalog *hardfork.Catalog) error {
	if d.Timeline.Len() == 0 {
		return fmt.Errorf("chain %q: %w", d.Name, &chain.ValidationError{
			Fields: map[string]string{"hardforks": "Missing required field: hardforks"},
		})
	}

	if err := d.Timeline.Validate(catalog); err != nil {
		return fmt.Errorf("chain %q: %w", d.Name, err)
	}

	if d.DefaultHardfork != "" && !catalog.Has(d.DefaultHardfork) {
		return fmt.Errorf("chain %q: default %w: %q", d.Name, hardfork.ErrUnknownUpgrade, d.DefaultHardfork)
	}

	return nil
}

// =============================================================================

// Clone returns an engine with its own cursor positioned where this engine's
// cursor is. The registry and catalog are shared since they are immutable.
// The clone doesn't report events, moving it never moves this cursor.
func (e *Engine) Clone() *Engine {
	cpy := *e
	cpy.chain = e.chain.Clone()
	cpy.evHandler = func(v string, args ...any) {}
	return &cpy
}

// enter moves the cursor onto the chain. The hardfork is the override when
// given, else the chain's declared default, else the most recently defined
// built-in hardfork. Only an override must be scheduled on the chain.
func (e *Engine) enter(d chain.Descriptor, override string) error {
	name := override
	if name == "" {
		name = d.DefaultHardfork
	}
	if name == "" {
		name = hardfork.Default()
	}

	if override != "" && d.Timeline.Index(override) < 0 {
		if !e.catalog.Has(override) {
			return fmt.Errorf("%w: %q", hardfork.ErrUnknownUpgrade, override)
		}
		return fmt.Errorf("%w: %q is not scheduled on chain %q", hardfork.ErrUnknownUpgrade, override, d.Name)
	}

	def, err := e.catalog.Lookup(name)
	if err != nil {
		return err
	}

	e.chain = d
	e.activate(def)

	return nil
}

// activate moves the cursor onto the hardfork and rebuilds the merged
// parameter table.
func (e *Engine) activate(def hardfork.Definition) {
	e.hardfork = def.Name
	e.def = def
	e.table = merge(e.chain, def)
}

// merge layers the base values, the chain overrides, the hardfork overrides
// and the hardfork's EIP overlays in that order.
func merge(d chain.Descriptor, def hardfork.Definition) params.Table {
	layers := []params.Layer{
		{Source: "base", Set: params.Base()},
		{Source: "chain:" + d.Name, Set: d.Params},
	}
	layers = append(layers, def.Layers()...)

	return params.Merge(layers...)
}
