// Package network is the core API for the rules service. It owns the session
// engine shared by every request and serializes changes to its cursor.
package network

import (
	"fmt"
	"sync"

	"github.com/ardanlabs/chainrules/foundation/blockchain/chain"
	"github.com/ardanlabs/chainrules/foundation/blockchain/hardfork"
	"github.com/ardanlabs/chainrules/foundation/blockchain/rules"
	"github.com/ardanlabs/chainrules/foundation/blockchain/timeline"
)

// EventHandler defines a function that is called when the session cursor
// changes.
type EventHandler func(v string, args ...any)

// Config represents the configuration required to start the core.
type Config struct {
	Chain               string
	Hardfork            string
	CustomChainsFolder  string
	CustomHardforksFile string
	EvHandler           EventHandler
}

// Core manages the session engine.
type Core struct {
	mu      sync.RWMutex
	session *rules.Engine
}

// New constructs the core, loading any custom chains and custom hardforks
// named by the configuration.
func New(cfg Config) (*Core, error) {
	var customChains []chain.Document
	if cfg.CustomChainsFolder != "" {
		docs, err := chain.LoadFolder(cfg.CustomChainsFolder)
		if err != nil {
			return nil, fmt.Errorf("loading custom chains: %w", err)
		}
		customChains = docs
	}

	var customHardforks map[string]hardfork.Definition
	if cfg.CustomHardforksFile != "" {
		defs, err := hardfork.Load(cfg.CustomHardforksFile)
		if err != nil {
			return nil, fmt.Errorf("loading custom hardforks: %w", err)
		}
		customHardforks = defs
	}

	// Config values are text, numbers select the chain by id.
	var id any
	if cfg.Chain != "" {
		id = chain.ParseString(cfg.Chain)
	}

	var ev rules.EventHandler
	if cfg.EvHandler != nil {
		ev = rules.EventHandler(cfg.EvHandler)
	}

	session, err := rules.New(rules.Config{
		Chain:           id,
		Hardfork:        cfg.Hardfork,
		CustomChains:    customChains,
		CustomHardforks: customHardforks,
		EvHandler:       ev,
	})
	if err != nil {
		return nil, err
	}

	return &Core{session: session}, nil
}

// Snapshot returns a copy of the session engine. Changes made to the copy
// are not seen by the session.
func (c *Core) Snapshot() *rules.Engine {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.session.Clone()
}

// At returns a copy of the session engine moved to the hardfork active at
// the specified point. The session cursor is left as is.
func (c *Core) At(p timeline.Point) *rules.Engine {
	e := c.Snapshot()
	e.SetHardforkBy(p)
	return e
}

// Resolve returns the rules in effect at the specified point.
func (c *Core) Resolve(p timeline.Point) (Resolution, error) {
	return NewResolution(c.At(p))
}

// Current returns the rules in effect at the session cursor.
func (c *Core) Current() (Resolution, error) {
	return NewResolution(c.Snapshot())
}

// =============================================================================

// SetHardfork moves the session cursor to the named hardfork.
func (c *Core) SetHardfork(name string) (Resolution, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.session.SetHardfork(name); err != nil {
		return Resolution{}, err
	}

	return NewResolution(c.session)
}

// SetHardforkBy moves the session cursor to the hardfork active at the
// specified point.
func (c *Core) SetHardforkBy(p timeline.Point) (Resolution, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.session.SetHardforkBy(p)

	return NewResolution(c.session)
}

// SetChain moves the session cursor to another chain. An empty hardfork
// name lets the engine pick the chain's default.
func (c *Core) SetChain(id any, hardforkName string) (Resolution, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var opts []rules.ChainOption
	if hardforkName != "" {
		opts = append(opts, rules.WithHardfork(hardforkName))
	}

	if err := c.session.SetChain(id, opts...); err != nil {
		return Resolution{}, err
	}

	return NewResolution(c.session)
}
