// Package hardfork maintains the catalog of hardfork definitions, the EIPs
// they bundle and the parameter overrides they apply. The catalog holds the
// built-in definitions plus any custom definitions supplied at construction.
package hardfork

import (
	"errors"
	"fmt"
	"slices"

	"github.com/ardanlabs/chainrules/foundation/blockchain/params"
	mapset "github.com/deckarep/golang-set/v2"
)

// Set of error variables for the catalog.
var (
	ErrUnknownUpgrade    = errors.New("unknown hardfork")
	ErrInvalidDefinition = errors.New("invalid hardfork definition")
	ErrUnknownEIP        = errors.New("unknown eip")
)

// =============================================================================

// Definition represents a named set of rules. The EIP list is kept in
// declaration order since EIP parameter overlays are applied in that order.
type Definition struct {
	Name   string     `json:"name,omitempty"`
	EIPs   []int      `json:"eips"`
	Params params.Set `json:"params,omitempty"`

	set mapset.Set[int]
}

func newDefinition(name string, eips []int, prms params.Set) Definition {
	return Definition{
		Name:   name,
		EIPs:   eips,
		Params: prms,
		set:    mapset.NewThreadUnsafeSet(eips...),
	}
}

// HasEIP reports if the definition activates the specified EIP.
func (d Definition) HasEIP(id int) bool {
	if d.set == nil {
		return slices.Contains(d.EIPs, id)
	}
	return d.set.Contains(id)
}

// EIPSet returns a copy of the set of EIPs this definition activates.
func (d Definition) EIPSet() mapset.Set[int] {
	return mapset.NewThreadUnsafeSet(d.EIPs...)
}

// Layers returns the parameter layers this definition contributes on top of
// the base values: its own overrides first, then each EIP overlay in EIP
// list order.
func (d Definition) Layers() []params.Layer {
	layers := make([]params.Layer, 0, len(d.EIPs)+1)
	layers = append(layers, params.Layer{Source: "hardfork:" + d.Name, Set: d.Params})

	for _, id := range d.EIPs {
		eip, exists := eips[id]
		if !exists || len(eip.Params) == 0 {
			continue
		}
		layers = append(layers, params.Layer{Source: fmt.Sprintf("eip:%d", id), Set: eip.Params})
	}

	return layers
}

func (d Definition) clone() Definition {
	return newDefinition(d.Name, slices.Clone(d.EIPs), d.Params.Clone())
}

// =============================================================================

// Catalog represents the set of known definitions. A Catalog is never
// modified after construction and is safe for concurrent use.
type Catalog struct {
	defs   map[string]Definition
	order  []string
	custom map[string]bool
}

// NewCatalog constructs a catalog with the built-in definitions and the
// specified custom definitions. A custom definition is keyed by name and can
// omit the name field. Custom definitions can't replace a built-in.
func NewCatalog(custom map[string]Definition) (*Catalog, error) {
	cat := Catalog{
		defs:   make(map[string]Definition, len(builtins)+len(custom)),
		custom: make(map[string]bool, len(custom)),
	}

	for _, def := range builtins {
		cat.defs[def.Name] = def
		cat.order = append(cat.order, def.Name)
	}

	names := make([]string, 0, len(custom))
	for name := range custom {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		def := custom[name]

		switch {
		case name == "":
			return nil, fmt.Errorf("%w: empty name", ErrInvalidDefinition)
		case def.Name != "" && def.Name != name:
			return nil, fmt.Errorf("%w: key %q names definition %q", ErrInvalidDefinition, name, def.Name)
		}

		if _, exists := cat.defs[name]; exists {
			return nil, fmt.Errorf("%w: %q replaces a built-in hardfork", ErrInvalidDefinition, name)
		}

		cat.defs[name] = newDefinition(name, slices.Clone(def.EIPs), def.Params.Clone())
		cat.order = append(cat.order, name)
		cat.custom[name] = true
	}

	return &cat, nil
}

// Lookup returns the definition for the specified name.
func (c *Catalog) Lookup(name string) (Definition, error) {
	def, exists := c.defs[name]
	if !exists {
		return Definition{}, fmt.Errorf("%w: %q", ErrUnknownUpgrade, name)
	}
	return def, nil
}

// Has reports if the catalog knows the specified name.
func (c *Catalog) Has(name string) bool {
	_, exists := c.defs[name]
	return exists
}

// IsCustom reports if the specified name is a custom definition.
func (c *Catalog) IsCustom(name string) bool {
	return c.custom[name]
}

// Names returns the built-in names in definition order followed by the
// custom names in sorted order.
func (c *Catalog) Names() []string {
	return slices.Clone(c.order)
}
