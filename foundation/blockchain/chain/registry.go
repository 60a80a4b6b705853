package chain

import (
	"fmt"
)

// Registry represents the set of selectable chains: the built-in chains plus
// the custom chains supplied at construction. A Registry is never modified
// after construction and is safe for concurrent use.
type Registry struct {
	builtin []Descriptor
	custom  []Descriptor
}

// NewRegistry constructs a registry from the built-in chains and the
// specified custom chains. Custom chains are additional entries, a custom
// chain can't reuse the name or chain id of another chain.
func NewRegistry(custom ...Descriptor) (*Registry, error) {
	reg := Registry{
		builtin: builtins,
		custom:  make([]Descriptor, 0, len(custom)),
	}

	for _, d := range custom {
		if d.Name == "" {
			return nil, missingField("name")
		}
		if d.ChainID == nil {
			return nil, missingField("chainId")
		}

		for _, exist := range reg.all() {
			switch {
			case exist.Name == d.Name:
				return nil, &ValidationError{Fields: map[string]string{
					"name": fmt.Sprintf("chain name %q is already registered", d.Name),
				}}

			case exist.ChainID.Cmp(d.ChainID) == 0:
				return nil, &ValidationError{Fields: map[string]string{
					"chainId": fmt.Sprintf("chain id %s of %q is already registered by %q", d.ChainID, d.Name, exist.Name),
				}}
			}
		}

		reg.custom = append(reg.custom, d.Clone())
	}

	return &reg, nil
}

// Lookup returns a copy of the descriptor selected by the identifier.
// Built-in chains are searched first.
func (r *Registry) Lookup(id Identifier) (Descriptor, error) {
	for _, d := range r.all() {
		if id.Matches(d) {
			return d.Clone(), nil
		}
	}

	return Descriptor{}, fmt.Errorf("%w: %q", ErrUnsupportedChain, id)
}

// IsCustom reports if the named chain was supplied as a custom chain.
func (r *Registry) IsCustom(name string) bool {
	for _, d := range r.custom {
		if d.Name == name {
			return true
		}
	}
	return false
}

// Chains returns copies of every registered chain, built-in chains first.
func (r *Registry) Chains() []Descriptor {
	all := r.all()

	out := make([]Descriptor, len(all))
	for i, d := range all {
		out[i] = d.Clone()
	}
	return out
}

func (r *Registry) all() []Descriptor {
	all := make([]Descriptor, 0, len(r.builtin)+len(r.custom))
	all = append(all, r.builtin...)
	return append(all, r.custom...)
}
