// Package chain maintains the chain descriptors known to the rules engine.
// A descriptor names a network, carries its genesis metadata, bootstrap nodes
// and consensus settings, and owns the network's activation timeline.
package chain

import (
	"errors"
	"fmt"
	"maps"
	"math/big"
	"slices"
	"strings"

	"github.com/ardanlabs/chainrules/foundation/blockchain/hardfork"
	"github.com/ardanlabs/chainrules/foundation/blockchain/params"
	"github.com/ardanlabs/chainrules/foundation/blockchain/timeline"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Set of error variables for chain lookup and validation.
var (
	ErrUnsupportedChain      = errors.New("chain not supported")
	ErrInvalidIdentifierType = errors.New("chain must be a string, number, or big integer when initialized with custom chains")
	ErrConfigValidation      = errors.New("chain config validation")
)

// ValidationError represents a chain document that failed validation. Fields
// maps each offending field to its message.
type ValidationError struct {
	Fields map[string]string
}

// Error implements the error interface.
func (ve *ValidationError) Error() string {
	names := slices.Sorted(maps.Keys(ve.Fields))

	msgs := make([]string, len(names))
	for i, name := range names {
		msgs[i] = ve.Fields[name]
	}

	return strings.Join(msgs, "; ")
}

// Is allows errors.Is to match any validation error with ErrConfigValidation.
func (ve *ValidationError) Is(target error) bool {
	return target == ErrConfigValidation
}

func missingField(name string) *ValidationError {
	return &ValidationError{
		Fields: map[string]string{name: "Missing required field: " + name},
	}
}

// =============================================================================

// Consensus types.
const (
	ProofOfWork      = "pow"
	ProofOfAuthority = "poa"
	ProofOfStake     = "pos"
)

// Consensus represents the agreement mechanism of a chain.
type Consensus struct {
	Type      string  `json:"type" validate:"required,oneof=pow poa pos"`
	Algorithm string  `json:"algorithm" validate:"required"`
	Clique    *Clique `json:"clique,omitempty"`
}

// Clique represents the proof of authority settings of a clique chain.
type Clique struct {
	Period uint64 `json:"period"`
	Epoch  uint64 `json:"epoch"`
}

// BootstrapNode represents a peer used to join the network.
type BootstrapNode struct {
	IP       string `json:"ip" validate:"required,ip"`
	Port     int    `json:"port" validate:"required,min=1,max=65535"`
	ID       string `json:"id" validate:"required,hexadecimal"`
	Location string `json:"location,omitempty"`
	Comment  string `json:"comment,omitempty"`
}

// Enode returns the enode URL of the node.
func (bn BootstrapNode) Enode() string {
	return fmt.Sprintf("enode://%s@%s:%d", bn.ID, bn.IP, bn.Port)
}

// =============================================================================

// Descriptor represents a chain. Descriptors handed out by this package are
// copies and can't be used to modify a registry.
type Descriptor struct {
	Name            string
	ChainID         *big.Int
	Comment         string
	URL             string
	DefaultHardfork string
	Genesis         Genesis
	BootstrapNodes  []BootstrapNode
	Consensus       Consensus
	Timeline        timeline.Timeline
	DepositContract *common.Address
	Params          params.Set
	CustomHardforks map[string]hardfork.Definition
}

// Clone returns a deep copy of the descriptor.
func (d Descriptor) Clone() Descriptor {
	cpy := d
	cpy.ChainID = cloneBig(d.ChainID)
	cpy.Genesis = d.Genesis.Clone()
	cpy.BootstrapNodes = slices.Clone(d.BootstrapNodes)
	if d.Consensus.Clique != nil {
		clique := *d.Consensus.Clique
		cpy.Consensus.Clique = &clique
	}
	if d.DepositContract != nil {
		addr := *d.DepositContract
		cpy.DepositContract = &addr
	}
	cpy.Params = d.Params.Clone()
	if d.CustomHardforks != nil {
		cpy.CustomHardforks = make(map[string]hardfork.Definition, len(d.CustomHardforks))
		for name, def := range d.CustomHardforks {
			cpy.CustomHardforks[name] = hardfork.Definition{
				Name:   def.Name,
				EIPs:   slices.Clone(def.EIPs),
				Params: def.Params.Clone(),
			}
		}
	}
	return cpy
}

// Identifier returns the identifier that selects this chain by id.
func (d Descriptor) Identifier() Identifier {
	return ByID(d.ChainID)
}

// =============================================================================

// Genesis represents the genesis block metadata of a chain.
type Genesis struct {
	Hash          common.Hash
	Timestamp     uint64
	GasLimit      uint64
	Difficulty    *big.Int
	Nonce         hexutil.Bytes
	ExtraData     hexutil.Bytes
	BaseFeePerGas *big.Int
	ExcessBlobGas *uint64
}

// Clone returns a deep copy of the genesis metadata.
func (g Genesis) Clone() Genesis {
	cpy := g
	cpy.Difficulty = cloneBig(g.Difficulty)
	cpy.BaseFeePerGas = cloneBig(g.BaseFeePerGas)
	cpy.Nonce = slices.Clone(g.Nonce)
	cpy.ExtraData = slices.Clone(g.ExtraData)
	if g.ExcessBlobGas != nil {
		v := *g.ExcessBlobGas
		cpy.ExcessBlobGas = &v
	}
	return cpy
}

func cloneBig(v *big.Int) *big.Int {
	if v == nil {
		return nil
	}
	return new(big.Int).Set(v)
}
