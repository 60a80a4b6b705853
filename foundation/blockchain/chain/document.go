package chain

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"slices"

	"github.com/ardanlabs/chainrules/foundation/blockchain/hardfork"
	"github.com/ardanlabs/chainrules/foundation/blockchain/params"
	"github.com/ardanlabs/chainrules/foundation/blockchain/timeline"
	"github.com/ardanlabs/chainrules/foundation/validate"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
)

// Document represents a chain descriptor document as supplied by a caller.
// Numbers may be written as decimal or 0x prefixed hex.
type Document struct {
	Name                   string                         `json:"name" validate:"required"`
	ChainID                *math.HexOrDecimal256          `json:"chainId" validate:"required"`
	Comment                string                         `json:"comment,omitempty"`
	URL                    string                         `json:"url,omitempty" validate:"omitempty,url"`
	DefaultHardfork        string                         `json:"defaultHardfork,omitempty"`
	Genesis                *Genesis                       `json:"genesis" validate:"required"`
	Hardforks              []timeline.Record              `json:"hardforks" validate:"required,min=1"`
	BootstrapNodes         []BootstrapNode                `json:"bootstrapNodes" validate:"dive"`
	Consensus              *Consensus                     `json:"consensus" validate:"required"`
	DepositContractAddress *common.Address                `json:"depositContractAddress,omitempty"`
	Params                 params.Set                     `json:"params,omitempty"`
	CustomHardforks        map[string]hardfork.Definition `json:"customHardforks,omitempty"`
}

// Decode reads and validates a chain document.
func Decode(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("decoding chain document: %w", err)
	}

	if err := doc.Validate(); err != nil {
		return Document{}, err
	}

	return doc, nil
}

// Validate checks the document carries every required field.
func (doc Document) Validate() error {
	if err := validate.Check(doc); err != nil {
		fe := validate.GetFieldErrors(err)
		if fe == nil {
			return fmt.Errorf("validating chain document: %w", err)
		}

		ve := ValidationError{Fields: make(map[string]string, len(fe))}
		for _, fld := range fe {
			msg := fld.Err
			if fld.Tag == "required" {
				msg = "Missing required field: " + fld.Field
			}
			ve.Fields[fld.Field] = msg
		}

		return &ve
	}

	return nil
}

// Descriptor validates the document and converts it into a descriptor.
func (doc Document) Descriptor() (Descriptor, error) {
	if err := doc.Validate(); err != nil {
		return Descriptor{}, err
	}

	d := Descriptor{
		Name:            doc.Name,
		ChainID:         new(big.Int).Set((*big.Int)(doc.ChainID)),
		Comment:         doc.Comment,
		URL:             doc.URL,
		DefaultHardfork: doc.DefaultHardfork,
		Genesis:         *doc.Genesis,
		BootstrapNodes:  doc.BootstrapNodes,
		Consensus:       *doc.Consensus,
		Timeline:        timeline.New(doc.Hardforks...),
		DepositContract: doc.DepositContractAddress,
		Params:          doc.Params,
		CustomHardforks: doc.CustomHardforks,
	}

	return d.Clone(), nil
}

// Document converts the descriptor back into document form.
func (d Descriptor) Document() Document {
	d = d.Clone()

	var id *math.HexOrDecimal256
	if d.ChainID != nil {
		id = (*math.HexOrDecimal256)(d.ChainID)
	}

	return Document{
		Name:                   d.Name,
		ChainID:                id,
		Comment:                d.Comment,
		URL:                    d.URL,
		DefaultHardfork:        d.DefaultHardfork,
		Genesis:                &d.Genesis,
		Hardforks:              d.Timeline.Records(),
		BootstrapNodes:         d.BootstrapNodes,
		Consensus:              &d.Consensus,
		DepositContractAddress: d.DepositContract,
		Params:                 d.Params,
		CustomHardforks:        d.CustomHardforks,
	}
}

// =============================================================================

// genesisJSON is the document form of the genesis metadata.
type genesisJSON struct {
	Hash          *common.Hash          `json:"hash,omitempty"`
	Timestamp     *math.HexOrDecimal64  `json:"timestamp,omitempty"`
	GasLimit      *math.HexOrDecimal64  `json:"gasLimit"`
	Difficulty    *math.HexOrDecimal256 `json:"difficulty"`
	Nonce         hexutil.Bytes         `json:"nonce"`
	ExtraData     hexutil.Bytes         `json:"extraData"`
	BaseFeePerGas *math.HexOrDecimal256 `json:"baseFeePerGas,omitempty"`
	ExcessBlobGas *math.HexOrDecimal64  `json:"excessBlobGas,omitempty"`
}

// MarshalJSON implements the json.Marshaler interface.
func (g Genesis) MarshalJSON() ([]byte, error) {
	var enc genesisJSON
	if g.Hash != (common.Hash{}) {
		enc.Hash = &g.Hash
	}
	if g.Timestamp != 0 {
		enc.Timestamp = (*math.HexOrDecimal64)(&g.Timestamp)
	}
	enc.GasLimit = (*math.HexOrDecimal64)(&g.GasLimit)
	enc.Difficulty = (*math.HexOrDecimal256)(g.Difficulty)
	enc.Nonce = g.Nonce
	enc.ExtraData = g.ExtraData
	enc.BaseFeePerGas = (*math.HexOrDecimal256)(g.BaseFeePerGas)
	enc.ExcessBlobGas = (*math.HexOrDecimal64)(g.ExcessBlobGas)

	return json.Marshal(&enc)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (g *Genesis) UnmarshalJSON(input []byte) error {
	var dec genesisJSON
	if err := json.Unmarshal(input, &dec); err != nil {
		return err
	}

	if dec.GasLimit == nil {
		return errors.New("genesis: missing required field 'gasLimit'")
	}
	if dec.Difficulty == nil {
		return errors.New("genesis: missing required field 'difficulty'")
	}

	var out Genesis
	if dec.Hash != nil {
		out.Hash = *dec.Hash
	}
	if dec.Timestamp != nil {
		out.Timestamp = uint64(*dec.Timestamp)
	}
	out.GasLimit = uint64(*dec.GasLimit)
	out.Difficulty = (*big.Int)(dec.Difficulty)
	out.Nonce = slices.Clone(dec.Nonce)
	out.ExtraData = slices.Clone(dec.ExtraData)
	if dec.BaseFeePerGas != nil {
		out.BaseFeePerGas = (*big.Int)(dec.BaseFeePerGas)
	}
	if dec.ExcessBlobGas != nil {
		v := uint64(*dec.ExcessBlobGas)
		out.ExcessBlobGas = &v
	}

	*g = out
	return nil
}
