// Package fieldset decides which optional block header fields exist under
// the rules in effect. Building and encoding the header itself is left to
// the caller.
package fieldset

import (
	"fmt"

	"github.com/ardanlabs/chainrules/foundation/blockchain/params"
)

// Rules represents the behavior required to select header fields.
type Rules interface {
	IsActivatedEIP(id int) bool
	Param(name string) (params.Value, error)
}

// Set of header field names, in header order.
const (
	ParentHash            = "parentHash"
	UncleHash             = "uncleHash"
	Coinbase              = "coinbase"
	StateRoot             = "stateRoot"
	TransactionsTrie      = "transactionsTrie"
	ReceiptTrie           = "receiptTrie"
	LogsBloom             = "logsBloom"
	Difficulty            = "difficulty"
	Number                = "number"
	GasLimit              = "gasLimit"
	GasUsed               = "gasUsed"
	Timestamp             = "timestamp"
	ExtraData             = "extraData"
	MixHash               = "mixHash"
	Nonce                 = "nonce"
	BaseFeePerGas         = "baseFeePerGas"
	WithdrawalsRoot       = "withdrawalsRoot"
	BlobGasUsed           = "blobGasUsed"
	ExcessBlobGas         = "excessBlobGas"
	ParentBeaconBlockRoot = "parentBeaconBlockRoot"
	RequestsHash          = "requestsHash"
)

var legacy = []string{
	ParentHash, UncleHash, Coinbase, StateRoot, TransactionsTrie, ReceiptTrie,
	LogsBloom, Difficulty, Number, GasLimit, GasUsed, Timestamp, ExtraData,
	MixHash, Nonce,
}

// Fields represents the optional header fields and the limits that come
// with them.
type Fields struct {
	BaseFee          bool   `json:"baseFee"`
	InitialBaseFee   uint64 `json:"initialBaseFee,omitempty"`
	Withdrawals      bool   `json:"withdrawals"`
	BlobGas          bool   `json:"blobGas"`
	MaxBlobGas       uint64 `json:"maxBlobGasPerBlock,omitempty"`
	TargetBlobGas    uint64 `json:"targetBlobGasPerBlock,omitempty"`
	ParentBeaconRoot bool   `json:"parentBeaconRoot"`
	Requests         bool   `json:"requests"`
}

// Select returns the header fields in effect for the rules. A limit the
// active EIPs need but the rules don't define is an error.
func Select(r Rules) (Fields, error) {
	f := Fields{
		BaseFee:          r.IsActivatedEIP(1559),
		Withdrawals:      r.IsActivatedEIP(4895),
		BlobGas:          r.IsActivatedEIP(4844),
		ParentBeaconRoot: r.IsActivatedEIP(4788),
		Requests:         r.IsActivatedEIP(7685),
	}

	var err error
	if f.BaseFee {
		if f.InitialBaseFee, err = uint64Param(r, "initialBaseFee"); err != nil {
			return Fields{}, err
		}
	}

	if f.BlobGas {
		if f.MaxBlobGas, err = uint64Param(r, "maxBlobGasPerBlock"); err != nil {
			return Fields{}, err
		}
		if f.TargetBlobGas, err = uint64Param(r, "targetBlobGasPerBlock"); err != nil {
			return Fields{}, err
		}
	}

	return f, nil
}

// Names returns the names of every header field in header order.
func (f Fields) Names() []string {
	names := make([]string, len(legacy), len(legacy)+6)
	copy(names, legacy)

	if f.BaseFee {
		names = append(names, BaseFeePerGas)
	}
	if f.Withdrawals {
		names = append(names, WithdrawalsRoot)
	}
	if f.BlobGas {
		names = append(names, BlobGasUsed, ExcessBlobGas)
	}
	if f.ParentBeaconRoot {
		names = append(names, ParentBeaconBlockRoot)
	}
	if f.Requests {
		names = append(names, RequestsHash)
	}

	return names
}

// Has reports if the named field is part of the header.
func (f Fields) Has(name string) bool {
	for _, n := range f.Names() {
		if n == name {
			return true
		}
	}
	return false
}

func uint64Param(r Rules, name string) (uint64, error) {
	v, err := r.Param(name)
	if err != nil {
		return 0, fmt.Errorf("selecting fields: %w", err)
	}

	n, ok := v.Uint64()
	if !ok {
		return 0, fmt.Errorf("selecting fields: %q is not a uint64: %s", name, v)
	}
	return n, nil
}
