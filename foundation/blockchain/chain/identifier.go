package chain

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/math"
)

// Identifier selects a chain by name or by chain id.
type Identifier struct {
	name string
	id   *big.Int
}

// ByName constructs an identifier that selects a chain by name.
func ByName(name string) Identifier {
	return Identifier{name: name}
}

// ByID constructs an identifier that selects a chain by chain id.
func ByID(id *big.Int) Identifier {
	if id == nil {
		return Identifier{}
	}
	return Identifier{id: new(big.Int).Set(id)}
}

// IsZero reports if the identifier selects nothing.
func (id Identifier) IsZero() bool {
	return id.name == "" && id.id == nil
}

// Matches reports if the identifier selects the specified descriptor.
func (id Identifier) Matches(d Descriptor) bool {
	if id.id != nil {
		return d.ChainID != nil && id.id.Cmp(d.ChainID) == 0
	}
	return id.name != "" && id.name == d.Name
}

// String implements the fmt.Stringer interface.
func (id Identifier) String() string {
	if id.id != nil {
		return id.id.String()
	}
	return id.name
}

// ParseString constructs an identifier from text. Decimal and 0x prefixed
// hex numbers select by chain id, anything else selects by name.
func ParseString(s string) Identifier {
	if n, ok := math.ParseBig256(s); ok && s != "" {
		return ByID(n)
	}
	return ByName(s)
}

// ParseIdentifier constructs an identifier from a name, a Go integer or a big
// integer. Any other type fails with ErrInvalidIdentifierType.
func ParseIdentifier(v any) (Identifier, error) {
	switch id := v.(type) {
	case Identifier:
		return id, nil
	case string:
		return ByName(id), nil
	case *big.Int:
		if id == nil {
			break
		}
		return ByID(id), nil
	case big.Int:
		return ByID(&id), nil
	case int:
		return ByID(big.NewInt(int64(id))), nil
	case int32:
		return ByID(big.NewInt(int64(id))), nil
	case int64:
		return ByID(big.NewInt(id)), nil
	case uint:
		return ByID(new(big.Int).SetUint64(uint64(id))), nil
	case uint32:
		return ByID(new(big.Int).SetUint64(uint64(id))), nil
	case uint64:
		return ByID(new(big.Int).SetUint64(id)), nil
	}

	return Identifier{}, fmt.Errorf("%w: got %T", ErrInvalidIdentifierType, v)
}
