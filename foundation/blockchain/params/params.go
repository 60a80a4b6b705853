// Package params maintains the named protocol parameters and the merge table
// that layers them into the effective values for an active hardfork.
package params

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ErrParameterNotDefined is returned when a parameter name is absent from
// every layer of a merged table.
var ErrParameterNotDefined = errors.New("parameter not defined")

// =============================================================================

// Value represents a single parameter value. A value is either numeric or a
// byte string, never both.
type Value struct {
	num   *big.Int
	bytes []byte
}

// Uint64 constructs a numeric value.
func Uint64(v uint64) Value {
	return Value{num: new(big.Int).SetUint64(v)}
}

// Big constructs a numeric value from a copy of the specified integer.
func Big(v *big.Int) Value {
	return Value{num: new(big.Int).Set(v)}
}

// Bytes constructs a byte string value from a copy of the specified slice.
func Bytes(b []byte) Value {
	return Value{bytes: bytes.Clone(b)}
}

// MustHex constructs a byte string value from a 0x prefixed hex string. It
// panics on malformed input and is only meant for package level tables.
func MustHex(s string) Value {
	return Value{bytes: hexutil.MustDecode(s)}
}

// IsBytes reports if the value holds a byte string.
func (v Value) IsBytes() bool {
	return v.bytes != nil
}

// IsZero reports if the value was never set.
func (v Value) IsZero() bool {
	return v.num == nil && v.bytes == nil
}

// Big returns a copy of the numeric value or nil for byte strings.
func (v Value) Big() *big.Int {
	if v.num == nil {
		return nil
	}
	return new(big.Int).Set(v.num)
}

// Uint64 returns the numeric value if it fits into 64 bits.
func (v Value) Uint64() (uint64, bool) {
	if v.num == nil || !v.num.IsUint64() {
		return 0, false
	}
	return v.num.Uint64(), true
}

// Bytes returns a copy of the byte string or nil for numeric values.
func (v Value) Bytes() []byte {
	return bytes.Clone(v.bytes)
}

// Equal compares two values.
func (v Value) Equal(o Value) bool {
	switch {
	case v.num != nil && o.num != nil:
		return v.num.Cmp(o.num) == 0
	case v.bytes != nil && o.bytes != nil:
		return bytes.Equal(v.bytes, o.bytes)
	}
	return v.IsZero() && o.IsZero()
}

// String implements the fmt.Stringer interface.
func (v Value) String() string {
	switch {
	case v.num != nil:
		return v.num.String()
	case v.bytes != nil:
		return hexutil.Encode(v.bytes)
	}
	return "<nil>"
}

// MarshalJSON writes numbers as bare JSON numbers and byte strings as 0x
// prefixed hex strings.
func (v Value) MarshalJSON() ([]byte, error) {
	switch {
	case v.num != nil:
		return []byte(v.num.String()), nil
	case v.bytes != nil:
		return json.Marshal(hexutil.Encode(v.bytes))
	}
	return []byte("null"), nil
}

// UnmarshalJSON accepts bare integers, quoted decimal integers for values
// that exceed the JSON number range, and 0x prefixed hex strings which are
// always treated as byte strings.
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return errors.New("parameter value can't be null")
	}

	if data[0] != '"' {
		n, ok := new(big.Int).SetString(string(data), 10)
		if !ok {
			return fmt.Errorf("parameter value %s is not an integer", data)
		}
		*v = Value{num: n}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		b, err := hexutil.Decode(s)
		if err != nil {
			return fmt.Errorf("parameter value %q: %w", s, err)
		}
		*v = Value{bytes: b}
		return nil
	}

	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return fmt.Errorf("parameter value %q is not an integer", s)
	}
	*v = Value{num: n}

	return nil
}

// =============================================================================

// Set represents a named set of parameter values.
type Set map[string]Value

// Clone returns a copy of the set.
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}

	cpy := make(Set, len(s))
	for name, value := range s {
		cpy[name] = value
	}
	return cpy
}

// Names returns the sorted parameter names in the set.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// =============================================================================

// Layer represents one source of parameter values in a merge.
type Layer struct {
	Source string
	Set    Set
}

// Table represents the effective parameter values after a merge. A Table is
// immutable once constructed.
type Table struct {
	values  Set
	sources map[string]string
}

// Merge applies the layers in order. The last layer to write a name wins.
func Merge(layers ...Layer) Table {
	tbl := Table{
		values:  make(Set),
		sources: make(map[string]string),
	}

	for _, layer := range layers {
		for name, value := range layer.Set {
			tbl.values[name] = value
			tbl.sources[name] = layer.Source
		}
	}

	return tbl
}

// Get returns the value for the specified name.
func (t Table) Get(name string) (Value, error) {
	value, exists := t.values[name]
	if !exists {
		return Value{}, fmt.Errorf("%w: %q", ErrParameterNotDefined, name)
	}
	return value, nil
}

// Source returns the name of the layer that supplied the value.
func (t Table) Source(name string) (string, bool) {
	src, exists := t.sources[name]
	return src, exists
}

// Names returns the sorted set of defined parameter names.
func (t Table) Names() []string {
	return t.values.Names()
}

// Values returns a copy of all the merged values.
func (t Table) Values() Set {
	return t.values.Clone()
}

// Len returns the number of defined parameters.
func (t Table) Len() int {
	return len(t.values)
}
