// Package timeline implements the per chain activation timeline. A timeline
// is the declaration ordered list of hardfork activation records and answers
// which record is active at a given point in chain history.
package timeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/ardanlabs/chainrules/foundation/blockchain/hardfork"
	"github.com/ethereum/go-ethereum/common/math"
)

// Set of error variables for timelines.
var (
	ErrMissingActivationCondition = errors.New("missing activation condition")
	ErrInvalidRecord              = errors.New("invalid activation record")
)

// =============================================================================

// Record represents one activation point in a chain's timeline.
type Record struct {
	Name      string
	Condition Condition
}

// NewRecord constructs a record from the optional block and timestamp gates.
// A nil block is the explicit "none" gate.
func NewRecord(name string, block *uint64, timestamp *uint64) Record {
	var cond Condition
	switch {
	case block != nil && timestamp != nil:
		cond = BlockAndTimestamp{Number: *block, Time: *timestamp}
	case block != nil:
		cond = BlockOnly{Number: *block}
	case timestamp != nil:
		cond = TimestampOnly{Time: *timestamp}
	default:
		cond = Pending{}
	}

	return Record{Name: name, Condition: cond}
}

// String implements the fmt.Stringer interface.
func (r Record) String() string {
	return fmt.Sprintf("%s@%s", r.Name, r.Condition)
}

// record is the document form of a record.
type record struct {
	Name      string  `json:"name"`
	Block     *uint64 `json:"block"`
	Timestamp *uint64 `json:"timestamp,omitempty"`
}

// MarshalJSON writes the record in document form with the "none" block gate
// written as null.
func (r Record) MarshalJSON() ([]byte, error) {
	doc := record{Name: r.Name}

	if r.Condition != nil {
		if n, ok := r.Condition.Block(); ok {
			doc.Block = &n
		}
		if t, ok := r.Condition.Timestamp(); ok {
			doc.Timestamp = &t
		}
	}

	return json.Marshal(doc)
}

// UnmarshalJSON reads a record in document form. The block field must be
// present, either as an integer or as null. Unknown fields are ignored.
func (r *Record) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	var name string
	if raw, exists := fields["name"]; exists {
		if err := json.Unmarshal(raw, &name); err != nil {
			return fmt.Errorf("%w: name: %v", ErrInvalidRecord, err)
		}
	}
	if name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidRecord)
	}

	rawBlock, exists := fields["block"]
	if !exists {
		return fmt.Errorf("%w: %q has no block", ErrMissingActivationCondition, name)
	}

	var block *math.HexOrDecimal64
	if err := json.Unmarshal(rawBlock, &block); err != nil {
		return fmt.Errorf("%w: %q block: %v", ErrInvalidRecord, name, err)
	}

	var ts *math.HexOrDecimal64
	if raw, exists := fields["timestamp"]; exists {
		if err := json.Unmarshal(raw, &ts); err != nil {
			return fmt.Errorf("%w: %q timestamp: %v", ErrInvalidRecord, name, err)
		}
	}

	*r = NewRecord(name, (*uint64)(block), (*uint64)(ts))
	return nil
}

// =============================================================================

// Timeline represents the declaration ordered activation records of a chain.
// A Timeline is immutable and safe for concurrent use.
type Timeline struct {
	records []Record
}

// New constructs a timeline from the records in declaration order.
func New(records ...Record) Timeline {
	return Timeline{records: slices.Clone(records)}
}

// Records returns a copy of the records in declaration order.
func (tl Timeline) Records() []Record {
	return slices.Clone(tl.records)
}

// Len returns the number of records.
func (tl Timeline) Len() int {
	return len(tl.records)
}

// Active returns the record in effect at the specified point along with its
// index. The active record is the last record in declaration order whose
// condition is satisfied. Declaration order matters, a later timestamp gated
// record supersedes an earlier block gated record with an equal or higher
// block. When nothing is satisfied the first record is returned so block 0
// always resolves.
func (tl Timeline) Active(p Point) (Record, int) {
	if len(tl.records) == 0 {
		return Record{}, -1
	}

	idx := 0
	for i, rec := range tl.records {
		if rec.Condition.Satisfied(p) {
			idx = i
		}
	}

	return tl.records[idx], idx
}

// Find returns the first record with the specified name.
func (tl Timeline) Find(name string) (Record, bool) {
	idx := tl.Index(name)
	if idx < 0 {
		return Record{}, false
	}
	return tl.records[idx], true
}

// Index returns the position of the first record with the specified name
// or -1.
func (tl Timeline) Index(name string) int {
	return slices.IndexFunc(tl.records, func(rec Record) bool {
		return rec.Name == name
	})
}

// Next returns the first record declared after the specified index that is
// gated by a block or timestamp, along with its index. Pending records are
// skipped.
func (tl Timeline) Next(idx int) (Record, int, bool) {
	for i := idx + 1; i < len(tl.records); i++ {
		if _, ok := tl.records[i].Condition.(Pending); ok {
			continue
		}
		return tl.records[i], i, true
	}
	return Record{}, -1, false
}

// Validate checks every record names a hardfork the catalog knows.
func (tl Timeline) Validate(cat *hardfork.Catalog) error {
	for i, rec := range tl.records {
		if rec.Condition == nil {
			return fmt.Errorf("%w: record %d %q", ErrMissingActivationCondition, i, rec.Name)
		}
		if !cat.Has(rec.Name) {
			return fmt.Errorf("%w: record %d names %q which is not a built-in or custom hardfork", hardfork.ErrUnknownUpgrade, i, rec.Name)
		}
	}
	return nil
}

// MarshalJSON writes the timeline as an array of records.
func (tl Timeline) MarshalJSON() ([]byte, error) {
	if tl.records == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(tl.records)
}

// UnmarshalJSON reads an array of records.
func (tl *Timeline) UnmarshalJSON(data []byte) error {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return err
	}

	tl.records = records
	return nil
}
