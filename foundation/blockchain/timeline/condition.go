package timeline

import "fmt"

// Point represents a position in chain history. Timestamp is optional since
// blocks before timestamp based activation don't need one.
type Point struct {
	Number    uint64
	Timestamp *uint64
}

// At constructs a point for the specified block number.
func At(number uint64) Point {
	return Point{Number: number}
}

// AtTime constructs a point for the specified block number and timestamp.
func AtTime(number uint64, timestamp uint64) Point {
	return Point{Number: number, Timestamp: &timestamp}
}

// String implements the fmt.Stringer interface.
func (p Point) String() string {
	if p.Timestamp == nil {
		return fmt.Sprintf("block:%d", p.Number)
	}
	return fmt.Sprintf("block:%d time:%d", p.Number, *p.Timestamp)
}

// =============================================================================

// Condition represents the gate for an activation record. The set of
// conditions is closed: BlockOnly, BlockAndTimestamp, TimestampOnly and
// Pending.
type Condition interface {
	Satisfied(p Point) bool
	Block() (uint64, bool)
	Timestamp() (uint64, bool)
	String() string

	condition()
}

// BlockOnly activates at the specified block number.
type BlockOnly struct {
	Number uint64
}

// Satisfied implements the Condition interface.
func (c BlockOnly) Satisfied(p Point) bool { return c.Number <= p.Number }

// Block implements the Condition interface.
func (c BlockOnly) Block() (uint64, bool) { return c.Number, true }

// Timestamp implements the Condition interface.
func (BlockOnly) Timestamp() (uint64, bool) { return 0, false }

func (c BlockOnly) String() string { return fmt.Sprintf("block:%d", c.Number) }
func (BlockOnly) condition()       {}

// BlockAndTimestamp activates once both the block number and the timestamp
// have been reached.
type BlockAndTimestamp struct {
	Number uint64
	Time   uint64
}

// Satisfied implements the Condition interface.
func (c BlockAndTimestamp) Satisfied(p Point) bool {
	return c.Number <= p.Number && p.Timestamp != nil && c.Time <= *p.Timestamp
}

// Block implements the Condition interface.
func (c BlockAndTimestamp) Block() (uint64, bool) { return c.Number, true }

// Timestamp implements the Condition interface.
func (c BlockAndTimestamp) Timestamp() (uint64, bool) { return c.Time, true }

func (c BlockAndTimestamp) String() string {
	return fmt.Sprintf("block:%d time:%d", c.Number, c.Time)
}
func (BlockAndTimestamp) condition() {}

// TimestampOnly has no block gate and activates at the specified timestamp.
type TimestampOnly struct {
	Time uint64
}

// Satisfied implements the Condition interface.
func (c TimestampOnly) Satisfied(p Point) bool {
	return p.Timestamp != nil && c.Time <= *p.Timestamp
}

// Block implements the Condition interface.
func (TimestampOnly) Block() (uint64, bool) { return 0, false }

// Timestamp implements the Condition interface.
func (c TimestampOnly) Timestamp() (uint64, bool) { return c.Time, true }

func (c TimestampOnly) String() string { return fmt.Sprintf("time:%d", c.Time) }
func (TimestampOnly) condition()       {}

// Pending is never satisfied. A pending record is only reachable by an
// explicit hardfork switch.
type Pending struct{}

// Satisfied implements the Condition interface.
func (Pending) Satisfied(Point) bool { return false }

// Block implements the Condition interface.
func (Pending) Block() (uint64, bool) { return 0, false }

// Timestamp implements the Condition interface.
func (Pending) Timestamp() (uint64, bool) { return 0, false }

func (Pending) String() string { return "pending" }
func (Pending) condition()     {}
