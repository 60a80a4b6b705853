package chain

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"github.com/ardanlabs/chainrules/foundation/blockchain/hardfork"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ForkHash returns the EIP-2124 fork hash of the named hardfork: the CRC32
// checksum of the genesis hash followed by every distinct non zero activation
// block or timestamp up to and including the named hardfork. Paris is
// skipped since the merge was triggered by total difficulty.
func (d Descriptor) ForkHash(name string) (hexutil.Bytes, error) {
	if d.Timeline.Index(name) < 0 {
		return nil, fmt.Errorf("%w: %q is not scheduled on chain %q", hardfork.ErrUnknownUpgrade, name, d.Name)
	}

	hash := crc32.ChecksumIEEE(d.Genesis.Hash[:])

	var prev uint64
	for _, rec := range d.Timeline.Records() {
		at, ok := rec.Condition.Timestamp()
		if !ok {
			at, ok = rec.Condition.Block()
		}

		if ok && at != 0 && at != prev && rec.Name != hardfork.Paris {
			var buf [8]byte
			binary.BigEndian.PutUint64(buf[:], at)
			hash = crc32.Update(hash, crc32.IEEETable, buf[:])
			prev = at
		}

		if rec.Name == name {
			break
		}
	}

	var out [4]byte
	binary.BigEndian.PutUint32(out[:], hash)
	return out[:], nil
}
