package hardfork

import (
	"sort"

	"github.com/ardanlabs/chainrules/foundation/blockchain/params"
)

// EIP represents an independently toggleable protocol feature along with the
// parameter overlay it applies when active.
type EIP struct {
	ID      int
	Comment string
	Params  params.Set
}

// eips is the set of known EIPs. An EIP listed by a definition but missing
// here is still activated, it just carries no parameters.
var eips = map[int]EIP{
	1:    {ID: 1, Comment: "Frontier rules"},
	2:    {ID: 2, Comment: "Homestead changes", Params: params.Set{"txCreationGas": params.Uint64(53000)}},
	7:    {ID: 7, Comment: "DELEGATECALL"},
	150:  {ID: 150, Comment: "Gas cost changes for IO-heavy operations", Params: params.Set{"sloadGas": params.Uint64(200), "callGas": params.Uint64(700), "balanceGas": params.Uint64(400), "extcodesizeGas": params.Uint64(700), "extcodecopyGas": params.Uint64(700), "selfdestructGas": params.Uint64(5000)}},
	155:  {ID: 155, Comment: "Simple replay attack protection"},
	160:  {ID: 160, Comment: "EXP cost increase", Params: params.Set{"expByteGas": params.Uint64(50)}},
	161:  {ID: 161, Comment: "State trie clearing"},
	170:  {ID: 170, Comment: "Contract code size limit", Params: params.Set{"maxCodeSize": params.Uint64(24576)}},
	140:  {ID: 140, Comment: "REVERT instruction"},
	196:  {ID: 196, Comment: "alt_bn128 addition and scalar multiplication", Params: params.Set{"bn254AddGas": params.Uint64(500), "bn254MulGas": params.Uint64(40000)}},
	197:  {ID: 197, Comment: "alt_bn128 pairing check", Params: params.Set{"bn254PairingGas": params.Uint64(100000), "bn254PairingWordGas": params.Uint64(80000)}},
	198:  {ID: 198, Comment: "Big integer modular exponentiation", Params: params.Set{"modexpGquaddivisor": params.Uint64(20)}},
	211:  {ID: 211, Comment: "RETURNDATASIZE and RETURNDATACOPY"},
	214:  {ID: 214, Comment: "STATICCALL"},
	649:  {ID: 649, Comment: "Byzantium difficulty bomb delay and block reward reduction", Params: params.Set{"difficultyBombDelay": params.Uint64(3000000), "minerReward": params.Big(ether(3))}},
	658:  {ID: 658, Comment: "Embedding transaction status code in receipts"},
	145:  {ID: 145, Comment: "Bitwise shifting instructions"},
	1014: {ID: 1014, Comment: "CREATE2", Params: params.Set{"create2Gas": params.Uint64(32000)}},
	1052: {ID: 1052, Comment: "EXTCODEHASH", Params: params.Set{"extcodehashGas": params.Uint64(400)}},
	1234: {ID: 1234, Comment: "Constantinople difficulty bomb delay and block reward adjustment", Params: params.Set{"difficultyBombDelay": params.Uint64(5000000), "minerReward": params.Big(ether(2))}},
	1283: {ID: 1283, Comment: "Net gas metering for SSTORE without dirty maps", Params: params.Set{"netSstoreNoopGas": params.Uint64(200), "netSstoreInitGas": params.Uint64(20000), "netSstoreCleanGas": params.Uint64(5000), "netSstoreDirtyGas": params.Uint64(200)}},
	152:  {ID: 152, Comment: "BLAKE2 compression function precompile", Params: params.Set{"blake2RoundGas": params.Uint64(1)}},
	1108: {ID: 1108, Comment: "Reduce alt_bn128 precompile gas costs", Params: params.Set{"bn254AddGas": params.Uint64(150), "bn254MulGas": params.Uint64(6000), "bn254PairingGas": params.Uint64(45000), "bn254PairingWordGas": params.Uint64(34000)}},
	1344: {ID: 1344, Comment: "ChainID opcode"},
	1884: {ID: 1884, Comment: "Repricing for trie-size-dependent opcodes", Params: params.Set{"sloadGas": params.Uint64(800), "balanceGas": params.Uint64(700), "extcodehashGas": params.Uint64(700)}},
	2028: {ID: 2028, Comment: "Transaction data gas cost reduction", Params: params.Set{"txDataNonZeroGas": params.Uint64(16)}},
	2200: {ID: 2200, Comment: "Structured definitions for net gas metering", Params: params.Set{"sstoreSentryGas": params.Uint64(2300), "sstoreSetGas": params.Uint64(20000), "sstoreResetGas": params.Uint64(5000), "sstoreClearRefundGas": params.Uint64(15000)}},
	2384: {ID: 2384, Comment: "Muir Glacier difficulty bomb delay", Params: params.Set{"difficultyBombDelay": params.Uint64(9000000)}},
	2565: {ID: 2565, Comment: "ModExp gas cost", Params: params.Set{"modexpGquaddivisor": params.Uint64(3)}},
	2718: {ID: 2718, Comment: "Typed transaction envelope"},
	2929: {ID: 2929, Comment: "Gas cost increases for state access opcodes", Params: params.Set{"coldsloadGas": params.Uint64(2100), "coldaccountaccessGas": params.Uint64(2600), "warmstoragereadGas": params.Uint64(100)}},
	2930: {ID: 2930, Comment: "Optional access lists", Params: params.Set{"accessListStorageKeyGas": params.Uint64(1900), "accessListAddressGas": params.Uint64(2400)}},
	1559: {ID: 1559, Comment: "Fee market change", Params: params.Set{"baseFeeMaxChangeDenominator": params.Uint64(8), "elasticityMultiplier": params.Uint64(2), "initialBaseFee": params.Uint64(1000000000)}},
	3198: {ID: 3198, Comment: "BASEFEE opcode"},
	3529: {ID: 3529, Comment: "Reduction in refunds", Params: params.Set{"refundQuotient": params.Uint64(5), "sstoreClearRefundGas": params.Uint64(4800)}},
	3541: {ID: 3541, Comment: "Reject new contracts starting with the 0xEF byte"},
	3554: {ID: 3554, Comment: "London difficulty bomb delay", Params: params.Set{"difficultyBombDelay": params.Uint64(9700000)}},
	4345: {ID: 4345, Comment: "Arrow Glacier difficulty bomb delay", Params: params.Set{"difficultyBombDelay": params.Uint64(10700000)}},
	5133: {ID: 5133, Comment: "Gray Glacier difficulty bomb delay", Params: params.Set{"difficultyBombDelay": params.Uint64(11400000)}},
	3675: {ID: 3675, Comment: "Upgrade consensus to Proof-of-Stake", Params: params.Set{"minerReward": params.Uint64(0)}},
	4399: {ID: 4399, Comment: "Supplant DIFFICULTY opcode with PREVRANDAO"},
	3651: {ID: 3651, Comment: "Warm COINBASE"},
	3855: {ID: 3855, Comment: "PUSH0 instruction"},
	3860: {ID: 3860, Comment: "Limit and meter initcode", Params: params.Set{"maxInitCodeSize": params.Uint64(49152), "initCodeWordGas": params.Uint64(2)}},
	4895: {ID: 4895, Comment: "Beacon chain push withdrawals as operations"},
	1153: {ID: 1153, Comment: "Transient storage opcodes", Params: params.Set{"tstoreGas": params.Uint64(100), "tloadGas": params.Uint64(100)}},
	4788: {ID: 4788, Comment: "Beacon block root in the EVM", Params: params.Set{"historicalRootsLength": params.Uint64(8191), "beaconRootsAddress": params.MustHex("0x000F3df6D732807Ef1319fB7B8bB8522d0Beac02")}},
	4844: {ID: 4844, Comment: "Shard blob transactions", Params: params.Set{"blobGasPerBlob": params.Uint64(131072), "targetBlobGasPerBlock": params.Uint64(393216), "maxBlobGasPerBlock": params.Uint64(786432), "blobGasPriceUpdateFraction": params.Uint64(3338477), "minBlobGas": params.Uint64(1)}},
	5656: {ID: 5656, Comment: "MCOPY memory copying instruction"},
	6780: {ID: 6780, Comment: "SELFDESTRUCT only in same transaction"},
	7516: {ID: 7516, Comment: "BLOBBASEFEE opcode"},
	2537: {ID: 2537, Comment: "Precompile for BLS12-381 curve operations", Params: params.Set{"bls12381G1AddGas": params.Uint64(375), "bls12381G2AddGas": params.Uint64(600), "bls12381MapG1Gas": params.Uint64(5500), "bls12381MapG2Gas": params.Uint64(23800)}},
	2935: {ID: 2935, Comment: "Serve historical block hashes from state", Params: params.Set{"historyStorageAddress": params.MustHex("0x0000F90827F1C53a10cb7A02335B175320002935"), "historyServeWindow": params.Uint64(8191)}},
	6110: {ID: 6110, Comment: "Supply validator deposits on chain", Params: params.Set{"depositRequestType": params.Uint64(0)}},
	7002: {ID: 7002, Comment: "Execution layer triggerable withdrawals", Params: params.Set{"withdrawalRequestPredeployAddress": params.MustHex("0x00000961Ef480Eb55e80D19ad83579A64c007002")}},
	7251: {ID: 7251, Comment: "Increase the MAX_EFFECTIVE_BALANCE", Params: params.Set{"consolidationRequestPredeployAddress": params.MustHex("0x0000BBdDc7CE488642fb579F8B00f3a590007251")}},
	7623: {ID: 7623, Comment: "Increase calldata cost", Params: params.Set{"totalCostFloorPerToken": params.Uint64(10)}},
	7685: {ID: 7685, Comment: "General purpose execution layer requests"},
	7691: {ID: 7691, Comment: "Blob throughput increase", Params: params.Set{"targetBlobGasPerBlock": params.Uint64(786432), "maxBlobGasPerBlock": params.Uint64(1179648), "blobGasPriceUpdateFraction": params.Uint64(5007716)}},
	7702: {ID: 7702, Comment: "Set EOA account code", Params: params.Set{"perAuthBaseGas": params.Uint64(12500), "perEmptyAccountCost": params.Uint64(25000)}},
	7825: {ID: 7825, Comment: "Transaction gas limit cap", Params: params.Set{"maxTxGas": params.Uint64(16777216)}},
	7934: {ID: 7934, Comment: "RLP execution block size limit", Params: params.Set{"maxRlpBlockSize": params.Uint64(8388608)}},
	7939: {ID: 7939, Comment: "Count leading zeros opcode"},
	7951: {ID: 7951, Comment: "Precompile for secp256r1 curve support", Params: params.Set{"p256VerifyGas": params.Uint64(6900)}},
}

// LookupEIP returns the known information for the specified EIP.
func LookupEIP(id int) (EIP, bool) {
	eip, exists := eips[id]
	if !exists {
		return EIP{}, false
	}

	eip.Params = eip.Params.Clone()
	return eip, true
}

// KnownEIPs returns the sorted set of EIP numbers with catalog entries.
func KnownEIPs() []int {
	ids := make([]int, 0, len(eips))
	for id := range eips {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
