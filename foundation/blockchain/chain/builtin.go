package chain

import (
	"math/big"

	"github.com/ardanlabs/chainrules/foundation/blockchain/hardfork"
	"github.com/ardanlabs/chainrules/foundation/blockchain/timeline"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Set of built-in chain names.
const (
	Mainnet = "mainnet"
	Sepolia = "sepolia"
	Holesky = "holesky"
)

var builtins = []Descriptor{
	{
		Name:            Mainnet,
		ChainID:         big.NewInt(1),
		Comment:         "The Ethereum main chain",
		URL:             "https://ethstats.net/",
		DefaultHardfork: hardfork.Prague,
		Genesis: Genesis{
			Hash:       common.HexToHash("0xd4e56740f876aef8c010b86a40d5f56745a118d0906a34e69aec8c0db1cb8fa3"),
			GasLimit:   5000,
			Difficulty: big.NewInt(17179869184),
			Nonce:      hexutil.MustDecode("0x0000000000000042"),
			ExtraData:  hexutil.MustDecode("0x11bbe8db4e347b4e8c937c1c8370e4b5ed33adb3db69cbdb7a38e1e50b1b82fa"),
		},
		Consensus: Consensus{Type: ProofOfStake, Algorithm: "casper"},
		Timeline: timeline.New(
			block(hardfork.Chainstart, 0),
			block(hardfork.Homestead, 1_150_000),
			block(hardfork.Dao, 1_920_000),
			block(hardfork.TangerineWhistle, 2_463_000),
			block(hardfork.SpuriousDragon, 2_675_000),
			block(hardfork.Byzantium, 4_370_000),
			block(hardfork.Constantinople, 7_280_000),
			block(hardfork.Petersburg, 7_280_000),
			block(hardfork.Istanbul, 9_069_000),
			block(hardfork.MuirGlacier, 9_200_000),
			block(hardfork.Berlin, 12_244_000),
			block(hardfork.London, 12_965_000),
			block(hardfork.ArrowGlacier, 13_773_000),
			block(hardfork.GrayGlacier, 15_050_000),
			block(hardfork.Paris, 15_537_394),
			pending(hardfork.MergeNetsplitBlock),
			at(hardfork.Shanghai, 1_681_338_455),
			at(hardfork.Cancun, 1_710_338_135),
			at(hardfork.Prague, 1_746_612_311),
			at(hardfork.Osaka, 1_764_798_551),
		),
		DepositContract: address("0x00000000219ab540356cBB839Cbe05303d7705Fa"),
		BootstrapNodes: []BootstrapNode{
			{IP: "18.138.108.67", Port: 30303, ID: "d860a01f9722d78051619d1e2351aba3f43f943f6f00718d1b9baa4101932a1f5011f16bb2b1bb35db20d6fe28fa0bf09636d26a87d31de9ec6203eeedb1f666", Location: "ap-southeast-1-001", Comment: "bootnode-aws-ap-southeast-1-001"},
			{IP: "3.209.45.79", Port: 30303, ID: "22a8232c3abc76a16ae9d6c3b164f98775fe226f0917b0ca871128a74a8e9630b458460865bab457221f1d448dd9791d24c4e5d88786180ac185df813a68d4de", Location: "us-east-1-001", Comment: "bootnode-aws-us-east-1-001"},
			{IP: "65.108.70.101", Port: 30303, ID: "2b252ab6a1d0f971d9722cb839a42cb81db019ba44c08754628ab4a823487071b5695317c8ccd085219c3a03af063495b2f1da8d18218da2d6a82981b45e6ffc", Location: "eu-west-1-001", Comment: "bootnode-hetzner-hel"},
			{IP: "157.90.35.166", Port: 30303, ID: "4aeb4ab6c14b23e2c4cfdce879c04b0748a20d8e9b59e25ded2a08143e265c6c25936e74cbc8e641e3312ca288673d91f2f93f8e277de3cfa444ecdaaf982052", Location: "eu-central-1-001", Comment: "bootnode-hetzner-fsn"},
		},
	},
	{
		Name:            Sepolia,
		ChainID:         big.NewInt(11155111),
		Comment:         "PoW test network to replace Ropsten",
		URL:             "https://github.com/ethereum/go-ethereum/pull/23730",
		DefaultHardfork: hardfork.Prague,
		Genesis: Genesis{
			Hash:       common.HexToHash("0x25a5cc106eea7138acab33231d7160d69cb777ee0c2c553fcddf5138993e6dd9"),
			Timestamp:  1_633_267_481,
			GasLimit:   30_000_000,
			Difficulty: big.NewInt(131072),
			Nonce:      hexutil.MustDecode("0x0000000000000000"),
			ExtraData:  hexutil.MustDecode("0x5365706f6c69612c20417468656e732c204174746963612c2047726565636521"),
		},
		Consensus: Consensus{Type: ProofOfStake, Algorithm: "casper"},
		Timeline: timeline.New(
			block(hardfork.Chainstart, 0),
			block(hardfork.Homestead, 0),
			block(hardfork.TangerineWhistle, 0),
			block(hardfork.SpuriousDragon, 0),
			block(hardfork.Byzantium, 0),
			block(hardfork.Constantinople, 0),
			block(hardfork.Petersburg, 0),
			block(hardfork.Istanbul, 0),
			block(hardfork.MuirGlacier, 0),
			block(hardfork.Berlin, 0),
			block(hardfork.London, 0),
			block(hardfork.Paris, 1_450_409),
			block(hardfork.MergeNetsplitBlock, 1_735_371),
			at(hardfork.Shanghai, 1_677_557_088),
			at(hardfork.Cancun, 1_706_655_072),
			at(hardfork.Prague, 1_741_159_776),
			at(hardfork.Osaka, 1_760_427_360),
		),
		DepositContract: address("0x7f02C3E3c98b133055B8B348B2Ac625669Ed295D"),
		BootstrapNodes: []BootstrapNode{
			{IP: "138.197.51.181", Port: 30303, ID: "4e5e92199ee224a01932a377160aa432f31d0b351f84ab413a8e0a42f4f36476f8fb1cbe914af0d9aef0d51665c214cf653c651c4bbd9d5550a934f241f1682b", Location: "nyc3", Comment: "sepolia-bootnode-1-nyc3"},
			{IP: "146.190.1.103", Port: 30303, ID: "143e11fb766781d22d92a2e33f8f104cddae4411a122295ed1fdb6638de96a6ce65f5b7c964ba3763bba27961738fef7d3ecc739268f3e5e771fb4c87b6234ba", Location: "sfo3", Comment: "sepolia-bootnode-1-sfo3"},
			{IP: "170.64.250.88", Port: 30303, ID: "8b61dc2d06c3f96fddcbebb0efb29d60d3598650275dc469c22229d3e5620369b0d3dedafd929835fe7f489618f19f456fe7c0df572bf2d914a9f4e006f783a9", Location: "syd1", Comment: "sepolia-bootnode-1-syd1"},
			{IP: "139.59.49.206", Port: 30303, ID: "10d62eff032205fcef19497f35ca8477bea0eadfff6d769a147e895d8b2b8f8ae6341630c645c30f5df6e67547c03494ced3d9c5764e8622a26587b083b028e8", Location: "blr1", Comment: "sepolia-bootnode-1-blr1"},
			{IP: "138.68.123.152", Port: 30303, ID: "9e9492e2e8836114cc75f5b929784f4f46c324ad01daf87d956f98b3b6c5fcba95524d6e5cf9861dc96a2c8a171ea7105bb554a197455058de185fa870970c7c", Location: "ams3", Comment: "sepolia-bootnode-1-ams3"},
		},
	},
	{
		Name:            Holesky,
		ChainID:         big.NewInt(17000),
		Comment:         "PoS test network to replace Goerli",
		URL:             "https://github.com/eth-clients/holesky/",
		DefaultHardfork: hardfork.Prague,
		Genesis: Genesis{
			Hash:       common.HexToHash("0xb5f7f912443c940f21fd611f12828d75b534364ed9e95ca4e307729a4661bde4"),
			Timestamp:  1_695_902_100,
			GasLimit:   25_000_000,
			Difficulty: big.NewInt(1),
			Nonce:      hexutil.MustDecode("0x0000000000001234"),
			ExtraData:  hexutil.Bytes{},
		},
		Consensus: Consensus{Type: ProofOfStake, Algorithm: "casper"},
		Timeline: timeline.New(
			block(hardfork.Chainstart, 0),
			block(hardfork.Homestead, 0),
			block(hardfork.TangerineWhistle, 0),
			block(hardfork.SpuriousDragon, 0),
			block(hardfork.Byzantium, 0),
			block(hardfork.Constantinople, 0),
			block(hardfork.Petersburg, 0),
			block(hardfork.Istanbul, 0),
			block(hardfork.Berlin, 0),
			block(hardfork.London, 0),
			block(hardfork.Paris, 0),
			block(hardfork.MergeNetsplitBlock, 0),
			at(hardfork.Shanghai, 1_696_000_704),
			at(hardfork.Cancun, 1_707_305_664),
			at(hardfork.Prague, 1_740_434_112),
			at(hardfork.Osaka, 1_759_308_480),
		),
		DepositContract: address("0x4242424242424242424242424242424242424242"),
		BootstrapNodes: []BootstrapNode{
			{IP: "146.190.13.128", Port: 30303, ID: "ac906289e4b7f12df423d654c5a962b6ebe5b3a74cc9e06292a85221f9a64a6f1cfdd6b714ed6dacef51578f92b34c60ee91e9ede9c7f8fadc4d347326d95e2b", Location: "ams3", Comment: "bootnode 1"},
			{IP: "178.128.136.233", Port: 30303, ID: "a3435a0155a3e837c02f5e7f5662a2f1fbc25b48e4dc232016e1c51b544cb5b4510ef633ea3278c0e970fa8ad8141e2d4d0f9f95456c537ff05fdf9b31c15072", Location: "ams3", Comment: "bootnode 2"},
		},
	},
}

func block(name string, n uint64) timeline.Record {
	return timeline.NewRecord(name, &n, nil)
}

func at(name string, t uint64) timeline.Record {
	return timeline.NewRecord(name, nil, &t)
}

func pending(name string) timeline.Record {
	return timeline.NewRecord(name, nil, nil)
}

func address(hex string) *common.Address {
	addr := common.HexToAddress(hex)
	return &addr
}

// Builtin returns copies of the built-in chain descriptors.
func Builtin() []Descriptor {
	out := make([]Descriptor, len(builtins))
	for i, d := range builtins {
		out[i] = d.Clone()
	}
	return out
}
