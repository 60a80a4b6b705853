package hardfork

import (
	"math/big"

	"github.com/ardanlabs/chainrules/foundation/blockchain/params"
)

// Set of built-in hardfork names in the order they were defined.
const (
	Chainstart         = "chainstart"
	Homestead          = "homestead"
	Dao                = "dao"
	TangerineWhistle   = "tangerineWhistle"
	SpuriousDragon     = "spuriousDragon"
	Byzantium          = "byzantium"
	Constantinople     = "constantinople"
	Petersburg         = "petersburg"
	Istanbul           = "istanbul"
	MuirGlacier        = "muirGlacier"
	Berlin             = "berlin"
	London             = "london"
	ArrowGlacier       = "arrowGlacier"
	GrayGlacier        = "grayGlacier"
	MergeNetsplitBlock = "mergeNetsplitBlock"
	Paris              = "paris"
	Shanghai           = "shanghai"
	Cancun             = "cancun"
	Prague             = "prague"
	Osaka              = "osaka"
)

// change describes what a built-in hardfork adds to or removes from the rules
// of its predecessor.
type change struct {
	name    string
	eips    []int
	removes []int
	params  params.Set
}

var changes = []change{
	{
		name: Chainstart,
		eips: []int{1},
		params: params.Set{
			"minerReward":            params.Big(ether(5)),
			"minimumDifficulty":      params.Uint64(131072),
			"difficultyBoundDivisor": params.Uint64(2048),
			"durationLimit":          params.Uint64(13),
			"difficultyBombDelay":    params.Uint64(0),
		},
	},
	{name: Homestead, eips: []int{2, 7}},
	{name: Dao},
	{name: TangerineWhistle, eips: []int{150}},
	{name: SpuriousDragon, eips: []int{155, 160, 161, 170}},
	{name: Byzantium, eips: []int{140, 196, 197, 198, 211, 214, 649, 658}},
	{name: Constantinople, eips: []int{145, 1014, 1052, 1234, 1283}},
	{name: Petersburg, removes: []int{1283}},
	{name: Istanbul, eips: []int{152, 1108, 1344, 1884, 2028, 2200}},
	{name: MuirGlacier, eips: []int{2384}},
	{name: Berlin, eips: []int{2565, 2929, 2718, 2930}},
	{name: London, eips: []int{1559, 3198, 3529, 3541, 3554}},
	{name: ArrowGlacier, eips: []int{4345}},
	{name: GrayGlacier, eips: []int{5133}},
	{name: MergeNetsplitBlock},
	{name: Paris, eips: []int{3675, 4399}},
	{name: Shanghai, eips: []int{3651, 3855, 3860, 4895}},
	{name: Cancun, eips: []int{1153, 4788, 4844, 5656, 6780, 7516}},
	{name: Prague, eips: []int{2537, 2935, 6110, 7002, 7251, 7623, 7685, 7691, 7702}},
	{name: Osaka, eips: []int{7825, 7934, 7939, 7951}},
}

// builtins holds the definitions in definition order. Each built-in carries
// the complete set of EIPs and hardfork level parameters in force at that
// hardfork, folded from its predecessors.
var builtins = fold(changes)

func fold(changes []change) []Definition {
	defs := make([]Definition, 0, len(changes))

	var active []int
	prms := make(params.Set)

	for _, chg := range changes {
		active = remove(active, chg.removes)
		active = append(active, chg.eips...)

		for name, value := range chg.params {
			prms[name] = value
		}

		defs = append(defs, newDefinition(chg.name, append([]int(nil), active...), prms.Clone()))
	}

	return defs
}

func remove(eips []int, removes []int) []int {
	if len(removes) == 0 {
		return eips
	}

	drop := make(map[int]bool, len(removes))
	for _, id := range removes {
		drop[id] = true
	}

	var kept []int
	for _, id := range eips {
		if !drop[id] {
			kept = append(kept, id)
		}
	}
	return kept
}

func ether(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(1e18))
}

// Builtin returns the built-in definitions in the order they were defined.
func Builtin() []Definition {
	defs := make([]Definition, len(builtins))
	for i, def := range builtins {
		defs[i] = def.clone()
	}
	return defs
}

// Default returns the most recently defined built-in hardfork. It is used
// when neither the caller nor the chain names a hardfork.
func Default() string {
	return builtins[len(builtins)-1].Name
}
