package params

// base represents the chain independent parameter defaults every table starts
// from. Values that change with a hardfork live with the EIP that changed
// them.
var base = Set{
	"gasLimitBoundDivisor": Uint64(1024),
	"minGasLimit":          Uint64(5000),
	"maxGasLimit":          Uint64(0x7fffffffffffffff),
	"genesisGasLimit":      Uint64(4712388),
	"maxExtraDataSize":     Uint64(32),
	"epochDuration":        Uint64(30000),
	"txGas":                Uint64(21000),
	"txCreationGas":        Uint64(21000),
	"txDataZeroGas":        Uint64(4),
	"txDataNonZeroGas":     Uint64(68),
	"callStipend":          Uint64(2300),
	"stackLimit":           Uint64(1024),
	"callCreateDepth":      Uint64(1024),
	"refundQuotient":       Uint64(2),
}

// Base returns a copy of the chain independent parameter defaults.
func Base() Set {
	return base.Clone()
}
