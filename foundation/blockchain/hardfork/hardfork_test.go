package hardfork_test

import (
	"errors"
	"testing"

	"github.com/ardanlabs/chainrules/foundation/blockchain/hardfork"
	"github.com/ardanlabs/chainrules/foundation/blockchain/params"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func TestBuiltinEIPs(t *testing.T) {
	type table struct {
		name     string
		hardfork string
		active   []int
		inactive []int
	}

	tt := []table{
		{name: "chainstart", hardfork: hardfork.Chainstart, active: []int{1}, inactive: []int{2, 1559}},
		{name: "constantinople", hardfork: hardfork.Constantinople, active: []int{1, 150, 1283}},
		{name: "petersburg", hardfork: hardfork.Petersburg, active: []int{1014, 1052}, inactive: []int{1283}},
		{name: "london", hardfork: hardfork.London, active: []int{1559, 2929, 3529}, inactive: []int{4895}},
		{name: "cancun", hardfork: hardfork.Cancun, active: []int{4788, 4844, 4895}, inactive: []int{7685}},
		{name: "prague", hardfork: hardfork.Prague, active: []int{2935, 7685, 7702}},
	}

	t.Log("Given the need to know the EIPs of the built-in hardforks.")
	{
		cat, err := hardfork.NewCatalog(nil)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to construct the catalog: %v", failed, err)
		}
		t.Logf("\t%s\tShould be able to construct the catalog.", success)

		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen handling hardfork %q.", testID, tst.hardfork)
			{
				f := func(t *testing.T) {
					def, err := cat.Lookup(tst.hardfork)
					if err != nil {
						t.Fatalf("\t%s\tTest %d:\tShould be able to lookup the hardfork: %v", failed, testID, err)
					}
					t.Logf("\t%s\tTest %d:\tShould be able to lookup the hardfork.", success, testID)

					for _, id := range tst.active {
						if !def.HasEIP(id) {
							t.Fatalf("\t%s\tTest %d:\tShould have EIP %d active.", failed, testID, id)
						}
						t.Logf("\t%s\tTest %d:\tShould have EIP %d active.", success, testID, id)
					}

					for _, id := range tst.inactive {
						if def.HasEIP(id) {
							t.Fatalf("\t%s\tTest %d:\tShould not have EIP %d active.", failed, testID, id)
						}
						t.Logf("\t%s\tTest %d:\tShould not have EIP %d active.", success, testID, id)
					}
				}

				t.Run(tst.name, f)
			}
		}
	}
}

func TestCustom(t *testing.T) {
	t.Log("Given the need to overlay custom hardforks.")
	{
		custom := map[string]hardfork.Definition{
			"stop10Gas": {
				EIPs:   []int{2935},
				Params: params.Set{"stop": params.Uint64(10)},
			},
		}

		cat, err := hardfork.NewCatalog(custom)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to construct the catalog: %v", failed, err)
		}
		t.Logf("\t%s\tShould be able to construct the catalog.", success)

		def, err := cat.Lookup("stop10Gas")
		if err != nil {
			t.Fatalf("\t%s\tShould be able to lookup the custom hardfork: %v", failed, err)
		}
		t.Logf("\t%s\tShould be able to lookup the custom hardfork.", success)

		if def.Name != "stop10Gas" || !cat.IsCustom("stop10Gas") {
			t.Fatalf("\t%s\tShould name the custom hardfork by its key.", failed)
		}
		t.Logf("\t%s\tShould name the custom hardfork by its key.", success)

		if !def.HasEIP(2935) || def.HasEIP(1) {
			t.Fatalf("\t%s\tShould take the custom EIPs literally.", failed)
		}
		t.Logf("\t%s\tShould take the custom EIPs literally.", success)

		layers := def.Layers()
		if len(layers) != 2 || layers[0].Source != "hardfork:stop10Gas" || layers[1].Source != "eip:2935" {
			t.Logf("\t%s\tgot: %v", failed, layers)
			t.Fatalf("\t%s\tShould layer hardfork overrides before EIP overlays.", failed)
		}
		t.Logf("\t%s\tShould layer hardfork overrides before EIP overlays.", success)

		names := cat.Names()
		if names[len(names)-1] != "stop10Gas" {
			t.Fatalf("\t%s\tShould list custom hardforks after built-ins.", failed)
		}
		t.Logf("\t%s\tShould list custom hardforks after built-ins.", success)
	}

	t.Log("Given the need to reject invalid custom hardforks.")
	{
		bad := []map[string]hardfork.Definition{
			{"london": {EIPs: []int{1}}},
			{"mine": {Name: "other"}},
			{"": {}},
		}

		for _, custom := range bad {
			_, err := hardfork.NewCatalog(custom)
			if !errors.Is(err, hardfork.ErrInvalidDefinition) {
				t.Logf("\t%s\tgot: %v", failed, err)
				t.Fatalf("\t%s\tShould reject %v.", failed, custom)
			}
			t.Logf("\t%s\tShould reject %v: %v", success, custom, err)
		}
	}

	t.Log("Given the need to reject unknown hardforks.")
	{
		cat, _ := hardfork.NewCatalog(nil)
		if _, err := cat.Lookup("testUpgrade"); !errors.Is(err, hardfork.ErrUnknownUpgrade) {
			t.Fatalf("\t%s\tShould get back ErrUnknownUpgrade.", failed)
		}
		t.Logf("\t%s\tShould get back ErrUnknownUpgrade.", success)
	}
}

func TestDefault(t *testing.T) {
	t.Log("Given the need to know the fallback hardfork.")
	{
		defs := hardfork.Builtin()
		if hardfork.Default() != defs[len(defs)-1].Name || hardfork.Default() != hardfork.Osaka {
			t.Logf("\t%s\tgot: %s", failed, hardfork.Default())
			t.Fatalf("\t%s\tShould fall back to the most recent built-in.", failed)
		}
		t.Logf("\t%s\tShould fall back to the most recent built-in.", success)
	}
}

func TestLoad(t *testing.T) {
	t.Log("Given the need to load custom hardforks from a file.")
	{
		defs, err := hardfork.Load("testdata/custom.json")
		if err != nil {
			t.Fatalf("\t%s\tShould be able to load the file: %v", failed, err)
		}
		t.Logf("\t%s\tShould be able to load the file.", success)

		if defs["testUpgrade"].Name != "testUpgrade" || !defs["testUpgrade"].HasEIP(2935) {
			t.Fatalf("\t%s\tShould name definitions after their key.", failed)
		}
		t.Logf("\t%s\tShould name definitions after their key.", success)

		cat, err := hardfork.NewCatalog(defs)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to construct the catalog: %v", failed, err)
		}

		def, _ := cat.Lookup("stop10Gas")
		if n, _ := def.Params["stop"].Uint64(); n != 10 {
			t.Fatalf("\t%s\tShould decode the parameter overrides, got %d.", failed, n)
		}
		t.Logf("\t%s\tShould decode the parameter overrides.", success)

		if _, err := hardfork.Load("testdata/missing.json"); err == nil {
			t.Fatalf("\t%s\tShould fail on a missing file.", failed)
		}
		t.Logf("\t%s\tShould fail on a missing file.", success)
	}
}
