package params_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/ardanlabs/chainrules/foundation/blockchain/params"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func TestMerge(t *testing.T) {
	type table struct {
		name   string
		layers []params.Layer
		param  string
		exp    uint64
		source string
	}

	tt := []table{
		{
			name: "base",
			layers: []params.Layer{
				{Source: "base", Set: params.Set{"txGas": params.Uint64(21000)}},
			},
			param:  "txGas",
			exp:    21000,
			source: "base",
		},
		{
			name: "last-wins",
			layers: []params.Layer{
				{Source: "base", Set: params.Set{"sloadGas": params.Uint64(50)}},
				{Source: "hardfork:tangerineWhistle", Set: params.Set{"sloadGas": params.Uint64(200)}},
				{Source: "eip:1884", Set: params.Set{"sloadGas": params.Uint64(800)}},
			},
			param:  "sloadGas",
			exp:    800,
			source: "eip:1884",
		},
		{
			name: "untouched",
			layers: []params.Layer{
				{Source: "base", Set: params.Set{"txGas": params.Uint64(21000), "sloadGas": params.Uint64(50)}},
				{Source: "eip:1884", Set: params.Set{"sloadGas": params.Uint64(800)}},
			},
			param:  "txGas",
			exp:    21000,
			source: "base",
		},
	}

	t.Log("Given the need to merge parameter layers.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen handling layers for %q.", testID, tst.name)
			{
				f := func(t *testing.T) {
					tbl := params.Merge(tst.layers...)

					v, err := tbl.Get(tst.param)
					if err != nil {
						t.Fatalf("\t%s\tTest %d:\tShould be able to get the parameter: %v", failed, testID, err)
					}
					t.Logf("\t%s\tTest %d:\tShould be able to get the parameter.", success, testID)

					got, ok := v.Uint64()
					if !ok || got != tst.exp {
						t.Logf("\t%s\tTest %d:\tgot: %d", failed, testID, got)
						t.Logf("\t%s\tTest %d:\texp: %d", failed, testID, tst.exp)
						t.Fatalf("\t%s\tTest %d:\tShould get back the right value.", failed, testID)
					}
					t.Logf("\t%s\tTest %d:\tShould get back the right value.", success, testID)

					src, _ := tbl.Source(tst.param)
					if src != tst.source {
						t.Logf("\t%s\tTest %d:\tgot: %s", failed, testID, src)
						t.Logf("\t%s\tTest %d:\texp: %s", failed, testID, tst.source)
						t.Fatalf("\t%s\tTest %d:\tShould get back the right source.", failed, testID)
					}
					t.Logf("\t%s\tTest %d:\tShould get back the right source.", success, testID)
				}

				t.Run(tst.name, f)
			}
		}
	}
}

func TestNotDefined(t *testing.T) {
	t.Log("Given the need to reject unknown parameter names.")
	{
		tbl := params.Merge(params.Layer{Source: "base", Set: params.Base()})

		_, err := tbl.Get("stop")
		if !errors.Is(err, params.ErrParameterNotDefined) {
			t.Logf("\t%s\tgot: %v", failed, err)
			t.Fatalf("\t%s\tShould get back ErrParameterNotDefined.", failed)
		}
		t.Logf("\t%s\tShould get back ErrParameterNotDefined.", success)
	}
}

func TestValueJSON(t *testing.T) {
	type table struct {
		name    string
		data    string
		isBytes bool
		exp     string
	}

	tt := []table{
		{name: "number", data: `10`, exp: "10"},
		{name: "quoted", data: `"5000000000000000000"`, exp: "5000000000000000000"},
		{name: "bytes", data: `"0x0000f90827f1c53a10cb7a02335b175320002935"`, isBytes: true, exp: "0x0000f90827f1c53a10cb7a02335b175320002935"},
	}

	t.Log("Given the need to decode parameter values.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen handling a %s value.", testID, tst.name)
			{
				f := func(t *testing.T) {
					var v params.Value
					if err := json.Unmarshal([]byte(tst.data), &v); err != nil {
						t.Fatalf("\t%s\tTest %d:\tShould be able to decode the value: %v", failed, testID, err)
					}
					t.Logf("\t%s\tTest %d:\tShould be able to decode the value.", success, testID)

					if v.IsBytes() != tst.isBytes || v.String() != tst.exp {
						t.Logf("\t%s\tTest %d:\tgot: %s", failed, testID, v)
						t.Logf("\t%s\tTest %d:\texp: %s", failed, testID, tst.exp)
						t.Fatalf("\t%s\tTest %d:\tShould get back the right value.", failed, testID)
					}
					t.Logf("\t%s\tTest %d:\tShould get back the right value.", success, testID)
				}

				t.Run(tst.name, f)
			}
		}
	}

	t.Log("Given the need to reject malformed values.")
	{
		var v params.Value
		for _, data := range []string{`1.5`, `null`, `"abc"`, `"0xzz"`} {
			if err := json.Unmarshal([]byte(data), &v); err == nil {
				t.Fatalf("\t%s\tShould reject %s.", failed, data)
			}
			t.Logf("\t%s\tShould reject %s.", success, data)
		}
	}
}
