package timeline_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/ardanlabs/chainrules/foundation/blockchain/hardfork"
	"github.com/ardanlabs/chainrules/foundation/blockchain/timeline"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func decode(t *testing.T, doc string) timeline.Timeline {
	var tl timeline.Timeline
	if err := json.Unmarshal([]byte(doc), &tl); err != nil {
		t.Fatalf("\t%s\tShould be able to decode the timeline: %v", failed, err)
	}
	return tl
}

func TestActive(t *testing.T) {
	type table struct {
		name   string
		doc    string
		points []timeline.Point
		want   []string
	}

	tt := []table{
		{
			name:   "pending",
			doc:    `[{"name":"chainstart","block":0},{"name":"homestead","block":null},{"name":"tangerineWhistle","block":10}]`,
			points: []timeline.Point{timeline.At(10), timeline.At(3), timeline.At(0), timeline.At(1_000)},
			want:   []string{"tangerineWhistle", "chainstart", "chainstart", "tangerineWhistle"},
		},
		{
			name: "timestamp",
			doc:  `[{"name":"chainstart","block":0},{"name":"berlin","block":null,"timestamp":999},{"name":"testUpgrade","block":null,"timestamp":1000}]`,
			points: []timeline.Point{
				timeline.AtTime(1, 999),
				timeline.AtTime(1, 1000),
				timeline.AtTime(1, 998),
				timeline.At(1),
			},
			want: []string{"berlin", "testUpgrade", "chainstart", "chainstart"},
		},
		{
			name: "supersede",
			doc:  `[{"name":"chainstart","block":0},{"name":"london","block":5},{"name":"paris","block":5,"timestamp":50}]`,
			points: []timeline.Point{
				timeline.AtTime(5, 49),
				timeline.AtTime(5, 50),
				timeline.At(5),
				timeline.AtTime(4, 50),
			},
			want: []string{"london", "paris", "london", "chainstart"},
		},
		{
			name:   "fallback",
			doc:    `[{"name":"london","block":100},{"name":"paris","block":200}]`,
			points: []timeline.Point{timeline.At(0), timeline.At(150), timeline.At(250)},
			want:   []string{"london", "london", "paris"},
		},
	}

	t.Log("Given the need to resolve the active record for a point.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen handling a %s timeline.", testID, tst.name)
			{
				f := func(t *testing.T) {
					tl := decode(t, tst.doc)

					for i, p := range tst.points {
						rec, _ := tl.Active(p)
						if rec.Name != tst.want[i] {
							t.Logf("\t%s\tTest %d:\tgot: %s", failed, testID, rec.Name)
							t.Logf("\t%s\tTest %d:\texp: %s", failed, testID, tst.want[i])
							t.Fatalf("\t%s\tTest %d:\tShould resolve %s to %s.", failed, testID, p, tst.want[i])
						}
						t.Logf("\t%s\tTest %d:\tShould resolve %s to %s.", success, testID, p, tst.want[i])
					}
				}

				t.Run(tst.name, f)
			}
		}
	}
}

func TestRoundTrip(t *testing.T) {
	t.Log("Given the need to resolve each record at its own activation point.")
	{
		doc := `[
			{"name":"chainstart","block":0},
			{"name":"homestead","block":3},
			{"name":"tangerineWhistle","block":10},
			{"name":"london","block":20,"timestamp":100},
			{"name":"shanghai","block":null,"timestamp":200}
		]`
		tl := decode(t, doc)

		for _, rec := range tl.Records() {
			var p timeline.Point
			if n, ok := rec.Condition.Block(); ok {
				p.Number = n
			} else {
				p.Number = 20
			}
			if ts, ok := rec.Condition.Timestamp(); ok {
				p.Timestamp = &ts
			}

			got, _ := tl.Active(p)
			if got.Name != rec.Name {
				t.Fatalf("\t%s\tShould resolve %s to %s, got %s.", failed, p, rec.Name, got.Name)
			}
			t.Logf("\t%s\tShould resolve %s to %s.", success, p, rec.Name)
		}
	}
}

func TestDecode(t *testing.T) {
	t.Log("Given the need to decode activation records.")
	{
		var rec timeline.Record
		err := json.Unmarshal([]byte(`{"name":"homestead"}`), &rec)
		if !errors.Is(err, timeline.ErrMissingActivationCondition) {
			t.Logf("\t%s\tgot: %v", failed, err)
			t.Fatalf("\t%s\tShould reject a record with no block.", failed)
		}
		t.Logf("\t%s\tShould reject a record with no block.", success)

		if err := json.Unmarshal([]byte(`{"name":"homestead","block":null}`), &rec); err != nil {
			t.Fatalf("\t%s\tShould accept a null block: %v", failed, err)
		}
		if _, ok := rec.Condition.(timeline.Pending); !ok {
			t.Fatalf("\t%s\tShould treat a null block as pending.", failed)
		}
		t.Logf("\t%s\tShould treat a null block as pending.", success)

		if err := json.Unmarshal([]byte(`{"name":"dao","block":"0x1d4c00"}`), &rec); err != nil {
			t.Fatalf("\t%s\tShould accept a hex block: %v", failed, err)
		}
		if n, _ := rec.Condition.Block(); n != 1920000 {
			t.Fatalf("\t%s\tShould decode a hex block, got %d.", failed, n)
		}
		t.Logf("\t%s\tShould decode a hex block.", success)

		for _, doc := range []string{`{"block":1}`, `{"name":"x","block":-1}`, `{"name":"x","block":1,"timestamp":"abc"}`} {
			if err := json.Unmarshal([]byte(doc), &rec); !errors.Is(err, timeline.ErrInvalidRecord) {
				t.Fatalf("\t%s\tShould reject %s: %v", failed, doc, err)
			}
			t.Logf("\t%s\tShould reject %s.", success, doc)
		}

		var tl timeline.Timeline
		err = json.Unmarshal([]byte(`[{"name":"chainstart","block":0},{"name":"homestead"}]`), &tl)
		if !errors.Is(err, timeline.ErrMissingActivationCondition) {
			t.Fatalf("\t%s\tShould reject a timeline holding a record with no block: %v", failed, err)
		}
		t.Logf("\t%s\tShould reject a timeline holding a record with no block.", success)
	}

	t.Log("Given the need to encode activation records.")
	{
		tl := timeline.New(
			timeline.NewRecord("chainstart", ptr(0), nil),
			timeline.NewRecord("homestead", nil, nil),
			timeline.NewRecord("shanghai", nil, ptr(1681338455)),
		)

		data, err := json.Marshal(tl)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to encode the timeline: %v", failed, err)
		}

		exp := `[{"name":"chainstart","block":0},{"name":"homestead","block":null},{"name":"shanghai","block":null,"timestamp":1681338455}]`
		if string(data) != exp {
			t.Logf("\t%s\tgot: %s", failed, data)
			t.Logf("\t%s\texp: %s", failed, exp)
			t.Fatalf("\t%s\tShould encode the none gate as null.", failed)
		}
		t.Logf("\t%s\tShould encode the none gate as null.", success)
	}
}

func TestValidate(t *testing.T) {
	t.Log("Given the need to validate a timeline against the catalog.")
	{
		cat, err := hardfork.NewCatalog(nil)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to construct the catalog: %v", failed, err)
		}

		good := decode(t, `[{"name":"chainstart","block":0},{"name":"berlin","block":5}]`)
		if err := good.Validate(cat); err != nil {
			t.Fatalf("\t%s\tShould accept known hardforks: %v", failed, err)
		}
		t.Logf("\t%s\tShould accept known hardforks.", success)

		bad := decode(t, `[{"name":"chainstart","block":0},{"name":"testUpgrade","block":null,"timestamp":1000}]`)
		if err := bad.Validate(cat); !errors.Is(err, hardfork.ErrUnknownUpgrade) {
			t.Fatalf("\t%s\tShould reject an unknown hardfork: %v", failed, err)
		}
		t.Logf("\t%s\tShould reject an unknown hardfork.", success)
	}
}

func TestNext(t *testing.T) {
	t.Log("Given the need to find the next scheduled record.")
	{
		tl := decode(t, `[{"name":"chainstart","block":0},{"name":"homestead","block":null},{"name":"dao","block":10}]`)

		rec, idx, ok := tl.Next(0)
		if !ok || rec.Name != "dao" || idx != 2 {
			t.Fatalf("\t%s\tShould skip pending records, got %v.", failed, rec)
		}
		t.Logf("\t%s\tShould skip pending records.", success)

		if _, _, ok := tl.Next(2); ok {
			t.Fatalf("\t%s\tShould report no record after the last.", failed)
		}
		t.Logf("\t%s\tShould report no record after the last.", success)
	}
}

func ptr(v uint64) *uint64 {
	return &v
}
