package errs_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/ardanlabs/chainrules/business/web/errs"
	"github.com/ardanlabs/chainrules/foundation/blockchain/chain"
	"github.com/ardanlabs/chainrules/foundation/blockchain/hardfork"
	"github.com/ardanlabs/chainrules/foundation/blockchain/params"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func TestClassify(t *testing.T) {
	type table struct {
		name   string
		err    error
		status int
	}

	tt := []table{
		{name: "unsupported", err: fmt.Errorf("%w: %q", chain.ErrUnsupportedChain, "x"), status: http.StatusNotFound},
		{name: "param", err: fmt.Errorf("%w: %q", params.ErrParameterNotDefined, "stop"), status: http.StatusNotFound},
		{name: "upgrade", err: fmt.Errorf("%w: %q", hardfork.ErrUnknownUpgrade, "x"), status: http.StatusBadRequest},
		{name: "validation", err: &chain.ValidationError{Fields: map[string]string{"name": "Missing required field: name"}}, status: http.StatusBadRequest},
		{name: "trusted", err: errs.NewTrusted(errors.New("teapot"), http.StatusTeapot), status: http.StatusTeapot},
		{name: "other", err: errors.New("boom"), status: 0},
	}

	t.Log("Given the need to map engine errors to web statuses.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen handling a %s error.", testID, tst.name)
			{
				f := func(t *testing.T) {
					var status int
					if te := errs.GetTrusted(errs.Classify(tst.err)); te != nil {
						status = te.Status
					}

					if status != tst.status {
						t.Fatalf("\t%s\tTest %d:\tShould map to %d, got %d.", failed, testID, tst.status, status)
					}
					t.Logf("\t%s\tTest %d:\tShould map to %d.", success, testID, tst.status)
				}

				t.Run(tst.name, f)
			}
		}

		ve := &chain.ValidationError{Fields: map[string]string{"name": "Missing required field: name"}}
		if fields := errs.Fields(fmt.Errorf("decode: %w", ve)); fields["name"] == "" {
			t.Fatalf("\t%s\tShould surface the validation fields.", failed)
		}
		t.Logf("\t%s\tShould surface the validation fields.", success)
	}
}
