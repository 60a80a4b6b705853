package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/ardanlabs/chainrules/app/services/rules/handlers"
	"github.com/ardanlabs/chainrules/business/core/network"
	"github.com/ardanlabs/chainrules/business/web/errs"
	"github.com/ardanlabs/chainrules/foundation/events"
	"go.uber.org/zap"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

type result struct {
	Hardfork string `json:"hardfork"`
	Chain    string `json:"chain"`
}

func newMux(t *testing.T) http.Handler {
	core, err := network.New(network.Config{})
	if err != nil {
		t.Fatalf("\t%s\tShould be able to construct the core: %v", failed, err)
	}

	return handlers.PublicMux(handlers.MuxConfig{
		Shutdown: make(chan os.Signal, 1),
		Log:      zap.NewNop().Sugar(),
		Core:     core,
		Evts:     events.New(),
	})
}

func call(mux http.Handler, method string, path string, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)
	return w
}

func TestQueries(t *testing.T) {
	t.Log("Given the need to query the rules over the web api.")
	{
		mux := newMux(t)

		w := call(mux, http.MethodGet, "/v1/hardfork", "")
		var res result
		if err := json.NewDecoder(w.Body).Decode(&res); err != nil || w.Code != http.StatusOK || res.Hardfork != "prague" {
			t.Fatalf("\t%s\tShould get the session hardfork, got %d %+v: %v", failed, w.Code, res, err)
		}
		t.Logf("\t%s\tShould get the session hardfork.", success)

		w = call(mux, http.MethodGet, "/v1/resolve?block=15537394", "")
		if err := json.NewDecoder(w.Body).Decode(&res); err != nil || res.Hardfork != "paris" {
			t.Fatalf("\t%s\tShould resolve a block to paris, got %+v: %v", failed, res, err)
		}
		t.Logf("\t%s\tShould resolve a block to paris.", success)

		w = call(mux, http.MethodGet, "/v1/resolve?block=17034870&timestamp=0x64373057", "")
		if err := json.NewDecoder(w.Body).Decode(&res); err != nil || res.Hardfork != "shanghai" {
			t.Fatalf("\t%s\tShould resolve a hex timestamp to shanghai, got %+v: %v", failed, res, err)
		}
		t.Logf("\t%s\tShould resolve a hex timestamp to shanghai.", success)

		if w = call(mux, http.MethodGet, "/v1/resolve", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("\t%s\tShould reject a point without a block, got %d.", failed, w.Code)
		}
		t.Logf("\t%s\tShould reject a point without a block.", success)

		w = call(mux, http.MethodGet, "/v1/params/refundQuotient", "")
		var prm struct {
			Value  json.RawMessage `json:"value"`
			Source string          `json:"source"`
		}
		if err := json.NewDecoder(w.Body).Decode(&prm); err != nil || string(prm.Value) != "5" || prm.Source != "eip:3529" {
			t.Fatalf("\t%s\tShould get refundQuotient, got %s from %s: %v", failed, prm.Value, prm.Source, err)
		}
		t.Logf("\t%s\tShould get refundQuotient.", success)

		w = call(mux, http.MethodGet, "/v1/params/refundQuotient?hardfork=chainstart", "")
		if err := json.NewDecoder(w.Body).Decode(&prm); err != nil || string(prm.Value) != "2" {
			t.Fatalf("\t%s\tShould get refundQuotient at chainstart, got %s: %v", failed, prm.Value, err)
		}
		t.Logf("\t%s\tShould get refundQuotient at chainstart.", success)

		w = call(mux, http.MethodGet, "/v1/params/stop", "")
		var er errs.Response
		if err := json.NewDecoder(w.Body).Decode(&er); err != nil || w.Code != http.StatusNotFound || !strings.Contains(er.Error, "stop") {
			t.Fatalf("\t%s\tShould get a 404 for an undefined parameter, got %d %+v.", failed, w.Code, er)
		}
		t.Logf("\t%s\tShould get a 404 for an undefined parameter.", success)

		w = call(mux, http.MethodGet, "/v1/eips/4844", "")
		var eip struct {
			Active bool `json:"active"`
		}
		if err := json.NewDecoder(w.Body).Decode(&eip); err != nil || !eip.Active {
			t.Fatalf("\t%s\tShould have 4844 active, got %d.", failed, w.Code)
		}
		t.Logf("\t%s\tShould have 4844 active.", success)

		if w = call(mux, http.MethodGet, "/v1/eips/99999", ""); w.Code != http.StatusNotFound {
			t.Fatalf("\t%s\tShould get a 404 for an unknown eip, got %d.", failed, w.Code)
		}
		t.Logf("\t%s\tShould get a 404 for an unknown eip.", success)

		w = call(mux, http.MethodGet, "/v1/fields?block=0", "")
		var fields struct {
			Names []string `json:"names"`
		}
		if err := json.NewDecoder(w.Body).Decode(&fields); err != nil || len(fields.Names) != 15 {
			t.Fatalf("\t%s\tShould have only the legacy fields at genesis, got %v.", failed, fields.Names)
		}
		t.Logf("\t%s\tShould have only the legacy fields at genesis.", success)

		w = call(mux, http.MethodGet, "/v1/chains", "")
		var chains []struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(w.Body).Decode(&chains); err != nil || len(chains) != 3 {
			t.Fatalf("\t%s\tShould list the built-in chains, got %v.", failed, chains)
		}
		t.Logf("\t%s\tShould list the built-in chains.", success)
	}
}

func TestTransitions(t *testing.T) {
	t.Log("Given the need to move the session cursor over the web api.")
	{
		mux := newMux(t)

		var res result

		w := call(mux, http.MethodPost, "/v1/hardfork", `{"name":"london"}`)
		if err := json.NewDecoder(w.Body).Decode(&res); err != nil || w.Code != http.StatusOK || res.Hardfork != "london" {
			t.Fatalf("\t%s\tShould move to london, got %d %+v.", failed, w.Code, res)
		}

		w = call(mux, http.MethodGet, "/v1/hardfork", "")
		if err := json.NewDecoder(w.Body).Decode(&res); err != nil || res.Hardfork != "london" {
			t.Fatalf("\t%s\tShould keep london for later requests, got %+v.", failed, res)
		}
		t.Logf("\t%s\tShould move the session to london.", success)

		w = call(mux, http.MethodPost, "/v1/hardfork", `{}`)
		var er errs.Response
		if err := json.NewDecoder(w.Body).Decode(&er); err != nil || w.Code != http.StatusBadRequest || er.Fields["name"] == "" {
			t.Fatalf("\t%s\tShould reject a request without a name, got %d %+v.", failed, w.Code, er)
		}
		t.Logf("\t%s\tShould reject a request without a name.", success)

		w = call(mux, http.MethodPost, "/v1/hardfork", `{"name":"testUpgrade"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("\t%s\tShould reject an unknown hardfork, got %d.", failed, w.Code)
		}
		t.Logf("\t%s\tShould reject an unknown hardfork.", success)

		w = call(mux, http.MethodPost, "/v1/hardfork/by", `{"block":1920000}`)
		if err := json.NewDecoder(w.Body).Decode(&res); err != nil || res.Hardfork != "dao" {
			t.Fatalf("\t%s\tShould move to dao by block, got %+v.", failed, res)
		}
		t.Logf("\t%s\tShould move to dao by block.", success)

		w = call(mux, http.MethodPost, "/v1/chain", `{"chain":"11155111","hardfork":"london"}`)
		if err := json.NewDecoder(w.Body).Decode(&res); err != nil || res.Chain != "sepolia" || res.Hardfork != "london" {
			t.Fatalf("\t%s\tShould move to sepolia by chain id, got %+v.", failed, res)
		}
		t.Logf("\t%s\tShould move to sepolia by chain id.", success)

		if w = call(mux, http.MethodPost, "/v1/chain", `{"chain":"unknown"}`); w.Code != http.StatusNotFound {
			t.Fatalf("\t%s\tShould get a 404 for an unknown chain, got %d.", failed, w.Code)
		}
		t.Logf("\t%s\tShould get a 404 for an unknown chain.", success)
	}
}
