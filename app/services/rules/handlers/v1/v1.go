// Package v1 contains the full set of handler functions and routes
// supported by the v1 web api.
package v1

import (
	"net/http"

	"github.com/ardanlabs/chainrules/app/services/rules/handlers/v1/rulesgrp"
	"github.com/ardanlabs/chainrules/business/core/network"
	"github.com/ardanlabs/chainrules/foundation/events"
	"github.com/ardanlabs/chainrules/foundation/web"
	"go.uber.org/zap"
)

const version = "v1"

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log  *zap.SugaredLogger
	Core *network.Core
	Evts *events.Events
}

// Routes binds all the version 1 routes.
func Routes(app *web.App, cfg Config) {
	rgh := rulesgrp.Handlers{
		Log:  cfg.Log,
		Core: cfg.Core,
		Evts: cfg.Evts,
	}

	app.Handle(http.MethodGet, version, "/chain", rgh.Chain)
	app.Handle(http.MethodPost, version, "/chain", rgh.SetChain)
	app.Handle(http.MethodGet, version, "/chains", rgh.Chains)
	app.Handle(http.MethodGet, version, "/hardfork", rgh.Hardfork)
	app.Handle(http.MethodPost, version, "/hardfork", rgh.SetHardfork)
	app.Handle(http.MethodPost, version, "/hardfork/by", rgh.SetHardforkBy)
	app.Handle(http.MethodGet, version, "/hardforks", rgh.Hardforks)
	app.Handle(http.MethodGet, version, "/timeline", rgh.Timeline)
	app.Handle(http.MethodGet, version, "/params", rgh.Params)
	app.Handle(http.MethodGet, version, "/params/:name", rgh.Param)
	app.Handle(http.MethodGet, version, "/eips", rgh.EIPs)
	app.Handle(http.MethodGet, version, "/eips/:id", rgh.EIP)
	app.Handle(http.MethodGet, version, "/resolve", rgh.Resolve)
	app.Handle(http.MethodGet, version, "/fields", rgh.Fields)
	app.Handle(http.MethodGet, version, "/events", rgh.Events)
}
