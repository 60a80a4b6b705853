// Package rulesgrp maintains the group of handlers for querying and moving
// the session cursor.
package rulesgrp

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ardanlabs/chainrules/business/core/network"
	"github.com/ardanlabs/chainrules/business/sys/metrics"
	"github.com/ardanlabs/chainrules/business/web/errs"
	"github.com/ardanlabs/chainrules/foundation/blockchain/chain"
	"github.com/ardanlabs/chainrules/foundation/blockchain/fieldset"
	"github.com/ardanlabs/chainrules/foundation/blockchain/hardfork"
	"github.com/ardanlabs/chainrules/foundation/blockchain/timeline"
	"github.com/ardanlabs/chainrules/foundation/events"
	"github.com/ardanlabs/chainrules/foundation/validate"
	"github.com/ardanlabs/chainrules/foundation/web"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Handlers manages the set of rules endpoints.
type Handlers struct {
	Log  *zap.SugaredLogger
	Core *network.Core
	WS   websocket.Upgrader
	Evts *events.Events
}

// Chain returns the document of the current chain.
func (h Handlers) Chain(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	e := h.Core.Snapshot()
	return web.Respond(ctx, w, e.Chain().Document(), http.StatusOK)
}

// Chains returns every chain the session can switch to.
func (h Handlers) Chains(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	e := h.Core.Snapshot()

	chains := e.Chains()
	infos := make([]chainInfo, len(chains))
	for i, d := range chains {
		infos[i] = chainInfo{
			Name:      d.Name,
			ChainID:   d.ChainID.String(),
			Consensus: d.Consensus.Type,
			Current:   d.Name == e.ChainName(),
		}
	}

	return web.Respond(ctx, w, infos, http.StatusOK)
}

// Hardfork returns the rules in effect at the session cursor.
func (h Handlers) Hardfork(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	res, err := h.Core.Current()
	if err != nil {
		return err
	}

	return web.Respond(ctx, w, res, http.StatusOK)
}

// Hardforks returns every hardfork the engine knows.
func (h Handlers) Hardforks(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	e := h.Core.Snapshot()

	names := e.Hardforks()
	infos := make([]hardforkInfo, len(names))
	for i, name := range names {
		def, err := e.HardforkDefinition(name)
		if err != nil {
			return err
		}

		infos[i] = hardforkInfo{
			Name:      name,
			Custom:    e.IsCustomHardfork(name),
			Scheduled: e.Timeline().Index(name) >= 0,
			Current:   name == e.Hardfork(),
			EIPs:      def.EIPs,
		}
	}

	return web.Respond(ctx, w, infos, http.StatusOK)
}

// Timeline returns the activation timeline of the current chain.
func (h Handlers) Timeline(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	e := h.Core.Snapshot()

	tl := timelineInfo{
		Chain:   e.ChainName(),
		Current: e.Hardfork(),
		Records: e.Timeline().Records(),
	}

	return web.Respond(ctx, w, tl, http.StatusOK)
}

// Params returns the merged parameter table at the session cursor.
func (h Handlers) Params(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	table := h.Core.Snapshot().Params()

	values := table.Values()
	prms := make([]param, 0, table.Len())
	for _, name := range table.Names() {
		src, _ := table.Source(name)
		prms = append(prms, param{Name: name, Value: values[name], Source: src})
	}

	return web.Respond(ctx, w, prms, http.StatusOK)
}

// Param returns a single parameter. The hardfork query value reads the
// parameter at another hardfork without moving the session cursor.
func (h Handlers) Param(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	name := web.Param(r, "name")
	e := h.Core.Snapshot()

	if hf := r.URL.Query().Get("hardfork"); hf != "" {
		v, err := e.ParamByHardfork(name, hf)
		if err != nil {
			return err
		}
		return web.Respond(ctx, w, param{Name: name, Value: v}, http.StatusOK)
	}

	v, err := e.Param(name)
	if err != nil {
		return err
	}

	src, _ := e.Params().Source(name)

	return web.Respond(ctx, w, param{Name: name, Value: v, Source: src}, http.StatusOK)
}

// EIPs returns the EIPs active at the session cursor.
func (h Handlers) EIPs(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	e := h.Core.Snapshot()

	ids := e.EIPs()
	list := make([]eip, len(ids))
	for i, id := range ids {
		info, _ := hardfork.LookupEIP(id)
		list[i] = eip{ID: id, Comment: info.Comment, Active: true, Params: info.Params}
	}

	return web.Respond(ctx, w, list, http.StatusOK)
}

// EIP returns a single EIP and if it is active at the session cursor.
func (h Handlers) EIP(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	id, err := strconv.Atoi(web.Param(r, "id"))
	if err != nil {
		return errs.NewTrusted(fmt.Errorf("invalid eip %q", web.Param(r, "id")), http.StatusBadRequest)
	}

	info, exists := hardfork.LookupEIP(id)
	if !exists {
		return fmt.Errorf("%w: %d", hardfork.ErrUnknownEIP, id)
	}

	resp := eip{
		ID:      id,
		Comment: info.Comment,
		Active:  h.Core.Snapshot().IsActivatedEIP(id),
		Params:  info.Params,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Resolve returns the rules in effect at the point named by the block and
// timestamp query values.
func (h Handlers) Resolve(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	p, err := queryPoint(r)
	if err != nil {
		return err
	}

	res, err := h.Core.Resolve(p)
	if err != nil {
		return err
	}

	return web.Respond(ctx, w, res, http.StatusOK)
}

// Fields returns the header fields in effect at the point named by the block
// and timestamp query values.
func (h Handlers) Fields(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	p, err := queryPoint(r)
	if err != nil {
		return err
	}

	fields, err := fieldset.Select(h.Core.At(p))
	if err != nil {
		return err
	}

	resp := struct {
		fieldset.Fields
		Names []string `json:"names"`
	}{
		Fields: fields,
		Names:  fields.Names(),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// =============================================================================

// SetHardfork moves the session cursor to the named hardfork.
func (h Handlers) SetHardfork(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req setHardfork
	if err := decode(r, &req); err != nil {
		return err
	}

	res, err := h.Core.SetHardfork(req.Name)
	if err != nil {
		return err
	}
	metrics.AddTransitions()

	h.Log.Infow("set hardfork", "traceid", web.GetTraceID(ctx), "chain", res.Chain, "hardfork", res.Hardfork)

	return web.Respond(ctx, w, res, http.StatusOK)
}

// SetHardforkBy moves the session cursor to the hardfork active at a point.
func (h Handlers) SetHardforkBy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req setHardforkBy
	if err := decode(r, &req); err != nil {
		return err
	}

	p := timeline.Point{Number: *req.Block, Timestamp: req.Timestamp}

	res, err := h.Core.SetHardforkBy(p)
	if err != nil {
		return err
	}
	metrics.AddTransitions()

	h.Log.Infow("set hardfork by", "traceid", web.GetTraceID(ctx), "point", p, "chain", res.Chain, "hardfork", res.Hardfork)

	return web.Respond(ctx, w, res, http.StatusOK)
}

// SetChain moves the session cursor to another chain.
func (h Handlers) SetChain(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req setChain
	if err := decode(r, &req); err != nil {
		return err
	}

	res, err := h.Core.SetChain(chain.ParseString(req.Chain), req.Hardfork)
	if err != nil {
		return err
	}
	metrics.AddTransitions()

	h.Log.Infow("set chain", "traceid", web.GetTraceID(ctx), "chain", res.Chain, "hardfork", res.Hardfork)

	return web.Respond(ctx, w, res, http.StatusOK)
}

// Events handles a web socket to provide cursor events to a client.
func (h Handlers) Events(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	h.WS.CheckOrigin = func(r *http.Request) bool { return true }

	c, err := h.WS.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	ch := h.Evts.Acquire(v.TraceID)
	defer h.Evts.Release(v.TraceID)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case evt, wd := <-ch:
			if !wd {
				return nil
			}

			if err := c.WriteJSON(evt); err != nil {
				return err
			}

		case <-ticker.C:
			if err := c.WriteMessage(websocket.PingMessage, []byte("ping")); err != nil {
				return nil
			}
		}
	}
}

// =============================================================================

func decode(r *http.Request, val any) error {
	if err := web.Decode(r, val); err != nil {
		return errs.NewTrusted(fmt.Errorf("unable to decode payload: %w", err), http.StatusBadRequest)
	}

	if err := validate.Check(val); err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	return nil
}

func queryPoint(r *http.Request) (timeline.Point, error) {
	qry := r.URL.Query()

	n, ok := math.ParseUint64(qry.Get("block"))
	if !ok || qry.Get("block") == "" {
		return timeline.Point{}, errs.NewTrusted(fmt.Errorf("invalid block %q", qry.Get("block")), http.StatusBadRequest)
	}

	p := timeline.At(n)

	if s := qry.Get("timestamp"); s != "" {
		ts, ok := math.ParseUint64(s)
		if !ok {
			return timeline.Point{}, errs.NewTrusted(fmt.Errorf("invalid timestamp %q", s), http.StatusBadRequest)
		}
		p = timeline.AtTime(n, ts)
	}

	return p, nil
}
