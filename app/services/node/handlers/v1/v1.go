// Package v1 contains the full set of handler functions and routes
// supported by the v1 web api.
package v1

import (
	"net/http"

	"github.com/solochain/solochain/app/services/node/handlers/v1/public"
	"github.com/solochain/solochain/foundation/events"
	"github.com/solochain/solochain/foundation/ledger/state"
	"github.com/solochain/solochain/foundation/web"
	"go.uber.org/zap"
)

const version = "v1"

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log   *zap.SugaredLogger
	State *state.State
	Evts  *events.Events
}

// Routes binds all the version 1 routes.
func Routes(app *web.App, cfg Config) {
	pbl := public.Handlers{
		Log:   cfg.Log,
		State: cfg.State,
		Evts:  cfg.Evts,
	}

	app.Handle(http.MethodGet, version, "/events", pbl.Events)
	app.Handle(http.MethodGet, version, "/chain/list", pbl.Chain)
	app.Handle(http.MethodGet, version, "/blocks/list/:from/:to", pbl.BlocksByIndex)
	app.Handle(http.MethodGet, version, "/tx/uncommitted/list", pbl.Uncommitted)
	app.Handle(http.MethodPost, version, "/tx/add", pbl.SubmitTransaction)
	app.Handle(http.MethodPost, version, "/block/mine", pbl.Mine)
}
