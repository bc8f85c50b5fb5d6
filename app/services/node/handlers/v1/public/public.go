// Package public maintains the group of handlers for public access.
package public

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/solochain/solochain/business/sys/validate"
	v1 "github.com/solochain/solochain/business/web/v1"
	"github.com/solochain/solochain/foundation/events"
	"github.com/solochain/solochain/foundation/ledger"
	"github.com/solochain/solochain/foundation/ledger/state"
	"github.com/solochain/solochain/foundation/web"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Handlers manages the set of ledger endpoints.
type Handlers struct {
	Log   *zap.SugaredLogger
	State *state.State
	WS    websocket.Upgrader
	Evts  *events.Events
}

// Events handles a web socket to provide events to a client.
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
		case msg, wd := <-ch:
			if !wd {
				return nil
			}

			if err := c.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return err
			}

		case <-ticker.C:
			if err := c.WriteMessage(websocket.PingMessage, []byte("ping")); err != nil {
				return nil
			}
		}
	}
}

// SubmitTransaction adds a new transaction to the pending pool.
func (h Handlers) SubmitTransaction(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	// Decode the JSON in the post call into a transaction.
	var newTx newTran
	if err := web.Decode(r, &newTx); err != nil {
		return v1.NewRequestError(fmt.Errorf("unable to decode payload: %w", err), http.StatusBadRequest)
	}

	if err := validate.Check(newTx); err != nil {
		return err
	}

	tran := ledger.Tran{
		Sender:    newTx.Sender,
		Recipient: newTx.Recipient,
		Amount:    newTx.Amount,
	}

	// Ask the state package to add this transaction to the pool.
	h.Log.Infow("add tran", "traceid", v.TraceID, "sender", tran.Sender, "recipient", tran.Recipient, "amount", tran.Amount)
	index := h.State.SubmitTransaction(tran)

	resp := submitResult{
		Status: "transaction added to the pool",
		Block:  index,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Mine seals the pending transactions into a new block and returns the
// sealed block. The call blocks until the proof of work search completes.
func (h Handlers) Mine(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	h.Log.Infow("mine block", "traceid", v.TraceID)
	block := h.State.MineNewBlock()

	return web.Respond(ctx, w, block, http.StatusOK)
}

// Chain returns the full chain from the genesis block to the latest block.
func (h Handlers) Chain(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	chain := h.State.RetrieveChain()
	return web.Respond(ctx, w, chain, http.StatusOK)
}

// Uncommitted returns the set of transactions waiting in the pool.
func (h Handlers) Uncommitted(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	trans := h.State.RetrievePendingTrans()
	return web.Respond(ctx, w, trans, http.StatusOK)
}

// BlocksByIndex returns all the blocks based on the specified to/from values.
func (h Handlers) BlocksByIndex(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	fromStr := web.Param(r, "from")
	if fromStr == "latest" || fromStr == "" {
		fromStr = fmt.Sprintf("%d", state.QueryLatest)
	}

	toStr := web.Param(r, "to")
	if toStr == "latest" || toStr == "" {
		toStr = fmt.Sprintf("%d", state.QueryLatest)
	}

	from, err := strconv.ParseUint(fromStr, 10, 64)
	if err != nil {
		return v1.NewRequestError(err, http.StatusBadRequest)
	}
	to, err := strconv.ParseUint(toStr, 10, 64)
	if err != nil {
		return v1.NewRequestError(err, http.StatusBadRequest)
	}

	if from > to {
		return v1.NewRequestError(errors.New("from greater than to"), http.StatusBadRequest)
	}

	blocks := h.State.QueryBlocksByIndex(from, to)
	if len(blocks) == 0 {
		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}

	return web.Respond(ctx, w, blocks, http.StatusOK)
}
