package actions

import (
	"github.com/apex/log"

	"github.com/monplan/muse/internal/monplan"
	"github.com/monplan/muse/internal/state"
)

// Dispatcher is the state container the handlers read from and report to.
// *state.Store implements it.
type Dispatcher interface {
	Dispatch(events ...state.Event)
	Snapshot() state.State
	Lookup(unitCode string) (state.DetailEntry, bool)
}

var _ Dispatcher = (*state.Store)(nil)

// Actions runs the command handlers. Handlers that touch the network block
// until the remote call resolves; callers choose whether to run them on a
// separate goroutine.
type Actions struct {
	store Dispatcher
	api   monplan.UnitFetcher
	log   log.Interface
}

// New builds Actions over store and api. A nil logger falls back to the
// package-level apex logger.
func New(store Dispatcher, api monplan.UnitFetcher, logger log.Interface) *Actions {
	if logger == nil {
		logger = log.Log
	}
	return &Actions{store: store, api: api, log: logger}
}
