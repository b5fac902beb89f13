package actions

import (
	"context"

	"github.com/monplan/muse/internal/state"
)

// FetchAllUnits requests the full catalog and reports the outcome. Calls
// are not deduplicated: a second call while one is outstanding issues a
// second request, and the later completion replaces the catalog.
func (a *Actions) FetchAllUnits(ctx context.Context) error {
	a.store.Dispatch(state.AllUnitsRequest{})

	units, err := a.api.FetchAllUnits(ctx)
	if err != nil {
		a.log.WithError(err).Warn("catalog fetch failed")
		a.store.Dispatch(state.AllUnitsFailure{Err: err})
		return err
	}
	a.log.WithField("units", len(units)).Info("catalog loaded")
	a.store.Dispatch(state.AllUnitsSuccess{Response: units})
	return nil
}
