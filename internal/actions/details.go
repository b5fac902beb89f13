package actions

import (
	"context"

	"github.com/monplan/muse/internal/state"
)

// FetchUnitDetails always requests unitCode and reports the outcome. The
// cache entry is created by the request event if it did not exist.
func (a *Actions) FetchUnitDetails(ctx context.Context, unitCode string) error {
	a.store.Dispatch(state.UnitDetailsRequest{UnitCode: unitCode})

	unit, err := a.api.FetchUnit(ctx, unitCode)
	if err != nil {
		a.log.WithError(err).WithField("unit", unitCode).Warn("unit details fetch failed")
		a.store.Dispatch(state.UnitDetailsFailure{UnitCode: unitCode, Err: err})
		return err
	}
	a.log.WithField("unit", unitCode).Debug("unit details loaded")
	a.store.Dispatch(state.UnitDetailsSuccess{UnitCode: unitCode, Response: unit})
	return nil
}

// FetchUnitDetailsIfNeeded fetches unitCode only when no cache entry exists
// and the code is non-empty. Presence is the only test: an invalidated or
// stale entry is left alone. Use ReloadCurrentUnit to force a refetch.
func (a *Actions) FetchUnitDetailsIfNeeded(ctx context.Context, unitCode string) error {
	if unitCode == "" {
		return nil
	}
	if _, ok := a.store.Lookup(unitCode); ok {
		return nil
	}
	return a.FetchUnitDetails(ctx, unitCode)
}

// ReloadCurrentUnit refetches the navigator's current unit, bypassing the
// presence check. The current code is used as is, including the empty
// sentinel.
func (a *Actions) ReloadCurrentUnit(ctx context.Context) error {
	current := a.store.Snapshot().Navigator.CurrentUnitCode
	if current == "" {
		a.log.Debug("reloading with no unit selected")
	}
	return a.FetchUnitDetails(ctx, current)
}
