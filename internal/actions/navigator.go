package actions

import (
	"context"

	"github.com/monplan/muse/internal/state"
)

// UpdateCurrentUnit selects unitCode.
func (a *Actions) UpdateCurrentUnit(unitCode string) {
	a.store.Dispatch(state.UpdateCurrentUnit{UnitCode: unitCode})
}

// LoadPreviousUnit restores the previously selected unit, if any.
func (a *Actions) LoadPreviousUnit() {
	a.store.Dispatch(state.LoadPreviousUnit{})
}

// ClearCurrentUnit closes the open unit.
func (a *Actions) ClearCurrentUnit() {
	a.store.Dispatch(state.ClearCurrentUnit{})
}

// OpenUnit selects unitCode and fetches its details if they were never
// requested.
func (a *Actions) OpenUnit(ctx context.Context, unitCode string) error {
	a.UpdateCurrentUnit(unitCode)
	return a.FetchUnitDetailsIfNeeded(ctx, unitCode)
}

// GoBack restores the previous unit and fetches its details if needed.
func (a *Actions) GoBack(ctx context.Context) error {
	a.LoadPreviousUnit()
	return a.FetchUnitDetailsIfNeeded(ctx, a.store.Snapshot().Navigator.CurrentUnitCode)
}
