package state

import "github.com/monplan/muse/internal/monplan"

// EventType names a state transition. The values are stable and appear in
// logs and the event journal.
type EventType string

const (
	TypeUpdateSearchQuery    EventType = "UPDATE_SEARCH_QUERY"
	TypeRequestSearchResults EventType = "REQUEST_SEARCH_RESULTS"
	TypeReceiveSearchResults EventType = "RECEIVE_SEARCH_RESULTS"
	TypeHideSearchResults    EventType = "HIDE_SEARCH_RESULTS"
	TypeRevealSearchResults  EventType = "REVEAL_SEARCH_RESULTS"

	TypeAllUnitsRequest EventType = "ALL_UNITS_REQUEST"
	TypeAllUnitsSuccess EventType = "ALL_UNITS_SUCCESS"
	TypeAllUnitsFailure EventType = "ALL_UNITS_FAILURE"

	TypeUpdateCurrentUnit  EventType = "UPDATE_CURRENT_UNIT"
	TypeLoadPreviousUnit   EventType = "LOAD_PREVIOUS_UNIT"
	TypeClearCurrentUnit   EventType = "CLEAR_CURRENT_UNIT"
	TypeUnitDetailsRequest EventType = "UNIT_DETAILS_REQUEST"
	TypeUnitDetailsSuccess EventType = "UNIT_DETAILS_SUCCESS"
	TypeUnitDetailsFailure EventType = "UNIT_DETAILS_FAILURE"
)

// Event is an immutable record of a state transition, applied by Reduce.
type Event interface {
	Type() EventType
}

// Search events.

// UpdateSearchQuery records the text typed into the search box.
type UpdateSearchQuery struct{ Query string }

// RequestSearchResults marks a search as in progress.
type RequestSearchResults struct{}

// ReceiveSearchResults stores the matches for Query.
type ReceiveSearchResults struct {
	Query string
	Items []SearchResult
}

// HideSearchResults hides the result list without discarding it.
type HideSearchResults struct{}

// RevealSearchResults shows a hidden result list again.
type RevealSearchResults struct{}

// Catalog events.

// AllUnitsRequest marks the catalog fetch as started.
type AllUnitsRequest struct{}

// AllUnitsSuccess replaces the catalog with Response.
type AllUnitsSuccess struct{ Response []monplan.Unit }

// AllUnitsFailure invalidates the catalog and keeps its items.
type AllUnitsFailure struct{ Err error }

// Navigator intents. These are the only transitions of NavigatorState.

// UpdateCurrentUnit opens UnitCode.
type UpdateCurrentUnit struct{ UnitCode string }

// LoadPreviousUnit reopens the unit in the back slot.
type LoadPreviousUnit struct{}

// ClearCurrentUnit closes the open unit.
type ClearCurrentUnit struct{}

// Detail cache events.

// UnitDetailsRequest marks a detail fetch for UnitCode as started.
type UnitDetailsRequest struct{ UnitCode string }

// UnitDetailsSuccess caches Response as the detail for UnitCode.
type UnitDetailsSuccess struct {
	UnitCode string
	Response monplan.Unit
}

// UnitDetailsFailure invalidates the entry for UnitCode and keeps any old detail.
type UnitDetailsFailure struct {
	UnitCode string
	Err      error
}

func (UpdateSearchQuery) Type() EventType    { return TypeUpdateSearchQuery }
func (RequestSearchResults) Type() EventType { return TypeRequestSearchResults }
func (ReceiveSearchResults) Type() EventType { return TypeReceiveSearchResults }
func (HideSearchResults) Type() EventType    { return TypeHideSearchResults }
func (RevealSearchResults) Type() EventType  { return TypeRevealSearchResults }
func (AllUnitsRequest) Type() EventType      { return TypeAllUnitsRequest }
func (AllUnitsSuccess) Type() EventType      { return TypeAllUnitsSuccess }
func (AllUnitsFailure) Type() EventType      { return TypeAllUnitsFailure }
func (UpdateCurrentUnit) Type() EventType    { return TypeUpdateCurrentUnit }
func (LoadPreviousUnit) Type() EventType     { return TypeLoadPreviousUnit }
func (ClearCurrentUnit) Type() EventType     { return TypeClearCurrentUnit }
func (UnitDetailsRequest) Type() EventType   { return TypeUnitDetailsRequest }
func (UnitDetailsSuccess) Type() EventType   { return TypeUnitDetailsSuccess }
func (UnitDetailsFailure) Type() EventType   { return TypeUnitDetailsFailure }
