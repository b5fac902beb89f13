// Package actions contains the command handlers for the MUSE data layer.
//
// Each handler reads a snapshot from a Dispatcher, optionally calls the
// monPlan gateway, and reports every transition as state events. Handlers
// never modify state directly.
//
// # Handlers
//
//   - FetchAllUnits: ALL_UNITS_REQUEST, then ALL_UNITS_SUCCESS or ALL_UNITS_FAILURE.
//   - PerformSearch: UPDATE_SEARCH_QUERY, REQUEST_SEARCH_RESULTS, RECEIVE_SEARCH_RESULTS.
//   - RevealSearchResultsIfNeeded / HideSearchResults: visibility toggles.
//   - FetchUnitDetails: UNIT_DETAILS_REQUEST, then _SUCCESS or _FAILURE.
//   - FetchUnitDetailsIfNeeded: FetchUnitDetails only for never-requested codes.
//   - ReloadCurrentUnit: FetchUnitDetails for the open unit, unconditionally.
//   - UpdateCurrentUnit / LoadPreviousUnit / ClearCurrentUnit: navigator intents.
//
// # Blocking
//
// Network handlers take a context and block until the gateway returns. There
// is no deduplication or cancellation of in-flight requests; concurrent
// fetches of one code are harmless and the last completion wins.
package actions
