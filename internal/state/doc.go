// Package state holds the client-side data layer for MUSE: the unit catalog,
// the search results, the per-unit detail cache, and the navigator.
//
// # Overview
//
// All state lives in one State value owned by a Store. Nothing outside the
// store mutates it. Handlers in the actions package read a Snapshot, do their
// network I/O, and report what happened as Event records passed to
// Store.Dispatch. Reduce is the single function that turns an event into the
// next State.
//
//	actions handler            Store
//	┌──────────────────┐      ┌──────────────────────────┐
//	│ Snapshot()       │<─────│ State (RWMutex)          │
//	│ gateway call     │      │                          │
//	│ Dispatch(events) │─────>│ Reduce(state, ev) ...    │
//	└──────────────────┘      └──────────────────────────┘
//
// # Event Vocabulary
//
// Search:    UPDATE_SEARCH_QUERY, REQUEST_SEARCH_RESULTS, RECEIVE_SEARCH_RESULTS,
// HIDE_SEARCH_RESULTS, REVEAL_SEARCH_RESULTS.
//
// Catalog:   ALL_UNITS_REQUEST, ALL_UNITS_SUCCESS, ALL_UNITS_FAILURE.
//
// Navigator: UPDATE_CURRENT_UNIT, LOAD_PREVIOUS_UNIT, CLEAR_CURRENT_UNIT.
//
// Details:   UNIT_DETAILS_REQUEST, UNIT_DETAILS_SUCCESS, UNIT_DETAILS_FAILURE.
//
// # Invariants
//
//   - Catalog.IsFetching and Catalog.DidInvalidate are never both true.
//   - A Cache key exists only after UNIT_DETAILS_REQUEST was applied for it.
//     Keys are never removed.
//   - NavigatorState.PreviousUnitCode is a single slot, not a history stack.
//
// # Ordering
//
// Dispatch applies events serially. Two fetches for the same unit may
// complete in either order; whichever completion is dispatched last
// overwrites the entry. No in-flight request is cancelled.
//
// # Copy Semantics
//
// Reduce never modifies its input. Snapshot and Lookup return deep copies,
// so callers may keep or modify what they receive.
package state
