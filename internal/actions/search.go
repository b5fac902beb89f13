package actions

import (
	"strings"
	"unicode/utf8"

	"github.com/monplan/muse/internal/state"
)

// MinQueryLength is the shortest lower-cased query that is matched against
// the catalog.
const MinQueryLength = 3

// PerformSearch records query, filters the current catalog snapshot, and
// reports the results. It returns the results it dispatched.
func (a *Actions) PerformSearch(query string) []state.SearchResult {
	a.store.Dispatch(state.UpdateSearchQuery{Query: query}, state.RequestSearchResults{})

	recorded, results := Search(a.store.Snapshot().Catalog, query)
	a.store.Dispatch(state.ReceiveSearchResults{Query: recorded, Items: results})
	return results
}

// Search filters catalog for units whose code or name contains query,
// ignoring case, and keeps catalog order. It also returns the query string
// to record with the results: the original query when the catalog is not
// ready, the lower-cased query when it is too short.
func Search(catalog state.CatalogState, query string) (string, []state.SearchResult) {
	results := []state.SearchResult{}
	if !catalog.Ready() {
		return query, results
	}

	target := strings.ToLower(query)
	if utf8.RuneCountInString(target) < MinQueryLength {
		return target, results
	}

	for _, unit := range catalog.Items {
		if strings.Contains(strings.ToLower(unit.UnitCode), target) ||
			strings.Contains(strings.ToLower(unit.UnitName), target) {
			results = append(results, state.SearchResult{
				UnitCode: unit.UnitCode,
				UnitName: unit.UnitName,
			})
		}
	}
	return query, results
}

// RevealSearchResultsIfNeeded shows hidden results. It emits nothing when
// the results are already visible.
func (a *Actions) RevealSearchResultsIfNeeded() bool {
	if !a.store.Snapshot().Search.AreResultsHidden {
		return false
	}
	a.store.Dispatch(state.RevealSearchResults{})
	return true
}

// HideSearchResults hides the result list.
func (a *Actions) HideSearchResults() {
	a.store.Dispatch(state.HideSearchResults{})
}
