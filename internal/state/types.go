package state

import "github.com/monplan/muse/internal/monplan"

// CatalogState holds the full unit list and its fetch status.
// IsFetching and DidInvalidate are never both true.
type CatalogState struct {
	Items         []monplan.Unit
	IsFetching    bool
	DidInvalidate bool
}

// Ready reports whether Items can be trusted for searching.
func (c CatalogState) Ready() bool {
	return !c.IsFetching && !c.DidInvalidate
}

// SearchResult is the projection of a catalog unit shown in search results.
type SearchResult struct {
	UnitCode string
	UnitName string
}

// SearchState tracks the current query and its results. Results are always
// drawn from the catalog in catalog order.
type SearchState struct {
	Query            string
	Results          []SearchResult
	IsFetching       bool
	AreResultsHidden bool
}

// DetailEntry is the cached state for one unit code. An entry exists only
// once a fetch has been started for that code.
type DetailEntry struct {
	IsFetching    bool
	DidInvalidate bool
	Detail        *monplan.Unit
}

// NavigatorState tracks the open unit and a single back-navigation slot.
// An empty CurrentUnitCode means nothing is selected.
type NavigatorState struct {
	CurrentUnitCode  string
	PreviousUnitCode *string
}

// State is the whole client-side data layer.
type State struct {
	Catalog   CatalogState
	Search    SearchState
	Cache     map[string]DetailEntry
	Navigator NavigatorState
}

// Entry returns the cache entry for unitCode and whether one exists.
func (s State) Entry(unitCode string) (DetailEntry, bool) {
	e, ok := s.Cache[unitCode]
	return e, ok
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	dup := s
	dup.Catalog.Items = monplan.CloneUnits(s.Catalog.Items)
	dup.Search.Results = cloneResults(s.Search.Results)
	if s.Cache != nil {
		dup.Cache = make(map[string]DetailEntry, len(s.Cache))
		for code, entry := range s.Cache {
			if entry.Detail != nil {
				detail := entry.Detail.Clone()
				entry.Detail = &detail
			}
			dup.Cache[code] = entry
		}
	}
	if s.Navigator.PreviousUnitCode != nil {
		prev := *s.Navigator.PreviousUnitCode
		dup.Navigator.PreviousUnitCode = &prev
	}
	return dup
}

func cloneResults(results []SearchResult) []SearchResult {
	if results == nil {
		return nil
	}
	dup := make([]SearchResult, len(results))
	copy(dup, results)
	return dup
}
