package state

import "github.com/monplan/muse/internal/monplan"

// Reduce applies ev to s and returns the resulting state. s is never
// modified; maps and slices that change are copied first. Unknown events
// return s unchanged.
func Reduce(s State, ev Event) State {
	switch ev := ev.(type) {
	case UpdateSearchQuery:
		s.Search.Query = ev.Query
	case RequestSearchResults:
		s.Search.IsFetching = true
	case ReceiveSearchResults:
		s.Search.Query = ev.Query
		s.Search.Results = cloneResults(ev.Items)
		s.Search.IsFetching = false
	case HideSearchResults:
		s.Search.AreResultsHidden = true
	case RevealSearchResults:
		s.Search.AreResultsHidden = false

	case AllUnitsRequest:
		s.Catalog.IsFetching = true
		s.Catalog.DidInvalidate = false
	case AllUnitsSuccess:
		s.Catalog = CatalogState{Items: monplan.CloneUnits(ev.Response)}
	case AllUnitsFailure:
		s.Catalog.IsFetching = false
		s.Catalog.DidInvalidate = true

	case UpdateCurrentUnit:
		s.Navigator = selectUnit(s.Navigator, ev.UnitCode)
	case LoadPreviousUnit:
		if prev := s.Navigator.PreviousUnitCode; prev != nil {
			s.Navigator = NavigatorState{CurrentUnitCode: *prev}
		}
	case ClearCurrentUnit:
		s.Navigator = selectUnit(s.Navigator, "")

	case UnitDetailsRequest:
		s.Cache = withEntry(s.Cache, ev.UnitCode, func(e DetailEntry) DetailEntry {
			e.IsFetching = true
			e.DidInvalidate = false
			return e
		})
	case UnitDetailsSuccess:
		detail := ev.Response.Clone()
		s.Cache = withEntry(s.Cache, ev.UnitCode, func(DetailEntry) DetailEntry {
			return DetailEntry{Detail: &detail}
		})
	case UnitDetailsFailure:
		s.Cache = withEntry(s.Cache, ev.UnitCode, func(e DetailEntry) DetailEntry {
			e.IsFetching = false
			e.DidInvalidate = true
			return e
		})
	}
	return s
}

// selectUnit moves the current code into the back slot when it changes.
func selectUnit(nav NavigatorState, code string) NavigatorState {
	if nav.CurrentUnitCode == code {
		return nav
	}
	if nav.CurrentUnitCode == "" {
		return NavigatorState{CurrentUnitCode: code, PreviousUnitCode: nav.PreviousUnitCode}
	}
	prev := nav.CurrentUnitCode
	return NavigatorState{CurrentUnitCode: code, PreviousUnitCode: &prev}
}

func withEntry(cache map[string]DetailEntry, code string, fn func(DetailEntry) DetailEntry) map[string]DetailEntry {
	dup := make(map[string]DetailEntry, len(cache)+1)
	for k, v := range cache {
		dup[k] = v
	}
	dup[code] = fn(cache[code])
	return dup
}
