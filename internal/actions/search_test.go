package actions

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/monplan/muse/internal/monplan"
	"github.com/monplan/muse/internal/state"
)

var sampleCatalog = []monplan.Unit{
	{UnitCode: "CITS3002", UnitName: "Computer Networks"},
	{UnitCode: "FIT1045", UnitName: "Algorithms and programming fundamentals"},
	{UnitCode: "FIT2004", UnitName: "Algorithms and data structures"},
	{UnitCode: "MAT1830", UnitName: "Discrete mathematics for computer science"},
}

func readyCatalog() state.CatalogState {
	return state.CatalogState{Items: sampleCatalog}
}

func TestSearch_MatchesCodeAndNameIgnoringCase(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantQuery string
		want      []string
	}{
		{"code prefix", "cits", "cits", []string{"CITS3002"}},
		{"name word", "network", "network", []string{"CITS3002"}},
		{"mixed case keeps original query", "NetWork", "NetWork", []string{"CITS3002"}},
		{"substring of name", "puter", "puter", []string{"CITS3002", "MAT1830"}},
		{"catalog order preserved", "algorithms", "algorithms", []string{"FIT1045", "FIT2004"}},
		{"digits in code", "104", "104", []string{"FIT1045"}},
		{"no match", "zzz", "zzz", []string{}},
		{"too short is lower-cased", "CI", "ci", []string{}},
		{"empty", "", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotQuery, results := Search(readyCatalog(), tt.query)
			if gotQuery != tt.wantQuery {
				t.Fatalf("query = %q, want %q", gotQuery, tt.wantQuery)
			}
			codes := []string{}
			for _, r := range results {
				codes = append(codes, r.UnitCode)
			}
			if diff := cmp.Diff(tt.want, codes); diff != "" {
				t.Fatalf("results mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSearch_ProjectsCodeAndName(t *testing.T) {
	_, results := Search(readyCatalog(), "networks")
	want := []state.SearchResult{{UnitCode: "CITS3002", UnitName: "Computer Networks"}}
	if diff := cmp.Diff(want, results); diff != "" {
		t.Fatalf("results mismatch (-want +got):\n%s", diff)
	}
}

func TestSearch_UnreadyCatalogYieldsNothing(t *testing.T) {
	for _, catalog := range []state.CatalogState{
		{Items: sampleCatalog, IsFetching: true},
		{Items: sampleCatalog, DidInvalidate: true},
	} {
		gotQuery, results := Search(catalog, "CITS")
		if len(results) != 0 {
			t.Fatalf("results = %v, want none for catalog %+v", results, catalog)
		}
		if gotQuery != "CITS" {
			t.Fatalf("query = %q, want the original query", gotQuery)
		}
	}
}

func TestSearch_ShortQueriesNeverMatch(t *testing.T) {
	catalog := state.CatalogState{Items: []monplan.Unit{{UnitCode: "ab", UnitName: "a"}, {UnitCode: "ÉÉ", UnitName: "é"}}}
	for _, q := range []string{"", "a", "ab", "AB", "ÉÉ", "é"} {
		if _, results := Search(catalog, q); len(results) != 0 {
			t.Fatalf("Search(%q) = %v, want none", q, results)
		}
	}
}

func TestPerformSearch_EmitsEventsAndStoresResults(t *testing.T) {
	a, rec, _ := newTestActions()
	rec.Dispatch(state.AllUnitsSuccess{Response: sampleCatalog})
	rec.reset()

	results := a.PerformSearch("Algo")
	if len(results) != 2 {
		t.Fatalf("results = %v, want 2", results)
	}

	want := []state.EventType{
		state.TypeUpdateSearchQuery,
		state.TypeRequestSearchResults,
		state.TypeReceiveSearchResults,
	}
	if diff := cmp.Diff(want, rec.seen()); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}

	search := rec.Snapshot().Search
	if search.Query != "Algo" || search.IsFetching || len(search.Results) != 2 {
		t.Fatalf("search = %#v", search)
	}
}

func TestPerformSearch_ShortQueryRecordsLowerCase(t *testing.T) {
	a, rec, _ := newTestActions()
	rec.Dispatch(state.AllUnitsSuccess{Response: sampleCatalog})

	a.PerformSearch("FI")
	if got := rec.Snapshot().Search.Query; got != "fi" {
		t.Fatalf("Query = %q, want fi", got)
	}
}

func TestPerformSearch_WhileCatalogLoading(t *testing.T) {
	a, rec, _ := newTestActions()
	rec.Dispatch(state.AllUnitsSuccess{Response: sampleCatalog}, state.AllUnitsRequest{})

	if results := a.PerformSearch("FIT"); len(results) != 0 {
		t.Fatalf("results = %v, want none while loading", results)
	}
	if got := rec.Snapshot().Search.Query; got != "FIT" {
		t.Fatalf("Query = %q, want FIT", got)
	}
}

func TestRevealSearchResultsIfNeeded(t *testing.T) {
	a, rec, _ := newTestActions()

	if a.RevealSearchResultsIfNeeded() {
		t.Fatalf("reveal reported a transition while results were visible")
	}
	if len(rec.seen()) != 0 {
		t.Fatalf("events = %v, want none", rec.seen())
	}

	a.HideSearchResults()
	rec.reset()
	if !a.RevealSearchResultsIfNeeded() {
		t.Fatalf("reveal did not fire while results were hidden")
	}
	if diff := cmp.Diff([]state.EventType{state.TypeRevealSearchResults}, rec.seen()); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}
	if rec.Snapshot().Search.AreResultsHidden {
		t.Fatalf("results still hidden after reveal")
	}

	rec.reset()
	a.RevealSearchResultsIfNeeded()
	if len(rec.seen()) != 0 {
		t.Fatalf("second reveal emitted %v", rec.seen())
	}
}
