package state

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/monplan/muse/internal/monplan"
)

func TestStore_ZeroValueIsUsable(t *testing.T) {
	var s Store

	snap := s.Snapshot()
	if snap.Catalog.IsFetching || snap.Catalog.DidInvalidate || len(snap.Catalog.Items) != 0 {
		t.Fatalf("zero snapshot catalog = %#v, want empty", snap.Catalog)
	}
	if _, ok := s.Lookup("FIT1045"); ok {
		t.Fatalf("Lookup on empty store found an entry")
	}
	if !s.LastUpdated().IsZero() {
		t.Fatalf("LastUpdated = %v, want zero", s.LastUpdated())
	}

	s.Dispatch(AllUnitsRequest{})
	if !s.Snapshot().Catalog.IsFetching {
		t.Fatalf("IsFetching = false after ALL_UNITS_REQUEST")
	}
	if s.Journal() != nil {
		t.Fatalf("zero-value store should not keep a journal")
	}
}

func TestStore_SnapshotIsIndependent(t *testing.T) {
	s := NewStore(0, nil)
	s.Dispatch(
		AllUnitsSuccess{Response: []monplan.Unit{{UnitCode: "FIT1045", LocationAndTime: []string{"Clayton"}}}},
		UnitDetailsRequest{UnitCode: "FIT1045"},
		UnitDetailsSuccess{UnitCode: "FIT1045", Response: monplan.Unit{UnitCode: "FIT1045", UnitName: "Algorithms"}},
		UpdateCurrentUnit{UnitCode: "FIT1045"},
		UpdateCurrentUnit{UnitCode: "FIT2004"},
	)

	snap := s.Snapshot()
	snap.Catalog.Items[0].LocationAndTime[0] = "Caulfield"
	snap.Cache["FIT1045"].Detail.UnitName = "changed"
	delete(snap.Cache, "FIT1045")
	*snap.Navigator.PreviousUnitCode = "changed"

	again := s.Snapshot()
	if again.Catalog.Items[0].LocationAndTime[0] != "Clayton" {
		t.Fatalf("catalog shared with snapshot")
	}
	entry, ok := again.Entry("FIT1045")
	if !ok || entry.Detail.UnitName != "Algorithms" {
		t.Fatalf("cache shared with snapshot: %#v", entry)
	}
	if *again.Navigator.PreviousUnitCode != "FIT1045" {
		t.Fatalf("previous unit shared with snapshot")
	}

	looked, _ := s.Lookup("FIT1045")
	looked.Detail.UnitName = "mutated"
	if e, _ := s.Lookup("FIT1045"); e.Detail.UnitName != "Algorithms" {
		t.Fatalf("Lookup returned shared detail")
	}
}

func TestStore_JournalIsBounded(t *testing.T) {
	s := NewStore(2, nil)
	before := time.Now()
	s.Dispatch(AllUnitsRequest{}, AllUnitsFailure{Err: errors.New("boom")}, HideSearchResults{})

	journal := s.Journal()
	if len(journal) != 2 {
		t.Fatalf("journal length = %d, want 2", len(journal))
	}
	if journal[0].Event.Type() != TypeAllUnitsFailure || journal[1].Event.Type() != TypeHideSearchResults {
		t.Fatalf("journal = %v, want last two events", journal)
	}
	if journal[1].At.Before(before) {
		t.Fatalf("journal timestamp %v before %v", journal[1].At, before)
	}
	if s.LastUpdated().Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", s.LastUpdated(), before)
	}
}

func TestStore_NilEventsAreSkipped(t *testing.T) {
	s := NewStore(4, nil)
	s.Dispatch(nil, HideSearchResults{}, nil)
	if got := len(s.Journal()); got != 1 {
		t.Fatalf("journal length = %d, want 1", got)
	}
}

func TestStore_LastCompletionWins(t *testing.T) {
	s := NewStore(0, nil)
	s.Dispatch(UnitDetailsRequest{UnitCode: "FIT1045"}, UnitDetailsRequest{UnitCode: "FIT1045"})

	// The newer request finishes first; the older one lands afterwards.
	s.Dispatch(UnitDetailsSuccess{UnitCode: "FIT1045", Response: monplan.Unit{UnitName: "new"}})
	s.Dispatch(UnitDetailsSuccess{UnitCode: "FIT1045", Response: monplan.Unit{UnitName: "old"}})

	entry, _ := s.Lookup("FIT1045")
	if entry.Detail == nil || entry.Detail.UnitName != "old" {
		t.Fatalf("detail = %#v, want the last completion", entry.Detail)
	}
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	s := NewStore(8, nil)
	codes := []string{"FIT1045", "FIT2004", "FIT3155", "MAT1830"}

	var wg sync.WaitGroup
	for _, code := range codes {
		wg.Add(1)
		go func(code string) {
			defer wg.Done()
			s.Dispatch(UnitDetailsRequest{UnitCode: code})
			_ = s.Snapshot()
			s.Dispatch(UnitDetailsSuccess{UnitCode: code, Response: monplan.Unit{UnitCode: code}})
		}(code)
	}
	wg.Wait()

	snap := s.Snapshot()
	if len(snap.Cache) != len(codes) {
		t.Fatalf("cache size = %d, want %d", len(snap.Cache), len(codes))
	}
	for _, code := range codes {
		if e := snap.Cache[code]; e.IsFetching || e.Detail == nil || e.Detail.UnitCode != code {
			t.Fatalf("entry %s = %#v, want resolved", code, e)
		}
	}
}
