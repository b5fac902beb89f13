package state

import "github.com/monplan/muse/internal/monplan"

// Status describes how a piece of remote data should be presented.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusInvalid
	StatusReady
	StatusMissing
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusInvalid:
		return "invalid"
	case StatusReady:
		return "ready"
	case StatusMissing:
		return "missing"
	default:
		return "idle"
	}
}

// CatalogStatus reports whether the catalog is loading, failed, or usable.
func (s State) CatalogStatus() Status {
	switch {
	case s.Catalog.IsFetching:
		return StatusLoading
	case s.Catalog.DidInvalidate:
		return StatusInvalid
	default:
		return StatusReady
	}
}

// UnitView is what a renderer needs to draw the open unit.
type UnitView struct {
	UnitCode         string
	Status           Status
	Detail           *monplan.Unit
	CanGoBack        bool
	PreviousUnitCode string
}

// CurrentUnit derives the view of the navigator's open unit. Loading wins
// over a stale detail, and a failed fetch wins over an old detail.
func (s State) CurrentUnit() UnitView {
	nav := s.Navigator
	view := UnitView{UnitCode: nav.CurrentUnitCode, CanGoBack: nav.PreviousUnitCode != nil}
	if nav.PreviousUnitCode != nil {
		view.PreviousUnitCode = *nav.PreviousUnitCode
	}
	if nav.CurrentUnitCode == "" {
		view.Status = StatusIdle
		return view
	}
	entry, ok := s.Cache[nav.CurrentUnitCode]
	switch {
	case !ok:
		view.Status = StatusMissing
	case entry.IsFetching:
		view.Status = StatusLoading
	case entry.DidInvalidate:
		view.Status = StatusInvalid
	case entry.Detail != nil:
		view.Status = StatusReady
		view.Detail = entry.Detail
	default:
		view.Status = StatusMissing
	}
	return view
}
