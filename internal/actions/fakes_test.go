package actions

import (
	"context"
	"sync"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"

	"github.com/monplan/muse/internal/monplan"
	"github.com/monplan/muse/internal/state"
)

// fakeAPI serves canned units and counts calls per endpoint.
type fakeAPI struct {
	mu          sync.Mutex
	catalog     []monplan.Unit
	units       map[string]monplan.Unit
	err         error
	catalogHits int
	unitHits    map[string]int
	block       chan struct{}
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{units: map[string]monplan.Unit{}, unitHits: map[string]int{}}
}

func (f *fakeAPI) FetchAllUnits(ctx context.Context) ([]monplan.Unit, error) {
	f.mu.Lock()
	f.catalogHits++
	units, err := f.catalog, f.err
	f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return units, nil
}

func (f *fakeAPI) FetchUnit(ctx context.Context, unitCode string) (monplan.Unit, error) {
	f.mu.Lock()
	f.unitHits[unitCode]++
	block := f.block
	f.mu.Unlock()
	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return monplan.Unit{}, monplan.ErrRemoteCall
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return monplan.Unit{}, f.err
	}
	unit, ok := f.units[unitCode]
	if !ok {
		return monplan.Unit{}, monplan.ErrRemoteCall
	}
	return unit, nil
}

func (f *fakeAPI) hits(unitCode string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.unitHits[unitCode]
}

func (f *fakeAPI) totalUnitHits() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.unitHits {
		total += n
	}
	return total
}

// recorder wraps a Store and remembers every dispatched event type.
type recorder struct {
	*state.Store
	mu    sync.Mutex
	types []state.EventType
}

func newRecorder() *recorder {
	return &recorder{Store: state.NewStore(0, nil)}
}

func (r *recorder) Dispatch(events ...state.Event) {
	r.mu.Lock()
	for _, ev := range events {
		r.types = append(r.types, ev.Type())
	}
	r.mu.Unlock()
	r.Store.Dispatch(events...)
}

func (r *recorder) seen() []state.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	dup := make([]state.EventType, len(r.types))
	copy(dup, r.types)
	return dup
}

func (r *recorder) reset() {
	r.mu.Lock()
	r.types = nil
	r.mu.Unlock()
}

func quietLogger() log.Interface {
	return &log.Logger{Handler: discard.Default, Level: log.FatalLevel}
}

func newTestActions() (*Actions, *recorder, *fakeAPI) {
	rec := newRecorder()
	api := newFakeAPI()
	return New(rec, api, quietLogger()), rec, api
}
