// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citations

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

type memStore struct {
	entries map[string]types.CitationObservation
	getErr  error
	putErr  error
	puts    int32
}

func newMemStore() *memStore {
	return &memStore{entries: map[string]types.CitationObservation{}}
}

func (m *memStore) Get(source, arxivID string) (types.CitationObservation, bool, error) {
	if m.getErr != nil {
		return types.CitationObservation{}, false, m.getErr
	}
	obs, ok := m.entries[source+"/"+arxivID]
	return obs, ok, nil
}

func (m *memStore) Put(obs types.CitationObservation) error {
	atomic.AddInt32(&m.puts, 1)
	if m.putErr != nil {
		return m.putErr
	}
	m.entries[obs.Source+"/"+obs.ArxivID] = obs
	return nil
}

func TestCachedHitSkipsFetch(t *testing.T) {
	store := newMemStore()
	store.entries["stub/1706.03762"] = types.CitationObservation{
		Source: "stub", ArxivID: "1706.03762", Count: 99, Status: types.StatusOK,
	}
	inner := okSource("stub", 1)
	src := Cached(inner, store)

	obs := src.FetchCount(context.Background(), testPaper())

	if obs.Count != 99 {
		t.Errorf("Count = %d, want cached 99", obs.Count)
	}
	if got := atomic.LoadInt32(&inner.calls); got != 0 {
		t.Errorf("inner fetched %d times on a cache hit, want 0", got)
	}
}

func TestCachedMissFetchesAndStores(t *testing.T) {
	store := newMemStore()
	inner := okSource("stub", 7)
	src := Cached(inner, store)

	obs := src.FetchCount(context.Background(), testPaper())

	if obs.Count != 7 {
		t.Errorf("Count = %d, want 7", obs.Count)
	}
	stored, ok, _ := store.Get("stub", "1706.03762")
	if !ok {
		t.Fatal("successful observation was not written back")
	}
	if stored.Count != 7 {
		t.Errorf("stored Count = %d, want 7", stored.Count)
	}
}

func TestCachedDoesNotStoreFailures(t *testing.T) {
	store := newMemStore()
	inner := failedSource("stub", types.StatusProviderUnavailable)
	src := Cached(inner, store)

	src.FetchCount(context.Background(), testPaper())

	if got := atomic.LoadInt32(&store.puts); got != 0 {
		t.Errorf("store saw %d puts for a failed observation, want 0", got)
	}
}

func TestCachedStoreErrorDegradesToFetch(t *testing.T) {
	store := newMemStore()
	store.getErr = errors.New("disk gone")
	inner := okSource("stub", 4)
	src := Cached(inner, store)

	obs := src.FetchCount(context.Background(), testPaper())

	if obs.Status != types.StatusOK || obs.Count != 4 {
		t.Errorf("got status %q count %d, want a live fetch", obs.Status, obs.Count)
	}
	if got := atomic.LoadInt32(&inner.calls); got != 1 {
		t.Errorf("inner fetched %d times, want 1", got)
	}
}

func TestCachedNilStoreIsPassthrough(t *testing.T) {
	inner := okSource("stub", 1)
	if src := Cached(inner, nil); src != Source(inner) {
		t.Error("Cached with nil store should return the source unchanged")
	}
}
