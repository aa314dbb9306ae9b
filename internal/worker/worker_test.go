package worker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chefwire/aggregator-service/internal/dedup"
	"chefwire/aggregator-service/internal/model"
	"chefwire/aggregator-service/internal/normalize"
	"chefwire/aggregator-service/internal/provider"
	"chefwire/aggregator-service/internal/rules"
	"chefwire/aggregator-service/internal/store"
	"chefwire/aggregator-service/internal/worker"
)

// fakeStore keeps upserted jobs in memory keyed by identity.
type fakeStore struct {
	loadErr error
	jobs    map[string]model.CanonicalJob
}

func newFakeStore() *fakeStore {
	return &fakeStore{jobs: map[string]model.CanonicalJob{}}
}

func (f *fakeStore) LoadExistingIdentities(ctx context.Context) ([]string, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	keys := make([]string, 0, len(f.jobs))
	for k := range f.jobs {
		keys = append(keys, k)
	}
	return keys, nil
}

func (f *fakeStore) UpsertJob(ctx context.Context, job *model.CanonicalJob) (store.UpsertResult, error) {
	key := dedup.JobKey(job)
	_, existed := f.jobs[key]
	f.jobs[key] = *job
	return store.UpsertResult{ID: key, WasNew: !existed}, nil
}

// fakeProvider serves one fixed page of records.
type fakeProvider struct {
	records []model.RawJobRecord
}

func (f *fakeProvider) Search(ctx context.Context, query, location, cursor string) ([]model.RawJobRecord, string, error) {
	return f.records, "", nil
}
func (f *fakeProvider) Name() string                 { return "fake" }
func (f *fakeProvider) Kind() normalize.ProviderKind { return normalize.KindJobAPI }

type recordingNotifier struct {
	got []model.RunStats
}

func (r *recordingNotifier) NotifyRun(ctx context.Context, stats model.RunStats) error {
	r.got = append(r.got, stats)
	return nil
}

func newWorker(st worker.JobStore, providers []provider.Provider, n worker.Notifier) *worker.Worker {
	src := rules.NewSource(rules.Default(), nil, 0)
	return worker.New(st, nil, src, providers, nil, n, []model.SearchPair{{Query: "sous chef", Location: "New York, NY"}})
}

func TestRun_PersistsSurvivors(t *testing.T) {
	st := newFakeStore()
	pr := &fakeProvider{records: []model.RawJobRecord{
		{Title: "Executive Chef", Company: "Riverside Bistro", Source: "fake"},
		{Title: "Line Cook", Company: "McDonald's", Source: "fake"},
	}}
	notifier := &recordingNotifier{}

	stats, err := newWorker(st, []provider.Provider{pr}, notifier).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalFetched)
	assert.Equal(t, 1, stats.Emitted)
	assert.Equal(t, 1, stats.Inserted)
	assert.Equal(t, 1, stats.ExcludedByFastFood)
	assert.Len(t, st.jobs, 1)
	require.Len(t, notifier.got, 1)
	assert.Equal(t, stats, notifier.got[0])
}

func TestRun_SecondRunUpdatesNothingNew(t *testing.T) {
	st := newFakeStore()
	pr := &fakeProvider{records: []model.RawJobRecord{
		{Title: "Executive Chef", Company: "Riverside Bistro", Source: "fake"},
	}}

	w := newWorker(st, []provider.Provider{pr}, nil)

	first, err := w.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, first.Inserted)

	second, err := newWorker(st, []provider.Provider{pr}, nil).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.Inserted)
	assert.Equal(t, 1, second.DuplicatesAgainstStore)
	assert.Len(t, st.jobs, 1)
}

func TestRun_IdentityIndexFailureIsFatal(t *testing.T) {
	st := newFakeStore()
	st.loadErr = errors.New("db down")

	_, err := newWorker(st, nil, nil).Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, worker.ErrIdentityIndexUnavailable)
}

func TestRun_IdentityIndexFailureOverride(t *testing.T) {
	st := newFakeStore()
	st.loadErr = errors.New("db down")
	pr := &fakeProvider{records: []model.RawJobRecord{
		{Title: "Executive Chef", Company: "Riverside Bistro", Source: "fake"},
	}}

	w := newWorker(st, []provider.Provider{pr}, nil)
	w.AllowMissingIndex = true

	stats, err := w.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Emitted)
}
