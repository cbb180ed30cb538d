package scheduler

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvmeteo/heatwave-dashboard/internal/climate"
	"github.com/lvmeteo/heatwave-dashboard/internal/observability"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStartDisabledWithZeroInterval(t *testing.T) {
	store := climate.NewStore(climate.NewDataset(nil, nil, false))
	s := New(store, func() (*climate.Dataset, error) {
		t.Fatal("loader must not run when reloading is disabled")
		return nil, nil
	}, 0, discardLogger(), observability.NewMetricsForTesting())

	require.NoError(t, s.Start())
	s.Stop()
}

func TestReloadReplacesSnapshot(t *testing.T) {
	initial := climate.NewDataset(nil, nil, false)
	store := climate.NewStore(initial)

	fresh := climate.NewDataset([]climate.HWIRecord{
		{Year: 2000, Source: climate.SourceObservations, Level: climate.LevelYellow, HWI: 1},
	}, nil, false)

	s := New(store, func() (*climate.Dataset, error) { return fresh, nil },
		time.Hour, discardLogger(), observability.NewMetricsForTesting())

	s.reload()

	assert.Equal(t, fresh.ID, store.Snapshot().ID)
	assert.Len(t, store.Snapshot().HWI, 1)
}

func TestReloadKeepsSnapshotOnError(t *testing.T) {
	initial := climate.NewDataset(nil, nil, false)
	store := climate.NewStore(initial)

	s := New(store, func() (*climate.Dataset, error) { return nil, errors.New("disk gone") },
		time.Hour, discardLogger(), observability.NewMetricsForTesting())

	s.reload()

	assert.Equal(t, initial.ID, store.Snapshot().ID)
}
