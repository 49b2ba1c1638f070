package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/quake-data-dashboard/internal/domain"
)

var fetchedAt = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func mag(v float64) *float64 { return &v }

func sampleBatch() []domain.Event {
	return []domain.Event{
		{ID: "ev-1", Magnitude: mag(5.1), Place: "Kermadec Islands"},
		{ID: "ev-2", Magnitude: mag(2.3), Place: "Central California"},
		{ID: "ev-3", Magnitude: nil, Place: ""},
	}
}

func TestReplaceAll(t *testing.T) {
	s := New()
	s.ReplaceAll(sampleBatch(), fetchedAt)

	status := s.Status()
	assert.Equal(t, 3, status.EventCount)
	assert.Equal(t, fetchedAt, status.LastUpdated)
	assert.False(t, status.Stale)
	assert.Empty(t, status.LastError)

	events := s.Events()
	require.Len(t, events, 3)
	assert.Equal(t, "ev-1", events[0].ID)
	assert.Equal(t, "ev-3", events[2].ID)
}

func TestReplaceAll_CopiesInput(t *testing.T) {
	batch := sampleBatch()
	s := New()
	s.ReplaceAll(batch, fetchedAt)

	batch[0].ID = "mutated"

	got, ok := s.Get("ev-1")
	require.True(t, ok)
	assert.Equal(t, "ev-1", got.ID)
}

func TestRecordFailure_PreservesPreviousBatch(t *testing.T) {
	s := New()
	s.ReplaceAll(sampleBatch(), fetchedAt)

	s.RecordFailure(errors.New("feed request failed: status 503"))

	// The prior snapshot stays visible, flagged stale.
	status := s.Status()
	assert.Equal(t, 3, status.EventCount)
	assert.True(t, status.Stale)
	assert.Equal(t, "feed request failed: status 503", status.LastError)
	assert.Equal(t, fetchedAt, status.LastUpdated)
	assert.Len(t, s.Events(), 3)
}

func TestReplaceAll_ClearsStaleFlag(t *testing.T) {
	s := New()
	s.ReplaceAll(sampleBatch(), fetchedAt)
	s.RecordFailure(errors.New("boom"))

	s.ReplaceAll(sampleBatch(), fetchedAt.Add(time.Minute))

	status := s.Status()
	assert.False(t, status.Stale)
	assert.Empty(t, status.LastError)
	assert.Equal(t, fetchedAt.Add(time.Minute), status.LastUpdated)
}

func TestGet(t *testing.T) {
	s := New()
	s.ReplaceAll(sampleBatch(), fetchedAt)

	got, ok := s.Get("ev-2")
	require.True(t, ok)
	assert.Equal(t, "Central California", got.Place)

	_, ok = s.Get("nope")
	assert.False(t, ok)
}

func TestSelection(t *testing.T) {
	s := New()
	s.ReplaceAll(sampleBatch(), fetchedAt)

	t.Run("select unknown id", func(t *testing.T) {
		err := s.Select("nope")
		assert.ErrorIs(t, err, ErrUnknownEvent)

		_, ok := s.Selected()
		assert.False(t, ok)
	})

	t.Run("select and read back", func(t *testing.T) {
		require.NoError(t, s.Select("ev-2"))

		got, ok := s.Selected()
		require.True(t, ok)
		assert.Equal(t, "ev-2", got.ID)
	})

	t.Run("clear selection", func(t *testing.T) {
		require.NoError(t, s.Select("ev-2"))
		s.ClearSelection()

		_, ok := s.Selected()
		assert.False(t, ok)
	})
}

func TestSelection_SurvivesRefreshWhenStillPresent(t *testing.T) {
	s := New()
	s.ReplaceAll(sampleBatch(), fetchedAt)
	require.NoError(t, s.Select("ev-2"))

	s.ReplaceAll(sampleBatch(), fetchedAt.Add(time.Minute))

	got, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "ev-2", got.ID)
}

func TestSelection_DroppedWhenAbsentFromNewBatch(t *testing.T) {
	s := New()
	s.ReplaceAll(sampleBatch(), fetchedAt)
	require.NoError(t, s.Select("ev-2"))

	s.ReplaceAll([]domain.Event{{ID: "ev-9"}}, fetchedAt.Add(time.Minute))

	_, ok := s.Selected()
	assert.False(t, ok)
}

func TestEmptyStore(t *testing.T) {
	s := New()

	assert.Empty(t, s.Events())
	_, ok := s.Get("anything")
	assert.False(t, ok)
	status := s.Status()
	assert.Zero(t, status.EventCount)
	assert.True(t, status.LastUpdated.IsZero())
}
