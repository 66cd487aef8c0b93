package storage

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleUpsert(userID, date string) CheckinUpsert {
	return CheckinUpsert{
		UserID:       userID,
		CheckinDate:  date,
		MoodRating:   5,
		StressLevel:  5,
		EnergyLevel:  5,
		SleepQuality: 5,
		AnxietyLevel: 5,
		Activities:   []string{"rest"},
	}
}

func TestMemoryStoreUpsertIdentity(t *testing.T) {
	t.Parallel()
	store := NewMemoryCheckinStore()
	ctx := context.Background()

	first, err := store.Upsert(ctx, sampleUpsert("u1", "2026-08-01"))
	require.NoError(t, err)

	in := sampleUpsert("u1", "2026-08-01")
	in.MoodRating = 9
	second, err := store.Upsert(ctx, in)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.Equal(t, 9, second.MoodRating)
	assert.False(t, second.UpdatedAt.Before(first.UpdatedAt))
}

func TestMemoryStoreGetByDate(t *testing.T) {
	t.Parallel()
	store := NewMemoryCheckinStore()
	ctx := context.Background()

	_, err := store.Upsert(ctx, sampleUpsert("u1", "2026-08-01"))
	require.NoError(t, err)

	got, err := store.GetByDate(ctx, "u1", "2026-08-01")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "2026-08-01", got.CheckinDate)

	missing, err := store.GetByDate(ctx, "u1", "2026-08-02")
	require.NoError(t, err)
	assert.Nil(t, missing)

	otherUser, err := store.GetByDate(ctx, "u2", "2026-08-01")
	require.NoError(t, err)
	assert.Nil(t, otherUser)
}

func TestMemoryStoreMonthRange(t *testing.T) {
	t.Parallel()
	store := NewMemoryCheckinStore()
	ctx := context.Background()

	for _, date := range []string{"2026-07-31", "2026-08-01", "2026-08-15", "2026-08-31", "2026-09-01"} {
		_, err := store.Upsert(ctx, sampleUpsert("u1", date))
		require.NoError(t, err)
	}
	// Another user's August must not leak in.
	_, err := store.Upsert(ctx, sampleUpsert("u2", "2026-08-10"))
	require.NoError(t, err)

	got, err := store.Month(ctx, "u1", 2026, 8)
	require.NoError(t, err)
	dates := []string{}
	for _, c := range got {
		dates = append(dates, c.CheckinDate)
	}
	assert.Equal(t, []string{"2026-08-01", "2026-08-15", "2026-08-31"}, dates)
}

func TestMemoryStoreConcurrentUpsertsSameKey(t *testing.T) {
	t.Parallel()
	store := NewMemoryCheckinStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(mood int) {
			defer wg.Done()
			in := sampleUpsert("u1", "2026-08-20")
			in.MoodRating = mood%10 + 1
			_, err := store.Upsert(ctx, in)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got, err := store.Month(ctx, "u1", 2026, 8)
	require.NoError(t, err)
	require.Len(t, got, 1)
}
