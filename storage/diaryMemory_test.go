package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func sampleEntry(title string) DiaryEntryInput {
	return DiaryEntryInput{
		Title:      title,
		Content:    "wrote some thoughts down",
		Emotion:    "Peace",
		MoodRating: 7,
		IsPrivate:  true,
	}
}

func TestMemoryDiaryCreateAndList(t *testing.T) {
	t.Parallel()
	store := NewMemoryDiaryStore()
	ctx := context.Background()

	first, err := store.Create(ctx, "u1", sampleEntry("monday"))
	require.NoError(t, err)
	second, err := store.Create(ctx, "u1", sampleEntry("tuesday"))
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "u1", first.UserID)
	assert.False(t, first.CreatedAt.IsZero())

	entries, err := store.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// Newest first.
	assert.Equal(t, "tuesday", entries[0].Title)
	assert.Equal(t, "monday", entries[1].Title)

	other, err := store.List(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestMemoryDiaryUpdatePreservesIdentity(t *testing.T) {
	t.Parallel()
	store := NewMemoryDiaryStore()
	ctx := context.Background()

	created, err := store.Create(ctx, "u1", sampleEntry("draft"))
	require.NoError(t, err)

	in := sampleEntry("final")
	in.Emotion = "Joy"
	in.MoodRating = 9
	updated, err := store.Update(ctx, "u1", created.ID, in)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "final", updated.Title)
	assert.Equal(t, "Joy", updated.Emotion)
	assert.Equal(t, 9, updated.MoodRating)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestMemoryDiaryOwnershipScoping(t *testing.T) {
	t.Parallel()
	store := NewMemoryDiaryStore()
	ctx := context.Background()

	created, err := store.Create(ctx, "u1", sampleEntry("private"))
	require.NoError(t, err)

	// Another user cannot see, change, or remove the entry.
	got, err := store.Get(ctx, "u2", created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = store.Update(ctx, "u2", created.ID, sampleEntry("hijacked"))
	assert.ErrorIs(t, err, ErrDiaryEntryNotFound)

	err = store.Delete(ctx, "u2", created.ID)
	assert.ErrorIs(t, err, ErrDiaryEntryNotFound)

	// The owner still sees the original.
	got, err = store.Get(ctx, "u1", created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "private", got.Title)
}

func TestMemoryDiaryDelete(t *testing.T) {
	t.Parallel()
	store := NewMemoryDiaryStore()
	ctx := context.Background()

	created, err := store.Create(ctx, "u1", sampleEntry("gone soon"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "u1", created.ID))

	got, err := store.Get(ctx, "u1", created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	err = store.Delete(ctx, "u1", created.ID)
	assert.ErrorIs(t, err, ErrDiaryEntryNotFound)
}

func TestMemoryDiaryMissingID(t *testing.T) {
	t.Parallel()
	store := NewMemoryDiaryStore()
	ctx := context.Background()

	got, err := store.Get(ctx, "u1", primitive.NewObjectID())
	require.NoError(t, err)
	assert.Nil(t, got)
}
