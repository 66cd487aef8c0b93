package storage

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/solutiontech214/MindTune/models"
)

// ErrDiaryEntryNotFound is returned by updates and deletes that match no
// entry owned by the given user.
var ErrDiaryEntryNotFound = errors.New("diary entry not found")

// DiaryEntryInput carries the writable fields of a diary entry.
type DiaryEntryInput struct {
	Title      string
	Content    string
	Emotion    string
	MoodRating int
	IsPrivate  bool
}

// DiaryStore persists journal entries. Every operation is scoped to the
// owning user: an entry id belonging to another user behaves as missing.
type DiaryStore interface {
	// Create stores a new entry for the user and returns it.
	Create(ctx context.Context, userID string, in DiaryEntryInput) (*models.DiaryEntry, error)

	// Update overwrites the writable fields of the user's entry, refreshing
	// updated_at and preserving id/created_at. ErrDiaryEntryNotFound when
	// the id does not exist or belongs to someone else.
	Update(ctx context.Context, userID string, id primitive.ObjectID, in DiaryEntryInput) (*models.DiaryEntry, error)

	// Delete removes the user's entry. ErrDiaryEntryNotFound when absent.
	Delete(ctx context.Context, userID string, id primitive.ObjectID) error

	// Get returns the user's entry, or (nil, nil) when absent.
	Get(ctx context.Context, userID string, id primitive.ObjectID) (*models.DiaryEntry, error)

	// List returns all of the user's entries, newest first.
	List(ctx context.Context, userID string) ([]models.DiaryEntry, error)
}
