package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/solutiontech214/MindTune/models"
)

// MemoryDiaryStore is the transient counterpart of MongoDiaryStore, used in
// degraded mode and in tests. Insertion order is tracked so that entries
// created within the same clock tick still list newest first.
type MemoryDiaryStore struct {
	mu      sync.Mutex
	entries map[string][]*models.DiaryEntry // userID -> entries, oldest first
}

func NewMemoryDiaryStore() *MemoryDiaryStore {
	return &MemoryDiaryStore{entries: make(map[string][]*models.DiaryEntry)}
}

func (s *MemoryDiaryStore) Create(_ context.Context, userID string, in DiaryEntryInput) (*models.DiaryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	entry := &models.DiaryEntry{
		ID:         primitive.NewObjectID(),
		UserID:     userID,
		Title:      in.Title,
		Content:    in.Content,
		Emotion:    in.Emotion,
		MoodRating: in.MoodRating,
		IsPrivate:  in.IsPrivate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.entries[userID] = append(s.entries[userID], entry)

	cp := *entry
	return &cp, nil
}

func (s *MemoryDiaryStore) Update(_ context.Context, userID string, id primitive.ObjectID, in DiaryEntryInput) (*models.DiaryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.find(userID, id)
	if entry == nil {
		return nil, ErrDiaryEntryNotFound
	}
	entry.Title = in.Title
	entry.Content = in.Content
	entry.Emotion = in.Emotion
	entry.MoodRating = in.MoodRating
	entry.IsPrivate = in.IsPrivate
	entry.UpdatedAt = time.Now()

	cp := *entry
	return &cp, nil
}

func (s *MemoryDiaryStore) Delete(_ context.Context, userID string, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.entries[userID]
	for i, e := range list {
		if e.ID == id {
			s.entries[userID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return ErrDiaryEntryNotFound
}

func (s *MemoryDiaryStore) Get(_ context.Context, userID string, id primitive.ObjectID) (*models.DiaryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.find(userID, id)
	if entry == nil {
		return nil, nil
	}
	cp := *entry
	return &cp, nil
}

func (s *MemoryDiaryStore) List(_ context.Context, userID string) ([]models.DiaryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.entries[userID]
	out := make([]models.DiaryEntry, 0, len(list))
	// Reverse insertion order: newest first.
	for i := len(list) - 1; i >= 0; i-- {
		out = append(out, *list[i])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *MemoryDiaryStore) find(userID string, id primitive.ObjectID) *models.DiaryEntry {
	for _, e := range s.entries[userID] {
		if e.ID == id {
			return e
		}
	}
	return nil
}
