package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/solutiontech214/MindTune/models"
	"github.com/solutiontech214/MindTune/storage"
)

// DiaryService exposes journal CRUD over the diary store. All operations
// are scoped to the calling user; there is no cross-user access, admin
// included.
type DiaryService struct {
	store storage.DiaryStore
}

func NewDiaryService(store storage.DiaryStore) *DiaryService {
	return &DiaryService{store: store}
}

func (s *DiaryService) Create(ctx context.Context, userID string, in storage.DiaryEntryInput) (*models.DiaryEntry, error) {
	return s.store.Create(ctx, userID, in)
}

func (s *DiaryService) Update(ctx context.Context, userID string, id primitive.ObjectID, in storage.DiaryEntryInput) (*models.DiaryEntry, error) {
	return s.store.Update(ctx, userID, id, in)
}

func (s *DiaryService) Delete(ctx context.Context, userID string, id primitive.ObjectID) error {
	return s.store.Delete(ctx, userID, id)
}

func (s *DiaryService) Get(ctx context.Context, userID string, id primitive.ObjectID) (*models.DiaryEntry, error) {
	return s.store.Get(ctx, userID, id)
}

func (s *DiaryService) List(ctx context.Context, userID string) ([]models.DiaryEntry, error) {
	return s.store.List(ctx, userID)
}
