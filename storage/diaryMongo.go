package storage

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/solutiontech214/MindTune/models"
)

// MongoDiaryStore keeps journal entries in the diary_entries collection.
type MongoDiaryStore struct {
	coll *mongo.Collection
}

func NewMongoDiaryStore(db *mongo.Database) *MongoDiaryStore {
	return &MongoDiaryStore{coll: db.Collection("diary_entries")}
}

func (s *MongoDiaryStore) Create(ctx context.Context, userID string, in DiaryEntryInput) (*models.DiaryEntry, error) {
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
	if _, err := s.coll.InsertOne(ctx, entry); err != nil {
		return nil, fmt.Errorf("insert diary entry: %w", err)
	}
	return entry, nil
}

func (s *MongoDiaryStore) Update(ctx context.Context, userID string, id primitive.ObjectID, in DiaryEntryInput) (*models.DiaryEntry, error) {
	// Ownership is part of the filter, so another user's id is a miss.
	filter := bson.M{"_id": id, "user_id": userID}
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "title", Value: in.Title},
			{Key: "content", Value: in.Content},
			{Key: "emotion", Value: in.Emotion},
			{Key: "mood_rating", Value: in.MoodRating},
			{Key: "is_private", Value: in.IsPrivate},
			{Key: "updated_at", Value: time.Now()},
		}},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var out models.DiaryEntry
	err := s.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&out)
	if err == mongo.ErrNoDocuments {
		return nil, ErrDiaryEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update diary entry: %w", err)
	}
	return &out, nil
}

func (s *MongoDiaryStore) Delete(ctx context.Context, userID string, id primitive.ObjectID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return fmt.Errorf("delete diary entry: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrDiaryEntryNotFound
	}
	return nil
}

func (s *MongoDiaryStore) Get(ctx context.Context, userID string, id primitive.ObjectID) (*models.DiaryEntry, error) {
	var out models.DiaryEntry
	err := s.coll.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&out)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get diary entry: %w", err)
	}
	return &out, nil
}

func (s *MongoDiaryStore) List(ctx context.Context, userID string) ([]models.DiaryEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list diary entries: %w", err)
	}
	defer cursor.Close(ctx)

	out := []models.DiaryEntry{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode diary entries: %w", err)
	}
	return out, nil
}
