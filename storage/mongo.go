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

// MongoCheckinStore keeps check-ins in the daily_checkins collection. The
// (user_id, checkin_date) filter plus upsert makes the write atomic per key
// on the server side.
type MongoCheckinStore struct {
	coll *mongo.Collection
}

func NewMongoCheckinStore(db *mongo.Database) *MongoCheckinStore {
	return &MongoCheckinStore{coll: db.Collection("daily_checkins")}
}

// EnsureIndexes creates the unique key backing the upsert contract. Safe to
// call on every startup.
func (s *MongoCheckinStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "checkin_date", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create checkin index: %w", err)
	}
	return nil
}

func (s *MongoCheckinStore) Upsert(ctx context.Context, in CheckinUpsert) (*models.DailyCheckin, error) {
	now := time.Now()
	activities := in.Activities
	if activities == nil {
		activities = []string{}
	}

	filter := bson.M{"user_id": in.UserID, "checkin_date": in.CheckinDate}
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "mood_rating", Value: in.MoodRating},
			{Key: "stress_level", Value: in.StressLevel},
			{Key: "energy_level", Value: in.EnergyLevel},
			{Key: "sleep_quality", Value: in.SleepQuality},
			{Key: "anxiety_level", Value: in.AnxietyLevel},
			{Key: "activities", Value: activities},
			{Key: "goals_achieved", Value: in.GoalsAchieved},
			{Key: "notes", Value: in.Notes},
			{Key: "gratitude_notes", Value: in.GratitudeNotes},
			{Key: "updated_at", Value: now},
		}},
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "user_id", Value: in.UserID},
			{Key: "checkin_date", Value: in.CheckinDate},
			{Key: "created_at", Value: now},
		}},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var out models.DailyCheckin
	if err := s.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&out); err != nil {
		return nil, fmt.Errorf("upsert checkin: %w", err)
	}
	return &out, nil
}

func (s *MongoCheckinStore) GetByDate(ctx context.Context, userID, date string) (*models.DailyCheckin, error) {
	var out models.DailyCheckin
	err := s.coll.FindOne(ctx, bson.M{"user_id": userID, "checkin_date": date}).Decode(&out)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get checkin by date: %w", err)
	}
	return &out, nil
}

func (s *MongoCheckinStore) Month(ctx context.Context, userID string, year, month int) ([]models.DailyCheckin, error) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	filter := bson.M{
		"user_id": userID,
		"checkin_date": bson.M{
			"$gte": first.Format("2006-01-02"),
			"$lt":  next.Format("2006-01-02"),
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "checkin_date", Value: 1}})

	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("query monthly checkins: %w", err)
	}
	defer cursor.Close(ctx)

	out := []models.DailyCheckin{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode monthly checkins: %w", err)
	}
	return out, nil
}
