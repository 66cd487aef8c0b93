package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/solutiontech214/MindTune/models"
)

// MemoryCheckinStore is the transient development fallback used when no
// database is reachable, and the fixture store for tests. Data is scoped to
// the process lifetime. The single mutex serializes all upserts, which in
// particular serializes them per (user, date).
type MemoryCheckinStore struct {
	mu       sync.Mutex
	checkins map[string]map[string]*models.DailyCheckin // userID -> date -> record
}

func NewMemoryCheckinStore() *MemoryCheckinStore {
	return &MemoryCheckinStore{checkins: make(map[string]map[string]*models.DailyCheckin)}
}

func (s *MemoryCheckinStore) Upsert(_ context.Context, in CheckinUpsert) (*models.DailyCheckin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	activities := in.Activities
	if activities == nil {
		activities = []string{}
	}

	byDate, ok := s.checkins[in.UserID]
	if !ok {
		byDate = make(map[string]*models.DailyCheckin)
		s.checkins[in.UserID] = byDate
	}

	rec, exists := byDate[in.CheckinDate]
	if !exists {
		rec = &models.DailyCheckin{
			ID:          primitive.NewObjectID(),
			UserID:      in.UserID,
			CheckinDate: in.CheckinDate,
			CreatedAt:   now,
		}
		byDate[in.CheckinDate] = rec
	}

	rec.MoodRating = in.MoodRating
	rec.StressLevel = in.StressLevel
	rec.EnergyLevel = in.EnergyLevel
	rec.SleepQuality = in.SleepQuality
	rec.AnxietyLevel = in.AnxietyLevel
	rec.Activities = activities
	rec.GoalsAchieved = in.GoalsAchieved
	rec.Notes = in.Notes
	rec.GratitudeNotes = in.GratitudeNotes
	rec.UpdatedAt = now

	cp := *rec
	return &cp, nil
}

func (s *MemoryCheckinStore) GetByDate(_ context.Context, userID, date string) (*models.DailyCheckin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.checkins[userID][date]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (s *MemoryCheckinStore) Month(_ context.Context, userID string, year, month int) ([]models.DailyCheckin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	lo := first.Format("2006-01-02")
	hi := first.AddDate(0, 1, 0).Format("2006-01-02")

	out := []models.DailyCheckin{}
	for date, rec := range s.checkins[userID] {
		if date >= lo && date < hi {
			out = append(out, *rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CheckinDate < out[j].CheckinDate })
	return out, nil
}
