package services

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/solutiontech214/MindTune/models"
	"github.com/solutiontech214/MindTune/storage"
)

// CheckinService wraps the check-in store with the aggregation logic: upsert,
// monthly stats and the consecutive-day streak.
type CheckinService struct {
	store storage.CheckinStore
	now   func() time.Time
}

func NewCheckinService(store storage.CheckinStore) *CheckinService {
	return &CheckinService{store: store, now: time.Now}
}

// SubmitCheckin inserts or overwrites the check-in for the payload's user and
// date. Ratings are taken as already clamped by the caller.
func (s *CheckinService) SubmitCheckin(ctx context.Context, in storage.CheckinUpsert) (*models.DailyCheckin, error) {
	return s.store.Upsert(ctx, in)
}

// GetByDate returns the user's check-in for a date, or nil when none exists.
func (s *CheckinService) GetByDate(ctx context.Context, userID, date string) (*models.DailyCheckin, error) {
	return s.store.GetByDate(ctx, userID, date)
}

// Month returns the user's check-ins for a calendar month, date ascending.
func (s *CheckinService) Month(ctx context.Context, userID string, year, month int) ([]models.DailyCheckin, error) {
	return s.store.Month(ctx, userID, year, month)
}

// MonthlyStats loads a calendar month and summarizes it. An empty month
// yields the zero-valued stats, never an error.
func (s *CheckinService) MonthlyStats(ctx context.Context, userID string, year, month int) (*models.MonthlyStats, error) {
	checkins, err := s.store.Month(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}
	stats := ComputeMonthlyStats(checkins)
	return &stats, nil
}

// Streak counts consecutive check-in days ending at today, walking backward
// one day at a time until the first gap. No check-in today means 0.
func (s *CheckinService) Streak(ctx context.Context, userID string) (int, error) {
	day := s.now()
	streak := 0
	for {
		rec, err := s.store.GetByDate(ctx, userID, day.Format("2006-01-02"))
		if err != nil {
			return 0, err
		}
		if rec == nil {
			return streak, nil
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
}

// ComputeMonthlyStats summarizes a slice of check-ins: rounded averages of
// the five ratings, total goals achieved, and the five most common activity
// tags (descending count, ties in first-seen order).
func ComputeMonthlyStats(checkins []models.DailyCheckin) models.MonthlyStats {
	stats := models.MonthlyStats{MostCommonActivities: []models.ActivityCount{}}
	if len(checkins) == 0 {
		return stats
	}

	var mood, stress, energy, sleep, anxiety int
	counts := map[string]int{}
	order := []string{}
	for _, c := range checkins {
		mood += c.MoodRating
		stress += c.StressLevel
		energy += c.EnergyLevel
		sleep += c.SleepQuality
		anxiety += c.AnxietyLevel
		stats.TotalGoalsAchieved += c.GoalsAchieved
		for _, a := range c.Activities {
			if _, seen := counts[a]; !seen {
				order = append(order, a)
			}
			counts[a]++
		}
	}

	n := len(checkins)
	stats.TotalCheckins = n
	stats.AverageMood = roundAverage(mood, n)
	stats.AverageStress = roundAverage(stress, n)
	stats.AverageEnergy = roundAverage(energy, n)
	stats.AverageSleep = roundAverage(sleep, n)
	stats.AverageAnxiety = roundAverage(anxiety, n)

	ranked := make([]models.ActivityCount, 0, len(order))
	for _, a := range order {
		ranked = append(ranked, models.ActivityCount{Activity: a, Count: counts[a]})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}
	stats.MostCommonActivities = ranked

	return stats
}

func roundAverage(sum, n int) int {
	return int(math.Round(float64(sum) / float64(n)))
}
