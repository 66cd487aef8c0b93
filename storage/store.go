package storage

import (
	"context"

	"github.com/solutiontech214/MindTune/models"
)

// CheckinUpsert carries the mutable fields of a daily check-in submission.
// Identity (user + date) is part of the payload; id and created_at belong to
// the store and survive overwrites.
type CheckinUpsert struct {
	UserID         string
	CheckinDate    string // YYYY-MM-DD
	MoodRating     int
	StressLevel    int
	EnergyLevel    int
	SleepQuality   int
	AnxietyLevel   int
	Activities     []string
	GoalsAchieved  int
	Notes          string
	GratitudeNotes string
}

// CheckinStore is the single persistence boundary for daily check-ins.
// Upsert must be atomic per (userID, checkinDate): concurrent submissions
// for the same user and date never produce two records.
type CheckinStore interface {
	// Upsert inserts the check-in for (UserID, CheckinDate) or overwrites
	// the existing one, preserving its id and created_at, and returns the
	// stored record.
	Upsert(ctx context.Context, in CheckinUpsert) (*models.DailyCheckin, error)

	// GetByDate returns the check-in for the given user and date, or
	// (nil, nil) when none exists.
	GetByDate(ctx context.Context, userID, date string) (*models.DailyCheckin, error)

	// Month returns the user's check-ins for a calendar month, ordered by
	// date ascending. An empty month yields an empty slice, not an error.
	Month(ctx context.Context, userID string, year, month int) ([]models.DailyCheckin, error)
}
