package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DailyCheckin is one wellness check-in per user per calendar date.
// The (user_id, checkin_date) pair is unique: submitting again on the same
// date overwrites the ratings in place and keeps the original id/created_at.
type DailyCheckin struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         string             `bson:"user_id" json:"user_id"`
	CheckinDate    string             `bson:"checkin_date" json:"checkin_date"`     // YYYY-MM-DD
	MoodRating     int                `bson:"mood_rating" json:"mood_rating"`       // 1-10
	StressLevel    int                `bson:"stress_level" json:"stress_level"`     // 1-10
	EnergyLevel    int                `bson:"energy_level" json:"energy_level"`     // 1-10
	SleepQuality   int                `bson:"sleep_quality" json:"sleep_quality"`   // 1-10
	AnxietyLevel   int                `bson:"anxiety_level" json:"anxiety_level"`   // 1-10
	Activities     []string           `bson:"activities" json:"activities"`
	GoalsAchieved  int                `bson:"goals_achieved" json:"goals_achieved"` // 0-10
	Notes          string             `bson:"notes,omitempty" json:"notes,omitempty"`
	GratitudeNotes string             `bson:"gratitude_notes,omitempty" json:"gratitude_notes,omitempty"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}

// ActivityCount is one entry of MonthlyStats.MostCommonActivities.
type ActivityCount struct {
	Activity string `json:"activity"`
	Count    int    `json:"count"`
}

// MonthlyStats is the computed summary of one user's check-ins for a
// calendar month. Averages are rounded to the nearest integer.
type MonthlyStats struct {
	TotalCheckins        int             `json:"total_checkins"`
	AverageMood          int             `json:"average_mood"`
	AverageStress        int             `json:"average_stress"`
	AverageEnergy        int             `json:"average_energy"`
	AverageSleep         int             `json:"average_sleep"`
	AverageAnxiety       int             `json:"average_anxiety"`
	TotalGoalsAchieved   int             `json:"total_goals_achieved"`
	MostCommonActivities []ActivityCount `json:"most_common_activities"`
}

// KnownActivities is the fixed activity vocabulary offered by the check-in
// form. The aggregator counts whatever tags are stored; this list is the
// controller's filter for incoming payloads.
var KnownActivities = []string{
	"exercise", "meditation", "reading", "socializing",
	"work", "hobbies", "rest", "outdoors",
}
