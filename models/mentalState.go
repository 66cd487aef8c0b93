package models

// Mood values accepted in a MentalState snapshot.
const (
	MoodAnxious   = "anxious"
	MoodCalm      = "calm"
	MoodDepressed = "depressed"
	MoodEnergetic = "energetic"
	MoodNeutral   = "neutral"
)

// Time-of-day bands, derived from the wall-clock hour when the client does
// not send one: 05-11 morning, 12-16 afternoon, 17-20 evening, else night.
const (
	TimeMorning   = "morning"
	TimeAfternoon = "afternoon"
	TimeEvening   = "evening"
	TimeNight     = "night"
)

// Session goals.
const (
	GoalRelaxation = "relaxation"
	GoalFocus      = "focus"
	GoalSleep      = "sleep"
	GoalEnergy     = "energy"
	GoalMeditation = "meditation"
)

// MentalState is the self-reported snapshot the recommendation engine scores
// against. Numeric fields are clamped to [1,10] and enums validated by the
// controller before the engine sees them; the engine does not re-check.
type MentalState struct {
	StressLevel     int      `json:"stress_level" validate:"min=1,max=10"`
	Mood            string   `json:"mood" validate:"oneof=anxious calm depressed energetic neutral"`
	SleepQuality    int      `json:"sleep_quality" validate:"min=1,max=10"`
	TimeOfDay       string   `json:"time_of_day" validate:"oneof=morning afternoon evening night"`
	SessionGoal     string   `json:"session_goal" validate:"oneof=relaxation focus sleep energy meditation"`
	PreferredGenres []string `json:"preferred_genres"` // accepted, reserved for future filtering
}

// RecommendationCategory is one ranked group of catalog tracks. Score is
// used only for ordering. Tracks may be empty when no catalog entry carries
// a matching tag; callers render the category anyway.
type RecommendationCategory struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Reasoning   string  `json:"reasoning"`
	Tracks      []Track `json:"tracks"`
	Score       int     `json:"score"`
}
