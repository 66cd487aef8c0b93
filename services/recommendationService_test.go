package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solutiontech214/MindTune/models"
)

func timeAtHour(hour int) time.Time {
	return time.Date(2026, 8, 30, hour, 15, 0, 0, time.UTC)
}

func highStressNightState() models.MentalState {
	return models.MentalState{
		StressLevel:  9,
		Mood:         models.MoodAnxious,
		SleepQuality: 3,
		TimeOfDay:    models.TimeNight,
		SessionGoal:  models.GoalSleep,
	}
}

func TestGenerateRecommendationsHighStressNight(t *testing.T) {
	t.Parallel()
	engine := NewRecommendationEngine(DefaultTracks())

	got := engine.GenerateRecommendations(highStressNightState())

	require.Len(t, got, 6)
	names := make([]string, len(got))
	scores := make([]int, len(got))
	for i, cat := range got {
		names[i] = cat.Name
		scores[i] = cat.Score
	}
	// Two categories score 90; stable sort keeps their rule order, with the
	// mood rule (Anxiety Relief) ahead of the time rule.
	assert.Equal(t, []string{
		"Immediate Stress Relief",
		"Sleep Induction",
		"Anxiety Relief",
		"Night-Time Relaxation",
		"Sleep Improvement",
		"Daily Mindfulness",
	}, names)
	assert.Equal(t, []int{95, 93, 90, 90, 88, 70}, scores)
}

func TestGenerateRecommendationsDeterministic(t *testing.T) {
	t.Parallel()
	engine := NewRecommendationEngine(DefaultTracks())
	state := highStressNightState()

	first := engine.GenerateRecommendations(state)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, engine.GenerateRecommendations(state))
	}
}

func TestGenerateRecommendationsBounds(t *testing.T) {
	t.Parallel()
	engine := NewRecommendationEngine(DefaultTracks())

	moods := []string{models.MoodAnxious, models.MoodCalm, models.MoodDepressed, models.MoodEnergetic, models.MoodNeutral}
	times := []string{models.TimeMorning, models.TimeAfternoon, models.TimeEvening, models.TimeNight}
	goals := []string{models.GoalRelaxation, models.GoalFocus, models.GoalSleep, models.GoalEnergy, models.GoalMeditation}

	for stress := 1; stress <= 10; stress++ {
		for sleep := 1; sleep <= 10; sleep++ {
			for _, mood := range moods {
				for _, tod := range times {
					for _, goal := range goals {
						got := engine.GenerateRecommendations(models.MentalState{
							StressLevel:  stress,
							Mood:         mood,
							SleepQuality: sleep,
							TimeOfDay:    tod,
							SessionGoal:  goal,
						})
						require.LessOrEqual(t, len(got), 6)
						require.NotEmpty(t, got) // Daily Mindfulness always fires
						for i, cat := range got {
							require.GreaterOrEqual(t, cat.Score, 0)
							require.LessOrEqual(t, cat.Score, 100)
							if i > 0 {
								require.LessOrEqual(t, cat.Score, got[i-1].Score)
							}
						}
					}
				}
			}
		}
	}
}

func TestGenerateRecommendationsMoodBranches(t *testing.T) {
	t.Parallel()
	engine := NewRecommendationEngine(DefaultTracks())

	cases := map[string]string{
		models.MoodAnxious:   "Anxiety Relief",
		models.MoodDepressed: "Mood Uplift",
		models.MoodEnergetic: "Focus Enhancement",
		models.MoodCalm:      "Maintain Calmness",
		models.MoodNeutral:   "Balanced Wellness",
	}
	for mood, want := range cases {
		got := engine.GenerateRecommendations(models.MentalState{
			StressLevel:  5,
			Mood:         mood,
			SleepQuality: 8,
			TimeOfDay:    models.TimeAfternoon,
			SessionGoal:  models.GoalEnergy,
		})
		names := []string{}
		for _, cat := range got {
			names = append(names, cat.Name)
		}
		assert.Contains(t, names, want, "mood %s", mood)
	}
}

func TestGenerateRecommendationsEnergyGoalUnmapped(t *testing.T) {
	t.Parallel()
	engine := NewRecommendationEngine(DefaultTracks())

	got := engine.GenerateRecommendations(models.MentalState{
		StressLevel:  8,
		Mood:         models.MoodNeutral,
		SleepQuality: 9,
		TimeOfDay:    models.TimeAfternoon,
		SessionGoal:  models.GoalEnergy,
	})
	// High stress + neutral mood + always-on mindfulness; no goal or time
	// category for energy/afternoon.
	names := []string{}
	for _, cat := range got {
		names = append(names, cat.Name)
	}
	assert.Equal(t, []string{"Immediate Stress Relief", "Balanced Wellness", "Daily Mindfulness"}, names)
}

func TestGenerateRecommendationsEmptyCategoryKept(t *testing.T) {
	t.Parallel()
	// A catalog with no sleep-tagged tracks: sleep categories still appear,
	// with empty track lists.
	catalog := []models.Track{
		{ID: "a", Mood: "calm", Category: "meditation"},
		{ID: "b", Mood: "peaceful", Category: "nature"},
	}
	engine := NewRecommendationEngine(catalog)

	got := engine.GenerateRecommendations(models.MentalState{
		StressLevel:  5,
		Mood:         models.MoodNeutral,
		SleepQuality: 2,
		TimeOfDay:    models.TimeAfternoon,
		SessionGoal:  models.GoalSleep,
	})

	var sleepInduction *models.RecommendationCategory
	for i := range got {
		if got[i].Name == "Sleep Induction" {
			sleepInduction = &got[i]
		}
	}
	require.NotNil(t, sleepInduction)
	assert.Empty(t, sleepInduction.Tracks)
}

func TestTracksByTagPreservesCatalogOrder(t *testing.T) {
	t.Parallel()
	engine := NewRecommendationEngine(DefaultTracks())

	got := engine.GenerateRecommendations(models.MentalState{
		StressLevel:  9,
		Mood:         models.MoodNeutral,
		SleepQuality: 9,
		TimeOfDay:    models.TimeAfternoon,
		SessionGoal:  models.GoalEnergy,
	})
	require.Equal(t, "Immediate Stress Relief", got[0].Name)

	// mood in {calm, peaceful}, in catalog order
	wantIDs := []string{
		"meditation_1", "meditation_2", "devotional_1", "calm_1",
		"spiritual_1", "healing_1", "nature_1", "sleep_1",
	}
	gotIDs := []string{}
	for _, tr := range got[0].Tracks {
		gotIDs = append(gotIDs, tr.ID)
	}
	assert.Equal(t, wantIDs, gotIDs)
}

func TestCurrentTimeOfDayBands(t *testing.T) {
	t.Parallel()
	cases := []struct {
		hour int
		want string
	}{
		{0, models.TimeNight},
		{4, models.TimeNight},
		{5, models.TimeMorning},
		{11, models.TimeMorning},
		{12, models.TimeAfternoon},
		{16, models.TimeAfternoon},
		{17, models.TimeEvening},
		{20, models.TimeEvening},
		{21, models.TimeNight},
		{23, models.TimeNight},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CurrentTimeOfDay(timeAtHour(tc.hour)), "hour %d", tc.hour)
	}
}

func TestGenerateRecommendationsTruncatesRankedList(t *testing.T) {
	t.Parallel()
	// A widened rule table can fire more often than the ranked list allows;
	// only the top entries survive, stable within equal scores.
	rules := make([]categoryRule, 0, 9)
	for i := 0; i < 9; i++ {
		rules = append(rules, categoryRule{
			name:       fmt.Sprintf("Rule %d", i),
			score:      60 + i%3,
			matchField: byCategory,
			tags:       []string{"meditation"},
			when:       func(models.MentalState) bool { return true },
		})
	}
	engine := &RecommendationEngine{catalog: DefaultTracks(), rules: rules}

	got := engine.GenerateRecommendations(models.MentalState{})

	require.Len(t, got, maxCategories)
	names := []string{}
	for _, cat := range got {
		names = append(names, cat.Name)
	}
	// Scores cycle 60,61,62; the three 62s come first in table order, then
	// the three 61s. All 60s fall off the end.
	assert.Equal(t, []string{"Rule 2", "Rule 5", "Rule 8", "Rule 1", "Rule 4", "Rule 7"}, names)
}

func TestDefaultTracksCatalog(t *testing.T) {
	t.Parallel()
	tracks := DefaultTracks()
	require.Len(t, tracks, 10)

	seen := map[string]bool{}
	for _, tr := range tracks {
		assert.False(t, seen[tr.ID], "duplicate id %s", tr.ID)
		seen[tr.ID] = true
		assert.NotEmpty(t, tr.Sources)
		assert.Greater(t, tr.DurationSeconds, 0)
		assert.Greater(t, tr.ToneFrequency, 0.0)
	}

	track, ok := TrackByID(tracks, "sleep_1")
	require.True(t, ok)
	assert.Equal(t, "Deep Sleep Waves", track.Title)
	_, ok = TrackByID(tracks, "missing")
	assert.False(t, ok)
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "0:30", FormatDuration(30))
	assert.Equal(t, "1:05", FormatDuration(65))
	assert.Equal(t, "1:30", FormatDuration(90))
}
