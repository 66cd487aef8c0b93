package services

import (
	"sort"

	"github.com/solutiontech214/MindTune/models"
)

// tag filter fields
const (
	byMood     = "mood"
	byCategory = "category"
)

// categoryRule is one entry of the recommendation rule table: when the
// predicate holds for a mental-state snapshot, the category is emitted with
// tracks filtered from the catalog by tag membership on the given field.
type categoryRule struct {
	name        string
	description string
	reasoning   string
	score       int
	matchField  string
	tags        []string
	when        func(models.MentalState) bool
}

// RecommendationEngine scores a mental-state snapshot against a fixed rule
// table over an immutable catalog. It holds no mutable state and is safe for
// concurrent use.
type RecommendationEngine struct {
	catalog []models.Track
	rules   []categoryRule
}

// NewRecommendationEngine builds an engine over the given catalog. The
// catalog is taken as-is and must not be mutated afterwards; filtered track
// lists preserve catalog order.
func NewRecommendationEngine(catalog []models.Track) *RecommendationEngine {
	return &RecommendationEngine{catalog: catalog, rules: buildRules()}
}

// maxCategories bounds the ranked result list.
const maxCategories = 6

// GenerateRecommendations evaluates every rule in table order, appending a
// category for each one that fires, then stable-sorts by score descending
// and truncates. Deterministic for a fixed snapshot and catalog. Categories
// whose tag filter matches nothing are kept with an empty track list.
func (e *RecommendationEngine) GenerateRecommendations(state models.MentalState) []models.RecommendationCategory {
	categories := []models.RecommendationCategory{}

	for _, r := range e.rules {
		if !r.when(state) {
			continue
		}
		categories = append(categories, models.RecommendationCategory{
			Name:        r.name,
			Description: r.description,
			Reasoning:   r.reasoning,
			Tracks:      e.tracksByTag(r.matchField, r.tags),
			Score:       r.score,
		})
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Score > categories[j].Score
	})
	if len(categories) > maxCategories {
		categories = categories[:maxCategories]
	}
	return categories
}

// Tracks returns the engine's catalog.
func (e *RecommendationEngine) Tracks() []models.Track {
	return e.catalog
}

func (e *RecommendationEngine) tracksByTag(field string, tags []string) []models.Track {
	matched := []models.Track{}
	for _, t := range e.catalog {
		value := t.Category
		if field == byMood {
			value = t.Mood
		}
		for _, tag := range tags {
			if value == tag {
				matched = append(matched, t)
				break
			}
		}
	}
	return matched
}

// buildRules lays out the scoring table. Order matters twice: rules are
// evaluated top to bottom, and the final sort is stable, so equal scores
// keep table order.
func buildRules() []categoryRule {
	return []categoryRule{
		// Stress rules: the two bands are mutually exclusive.
		{
			name:        "Immediate Stress Relief",
			description: "Calming sounds to reduce high stress levels",
			reasoning:   "High stress level detected - prioritizing immediate calming effects",
			score:       95,
			matchField:  byMood,
			tags:        []string{"calm", "peaceful"},
			when:        func(s models.MentalState) bool { return s.StressLevel >= 7 },
		},
		{
			name:        "Moderate Stress Management",
			description: "Structured relaxation to keep stress from climbing",
			reasoning:   "Elevated stress level - steady meditative sounds recommended",
			score:       85,
			matchField:  byCategory,
			tags:        []string{"meditation", "relaxation"},
			when:        func(s models.MentalState) bool { return s.StressLevel >= 4 && s.StressLevel < 7 },
		},

		// Mood rules: exactly one fires per snapshot.
		{
			name:        "Anxiety Relief",
			description: "Gentle sounds to ease anxiety and promote calm",
			reasoning:   "Anxiety detected - using proven calming frequencies",
			score:       90,
			matchField:  byCategory,
			tags:        []string{"meditation", "nature"},
			when:        func(s models.MentalState) bool { return s.Mood == models.MoodAnxious },
		},
		{
			name:        "Mood Uplift",
			description: "Uplifting ambient sounds to improve mood",
			reasoning:   "Low mood detected - gentle uplifting sounds recommended",
			score:       85,
			matchField:  byMood,
			tags:        []string{"peaceful", "relaxed"},
			when:        func(s models.MentalState) bool { return s.Mood == models.MoodDepressed },
		},
		{
			name:        "Focus Enhancement",
			description: "Ambient sounds to channel energy into focus",
			reasoning:   "High energy - channeling into productive focus",
			score:       80,
			matchField:  byCategory,
			tags:        []string{"ambient", "meditation"},
			when:        func(s models.MentalState) bool { return s.Mood == models.MoodEnergetic },
		},
		{
			name:        "Maintain Calmness",
			description: "Soft soundscapes to hold on to a calm state",
			reasoning:   "Calm mood - reinforcing the current state",
			score:       82,
			matchField:  byMood,
			tags:        []string{"calm", "peaceful"},
			when:        func(s models.MentalState) bool { return s.Mood == models.MoodCalm },
		},
		{
			name:        "Balanced Wellness",
			description: "Neutral ambient sounds for general wellbeing",
			reasoning:   "Neutral mood - balanced background recommended",
			score:       75,
			matchField:  byCategory,
			tags:        []string{"ambient", "nature"},
			when:        func(s models.MentalState) bool { return s.Mood == models.MoodNeutral },
		},

		// Time-of-day rules; afternoon intentionally has none.
		{
			name:        "Morning Mindfulness",
			description: "Gentle sounds to start your day peacefully",
			reasoning:   "Morning routine - gentle awakening sounds",
			score:       75,
			matchField:  byCategory,
			tags:        []string{"meditation", "nature"},
			when:        func(s models.MentalState) bool { return s.TimeOfDay == models.TimeMorning },
		},
		{
			name:        "Evening Wind-Down",
			description: "Relaxing sounds to transition to rest",
			reasoning:   "Evening time - preparing for rest and relaxation",
			score:       82,
			matchField:  byCategory,
			tags:        []string{"ambient", "relaxation"},
			when:        func(s models.MentalState) bool { return s.TimeOfDay == models.TimeEvening },
		},
		{
			name:        "Night-Time Relaxation",
			description: "Deep relaxation sounds for better sleep",
			reasoning:   "Night time - optimizing for sleep preparation",
			score:       90,
			matchField:  byCategory,
			tags:        []string{"sleep", "ambient"},
			when:        func(s models.MentalState) bool { return s.TimeOfDay == models.TimeNight },
		},

		// Session-goal rules; "energy" has no mapping.
		{
			name:        "Deep Meditation",
			description: "Sounds specifically designed for meditation practice",
			reasoning:   "Meditation goal - using traditional meditation sounds",
			score:       95,
			matchField:  byCategory,
			tags:        []string{"meditation"},
			when:        func(s models.MentalState) bool { return s.SessionGoal == models.GoalMeditation },
		},
		{
			name:        "Sleep Induction",
			description: "Sounds to help you fall asleep faster",
			reasoning:   "Sleep goal - using sleep-optimized frequencies",
			score:       93,
			matchField:  byCategory,
			tags:        []string{"sleep", "ambient"},
			when:        func(s models.MentalState) bool { return s.SessionGoal == models.GoalSleep },
		},
		{
			name:        "Deep Relaxation",
			description: "Comprehensive relaxation soundscape",
			reasoning:   "Relaxation goal - multi-layered calming sounds",
			score:       88,
			matchField:  byCategory,
			tags:        []string{"relaxation", "nature"},
			when:        func(s models.MentalState) bool { return s.SessionGoal == models.GoalRelaxation },
		},
		{
			name:        "Focus Enhancement",
			description: "Ambient sounds to improve concentration",
			reasoning:   "Focus goal - non-distracting background sounds",
			score:       85,
			matchField:  byCategory,
			tags:        []string{"ambient", "meditation"},
			when:        func(s models.MentalState) bool { return s.SessionGoal == models.GoalFocus },
		},

		// Sleep quality.
		{
			name:        "Sleep Improvement",
			description: "Sounds designed to improve sleep quality",
			reasoning:   "Poor sleep quality - using sleep-optimized frequencies",
			score:       88,
			matchField:  byCategory,
			tags:        []string{"sleep", "ambient"},
			when:        func(s models.MentalState) bool { return s.SleepQuality <= 5 },
		},

		// Always present.
		{
			name:        "Daily Mindfulness",
			description: "A daily dose of grounding meditation sounds",
			reasoning:   "Regular mindfulness practice supports every goal",
			score:       70,
			matchField:  byCategory,
			tags:        []string{"meditation", "nature"},
			when:        func(models.MentalState) bool { return true },
		},

		// Low stress opens room for creative work.
		{
			name:        "Creative Flow",
			description: "Open ambient textures for creative work",
			reasoning:   "Low stress level - good conditions for creative focus",
			score:       78,
			matchField:  byCategory,
			tags:        []string{"ambient", "relaxation"},
			when:        func(s models.MentalState) bool { return s.StressLevel <= 3 },
		},
	}
}
