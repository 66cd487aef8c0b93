package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/solutiontech214/MindTune/models"
	"github.com/solutiontech214/MindTune/services"

	"github.com/gin-gonic/gin"
)

// GetTracks lists the full track catalog.
func GetTracks(engine *services.RecommendationEngine) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, engine.Tracks())
	}
}

// GetTrack returns one catalog entry by id.
func GetTrack(engine *services.RecommendationEngine) gin.HandlerFunc {
	return func(c *gin.Context) {
		track, ok := services.TrackByID(engine.Tracks(), c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Track not found"})
			return
		}
		c.JSON(http.StatusOK, track)
	}
}

// StreamTrackAudio renders the track's tone as a WAV file.
func StreamTrackAudio(engine *services.RecommendationEngine) gin.HandlerFunc {
	return func(c *gin.Context) {
		track, ok := services.TrackByID(engine.Tracks(), c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Track not found"})
			return
		}
		wav := services.GenerateToneWAV(track.ToneFrequency, track.DurationSeconds)
		c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="%s.wav"`, track.ID))
		c.Data(http.StatusOK, "audio/wav", wav)
	}
}

// GetRecommendations scores the submitted mental-state snapshot. Ratings are
// clamped and enums validated here; the engine assumes clean input.
func GetRecommendations(engine *services.RecommendationEngine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var state models.MentalState
		if err := c.BindJSON(&state); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mental state payload"})
			return
		}

		state.StressLevel = clampRating(state.StressLevel)
		state.SleepQuality = clampRating(state.SleepQuality)
		if state.TimeOfDay == "" {
			state.TimeOfDay = services.CurrentTimeOfDay(time.Now())
		}
		if state.Mood == "" {
			state.Mood = models.MoodNeutral
		}
		if state.SessionGoal == "" {
			state.SessionGoal = models.GoalRelaxation
		}
		if err := validate.Struct(state); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"recommendations": engine.GenerateRecommendations(state),
		})
	}
}
