package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/solutiontech214/MindTune/helpers"
	"github.com/solutiontech214/MindTune/models"
	"github.com/solutiontech214/MindTune/services"
	"github.com/solutiontech214/MindTune/storage"

	"github.com/gin-gonic/gin"
)

// getClaims pulls the authenticated claims set by the middleware, answering
// 401 itself when they are missing.
func getClaims(c *gin.Context) *helpers.Claims {
	claimsVal, ok := c.Get("claims")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil
	}
	claims, ok := claimsVal.(*helpers.Claims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid claims"})
		return nil
	}
	return claims
}

func clampRating(v int) int {
	if v < 1 {
		return 1
	}
	if v > 10 {
		return 10
	}
	return v
}

// knownActivities drops unrecognized activity keys; the aggregator itself
// never rejects them, the vocabulary is enforced here at the boundary.
func knownActivities(in []string) []string {
	out := []string{}
	for _, a := range in {
		for _, known := range models.KnownActivities {
			if a == known {
				out = append(out, a)
				break
			}
		}
	}
	return out
}

// SubmitCheckin upserts today's check-in (or an explicit date) for the
// current user. A second submission on the same date overwrites the first.
func SubmitCheckin(svc *services.CheckinService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := getClaims(c)
		if claims == nil {
			return
		}
		var body struct {
			CheckinDate    string   `json:"checkin_date"` // optional, YYYY-MM-DD
			MoodRating     int      `json:"mood_rating"`
			StressLevel    int      `json:"stress_level"`
			EnergyLevel    int      `json:"energy_level"`
			SleepQuality   int      `json:"sleep_quality"`
			AnxietyLevel   int      `json:"anxiety_level"`
			Activities     []string `json:"activities"`
			GoalsAchieved  int      `json:"goals_achieved"`
			Notes          string   `json:"notes"`
			GratitudeNotes string   `json:"gratitude_notes"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid check-in payload"})
			return
		}

		date := body.CheckinDate
		if date == "" {
			date = time.Now().Format("2006-01-02")
		} else if _, err := time.Parse("2006-01-02", date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "checkin_date must be YYYY-MM-DD"})
			return
		}
		if body.GoalsAchieved < 0 {
			body.GoalsAchieved = 0
		}
		if body.GoalsAchieved > 10 {
			body.GoalsAchieved = 10
		}

		checkin, err := svc.SubmitCheckin(c.Request.Context(), storage.CheckinUpsert{
			UserID:         claims.UserID,
			CheckinDate:    date,
			MoodRating:     clampRating(body.MoodRating),
			StressLevel:    clampRating(body.StressLevel),
			EnergyLevel:    clampRating(body.EnergyLevel),
			SleepQuality:   clampRating(body.SleepQuality),
			AnxietyLevel:   clampRating(body.AnxietyLevel),
			Activities:     knownActivities(body.Activities),
			GoalsAchieved:  body.GoalsAchieved,
			Notes:          body.Notes,
			GratitudeNotes: body.GratitudeNotes,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, checkin)
	}
}

// GetCheckin returns the current user's check-in for ?date= (default today).
func GetCheckin(svc *services.CheckinService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := getClaims(c)
		if claims == nil {
			return
		}
		date := c.Query("date")
		if date == "" {
			date = time.Now().Format("2006-01-02")
		} else if _, err := time.Parse("2006-01-02", date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		checkin, err := svc.GetByDate(c.Request.Context(), claims.UserID, date)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if checkin == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "No check-in for this date"})
			return
		}
		c.JSON(http.StatusOK, checkin)
	}
}

// yearMonthParams reads ?year= and ?month=, defaulting to the current month.
func yearMonthParams(c *gin.Context) (int, int, bool) {
	now := time.Now()
	year, month := now.Year(), int(now.Month())
	if y := c.Query("year"); y != "" {
		n, err := strconv.Atoi(y)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "year must be a number"})
			return 0, 0, false
		}
		year = n
	}
	if m := c.Query("month"); m != "" {
		n, err := strconv.Atoi(m)
		if err != nil || n < 1 || n > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "month must be 1-12"})
			return 0, 0, false
		}
		month = n
	}
	return year, month, true
}

// GetMonthlyCheckins lists the current user's check-ins for a month.
func GetMonthlyCheckins(svc *services.CheckinService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := getClaims(c)
		if claims == nil {
			return
		}
		year, month, ok := yearMonthParams(c)
		if !ok {
			return
		}
		checkins, err := svc.Month(c.Request.Context(), claims.UserID, year, month)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, checkins)
	}
}

// GetMonthlyStats returns the aggregated month summary. A month with no
// check-ins yields the zero-valued stats object.
func GetMonthlyStats(svc *services.CheckinService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := getClaims(c)
		if claims == nil {
			return
		}
		year, month, ok := yearMonthParams(c)
		if !ok {
			return
		}
		stats, err := svc.MonthlyStats(c.Request.Context(), claims.UserID, year, month)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

// GetCheckinStreak returns the consecutive-day streak ending today.
func GetCheckinStreak(svc *services.CheckinService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := getClaims(c)
		if claims == nil {
			return
		}
		streak, err := svc.Streak(c.Request.Context(), claims.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"streak": streak})
	}
}
