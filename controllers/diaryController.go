package controllers

import (
	"errors"
	"net/http"

	"github.com/solutiontech214/MindTune/services"
	"github.com/solutiontech214/MindTune/storage"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type diaryEntryBody struct {
	Title      string `json:"title" binding:"required,max=200"`
	Content    string `json:"content" binding:"required,max=10000"`
	Emotion    string `json:"emotion" binding:"required"`
	MoodRating int    `json:"mood_rating"`
	IsPrivate  *bool  `json:"is_private"` // defaults to true when omitted
}

func (b diaryEntryBody) toInput() storage.DiaryEntryInput {
	isPrivate := true
	if b.IsPrivate != nil {
		isPrivate = *b.IsPrivate
	}
	return storage.DiaryEntryInput{
		Title:      b.Title,
		Content:    b.Content,
		Emotion:    b.Emotion,
		MoodRating: clampRating(b.MoodRating),
		IsPrivate:  isPrivate,
	}
}

// entryIDParam parses the :id path segment, answering 400 on garbage.
func entryIDParam(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return primitive.NilObjectID, false
	}
	return id, true
}

// CreateDiaryEntry stores a new journal entry for the current user.
func CreateDiaryEntry(svc *services.DiaryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := getClaims(c)
		if claims == nil {
			return
		}
		var body diaryEntryBody
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title, content and emotion are required"})
			return
		}
		entry, err := svc.Create(c.Request.Context(), claims.UserID, body.toInput())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, entry)
	}
}

// UpdateDiaryEntry overwrites one of the current user's entries. Entries
// owned by other users are indistinguishable from missing ones.
func UpdateDiaryEntry(svc *services.DiaryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := getClaims(c)
		if claims == nil {
			return
		}
		id, ok := entryIDParam(c)
		if !ok {
			return
		}
		var body diaryEntryBody
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title, content and emotion are required"})
			return
		}
		entry, err := svc.Update(c.Request.Context(), claims.UserID, id, body.toInput())
		if errors.Is(err, storage.ErrDiaryEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Diary entry not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, entry)
	}
}

// DeleteDiaryEntry removes one of the current user's entries.
func DeleteDiaryEntry(svc *services.DiaryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := getClaims(c)
		if claims == nil {
			return
		}
		id, ok := entryIDParam(c)
		if !ok {
			return
		}
		err := svc.Delete(c.Request.Context(), claims.UserID, id)
		if errors.Is(err, storage.ErrDiaryEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Diary entry not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Diary entry deleted"})
	}
}

// GetDiaryEntries lists the current user's entries, newest first.
func GetDiaryEntries(svc *services.DiaryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := getClaims(c)
		if claims == nil {
			return
		}
		entries, err := svc.List(c.Request.Context(), claims.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, entries)
	}
}

// GetDiaryEntry returns one of the current user's entries.
func GetDiaryEntry(svc *services.DiaryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := getClaims(c)
		if claims == nil {
			return
		}
		id, ok := entryIDParam(c)
		if !ok {
			return
		}
		entry, err := svc.Get(c.Request.Context(), claims.UserID, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if entry == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Diary entry not found"})
			return
		}
		c.JSON(http.StatusOK, entry)
	}
}
