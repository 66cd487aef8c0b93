package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DiaryEntry is a free-form journal entry. Unlike check-ins there is no
// per-date uniqueness: a user may write any number of entries, listed newest
// first. Entries are only ever visible to their owner.
type DiaryEntry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"user_id" json:"user_id"`
	Title      string             `bson:"title" json:"title"`
	Content    string             `bson:"content" json:"content"`
	Emotion    string             `bson:"emotion" json:"emotion"`
	MoodRating int                `bson:"mood_rating" json:"mood_rating"` // 1-10
	IsPrivate  bool               `bson:"is_private" json:"is_private"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}

// KnownEmotions is the emotion picker vocabulary offered by the diary form.
var KnownEmotions = []string{
	"Joy", "Sadness", "Anger", "Anxiety",
	"Love", "Peace", "Confusion", "Neutral",
}
