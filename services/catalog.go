package services

import (
	"fmt"
	"time"

	"github.com/solutiontech214/MindTune/models"
)

// DefaultTracks returns the built-in catalog. Every source is a tone
// rendered on demand by this server, so playback never depends on an
// external host.
func DefaultTracks() []models.Track {
	tracks := []models.Track{
		{
			ID: "meditation_1", Title: "Om Meditation", Artist: "Spiritual Voices",
			Genre: "Meditation", Language: "Sanskrit", DurationSeconds: 30,
			Artwork: "https://picsum.photos/300/300?random=1",
			Mood:    "calm", Category: "meditation", ToneFrequency: 220,
		},
		{
			ID: "meditation_2", Title: "Tibetan Bowls Healing", Artist: "Healing Sounds",
			Genre: "Meditation", Language: "Instrumental", DurationSeconds: 25,
			Artwork: "https://picsum.photos/300/300?random=2",
			Mood:    "peaceful", Category: "meditation", ToneFrequency: 174,
		},
		{
			ID: "devotional_1", Title: "Hanuman Chalisa", Artist: "Hariharan",
			Genre: "Devotional", Language: "Hindi", DurationSeconds: 28,
			Artwork: "https://picsum.photos/300/300?random=3",
			Mood:    "peaceful", Category: "devotional", ToneFrequency: 432,
		},
		{
			ID: "classical_1", Title: "Raga Bhairav", Artist: "Pandit Ravi Shankar",
			Genre: "Classical", Language: "Instrumental", DurationSeconds: 35,
			Artwork: "https://picsum.photos/300/300?random=4",
			Mood:    "relaxed", Category: "classical", ToneFrequency: 528,
		},
		{
			ID: "energetic_1", Title: "Kun Faya Kun", Artist: "A.R. Rahman",
			Genre: "Sufi", Language: "Hindi", DurationSeconds: 20,
			Artwork: "https://picsum.photos/300/300?random=5",
			Mood:    "energetic", Category: "spiritual", ToneFrequency: 741,
		},
		{
			ID: "calm_1", Title: "Peaceful Flute", Artist: "Pandit Hariprasad Chaurasia",
			Genre: "Instrumental", Language: "Instrumental", DurationSeconds: 40,
			Artwork: "https://picsum.photos/300/300?random=6",
			Mood:    "calm", Category: "relaxation", ToneFrequency: 396,
		},
		{
			ID: "spiritual_1", Title: "Gayatri Mantra", Artist: "Anuradha Paudwal",
			Genre: "Devotional", Language: "Sanskrit", DurationSeconds: 32,
			Artwork: "https://picsum.photos/300/300?random=7",
			Mood:    "peaceful", Category: "spiritual", ToneFrequency: 852,
		},
		{
			ID: "healing_1", Title: "Nature Sounds Meditation", Artist: "Ambient Collective",
			Genre: "Ambient", Language: "Instrumental", DurationSeconds: 45,
			Artwork: "https://picsum.photos/300/300?random=8",
			Mood:    "calm", Category: "ambient", ToneFrequency: 963,
		},
		{
			ID: "nature_1", Title: "Forest Sounds", Artist: "Nature Collective",
			Genre: "Nature", Language: "Instrumental", DurationSeconds: 60,
			Artwork: "https://picsum.photos/300/300?random=9",
			Mood:    "calm", Category: "nature", ToneFrequency: 396,
		},
		{
			ID: "sleep_1", Title: "Deep Sleep Waves", Artist: "Sleep Collective",
			Genre: "Sleep", Language: "Instrumental", DurationSeconds: 90,
			Artwork: "https://picsum.photos/300/300?random=10",
			Mood:    "calm", Category: "sleep", ToneFrequency: 220,
		},
	}

	for i := range tracks {
		t := &tracks[i]
		t.Sources = []models.AudioSource{{
			URL:         fmt.Sprintf("/api/music/tracks/%s/audio", t.ID),
			Format:      "wav",
			Quality:     "high",
			Description: fmt.Sprintf("Generated tone at %.0fHz", t.ToneFrequency),
			Generated:   true,
		}}
	}
	return tracks
}

// TrackByID looks a track up in the given catalog.
func TrackByID(catalog []models.Track, id string) (models.Track, bool) {
	for _, t := range catalog {
		if t.ID == id {
			return t, true
		}
	}
	return models.Track{}, false
}

// FormatDuration renders seconds as m:ss for display.
func FormatDuration(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// CurrentTimeOfDay maps the wall-clock hour to a time-of-day band:
// 05:00-11:59 morning, 12:00-16:59 afternoon, 17:00-20:59 evening, else night.
func CurrentTimeOfDay(now time.Time) string {
	switch hour := now.Hour(); {
	case hour >= 5 && hour < 12:
		return models.TimeMorning
	case hour >= 12 && hour < 17:
		return models.TimeAfternoon
	case hour >= 17 && hour < 21:
		return models.TimeEvening
	default:
		return models.TimeNight
	}
}
