package models

// AudioSource is one playable rendition of a track, ordered by preference
// within Track.Sources (first tried first).
type AudioSource struct {
	URL         string `json:"url"`
	Format      string `json:"format"`  // wav | mp3 | ogg
	Quality     string `json:"quality"` // high | medium | low
	Description string `json:"description"`
	Generated   bool   `json:"generated"`
}

// Track is one catalog entry. The catalog is static configuration loaded at
// startup; tracks are never created or modified at runtime.
type Track struct {
	ID              string        `json:"track_id"`
	Title           string        `json:"title"`
	Artist          string        `json:"artist"`
	Genre           string        `json:"genre"`
	Language        string        `json:"language"`
	DurationSeconds int           `json:"duration"`
	Artwork         string        `json:"artwork"`
	Sources         []AudioSource `json:"sources"`
	Mood            string        `json:"mood"`     // e.g. calm, peaceful, relaxed
	Category        string        `json:"category"` // e.g. meditation, nature, sleep
	ToneFrequency   float64       `json:"-"`        // generator frequency in Hz
}
