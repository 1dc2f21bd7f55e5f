package domain

// PlaybackTrack is one playable entry for the music player.
// Lrc holds lyrics text and is empty when the source provides none.
type PlaybackTrack struct {
	Name   string `json:"name"`
	Artist string `json:"artist"`
	URL    string `json:"url"`
	Cover  string `json:"cover"`
	Lrc    string `json:"lrc"`
}
