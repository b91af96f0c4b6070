package service

import "regexp"

var youtubeIDPattern = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([A-Za-z0-9_-]+)`)

// NormalizeVideoURL rewrites any recognised YouTube URL shape into the
// canonical embed form. Non-YouTube URLs pass through unchanged so
// self-hosted video keeps working.
func NormalizeVideoURL(raw string) string {
	if raw == "" {
		return raw
	}
	m := youtubeIDPattern.FindStringSubmatch(raw)
	if m == nil {
		return raw
	}
	return "https://www.youtube.com/embed/" + m[1]
}
