package model

import (
	"strconv"
	"strings"
	"time"
)

// ReadingTimesKey is the cache key holding paper id → elapsed seconds
const ReadingTimesKey = "paperReadingTimes"

// ReadingSession is the open paper viewer
type ReadingSession struct {
	ID             string    `json:"id"`
	PaperID        string    `json:"paper_id"`
	Title          string    `json:"title"`
	Link           string    `json:"link"`
	ElapsedSeconds int       `json:"elapsed_seconds"`
	ReadingTime    string    `json:"reading_time"`
	OpenedAt       time.Time `json:"opened_at"`
}

// ReadingTime is the persisted total for one paper
type ReadingTime struct {
	PaperID     string `json:"paper_id"`
	Seconds     int    `json:"seconds"`
	ReadingTime string `json:"reading_time"`
}

// FormatReadingTime renders seconds as "{h}h {m}m {s}s", omitting zero hours
// and minutes. The seconds part is always present; negative input is treated as 0.
func FormatReadingTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	rest := seconds % 60

	parts := make([]string, 0, 3)
	if hours > 0 {
		parts = append(parts, strconv.Itoa(hours)+"h")
	}
	if minutes > 0 {
		parts = append(parts, strconv.Itoa(minutes)+"m")
	}
	parts = append(parts, strconv.Itoa(rest)+"s")

	return strings.Join(parts, " ")
}
