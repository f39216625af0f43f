package models

import "time"

// EmojiCounts maps an emoji to the number of entries that carry it.
type EmojiCounts map[string]int

// DateEmojiCounts groups EmojiCounts by calendar date (YYYY-MM-DD).
type DateEmojiCounts map[string]EmojiCounts

// MonthlySummary is the owner's view of one calendar month.
type MonthlySummary struct {
	TotalEntries int         `json:"totalEntries"`
	EmojiStats   EmojiCounts `json:"emojiStats"`
	Entries      []Mood      `json:"entries"`
}

// MoodStats is the owner's all-time statistics.
//
// ByMonth is keyed by the exact entry date, not by calendar month: every
// distinct date gets its own bucket. The field name is kept for API
// compatibility with existing clients.
type MoodStats struct {
	Total   int             `json:"total"`
	ByEmoji EmojiCounts     `json:"byEmoji"`
	ByMonth DateEmojiCounts `json:"byMonth"`
}

// Dashboard is the chart-friendly reshaping of per-date emoji counts.
type Dashboard struct {
	Labels   []string           `json:"labels"`
	Datasets []DashboardDataset `json:"datasets"`
}

// DashboardDataset is one point of the dashboard series.
type DashboardDataset struct {
	Date        string      `json:"date"`
	EmojiCounts EmojiCounts `json:"emojiCounts"`
}

// PublicBoard is the anonymous rolling-window aggregate across all users.
type PublicBoard = DateEmojiCounts

// ShareLink is returned when a user enables sharing.
type ShareLink struct {
	ShareURL  string    `json:"shareUrl"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Suggestions is the response of the emoji suggestion endpoint.
type Suggestions struct {
	Suggestions []string `json:"suggestions"`
}
