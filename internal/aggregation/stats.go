package aggregation

import (
	"time"

	"github.com/MKhiriev/mood-journal/models"
)

// MonthlySummary counts entries per emoji and echoes the entries back.
func MonthlySummary(entries []models.Mood) models.MonthlySummary {
	stats := make(models.EmojiCounts)
	for _, entry := range entries {
		stats[entry.Emoji]++
	}

	if entries == nil {
		entries = []models.Mood{}
	}

	return models.MonthlySummary{
		TotalEntries: len(entries),
		EmojiStats:   stats,
		Entries:      entries,
	}
}

// FullStats returns the all-time totals of entries. ByMonth is grouped by the
// exact entry date.
func FullStats(entries []models.Mood) models.MoodStats {
	stats := models.MoodStats{
		Total:   len(entries),
		ByEmoji: make(models.EmojiCounts),
		ByMonth: make(models.DateEmojiCounts),
	}

	for _, entry := range entries {
		stats.ByEmoji[entry.Emoji]++
		countByDate(stats.ByMonth, entry.Date, entry.Emoji)
	}

	return stats
}

// Dashboard reshapes per-date emoji counts into chart labels and datasets.
// Dates appear in the order they are first seen in entries.
func Dashboard(entries []models.Mood) models.Dashboard {
	counts := make(models.DateEmojiCounts)
	labels := make([]string, 0, len(entries))

	for _, entry := range entries {
		key := entry.Date.String()
		if _, seen := counts[key]; !seen {
			labels = append(labels, key)
		}
		countByDate(counts, entry.Date, entry.Emoji)
	}

	datasets := make([]models.DashboardDataset, 0, len(labels))
	for _, label := range labels {
		datasets = append(datasets, models.DashboardDataset{
			Date:        label,
			EmojiCounts: counts[label],
		})
	}

	return models.Dashboard{Labels: labels, Datasets: datasets}
}

// PublicBoard counts samples per date and emoji. Samples outside
// PublicWindow(now) are dropped even if the caller passed them in.
func PublicBoard(samples []models.MoodSample, now time.Time) models.PublicBoard {
	start, end := PublicWindow(now)

	board := make(models.PublicBoard)
	for _, sample := range samples {
		if !sample.Date.Between(start, end) {
			continue
		}
		countByDate(board, sample.Date, sample.Emoji)
	}

	return board
}

// SharedExport strips entries down to what a share link may reveal.
func SharedExport(entries []models.Mood) []models.SharedMood {
	shared := make([]models.SharedMood, 0, len(entries))
	for _, entry := range entries {
		shared = append(shared, models.SharedMood{
			Emoji: entry.Emoji,
			Note:  entry.Note,
			Date:  entry.Date,
		})
	}
	return shared
}

func countByDate(counts models.DateEmojiCounts, date models.Date, emoji string) {
	key := date.String()
	if counts[key] == nil {
		counts[key] = make(models.EmojiCounts)
	}
	counts[key][emoji]++
}
