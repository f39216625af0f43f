package models

import "time"

// Mood is a single journal entry: an emoji, an optional note and the calendar
// day it refers to. Every entry has exactly one owner (UserID) which never
// changes after creation; neither does Date.
type Mood struct {
	// ID is the server-assigned identifier of the entry.
	ID int64 `json:"id"`

	// UserID is the owner of the entry.
	UserID int64 `json:"userId"`

	// Emoji is the mood marker. Required, at most [MaxEmojiLength] runes.
	Emoji string `json:"emoji"`

	// Note is optional free text attached to the entry.
	Note *string `json:"note"`

	// Date is the calendar day the entry describes.
	Date Date `json:"date"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MaxEmojiLength is the longest emoji value (in runes) accepted for an entry.
const MaxEmojiLength = 10

// TableName returns the name of the database table
// associated with the Mood model.
func (m Mood) TableName() string {
	return "moods"
}

// MoodSample is the projection read by the public board. It deliberately has
// no owner and no note so that the cross-user path cannot leak either.
type MoodSample struct {
	Emoji string
	Date  Date
}

// SharedMood is the projection returned through a share link.
type SharedMood struct {
	Emoji string  `json:"emoji"`
	Note  *string `json:"note"`
	Date  Date    `json:"date"`
}

// CreateMoodRequest is the body of POST /api/mood.
type CreateMoodRequest struct {
	Emoji string  `json:"emoji"`
	Note  *string `json:"note,omitempty"`

	// Date is optional; the current day is used when it is absent.
	Date *Date `json:"date,omitempty"`
}

// MoodUpdate carries the mutable fields of an entry. Nil fields are left
// untouched.
type MoodUpdate struct {
	Emoji *string `json:"emoji,omitempty"`
	Note  *string `json:"note,omitempty"`
}

// SuggestRequest is the body of POST /api/mood/suggest.
type SuggestRequest struct {
	Note string `json:"note"`
}

// MonthQuery selects one calendar month of an owner's entries.
type MonthQuery struct {
	Year  int
	Month int
}
