package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/mood-journal/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldEmoji = "emoji"
	FieldNote  = "note"
	FieldDate  = "date"

	// FieldUpdateNotEmpty requires a MoodUpdate to carry at least one field.
	FieldUpdateNotEmpty = "update_not_empty"

	FieldUsername = "username"
	FieldPassword = "password"

	FieldYear  = "year"
	FieldMonth = "month"
)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

const (
	minYear = 1
	maxYear = 9999
)

// MoodValidator implements [Validator] for the journal request models:
// CreateMoodRequest, MoodUpdate, Credentials and MonthQuery.
type MoodValidator struct{}

// NewMoodValidator constructs a MoodValidator.
func NewMoodValidator() Validator {
	return &MoodValidator{}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms of
// every supported model are accepted. Without fields the full default set of
// the model is checked.
func (v *MoodValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateMoodRequest:
		return v.validateCreateMood(value, fields...)
	case *models.CreateMoodRequest:
		return v.validateCreateMood(*value, fields...)

	case models.MoodUpdate:
		return v.validateMoodUpdate(value, fields...)
	case *models.MoodUpdate:
		return v.validateMoodUpdate(*value, fields...)

	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.MonthQuery:
		return v.validateMonthQuery(value, fields...)
	case *models.MonthQuery:
		return v.validateMonthQuery(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *MoodValidator) validateCreateMood(req models.CreateMoodRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmoji, FieldDate}
	}

	for _, f := range fields {
		switch f {
		case FieldEmoji:
			if err := validateEmoji(req.Emoji); err != nil {
				return err
			}
		case FieldDate:
			// absent means today
			if req.Date != nil && req.Date.IsZero() {
				return ErrInvalidDate
			}
		case FieldNote:
			// free text
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MoodValidator) validateMoodUpdate(update models.MoodUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUpdateNotEmpty, FieldEmoji}
	}

	for _, f := range fields {
		switch f {
		case FieldUpdateNotEmpty:
			if update.Emoji == nil && update.Note == nil {
				return ErrNoFieldsToUpdate
			}
		case FieldEmoji:
			if update.Emoji != nil {
				if err := validateEmoji(*update.Emoji); err != nil {
					return err
				}
			}
		case FieldNote:
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MoodValidator) validateCredentials(creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(creds.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
			if len(creds.Password) > maxPasswordBytes {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MoodValidator) validateMonthQuery(query models.MonthQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldYear, FieldMonth}
	}

	for _, f := range fields {
		switch f {
		case FieldYear:
			if query.Year < minYear || query.Year > maxYear {
				return ErrInvalidYear
			}
		case FieldMonth:
			if query.Month < 1 || query.Month > 12 {
				return ErrInvalidMonth
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateEmoji(emoji string) error {
	if strings.TrimSpace(emoji) == "" {
		return ErrEmptyEmoji
	}
	if utf8.RuneCountInString(emoji) > models.MaxEmojiLength {
		return ErrEmojiTooLong
	}
	return nil
}
