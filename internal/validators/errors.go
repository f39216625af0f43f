package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmoji       = errors.New("emoji is required")
	ErrEmojiTooLong     = errors.New("emoji is too long")
	ErrInvalidDate      = errors.New("invalid date")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")

	ErrEmptyUsername   = errors.New("username is required")
	ErrEmptyPassword   = errors.New("password is required")
	ErrPasswordTooLong = errors.New("password is too long")

	ErrInvalidYear  = errors.New("invalid year")
	ErrInvalidMonth = errors.New("invalid month")
)
