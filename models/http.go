package models

// TokenResponse is returned by the register and login endpoints.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CreateMoodResponse wraps the created entry.
type CreateMoodResponse struct {
	Mood Mood `json:"mood"`
}
