package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/mood-journal/internal/validators"
	"github.com/MKhiriev/mood-journal/models"
)

type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewMoodValidator(),
	}
}

func (v *AuthValidationService) Register(ctx context.Context, creds models.Credentials) (models.Token, error) {
	if err := v.validator.Validate(ctx, creds); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Register(ctx, creds)
}

// Login only checks presence; wrong or over-long passwords are reported as
// invalid credentials by the inner service.
func (v *AuthValidationService) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	if err := v.validator.Validate(ctx, creds, validators.FieldUsername); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Login(ctx, creds)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}
