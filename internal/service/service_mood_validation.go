package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/mood-journal/internal/validators"
	"github.com/MKhiriev/mood-journal/models"
)

// MoodValidationService rejects malformed requests before they reach the
// wrapped MoodService. Read paths without input pass straight through.
type MoodValidationService struct {
	inner     MoodService
	validator validators.Validator
}

func NewMoodValidationService() MoodServiceWrapper {
	return &MoodValidationService{
		validator: validators.NewMoodValidator(),
	}
}

func (v *MoodValidationService) CreateMood(ctx context.Context, identity models.Identity, req models.CreateMoodRequest) (models.Mood, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Mood{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.CreateMood(ctx, identity, req)
}

func (v *MoodValidationService) UpdateMood(ctx context.Context, identity models.Identity, id int64, update models.MoodUpdate) (models.Mood, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Mood{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.UpdateMood(ctx, identity, id, update)
}

func (v *MoodValidationService) DeleteMood(ctx context.Context, identity models.Identity, id int64) error {
	return v.inner.DeleteMood(ctx, identity, id)
}

func (v *MoodValidationService) MonthlySummary(ctx context.Context, identity models.Identity, query models.MonthQuery) (models.MonthlySummary, error) {
	if err := v.validator.Validate(ctx, query); err != nil {
		return models.MonthlySummary{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.MonthlySummary(ctx, identity, query)
}

func (v *MoodValidationService) Stats(ctx context.Context, identity models.Identity) (models.MoodStats, error) {
	return v.inner.Stats(ctx, identity)
}

func (v *MoodValidationService) Dashboard(ctx context.Context, identity models.Identity) (models.Dashboard, error) {
	return v.inner.Dashboard(ctx, identity)
}

func (v *MoodValidationService) SharedMoods(ctx context.Context, shareToken string) ([]models.SharedMood, error) {
	return v.inner.SharedMoods(ctx, shareToken)
}

func (v *MoodValidationService) PublicBoard(ctx context.Context) (models.PublicBoard, error) {
	return v.inner.PublicBoard(ctx)
}

func (v *MoodValidationService) Suggest(ctx context.Context, note string) []string {
	return v.inner.Suggest(ctx, note)
}

func (v *MoodValidationService) Wrap(inner MoodService) MoodService {
	v.inner = inner
	return v
}
