package service

import (
	"context"

	"github.com/MKhiriev/mood-journal/models"
)

// TokenService issues and verifies signed session and share tokens.
type TokenService interface {
	IssueSession(ctx context.Context, userID int64) (models.Token, error)
	IssueShare(ctx context.Context, userID int64) (models.Token, error)
	Verify(ctx context.Context, tokenString string) (models.Token, error)
}

// AccessService resolves who is calling and which scope they may read.
type AccessService interface {
	Authenticate(ctx context.Context, tokenString string) (models.Identity, error)
	AuthorizeOwnerAccess(identity models.Identity, resourceOwnerID int64) error
	AuthorizeSharedAccess(ctx context.Context, shareToken string) (int64, error)
	AuthorizePublicAccess() error
}

// AuthService registers users and logs them in.
type AuthService interface {
	Register(ctx context.Context, creds models.Credentials) (models.Token, error)
	Login(ctx context.Context, creds models.Credentials) (models.Token, error)
}

// SharingService switches public sharing of a user's journal on and off.
type SharingService interface {
	EnableSharing(ctx context.Context, userID int64) (models.ShareLink, error)
	DisableSharing(ctx context.Context, userID int64) error
	IsShareEnabled(ctx context.Context, userID int64) (bool, error)
}

// MoodService is the journal itself: owner-scoped CRUD, statistics and the
// shared and public read paths.
type MoodService interface {
	CreateMood(ctx context.Context, identity models.Identity, req models.CreateMoodRequest) (models.Mood, error)
	UpdateMood(ctx context.Context, identity models.Identity, id int64, update models.MoodUpdate) (models.Mood, error)
	DeleteMood(ctx context.Context, identity models.Identity, id int64) error

	MonthlySummary(ctx context.Context, identity models.Identity, query models.MonthQuery) (models.MonthlySummary, error)
	Stats(ctx context.Context, identity models.Identity) (models.MoodStats, error)
	Dashboard(ctx context.Context, identity models.Identity) (models.Dashboard, error)

	SharedMoods(ctx context.Context, shareToken string) ([]models.SharedMood, error)
	PublicBoard(ctx context.Context) (models.PublicBoard, error)

	Suggest(ctx context.Context, note string) []string
}

// MoodServiceWrapper decorates a MoodService, e.g. with request validation.
type MoodServiceWrapper interface {
	Wrap(MoodService) MoodService
}

// AuthServiceWrapper decorates an AuthService.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// shareStatusChecker is the part of SharingService the access gate reads.
type shareStatusChecker interface {
	IsShareEnabled(ctx context.Context, userID int64) (bool, error)
}
