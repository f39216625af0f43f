package http

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/MKhiriev/mood-journal/internal/logger"
	"github.com/MKhiriev/mood-journal/internal/service"
	"github.com/MKhiriev/mood-journal/internal/utils"
	"github.com/MKhiriev/mood-journal/models"
)

// ─────────────────────────────────────────────
// Service fakes
// ─────────────────────────────────────────────

// Every fake answers with its function field; a nil field panics, which
// makes an unexpected call fail the test loudly.

type fakeAccessService struct {
	authenticate func(ctx context.Context, token string) (models.Identity, error)
}

func (f *fakeAccessService) Authenticate(ctx context.Context, token string) (models.Identity, error) {
	return f.authenticate(ctx, token)
}

func (f *fakeAccessService) AuthorizeOwnerAccess(identity models.Identity, ownerID int64) error {
	if identity.UserID != ownerID {
		return service.ErrNotFound
	}
	return nil
}

func (f *fakeAccessService) AuthorizeSharedAccess(context.Context, string) (int64, error) {
	panic("unexpected call to AuthorizeSharedAccess")
}

func (f *fakeAccessService) AuthorizePublicAccess() error { return nil }

type fakeAuthService struct {
	register func(ctx context.Context, creds models.Credentials) (models.Token, error)
	login    func(ctx context.Context, creds models.Credentials) (models.Token, error)
}

func (f *fakeAuthService) Register(ctx context.Context, creds models.Credentials) (models.Token, error) {
	return f.register(ctx, creds)
}

func (f *fakeAuthService) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	return f.login(ctx, creds)
}

type fakeSharingService struct {
	enable  func(ctx context.Context, userID int64) (models.ShareLink, error)
	disable func(ctx context.Context, userID int64) error
}

func (f *fakeSharingService) EnableSharing(ctx context.Context, userID int64) (models.ShareLink, error) {
	return f.enable(ctx, userID)
}

func (f *fakeSharingService) DisableSharing(ctx context.Context, userID int64) error {
	return f.disable(ctx, userID)
}

func (f *fakeSharingService) IsShareEnabled(context.Context, int64) (bool, error) {
	panic("unexpected call to IsShareEnabled")
}

type fakeMoodService struct {
	create    func(ctx context.Context, identity models.Identity, req models.CreateMoodRequest) (models.Mood, error)
	update    func(ctx context.Context, identity models.Identity, id int64, update models.MoodUpdate) (models.Mood, error)
	delete    func(ctx context.Context, identity models.Identity, id int64) error
	monthly   func(ctx context.Context, identity models.Identity, query models.MonthQuery) (models.MonthlySummary, error)
	stats     func(ctx context.Context, identity models.Identity) (models.MoodStats, error)
	dashboard func(ctx context.Context, identity models.Identity) (models.Dashboard, error)
	shared    func(ctx context.Context, shareToken string) ([]models.SharedMood, error)
	public    func(ctx context.Context) (models.PublicBoard, error)
	suggest   func(ctx context.Context, note string) []string
}

func (f *fakeMoodService) CreateMood(ctx context.Context, identity models.Identity, req models.CreateMoodRequest) (models.Mood, error) {
	return f.create(ctx, identity, req)
}

func (f *fakeMoodService) UpdateMood(ctx context.Context, identity models.Identity, id int64, update models.MoodUpdate) (models.Mood, error) {
	return f.update(ctx, identity, id, update)
}

func (f *fakeMoodService) DeleteMood(ctx context.Context, identity models.Identity, id int64) error {
	return f.delete(ctx, identity, id)
}

func (f *fakeMoodService) MonthlySummary(ctx context.Context, identity models.Identity, query models.MonthQuery) (models.MonthlySummary, error) {
	return f.monthly(ctx, identity, query)
}

func (f *fakeMoodService) Stats(ctx context.Context, identity models.Identity) (models.MoodStats, error) {
	return f.stats(ctx, identity)
}

func (f *fakeMoodService) Dashboard(ctx context.Context, identity models.Identity) (models.Dashboard, error) {
	return f.dashboard(ctx, identity)
}

func (f *fakeMoodService) SharedMoods(ctx context.Context, shareToken string) ([]models.SharedMood, error) {
	return f.shared(ctx, shareToken)
}

func (f *fakeMoodService) PublicBoard(ctx context.Context) (models.PublicBoard, error) {
	return f.public(ctx)
}

func (f *fakeMoodService) Suggest(ctx context.Context, note string) []string {
	return f.suggest(ctx, note)
}

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(context.Context) string {
	return f.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const validSession = "session-token"

// sessionAccess accepts validSession as user 1 and rejects everything else.
func sessionAccess() *fakeAccessService {
	return &fakeAccessService{
		authenticate: func(_ context.Context, token string) (models.Identity, error) {
			if token != validSession {
				return models.Identity{}, service.ErrInvalidToken
			}
			return models.Identity{UserID: 1}, nil
		},
	}
}

func newTestHandler(services *service.Services) *Handler {
	if services == nil {
		services = &service.Services{}
	}
	if services.AccessService == nil {
		services.AccessService = sessionAccess()
	}
	if services.AppInfoService == nil {
		services.AppInfoService = &fakeAppInfoService{version: "test"}
	}
	return &Handler{services: services, logger: logger.Nop()}
}

// withCaller returns r carrying the given user id, as if auth had run.
func withCaller(r *http.Request, userID int64) *http.Request {
	return r.WithContext(utils.WithUserID(r.Context(), userID))
}

// serve runs req through the full router.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func authorized(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer "+validSession)
	return req
}
