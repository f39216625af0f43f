package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/mood-journal/internal/logger"
	"github.com/MKhiriev/mood-journal/internal/utils"
	"github.com/MKhiriev/mood-journal/models"
)

type httpJournalClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPJournalClient returns a [JournalClient] for the server at address.
// A bare "host:port" is treated as http://host:port.
func NewHTTPJournalClient(address string, timeout time.Duration, logger *logger.Logger) (JournalClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	return &httpJournalClient{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpJournalClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpJournalClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register creates the account and keeps the returned session token.
func (h *httpJournalClient) Register(ctx context.Context, creds models.Credentials) (string, error) {
	return h.authenticate(ctx, "/api/auth/register", creds)
}

// Login keeps the returned session token.
func (h *httpJournalClient) Login(ctx context.Context, creds models.Credentials) (string, error) {
	return h.authenticate(ctx, "/api/auth/login", creds)
}

func (h *httpJournalClient) authenticate(ctx context.Context, path string, creds models.Credentials) (string, error) {
	var result models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(creds).
		SetResult(&result).
		Post(path)
	if err != nil {
		return "", fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.SetToken(result.Token)
	h.logger.Debug().Str("username", creds.Username).Msg("session token stored")
	return result.Token, nil
}

func (h *httpJournalClient) CreateMood(ctx context.Context, req models.CreateMoodRequest) (models.Mood, error) {
	var result models.CreateMoodResponse

	resp, err := h.authedRequest(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/api/mood")
	if err != nil {
		return models.Mood{}, fmt.Errorf("create mood request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Mood{}, err
	}

	return result.Mood, nil
}

func (h *httpJournalClient) UpdateMood(ctx context.Context, id int64, update models.MoodUpdate) (models.Mood, error) {
	if id <= 0 {
		return models.Mood{}, ErrInvalidID
	}

	var result models.Mood
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(update).
		SetResult(&result).
		Put("/api/mood/{id}")
	if err != nil {
		return models.Mood{}, fmt.Errorf("update mood request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Mood{}, err
	}

	return result, nil
}

func (h *httpJournalClient) DeleteMood(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/api/mood/{id}")
	if err != nil {
		return fmt.Errorf("delete mood request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpJournalClient) MonthlySummary(ctx context.Context, year, month int) (models.MonthlySummary, error) {
	var result models.MonthlySummary

	resp, err := h.authedRequest(ctx).
		SetPathParams(map[string]string{
			"year":  strconv.Itoa(year),
			"month": strconv.Itoa(month),
		}).
		SetResult(&result).
		Get("/api/mood/monthly/{year}/{month}")
	if err != nil {
		return models.MonthlySummary{}, fmt.Errorf("monthly summary request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MonthlySummary{}, err
	}

	return result, nil
}

func (h *httpJournalClient) Stats(ctx context.Context) (models.MoodStats, error) {
	var result models.MoodStats
	if err := h.getJSON(h.authedRequest(ctx), "/api/mood/stats", &result); err != nil {
		return models.MoodStats{}, err
	}
	return result, nil
}

func (h *httpJournalClient) Dashboard(ctx context.Context) (models.Dashboard, error) {
	var result models.Dashboard
	if err := h.getJSON(h.authedRequest(ctx), "/api/mood/dashboard", &result); err != nil {
		return models.Dashboard{}, err
	}
	return result, nil
}

func (h *httpJournalClient) Suggest(ctx context.Context, note string) ([]string, error) {
	var result models.Suggestions

	resp, err := h.authedRequest(ctx).
		SetBody(models.SuggestRequest{Note: note}).
		SetResult(&result).
		Post("/api/mood/suggest")
	if err != nil {
		return nil, fmt.Errorf("suggest request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Suggestions, nil
}

func (h *httpJournalClient) EnableSharing(ctx context.Context) (models.ShareLink, error) {
	var result models.ShareLink

	resp, err := h.authedRequest(ctx).
		SetResult(&result).
		Post("/api/mood/share")
	if err != nil {
		return models.ShareLink{}, fmt.Errorf("share request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ShareLink{}, err
	}

	return result, nil
}

func (h *httpJournalClient) DisableSharing(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/mood/unshare")
	if err != nil {
		return fmt.Errorf("unshare request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpJournalClient) SharedMoods(ctx context.Context, shareToken string) ([]models.SharedMood, error) {
	var result []models.SharedMood

	req := h.client.R().
		SetContext(ctx).
		SetPathParam("token", shareToken)
	if err := h.getJSON(req, "/api/mood/shared/{token}", &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (h *httpJournalClient) PublicBoard(ctx context.Context) (models.PublicBoard, error) {
	var result models.PublicBoard
	if err := h.getJSON(h.client.R().SetContext(ctx), "/api/mood/public", &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (h *httpJournalClient) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

func (h *httpJournalClient) getJSON(req *resty.Request, path string, result any) error {
	resp, err := req.SetResult(result).Get(path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	return mapHTTPError(resp)
}

func (h *httpJournalClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
