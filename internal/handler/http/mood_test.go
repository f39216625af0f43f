// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/mood-journal/internal/service"
	"github.com/MKhiriev/mood-journal/models"
)

var march10 = models.NewDate(2024, time.March, 10)

func moodHandler(svc *fakeMoodService) *Handler {
	return newTestHandler(&service.Services{MoodService: svc})
}

// ─────────────────────────────────────────────
// POST /api/mood
// ─────────────────────────────────────────────

func TestCreateMood(t *testing.T) {
	var gotIdentity models.Identity
	var gotReq models.CreateMoodRequest
	h := moodHandler(&fakeMoodService{
		create: func(_ context.Context, identity models.Identity, req models.CreateMoodRequest) (models.Mood, error) {
			gotIdentity, gotReq = identity, req
			return models.Mood{ID: 9, UserID: identity.UserID, Emoji: req.Emoji, Note: req.Note, Date: *req.Date}, nil
		},
	})

	body := `{"emoji":"😊","note":"sunny","date":"2024-03-10"}`
	rec := serve(h, authorized(httptest.NewRequest(http.MethodPost, "/api/mood", strings.NewReader(body))))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, models.Identity{UserID: 1}, gotIdentity)
	assert.Equal(t, "😊", gotReq.Emoji)
	require.NotNil(t, gotReq.Date)
	assert.Equal(t, march10, *gotReq.Date)

	var resp models.CreateMoodResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(9), resp.Mood.ID)
	assert.Equal(t, int64(1), resp.Mood.UserID)
	assert.Equal(t, march10, resp.Mood.Date)
	require.NotNil(t, resp.Mood.Note)
	assert.Equal(t, "sunny", *resp.Mood.Note)
}

func TestCreateMood_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantBody   string
	}{
		{"bad json", `{"emoji":1}`, nil, http.StatusBadRequest, `{"error":"invalid JSON was passed"}`},
		{"bad date", `{"emoji":"😊","date":"2023-02-29"}`, nil, http.StatusBadRequest, `{"error":"invalid JSON was passed"}`},
		{"validation", `{"emoji":""}`, service.ErrValidation, http.StatusBadRequest, `{"error":"invalid data provided"}`},
		{"store failure", `{"emoji":"😊"}`, errors.New("db down"), http.StatusBadRequest, `{"error":"Failed to create mood entry"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := moodHandler(&fakeMoodService{
				create: func(context.Context, models.Identity, models.CreateMoodRequest) (models.Mood, error) {
					return models.Mood{}, tt.svcErr
				},
			})

			rec := serve(h, authorized(httptest.NewRequest(http.MethodPost, "/api/mood", strings.NewReader(tt.body))))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestCreateMood_WithoutCallerInContext(t *testing.T) {
	h := moodHandler(&fakeMoodService{})

	rec := httptest.NewRecorder()
	h.createMood(rec, httptest.NewRequest(http.MethodPost, "/api/mood", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// GET /api/mood/monthly/{year}/{month}
// ─────────────────────────────────────────────

func TestMonthlySummary(t *testing.T) {
	var gotQuery models.MonthQuery
	h := moodHandler(&fakeMoodService{
		monthly: func(_ context.Context, _ models.Identity, query models.MonthQuery) (models.MonthlySummary, error) {
			gotQuery = query
			return models.MonthlySummary{
				TotalEntries: 1,
				EmojiStats:   models.EmojiCounts{"😊": 1},
				Entries:      []models.Mood{{ID: 1, UserID: 1, Emoji: "😊", Date: march10}},
			}, nil
		},
	})

	rec := serve(h, authorized(httptest.NewRequest(http.MethodGet, "/api/mood/monthly/2024/3", nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.MonthQuery{Year: 2024, Month: 3}, gotQuery)

	var resp models.MonthlySummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.TotalEntries)
	assert.Equal(t, models.EmojiCounts{"😊": 1}, resp.EmojiStats)
	require.Len(t, resp.Entries, 1)
}

func TestMonthlySummary_BadParams(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		svcErr     error
		wantStatus int
	}{
		{name: "non numeric year", path: "/api/mood/monthly/abcd/3", wantStatus: http.StatusBadRequest},
		{name: "non numeric month", path: "/api/mood/monthly/2024/march", wantStatus: http.StatusBadRequest},
		{name: "out of range month", path: "/api/mood/monthly/2024/13", svcErr: service.ErrValidation, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			h := moodHandler(&fakeMoodService{
				monthly: func(context.Context, models.Identity, models.MonthQuery) (models.MonthlySummary, error) {
					called = true
					return models.MonthlySummary{}, tt.svcErr
				},
			})

			rec := serve(h, authorized(httptest.NewRequest(http.MethodGet, tt.path, nil)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.svcErr != nil, called)
		})
	}
}

// ─────────────────────────────────────────────
// PUT /api/mood/{id}
// ─────────────────────────────────────────────

func TestUpdateMood(t *testing.T) {
	var gotID int64
	var gotUpdate models.MoodUpdate
	h := moodHandler(&fakeMoodService{
		update: func(_ context.Context, _ models.Identity, id int64, update models.MoodUpdate) (models.Mood, error) {
			gotID, gotUpdate = id, update
			return models.Mood{ID: id, UserID: 1, Emoji: *update.Emoji, Date: march10}, nil
		},
	})

	rec := serve(h, authorized(httptest.NewRequest(http.MethodPut, "/api/mood/12", strings.NewReader(`{"emoji":"😢"}`))))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(12), gotID)
	require.NotNil(t, gotUpdate.Emoji)
	assert.Equal(t, "😢", *gotUpdate.Emoji)
	assert.Nil(t, gotUpdate.Note)

	var resp models.Mood
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "😢", resp.Emoji)
}

func TestUpdateMood_Errors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		svcErr     error
		wantStatus int
		wantBody   string
	}{
		{"foreign or missing entry", "/api/mood/5", `{"note":"x"}`, service.ErrNotFound, http.StatusNotFound, `{"error":"mood entry not found"}`},
		{"empty update", "/api/mood/5", `{}`, service.ErrValidation, http.StatusBadRequest, `{"error":"invalid data provided"}`},
		{"non numeric id", "/api/mood/abc", `{"note":"x"}`, nil, http.StatusBadRequest, `{"error":"invalid path parameter"}`},
		{"negative id", "/api/mood/-1", `{"note":"x"}`, nil, http.StatusBadRequest, `{"error":"invalid path parameter"}`},
		{"bad json", "/api/mood/5", `[`, nil, http.StatusBadRequest, `{"error":"invalid JSON was passed"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := moodHandler(&fakeMoodService{
				update: func(context.Context, models.Identity, int64, models.MoodUpdate) (models.Mood, error) {
					return models.Mood{}, tt.svcErr
				},
			})

			rec := serve(h, authorized(httptest.NewRequest(http.MethodPut, tt.path, strings.NewReader(tt.body))))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

// ─────────────────────────────────────────────
// DELETE /api/mood/{id}
// ─────────────────────────────────────────────

func TestDeleteMood(t *testing.T) {
	tests := []struct {
		name       string
		svcErr     error
		wantStatus int
		wantBody   string
	}{
		{"deleted", nil, http.StatusOK, `{"message":"Mood entry deleted"}`},
		{"not found", service.ErrNotFound, http.StatusNotFound, `{"error":"mood entry not found"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID int64
			h := moodHandler(&fakeMoodService{
				delete: func(_ context.Context, _ models.Identity, id int64) error {
					gotID = id
					return tt.svcErr
				},
			})

			rec := serve(h, authorized(httptest.NewRequest(http.MethodDelete, "/api/mood/3", nil)))

			assert.Equal(t, int64(3), gotID)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

// ─────────────────────────────────────────────
// stats, dashboard, suggest, public
// ─────────────────────────────────────────────

func TestStats(t *testing.T) {
	h := moodHandler(&fakeMoodService{
		stats: func(context.Context, models.Identity) (models.MoodStats, error) {
			return models.MoodStats{
				Total:   2,
				ByEmoji: models.EmojiCounts{"😊": 2},
				ByMonth: models.DateEmojiCounts{"2024-03-10": {"😊": 2}},
			}, nil
		},
	})

	rec := serve(h, authorized(httptest.NewRequest(http.MethodGet, "/api/mood/stats", nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total":2,"byEmoji":{"😊":2},"byMonth":{"2024-03-10":{"😊":2}}}`, rec.Body.String())
}

func TestStats_Failure(t *testing.T) {
	h := moodHandler(&fakeMoodService{
		stats: func(context.Context, models.Identity) (models.MoodStats, error) {
			return models.MoodStats{}, errors.New("timeout")
		},
	})

	rec := serve(h, authorized(httptest.NewRequest(http.MethodGet, "/api/mood/stats", nil)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to get statistics"}`, rec.Body.String())
}

func TestDashboard(t *testing.T) {
	h := moodHandler(&fakeMoodService{
		dashboard: func(context.Context, models.Identity) (models.Dashboard, error) {
			return models.Dashboard{
				Labels:   []string{"2024-03-10"},
				Datasets: []models.DashboardDataset{{Date: "2024-03-10", EmojiCounts: models.EmojiCounts{"😴": 1}}},
			}, nil
		},
	})

	rec := serve(h, authorized(httptest.NewRequest(http.MethodGet, "/api/mood/dashboard", nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"labels":["2024-03-10"],"datasets":[{"date":"2024-03-10","emojiCounts":{"😴":1}}]}`,
		rec.Body.String())
}

func TestSuggest(t *testing.T) {
	var gotNote string
	h := moodHandler(&fakeMoodService{
		suggest: func(_ context.Context, note string) []string {
			gotNote = note
			return []string{"😢", "😴"}
		},
	})

	rec := serve(h, authorized(httptest.NewRequest(http.MethodPost, "/api/mood/suggest",
		strings.NewReader(`{"note":"I feel so tired and sad today"}`))))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "I feel so tired and sad today", gotNote)
	assert.JSONEq(t, `{"suggestions":["😢","😴"]}`, rec.Body.String())
}

func TestSuggest_EmptyResultIsArray(t *testing.T) {
	h := moodHandler(&fakeMoodService{
		suggest: func(context.Context, string) []string { return []string{} },
	})

	rec := serve(h, authorized(httptest.NewRequest(http.MethodPost, "/api/mood/suggest", strings.NewReader(`{"note":""}`))))

	assert.JSONEq(t, `{"suggestions":[]}`, rec.Body.String())
}

func TestPublicBoard(t *testing.T) {
	h := moodHandler(&fakeMoodService{
		public: func(context.Context) (models.PublicBoard, error) {
			return models.PublicBoard{"2024-03-09": {"😊": 3, "😌": 1}}, nil
		},
	})

	// no Authorization header: the board is public
	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/mood/public", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"2024-03-09":{"😊":3,"😌":1}}`, rec.Body.String())
}

func TestPublicBoard_Failure(t *testing.T) {
	h := moodHandler(&fakeMoodService{
		public: func(context.Context) (models.PublicBoard, error) {
			return nil, errors.New("db down")
		},
	})

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/mood/public", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to get mood board"}`, rec.Body.String())
}
