// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the Go client of the mood journal REST API.
//
// [JournalClient] covers every route under /api. Non-2xx responses are mapped
// to the sentinel errors in errors.go, so callers can branch with [errors.Is]
// (e.g. [ErrForbidden] when a share link points at a journal whose sharing
// was disabled).
package adapter

import (
	"context"

	"github.com/MKhiriev/mood-journal/models"
)

// JournalClient talks to a running journal server. Register and Login store
// the returned session token; every owner-scoped call sends it as a bearer
// token.
type JournalClient interface {
	SetToken(token string)
	Token() string

	Register(ctx context.Context, creds models.Credentials) (string, error)
	Login(ctx context.Context, creds models.Credentials) (string, error)

	CreateMood(ctx context.Context, req models.CreateMoodRequest) (models.Mood, error)
	UpdateMood(ctx context.Context, id int64, update models.MoodUpdate) (models.Mood, error)
	DeleteMood(ctx context.Context, id int64) error

	MonthlySummary(ctx context.Context, year, month int) (models.MonthlySummary, error)
	Stats(ctx context.Context) (models.MoodStats, error)
	Dashboard(ctx context.Context) (models.Dashboard, error)
	Suggest(ctx context.Context, note string) ([]string, error)

	EnableSharing(ctx context.Context) (models.ShareLink, error)
	DisableSharing(ctx context.Context) error

	// SharedMoods reads another user's journal through their share token.
	// It needs no session.
	SharedMoods(ctx context.Context, shareToken string) ([]models.SharedMood, error)
	PublicBoard(ctx context.Context) (models.PublicBoard, error)

	Version(ctx context.Context) (string, error)
}
