// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "userID", UserIDCtxKey.String())
}

func TestWithUserID_RoundTrip(t *testing.T) {
	ctx := WithUserID(context.Background(), 42)

	userID, ok := GetUserIDFromContext(ctx)

	assert.True(t, ok)
	assert.Equal(t, int64(42), userID)
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	userID, ok := GetUserIDFromContext(context.Background())

	assert.False(t, ok)
	assert.Zero(t, userID)
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "not-an-int64")

	userID, ok := GetUserIDFromContext(ctx)

	assert.False(t, ok)
	assert.Zero(t, userID)
}

func TestGetUserIDFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("otherKey"), int64(99))

	_, ok := GetUserIDFromContext(ctx)

	assert.False(t, ok)
}
