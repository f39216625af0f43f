package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_Stamped(t *testing.T) {
	info := NewAppBuildInfo("v1.2.0", "2026-10-01", "abc123")

	assert.True(t, info.Stamped())
	assert.Equal(t, "v1.2.0", info.BuildVersion())
	assert.Equal(t, "v1.2.0 (commit abc123, built 2026-10-01)", info.String())
}

func TestAppBuildInfo_Unstamped(t *testing.T) {
	info := NewAppBuildInfo("", "", "")

	assert.False(t, info.Stamped())
	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Equal(t, "N/A (commit N/A, built N/A)", info.String())
}
