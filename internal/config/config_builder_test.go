package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.App.TokenSignKey = "sign-key"
	cfg.Storage.DB.DSN = "sqlite://mood.db"
	return cfg
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that an empty config fails validation.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesOverride verifies that non-zero fields of later
// configs replace earlier ones while zero fields keep earlier values.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TokenSignKey: "env-key", Version: "1.0.0"}, Storage: Storage{DB: DB{DSN: "sqlite://a.db"}}},
		&StructuredConfig{App: App{TokenSignKey: "flag-key"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flag-key", cfg.App.TokenSignKey)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, DefaultShareTokenTTL, cfg.App.ShareTokenTTL)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
}

// The default share link has to land on the shared-moods route.
func TestDefaults_ShareURLPrefixMatchesSharedRoute(t *testing.T) {
	cfg := defaultConfig()

	assert.Equal(t, "/api/mood/shared/", cfg.App.ShareURLPrefix)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{"valid", func(cfg *StructuredConfig) {}, nil},
		{"missing sign key", func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" }, ErrInvalidAppConfigs},
		{"missing issuer", func(cfg *StructuredConfig) { cfg.App.TokenIssuer = "" }, ErrInvalidAppConfigs},
		{"zero share ttl", func(cfg *StructuredConfig) { cfg.App.ShareTokenTTL = 0 }, ErrInvalidAppConfigs},
		{"missing dsn", func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"cache without ttl", func(cfg *StructuredConfig) {
			cfg.Storage.Cache.Addr = "localhost:6379"
			cfg.Storage.Cache.PublicBoardTTL = 0
		}, ErrInvalidStorageConfigs},
		{"cache disabled without ttl", func(cfg *StructuredConfig) {
			cfg.Storage.Cache.PublicBoardTTL = 0
		}, nil},
		{"missing address", func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" }, ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-issuer", b.configs[0].App.TokenIssuer)
}

// TestWithEnv_SetsErrorOnBadValue verifies that a malformed env value is
// recorded and nothing is appended.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("SERVER_REQUEST_TIMEOUT", "soon")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsParsedConfig(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags([]string{"-token-sign-key", "flag-key"}))

	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag-key", b.configs[0].App.TokenSignKey)
}

func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-a", "nowhere"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withDotEnv("/nonexistent/.env"))
	assert.NoError(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.App.TokenIssuer = "json-issuer"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "json-issuer", b.configs[1].App.TokenIssuer)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.Version = "first"
	last := StructuredJSONConfig{}
	last.App.Version = "last-wins"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, last)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Version)
}

// ── full chain ────────────────────────────────────────────────────────────────

func TestFullChain_JSONOverridesEnvAndFlags(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.ShareTokenTTL = Duration(time.Hour)
	path := writeTempJSONConfig(t, payload)

	t.Setenv("APP_TOKEN_SIGN_KEY", "env-key")
	t.Setenv("STORAGE_DB_DATABASE_URI", "sqlite://env.db")
	t.Setenv("APP_SHARE_TOKEN_TTL", "2h")

	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags([]string{"-c", path, "-d", "sqlite://flag.db"}).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.App.TokenSignKey)
	assert.Equal(t, "sqlite://flag.db", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Hour, cfg.App.ShareTokenTTL)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
}
