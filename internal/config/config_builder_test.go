// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
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
	cfg := defaults()
	cfg.App.TokenSignKey = "secret"
	cfg.Storage.DB.DSN = "postgres://localhost/edims"
	cfg.Storage.Objects.Bucket = "edims-items"
	return cfg
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that an empty configuration does not pass
// validation.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourceWins verifies that a non-zero field of an earlier
// source is not overwritten by later ones, while zero fields are filled.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: ":9000"}},
		&StructuredConfig{Server: Server{HTTPAddress: ":9999"}, App: App{TokenIssuer: "second"}},
		validConfig(),
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "second", cfg.App.TokenIssuer)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
}

func TestBuild_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *StructuredConfig)
		want   error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "missing sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }, want: ErrInvalidAppConfigs},
		{name: "negative token duration", mutate: func(c *StructuredConfig) { c.App.TokenDuration = -time.Second }, want: ErrInvalidAppConfigs},
		{name: "hash cost too small", mutate: func(c *StructuredConfig) { c.App.PasswordHashCost = 1 }, want: ErrInvalidAppConfigs},
		{name: "hash cost too large", mutate: func(c *StructuredConfig) { c.App.PasswordHashCost = 40 }, want: ErrInvalidAppConfigs},
		{name: "missing dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, want: ErrInvalidStorageConfigs},
		{name: "missing bucket", mutate: func(c *StructuredConfig) { c.Storage.Objects.Bucket = "" }, want: ErrInvalidStorageConfigs},
		{name: "negative upload size", mutate: func(c *StructuredConfig) { c.Server.MaxUploadSize = -1 }, want: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			b := newConfigBuilder()
			b.configs = append(b.configs, cfg)

			got, err := b.build()
			if tt.want == nil {
				require.NoError(t, err)
				assert.NotNil(t, got)
				return
			}
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_FillsGaps(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App:     App{TokenSignKey: "secret", TokenIssuer: "custom"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/edims"}, Objects: Objects{Bucket: "b"}},
	})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "custom", cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 10, cfg.App.PasswordHashCost)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "https://storage.googleapis.com", cfg.Storage.Objects.Endpoint)
	assert.Equal(t, "auto", cfg.Storage.Objects.Region)
	assert.Equal(t, "https://storage.googleapis.com", cfg.Storage.Objects.PublicBaseURL)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, int64(10<<20), cfg.Server.MaxUploadSize)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_AppendsOneConfig(t *testing.T) {
	clearEnvVars(t)
	b := newConfigBuilder().withEnv()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithEnv_SetsErrorOnInvalidValue(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_REQUEST_TIMEOUT": "never"})
	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsConfig(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-a", ":7000"})
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, ":7000", b.configs[0].Server.HTTPAddress)
}

func TestWithFlags_SetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"server": map[string]any{"http_address": ":6060"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, ":6060", b.configs[1].Server.HTTPAddress)
}

// TestWithJSON_UsesFirstPath verifies that the path of the highest-priority
// source is used.
func TestWithJSON_UsesFirstPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"token_issuer": "first"}})
	second := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"token_issuer": "second"}})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)

	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "first", b.configs[2].App.TokenIssuer)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "nope.json")})

	b.withJSON()
	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// ── full chain ────────────────────────────────────────────────────────────────

// TestBuilder_SourcePriority verifies env > flags > json > defaults.
func TestBuilder_SourcePriority(t *testing.T) {
	jsonPath := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"token_sign_key": "json_key",
			"token_issuer":   "json_issuer",
			"log_level":      "error",
		},
		"storage": map[string]any{
			"db":      map[string]any{"dsn": "postgres://json/edims"},
			"objects": map[string]any{"bucket": "json-bucket"},
		},
	})
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY": "env_key",
		"CONFIG":             jsonPath,
	})

	cfg, err := newConfigBuilder().
		withDotEnv(filepath.Join(t.TempDir(), ".env")).
		withEnv().
		withFlags([]string{"-token-sign-key", "flag_key", "-token-issuer", "flag_issuer"}).
		withJSON().
		withDefaults().
		build()
	require.NoError(t, err)

	assert.Equal(t, "env_key", cfg.App.TokenSignKey)
	assert.Equal(t, "flag_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "error", cfg.App.LogLevel)
	assert.Equal(t, "postgres://json/edims", cfg.Storage.DB.DSN)
	assert.Equal(t, "json-bucket", cfg.Storage.Objects.Bucket)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
}
