package nlskit_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/nlskit"
	"github.com/dmitrymomot/nlskit/core/config"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := nlskit.DefaultConfig()

	assert.Equal(t, "en", cfg.UserLocale)
	assert.Equal(t, "en", cfg.OSLocale)
	assert.Equal(t, nlskit.DefaultProduct, cfg.Product)
	assert.False(t, cfg.DevMode)
}

func TestConfigRequest(t *testing.T) {
	t.Parallel()

	cfg := nlskit.Config{
		UserLocale:      "pt-BR",
		OSLocale:        "pt-PT",
		UserDataPath:    "/home/user/.appdata",
		NLSMetadataPath: "/opt/app/nls",
		CommitID:        "deadbeef",
	}

	req := cfg.Request()

	assert.Equal(t, "pt-BR", req.UserLocale)
	assert.Equal(t, "pt-PT", req.OSLocale)
	assert.Equal(t, "/home/user/.appdata", req.UserDataPath)
	assert.Equal(t, "/opt/app/nls", req.NLSMetadataPath)
	assert.Equal(t, "deadbeef", req.CommitID)
}

func TestConfigFromEnvironment(t *testing.T) {
	t.Setenv("NLS_USER_LOCALE", "pt-BR")
	t.Setenv("NLS_OS_LOCALE", "pt-PT")
	t.Setenv("NLS_USER_DATA_PATH", "/home/user/.appdata")
	t.Setenv("NLS_METADATA_PATH", "/opt/app/nls")
	t.Setenv("NLS_COMMIT", "deadbeef")
	t.Setenv("NLS_PRODUCT", "myeditor")
	t.Setenv("NLS_DEV_MODE", "true")

	var cfg nlskit.Config
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "pt-BR", cfg.UserLocale)
	assert.Equal(t, "pt-PT", cfg.OSLocale)
	assert.Equal(t, "/home/user/.appdata", cfg.UserDataPath)
	assert.Equal(t, "/opt/app/nls", cfg.NLSMetadataPath)
	assert.Equal(t, "deadbeef", cfg.CommitID)
	assert.Equal(t, "myeditor", cfg.Product)
	assert.True(t, cfg.DevMode)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("dev mode from config forces the default configuration", func(t *testing.T) {
		fx := newFixture(t)
		cfg := nlskit.DefaultConfig()
		cfg.DevMode = true

		result := nlskit.NewFromConfig(cfg).Resolve(ctx, fx.request("fr-CA"))

		assert.False(t, result.Resolved())
	})

	t.Run("config product selects its translation", func(t *testing.T) {
		fx := newFixture(t)
		writeJSON(t, filepath.Join(fx.userDataPath, "languagepacks.json"), map[string]any{
			"fr": map[string]any{"hash": "h1", "translations": map[string]string{"myeditor": fx.translationPath}},
		})
		cfg := nlskit.DefaultConfig()
		cfg.Product = "myeditor"

		result := nlskit.NewFromConfig(cfg).Resolve(ctx, fx.request("fr-CA"))

		assert.True(t, result.Resolved())
	})

	t.Run("explicit options override config values", func(t *testing.T) {
		fx := newFixture(t)
		writeJSON(t, filepath.Join(fx.userDataPath, "languagepacks.json"), map[string]any{
			"fr": map[string]any{"hash": "h1", "translations": map[string]string{"myeditor": fx.translationPath}},
		})
		cfg := nlskit.DefaultConfig()
		cfg.Product = "vscode"

		result := nlskit.NewFromConfig(cfg, nlskit.WithProduct("myeditor")).Resolve(ctx, fx.request("fr-CA"))

		assert.True(t, result.Resolved())
	})
}
