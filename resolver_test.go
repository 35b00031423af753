package nlskit_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/nlskit"
	"github.com/dmitrymomot/nlskit/core/nlscache"
)

// fixture is a complete resolution environment: a user data directory with
// an installed french pack plus an english one, and a metadata directory
// with the build's default catalogs.
type fixture struct {
	userDataPath    string
	metadataPath    string
	translationPath string
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	userData := t.TempDir()
	metadata := t.TempDir()

	writeJSON(t, filepath.Join(metadata, "nls.keys.json"), []any{
		[]any{"vs/workbench", []string{"open", "close"}},
		[]any{"vs/editor", []string{"save"}},
	})
	writeJSON(t, filepath.Join(metadata, "nls.messages.json"), []string{"Open", "Close", "Save"})

	translation := filepath.Join(t.TempDir(), "fr.main.i18n.json")
	writeJSON(t, translation, map[string]any{
		"contents": map[string]map[string]string{
			"vs/workbench": {"open": "Ouvrir", "close": "Fermer"},
			"vs/editor":    {"save": ""},
		},
	})

	writeJSON(t, filepath.Join(userData, "languagepacks.json"), map[string]any{
		"fr": map[string]any{"hash": "h1", "translations": map[string]string{"vscode": translation}},
		"en": map[string]any{"hash": "e1", "translations": map[string]string{"vscode": translation}},
	})

	return fixture{
		userDataPath:    userData,
		metadataPath:    metadata,
		translationPath: translation,
	}
}

func (f fixture) request(locale string) nlskit.Request {
	return nlskit.Request{
		UserLocale:      locale,
		OSLocale:        locale,
		UserDataPath:    f.userDataPath,
		CommitID:        "c0ffee",
		NLSMetadataPath: f.metadataPath,
	}
}

func writeJSON(t *testing.T, path string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func readMessages(t *testing.T, commitDir string) []string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(commitDir, nlscache.MessagesFile))
	require.NoError(t, err)
	var messages []string
	require.NoError(t, json.Unmarshal(data, &messages))
	return messages
}

// frMessages is the expected merge result for the fixture: translated
// strings where the pack has them, the default where it has an empty one.
var frMessages = []string{"Ouvrir", "Fermer", "Save"}

func TestResolveShortCircuits(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("english needs no pack even when one is installed", func(t *testing.T) {
		fx := newFixture(t)
		cfg := nlskit.New().Resolve(ctx, fx.request("en"))

		assert.False(t, cfg.Resolved())
		assert.Equal(t, "en", cfg.UserLocale)
		assert.NotNil(t, cfg.AvailableLanguages)
		assert.Empty(t, cfg.AvailableLanguages)
		assert.NoDirExists(t, filepath.Join(fx.userDataPath, nlscache.CacheDirName))
	})

	t.Run("en-US short-circuits case-insensitively", func(t *testing.T) {
		fx := newFixture(t)
		cfg := nlskit.New().Resolve(ctx, fx.request("en-US"))

		assert.False(t, cfg.Resolved())
		assert.Equal(t, "en-US", cfg.UserLocale)
	})

	t.Run("other regional english still consults the manifest", func(t *testing.T) {
		fx := newFixture(t)
		cfg := nlskit.New().Resolve(ctx, fx.request("en-GB"))

		require.True(t, cfg.Resolved())
		assert.Equal(t, "e1.en", cfg.LanguagePackID)
		assert.Equal(t, map[string]string{"*": "en"}, cfg.AvailableLanguages)
	})

	t.Run("empty locale falls back silently", func(t *testing.T) {
		fx := newFixture(t)
		cfg := nlskit.New().Resolve(ctx, fx.request(""))

		assert.False(t, cfg.Resolved())
		assert.Empty(t, cfg.UserLocale)
	})

	t.Run("pseudo locale flags placeholder testing", func(t *testing.T) {
		fx := newFixture(t)
		cfg := nlskit.New().Resolve(ctx, fx.request("pseudo"))

		assert.False(t, cfg.Resolved())
		assert.True(t, cfg.Pseudo)
	})

	t.Run("missing commit disables caching and packs", func(t *testing.T) {
		fx := newFixture(t)
		req := fx.request("fr-CA")
		req.CommitID = ""
		cfg := nlskit.New().Resolve(ctx, req)

		assert.False(t, cfg.Resolved())
	})

	t.Run("missing user data path disables packs", func(t *testing.T) {
		fx := newFixture(t)
		req := fx.request("fr-CA")
		req.UserDataPath = ""
		cfg := nlskit.New().Resolve(ctx, req)

		assert.False(t, cfg.Resolved())
	})

	t.Run("dev mode forces built-in strings", func(t *testing.T) {
		fx := newFixture(t)
		cfg := nlskit.New(nlskit.WithDevMode(true)).Resolve(ctx, fx.request("fr-CA"))

		assert.False(t, cfg.Resolved())
		assert.Equal(t, "fr-CA", cfg.UserLocale)
	})
}

func TestResolveMaterializesPack(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fx := newFixture(t)
	resolver := nlskit.New()

	cfg := resolver.Resolve(ctx, fx.request("fr-CA"))

	require.True(t, cfg.Resolved())
	assert.Equal(t, "fr-CA", cfg.UserLocale, "requested locale is echoed, not the resolved one")
	assert.Equal(t, "fr-CA", cfg.OSLocale)
	assert.Equal(t, map[string]string{"*": "fr"}, cfg.AvailableLanguages)
	assert.Equal(t, "h1.fr", cfg.LanguagePackID)

	packRoot := filepath.Join(fx.userDataPath, nlscache.CacheDirName, "h1.fr")
	assert.Equal(t, packRoot, cfg.CacheRoot)
	assert.Equal(t, filepath.Join(packRoot, "c0ffee"), cfg.ResolvedCoreLocation)
	assert.Equal(t, filepath.Join(packRoot, nlscache.TranslationsConfigFile), cfg.TranslationsConfigFile)
	assert.Equal(t, filepath.Join(packRoot, nlscache.CorruptedMarkerFile), cfg.CorruptedFile)

	assert.Equal(t, frMessages, readMessages(t, cfg.ResolvedCoreLocation))

	translations, err := nlscache.New(fx.userDataPath).ReadTranslationsConfig("h1.fr")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"vscode": fx.translationPath}, translations)

	entries, err := os.ReadDir(packRoot)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	assert.ElementsMatch(t, []string{"c0ffee", nlscache.TranslationsConfigFile}, names,
		"no staging residue after a successful materialization")
}

func TestResolveIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fx := newFixture(t)
	resolver := nlskit.New()

	first := resolver.Resolve(ctx, fx.request("fr-CA"))
	second := resolver.Resolve(ctx, fx.request("fr-CA"))

	assert.Equal(t, first, second)
}

func TestResolveTrustsExistingCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fx := newFixture(t)
	resolver := nlskit.New()

	first := resolver.Resolve(ctx, fx.request("fr-CA"))
	require.True(t, first.Resolved())

	// A cached commit directory is trusted on existence alone; its contents
	// must survive later resolutions untouched.
	messagesPath := filepath.Join(first.ResolvedCoreLocation, nlscache.MessagesFile)
	require.NoError(t, os.WriteFile(messagesPath, []byte(`["sentinel"]`), 0o644))

	second := resolver.Resolve(ctx, fx.request("fr-CA"))
	require.True(t, second.Resolved())
	assert.Equal(t, []string{"sentinel"}, readMessages(t, second.ResolvedCoreLocation))
}

func TestResolveRecoversFromCorruption(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fx := newFixture(t)
	resolver := nlskit.New()

	first := resolver.Resolve(ctx, fx.request("fr-CA"))
	require.True(t, first.Resolved())

	cache := nlscache.New(fx.userDataPath)
	require.NoError(t, cache.MarkCorrupted("h1.fr"))

	second := resolver.Resolve(ctx, fx.request("fr-CA"))
	require.True(t, second.Resolved())

	assert.NoFileExists(t, second.CorruptedFile, "corruption marker is consumed by the purge")
	assert.Equal(t, frMessages, readMessages(t, second.ResolvedCoreLocation))

	translations, err := cache.ReadTranslationsConfig("h1.fr")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"vscode": fx.translationPath}, translations)
}

func TestResolveFallsBackToDefault(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("no manifest installed", func(t *testing.T) {
		fx := newFixture(t)
		require.NoError(t, os.Remove(filepath.Join(fx.userDataPath, "languagepacks.json")))

		cfg := nlskit.New().Resolve(ctx, fx.request("fr-CA"))
		assert.False(t, cfg.Resolved())
	})

	t.Run("malformed manifest", func(t *testing.T) {
		fx := newFixture(t)
		require.NoError(t, os.WriteFile(filepath.Join(fx.userDataPath, "languagepacks.json"), []byte("{broken"), 0o644))

		cfg := nlskit.New().Resolve(ctx, fx.request("fr-CA"))
		assert.False(t, cfg.Resolved())
	})

	t.Run("no pack matches the locale", func(t *testing.T) {
		fx := newFixture(t)
		cfg := nlskit.New().Resolve(ctx, fx.request("de-DE"))

		assert.False(t, cfg.Resolved())
		assert.Equal(t, "de-DE", cfg.UserLocale)
	})

	t.Run("pack lacks the product translation", func(t *testing.T) {
		fx := newFixture(t)
		writeJSON(t, filepath.Join(fx.userDataPath, "languagepacks.json"), map[string]any{
			"fr": map[string]any{"hash": "h1", "translations": map[string]string{"someotherproduct": fx.translationPath}},
		})

		cfg := nlskit.New().Resolve(ctx, fx.request("fr-CA"))
		assert.False(t, cfg.Resolved())
	})

	t.Run("pack translation file does not exist", func(t *testing.T) {
		fx := newFixture(t)
		writeJSON(t, filepath.Join(fx.userDataPath, "languagepacks.json"), map[string]any{
			"fr": map[string]any{"hash": "h1", "translations": map[string]string{"vscode": filepath.Join(fx.userDataPath, "gone.json")}},
		})

		cfg := nlskit.New().Resolve(ctx, fx.request("fr-CA"))
		assert.False(t, cfg.Resolved())
	})

	t.Run("pack entry lacks a hash", func(t *testing.T) {
		fx := newFixture(t)
		writeJSON(t, filepath.Join(fx.userDataPath, "languagepacks.json"), map[string]any{
			"fr": map[string]any{"translations": map[string]string{"vscode": fx.translationPath}},
		})

		cfg := nlskit.New().Resolve(ctx, fx.request("fr-CA"))
		assert.False(t, cfg.Resolved())
	})

	t.Run("malformed keys document", func(t *testing.T) {
		fx := newFixture(t)
		require.NoError(t, os.WriteFile(filepath.Join(fx.metadataPath, "nls.keys.json"), []byte("{broken"), 0o644))

		cfg := nlskit.New().Resolve(ctx, fx.request("fr-CA"))
		assert.False(t, cfg.Resolved())
		assert.NoDirExists(t, filepath.Join(fx.userDataPath, nlscache.CacheDirName, "h1.fr", "c0ffee"),
			"a failed materialization must not publish a commit directory")
	})

	t.Run("keys and defaults disagree on message count", func(t *testing.T) {
		fx := newFixture(t)
		writeJSON(t, filepath.Join(fx.metadataPath, "nls.messages.json"), []string{"Open", "Close"})

		cfg := nlskit.New().Resolve(ctx, fx.request("fr-CA"))
		assert.False(t, cfg.Resolved())
	})

	t.Run("different product id selects its own translation", func(t *testing.T) {
		fx := newFixture(t)
		writeJSON(t, filepath.Join(fx.userDataPath, "languagepacks.json"), map[string]any{
			"fr": map[string]any{"hash": "h1", "translations": map[string]string{"myeditor": fx.translationPath}},
		})

		cfg := nlskit.New(nlskit.WithProduct("myeditor")).Resolve(ctx, fx.request("fr-CA"))
		require.True(t, cfg.Resolved())
		assert.Equal(t, frMessages, readMessages(t, cfg.ResolvedCoreLocation))
	})
}

// recordingObserver captures lifecycle callbacks for assertions.
type recordingObserver struct {
	startedIDs  []string
	finishedIDs []string
	requests    []nlskit.Request
	configs     []nlskit.Configuration
	elapsed     []time.Duration
}

func (o *recordingObserver) ResolutionStarted(_ context.Context, traceID string, req nlskit.Request) {
	o.startedIDs = append(o.startedIDs, traceID)
	o.requests = append(o.requests, req)
}

func (o *recordingObserver) ResolutionFinished(_ context.Context, traceID string, cfg nlskit.Configuration, elapsed time.Duration) {
	o.finishedIDs = append(o.finishedIDs, traceID)
	o.configs = append(o.configs, cfg)
	o.elapsed = append(o.elapsed, elapsed)
}

func TestResolveNotifiesObserver(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fx := newFixture(t)
	observer := &recordingObserver{}
	resolver := nlskit.New(nlskit.WithObserver(observer))

	cfg := resolver.Resolve(ctx, fx.request("fr-CA"))

	require.Len(t, observer.startedIDs, 1)
	require.Len(t, observer.finishedIDs, 1)
	assert.NotEmpty(t, observer.startedIDs[0])
	assert.Equal(t, observer.startedIDs[0], observer.finishedIDs[0], "both events share one trace id")
	assert.Equal(t, fx.request("fr-CA"), observer.requests[0])
	assert.Equal(t, cfg, observer.configs[0], "observer sees the configuration the caller gets")
	assert.GreaterOrEqual(t, observer.elapsed[0], time.Duration(0))

	second := resolver.Resolve(ctx, fx.request("fr-CA"))
	require.True(t, second.Resolved())
	require.Len(t, observer.startedIDs, 2)
	assert.NotEqual(t, observer.startedIDs[0], observer.startedIDs[1], "each resolution gets a fresh trace id")
}
