package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/nlskit/core/logger"
)

func TestErrorAttr(t *testing.T) {
	t.Parallel()

	t.Run("nil error yields empty attr", func(t *testing.T) {
		t.Parallel()

		attr := logger.Error(nil)
		assert.True(t, attr.Equal(slog.Attr{}))
	})

	t.Run("non-nil error uses error key", func(t *testing.T) {
		t.Parallel()

		err := errors.New("boom")
		attr := logger.Error(err)
		assert.Equal(t, "error", attr.Key)
		assert.Equal(t, err, attr.Value.Any())
	})
}

func TestErrorsAttr(t *testing.T) {
	t.Parallel()

	t.Run("all nil errors yield empty attr", func(t *testing.T) {
		t.Parallel()

		attr := logger.Errors(nil, nil)
		assert.True(t, attr.Equal(slog.Attr{}))
	})

	t.Run("nil errors are skipped but order preserved", func(t *testing.T) {
		t.Parallel()

		first := errors.New("first")
		third := errors.New("third")
		attr := logger.Errors(first, nil, third)

		require.Equal(t, "errors", attr.Key)
		group := attr.Value.Group()
		require.Len(t, group, 2)
		assert.Equal(t, "0", group[0].Key)
		assert.Equal(t, "2", group[1].Key)
	})
}

func TestIdentifierAttrs(t *testing.T) {
	t.Parallel()

	t.Run("empty values yield empty attrs", func(t *testing.T) {
		t.Parallel()

		assert.True(t, logger.TraceID("").Equal(slog.Attr{}))
		assert.True(t, logger.Locale("").Equal(slog.Attr{}))
		assert.True(t, logger.PackID("").Equal(slog.Attr{}))
		assert.True(t, logger.Commit("").Equal(slog.Attr{}))
		assert.True(t, logger.Path("").Equal(slog.Attr{}))
		assert.True(t, logger.ID("key", nil).Equal(slog.Attr{}))
	})

	t.Run("localization attrs use stable keys", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "locale", logger.Locale("de-ch").Key)
		assert.Equal(t, "language_pack_id", logger.PackID("abc123.de").Key)
		assert.Equal(t, "commit", logger.Commit("deadbeef").Key)
		assert.Equal(t, "path", logger.Path("/tmp/cache").Key)
		assert.Equal(t, "trace_id", logger.TraceID("trace-1").Key)
	})
}

func TestMetadataAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "component", logger.Component("resolver").Key)
	assert.Equal(t, "event", logger.Event("startup").Key)
	assert.Equal(t, "result", logger.Result("success").Key)
	assert.Equal(t, "version", logger.Version("v1.0.0").Key)

	count := logger.Count("packs_removed", 3)
	assert.Equal(t, "packs_removed", count.Key)
	assert.Equal(t, int64(3), count.Value.Int64())
}

func TestTimingAttrs(t *testing.T) {
	t.Parallel()

	attr := logger.Duration(2 * time.Second)
	assert.Equal(t, "duration", attr.Key)
	assert.Equal(t, 2*time.Second, attr.Value.Duration())

	elapsed := logger.Elapsed(time.Now().Add(-time.Second))
	assert.Equal(t, "elapsed", elapsed.Key)
	assert.GreaterOrEqual(t, elapsed.Value.Duration(), time.Second)
}

func TestGroupAttr(t *testing.T) {
	t.Parallel()

	attr := logger.Group("cache",
		slog.String("state", "hit"),
		slog.String("commit", "deadbeef"),
	)

	require.Equal(t, "cache", attr.Key)
	assert.Len(t, attr.Value.Group(), 2)
}
