package nlscache

import "errors"

var (
	// ErrUserDataPathRequired is returned when constructing a cleaner without a user data path.
	ErrUserDataPathRequired = errors.New("user data path is required")
	// ErrCacheCheck is returned when the cache state cannot be determined.
	ErrCacheCheck = errors.New("failed to check cache state")
	// ErrPurgeFailed is returned when a corrupted pack cache tree cannot be removed.
	ErrPurgeFailed = errors.New("failed to purge pack cache")
	// ErrTouchFailed is returned when the freshness timestamp of a commit directory cannot be updated.
	ErrTouchFailed = errors.New("failed to touch cache directory")
	// ErrMarkCorrupted is returned when the corruption sentinel cannot be written.
	ErrMarkCorrupted = errors.New("failed to mark pack cache as corrupted")
	// ErrStagingFailed is returned when a staging directory for materialization cannot be created.
	ErrStagingFailed = errors.New("failed to create staging directory")
	// ErrWriteFailed is returned when a cache file cannot be persisted.
	ErrWriteFailed = errors.New("failed to write cache file")
	// ErrPromoteFailed is returned when a staged materialization cannot be moved into place.
	ErrPromoteFailed = errors.New("failed to promote staged cache directory")
	// ErrTranslationsConfigNotFound is returned when a pack has no persisted translations mapping.
	ErrTranslationsConfigNotFound = errors.New("translations config file not found")
	// ErrTranslationsConfigUnreadable is returned when the persisted translations mapping cannot be read.
	ErrTranslationsConfigUnreadable = errors.New("failed to read translations config file")
	// ErrTranslationsConfigMalformed is returned when the persisted translations mapping is not valid JSON.
	ErrTranslationsConfigMalformed = errors.New("translations config file is malformed")
	// ErrCleanupFailed is returned when the cache root cannot be scanned for stale packs.
	ErrCleanupFailed = errors.New("failed to clean cache root")
	// ErrCleanerNotStarted is returned when stopping a cleaner that was never started.
	ErrCleanerNotStarted = errors.New("cleaner not started")
	// ErrCleanerAlreadyStarted is returned when starting a cleaner twice.
	ErrCleanerAlreadyStarted = errors.New("cleaner already started")
)
