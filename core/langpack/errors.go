package langpack

import "errors"

var (
	// ErrManifestNotFound is returned when the language pack manifest file does not exist.
	ErrManifestNotFound = errors.New("language pack manifest not found")
	// ErrManifestUnreadable is returned when the manifest file exists but cannot be read.
	ErrManifestUnreadable = errors.New("failed to read language pack manifest")
	// ErrManifestMalformed is returned when the manifest file is not valid JSON.
	ErrManifestMalformed = errors.New("language pack manifest is malformed")
	// ErrPackHashMissing is returned when a pack entry has no content hash.
	ErrPackHashMissing = errors.New("language pack entry has no hash")
	// ErrPackTranslationsMissing is returned when a pack entry has no translations mapping.
	ErrPackTranslationsMissing = errors.New("language pack entry has no translations")
	// ErrTranslationMissing is returned when a pack entry has no translation file for the requested component.
	ErrTranslationMissing = errors.New("no translation file for component")
	// ErrTranslationFileMissing is returned when a pack's translation file does not exist on disk.
	ErrTranslationFileMissing = errors.New("translation file does not exist")
)
