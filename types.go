package nlskit

// Request carries the inputs of one locale resolution, typically assembled
// once during application startup.
type Request struct {
	// UserLocale is the locale the user asked for, as a BCP-47-style tag.
	// It is normalized before matching, so "PT_br" and "pt-BR" resolve alike.
	UserLocale string

	// OSLocale is the operating system locale, carried through to the result
	// untouched for consumers that need it.
	OSLocale string

	// UserDataPath is the directory holding the language pack manifest and
	// the translation cache tree. Empty means no packs are available.
	UserDataPath string

	// CommitID identifies the application build. Cache entries are scoped to
	// it so translations never leak across incompatible builds. Empty means
	// caching is impossible and resolution falls back to defaults.
	CommitID string

	// NLSMetadataPath is the directory holding the default message catalogs,
	// nls.keys.json and nls.messages.json.
	NLSMetadataPath string
}

// Configuration is the outcome of a resolution. It is always usable: either
// a resolved configuration pointing at materialized translations, or the
// default configuration meaning the application runs untranslated.
type Configuration struct {
	UserLocale         string            `json:"userLocale"`
	OSLocale           string            `json:"osLocale"`
	AvailableLanguages map[string]string `json:"availableLanguages"`
	Pseudo             bool              `json:"pseudo,omitempty"`

	// The fields below are set only when a language pack was resolved. They
	// point consumers at the materialized cache without another manifest read.
	LanguagePackID         string `json:"languagePackId,omitempty"`
	TranslationsConfigFile string `json:"translationsConfigFile,omitempty"`
	CacheRoot              string `json:"cacheRoot,omitempty"`
	ResolvedCoreLocation   string `json:"resolvedLanguagePackCoreLocation,omitempty"`
	CorruptedFile          string `json:"corruptedFile,omitempty"`
}

// Resolved reports whether a language pack backs this configuration.
func (c Configuration) Resolved() bool {
	return c.LanguagePackID != ""
}

// defaultConfiguration is the universal safe terminal state: no available
// languages, no pack fields, the application runs on its built-in strings.
func defaultConfiguration(userLocale, osLocale string, pseudo bool) Configuration {
	return Configuration{
		UserLocale:         userLocale,
		OSLocale:           osLocale,
		AvailableLanguages: map[string]string{},
		Pseudo:             pseudo,
	}
}
