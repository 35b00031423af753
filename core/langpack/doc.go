// Package langpack reads the installed language pack manifest and matches
// requested locales against it.
//
// A language pack installer maintains a single languagepacks.json file at the
// root of the user data directory, mapping locale tags to pack entries. This
// package loads that manifest, resolves which installed pack serves a requested
// locale, and validates that a matched pack can actually provide translations
// for a given component.
//
// # Locale Matching
//
// Resolution walks locale tags from most specific to least specific by
// truncating at the last separator, so a request for "de-ch-1996" tries
// "de-ch-1996", then "de-ch", then "de". The first tier with a usable manifest
// entry wins:
//
//	manifest, err := langpack.LoadManifest(filepath.Join(userDataPath, langpack.ManifestFile))
//	if err != nil {
//		// Treated as "no language packs installed", not a failure.
//	}
//
//	locale := langpack.NormalizeLocale("fr_CA") // "fr-ca"
//	resolved, ok := manifest.Resolve(locale)
//	if !ok {
//		// No installed pack serves this locale.
//	}
//
// # Pack Validation
//
// A matched entry is only usable when it carries a content hash and an existing
// translation file for the requesting component:
//
//	entry := manifest[resolved]
//	if err := entry.Validate("vscode"); err != nil {
//		// Fall back to untranslated output.
//	}
//	path, _ := entry.TranslationPath("vscode")
//
// # Error Handling
//
// Manifest loading distinguishes three conditions so callers can log them at
// different levels, while treating all of them as "no packs available":
//
//   - ErrManifestNotFound: the manifest file does not exist
//   - ErrManifestUnreadable: the manifest file cannot be read
//   - ErrManifestMalformed: the manifest file is not valid JSON
//
// Entry validation reports ErrPackHashMissing, ErrPackTranslationsMissing,
// ErrTranslationMissing, or ErrTranslationFileMissing, all equally meaning the
// pack cannot serve the component.
package langpack
