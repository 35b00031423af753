package langpack

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
)

// ManifestFile is the well-known name of the installed language pack listing,
// expected at the root of the user data directory.
const ManifestFile = "languagepacks.json"

// Entry describes one installed language pack.
// Unknown manifest fields are ignored so installers can attach their own metadata.
type Entry struct {
	// Hash is the content fingerprint of the pack, used to key its cache tree.
	Hash string `json:"hash"`
	// Label is an optional human-readable pack name.
	Label string `json:"label,omitempty"`
	// Translations maps component identifiers to absolute paths of their translation files.
	Translations map[string]string `json:"translations"`
}

// TranslationPath returns the translation file path for the given component.
func (e *Entry) TranslationPath(componentID string) (string, bool) {
	path, ok := e.Translations[componentID]
	if !ok || path == "" {
		return "", false
	}
	return path, true
}

// Validate reports whether the entry can serve translations for the given component.
// A usable entry needs a content hash, a translations mapping, and an existing
// translation file for the component.
func (e *Entry) Validate(componentID string) error {
	if e == nil || e.Hash == "" {
		return ErrPackHashMissing
	}
	if len(e.Translations) == 0 {
		return ErrPackTranslationsMissing
	}
	path, ok := e.TranslationPath(componentID)
	if !ok {
		return ErrTranslationMissing
	}
	if _, err := os.Stat(path); err != nil {
		return errors.Join(ErrTranslationFileMissing, err)
	}
	return nil
}

// Manifest maps locale tags to installed pack entries.
// Entries are pointers so explicit JSON nulls survive decoding; a nil entry
// never matches during resolution.
type Manifest map[string]*Entry

// LoadManifest reads and decodes the manifest at the given path.
// A missing file yields ErrManifestNotFound and invalid JSON yields
// ErrManifestMalformed; callers are expected to treat both as "no language
// packs installed" rather than failures.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Join(ErrManifestNotFound, err)
		}
		return nil, errors.Join(ErrManifestUnreadable, err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Join(ErrManifestMalformed, err)
	}
	return m, nil
}

// Resolve finds the installed locale serving the requested locale.
// It walks from the most specific tag to the least specific one, truncating at
// the last separator on each miss ("de-ch-1996" is tried as "de-ch", then "de").
// Returns the matched manifest key, or false when no tier matches.
func (m Manifest) Resolve(locale string) (string, bool) {
	for locale != "" {
		if entry, ok := m[locale]; ok && entry != nil {
			return locale, true
		}
		idx := strings.LastIndexAny(locale, "-_")
		if idx <= 0 {
			return "", false
		}
		locale = locale[:idx]
	}
	return "", false
}
