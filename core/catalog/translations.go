package catalog

import (
	"encoding/json"
	"errors"
	"os"
)

// Translations is a language pack's translation document for one component:
// translated strings grouped by module, keyed like the default keys document.
type Translations struct {
	Contents map[string]map[string]string `json:"contents"`
}

// Lookup returns the translated string for a module and key.
// Empty translations count as absent so the default message wins.
func (t Translations) Lookup(module, key string) (string, bool) {
	msg, ok := t.Contents[module][key]
	if !ok || msg == "" {
		return "", false
	}
	return msg, true
}

// LoadTranslations reads and decodes a pack translation document.
func LoadTranslations(path string) (Translations, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Translations{}, errors.Join(ErrNotFound, err)
		}
		return Translations{}, errors.Join(ErrUnreadable, err)
	}

	var t Translations
	if err := json.Unmarshal(data, &t); err != nil {
		return Translations{}, errors.Join(ErrMalformed, err)
	}
	return t, nil
}
