package catalog

import (
	"errors"
	"fmt"
)

// Merge produces the final ordered message sequence from the default catalog
// and a pack's translations.
//
// Modules are iterated in their declared order and keys in theirs, while a
// single running index walks the flat default sequence in lockstep. For each
// key the pack translation is emitted when present and non-empty, otherwise
// the default message at the same flat position. The output therefore has the
// same order and length as the default sequence, which is what integer-indexed
// message lookup at runtime relies on.
func Merge(keys KeysDocument, defaults []string, translations Translations) ([]string, error) {
	total := keys.TotalKeys()
	if total != len(defaults) {
		return nil, errors.Join(ErrCountMismatch,
			fmt.Errorf("keys document lists %d keys, default catalog has %d messages", total, len(defaults)))
	}

	messages := make([]string, 0, total)
	idx := 0
	for _, mk := range keys {
		moduleTranslations := translations.Contents[mk.Module]
		for _, key := range mk.Keys {
			if translated, ok := moduleTranslations[key]; ok && translated != "" {
				messages = append(messages, translated)
			} else {
				messages = append(messages, defaults[idx])
			}
			idx++
		}
	}
	return messages, nil
}
