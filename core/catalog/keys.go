package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

const (
	// KeysFile is the well-known name of the default keys document.
	KeysFile = "nls.keys.json"
	// MessagesFile is the well-known name of the default message sequence.
	MessagesFile = "nls.messages.json"
)

// ModuleKeys is one entry of the keys document: a module identifier paired
// with that module's translation keys in declaration order.
// The wire form is a two-element JSON array, ["module/id", ["key1", "key2"]].
type ModuleKeys struct {
	Module string
	Keys   []string
}

// UnmarshalJSON decodes the [module, keys] pair form.
func (mk *ModuleKeys) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("expected [module, keys] pair, got %d elements", len(pair))
	}
	if err := json.Unmarshal(pair[0], &mk.Module); err != nil {
		return fmt.Errorf("module id: %w", err)
	}
	if err := json.Unmarshal(pair[1], &mk.Keys); err != nil {
		return fmt.Errorf("keys of module %q: %w", mk.Module, err)
	}
	return nil
}

// MarshalJSON encodes the entry back into its [module, keys] pair form.
func (mk ModuleKeys) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{mk.Module, mk.Keys})
}

// KeysDocument is the ordered list of modules and their keys.
// Order is load-bearing: the Nth key encountered while iterating modules then
// keys identifies the Nth entry of the flat default message sequence.
type KeysDocument []ModuleKeys

// TotalKeys returns the number of keys across all modules.
func (d KeysDocument) TotalKeys() int {
	total := 0
	for _, mk := range d {
		total += len(mk.Keys)
	}
	return total
}

// LoadKeys reads and decodes a keys document.
func LoadKeys(path string) (KeysDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Join(ErrNotFound, err)
		}
		return nil, errors.Join(ErrUnreadable, err)
	}

	var doc KeysDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrMalformed, err)
	}
	return doc, nil
}

// LoadMessages reads and decodes a flat ordered message sequence.
func LoadMessages(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Join(ErrNotFound, err)
		}
		return nil, errors.Join(ErrUnreadable, err)
	}

	var messages []string
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, errors.Join(ErrMalformed, err)
	}
	return messages, nil
}
