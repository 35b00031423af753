package catalog

import (
	"fmt"
	"regexp"
	"strconv"
)

// Bundle is the runtime view over a materialized message sequence.
// It is immutable after creation, making it safe for concurrent use.
type Bundle struct {
	keys     KeysDocument
	messages []string
	index    map[string]int
}

// NewBundle pairs a keys document with its message sequence.
// The sequence may be the default catalog or a materialized translation of it;
// both share the same order and length.
func NewBundle(keys KeysDocument, messages []string) (*Bundle, error) {
	total := keys.TotalKeys()
	if total != len(messages) {
		return nil, ErrCountMismatch
	}

	index := make(map[string]int, total)
	idx := 0
	for _, mk := range keys {
		for _, key := range mk.Keys {
			index[bundleKey(mk.Module, key)] = idx
			idx++
		}
	}

	return &Bundle{
		keys:     keys,
		messages: messages,
		index:    index,
	}, nil
}

// LoadBundle reads a keys document and a message sequence from disk and pairs them.
func LoadBundle(keysPath, messagesPath string) (*Bundle, error) {
	keys, err := LoadKeys(keysPath)
	if err != nil {
		return nil, err
	}
	messages, err := LoadMessages(messagesPath)
	if err != nil {
		return nil, err
	}
	return NewBundle(keys, messages)
}

// Len returns the number of messages in the bundle.
func (b *Bundle) Len() int {
	return len(b.messages)
}

// ByIndex returns the message at the given flat position.
// This is the hot lookup path: consumers compile keys down to integer indices
// once and address messages by position afterwards.
func (b *Bundle) ByIndex(i int) (string, bool) {
	if i < 0 || i >= len(b.messages) {
		return "", false
	}
	return b.messages[i], true
}

// Lookup returns the message identified by module and key.
func (b *Bundle) Lookup(module, key string) (string, bool) {
	idx, ok := b.index[bundleKey(module, key)]
	if !ok {
		return "", false
	}
	return b.messages[idx], true
}

func bundleKey(module, key string) string {
	return module + "/" + key
}

var placeholderPattern = regexp.MustCompile(`\{(\d+)\}`)

// Format substitutes positional placeholders of the form {0}, {1}, ... with
// the given arguments. Placeholders without a matching argument are left as-is.
func Format(message string, args ...any) string {
	if len(args) == 0 {
		return message
	}
	return placeholderPattern.ReplaceAllStringFunc(message, func(match string) string {
		idx, err := strconv.Atoi(match[1 : len(match)-1])
		if err != nil || idx < 0 || idx >= len(args) {
			return match
		}
		return fmt.Sprint(args[idx])
	})
}
