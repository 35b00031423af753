package nlscache

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/google/uuid"
)

// writeJSONAtomic persists v as indented JSON at path via a temp file and
// rename, so readers never observe a torn write. The temp name carries a
// random suffix because concurrent resolutions may regenerate the same pack
// and must not trample each other's in-flight writes.
func writeJSONAtomic(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return errors.Join(ErrWriteFailed, err)
	}
	data = append(data, '\n')

	tmpPath := path + ".tmp-" + uuid.NewString()

	f, err := os.Create(tmpPath)
	if err != nil {
		return errors.Join(ErrWriteFailed, err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return errors.Join(ErrWriteFailed, err)
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return errors.Join(ErrWriteFailed, err)
	}

	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Join(ErrWriteFailed, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errors.Join(ErrWriteFailed, err)
	}

	return nil
}
