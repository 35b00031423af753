package nlscache

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// stagingPrefix marks scratch directories holding in-flight materializations.
const stagingPrefix = ".staging-"

// Staging is the scratch directory for one materialization. Output files
// are written into it and the whole directory is renamed into place as the
// commit directory once complete, so a commit directory never exists in a
// partially written state: its presence alone certifies a finished
// materialization.
type Staging struct {
	layout Layout
	packID string
	commit string
	dir    string
}

// NewStaging creates a fresh staging directory under the pack's cache root,
// creating the cache root itself if needed. Each staging directory carries a
// random suffix so concurrent materializations of the same pack and commit
// never share scratch space.
func (m *Manager) NewStaging(packID, commit string) (*Staging, error) {
	dir := filepath.Join(m.layout.PackRoot(packID), stagingPrefix+uuid.NewString())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Join(ErrStagingFailed, err)
	}

	return &Staging{
		layout: m.layout,
		packID: packID,
		commit: commit,
		dir:    dir,
	}, nil
}

// Dir returns the staging directory path.
func (s *Staging) Dir() string {
	return s.dir
}

// WriteMessages persists the materialized ordered message array into the
// staging directory.
func (s *Staging) WriteMessages(messages []string) error {
	return writeJSONAtomic(filepath.Join(s.dir, MessagesFile), messages)
}

// Promote renames the staging directory into place as the commit directory.
// It consumes the staging directory: after Promote returns, the scratch
// space is gone regardless of outcome. Losing a regeneration race is not a
// failure: if the rename fails because another process promoted the same
// commit first, the staged copy is discarded and Promote returns nil, since
// both copies were materialized from identical inputs.
func (s *Staging) Promote() error {
	target := s.layout.CommitDir(s.packID, s.commit)
	if err := os.Rename(s.dir, target); err != nil {
		s.Discard()
		if info, statErr := os.Stat(target); statErr == nil && info.IsDir() {
			return nil
		}
		return errors.Join(ErrPromoteFailed, err)
	}
	return nil
}

// Discard removes the staging directory and everything in it. Safe to call
// after Promote or repeatedly.
func (s *Staging) Discard() {
	_ = os.RemoveAll(s.dir)
}

// isStagingEntry reports whether a directory entry name is materialization
// scratch space rather than real cache content.
func isStagingEntry(name string) bool {
	return strings.HasPrefix(name, stagingPrefix)
}
