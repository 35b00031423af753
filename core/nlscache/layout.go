package nlscache

import "path/filepath"

const (
	// CacheDirName is the directory under the user data path holding all pack caches.
	CacheDirName = "clp"
	// MessagesFile is the materialized message sequence inside a commit directory.
	MessagesFile = "nls.messages.json"
	// TranslationsConfigFile is the persisted translations-path mapping at a pack root.
	TranslationsConfigFile = "tcf.json"
	// CorruptedMarkerFile is the sentinel that invalidates a whole pack cache tree.
	CorruptedMarkerFile = "corrupted.info"
)

// PackID derives the cache key for a language pack: its content hash joined
// with the resolved locale. A pack update changes the hash and therefore the
// entire cache tree, so stale translations are never served after an upgrade.
func PackID(hash, locale string) string {
	return hash + "." + locale
}

// Layout computes every path of the on-disk cache tree:
//
//	<userDataPath>/clp/<packID>/corrupted.info
//	<userDataPath>/clp/<packID>/tcf.json
//	<userDataPath>/clp/<packID>/<commit>/nls.messages.json
type Layout struct {
	userDataPath string
}

// NewLayout creates a layout rooted at the given user data path.
func NewLayout(userDataPath string) Layout {
	return Layout{userDataPath: userDataPath}
}

// UserDataPath returns the root the layout was created with.
func (l Layout) UserDataPath() string {
	return l.userDataPath
}

// Root returns the directory holding all pack caches.
func (l Layout) Root() string {
	return filepath.Join(l.userDataPath, CacheDirName)
}

// PackRoot returns the cache directory of one language pack.
func (l Layout) PackRoot(packID string) string {
	return filepath.Join(l.Root(), packID)
}

// CommitDir returns the per-build cache directory of a pack.
func (l Layout) CommitDir(packID, commit string) string {
	return filepath.Join(l.PackRoot(packID), commit)
}

// MessagesPath returns the materialized message sequence path for a build.
func (l Layout) MessagesPath(packID, commit string) string {
	return filepath.Join(l.CommitDir(packID, commit), MessagesFile)
}

// TranslationsConfigPath returns the persisted translations mapping path of a pack.
func (l Layout) TranslationsConfigPath(packID string) string {
	return filepath.Join(l.PackRoot(packID), TranslationsConfigFile)
}

// CorruptedMarkerPath returns the corruption sentinel path of a pack.
func (l Layout) CorruptedMarkerPath(packID string) string {
	return filepath.Join(l.PackRoot(packID), CorruptedMarkerFile)
}
