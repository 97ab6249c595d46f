package httpstore

import (
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/fitpoint-gym/member-client/internal/domain"
)

// replicaCache keeps the last fetched raw payload of pinned keys on disk, one
// file per key, so a pinned record survives both connectivity loss and
// process restarts. Replica write failures are logged and swallowed: a broken
// cache only costs offline capability, it must never fail a live fetch.
type replicaCache struct {
	dir string
	mu  sync.Mutex
}

func newReplicaCache(dir string) *replicaCache {
	return &replicaCache{dir: dir}
}

func (rc *replicaCache) enabled() bool { return rc.dir != "" }

func (rc *replicaCache) store(id domain.MemberID, body []byte) {
	if !rc.enabled() {
		return
	}
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if err := os.MkdirAll(rc.dir, 0o700); err != nil {
		slog.Warn("replica dir unavailable", "dir", rc.dir, "error", err)
		return
	}
	path := rc.path(id)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, body, 0o600); err != nil {
		slog.Warn("replica write failed", "member_id", id, "error", err)
		return
	}
	if err := os.Rename(tmp, path); err != nil {
		slog.Warn("replica replace failed", "member_id", id, "error", err)
	}
}

func (rc *replicaCache) load(id domain.MemberID) ([]byte, bool) {
	if !rc.enabled() {
		return nil, false
	}
	rc.mu.Lock()
	defer rc.mu.Unlock()

	body, err := os.ReadFile(rc.path(id))
	if err != nil {
		return nil, false
	}
	return body, true
}

func (rc *replicaCache) path(id domain.MemberID) string {
	// Ids are store keys, not filenames; escape before touching the fs.
	return filepath.Join(rc.dir, url.PathEscape(string(id))+".json")
}
