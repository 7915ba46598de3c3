package accounts

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shunichi-ikebuchi/journalfmt/pkg/db"
	"github.com/shunichi-ikebuchi/journalfmt/pkg/pathutil"
)

// DefaultRefreshInterval bounds how often Accounts re-scans the workspace.
const DefaultRefreshInterval = 30 * time.Second

// Index maintains the set of account names used across a workspace.
// It scans every journal file under the workspace root, follows include
// directives, and caches the result for a refresh interval so completion
// requests do not hit the filesystem on every keystroke.
type Index struct {
	resolver *pathutil.PathResolver
	store    *db.AccountStore
	interval time.Duration

	mu       sync.Mutex
	names    []string
	lastScan time.Time
}

// NewIndex creates an index over the resolver's workspace. store may be nil,
// in which case nothing is persisted between runs. A non-positive interval
// falls back to DefaultRefreshInterval.
func NewIndex(resolver *pathutil.PathResolver, store *db.AccountStore, interval time.Duration) *Index {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	ix := &Index{
		resolver: resolver,
		store:    store,
		interval: interval,
	}
	ix.warmStart()
	return ix
}

// warmStart seeds the in-memory name list from the persistent store so the
// first completion request has answers before the initial scan finishes.
// The seeded list is still considered stale and replaced on first use.
func (ix *Index) warmStart() {
	if ix.store == nil {
		return
	}
	names, err := ix.store.ListAccounts()
	if err != nil {
		slog.Debug("account cache warm start failed", "error", err)
		return
	}
	ix.names = names
}

// Accounts returns the known account names starting with prefix, sorted.
// An empty prefix returns every name. The workspace is re-scanned at most
// once per refresh interval.
func (ix *Index) Accounts(prefix string) []string {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if time.Since(ix.lastScan) >= ix.interval {
		if err := ix.refreshLocked(); err != nil {
			slog.Warn("account index refresh failed", "error", err)
		}
	}

	if prefix == "" {
		return append([]string(nil), ix.names...)
	}
	var out []string
	for _, name := range ix.names {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	return out
}

// Refresh forces a full re-scan regardless of the interval.
func (ix *Index) Refresh() error {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return ix.refreshLocked()
}

func (ix *Index) refreshLocked() error {
	files, err := ix.resolver.FindJournalFiles()
	if err != nil {
		return fmt.Errorf("failed to list journal files: %w", err)
	}

	visited := make(map[string]bool)
	perFile := make(map[string][]string)
	merged := make(map[string]bool)

	var scan func(path string)
	scan = func(path string) {
		if visited[path] {
			return
		}
		visited[path] = true

		data, err := os.ReadFile(path)
		if err != nil {
			// A file may vanish between listing and reading.
			slog.Debug("skipping unreadable journal file", "path", path, "error", err)
			return
		}
		res := ScanText(string(data))
		perFile[path] = res.Accounts
		for _, name := range res.Accounts {
			merged[name] = true
		}
		for _, target := range res.Includes {
			scan(pathutil.ResolveInclude(path, target))
		}
	}
	for _, f := range files {
		scan(f)
	}

	names := make([]string, 0, len(merged))
	for name := range merged {
		names = append(names, name)
	}
	sort.Strings(names)

	ix.names = names
	ix.lastScan = time.Now()
	ix.persist(perFile)
	return nil
}

// persist mirrors the scan into the store and drops rows for files that no
// longer exist. Persistence failures only degrade the next warm start, so
// they are logged rather than propagated.
func (ix *Index) persist(perFile map[string][]string) {
	if ix.store == nil {
		return
	}
	keep := make([]string, 0, len(perFile))
	for path, names := range perFile {
		keep = append(keep, path)
		if err := ix.store.ReplaceFileAccounts(path, names); err != nil {
			slog.Debug("failed to persist accounts", "path", path, "error", err)
			return
		}
	}
	if _, err := ix.store.PruneMissingFiles(keep); err != nil {
		slog.Debug("failed to prune stale account rows", "error", err)
	}
}
