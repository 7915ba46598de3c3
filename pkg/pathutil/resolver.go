// Package pathutil provides centralized path management for journal files
// and the account-index cache.
package pathutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Journal file extensions recognized during workspace discovery.
var journalExtensions = map[string]bool{
	".journal": true,
	".hledger": true,
	".ledger":  true,
}

// PathResolver manages paths for a journal workspace: the workspace root,
// the journal files inside it, and the SQLite cache for the account index.
type PathResolver struct {
	workspaceRoot string
	cachePath     string
}

// Config represents the configuration for PathResolver.
type Config struct {
	// WorkspaceRoot is the directory scanned for journal files.
	WorkspaceRoot string
	// CachePath is the path to the SQLite account-index cache file.
	CachePath string
}

// New creates a new PathResolver with the given configuration.
// If CachePath is empty, it defaults to {WorkspaceRoot}/.journalfmt/cache.db
func New(config Config) *PathResolver {
	cachePath := config.CachePath
	if cachePath == "" {
		cachePath = filepath.Join(config.WorkspaceRoot, ".journalfmt", "cache.db")
	}

	return &PathResolver{
		workspaceRoot: config.WorkspaceRoot,
		cachePath:     cachePath,
	}
}

// FromEnv creates a PathResolver from environment variables.
// Expected environment variables:
//   - JOURNALFMT_WORKSPACE: Workspace root directory (required)
//   - JOURNALFMT_CACHE_DB: Cache file path (optional)
func FromEnv() (*PathResolver, error) {
	root := os.Getenv("JOURNALFMT_WORKSPACE")
	if root == "" {
		return nil, fmt.Errorf("JOURNALFMT_WORKSPACE environment variable is required")
	}

	return New(Config{
		WorkspaceRoot: root,
		CachePath:     os.Getenv("JOURNALFMT_CACHE_DB"),
	}), nil
}

// GetWorkspaceRoot returns the workspace root directory.
func (p *PathResolver) GetWorkspaceRoot() string {
	return p.workspaceRoot
}

// GetCachePath returns the account-index cache file path.
func (p *PathResolver) GetCachePath() string {
	return p.cachePath
}

// IsJournalFile reports whether path has a recognized journal extension.
func IsJournalFile(path string) bool {
	return journalExtensions[filepath.Ext(path)]
}

// FindJournalFiles walks the workspace root and returns every journal file
// in it, sorted for deterministic scan order. Hidden directories are
// skipped.
func (p *PathResolver) FindJournalFiles() ([]string, error) {
	var files []string
	err := filepath.WalkDir(p.workspaceRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if name := d.Name(); len(name) > 1 && name[0] == '.' {
				return filepath.SkipDir
			}
			return nil
		}
		if IsJournalFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk workspace %s: %w", p.workspaceRoot, err)
	}

	sort.Strings(files)
	return files, nil
}

// ResolveInclude resolves an include target relative to the file that
// declares it. Absolute targets are returned as-is.
func ResolveInclude(includingFile, target string) string {
	if filepath.IsAbs(target) {
		return target
	}
	return filepath.Join(filepath.Dir(includingFile), target)
}

// EnsureParentDir ensures the parent directory of a file exists.
func EnsureParentDir(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
