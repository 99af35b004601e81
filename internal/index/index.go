// Package index maintains the vault note index: an in-memory name -> path
// map for synchronous wikilink resolution, an optional sqlite-backed link
// table for backlink queries, and a background refresh loop fed by file
// system events and a timer.
package index

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

var (
	// ErrVaultNotFound is returned by Open when the vault path does not exist.
	ErrVaultNotFound = errors.New("vault path does not exist")
	// ErrIndexClosed is returned by operations on a closed index.
	ErrIndexClosed = errors.New("note index is closed")
	// ErrNoDatabase is returned by link queries when the index was opened
	// without persistence.
	ErrNoDatabase = errors.New("note index has no database")
)

// Options configures Open.
type Options struct {
	// DBPath is the sqlite file backing the link table. Empty disables
	// persistence; Exists/ResolveTarget still work from memory.
	DBPath string
	// RefreshInterval is the period of the background refresh loop.
	// Zero disables the loop; Refresh can still be called manually.
	RefreshInterval time.Duration
	// Watch enables the fsnotify watcher on the vault tree.
	Watch bool
	// Logger receives refresh statistics. Nil means no logging.
	Logger *log.Logger
}

// IndexStats 记录一次全量同步的结果。
type IndexStats struct {
	Indexed  int
	Deleted  int
	Skipped  int
	Duration time.Duration
}

// NoteIndex resolves wikilink targets against a vault. The synchronous
// lookups (Exists, ResolveTarget) answer from the last built snapshot and
// may be stale between refreshes; that is the contract with the decoration
// pipeline, which must never block on I/O.
type NoteIndex struct {
	vault  string
	db     *DB
	logger *log.Logger

	mu    sync.RWMutex
	names map[string][]string // filename and stem -> vault-relative paths

	watcher *fsnotify.Watcher
	dirty   atomic.Bool
	done    chan struct{}
	wg      sync.WaitGroup
	closed  atomic.Bool
}

// Open 构建索引并（按配置）启动监听与刷新循环。
func Open(vaultPath string, opts Options) (*NoteIndex, error) {
	info, err := os.Stat(vaultPath)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrVaultNotFound, vaultPath)
	}

	idx := &NoteIndex{
		vault:  vaultPath,
		logger: opts.Logger,
		done:   make(chan struct{}),
	}

	if opts.DBPath != "" {
		db, err := OpenDB(opts.DBPath)
		if err != nil {
			return nil, err
		}
		idx.db = db
	}

	if err := idx.Refresh(); err != nil {
		idx.closeResources()
		return nil, err
	}

	if opts.Watch {
		if err := idx.startWatcher(); err != nil && idx.logger != nil {
			// The watcher is an optimization; the interval refresh still
			// keeps the index current.
			idx.logger.Printf("vault watcher unavailable: %v", err)
		}
	}
	if opts.RefreshInterval > 0 {
		idx.wg.Add(1)
		go idx.refreshLoop(opts.RefreshInterval)
	}
	return idx, nil
}

// Close stops the watcher and refresh loop and closes the database.
func (idx *NoteIndex) Close() error {
	if idx.closed.Swap(true) {
		return ErrIndexClosed
	}
	close(idx.done)
	idx.wg.Wait()
	return idx.closeResources()
}

func (idx *NoteIndex) closeResources() error {
	var err error
	if idx.watcher != nil {
		err = idx.watcher.Close()
	}
	if idx.db != nil {
		if cerr := idx.db.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Refresh rebuilds the in-memory name map from the vault and, when a
// database is attached, runs a full sync of the link table.
func (idx *NoteIndex) Refresh() error {
	if idx.closed.Load() {
		return ErrIndexClosed
	}
	names, err := idx.buildNames()
	if err != nil {
		return err
	}
	idx.mu.Lock()
	idx.names = names
	idx.mu.Unlock()

	if idx.db != nil {
		stats, err := idx.FullSync()
		if err != nil {
			return err
		}
		if idx.logger != nil && (stats.Indexed > 0 || stats.Deleted > 0) {
			idx.logger.Printf("index sync: %d indexed, %d deleted, %d skipped in %s",
				stats.Indexed, stats.Deleted, stats.Skipped, stats.Duration)
		}
	}
	return nil
}

// buildNames walks the vault and indexes every .md file by filename and by
// stem, both mapping to vault-relative paths.
func (idx *NoteIndex) buildNames() (map[string][]string, error) {
	names := make(map[string][]string)
	err := filepath.WalkDir(idx.vault, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable entries are skipped, not fatal
		}
		rel, rerr := filepath.Rel(idx.vault, path)
		if rerr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if skipEntry(rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(rel, ".md") {
			return nil
		}
		base := filepath.Base(rel)
		stem := strings.TrimSuffix(base, ".md")
		names[base] = append(names[base], rel)
		names[stem] = append(names[stem], rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk vault: %w", err)
	}
	return names, nil
}

// skipEntry filters hidden files/dirs and the trash.
func skipEntry(rel string) bool {
	if rel == "." {
		return false
	}
	for _, part := range strings.Split(rel, "/") {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

// Exists reports whether target resolves to a note. Safe to call from the
// synchronous decoration pipeline.
func (idx *NoteIndex) Exists(target string) bool {
	_, ok := idx.ResolveTarget(target)
	return ok
}

// ResolveTarget resolves a wikilink target to a vault-relative path.
//
// Resolution rules follow the usual vault conventions:
//  1. A path-containing target ("folder/Note") resolves relative to the
//     vault root, with ".md" appended when missing; failing that, any
//     indexed file whose relative path contains the target matches.
//  2. A bare name matches by filename or stem; among duplicates the path
//     closest to the vault root wins.
func (idx *NoteIndex) ResolveTarget(target string) (string, bool) {
	target = strings.TrimSpace(target)
	if target == "" {
		return "", false
	}
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if strings.Contains(target, "/") {
		withExt := target
		if !strings.HasSuffix(withExt, ".md") {
			withExt += ".md"
		}
		if abs, ok := safePath(idx.vault, withExt); ok {
			if st, err := os.Stat(abs); err == nil && !st.IsDir() {
				return filepath.ToSlash(withExt), true
			}
		}
		// Fall back to filename matching constrained by the path suffix.
		base := target[strings.LastIndex(target, "/")+1:]
		for _, key := range []string{base, base + ".md"} {
			for _, rel := range idx.names[key] {
				if strings.Contains(rel, target) {
					return rel, true
				}
			}
		}
		return "", false
	}

	candidates := idx.names[target]
	if len(candidates) == 0 {
		return "", false
	}
	best := candidates[0]
	bestDepth := strings.Count(best, "/")
	for _, rel := range candidates[1:] {
		if d := strings.Count(rel, "/"); d < bestDepth {
			best, bestDepth = rel, d
		}
	}
	return best, true
}

// Backlinks 返回链接到该笔记的所有来源（vault 相对路径）。
func (idx *NoteIndex) Backlinks(path string) ([]string, error) {
	if idx.db == nil {
		return nil, ErrNoDatabase
	}
	return idx.db.Backlinks(filepath.ToSlash(path))
}

// OutgoingLinks 返回该笔记链接到的所有目标。
func (idx *NoteIndex) OutgoingLinks(path string) ([]string, error) {
	if idx.db == nil {
		return nil, ErrNoDatabase
	}
	return idx.db.OutgoingLinks(filepath.ToSlash(path))
}

// AllLinks returns every resolved edge of the vault link graph.
func (idx *NoteIndex) AllLinks() ([]Link, error) {
	if idx.db == nil {
		return nil, ErrNoDatabase
	}
	return idx.db.AllLinks()
}

// FullSync walks the vault, indexes new and modified notes into the
// database, and removes rows for vanished files.
func (idx *NoteIndex) FullSync() (IndexStats, error) {
	if idx.db == nil {
		return IndexStats{}, ErrNoDatabase
	}
	start := time.Now()
	var stats IndexStats

	fsFiles, err := idx.collectFiles()
	if err != nil {
		return stats, err
	}
	dbFiles, err := idx.db.AllIndexedFiles()
	if err != nil {
		return stats, err
	}

	for rel, modified := range fsFiles {
		prev, seen := dbFiles[rel]
		if seen && modified <= prev {
			stats.Skipped++
			continue
		}
		if err := idx.indexOne(rel, modified); err != nil {
			if idx.logger != nil {
				idx.logger.Printf("index %s: %v", rel, err)
			}
			continue
		}
		stats.Indexed++
	}

	var vanished []string
	for rel := range dbFiles {
		if _, ok := fsFiles[rel]; !ok {
			vanished = append(vanished, rel)
		}
	}
	sort.Strings(vanished)
	if len(vanished) > 0 {
		n, err := idx.db.BatchDeleteFiles(vanished)
		if err != nil {
			return stats, err
		}
		stats.Deleted = n
	}

	stats.Duration = time.Since(start)
	return stats, nil
}

// collectFiles returns vault-relative path -> mtime (unix seconds) for every
// indexable note.
func (idx *NoteIndex) collectFiles() (map[string]int64, error) {
	files := make(map[string]int64)
	err := filepath.WalkDir(idx.vault, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		rel, rerr := filepath.Rel(idx.vault, path)
		if rerr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if skipEntry(rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(rel, ".md") {
			return nil
		}
		info, ierr := d.Info()
		if ierr != nil {
			return nil
		}
		files[rel] = info.ModTime().Unix()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk vault: %w", err)
	}
	return files, nil
}

// indexOne reads a note, extracts and resolves its wikilinks, and writes the
// result to the database. Unresolved targets are not stored; the link table
// holds only real edges.
func (idx *NoteIndex) indexOne(rel string, modified int64) error {
	abs, ok := safePath(idx.vault, rel)
	if !ok {
		return fmt.Errorf("unsafe path %q", rel)
	}
	content, err := os.ReadFile(abs)
	if err != nil {
		return fmt.Errorf("read note: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("stat note: %w", err)
	}

	var resolved []string
	seen := make(map[string]bool)
	for _, target := range ExtractTargets(string(content)) {
		if path, ok := idx.ResolveTarget(target); ok && !seen[path] {
			seen[path] = true
			resolved = append(resolved, path)
		}
	}
	return idx.db.IndexFile(rel, modified, info.Size(), resolved)
}

// --- watcher & refresh loop ---

// startWatcher registers the vault root and every subdirectory.
func (idx *NoteIndex) startWatcher() error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	idx.watcher = w

	_ = filepath.WalkDir(idx.vault, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		rel, rerr := filepath.Rel(idx.vault, path)
		if rerr == nil && skipEntry(filepath.ToSlash(rel)) {
			return filepath.SkipDir
		}
		_ = w.Add(path)
		return nil
	})

	idx.wg.Add(1)
	go func() {
		defer idx.wg.Done()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				idx.dirty.Store(true)
				// New directories must be watched too.
				if ev.Op.Has(fsnotify.Create) {
					if st, err := os.Stat(ev.Name); err == nil && st.IsDir() {
						_ = w.Add(ev.Name)
					}
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			case <-idx.done:
				return
			}
		}
	}()
	return nil
}

// refreshLoop rebuilds the index each interval. When the watcher is active,
// ticks with no observed file events are skipped.
func (idx *NoteIndex) refreshLoop(interval time.Duration) {
	defer idx.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if idx.watcher != nil && !idx.dirty.Swap(false) {
				continue
			}
			if err := idx.Refresh(); err != nil && idx.logger != nil {
				idx.logger.Printf("index refresh: %v", err)
			}
		case <-idx.done:
			return
		}
	}
}
