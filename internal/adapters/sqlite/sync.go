package sqlite

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"dexscan/internal/domain"
)

// SyncFull performs a complete rebuild of the index
func (idx *Index) SyncFull() (*domain.SyncStats, error) {
	start := time.Now()
	stats := &domain.SyncStats{}

	// Clear existing data
	if _, err := idx.db.Exec(`DELETE FROM nodes`); err != nil {
		return nil, err
	}
	if _, err := idx.db.Exec(`DELETE FROM edges`); err != nil {
		return nil, err
	}

	// Walk the vault
	err := filepath.Walk(idx.vaultPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip errors
		}

		// Skip hidden directories
		if info.IsDir() && strings.HasPrefix(info.Name(), ".") && path != idx.vaultPath {
			return filepath.SkipDir
		}

		if info.IsDir() || !domain.IsMarkdown(info.Name()) {
			return nil
		}

		relPath, _ := filepath.Rel(idx.vaultPath, path)
		relPath = filepath.ToSlash(relPath)
		stats.FilesScanned++

		if err := idx.insertNode(relPath, info.ModTime().Unix()); err != nil {
			return nil // Continue on error
		}
		stats.NodesAdded++

		stats.EdgesAdded += idx.indexLinks(path, relPath)
		return nil
	})

	if err != nil {
		return stats, err
	}

	// Update last sync time
	idx.db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('last_sync_time', ?)`,
		time.Now().Unix())

	stats.Duration = time.Since(start)
	return stats, nil
}

// SyncIncremental updates only files that changed since last sync
func (idx *Index) SyncIncremental() (*domain.SyncStats, error) {
	start := time.Now()
	stats := &domain.SyncStats{}

	// Get last sync time
	var lastSyncUnix int64
	idx.db.QueryRow(`SELECT value FROM meta WHERE key = 'last_sync_time'`).Scan(&lastSyncUnix)

	// Track existing paths to detect deletions
	existingPaths := make(map[string]bool)
	rows, err := idx.db.Query(`SELECT path FROM nodes`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var path string
		rows.Scan(&path)
		existingPaths[path] = true
	}
	rows.Close()

	// Track paths we've seen during this walk
	seenPaths := make(map[string]bool)

	// Walk the vault
	err = filepath.Walk(idx.vaultPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}

		// Skip hidden directories
		if info.IsDir() && strings.HasPrefix(info.Name(), ".") && path != idx.vaultPath {
			return filepath.SkipDir
		}

		if info.IsDir() || !domain.IsMarkdown(info.Name()) {
			return nil
		}

		relPath, _ := filepath.Rel(idx.vaultPath, path)
		relPath = filepath.ToSlash(relPath)
		seenPaths[relPath] = true
		stats.FilesScanned++

		// Check if file is new or modified
		mtime := info.ModTime().Unix()
		if mtime <= lastSyncUnix && existingPaths[relPath] {
			return nil
		}

		if existingPaths[relPath] {
			idx.updateNode(relPath, mtime)
			stats.NodesUpdated++
			// Delete old edges before re-parsing
			idx.db.Exec(`DELETE FROM edges WHERE source_path = ?`, relPath)
		} else {
			idx.insertNode(relPath, mtime)
			stats.NodesAdded++
		}

		stats.EdgesAdded += idx.indexLinks(path, relPath)
		return nil
	})

	if err != nil {
		return stats, err
	}

	// Delete nodes that no longer exist
	for path := range existingPaths {
		if !seenPaths[path] {
			idx.db.Exec(`DELETE FROM nodes WHERE path = ?`, path)
			idx.db.Exec(`DELETE FROM edges WHERE source_path = ?`, path)
			stats.NodesDeleted++
		}
	}

	// Update last sync time
	idx.db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('last_sync_time', ?)`,
		time.Now().Unix())

	stats.Duration = time.Since(start)
	return stats, nil
}

// indexLinks parses a markdown file and inserts its edges, returning how
// many were stored.
func (idx *Index) indexLinks(fullPath, relPath string) int {
	content, err := os.ReadFile(fullPath)
	if err != nil {
		return 0
	}

	added := 0
	for _, ref := range domain.ExtractLinks(relPath, string(content)) {
		if err := idx.insertEdge(ref); err == nil {
			added++
		}
	}
	return added
}

// insertNode inserts a node into the database
func (idx *Index) insertNode(relPath string, mtime int64) error {
	_, err := idx.db.Exec(`
		INSERT INTO nodes (path, name, mtime)
		VALUES (?, ?, ?)
	`, relPath, domain.DocumentName(relPath), mtime)
	return err
}

// updateNode updates an existing node
func (idx *Index) updateNode(relPath string, mtime int64) error {
	_, err := idx.db.Exec(`
		UPDATE nodes SET name = ?, mtime = ?
		WHERE path = ?
	`, domain.DocumentName(relPath), mtime, relPath)
	return err
}

// insertEdge inserts an edge into the database
func (idx *Index) insertEdge(ref domain.CrossReference) error {
	_, err := idx.db.Exec(`
		INSERT OR REPLACE INTO edges (source_path, target_name, link_text)
		VALUES (?, ?, ?)
	`, ref.SourcePath, ref.Target, ref.LinkText)
	return err
}
