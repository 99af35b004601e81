package index

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // pure Go sqlite driver
)

// DB persists the note and link tables backing backlink queries and the
// incremental full sync. Schema:
//
//	notes(path PRIMARY KEY, modified_at, size)
//	links(source_path, target_path)
type DB struct {
	conn *sql.DB
}

// OpenDB 打开（必要时创建）索引数据库。
func OpenDB(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open index db: %w", err)
	}
	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

func (db *DB) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS notes (
			path TEXT PRIMARY KEY,
			modified_at INTEGER,
			size INTEGER
		);`,
		`CREATE TABLE IF NOT EXISTS links (
			source_path TEXT,
			target_path TEXT,
			PRIMARY KEY (source_path, target_path),
			FOREIGN KEY (source_path) REFERENCES notes(path) ON DELETE CASCADE
		);`,
	}
	for _, s := range stmts {
		if _, err := db.conn.Exec(s); err != nil {
			return fmt.Errorf("migrate index db: %w", err)
		}
	}
	return nil
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// IndexFile 写入一个文件的元数据并整体替换其出链。
func (db *DB) IndexFile(path string, modified int64, size int64, links []string) error {
	if _, err := db.conn.Exec(
		`INSERT INTO notes (path, modified_at, size) VALUES (?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET modified_at = ?, size = ?`,
		path, modified, size, modified, size,
	); err != nil {
		return fmt.Errorf("index note %s: %w", path, err)
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("begin link update: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM links WHERE source_path = ?`, path); err != nil {
		return fmt.Errorf("clear links for %s: %w", path, err)
	}
	for _, target := range links {
		if !IsSafeRelPath(target) {
			continue
		}
		if _, err := tx.Exec(
			`INSERT OR IGNORE INTO links (source_path, target_path) VALUES (?, ?)`,
			path, target,
		); err != nil {
			return fmt.Errorf("insert link %s -> %s: %w", path, target, err)
		}
	}
	return tx.Commit()
}

// AllIndexedFiles returns path -> modified_at for every indexed note.
func (db *DB) AllIndexedFiles() (map[string]int64, error) {
	rows, err := db.conn.Query(`SELECT path, modified_at FROM notes`)
	if err != nil {
		return nil, fmt.Errorf("list indexed files: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int64)
	for rows.Next() {
		var path string
		var modified int64
		if err := rows.Scan(&path, &modified); err != nil {
			return nil, fmt.Errorf("scan indexed file: %w", err)
		}
		out[path] = modified
	}
	return out, rows.Err()
}

// BatchDeleteFiles removes vanished notes and their links, returning the
// number of note rows deleted.
func (db *DB) BatchDeleteFiles(paths []string) (int, error) {
	if len(paths) == 0 {
		return 0, nil
	}
	tx, err := db.conn.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin delete: %w", err)
	}
	defer tx.Rollback()

	deleted := 0
	for _, p := range paths {
		if _, err := tx.Exec(`DELETE FROM links WHERE source_path = ?`, p); err != nil {
			return 0, fmt.Errorf("delete links for %s: %w", p, err)
		}
		res, err := tx.Exec(`DELETE FROM notes WHERE path = ?`, p)
		if err != nil {
			return 0, fmt.Errorf("delete note %s: %w", p, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			deleted += int(n)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return deleted, nil
}

// Backlinks 返回链接到指定文件的所有来源文件。
func (db *DB) Backlinks(path string) ([]string, error) {
	return db.queryStrings(
		`SELECT source_path FROM links WHERE target_path = ? ORDER BY source_path`, path)
}

// OutgoingLinks 返回指定文件链接到的所有目标。
func (db *DB) OutgoingLinks(path string) ([]string, error) {
	return db.queryStrings(
		`SELECT target_path FROM links WHERE source_path = ? ORDER BY target_path`, path)
}

func (db *DB) queryStrings(query string, arg string) ([]string, error) {
	rows, err := db.conn.Query(query, arg)
	if err != nil {
		return nil, fmt.Errorf("query links: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan link: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Link is one edge of the vault link graph.
type Link struct {
	Source string
	Target string
}

// AllLinks returns every edge, for the graph view.
func (db *DB) AllLinks() ([]Link, error) {
	rows, err := db.conn.Query(`SELECT source_path, target_path FROM links`)
	if err != nil {
		return nil, fmt.Errorf("query all links: %w", err)
	}
	defer rows.Close()

	var out []Link
	for rows.Next() {
		var l Link
		if err := rows.Scan(&l.Source, &l.Target); err != nil {
			return nil, fmt.Errorf("scan link edge: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
