package keyindex

import (
	"database/sql"
	"fmt"
	"os"
	"sort"
	"strings"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS files (
	id INTEGER PRIMARY KEY,
	path TEXT NOT NULL,
	theme TEXT,
	title TEXT,
	override_of TEXT
);
CREATE TABLE IF NOT EXISTS keys (
	key TEXT NOT NULL,
	file_id INTEGER NOT NULL REFERENCES files(id),
	PRIMARY KEY (key, file_id)
) WITHOUT ROWID;
CREATE INDEX IF NOT EXISTS idx_keys_file ON keys(file_id);
`

// WriteSQLite exports idx to a fresh SQLite database at dbPath.
func WriteSQLite(dbPath string, idx *Index) error {
	_ = os.Remove(dbPath) // Overwrite

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}
	defer func() { _ = db.Close() }()

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmtFile, err := tx.Prepare(`INSERT INTO files (id, path, theme, title, override_of) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() { _ = stmtFile.Close() }()
	stmtKey, err := tx.Prepare(`INSERT OR IGNORE INTO keys (key, file_id) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer func() { _ = stmtKey.Close() }()

	for id, f := range idx.files {
		if _, err := stmtFile.Exec(id, f.Path, f.ThemeFolder, f.Title, f.OverrideOf); err != nil {
			return fmt.Errorf("insert file %s: %w", f.Path, err)
		}
		for _, k := range Keys(f) {
			if _, err := stmtKey.Exec(k, id); err != nil {
				return fmt.Errorf("insert key %s: %w", k, err)
			}
		}
	}
	return tx.Commit()
}

// SQLCollision is a collision read back from an exported database.
type SQLCollision struct {
	Key   string
	Paths []string
}

// QueryCollisions lists keys shared by two or more files in an exported database.
func QueryCollisions(db *sql.DB) ([]SQLCollision, error) {
	rows, err := db.Query(`
		SELECT k.key, group_concat(f.path, char(10))
		FROM keys k JOIN files f ON f.id = k.file_id
		GROUP BY k.key
		HAVING COUNT(DISTINCT k.file_id) > 1
		ORDER BY k.key`)
	if err != nil {
		return nil, fmt.Errorf("query collisions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []SQLCollision
	for rows.Next() {
		var c SQLCollision
		var paths string
		if err := rows.Scan(&c.Key, &paths); err != nil {
			return nil, err
		}
		c.Paths = strings.Split(paths, "\n")
		sort.Strings(c.Paths)
		out = append(out, c)
	}
	return out, rows.Err()
}
