// Package palettedb stores named color palettes in a SQLite database.
package palettedb

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/mzimandl/cnc-tskit/colors"
)

// Info summarizes a stored palette.
type Info struct {
	Name string
	Size int
}

// Store is a palette database handle. It is safe for use from a single
// goroutine; the CLI opens one store per invocation.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the palette database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma %q: %w", pragma, err)
		}
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS palettes (
			name     TEXT    NOT NULL,
			position INTEGER NOT NULL,
			r        INTEGER NOT NULL,
			g        INTEGER NOT NULL,
			b        INTEGER NOT NULL,
			a        REAL    NOT NULL,
			PRIMARY KEY (name, position)
		);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	return nil
}

// Save stores the palette under name, replacing any existing palette with
// the same name.
func (s *Store) Save(name string, palette []colors.RGBA) error {
	if name == "" {
		return fmt.Errorf("palette name must not be empty")
	}
	if len(palette) == 0 {
		return fmt.Errorf("palette %q must contain at least one color", name)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM palettes WHERE name = ?", name); err != nil {
		return fmt.Errorf("failed to clear palette %q: %w", name, err)
	}

	stmt, err := tx.Prepare("INSERT INTO palettes (name, position, r, g, b, a) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, c := range palette {
		if _, err := stmt.Exec(name, i, c.R, c.G, c.B, c.A); err != nil {
			return fmt.Errorf("failed to insert color %d of palette %q: %w", i, name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit palette %q: %w", name, err)
	}

	return nil
}

// Get returns the palette stored under name, in insertion order.
func (s *Store) Get(name string) ([]colors.RGBA, error) {
	rows, err := s.db.Query(
		"SELECT r, g, b, a FROM palettes WHERE name = ? ORDER BY position", name)
	if err != nil {
		return nil, fmt.Errorf("failed to query palette %q: %w", name, err)
	}
	defer rows.Close()

	var palette []colors.RGBA
	for rows.Next() {
		var (
			r, g, b int
			a       float64
		)
		if err := rows.Scan(&r, &g, &b, &a); err != nil {
			return nil, fmt.Errorf("failed to scan palette %q: %w", name, err)
		}
		palette = append(palette, colors.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: a})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read palette %q: %w", name, err)
	}

	if len(palette) == 0 {
		return nil, fmt.Errorf("palette %q not found", name)
	}

	return palette, nil
}

// List returns all stored palettes sorted by name.
func (s *Store) List() ([]Info, error) {
	rows, err := s.db.Query(
		"SELECT name, COUNT(*) FROM palettes GROUP BY name ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list palettes: %w", err)
	}
	defer rows.Close()

	var infos []Info
	for rows.Next() {
		var info Info
		if err := rows.Scan(&info.Name, &info.Size); err != nil {
			return nil, fmt.Errorf("failed to scan palette info: %w", err)
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read palette list: %w", err)
	}

	return infos, nil
}

// Delete removes the palette stored under name.
func (s *Store) Delete(name string) error {
	res, err := s.db.Exec("DELETE FROM palettes WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("failed to delete palette %q: %w", name, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete palette %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("palette %q not found", name)
	}

	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
