package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SceneEntry is a stored scene without its body.
type SceneEntry struct {
	Name      string
	UpdatedAt time.Time
}

// SaveScene stores body under name, replacing any previous version.
func (s *Store) SaveScene(name string, body []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO scenes (name, body) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET body = excluded.body, updated_at = CURRENT_TIMESTAMP`,
		name, string(body),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save scene %s: %w", name, err)
	}
	return nil
}

// LoadScene returns the body stored under name.
// Returns ErrNotFound if there is none.
func (s *Store) LoadScene(name string) ([]byte, error) {
	var body string
	err := s.db.QueryRow("SELECT body FROM scenes WHERE name = ?", name).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("scene %s: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load scene %s: %w", name, err)
	}
	return []byte(body), nil
}

// ListScenes returns every stored scene, sorted by name.
func (s *Store) ListScenes() ([]SceneEntry, error) {
	rows, err := s.db.Query("SELECT name, updated_at FROM scenes ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scenes: %w", err)
	}
	defer rows.Close()

	var entries []SceneEntry
	for rows.Next() {
		var e SceneEntry
		var updatedAt any
		if err := rows.Scan(&e.Name, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.UpdatedAt = parseTime(updatedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// DeleteScene removes the scene stored under name.
// Returns ErrNotFound if there is none.
func (s *Store) DeleteScene(name string) error {
	res, err := s.db.Exec("DELETE FROM scenes WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete scene %s: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete scene %s: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("scene %s: %w", name, ErrNotFound)
	}
	return nil
}
