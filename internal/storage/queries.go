package storage

import (
	"fmt"
	"time"

	"github.com/archdash/backend/internal/shared/types"
)

// SaveEntry inserts or replaces an entry row.
func (s *Store) SaveEntry(entry types.Entry) error {
	query := `
		INSERT OR REPLACE INTO entries
		(id, name, description, category, package_name, install_command, config_location, notes, is_installed, added_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.Exec(query,
		entry.ID,
		entry.Name,
		entry.Description,
		string(entry.Category),
		entry.PackageName,
		entry.InstallCommand,
		entry.ConfigLocation,
		entry.Notes,
		entry.IsInstalled,
		entry.AddedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to save entry %s: %w", entry.ID, err)
	}
	return nil
}

// DeleteEntry removes an entry row. Missing rows are not an error.
func (s *Store) DeleteEntry(entryID string) error {
	if _, err := s.db.Exec(`DELETE FROM entries WHERE id = ?`, entryID); err != nil {
		return fmt.Errorf("failed to delete entry %s: %w", entryID, err)
	}
	return nil
}

// SaveUser inserts or replaces a user row.
func (s *Store) SaveUser(user types.User) error {
	query := `INSERT OR REPLACE INTO users (username, is_root) VALUES (?, ?)`
	if _, err := s.db.Exec(query, user.Username, user.IsRoot); err != nil {
		return fmt.Errorf("failed to save user %s: %w", user.Username, err)
	}
	return nil
}

// DeleteUser removes a user row. Missing rows are not an error.
func (s *Store) DeleteUser(username string) error {
	if _, err := s.db.Exec(`DELETE FROM users WHERE username = ?`, username); err != nil {
		return fmt.Errorf("failed to delete user %s: %w", username, err)
	}
	return nil
}

// LoadEntries returns all persisted entries.
func (s *Store) LoadEntries() ([]types.Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, name, description, category, package_name, install_command, config_location, notes, is_installed, added_at
		FROM entries
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}
	defer rows.Close()

	var entries []types.Entry
	for rows.Next() {
		var entry types.Entry
		var category, addedAt string
		if err := rows.Scan(
			&entry.ID,
			&entry.Name,
			&entry.Description,
			&category,
			&entry.PackageName,
			&entry.InstallCommand,
			&entry.ConfigLocation,
			&entry.Notes,
			&entry.IsInstalled,
			&addedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entry.Category = types.CategoryType(category)
		if ts, err := time.Parse(time.RFC3339Nano, addedAt); err == nil {
			entry.AddedAt = ts
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// LoadUsers returns all persisted users.
func (s *Store) LoadUsers() ([]types.User, error) {
	rows, err := s.db.Query(`SELECT username, is_root FROM users`)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	defer rows.Close()

	var users []types.User
	for rows.Next() {
		var user types.User
		if err := rows.Scan(&user.Username, &user.IsRoot); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
