// Package store provides the SQLite-backed wallet state store.
//
// The full AppState is written as one JSON record under a fixed key. Vault
// entries are additionally mirrored into their own table so savings history
// stays queryable without decoding the blob; the JSON record remains the
// source of truth.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"rwallet/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// storageKey identifies the single wallet record.
const storageKey = "mr_rider_wallet_data"

// Store persists the wallet state.
type Store struct {
	db *sql.DB
}

// Open opens or creates the wallet database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening wallet db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads the persisted state. The second return is false on first run.
func (s *Store) Load() (model.AppState, bool, error) {
	var payload string
	err := s.db.QueryRow("SELECT payload FROM app_state WHERE key = ?", storageKey).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return model.AppState{}, false, nil
	}
	if err != nil {
		return model.AppState{}, false, fmt.Errorf("reading wallet state: %w", err)
	}

	var st model.AppState
	if err := json.Unmarshal([]byte(payload), &st); err != nil {
		return model.AppState{}, false, fmt.Errorf("decoding wallet state: %w", err)
	}
	return st, true, nil
}

// Save writes the full state in one transaction.
func (s *Store) Save(st model.AppState) error {
	payload, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encoding wallet state: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = tx.Exec(`INSERT OR REPLACE INTO app_state (key, payload, updated_at)
		VALUES (?, ?, ?)`, storageKey, string(payload), now)
	if err != nil {
		return err
	}

	// Rewrite the vault mirror from the blob
	if _, err := tx.Exec("DELETE FROM vault_entries"); err != nil {
		return err
	}
	for i, e := range st.Vault {
		_, err := tx.Exec(`INSERT INTO vault_entries (seq, day, amount, recorded_at)
			VALUES (?, ?, ?, ?)`, i+1, e.Date, e.Amount, now)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// VaultHistory reads the mirrored vault entries in insertion order.
func (s *Store) VaultHistory() ([]model.VaultEntry, error) {
	rows, err := s.db.Query("SELECT day, amount FROM vault_entries ORDER BY seq")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []model.VaultEntry
	for rows.Next() {
		var e model.VaultEntry
		if err := rows.Scan(&e.Date, &e.Amount); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ExportJSON writes a lossless backup dump of the state.
func ExportJSON(w io.Writer, st model.AppState) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(st)
}

// DataDir returns the XDG-compliant data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "rwallet")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "rwallet")
}

// DBPath returns the full path to the wallet database.
func DBPath() string {
	return filepath.Join(DataDir(), "wallet.db")
}
