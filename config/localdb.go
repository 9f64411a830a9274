package config

import (
	"database/sql"
	"fmt"
	"log"

	_ "modernc.org/sqlite"
)

// localStateSchema meniru localStorage browser: satu baris JSON per key.
// Aman dipanggil berulang karena memakai IF NOT EXISTS.
const localStateSchema = `
CREATE TABLE IF NOT EXISTS local_state (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// OpenLocalState membuka database sqlite untuk state lokal (preset, config
// platform, draft form, identitas login) dan memastikan skemanya ada.
func OpenLocalState(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("gagal membuka database state lokal: %w", err)
	}

	if _, err := db.Exec(localStateSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("gagal membuat skema state lokal: %w", err)
	}

	log.Printf("State lokal tersimpan di %s", path)
	return db, nil
}
