package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// Key state lokal, mengikuti nama key localStorage di aplikasi aslinya.
const (
	KeyPlatformConfig = "arns_qr_config"
	KeyPresets        = "arns_qr_presets"
	KeyLastQRType     = "arns_last_qr_type"
	KeyLastQRData     = "arns_last_qr_data"
	KeyUser           = "arns_user"
)

// ErrKeyNotFound dikembalikan saat key belum pernah disimpan.
var ErrKeyNotFound = errors.New("key state lokal tidak ditemukan")

// LocalStateRepository adalah penyimpanan key-value JSON di sqlite, pengganti
// localStorage profil browser.
type LocalStateRepository struct {
	db *sql.DB
}

func NewLocalStateRepository(db *sql.DB) *LocalStateRepository {
	return &LocalStateRepository{db: db}
}

// Get membaca dan meng-unmarshal nilai untuk key ke dest.
func (r *LocalStateRepository) Get(key string, dest interface{}) error {
	var raw string
	err := r.db.QueryRow(`SELECT value FROM local_state WHERE key = ?`, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrKeyNotFound
		}
		return fmt.Errorf("gagal membaca state lokal %q: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return fmt.Errorf("gagal decode state lokal %q: %w", key, err)
	}
	return nil
}

// Put menyimpan value sebagai JSON, menimpa nilai lama.
func (r *LocalStateRepository) Put(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("gagal encode state lokal %q: %w", key, err)
	}

	_, err = r.db.Exec(
		`INSERT INTO local_state (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(raw),
	)
	if err != nil {
		return fmt.Errorf("gagal menyimpan state lokal %q: %w", key, err)
	}
	return nil
}

// Delete menghapus key. Idempoten jika key tidak ada.
func (r *LocalStateRepository) Delete(key string) error {
	_, err := r.db.Exec(`DELETE FROM local_state WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("gagal menghapus state lokal %q: %w", key, err)
	}
	return nil
}
