package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"Sistem-Utilitas-QR/models"
	"Sistem-Utilitas-QR/repository"
)

// ErrBlankPresetName dikembalikan Save bila nama preset kosong setelah trim.
var ErrBlankPresetName = errors.New("nama preset tidak boleh kosong")

// PresetStore menyimpan preset gaya QR. Preset immutable setelah dibuat,
// urutan mengikuti urutan penyimpanan, nama boleh duplikat. Seluruh daftar
// dipersist sebagai satu nilai JSON di state lokal.
type PresetStore struct {
	mu      sync.Mutex
	presets []models.StylePreset
	local   *repository.LocalStateRepository
}

// NewPresetStore memuat daftar preset tersimpan. Key yang belum ada berarti
// belum ada preset.
func NewPresetStore(local *repository.LocalStateRepository) (*PresetStore, error) {
	s := &PresetStore{
		presets: []models.StylePreset{},
		local:   local,
	}

	err := local.Get(repository.KeyPresets, &s.presets)
	if err != nil && !errors.Is(err, repository.ErrKeyNotFound) {
		return nil, fmt.Errorf("gagal memuat preset tersimpan: %w", err)
	}
	return s, nil
}

// Save menambahkan preset baru dengan id unik dan mem-persist seluruh daftar.
// Nama kosong/whitespace ditolak tanpa mengubah daftar.
func (s *PresetStore) Save(payload models.PresetSavePayload) (*models.StylePreset, error) {
	if strings.TrimSpace(payload.Name) == "" {
		return nil, ErrBlankPresetName
	}

	preset := models.StylePreset{
		ID:              uuid.New().String(),
		Name:            payload.Name,
		PatternColor:    payload.PatternColor,
		BackgroundColor: payload.BackgroundColor,
		Logo:            payload.Logo,
		Size:            payload.Size,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.presets = append(s.presets, preset)
	if err := s.local.Put(repository.KeyPresets, s.presets); err != nil {
		s.presets = s.presets[:len(s.presets)-1]
		return nil, err
	}
	return &preset, nil
}

// Get mencari preset berdasarkan id.
func (s *PresetStore) Get(id string) (*models.StylePreset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.presets {
		if s.presets[i].ID == id {
			p := s.presets[i]
			return &p, true
		}
	}
	return nil, false
}

// List mengembalikan salinan daftar preset dalam urutan penyimpanan.
func (s *PresetStore) List() []models.StylePreset {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.StylePreset, len(s.presets))
	copy(out, s.presets)
	return out
}

// Delete menghapus preset berdasarkan id dan mem-persist sisanya. Idempoten
// bila id tidak ditemukan.
func (s *PresetStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]models.StylePreset, 0, len(s.presets))
	for _, p := range s.presets {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) == len(s.presets) {
		return nil
	}

	s.presets = filtered
	return s.local.Put(repository.KeyPresets, s.presets)
}
