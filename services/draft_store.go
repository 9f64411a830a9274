package services

import (
	"errors"
	"fmt"
	"sync"

	"Sistem-Utilitas-QR/models"
	"Sistem-Utilitas-QR/repository"
)

// DraftStore menyimpan jenis QR terakhir dan draft isian semua variant.
// Setiap variant punya draft sendiri, jadi berpindah jenis lalu kembali
// tidak menghilangkan isian.
type DraftStore struct {
	mu     sync.Mutex
	drafts models.QRDrafts
	local  *repository.LocalStateRepository
}

func NewDraftStore(local *repository.LocalStateRepository) (*DraftStore, error) {
	s := &DraftStore{
		drafts: models.DefaultDrafts(),
		local:  local,
	}

	err := local.Get(repository.KeyLastQRData, &s.drafts)
	if err != nil && !errors.Is(err, repository.ErrKeyNotFound) {
		return nil, fmt.Errorf("gagal memuat draft tersimpan: %w", err)
	}

	var lastType models.QRType
	err = local.Get(repository.KeyLastQRType, &lastType)
	if err == nil && lastType != "" {
		s.drafts.LastType = lastType
	} else if err != nil && !errors.Is(err, repository.ErrKeyNotFound) {
		return nil, fmt.Errorf("gagal memuat jenis QR terakhir: %w", err)
	}

	return s, nil
}

// Load mengembalikan snapshot draft saat ini.
func (s *DraftStore) Load() models.QRDrafts {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drafts
}

// Save mengganti seluruh draft dan mem-persist-nya. Jenis terakhir disimpan
// di key terpisah, mengikuti tata letak state aplikasi aslinya.
func (s *DraftStore) Save(drafts models.QRDrafts) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.local.Put(repository.KeyLastQRData, drafts); err != nil {
		return err
	}
	if err := s.local.Put(repository.KeyLastQRType, drafts.LastType); err != nil {
		return err
	}
	s.drafts = drafts
	return nil
}
