package services

import (
	"errors"
	"fmt"
	"sync"

	"Sistem-Utilitas-QR/models"
	"Sistem-Utilitas-QR/repository"
)

// PlatformState memegang konfigurasi platform dan identitas yang sedang login.
// Dibangun eksplisit di main dan dioper ke komponen yang membutuhkan; tidak
// ada global tersembunyi. Config diganti utuh, tidak pernah di-patch per field.
type PlatformState struct {
	mu     sync.RWMutex
	config models.PlatformConfig
	user   *models.User
	local  *repository.LocalStateRepository
}

// NewPlatformState memuat config dan identitas tersimpan; bila belum ada,
// dipakai branding bawaan.
func NewPlatformState(local *repository.LocalStateRepository) (*PlatformState, error) {
	s := &PlatformState{
		config: models.DefaultPlatformConfig(),
		local:  local,
	}

	err := local.Get(repository.KeyPlatformConfig, &s.config)
	if err != nil && !errors.Is(err, repository.ErrKeyNotFound) {
		return nil, fmt.Errorf("gagal memuat config platform: %w", err)
	}

	var user models.User
	err = local.Get(repository.KeyUser, &user)
	if err == nil {
		s.user = &user
	} else if !errors.Is(err, repository.ErrKeyNotFound) {
		return nil, fmt.Errorf("gagal memuat identitas login: %w", err)
	}

	return s, nil
}

// Config mengembalikan snapshot konfigurasi saat ini.
func (s *PlatformState) Config() models.PlatformConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// UpdateConfig mengganti konfigurasi secara utuh dan mem-persist-nya.
func (s *PlatformState) UpdateConfig(cfg models.PlatformConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.local.Put(repository.KeyPlatformConfig, cfg); err != nil {
		return err
	}
	s.config = cfg
	return nil
}

// SaveHistoryEnabled melaporkan status toggle simpan riwayat.
func (s *PlatformState) SaveHistoryEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config.SaveHistory
}

// Login menyimpan identitas user yang berhasil autentikasi.
func (s *PlatformState) Login(user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.local.Put(repository.KeyUser, user); err != nil {
		return err
	}
	s.user = &user
	return nil
}

// Logout menghapus identitas tersimpan.
func (s *PlatformState) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.local.Delete(repository.KeyUser); err != nil {
		return err
	}
	s.user = nil
	return nil
}

// CurrentUser mengembalikan user yang sedang login, atau nil.
func (s *PlatformState) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}
