package seeder

import (
	"errors"
	"log"

	"Sistem-Utilitas-QR/models"
	"Sistem-Utilitas-QR/repository"
)

// SeedPlatformConfig menulis konfigurasi branding bawaan ke state lokal bila
// belum pernah ada. Dipanggil sekali saat startup, sebelum PlatformState dibuat.
func SeedPlatformConfig(local *repository.LocalStateRepository) {
	log.Println("🌱 Memulai seeding konfigurasi platform...")

	var existing models.PlatformConfig
	err := local.Get(repository.KeyPlatformConfig, &existing)
	if err == nil {
		log.Println("✅ Konfigurasi platform sudah ada, seeding dilewati.")
		return
	}
	if !errors.Is(err, repository.ErrKeyNotFound) {
		log.Printf("❌ Gagal membaca konfigurasi tersimpan: %v\n", err)
		return
	}

	defaultConfig := models.DefaultPlatformConfig()
	if err := local.Put(repository.KeyPlatformConfig, defaultConfig); err != nil {
		log.Printf("❌ Gagal menyimpan konfigurasi bawaan: %v\n", err)
		return
	}

	log.Printf("✔ Konfigurasi bawaan tersimpan (%s / %s).\n", defaultConfig.PlatformName, defaultConfig.AppName)
}
