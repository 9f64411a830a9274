package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	util "Sistem-Utilitas-QR/pkg/utils"
)

type AppConfig struct {
	Port           string
	MONGOSTRING    string
	PASETO_SECRET  string
	LocalStatePath string

	// Kredensial admin tunggal. Password di-hash saat load supaya
	// perbandingan di handler selalu lewat bcrypt.
	AdminEmail        string
	AdminPasswordHash []byte
}

// LoadConfig loads configuration from .env file
func LoadConfig() *AppConfig {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: Error loading .env file (might not exist in production): %v", err)
	}

	secretBase64 := getEnv("PASETO_SECRET", "")
	if secretBase64 == "" {
		// Tanpa secret di env, buat kunci sekali pakai. Token tidak akan
		// selamat dari restart proses.
		secretBase64, err = util.GenerateBase64Key(32)
		if err != nil {
			log.Fatalf("Gagal generate PASETO secret sementara: %v", err)
		}
		log.Println("Warning: PASETO_SECRET belum di set, memakai kunci sementara (sesi admin hilang saat restart)")
	}

	adminPassword := getEnv("ADMIN_PASSWORD", "@Ainafiz90")
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Gagal hash password admin: %v", err)
	}

	return &AppConfig{
		Port:              getEnv("PORT", "3000"),
		MONGOSTRING:       getEnv("MONGOSTRING", ""),
		PASETO_SECRET:     secretBase64,
		LocalStatePath:    getEnv("LOCALSTATE_PATH", "local_state.db"),
		AdminEmail:        getEnv("ADMIN_EMAIL", "aminulnafiz90@gmail.com"),
		AdminPasswordHash: hash,
	}
}

// Helper function to get environment variable or fallback to default
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
