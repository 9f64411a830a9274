package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"Sistem-Utilitas-QR/config"
	"Sistem-Utilitas-QR/pkg/paseto"
	"Sistem-Utilitas-QR/repository"
	"Sistem-Utilitas-QR/router"
	"Sistem-Utilitas-QR/seeder"
	"Sistem-Utilitas-QR/services"

	_ "Sistem-Utilitas-QR/docs" // Import docs untuk swagger
)

// @title ARNS QR Pro API
// @version 1.0
// @description API untuk platform utilitas QR: generate dari sepuluh jenis data terstruktur, pencatatan hasil scan, riwayat, preset gaya, dan konfigurasi branding
//
// @contact.name API Support
// @contact.email support@example.com
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:3000
// @BasePath /api/v1
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and PASETO token.
//
// @tag.name Auth
// @tag.description Login admin
//
// @tag.name QR
// @tag.description Generate dan export QR Code
//
// @tag.name Scan
// @tag.description Pencatatan hasil scan
//
// @tag.name History
// @tag.description Riwayat scan dan generate
//
// @tag.name Presets
// @tag.description Preset gaya QR
//
// @tag.name Config
// @tag.description Konfigurasi platform
func main() {

	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file tidak ditemukan, menggunakan environment variables sistem")
	}

	cfg := config.LoadConfig()

	// Urutan inisialisasi: state lokal -> remote -> seed ledger -> serve.
	localDB, err := config.OpenLocalState(cfg.LocalStatePath)
	if err != nil {
		log.Fatalf("Gagal membuka state lokal: %v", err)
	}
	defer localDB.Close()

	config.MongoConnect()
	defer config.DisconnectDB()

	localRepo := repository.NewLocalStateRepository(localDB)
	seeder.SeedPlatformConfig(localRepo)

	state, err := services.NewPlatformState(localRepo)
	if err != nil {
		log.Fatalf("Gagal memuat state platform: %v", err)
	}

	presets, err := services.NewPresetStore(localRepo)
	if err != nil {
		log.Fatalf("Gagal memuat preset: %v", err)
	}

	drafts, err := services.NewDraftStore(localRepo)
	if err != nil {
		log.Fatalf("Gagal memuat draft: %v", err)
	}

	historyRepo := repository.NewHistoryRepository()
	ledger := services.NewHistoryLedger(historyRepo, state.SaveHistoryEnabled)

	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	ledger.SeedFromRemote(seedCtx)
	cancel()

	maker, err := paseto.NewMaker(cfg.PASETO_SECRET)
	if err != nil {
		log.Fatalf("Gagal inisialisasi token maker: %v", err)
	}

	app := fiber.New()

	config.SetupCORS(app)
	app.Use(logger.New())

	router.SetupRoutes(app, router.Deps{
		Cfg:     cfg,
		Maker:   maker,
		State:   state,
		Ledger:  ledger,
		Presets: presets,
		Drafts:  drafts,
	})

	log.Printf("Server running on port %s", cfg.Port)
	log.Printf("API Documentation: http://localhost:%s/docs/index.html", cfg.Port)
	log.Printf("CORS enabled for origins: %v", config.GetAllowedOrigins())
	log.Fatal(app.Listen(":" + cfg.Port))
}
