package router

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"Sistem-Utilitas-QR/config"
	"Sistem-Utilitas-QR/config/middleware"
	"Sistem-Utilitas-QR/handlers"
	"Sistem-Utilitas-QR/pkg/paseto"
	"Sistem-Utilitas-QR/services"
	_ "Sistem-Utilitas-QR/docs"
)

// Deps adalah seluruh dependency yang dibangun di main dan dioper eksplisit
// ke handler; tidak ada state aplikasi yang global.
type Deps struct {
	Cfg     *config.AppConfig
	Maker   *paseto.Maker
	State   *services.PlatformState
	Ledger  *services.HistoryLedger
	Presets *services.PresetStore
	Drafts  *services.DraftStore
}

func SetupRoutes(app *fiber.App, deps Deps) {
	log.Println("Memulai pendaftaran rute aplikasi...")

	// Inisialisasi Handlers
	authHandler := handlers.NewAuthHandler(deps.Cfg, deps.Maker, deps.State)
	generatorHandler := handlers.NewGeneratorHandler(deps.Ledger, deps.State)
	scannerHandler := handlers.NewScannerHandler(deps.Ledger)
	historyHandler := handlers.NewHistoryHandler(deps.Ledger)
	presetHandler := handlers.NewPresetHandler(deps.Presets)
	draftHandler := handlers.NewDraftHandler(deps.Drafts)
	configHandler := handlers.NewConfigHandler(deps.State)

	// Health check & Docs
	app.Get("/", func(c *fiber.Ctx) error {
		cfg := deps.State.Config()
		return c.JSON(fiber.Map{
			"message":  cfg.PlatformName + " API",
			"app_name": cfg.AppName,
			"status":   "running",
			"docs":     "/docs/index.html",
		})
	})
	app.Get("/docs/*", swagger.HandlerDefault)

	// API v1 group
	api := app.Group("/api/v1")

	// Authentication routes
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", middleware.AuthMiddleware(deps.Maker), authHandler.Logout)

	// QR generation & export
	qrGroup := api.Group("/qr")
	qrGroup.Post("/generate", generatorHandler.GenerateQRCode)
	qrGroup.Post("/export", generatorHandler.ExportQRCode)

	// Hasil scan dari decoder client
	api.Post("/scan", scannerHandler.RecordScan)

	// Riwayat
	api.Get("/history", historyHandler.GetHistory)
	api.Delete("/history/:id", historyHandler.DeleteHistoryRecord)
	api.Delete("/history", historyHandler.ClearHistory)

	// Preset gaya
	api.Get("/presets", presetHandler.GetAllPresets)
	api.Post("/presets", presetHandler.SavePreset)
	api.Get("/presets/:id", presetHandler.GetPresetByID)
	api.Delete("/presets/:id", presetHandler.DeletePreset)

	// Draft form
	api.Get("/drafts", draftHandler.GetDrafts)
	api.Put("/drafts", draftHandler.SaveDrafts)

	// Konfigurasi platform (baca publik, update khusus admin)
	api.Get("/config", configHandler.GetPlatformConfig)
	adminGroup := api.Group("/admin", middleware.AuthMiddleware(deps.Maker), middleware.AdminMiddleware())
	adminGroup.Put("/config", configHandler.UpdatePlatformConfig)

	log.Println("Semua rute aplikasi berhasil didaftarkan.")
	log.Println("Routes yang tersedia:")
	log.Println("- POST /api/v1/auth/login")
	log.Println("- POST /api/v1/auth/logout (protected)")
	log.Println("- POST /api/v1/qr/generate")
	log.Println("- POST /api/v1/qr/export")
	log.Println("- POST /api/v1/scan")
	log.Println("- GET /api/v1/history")
	log.Println("- DELETE /api/v1/history/:id")
	log.Println("- DELETE /api/v1/history")
	log.Println("- GET /api/v1/presets")
	log.Println("- POST /api/v1/presets")
	log.Println("- GET /api/v1/presets/:id")
	log.Println("- DELETE /api/v1/presets/:id")
	log.Println("- GET /api/v1/drafts")
	log.Println("- PUT /api/v1/drafts")
	log.Println("- GET /api/v1/config")
	log.Println("- PUT /api/v1/admin/config (admin only)")
	log.Println("Swagger documentation tersedia di: /docs/index.html")
}
