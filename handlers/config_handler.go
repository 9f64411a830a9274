package handlers

import (
	"github.com/gofiber/fiber/v2"

	"Sistem-Utilitas-QR/models"
	util "Sistem-Utilitas-QR/pkg/utils"
	"Sistem-Utilitas-QR/services"
)

type ConfigHandler struct {
	state *services.PlatformState
}

func NewConfigHandler(state *services.PlatformState) *ConfigHandler {
	return &ConfigHandler{state: state}
}

// GetPlatformConfig godoc
// @Summary Ambil konfigurasi platform
// @Description Branding dan preferensi global yang dibaca semua client.
// @Tags Config
// @Produce json
// @Success 200 {object} models.PlatformConfig "Konfigurasi saat ini"
// @Router /config [get]
func (h *ConfigHandler) GetPlatformConfig(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.state.Config())
}

// UpdatePlatformConfig godoc
// @Summary Update konfigurasi platform
// @Description Mengganti konfigurasi secara utuh (bukan patch per field). Hanya admin.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param config body models.PlatformConfigUpdatePayload true "Konfigurasi baru"
// @Success 200 {object} object{message=string,config=models.PlatformConfig} "Konfigurasi berhasil diupdate"
// @Failure 400 {object} models.ErrorResponse "Payload tidak valid"
// @Failure 401 {object} models.UnauthorizedErrorResponse "Token tidak valid"
// @Failure 403 {object} models.ForbiddenErrorResponse "Bukan admin"
// @Router /admin/config [put]
func (h *ConfigHandler) UpdatePlatformConfig(c *fiber.Ctx) error {
	var payload models.PlatformConfigUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	newConfig := models.PlatformConfig{
		AppName:         payload.AppName,
		PlatformName:    payload.PlatformName,
		EnableVibration: payload.EnableVibration,
		AutoOpenLinks:   payload.AutoOpenLinks,
		SaveHistory:     payload.SaveHistory,
		QRColor:         payload.QRColor,
		BGColor:         payload.BGColor,
	}

	if err := h.state.UpdateConfig(newConfig); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan konfigurasi", "details": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Konfigurasi berhasil diupdate",
		"config":  newConfig,
	})
}
