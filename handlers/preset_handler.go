package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"Sistem-Utilitas-QR/models"
	util "Sistem-Utilitas-QR/pkg/utils"
	"Sistem-Utilitas-QR/services"
)

type PresetHandler struct {
	presets *services.PresetStore
}

func NewPresetHandler(presets *services.PresetStore) *PresetHandler {
	return &PresetHandler{presets: presets}
}

// SavePreset godoc
// @Summary Simpan preset gaya
// @Description Menyimpan bundel gaya (warna pola, warna latar, logo, ukuran) dengan nama. Nama kosong ditolak.
// @Tags Presets
// @Accept json
// @Produce json
// @Param preset body models.PresetSavePayload true "Data preset"
// @Success 201 {object} object{message=string,preset=models.StylePreset} "Preset berhasil disimpan"
// @Failure 400 {object} models.ErrorResponse "Payload tidak valid atau nama kosong"
// @Router /presets [post]
func (h *PresetHandler) SavePreset(c *fiber.Ctx) error {
	var payload models.PresetSavePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	preset, err := h.presets.Save(payload)
	if err != nil {
		if errors.Is(err, services.ErrBlankPresetName) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama preset tidak boleh kosong"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan preset", "details": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Preset berhasil disimpan",
		"preset":  preset,
	})
}

// GetAllPresets godoc
// @Summary Ambil semua preset
// @Tags Presets
// @Produce json
// @Success 200 {object} models.PresetListResponse "Data preset berhasil diambil"
// @Router /presets [get]
func (h *PresetHandler) GetAllPresets(c *fiber.Ctx) error {
	presets := h.presets.List()

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Data preset berhasil diambil",
		"presets": presets,
		"total":   len(presets),
	})
}

// GetPresetByID godoc
// @Summary Ambil satu preset
// @Description Mengambil preset untuk diterapkan ke state gaya aktif. Penerapan gaya tidak pernah me-render ulang QR yang sudah tampil.
// @Tags Presets
// @Produce json
// @Param id path string true "ID preset"
// @Success 200 {object} object{message=string,preset=models.StylePreset} "Preset ditemukan"
// @Failure 404 {object} models.NotFoundErrorResponse "Preset tidak ditemukan"
// @Router /presets/{id} [get]
func (h *PresetHandler) GetPresetByID(c *fiber.Ctx) error {
	preset, found := h.presets.Get(c.Params("id"))
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Preset tidak ditemukan"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Preset ditemukan",
		"preset":  preset,
	})
}

// DeletePreset godoc
// @Summary Hapus preset
// @Tags Presets
// @Produce json
// @Param id path string true "ID preset"
// @Success 200 {object} object{message=string} "Preset berhasil dihapus"
// @Failure 500 {object} models.ErrorResponse "Gagal mem-persist daftar preset"
// @Router /presets/{id} [delete]
func (h *PresetHandler) DeletePreset(c *fiber.Ctx) error {
	if err := h.presets.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus preset", "details": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Preset berhasil dihapus"})
}
