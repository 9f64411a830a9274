package handlers

import (
	"github.com/gofiber/fiber/v2"

	"Sistem-Utilitas-QR/models"
	"Sistem-Utilitas-QR/services"
)

type DraftHandler struct {
	drafts *services.DraftStore
}

func NewDraftHandler(drafts *services.DraftStore) *DraftHandler {
	return &DraftHandler{drafts: drafts}
}

// GetDrafts godoc
// @Summary Ambil draft form
// @Description Mengambil jenis QR terakhir dan draft isian semua variant.
// @Tags Drafts
// @Produce json
// @Success 200 {object} models.QRDrafts "Draft saat ini"
// @Router /drafts [get]
func (h *DraftHandler) GetDrafts(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.drafts.Load())
}

// SaveDrafts godoc
// @Summary Simpan draft form
// @Description Mengganti seluruh draft. Setiap variant menyimpan isiannya sendiri.
// @Tags Drafts
// @Accept json
// @Produce json
// @Param drafts body models.QRDrafts true "Draft baru"
// @Success 200 {object} object{message=string} "Draft berhasil disimpan"
// @Failure 400 {object} models.ErrorResponse "Payload tidak valid"
// @Router /drafts [put]
func (h *DraftHandler) SaveDrafts(c *fiber.Ctx) error {
	var drafts models.QRDrafts
	if err := c.BodyParser(&drafts); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if err := h.drafts.Save(drafts); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan draft", "details": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Draft berhasil disimpan"})
}
