package handlers

import (
	"github.com/gofiber/fiber/v2"

	"Sistem-Utilitas-QR/services"
)

type HistoryHandler struct {
	ledger *services.HistoryLedger
}

func NewHistoryHandler(ledger *services.HistoryLedger) *HistoryHandler {
	return &HistoryHandler{ledger: ledger}
}

// GetHistory godoc
// @Summary Ambil riwayat
// @Description Mengambil riwayat scan/generate, terbaru di depan. Query search memfilter substring case-insensitive.
// @Tags History
// @Produce json
// @Param search query string false "Kata kunci pencarian"
// @Success 200 {object} models.HistoryListResponse "Riwayat berhasil diambil"
// @Router /history [get]
func (h *HistoryHandler) GetHistory(c *fiber.Ctx) error {
	records := h.ledger.Search(c.Query("search"))

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Riwayat berhasil diambil",
		"history": records,
		"total":   len(records),
	})
}

// DeleteHistoryRecord godoc
// @Summary Hapus satu record riwayat
// @Description Menghapus record lokal dan remote (best-effort). Idempoten bila id tidak ada.
// @Tags History
// @Produce json
// @Param id path string true "ID record"
// @Success 200 {object} object{message=string} "Record berhasil dihapus"
// @Router /history/{id} [delete]
func (h *HistoryHandler) DeleteHistoryRecord(c *fiber.Ctx) error {
	id := c.Params("id")
	h.ledger.DeleteOne(id)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Record riwayat berhasil dihapus"})
}

// ClearHistory godoc
// @Summary Kosongkan riwayat
// @Description Mengosongkan riwayat lokal dan remote (best-effort).
// @Tags History
// @Produce json
// @Success 200 {object} object{message=string} "Riwayat berhasil dikosongkan"
// @Router /history [delete]
func (h *HistoryHandler) ClearHistory(c *fiber.Ctx) error {
	h.ledger.Clear()

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Riwayat berhasil dikosongkan"})
}
