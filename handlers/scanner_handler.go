package handlers

import (
	"github.com/gofiber/fiber/v2"

	"Sistem-Utilitas-QR/models"
	util "Sistem-Utilitas-QR/pkg/utils"
	"Sistem-Utilitas-QR/services"
)

// ScannerHandler menerima hasil decode dari scanner di sisi client. Decoding
// piksel sepenuhnya urusan client; server hanya mencatat string hasilnya.
type ScannerHandler struct {
	ledger *services.HistoryLedger
}

func NewScannerHandler(ledger *services.HistoryLedger) *ScannerHandler {
	return &ScannerHandler{ledger: ledger}
}

// RecordScan godoc
// @Summary Catat hasil scan
// @Description Mencatat string hasil decode QR ke riwayat. No-op bila toggle simpan riwayat sedang mati.
// @Tags Scan
// @Accept json
// @Produce json
// @Param payload body models.ScanRecordPayload true "Isi payload hasil decode"
// @Success 201 {object} models.ScanSuccessResponse "Hasil scan berhasil dicatat"
// @Success 200 {object} object{message=string} "Simpan riwayat sedang nonaktif"
// @Failure 400 {object} models.ErrorResponse "Payload tidak valid"
// @Router /scan [post]
func (h *ScannerHandler) RecordScan(c *fiber.Ctx) error {
	var payload models.ScanRecordPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	record := h.ledger.Record(models.OperationScan, payload.Content, "")
	if record == nil {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Simpan riwayat sedang nonaktif, hasil scan tidak dicatat"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Hasil scan berhasil dicatat",
		"record":  record,
	})
}
