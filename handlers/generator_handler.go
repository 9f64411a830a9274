package handlers

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"Sistem-Utilitas-QR/models"
	"Sistem-Utilitas-QR/pkg/qrformat"
	"Sistem-Utilitas-QR/pkg/qrrender"
	util "Sistem-Utilitas-QR/pkg/utils"
	"Sistem-Utilitas-QR/services"
)

// DefaultQRSize adalah ukuran render bawaan (piksel), sama dengan frontend.
const DefaultQRSize = 400

type GeneratorHandler struct {
	ledger *services.HistoryLedger
	state  *services.PlatformState
}

func NewGeneratorHandler(ledger *services.HistoryLedger, state *services.PlatformState) *GeneratorHandler {
	return &GeneratorHandler{ledger: ledger, state: state}
}

// renderOptions melengkapi opsi gaya yang kosong dengan default platform.
func (h *GeneratorHandler) renderOptions(style models.StyleOptions) qrrender.Options {
	cfg := h.state.Config()

	opts := qrrender.Options{
		Width:      style.Size,
		DarkColor:  style.PatternColor,
		LightColor: style.BackgroundColor,
		HasLogo:    style.HasLogo,
	}
	if opts.Width <= 0 {
		opts.Width = DefaultQRSize
	}
	if opts.DarkColor == "" {
		opts.DarkColor = cfg.QRColor
	}
	if opts.LightColor == "" {
		opts.LightColor = cfg.BGColor
	}
	return opts
}

// GenerateQRCode godoc
// @Summary Generate QR Code
// @Description Memvalidasi input terstruktur, memformat payload sesuai standar jenisnya, me-render QR, dan mencatat ke riwayat
// @Tags QR
// @Accept json
// @Produce json
// @Param payload body models.GeneratePayload true "Request QR dan opsi gaya"
// @Success 200 {object} models.GenerateSuccessResponse "QR Code berhasil dibuat"
// @Failure 400 {object} models.ErrorResponse "Payload tidak valid atau field wajib kosong"
// @Failure 500 {object} models.ErrorResponse "Gagal render QR Code"
// @Router /qr/generate [post]
func (h *GeneratorHandler) GenerateQRCode(c *fiber.Ctx) error {
	var payload models.GeneratePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	// Gerbang generate: field wajib variant aktif harus terisi. Tanpa ini
	// tidak ada payload parsial yang pernah dirender.
	if !qrformat.Validate(payload.Request) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Field wajib belum diisi."})
	}

	content := qrformat.Format(payload.Request)

	png, err := qrrender.RenderPNG(content, h.renderOptions(payload.Style))
	if err != nil {
		// Gagal render berarti tidak ada record riwayat yang dibuat.
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat gambar QR Code.", "details": err.Error()})
	}

	h.ledger.Record(models.OperationGenerate, content, string(payload.Request.Type))

	encodedString := base64.StdEncoding.EncodeToString(png)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":       "QR Code berhasil dibuat",
		"qr_code_image": "data:image/png;base64," + encodedString,
		"content":       content,
	})
}

// ExportQRCode godoc
// @Summary Export QR Code
// @Description Menghasilkan file PNG atau SVG dari request QR tanpa mencatat riwayat
// @Tags QR
// @Accept json
// @Produce png
// @Param payload body models.ExportPayload true "Request QR, opsi gaya, dan format file"
// @Success 200 {file} binary "File gambar QR"
// @Failure 400 {object} models.ErrorResponse "Payload tidak valid atau field wajib kosong"
// @Failure 500 {object} models.ErrorResponse "Gagal render QR Code"
// @Router /qr/export [post]
func (h *GeneratorHandler) ExportQRCode(c *fiber.Ctx) error {
	var payload models.ExportPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	if !qrformat.Validate(payload.Request) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Field wajib belum diisi."})
	}

	content := qrformat.Format(payload.Request)
	opts := h.renderOptions(payload.Style)
	filename := fmt.Sprintf("QR_%s_%d.%s", payload.Request.Type, time.Now().UnixMilli(), payload.Format)

	switch payload.Format {
	case "svg":
		svg, err := qrrender.RenderSVG(content, opts)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat SVG QR Code.", "details": err.Error()})
		}
		c.Set(fiber.HeaderContentType, "image/svg+xml")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
		return c.SendString(svg)

	default:
		png, err := qrrender.RenderPNG(content, opts)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat gambar QR Code.", "details": err.Error()})
		}
		c.Set(fiber.HeaderContentType, "image/png")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
		return c.Send(png)
	}
}
