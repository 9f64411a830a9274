package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Sistem-Utilitas-QR/config"
	"Sistem-Utilitas-QR/models"
	"Sistem-Utilitas-QR/repository"
	"Sistem-Utilitas-QR/services"
)

type noopHistoryRepo struct{}

func (noopHistoryRepo) InsertRecord(context.Context, *models.HistoryRecord) error { return nil }
func (noopHistoryRepo) DeleteRecordByID(context.Context, string) error            { return nil }
func (noopHistoryRepo) DeleteAllRecords(context.Context) error                    { return nil }
func (noopHistoryRepo) FindRecentRecords(context.Context, int64) ([]models.HistoryRecord, error) {
	return []models.HistoryRecord{}, nil
}

func newTestApp(t *testing.T) (*fiber.App, *services.HistoryLedger) {
	t.Helper()

	db, err := config.OpenLocalState(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	local := repository.NewLocalStateRepository(db)
	state, err := services.NewPlatformState(local)
	require.NoError(t, err)

	ledger := services.NewHistoryLedger(noopHistoryRepo{}, state.SaveHistoryEnabled)

	handler := NewGeneratorHandler(ledger, state)
	scanner := NewScannerHandler(ledger)

	app := fiber.New()
	app.Post("/api/v1/qr/generate", handler.GenerateQRCode)
	app.Post("/api/v1/qr/export", handler.ExportQRCode)
	app.Post("/api/v1/scan", scanner.RecordScan)
	return app, ledger
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (int, []byte) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestGenerateQRCodeSuccess(t *testing.T) {
	app, ledger := newTestApp(t)

	payload := models.GeneratePayload{
		Request: models.QRRequest{
			Type: models.QRTypeURL,
			URL:  &models.URLFields{Address: "example.com"},
		},
	}

	status, body := postJSON(t, app, "/api/v1/qr/generate", payload)
	require.Equal(t, fiber.StatusOK, status)

	var result struct {
		Message     string `json:"message"`
		QRCodeImage string `json:"qr_code_image"`
		Content     string `json:"content"`
	}
	require.NoError(t, json.Unmarshal(body, &result))

	assert.True(t, strings.HasPrefix(result.QRCodeImage, "data:image/png;base64,"))
	assert.Equal(t, "https://example.com", result.Content)

	records := ledger.All()
	require.Len(t, records, 1)
	assert.Equal(t, models.OperationGenerate, records[0].Type)
	assert.Equal(t, "URL", records[0].QRType)
	assert.Equal(t, "https://example.com", records[0].Content)
}

func TestGenerateQRCodeMissingRequiredField(t *testing.T) {
	app, ledger := newTestApp(t)

	payload := models.GeneratePayload{
		Request: models.QRRequest{
			Type: models.QRTypeWiFi,
			WiFi: &models.WiFiFields{Password: "rahasia", Auth: "WPA"},
		},
	}

	status, body := postJSON(t, app, "/api/v1/qr/generate", payload)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, string(body), "Field wajib belum diisi")

	// Validasi gagal berarti tidak ada record riwayat.
	assert.Empty(t, ledger.All())
}

func TestExportQRCodeSVG(t *testing.T) {
	app, _ := newTestApp(t)

	payload := models.ExportPayload{
		Request: models.QRRequest{
			Type: models.QRTypeText,
			Text: &models.TextFields{Body: "halo"},
		},
		Format: "svg",
	}

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/v1/qr/export", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "QR_TEXT_")

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<svg"))
}

func TestExportQRCodeInvalidFormat(t *testing.T) {
	app, _ := newTestApp(t)

	payload := models.ExportPayload{
		Request: models.QRRequest{
			Type: models.QRTypeText,
			Text: &models.TextFields{Body: "halo"},
		},
		Format: "pdf",
	}

	status, _ := postJSON(t, app, "/api/v1/qr/export", payload)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestRecordScan(t *testing.T) {
	app, ledger := newTestApp(t)

	status, _ := postJSON(t, app, "/api/v1/scan", models.ScanRecordPayload{Content: "WIFI:T:WPA;S:Home;P:x;;"})
	require.Equal(t, fiber.StatusCreated, status)

	records := ledger.All()
	require.Len(t, records, 1)
	assert.Equal(t, models.OperationScan, records[0].Type)
	assert.Empty(t, records[0].QRType)
}

func TestRecordScanEmptyContentRejected(t *testing.T) {
	app, ledger := newTestApp(t)

	status, _ := postJSON(t, app, "/api/v1/scan", models.ScanRecordPayload{})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Empty(t, ledger.All())
}
