package qrformat

import (
	"strings"

	"Sistem-Utilitas-QR/models"
)

// Validate memeriksa kelengkapan field wajib per variant. Kebijakannya memang
// minimal: tidak ada cek rentang koordinat, format nomor telepon, atau warna.
// Kebenaran format diserahkan ke aplikasi yang membaca payload (dialer, peta,
// dan sebagainya). Mengembalikan false juga untuk variant yang tidak dikenal
// atau grup field aktif yang nil.
func Validate(req models.QRRequest) bool {
	switch req.Type {
	case models.QRTypeURL:
		return req.URL != nil && strings.TrimSpace(req.URL.Address) != ""
	case models.QRTypeText:
		return req.Text != nil && strings.TrimSpace(req.Text.Body) != ""
	case models.QRTypePhone:
		return req.Phone != nil && strings.TrimSpace(req.Phone.Number) != ""
	case models.QRTypeEmail:
		return req.Email != nil && strings.TrimSpace(req.Email.To) != ""
	case models.QRTypeVCard:
		return req.VCard != nil && strings.TrimSpace(req.VCard.FirstName) != ""
	case models.QRTypeWhatsApp:
		return req.WhatsApp != nil && strings.TrimSpace(req.WhatsApp.Phone) != ""
	case models.QRTypeWiFi:
		return req.WiFi != nil && strings.TrimSpace(req.WiFi.SSID) != ""
	case models.QRTypePayment:
		return req.Payment != nil && strings.TrimSpace(req.Payment.Recipient) != ""
	case models.QRTypeSMS:
		return req.SMS != nil && strings.TrimSpace(req.SMS.Phone) != ""
	case models.QRTypeLocation:
		return req.Location != nil && req.Location.Lat != "" && req.Location.Lng != ""
	}
	return false
}
