package qrformat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"Sistem-Utilitas-QR/models"
)

func TestFormatURL(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    string
	}{
		{"tanpa skema diberi prefix https", "example.com", "https://example.com"},
		{"http dibiarkan", "http://example.com", "http://example.com"},
		{"https dibiarkan", "https://example.com/x?a=1", "https://example.com/x?a=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := models.QRRequest{Type: models.QRTypeURL, URL: &models.URLFields{Address: tt.address}}
			assert.Equal(t, tt.want, Format(req))
		})
	}
}

func TestFormatText(t *testing.T) {
	req := models.QRRequest{Type: models.QRTypeText, Text: &models.TextFields{Body: "halo dunia\nbaris dua"}}
	assert.Equal(t, "halo dunia\nbaris dua", Format(req))
}

func TestFormatPhone(t *testing.T) {
	req := models.QRRequest{Type: models.QRTypePhone, Phone: &models.PhoneFields{Number: "+62 812 3456 789"}}
	assert.Equal(t, "tel:+628123456789", Format(req))
}

func TestFormatEmail(t *testing.T) {
	req := models.QRRequest{Type: models.QRTypeEmail, Email: &models.EmailFields{
		To:      "a@b.com",
		Subject: "Halo Dunia",
		Body:    "isi pesan & tanda",
	}}
	assert.Equal(t, "mailto:a@b.com?subject=Halo%20Dunia&body=isi%20pesan%20%26%20tanda", Format(req))
}

func TestFormatWhatsApp(t *testing.T) {
	req := models.QRRequest{Type: models.QRTypeWhatsApp, WhatsApp: &models.WhatsAppFields{
		Phone:   "+62 (812) 3456-789",
		Message: "halo kamu",
	}}
	assert.Equal(t, "https://wa.me/628123456789?text=halo%20kamu", Format(req))
}

func TestFormatWiFi(t *testing.T) {
	req := models.QRRequest{Type: models.QRTypeWiFi, WiFi: &models.WiFiFields{
		SSID: "Home", Password: "secret", Auth: "WPA",
	}}
	assert.Equal(t, "WIFI:T:WPA;S:Home;P:secret;;", Format(req))
}

func TestFormatWiFiReservedCharactersNotEscaped(t *testing.T) {
	// Perilaku aplikasi asli dipertahankan: ; di SSID masuk apa adanya.
	req := models.QRRequest{Type: models.QRTypeWiFi, WiFi: &models.WiFiFields{
		SSID: "Ho;me", Password: "p,w", Auth: "WEP",
	}}
	assert.Equal(t, "WIFI:T:WEP;S:Ho;me;P:p,w;;", Format(req))
}

func TestFormatSMS(t *testing.T) {
	req := models.QRRequest{Type: models.QRTypeSMS, SMS: &models.SMSFields{
		Phone: "+62812", Message: "pesan: penting",
	}}
	assert.Equal(t, "SMSTO:+62812:pesan: penting", Format(req))
}

func TestFormatLocation(t *testing.T) {
	req := models.QRRequest{Type: models.QRTypeLocation, Location: &models.LocationFields{
		Lat: "23.8", Lng: "90.4",
	}}
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=23.8,90.4", Format(req))
}

func TestFormatPayment(t *testing.T) {
	req := models.QRRequest{Type: models.QRTypePayment, Payment: &models.PaymentFields{
		Recipient: "janedoe", Amount: "12.50", Currency: "USD",
	}}
	assert.Equal(t, "https://paypal.me/janedoe/12.50", Format(req))
}

func TestFormatVCard(t *testing.T) {
	req := models.QRRequest{Type: models.QRTypeVCard, VCard: &models.VCardFields{
		FirstName: "Jane",
		LastName:  "Doe",
		Phone:     "555",
		Email:     "j@x.com",
		Company:   "Acme",
		Website:   "x.com",
		Address:   "1 Rd",
	}}

	want := "BEGIN:VCARD\n" +
		"VERSION:3.0\n" +
		"N:Doe;Jane;;;\n" +
		"FN:Jane Doe\n" +
		"ORG:Acme\n" +
		"URL:x.com\n" +
		"EMAIL:j@x.com\n" +
		"TEL;TYPE=CELL:555\n" +
		"ADR;TYPE=WORK:;;1 Rd;;;;\n" +
		"END:VCARD"
	assert.Equal(t, want, Format(req))
}

func TestFormatDeterministic(t *testing.T) {
	req := models.QRRequest{Type: models.QRTypeEmail, Email: &models.EmailFields{
		To: "a@b.com", Subject: "s s", Body: "b&b",
	}}
	first := Format(req)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Format(req))
	}
}

func TestFormatUnknownTypeEmpty(t *testing.T) {
	assert.Equal(t, "", Format(models.QRRequest{Type: "BARCODE"}))
}
