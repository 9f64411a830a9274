// Package qrformat berisi mesin encoding payload QR: transformasi murni dari
// input terstruktur menjadi string payload sesuai standar eksternal masing-masing
// (vCard 3.0, skema WIFI:, SMSTO:, mailto:, deep link wa.me, URL pencarian peta).
// Paket ini tidak menyentuh state apa pun.
package qrformat

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"Sistem-Utilitas-QR/models"
)

// Format mengubah request menjadi string payload final. Dipanggil hanya setelah
// Validate lulus; deterministik, tanpa efek samping. Output harus byte-exact
// karena dibaca scanner pihak lain.
func Format(req models.QRRequest) string {
	switch req.Type {
	case models.QRTypeURL:
		d := req.URL
		if strings.HasPrefix(d.Address, "http") {
			return d.Address
		}
		return "https://" + d.Address

	case models.QRTypeText:
		return req.Text.Body

	case models.QRTypePhone:
		return "tel:" + stripWhitespace(req.Phone.Number)

	case models.QRTypeEmail:
		d := req.Email
		return fmt.Sprintf("mailto:%s?subject=%s&body=%s", d.To, encodeComponent(d.Subject), encodeComponent(d.Body))

	case models.QRTypeWhatsApp:
		d := req.WhatsApp
		return fmt.Sprintf("https://wa.me/%s?text=%s", keepDigits(d.Phone), encodeComponent(d.Message))

	case models.QRTypeWiFi:
		// Karakter ; , \ di SSID/password sengaja TIDAK di-escape,
		// mengikuti perilaku aplikasi aslinya.
		d := req.WiFi
		return fmt.Sprintf("WIFI:T:%s;S:%s;P:%s;;", d.Auth, d.SSID, d.Password)

	case models.QRTypeSMS:
		d := req.SMS
		return fmt.Sprintf("SMSTO:%s:%s", d.Phone, d.Message)

	case models.QRTypeLocation:
		d := req.Location
		return fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%s,%s", d.Lat, d.Lng)

	case models.QRTypePayment:
		d := req.Payment
		return fmt.Sprintf("https://paypal.me/%s/%s", d.Recipient, d.Amount)

	case models.QRTypeVCard:
		d := req.VCard
		lines := []string{
			"BEGIN:VCARD",
			"VERSION:3.0",
			fmt.Sprintf("N:%s;%s;;;", d.LastName, d.FirstName),
			fmt.Sprintf("FN:%s %s", d.FirstName, d.LastName),
			"ORG:" + d.Company,
			"URL:" + d.Website,
			"EMAIL:" + d.Email,
			"TEL;TYPE=CELL:" + d.Phone,
			fmt.Sprintf("ADR;TYPE=WORK:;;%s;;;;", d.Address),
			"END:VCARD",
		}
		return strings.Join(lines, "\n")
	}

	return ""
}

// encodeComponent melakukan percent-encoding setara encodeURIComponent di JS:
// spasi menjadi %20, bukan +.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// stripWhitespace membuang semua karakter whitespace.
func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// keepDigits membuang semua karakter non-digit (setara regex \D di JS).
func keepDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r < '0' || r > '9' {
			return -1
		}
		return r
	}, s)
}
