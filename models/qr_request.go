package models

// QRType adalah tag diskriminator untuk sepuluh jenis QR yang didukung platform.
type QRType string

const (
	QRTypeURL      QRType = "URL"
	QRTypeText     QRType = "TEXT"
	QRTypePhone    QRType = "PHONE"
	QRTypeEmail    QRType = "EMAIL"
	QRTypeVCard    QRType = "VCARD"
	QRTypeWhatsApp QRType = "WHATSAPP"
	QRTypeWiFi     QRType = "WIFI"
	QRTypePayment  QRType = "PAYMENT"
	QRTypeSMS      QRType = "SMS"
	QRTypeLocation QRType = "LOCATION"
)

// AllQRTypes dalam urutan tampilan yang sama dengan aplikasi frontend.
func AllQRTypes() []QRType {
	return []QRType{
		QRTypeURL, QRTypeText, QRTypePhone, QRTypeEmail, QRTypeVCard,
		QRTypeWhatsApp, QRTypeWiFi, QRTypePayment, QRTypeSMS, QRTypeLocation,
	}
}

type URLFields struct {
	Address string `json:"address"`
}

type TextFields struct {
	Body string `json:"body"`
}

type PhoneFields struct {
	Number string `json:"number"`
}

type EmailFields struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type VCardFields struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Company   string `json:"company"`
	Website   string `json:"website"`
	Address   string `json:"address"`
}

type WhatsAppFields struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type WiFiFields struct {
	SSID     string `json:"ssid"`
	Password string `json:"password"`
	Auth     string `json:"auth" validate:"omitempty,oneof=WPA WEP OPEN"`
}

type PaymentFields struct {
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
	Currency  string `json:"currency" validate:"omitempty,oneof=USD EUR BDT"`
}

type SMSFields struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type LocationFields struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

// QRRequest adalah union bertag: tepat satu grup field aktif sesuai Type.
// Grup yang tidak aktif boleh nil.
type QRRequest struct {
	Type     QRType          `json:"type" validate:"required,oneof=URL TEXT PHONE EMAIL VCARD WHATSAPP WIFI PAYMENT SMS LOCATION"`
	URL      *URLFields      `json:"url,omitempty"`
	Text     *TextFields     `json:"text,omitempty"`
	Phone    *PhoneFields    `json:"phone,omitempty"`
	Email    *EmailFields    `json:"email,omitempty"`
	VCard    *VCardFields    `json:"vcard,omitempty"`
	WhatsApp *WhatsAppFields `json:"whatsapp,omitempty"`
	WiFi     *WiFiFields     `json:"wifi,omitempty"`
	Payment  *PaymentFields  `json:"payment,omitempty"`
	SMS      *SMSFields      `json:"sms,omitempty"`
	Location *LocationFields `json:"location,omitempty"`
}

// QRDrafts menyimpan draft kerja untuk SEMUA variant sekaligus, supaya
// berpindah jenis QR tidak menghapus isian variant lain.
type QRDrafts struct {
	LastType QRType         `json:"last_type,omitempty"`
	URL      URLFields      `json:"url"`
	Text     TextFields     `json:"text"`
	Phone    PhoneFields    `json:"phone"`
	Email    EmailFields    `json:"email"`
	VCard    VCardFields    `json:"vcard"`
	WhatsApp WhatsAppFields `json:"whatsapp"`
	WiFi     WiFiFields     `json:"wifi"`
	Payment  PaymentFields  `json:"payment"`
	SMS      SMSFields      `json:"sms"`
	Location LocationFields `json:"location"`
}

// DefaultDrafts mengembalikan draft kosong dengan default yang sama dengan
// form aplikasi (WPA untuk WiFi, USD untuk payment).
func DefaultDrafts() QRDrafts {
	return QRDrafts{
		LastType: QRTypeURL,
		WiFi:     WiFiFields{Auth: "WPA"},
		Payment:  PaymentFields{Currency: "USD"},
	}
}
