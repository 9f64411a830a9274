package models

// PlatformConfig adalah konfigurasi global platform. Satu instance untuk
// seluruh aplikasi; diubah hanya lewat replace utuh oleh admin.
type PlatformConfig struct {
	AppName         string `json:"app_name"`
	PlatformName    string `json:"platform_name"`
	EnableVibration bool   `json:"enable_vibration"`
	AutoOpenLinks   bool   `json:"auto_open_links"`
	SaveHistory     bool   `json:"save_history"`
	QRColor         string `json:"qr_color"`
	BGColor         string `json:"bg_color"`
}

type PlatformConfigUpdatePayload struct {
	AppName         string `json:"app_name" validate:"required"`
	PlatformName    string `json:"platform_name" validate:"required"`
	EnableVibration bool   `json:"enable_vibration"`
	AutoOpenLinks   bool   `json:"auto_open_links"`
	SaveHistory     bool   `json:"save_history"`
	QRColor         string `json:"qr_color" validate:"required,hexcolor"`
	BGColor         string `json:"bg_color" validate:"required,hexcolor"`
}

// DefaultPlatformConfig mengembalikan branding bawaan aplikasi.
func DefaultPlatformConfig() PlatformConfig {
	return PlatformConfig{
		AppName:         "Dakhil 2026 QR",
		PlatformName:    "ARNS QR Pro",
		EnableVibration: true,
		AutoOpenLinks:   true,
		SaveHistory:     true,
		QRColor:         "#000000",
		BGColor:         "#ffffff",
	}
}
