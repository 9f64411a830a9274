package models

// StyleOptions adalah opsi visual untuk satu kali render. Field kosong diisi
// dari konfigurasi platform oleh handler.
type StyleOptions struct {
	PatternColor    string `json:"pattern_color" validate:"omitempty,hexcolor"`
	BackgroundColor string `json:"background_color" validate:"omitempty,hexcolor"`
	Size            int    `json:"size" validate:"omitempty,gt=0"`
	HasLogo         bool   `json:"has_logo"`
}

type GeneratePayload struct {
	Request QRRequest    `json:"request"`
	Style   StyleOptions `json:"style"`
}

type ExportPayload struct {
	Request QRRequest    `json:"request"`
	Style   StyleOptions `json:"style"`
	Format  string       `json:"format" validate:"required,oneof=png svg"`
}
