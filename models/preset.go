package models

// StylePreset adalah bundel gaya visual QR yang disimpan user. Immutable
// setelah dibuat, hanya bisa dihapus.
type StylePreset struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	PatternColor    string `json:"pattern_color"`
	BackgroundColor string `json:"background_color"`
	Logo            string `json:"logo,omitempty"` // data URI, opsional
	Size            int    `json:"size"`
}

type PresetSavePayload struct {
	Name            string `json:"name" validate:"required"`
	PatternColor    string `json:"pattern_color" validate:"required,hexcolor"`
	BackgroundColor string `json:"background_color" validate:"required,hexcolor"`
	Logo            string `json:"logo"`
	Size            int    `json:"size" validate:"required,gt=0"`
}
