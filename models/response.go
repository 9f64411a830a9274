package models

type LoginSuccessResponse struct {
	Message string `json:"message" example:"Login berhasil"`
	Token   string `json:"token" example:"v2.local.Ft9QcxZhJXEYyb7-bMM..."`
	User    User   `json:"user"`
}

type LogoutSuccessResponse struct {
	Message string `json:"message" example:"Logout berhasil. Silakan hapus token dari sisi client."`
}

type GenerateSuccessResponse struct {
	Message     string `json:"message" example:"QR Code berhasil dibuat"`
	QRCodeImage string `json:"qr_code_image" example:"data:image/png;base64,iVBOR..."`
	Content     string `json:"content" example:"https://example.com"`
}

type ScanSuccessResponse struct {
	Message string        `json:"message" example:"Hasil scan berhasil dicatat"`
	Record  HistoryRecord `json:"record"`
}

type HistoryListResponse struct {
	Message string          `json:"message" example:"Riwayat berhasil diambil"`
	History []HistoryRecord `json:"history"`
	Total   int             `json:"total" example:"42"`
}

type PresetListResponse struct {
	Message string        `json:"message" example:"Data preset berhasil diambil"`
	Presets []StylePreset `json:"presets"`
	Total   int           `json:"total" example:"3"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Details string `json:"details,omitempty" example:"validation failed"`
}

type UnauthorizedErrorResponse struct {
	Error string `json:"error" example:"Token tidak valid atau tidak ada"`
}

type ForbiddenErrorResponse struct {
	Error string `json:"error" example:"Akses ditolak. Hak akses admin diperlukan"`
}

type NotFoundErrorResponse struct {
	Error string `json:"error" example:"Data tidak ditemukan"`
}
