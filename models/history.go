package models

// Jenis operasi yang dicatat di riwayat.
const (
	OperationScan     = "SCAN"
	OperationGenerate = "GENERATE"
)

// HistoryRecord adalah satu entri riwayat scan/generate. Timestamp dalam
// epoch milliseconds, mengikuti skema tabel history di remote store.
type HistoryRecord struct {
	ID        string `json:"id" bson:"id"`
	Type      string `json:"type" bson:"type"`
	Content   string `json:"content" bson:"content"`
	QRType    string `json:"qr_type,omitempty" bson:"qr_type,omitempty"`
	Timestamp int64  `json:"timestamp" bson:"timestamp"`
}

type ScanRecordPayload struct {
	Content string `json:"content" validate:"required"`
}
