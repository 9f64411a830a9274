// Package services berisi komponen stateful inti platform: ledger riwayat,
// penyimpanan preset gaya, state platform, dan draft form. Semua list dimiliki
// eksklusif oleh service masing-masing; mutasi hanya lewat operasinya.
package services

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"Sistem-Utilitas-QR/models"
	"Sistem-Utilitas-QR/repository"
)

// MaxHistoryRecords adalah batas jumlah entri riwayat yang disimpan.
const MaxHistoryRecords = 100

// HistoryLedger menyimpan riwayat scan/generate di memori, terbaru di depan,
// maksimal 100 entri. Setiap insert dimirror async ke remote store;
// kegagalan mirror hanya dicatat di log, tidak pernah di-retry atau di-rollback.
type HistoryLedger struct {
	mu      sync.Mutex
	records []models.HistoryRecord

	remote      repository.HistoryRepository
	saveEnabled func() bool
}

func NewHistoryLedger(remote repository.HistoryRepository, saveEnabled func() bool) *HistoryLedger {
	return &HistoryLedger{
		records:     []models.HistoryRecord{},
		remote:      remote,
		saveEnabled: saveEnabled,
	}
}

// SeedFromRemote mengganti seluruh isi lokal dengan 100 record terbaru dari
// remote. Dipanggil sekali saat startup; tidak ada logika merge. Kegagalan
// hanya dicatat dan ledger mulai kosong.
func (l *HistoryLedger) SeedFromRemote(ctx context.Context) {
	records, err := l.remote.FindRecentRecords(ctx, MaxHistoryRecords)
	if err != nil {
		log.Printf("Warning: gagal seed riwayat dari remote, mulai dengan riwayat kosong: %v", err)
		return
	}

	l.mu.Lock()
	l.records = records
	l.mu.Unlock()
	log.Printf("Riwayat ter-seed dari remote: %d record", len(records))
}

// Record mencatat satu operasi. No-op bila toggle simpan riwayat sedang mati.
// qrType hanya diisi untuk operasi GENERATE.
func (l *HistoryLedger) Record(operation, content, qrType string) *models.HistoryRecord {
	if !l.saveEnabled() {
		return nil
	}

	record := models.HistoryRecord{
		ID:        uuid.New().String(),
		Type:      operation,
		Content:   content,
		QRType:    qrType,
		Timestamp: time.Now().UnixMilli(),
	}

	l.mu.Lock()
	l.records = append([]models.HistoryRecord{record}, l.records...)
	if len(l.records) > MaxHistoryRecords {
		l.records = l.records[:MaxHistoryRecords]
	}
	l.mu.Unlock()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := l.remote.InsertRecord(ctx, &record); err != nil {
			log.Printf("Warning: mirror riwayat ke remote gagal (diabaikan): %v", err)
		}
	}()

	return &record
}

// All mengembalikan salinan seluruh riwayat, terbaru di depan.
func (l *HistoryLedger) All() []models.HistoryRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.HistoryRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Search memfilter riwayat dengan substring case-insensitive terhadap isi
// payload, label jenis QR, dan label operasi.
func (l *HistoryLedger) Search(query string) []models.HistoryRecord {
	if query == "" {
		return l.All()
	}

	q := strings.ToLower(query)

	l.mu.Lock()
	defer l.mu.Unlock()

	results := []models.HistoryRecord{}
	for _, r := range l.records {
		if strings.Contains(strings.ToLower(r.Content), q) ||
			strings.Contains(strings.ToLower(r.QRType), q) ||
			strings.Contains(strings.ToLower(r.Type), q) {
			results = append(results, r)
		}
	}
	return results
}

// DeleteOne menghapus satu record lokal dan menghapusnya di remote secara
// fire-and-forget.
func (l *HistoryLedger) DeleteOne(id string) {
	l.mu.Lock()
	filtered := l.records[:0]
	for _, r := range l.records {
		if r.ID != id {
			filtered = append(filtered, r)
		}
	}
	l.records = filtered
	l.mu.Unlock()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := l.remote.DeleteRecordByID(ctx, id); err != nil {
			log.Printf("Warning: hapus record %s di remote gagal (diabaikan): %v", id, err)
		}
	}()
}

// Clear mengosongkan riwayat lokal dan remote. Kegagalan remote tidak
// mengembalikan daftar lokal.
func (l *HistoryLedger) Clear() {
	l.mu.Lock()
	l.records = []models.HistoryRecord{}
	l.mu.Unlock()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := l.remote.DeleteAllRecords(ctx); err != nil {
			log.Printf("Warning: pengosongan riwayat remote gagal (diabaikan): %v", err)
		}
	}()
}
