package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Sistem-Utilitas-QR/config"
	"Sistem-Utilitas-QR/models"
)

// HistoryRepository adalah kontrak remote store untuk riwayat. Remote hanya
// mirror best-effort; daftar lokal di ledger tetap sumber kebenaran selama
// sesi berjalan.
type HistoryRepository interface {
	InsertRecord(ctx context.Context, record *models.HistoryRecord) error
	DeleteRecordByID(ctx context.Context, id string) error
	DeleteAllRecords(ctx context.Context) error
	FindRecentRecords(ctx context.Context, limit int64) ([]models.HistoryRecord, error)
}

type historyRepository struct {
	historyCollection *mongo.Collection
}

func NewHistoryRepository() HistoryRepository {
	return &historyRepository{
		historyCollection: config.GetCollection(config.HistoryCollection),
	}
}

func (r *historyRepository) InsertRecord(ctx context.Context, record *models.HistoryRecord) error {
	_, err := r.historyCollection.InsertOne(ctx, record)
	if err != nil {
		return fmt.Errorf("gagal insert record riwayat: %w", err)
	}
	return nil
}

func (r *historyRepository) DeleteRecordByID(ctx context.Context, id string) error {
	_, err := r.historyCollection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("gagal hapus record riwayat %s: %w", id, err)
	}
	return nil
}

func (r *historyRepository) DeleteAllRecords(ctx context.Context) error {
	_, err := r.historyCollection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("gagal mengosongkan riwayat remote: %w", err)
	}
	return nil
}

func (r *historyRepository) FindRecentRecords(ctx context.Context, limit int64) ([]models.HistoryRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.historyCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil riwayat remote: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.HistoryRecord
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("gagal decode riwayat remote: %w", err)
	}

	if len(results) == 0 {
		return []models.HistoryRecord{}, nil
	}
	return results, nil
}
