package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/onlineshop/shop-system/internal/core/domain"
)

const collectionOrderEvents = "order_events"

// insertTimeout bounds a single audit write so a slow Mongo never stalls the
// order flow for long.
const insertTimeout = 5 * time.Second

// AuditRepository persists order state changes to an append-only collection.
// Writes are best-effort: the order flow never depends on them.
type AuditRepository struct {
	col *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{col: db.Collection(collectionOrderEvents)}
}

func (r *AuditRepository) InsertOrderEvent(ctx context.Context, event *domain.OrderEvent) error {
	ctx, cancel := context.WithTimeout(ctx, insertTimeout)
	defer cancel()

	doc := bson.M{
		"order_id":     event.OrderID,
		"status":       string(event.Status),
		"timestamp":    event.Timestamp.UTC(),
		"source":       event.Source,
		"processed_at": time.Now().UTC(),
	}

	_, err := r.col.InsertOne(ctx, doc)
	return err
}
