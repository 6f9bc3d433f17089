package quotesRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"zipsea/models"
)

// Create inserts a quote request and returns its ID.
func (r *mongoQuoteRepo) Create(ctx context.Context, q models.QuoteRequest) (string, error) {
	if q.ID == "" {
		q.ID = uuid.New().String()
	}
	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now().UTC()
	}

	if _, err := r.coll.InsertOne(ctx, q); err != nil {
		return "", fmt.Errorf("failed to insert quote request: %w", err)
	}
	return q.ID, nil
}

// GetByID returns a quote request by its ID.
func (r *mongoQuoteRepo) GetByID(ctx context.Context, id string) (*models.QuoteRequest, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

// GetByReference returns a quote request by its customer-facing reference.
func (r *mongoQuoteRepo) GetByReference(ctx context.Context, ref string) (*models.QuoteRequest, error) {
	return r.findOne(ctx, bson.M{"reference": ref})
}

func (r *mongoQuoteRepo) findOne(ctx context.Context, filter bson.M) (*models.QuoteRequest, error) {
	var q models.QuoteRequest
	err := r.coll.FindOne(ctx, filter).Decode(&q)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// ListRecent returns the newest quote requests first.
func (r *mongoQuoteRepo) ListRecent(ctx context.Context, limit int64) ([]models.QuoteRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	quotes := []models.QuoteRequest{}
	if err := cursor.All(ctx, &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}
