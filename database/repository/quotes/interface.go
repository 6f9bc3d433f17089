package quotesRepo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"zipsea/models"
)

const collectionName = "quote_requests"

var ErrNotFound = errors.New("quote request not found")

type QuoteRepository interface {
	Create(ctx context.Context, q models.QuoteRequest) (string, error)
	GetByID(ctx context.Context, id string) (*models.QuoteRequest, error)
	GetByReference(ctx context.Context, ref string) (*models.QuoteRequest, error)
	ListRecent(ctx context.Context, limit int64) ([]models.QuoteRequest, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoQuoteRepo struct {
	coll *mongo.Collection
}

// NewMongoQuoteRepo returns a QuoteRepository backed by the quote_requests
// collection of db.
func NewMongoQuoteRepo(db *mongo.Database) QuoteRepository {
	return &mongoQuoteRepo{
		coll: db.Collection(collectionName),
	}
}
