// Package quote stores "get a quote" requests and queues the sales
// notification for each one.
package quote

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"zipsea/database/repository"
	"zipsea/models"
	"zipsea/services/tasks"
)

const (
	referencePrefix  = "ZQ-"
	defaultListLimit = 50
	maxListLimit     = 500
)

var ErrInvalidQuote = errors.New("invalid quote request")

// Enqueuer queues background tasks. *asynq.Client satisfies it.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type Service struct {
	repo   repository.QuoteRepository
	queue  Enqueuer
	logger *zap.Logger
}

func NewService(repo repository.QuoteRepository, queue Enqueuer, logger *zap.Logger) *Service {
	return &Service{repo: repo, queue: queue, logger: logger}
}

// Submit stores the quote and queues its notification. A queueing failure
// does not fail the submission; the receipt reports it instead.
func (s *Service) Submit(ctx context.Context, q models.QuoteRequest) (*models.QuoteReceipt, error) {
	if err := validate(&q); err != nil {
		return nil, err
	}

	q.ID = uuid.New().String()
	q.Reference = NewReference()
	q.CreatedAt = time.Now().UTC()

	if _, err := s.repo.Create(ctx, q); err != nil {
		return nil, fmt.Errorf("quote.Submit: %w", err)
	}
	log := s.logger.With(zap.String("reference", q.Reference), zap.Int("cruiseId", q.CruiseID))
	log.Info("quote request stored")

	receipt := &models.QuoteReceipt{Reference: q.Reference}
	task, opts, err := tasks.NewQuoteNotifyTask(models.QuoteNotifyPayload{QuoteID: q.ID})
	if err == nil {
		_, err = s.queue.EnqueueContext(ctx, task, opts...)
	}
	if err != nil {
		log.Warn("failed to queue quote notification", zap.Error(err))
		return receipt, nil
	}
	receipt.NotificationQueued = true
	return receipt, nil
}

// List returns the most recent quote requests.
func (s *Service) List(ctx context.Context, limit int) ([]models.QuoteRequest, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.repo.ListRecent(ctx, int64(limit))
}

// Get returns a single quote request by ID.
func (s *Service) Get(ctx context.Context, id string) (*models.QuoteRequest, error) {
	return s.repo.GetByID(ctx, id)
}

// NewReference returns a customer-facing reference such as ZQ-3F9A12BC.
func NewReference() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return referencePrefix + strings.ToUpper(id[:8])
}

func validate(q *models.QuoteRequest) error {
	q.Email = strings.TrimSpace(q.Email)
	q.Notes = strings.TrimSpace(q.Notes)
	switch {
	case q.Email == "":
		return fmt.Errorf("%w: email is required", ErrInvalidQuote)
	case q.CruiseID <= 0:
		return fmt.Errorf("%w: cruise is required", ErrInvalidQuote)
	case !q.Category.Valid():
		return fmt.Errorf("%w: unknown cabin type %q", ErrInvalidQuote, q.Category)
	case q.Adults < 1:
		return fmt.Errorf("%w: at least one adult is required", ErrInvalidQuote)
	case q.Children < 0 || len(q.ChildAges) > q.Children:
		return fmt.Errorf("%w: child ages do not match children", ErrInvalidQuote)
	}
	if q.CabinPrice != nil && *q.CabinPrice <= 0 {
		q.CabinPrice = nil
	}
	return nil
}
