package notification

import (
	"context"

	"zipsea/models"
)

// QuoteNotifier tells the sales team about a new quote request.
type QuoteNotifier interface {
	NotifyQuote(ctx context.Context, q models.QuoteRequest) error
}
