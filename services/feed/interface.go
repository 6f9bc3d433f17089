// Package feed builds the featured-deals rows shown on the home page.
package feed

import (
	"context"

	"zipsea/models"
)

// Lister is the listing query the feed is assembled from.
type Lister interface {
	ListCruises(ctx context.Context, filter models.CruiseFilter) ([]models.CruiseCard, error)
}

type FeedCache interface {
	CacheBlocks(ctx context.Context, blocks []models.FeedBlock) error
	GetCachedBlocks(ctx context.Context) ([]models.FeedBlock, error)
}
