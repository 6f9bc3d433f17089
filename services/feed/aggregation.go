package feed

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"zipsea/models"
)

const blockSize = 8

var themes = map[models.CabinCategory]string{
	models.CategoryInterior:  "Best value sailings",
	models.CategoryOceanview: "Sea views for less",
	models.CategoryBalcony:   "Balcony deals",
	models.CategorySuite:     "Suite escapes",
}

// RunFeedAggregation queries one listing page per category concurrently and
// returns the non-empty rows in display order. It fails only when every
// category failed.
func RunFeedAggregation(ctx context.Context, lister Lister, logger *zap.Logger) ([]models.FeedBlock, error) {
	var (
		wg      sync.WaitGroup
		results = make([]*models.FeedBlock, len(models.CabinCategories))
		errs    = make([]error, len(models.CabinCategories))
		now     = time.Now().UTC()
	)

	for i, cat := range models.CabinCategories {
		wg.Add(1)
		go func(i int, cat models.CabinCategory) {
			defer wg.Done()
			cards, err := lister.ListCruises(ctx, models.CruiseFilter{Category: cat, Limit: blockSize})
			if err != nil {
				errs[i] = err
				logger.Warn("feed row failed", zap.String("category", string(cat)), zap.Error(err))
				return
			}
			results[i] = assembleBlock(cat, cards, now)
		}(i, cat)
	}
	wg.Wait()

	var blocks []models.FeedBlock
	failed := 0
	for i, b := range results {
		if errs[i] != nil {
			failed++
			continue
		}
		if b != nil && len(b.Cards) > 0 {
			blocks = append(blocks, *b)
		}
	}
	if failed == len(models.CabinCategories) {
		return nil, fmt.Errorf("feed.RunFeedAggregation: all rows failed: %w", errs[0])
	}
	return blocks, nil
}

// assembleBlock keeps only cards with a displayable price.
func assembleBlock(cat models.CabinCategory, cards []models.CruiseCard, at time.Time) *models.FeedBlock {
	priced := make([]models.CruiseCard, 0, len(cards))
	for _, c := range cards {
		if c.FromText != "" {
			priced = append(priced, c)
		}
	}
	return &models.FeedBlock{
		ID:          "featured-" + string(cat),
		Theme:       themes[cat],
		Category:    cat,
		Cards:       priced,
		GeneratedAt: at,
	}
}
