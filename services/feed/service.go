package feed

import (
	"context"

	"go.uber.org/zap"

	"zipsea/models"
)

type Service struct {
	lister Lister
	cache  FeedCache
	logger *zap.Logger
}

func NewService(lister Lister, cache FeedCache, logger *zap.Logger) *Service {
	return &Service{lister: lister, cache: cache, logger: logger}
}

// Refresh rebuilds the rows and stores them.
func (s *Service) Refresh(ctx context.Context) ([]models.FeedBlock, error) {
	blocks, err := RunFeedAggregation(ctx, s.lister, s.logger)
	if err != nil {
		return nil, err
	}
	if err := s.cache.CacheBlocks(ctx, blocks); err != nil {
		s.logger.Warn("failed to cache feed", zap.Error(err))
	}
	return blocks, nil
}

// Blocks serves cached rows, rebuilding them when the cache is empty.
func (s *Service) Blocks(ctx context.Context) ([]models.FeedBlock, error) {
	blocks, err := s.cache.GetCachedBlocks(ctx)
	if err != nil {
		s.logger.Warn("feed cache read failed", zap.Error(err))
	}
	if len(blocks) > 0 {
		return blocks, nil
	}
	return s.Refresh(ctx)
}
