package feed

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// StartFeedCron refreshes the feed now and then every interval until ctx is
// done. It blocks; run it in a goroutine.
func StartFeedCron(ctx context.Context, svc *Service, interval time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	run := func() {
		if _, err := svc.Refresh(ctx); err != nil {
			svc.logger.Warn("feed refresh failed", zap.Error(err))
		}
	}
	run()
	for {
		select {
		case <-ctx.Done():
			svc.logger.Info("feed cron stopped")
			return
		case <-ticker.C:
			run()
		}
	}
}
