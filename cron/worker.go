package cron

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"zipsea/config"
	"zipsea/database/repository"
	"zipsea/services/notification"
	"zipsea/services/tasks"
	"zipsea/utils"
)

// QueueRedisOpt is the asynq connection shared by the client and the worker.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitQuoteWorker runs the quote notification worker in the background and
// returns the server so the caller can shut it down.
func InitQuoteWorker(quotes repository.QuoteRepository, notifier notification.QuoteNotifier) *asynq.Server {
	logger := utils.GetLogger().Named("quote-worker")

	srv := asynq.NewServer(
		QueueRedisOpt(),
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: logger.Sugar(),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeQuoteNotify, HandleQuoteNotify(quotes, notifier, logger))

	go func() {
		logger.Info("starting quote worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("quote worker failed to start",
				zap.Int("attempt", attempts),
				zap.Int("maxAttempts", maxAttempts),
				zap.Error(err),
			)
			if attempts == maxAttempts {
				logger.Fatal("max retry attempts reached for quote worker")
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()

	return srv
}

// HandleQuoteNotify loads the stored quote and posts it to the notifier.
// Quotes that no longer exist are dropped without retry.
func HandleQuoteNotify(quotes repository.QuoteRepository, notifier notification.QuoteNotifier, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseQuoteNotifyTask(task)
		if err != nil {
			logger.Error("invalid quote notify payload", zap.Error(err))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}

		q, err := quotes.GetByID(ctx, p.QuoteID)
		if errors.Is(err, repository.ErrQuoteNotFound) {
			logger.Warn("quote disappeared before notification", zap.String("quoteId", p.QuoteID))
			return fmt.Errorf("quote %s: %w", p.QuoteID, asynq.SkipRetry)
		}
		if err != nil {
			return err
		}

		if err := notifier.NotifyQuote(ctx, *q); err != nil {
			logger.Warn("quote notification failed",
				zap.String("reference", q.Reference),
				zap.Error(err),
			)
			return err
		}
		return nil
	}
}
