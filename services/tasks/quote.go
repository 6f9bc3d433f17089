package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"zipsea/models"
)

const TypeQuoteNotify = "quote:notify"

const (
	quoteNotifyRetries = 5
	quoteNotifyTimeout = 30 * time.Second
)

// NewQuoteNotifyTask builds the task that announces a stored quote request.
func NewQuoteNotifyTask(payload models.QuoteNotifyPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeQuoteNotify, b)
	opts := []asynq.Option{
		asynq.MaxRetry(quoteNotifyRetries),
		asynq.Timeout(quoteNotifyTimeout),
		asynq.TaskID("quote-notify:" + payload.QuoteID),
	}
	return task, opts, nil
}

// ParseQuoteNotifyTask decodes a task payload.
func ParseQuoteNotifyTask(t *asynq.Task) (models.QuoteNotifyPayload, error) {
	var p models.QuoteNotifyPayload
	err := json.Unmarshal(t.Payload(), &p)
	return p, err
}
