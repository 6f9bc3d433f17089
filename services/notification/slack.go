package notification

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"zipsea/models"
)

// SlackNotifier posts quote requests to a Slack incoming webhook.
type SlackNotifier struct {
	webhookURL string
	http       *http.Client
	logger     *zap.Logger
	now        func() time.Time
}

func NewSlackNotifier(webhookURL string, timeout time.Duration, logger *zap.Logger) *SlackNotifier {
	return &SlackNotifier{
		webhookURL: webhookURL,
		http:       &http.Client{Timeout: timeout},
		logger:     logger,
		now:        time.Now,
	}
}

// NotifyQuote sends the quote as a Block Kit message. Without a webhook URL
// it does nothing.
func (n *SlackNotifier) NotifyQuote(ctx context.Context, q models.QuoteRequest) error {
	if n.webhookURL == "" {
		n.logger.Debug("slack webhook not configured, skipping quote notification",
			zap.String("reference", q.Reference))
		return nil
	}

	msg := BuildQuoteMessage(q, n.now().UTC())
	if err := slack.PostWebhookCustomHTTPContext(ctx, n.webhookURL, n.http, msg); err != nil {
		return fmt.Errorf("notification.NotifyQuote: failed to post to slack: %w", err)
	}
	n.logger.Info("quote notification sent", zap.String("reference", q.Reference))
	return nil
}

// BuildQuoteMessage renders the webhook payload for a quote request.
func BuildQuoteMessage(q models.QuoteRequest, sentAt time.Time) *slack.WebhookMessage {
	summary := fmt.Sprintf("*New Quote Request*\nReference: #%s\nCustomer: %s", q.Reference, q.Email)

	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, "Quote Request - #"+q.Reference, false, false)),
		slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, summary, false, false), nil, nil),
		slack.NewDividerBlock(),
		slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, "```"+quoteDetails(q)+"```", false, false), nil, nil),
		slack.NewContextBlock("",
			slack.NewTextBlockObject(slack.MarkdownType, "Sent at "+sentAt.Format("2006-01-02 15:04:05 UTC"), false, false),
		),
	}

	return &slack.WebhookMessage{
		Text:   "New Quote Request - Ref #" + q.Reference,
		Blocks: &slack.Blocks{BlockSet: blocks},
	}
}

func quoteDetails(q models.QuoteRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Reference #: %s\n", q.Reference)
	fmt.Fprintf(&b, "Customer: %s\n", q.Email)
	fmt.Fprintf(&b, "Cruise: %s (ID %d)\n", q.CruiseName, q.CruiseID)
	fmt.Fprintf(&b, "Ship: %s\n", q.ShipName)
	fmt.Fprintf(&b, "Departure: %s\n", q.DepartureDate)
	fmt.Fprintf(&b, "Cabin Type: %s\n", q.Category.Label())
	if q.CabinPrice != nil {
		fmt.Fprintf(&b, "Cabin Price: $%.2f\n", *q.CabinPrice)
	} else {
		b.WriteString("Cabin Price: n/a\n")
	}
	fmt.Fprintf(&b, "Passengers: %d adults, %d children", q.Adults, q.Children)
	if len(q.ChildAges) > 0 {
		ages := make([]string, len(q.ChildAges))
		for i, a := range q.ChildAges {
			ages[i] = fmt.Sprint(a)
		}
		fmt.Fprintf(&b, " (ages %s)", strings.Join(ages, ", "))
	}
	b.WriteString("\n")
	if d := discounts(q.Discounts); d != "" {
		fmt.Fprintf(&b, "Discounts: %s\n", d)
	}
	if q.Notes != "" {
		fmt.Fprintf(&b, "\n--- NOTES ---\n%s\n", q.Notes)
	}
	return b.String()
}

func discounts(d models.QuoteDiscounts) string {
	var out []string
	if d.Senior {
		out = append(out, "Senior (55+)")
	}
	if d.Military {
		out = append(out, "Military")
	}
	if d.PastGuest {
		pg := "Past guest"
		if d.PastGuestNumber != "" {
			pg += " #" + d.PastGuestNumber
		}
		out = append(out, pg)
	}
	if d.StateOfResidence != "" {
		out = append(out, "Resident of "+d.StateOfResidence)
	}
	return strings.Join(out, ", ")
}
