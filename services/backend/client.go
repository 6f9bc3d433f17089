package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"zipsea/models"
)

const maxResponseBytes = 8 << 20

// HTTPClient talks to the backend over HTTP. Every request goes through a
// circuit breaker so a dead backend fails fast.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
	logger  *zap.Logger
}

// NewHTTPClient builds a client for the API rooted at baseURL.
func NewHTTPClient(baseURL string, timeout time.Duration, logger *zap.Logger) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
	c.breaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "cruise-api",
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
	return c
}

func (c *HTTPClient) GetComprehensiveCruise(ctx context.Context, cruiseID int) (*models.Cruise, error) {
	var cruise models.Cruise
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/cruises/%d/comprehensive", cruiseID), nil, &cruise); err != nil {
		return nil, err
	}
	return &cruise, nil
}

func (c *HTTPClient) GetCruiseBySlug(ctx context.Context, slug string) (*models.Cruise, error) {
	var cruise models.Cruise
	if err := c.do(ctx, http.MethodGet, "/api/v1/cruises/slug/"+url.PathEscape(slug), nil, &cruise); err != nil {
		return nil, err
	}
	return &cruise, nil
}

func (c *HTTPClient) GetBasicCruise(ctx context.Context, cruiseID int) (*models.Cruise, error) {
	var cruise models.Cruise
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/cruises/%d", cruiseID), nil, &cruise); err != nil {
		return nil, err
	}
	return &cruise, nil
}

func (c *HTTPClient) ListCruises(ctx context.Context, filter models.CruiseFilter) ([]models.CruiseSummary, error) {
	q := url.Values{}
	if filter.Category != "" {
		q.Set("cabinType", string(filter.Category))
	}
	if filter.CruiseLineID > 0 {
		q.Set("cruiseLineId", strconv.Itoa(filter.CruiseLineID))
	}
	if filter.Limit > 0 {
		q.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Offset > 0 {
		q.Set("offset", strconv.Itoa(filter.Offset))
	}
	path := "/api/v1/cruises"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out []models.CruiseSummary
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateBookingSession(ctx context.Context, req SessionRequest) (string, error) {
	var out struct {
		SessionID string `json:"sessionId"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/booking/session", req, &out); err != nil {
		return "", err
	}
	if out.SessionID == "" {
		return "", fmt.Errorf("%w: empty session id", ErrUpstream)
	}
	return out.SessionID, nil
}

func (c *HTTPClient) GetLivePricing(ctx context.Context, sessionID string, cruiseID int, category models.CabinCategory) (*models.LivePricing, error) {
	q := url.Values{}
	q.Set("cruiseId", strconv.Itoa(cruiseID))
	if category != "" {
		q.Set("cabinType", string(category))
	}
	path := "/api/v1/booking/" + url.PathEscape(sessionID) + "/pricing?" + q.Encode()

	var out models.LivePricing
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) SelectCabin(ctx context.Context, req SelectCabinRequest) (*models.Reservation, error) {
	var out struct {
		BookingRef string `json:"bookingRef"`
	}
	path := "/api/v1/booking/" + url.PathEscape(req.SessionID) + "/select-cabin"
	if err := c.do(ctx, http.MethodPost, path, req, &out); err != nil {
		return nil, err
	}
	return &models.Reservation{
		CabinCode:  req.CabinCode,
		ResultNo:   req.ResultNo,
		GradeNo:    req.GradeNo,
		RateCode:   req.RateCode,
		BookingRef: out.BookingRef,
		ReservedAt: time.Now().UTC(),
	}, nil
}

func (c *HTTPClient) UpdateSessionFlag(ctx context.Context, sessionID string, hold bool) error {
	body := map[string]bool{"isHoldBooking": hold}
	return c.do(ctx, http.MethodPatch, "/api/v1/booking/session/"+url.PathEscape(sessionID), body, nil)
}

// do sends one request and decodes the envelope's data into out.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = b
	}

	status := 0
	raw, err := c.breaker.Execute(func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		if err != nil {
			return nil, err
		}
		status = resp.StatusCode
		if status >= http.StatusInternalServerError {
			return nil, &APIError{Status: status, Message: http.StatusText(status)}
		}
		// 4xx answers are the backend working correctly
		return data, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return fmt.Errorf("%w: %s %s: %v", ErrUpstream, method, path, err)
		}
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return apiErr
		}
		c.logger.Warn("backend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %s %s: %v", ErrUpstream, method, path, err)
	}

	var env models.Envelope[json.RawMessage]
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			if status >= http.StatusBadRequest {
				return &APIError{Status: status, Message: http.StatusText(status)}
			}
			return fmt.Errorf("%w: decode envelope: %v", ErrUpstream, err)
		}
	}

	if status >= http.StatusBadRequest || !env.Success {
		apiErr := &APIError{Status: status, Message: "request failed"}
		if env.Error != nil {
			apiErr.Message = env.Error.Message
			apiErr.Details = env.Error.Details
		}
		return apiErr
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: decode data: %v", ErrUpstream, err)
	}
	return nil
}
