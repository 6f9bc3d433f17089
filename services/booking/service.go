// Package booking drives live cabin pricing and reservation through an
// explicit state machine persisted in Redis.
package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"zipsea/models"
	"zipsea/services/backend"
	"zipsea/services/cruise"
	"zipsea/services/pricing"
	"zipsea/services/slug"
)

const (
	maxPassengers = 8
	maxChildAge   = 17
)

// CruiseSource resolves the cruise a session is opened for.
type CruiseSource interface {
	Lookup(ctx context.Context, rawSlug string, cruiseID int) (*cruise.Lookup, error)
}

// StartSessionInput opens a session for one cruise, category and party.
type StartSessionInput struct {
	CruiseSlug string               `json:"cruiseSlug" binding:"required"`
	Category   models.CabinCategory `json:"category" binding:"required"`
	Passengers models.Passengers    `json:"passengers"`
}

type Service struct {
	api     backend.Client
	store   Store
	cruises CruiseSource
	live    models.LiveBookingConfig
	logger  *zap.Logger
}

func NewService(api backend.Client, store Store, cruises CruiseSource, live models.LiveBookingConfig, logger *zap.Logger) *Service {
	return &Service{
		api:     api,
		store:   store,
		cruises: cruises,
		live:    live,
		logger:  logger,
	}
}

// StartSession checks eligibility, creates the backend session and loads the
// first pricing snapshot.
func (s *Service) StartSession(ctx context.Context, in StartSessionInput) (*models.BookingResponse, error) {
	if !in.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, in.Category)
	}
	if err := validatePassengers(in.Passengers); err != nil {
		return nil, err
	}
	decoded, ok := slug.DecodeSlug(in.CruiseSlug)
	if !ok {
		return nil, cruise.ErrNotFound
	}
	lookup, err := s.cruises.Lookup(ctx, in.CruiseSlug, decoded.CruiseID)
	if err != nil {
		return nil, err
	}
	if lookup.Limited || !s.live.IsEligible(lookup.Cruise.CruiseLineID) {
		return nil, ErrNotEligible
	}

	now := time.Now().UTC()
	sess := &models.BookingSession{
		ID:           uuid.New().String(),
		CruiseID:     lookup.Cruise.ID,
		CruiseLineID: lookup.Cruise.CruiseLineID,
		Category:     in.Category,
		Passengers:   in.Passengers,
		State:        models.StateIdle,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := Transition(sess, models.StateSessionCreating); err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, sess); err != nil {
		return nil, err
	}
	s.logger.Info("booking session started",
		zap.String("sessionId", sess.ID),
		zap.Int("cruiseId", sess.CruiseID),
		zap.String("category", string(sess.Category)),
	)

	sess, err = s.createBackendSession(ctx, sess)
	if err != nil {
		return nil, err
	}
	return s.loadPricing(ctx, sess)
}

// RefreshPricing reloads live pricing, optionally for a new party. A party
// change or a session that never reached the backend opens a new backend
// session first.
func (s *Service) RefreshPricing(ctx context.Context, id string, passengers *models.Passengers) (*models.BookingResponse, error) {
	if passengers != nil {
		if err := validatePassengers(*passengers); err != nil {
			return nil, err
		}
	}

	needsSession := false
	sess, err := s.store.Update(ctx, id, func(sess *models.BookingSession) error {
		needsSession = sess.BackendSessionID == ""
		if passengers != nil && !samePassengers(sess.Passengers, *passengers) {
			sess.Passengers = *passengers
			needsSession = true
		}
		next := models.StatePricingLoading
		if needsSession && sess.State == models.StateFailed {
			next = models.StateSessionCreating
		}
		return Transition(sess, next)
	})
	if err != nil {
		return nil, err
	}

	if needsSession {
		if sess, err = s.createBackendSession(ctx, sess); err != nil {
			return nil, err
		}
	}
	return s.loadPricing(ctx, sess)
}

// SelectRateCode changes the rate code cabins are priced with. An empty code
// clears the selection.
func (s *Service) SelectRateCode(ctx context.Context, id, rateCode string) (*models.BookingResponse, error) {
	rateCode = strings.TrimSpace(rateCode)
	sess, err := s.store.Update(ctx, id, func(sess *models.BookingSession) error {
		if sess.State != models.StatePricingReady {
			return fmt.Errorf("%w: cannot select rate code while %s", ErrInvalidTransition, sess.State)
		}
		if rateCode != "" && !knownRateCode(sess, rateCode) {
			return fmt.Errorf("%w: %s", ErrUnknownRateCode, rateCode)
		}
		sess.SelectedRateCode = rateCode
		return nil
	})
	if err != nil {
		return nil, err
	}
	return respond(sess), nil
}

// Reserve holds the cabin identified by resultNo at the currently selected
// rate.
func (s *Service) Reserve(ctx context.Context, id, resultNo string) (*models.BookingResponse, error) {
	var req backend.SelectCabinRequest
	var cabinCode string

	sess, err := s.store.Update(ctx, id, func(sess *models.BookingSession) error {
		if !CanTransition(sess.State, models.StateReserving) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, sess.State, models.StateReserving)
		}
		cabin, ok := findCabin(sess.Cabins, resultNo)
		if !ok {
			return fmt.Errorf("%w: %s", ErrCabinNotFound, resultNo)
		}
		sel := pricing.SelectRatePrice(cabin, sess.SelectedRateCode)
		cabinCode = cabin.Code
		req = backend.SelectCabinRequest{
			SessionID: sess.BackendSessionID,
			CruiseID:  sess.CruiseID,
			ResultNo:  sel.ResultNo,
			GradeNo:   sel.GradeNo,
			RateCode:  sel.RateCode,
			CabinCode: cabin.Code,
		}
		return Transition(sess, models.StateReserving)
	})
	if err != nil {
		return nil, err
	}

	res, err := s.api.SelectCabin(ctx, req)
	if err != nil {
		return nil, s.fail(ctx, sess, "Unable to reserve this cabin. Please try again.", err)
	}
	if res == nil {
		res = &models.Reservation{}
	}
	if res.CabinCode == "" {
		res.CabinCode = cabinCode
	}
	if res.ResultNo == "" {
		res.ResultNo = req.ResultNo
	}
	if res.GradeNo == "" {
		res.GradeNo = req.GradeNo
	}
	if res.RateCode == "" {
		res.RateCode = req.RateCode
	}
	if res.ReservedAt.IsZero() {
		res.ReservedAt = time.Now().UTC()
	}

	sess, err = s.store.Update(context.WithoutCancel(ctx), id, func(sess *models.BookingSession) error {
		sess.Reservation = res
		return Transition(sess, models.StateReserved)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("cabin reserved",
		zap.String("sessionId", sess.ID),
		zap.String("cabinCode", res.CabinCode),
		zap.String("rateCode", res.RateCode),
	)
	return respond(sess), nil
}

// UpdateFlag switches the backend session between hold and pay-now. A
// failure is recorded on the session but leaves its state unchanged.
func (s *Service) UpdateFlag(ctx context.Context, id string, hold bool) (*models.BookingResponse, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.BackendSessionID == "" || InFlight(sess.State) {
		return nil, fmt.Errorf("%w: cannot update flag while %s", ErrInvalidTransition, sess.State)
	}

	callErr := s.api.UpdateSessionFlag(ctx, sess.BackendSessionID, hold)
	sess, err = s.store.Update(context.WithoutCancel(ctx), id, func(sess *models.BookingSession) error {
		if callErr != nil {
			sess.LastError = "Unable to update your booking preference. Please try again."
			return nil
		}
		sess.Hold = hold
		sess.LastError = ""
		return nil
	})
	if err != nil {
		return nil, err
	}
	if callErr != nil {
		s.logger.Warn("session flag update failed", zap.String("sessionId", id), zap.Error(callErr))
		return nil, fmt.Errorf("%w: %v", ErrActionFailed, callErr)
	}
	return respond(sess), nil
}

// Get returns the session with its cabins priced for the current selection.
func (s *Service) Get(ctx context.Context, id string) (*models.BookingResponse, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return respond(sess), nil
}

// Cancel drops the session. Sessions with a call in flight cannot be
// cancelled.
func (s *Service) Cancel(ctx context.Context, id string) error {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if InFlight(sess.State) {
		return fmt.Errorf("%w: cannot cancel while %s", ErrInvalidTransition, sess.State)
	}
	return s.store.Delete(ctx, id)
}

func (s *Service) createBackendSession(ctx context.Context, sess *models.BookingSession) (*models.BookingSession, error) {
	backendID, err := s.api.CreateBookingSession(ctx, backend.SessionRequest{
		CruiseID:   sess.CruiseID,
		Passengers: sess.Passengers,
	})
	if err != nil {
		return nil, s.fail(ctx, sess, "Unable to start a booking session. Please try again.", err)
	}
	return s.store.Update(context.WithoutCancel(ctx), sess.ID, func(sess *models.BookingSession) error {
		sess.BackendSessionID = backendID
		sess.Cabins = nil
		sess.RateCodes = nil
		sess.Reservation = nil
		if sess.State == models.StatePricingLoading {
			return nil
		}
		return Transition(sess, models.StatePricingLoading)
	})
}

func (s *Service) loadPricing(ctx context.Context, sess *models.BookingSession) (*models.BookingResponse, error) {
	live, err := s.api.GetLivePricing(ctx, sess.BackendSessionID, sess.CruiseID, sess.Category)
	if err != nil {
		return nil, s.fail(ctx, sess, "Unable to load live pricing. Please try again.", err)
	}
	if live == nil {
		live = &models.LivePricing{}
	}

	sess, err = s.store.Update(context.WithoutCancel(ctx), sess.ID, func(sess *models.BookingSession) error {
		sess.Cabins = live.Cabins
		sess.RateCodes = live.RateCodes
		if sess.SelectedRateCode != "" && !knownRateCode(sess, sess.SelectedRateCode) {
			sess.SelectedRateCode = ""
		}
		return Transition(sess, models.StatePricingReady)
	})
	if err != nil {
		return nil, err
	}
	return respond(sess), nil
}

// fail moves the session to failed with a user-facing message and returns
// ErrActionFailed wrapping cause. The write outlives the caller's context so
// a dropped request cannot leave the session in a loading state.
func (s *Service) fail(ctx context.Context, sess *models.BookingSession, message string, cause error) error {
	s.logger.Warn("booking action failed",
		zap.String("sessionId", sess.ID),
		zap.String("state", string(sess.State)),
		zap.Error(cause),
	)
	_, err := s.store.Update(context.WithoutCancel(ctx), sess.ID, func(sess *models.BookingSession) error {
		if err := Transition(sess, models.StateFailed); err != nil {
			return err
		}
		sess.LastError = message
		return nil
	})
	if err != nil && !errors.Is(err, ErrSessionNotFound) {
		s.logger.Error("failed to record booking failure", zap.String("sessionId", sess.ID), zap.Error(err))
	}
	return fmt.Errorf("%w: %s: %v", ErrActionFailed, message, cause)
}

func respond(sess *models.BookingSession) *models.BookingResponse {
	return &models.BookingResponse{
		Session: *sess,
		Cabins:  pricing.PriceCabins(sess.Cabins, sess.SelectedRateCode),
	}
}

func validatePassengers(p models.Passengers) error {
	if p.Adults < 1 {
		return fmt.Errorf("%w: at least one adult is required", ErrInvalidInput)
	}
	if p.Children < 0 || p.Adults+p.Children > maxPassengers {
		return fmt.Errorf("%w: party must be between 1 and %d guests", ErrInvalidInput, maxPassengers)
	}
	if len(p.ChildAges) != p.Children {
		return fmt.Errorf("%w: expected %d child ages, got %d", ErrInvalidInput, p.Children, len(p.ChildAges))
	}
	for _, age := range p.ChildAges {
		if age < 0 || age > maxChildAge {
			return fmt.Errorf("%w: child age %d out of range", ErrInvalidInput, age)
		}
	}
	return nil
}

func samePassengers(a, b models.Passengers) bool {
	if a.Adults != b.Adults || a.Children != b.Children || len(a.ChildAges) != len(b.ChildAges) {
		return false
	}
	for i := range a.ChildAges {
		if a.ChildAges[i] != b.ChildAges[i] {
			return false
		}
	}
	return true
}

func knownRateCode(sess *models.BookingSession, code string) bool {
	for _, rc := range sess.RateCodes {
		if rc.Code == code {
			return true
		}
	}
	for _, c := range sess.Cabins {
		if _, ok := c.Rates[code]; ok {
			return true
		}
	}
	return false
}

func findCabin(cabins []models.LiveCabin, resultNo string) (models.LiveCabin, bool) {
	for _, c := range cabins {
		if c.ResultNo == resultNo {
			return c, true
		}
	}
	return models.LiveCabin{}, false
}
