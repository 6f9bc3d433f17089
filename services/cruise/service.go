// Package cruise loads cruise detail and listing pages from the backend,
// resolves per-category offers and caches lookups in Redis.
package cruise

import (
	"context"
	"errors"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"zipsea/models"
	"zipsea/services/backend"
	"zipsea/services/media"
	"zipsea/services/pricing"
	"zipsea/services/slug"
)

var ErrNotFound = errors.New("cruise not found")

const (
	shipImageWidth  = 1200
	cabinImageWidth = 600
	cardImageWidth  = 480
)

// Options carries the page settings injected from configuration.
type Options struct {
	LiveBooking       models.LiveBookingConfig
	OnboardCreditRate float64
	SiteURL           string
}

type Service struct {
	api    backend.Client
	cache  PageCache
	images media.Imager
	opts   Options
	logger *zap.Logger
	sfg    singleflight.Group
}

func NewService(api backend.Client, cache PageCache, images media.Imager, opts Options, logger *zap.Logger) *Service {
	if opts.OnboardCreditRate <= 0 {
		opts.OnboardCreditRate = pricing.DefaultOnboardCreditRate
	}
	return &Service{
		api:    api,
		cache:  cache,
		images: images,
		opts:   opts,
		logger: logger,
	}
}

// LiveBooking returns the injected live booking gate.
func (s *Service) LiveBooking() models.LiveBookingConfig {
	return s.opts.LiveBooking
}

// GetCruisePage resolves a cruise URL segment into a renderable page. Slugs
// that do not decode and cruises that no backend tier knows return
// ErrNotFound.
func (s *Service) GetCruisePage(ctx context.Context, rawSlug string) (*models.CruisePage, error) {
	decoded, ok := slug.DecodeSlug(rawSlug)
	if !ok {
		return nil, ErrNotFound
	}

	lookup, err := s.Lookup(ctx, rawSlug, decoded.CruiseID)
	if err != nil {
		return nil, err
	}
	return s.buildPage(lookup), nil
}

// Lookup returns the cruise for cruiseID from cache or the backend.
// Concurrent misses for one ID share a single backend walk, which runs
// detached from any one caller's cancellation.
func (s *Service) Lookup(ctx context.Context, rawSlug string, cruiseID int) (*Lookup, error) {
	key := strconv.Itoa(cruiseID)
	ch := s.sfg.DoChan(key, func() (interface{}, error) {
		fetchCtx := context.WithoutCancel(ctx)

		cached, err := s.cache.Get(fetchCtx, cruiseID)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			s.logger.Warn("cruise cache get failed", zap.Int("cruiseId", cruiseID), zap.Error(err))
		}

		lookup, err := s.fetch(fetchCtx, rawSlug, cruiseID)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(fetchCtx, cruiseID, lookup); err != nil {
			s.logger.Warn("cruise cache set failed", zap.Int("cruiseId", cruiseID), zap.Error(err))
		}
		return lookup, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Lookup), nil
	}
}

// fetch walks comprehensive -> slug -> basic. Any tier error falls through
// to the next tier.
func (s *Service) fetch(ctx context.Context, rawSlug string, cruiseID int) (*Lookup, error) {
	log := s.logger.With(zap.Int("cruiseId", cruiseID))

	c, err := s.api.GetComprehensiveCruise(ctx, cruiseID)
	if err == nil && c != nil {
		return &Lookup{Cruise: *c}, nil
	}
	log.Debug("comprehensive lookup failed", zap.Error(err))

	c, err = s.api.GetCruiseBySlug(ctx, rawSlug)
	if err == nil && c != nil {
		return &Lookup{Cruise: *c}, nil
	}
	log.Debug("slug lookup failed", zap.String("slug", rawSlug), zap.Error(err))

	c, err = s.api.GetBasicCruise(ctx, cruiseID)
	if err == nil && c != nil {
		log.Info("serving limited cruise data")
		return &Lookup{Cruise: *c, Limited: true}, nil
	}
	if err != nil && !errors.Is(err, backend.ErrNotFound) {
		log.Warn("all cruise lookups failed", zap.Error(err))
	}
	return nil, ErrNotFound
}

// Invalidate drops the cached lookup for a cruise.
func (s *Service) Invalidate(ctx context.Context, cruiseID int) error {
	return s.cache.Delete(ctx, cruiseID)
}

func (s *Service) buildPage(lookup *Lookup) *models.CruisePage {
	c := lookup.Cruise
	c.ShipImageURL = s.imageURL(c.ShipImageURL, shipImageWidth)

	page := &models.CruisePage{
		Cruise:       c,
		Limited:      lookup.Limited,
		LiveBookable: !lookup.Limited && s.opts.LiveBooking.IsEligible(c.CruiseLineID),
		CanonicalURL: s.opts.SiteURL + slug.CruisePath(c.ShipName, c.SailingDate, c.ID),
	}
	if lookup.Limited {
		return page
	}

	offers := pricing.ResolveAll(c.Pricing)
	for _, category := range models.CabinCategories {
		offer := offers[category]
		card := models.CategoryOffer{
			Category:      category,
			Label:         category.Label(),
			Offer:         offer,
			OnboardCredit: pricing.OnboardCredit(offer.Price, s.opts.OnboardCreditRate),
		}
		if offer.Description != nil {
			card.ShortDescription = pricing.TruncateDescription(*offer.Description)
		}
		if offer.Image != nil {
			card.ImageURL = s.imageURL(*offer.Image, cabinImageWidth)
		}
		page.Offers = append(page.Offers, card)
	}
	return page
}

func (s *Service) imageURL(src string, width int) string {
	if s.images == nil || src == "" {
		return src
	}
	return s.images.URL(src, width)
}
