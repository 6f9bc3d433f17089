package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"zipsea/models"
	"zipsea/services/backend"
	"zipsea/services/cruise"
)

// CruiseHandler serves the listing and cruise detail pages and their JSON
// counterparts.
type CruiseHandler struct {
	Cruises CruiseService
	Feed    FeedService
}

func NewCruiseHandler(cs CruiseService, fs FeedService) *CruiseHandler {
	return &CruiseHandler{Cruises: cs, Feed: fs}
}

// CruisePageHandler renders GET /cruise/:slug.
func (h *CruiseHandler) CruisePageHandler(c *gin.Context) {
	page, err := h.Cruises.GetCruisePage(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if !isNotFound(err) {
			getLogger(c).Error("Failed to load cruise page", zap.String("slug", c.Param("slug")), zap.Error(err))
		}
		renderNotFound(c, "Cruise Not Found", "We couldn't find that sailing. It may have departed or been removed.")
		return
	}
	c.HTML(http.StatusOK, "cruise.html", gin.H{
		"Title":     page.Cruise.Name,
		"Canonical": page.CanonicalURL,
		"Page":      page,
	})
}

// GetCruiseHandler returns GET /api/cruises/:slug.
func (h *CruiseHandler) GetCruiseHandler(c *gin.Context) {
	page, err := h.Cruises.GetCruisePage(c.Request.Context(), c.Param("slug"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Envelope[*models.CruisePage]{Success: true, Data: page})
}

// HomeHandler renders GET / with the featured deal rows. A feed failure
// still renders the page without rows.
func (h *CruiseHandler) HomeHandler(c *gin.Context) {
	blocks, err := h.Feed.Blocks(c.Request.Context())
	if err != nil {
		getLogger(c).Warn("Failed to load featured deals", zap.Error(err))
	}
	c.HTML(http.StatusOK, "home.html", gin.H{"Title": "Cruise deals", "Blocks": blocks})
}

// ListingPageHandler renders GET /cruises.
func (h *CruiseHandler) ListingPageHandler(c *gin.Context) {
	filter := parseFilter(c)
	cards, err := h.Cruises.ListCruises(c.Request.Context(), filter)
	if err != nil {
		getLogger(c).Error("Failed to list cruises", zap.Error(err))
	}
	title := "All cruises"
	if filter.Category != "" {
		title = filter.Category.Label() + " cruises"
	}
	c.HTML(http.StatusOK, "listing.html", gin.H{
		"Title":   title,
		"Cards":   cards,
		"NextURL": nextPageURL(c, filter, len(cards)),
	})
}

// ListCruisesHandler returns GET /api/cruises.
func (h *CruiseHandler) ListCruisesHandler(c *gin.Context) {
	cards, err := h.Cruises.ListCruises(c.Request.Context(), parseFilter(c))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Envelope[[]models.CruiseCard]{Success: true, Data: cards})
}

// NotFoundHandler renders unknown routes as a page.
func NotFoundHandler(c *gin.Context) {
	renderNotFound(c, "Page Not Found", "The page you were looking for does not exist.")
}

func renderNotFound(c *gin.Context, title, message string) {
	c.HTML(http.StatusNotFound, "not_found.html", gin.H{
		"Title":   title,
		"Message": message,
		"BackURL": "/cruises",
	})
}

func isNotFound(err error) bool {
	return errors.Is(err, cruise.ErrNotFound) || errors.Is(err, backend.ErrNotFound)
}

// parseFilter reads category, cruiseLine, limit and offset query params.
// Unknown categories and malformed numbers are ignored.
func parseFilter(c *gin.Context) models.CruiseFilter {
	var f models.CruiseFilter
	if cat := models.CabinCategory(c.Query("category")); cat.Valid() {
		f.Category = cat
	}
	f.CruiseLineID, _ = strconv.Atoi(c.Query("cruiseLine"))
	f.Limit, _ = strconv.Atoi(c.Query("limit"))
	f.Offset, _ = strconv.Atoi(c.Query("offset"))
	return f
}

func nextPageURL(c *gin.Context, f models.CruiseFilter, got int) string {
	limit := f.Limit
	if limit <= 0 {
		limit = 24
	}
	if got < limit {
		return ""
	}
	q := url.Values{}
	for k, v := range c.Request.URL.Query() {
		q[k] = v
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}
	q.Set("offset", strconv.Itoa(offset+got))
	return "/cruises?" + q.Encode()
}
