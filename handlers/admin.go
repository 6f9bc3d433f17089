package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"zipsea/utils"
)

// AdminHandler encapsulates staff-only operations.
type AdminHandler struct {
	Quotes  QuoteService
	Cruises CruiseCache
}

func NewAdminHandler(qs QuoteService, cc CruiseCache) *AdminHandler {
	return &AdminHandler{Quotes: qs, Cruises: cc}
}

// ListQuotesHandler returns the most recent quote requests.
func (ah *AdminHandler) ListQuotesHandler(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	quotes, err := ah.Quotes.List(c.Request.Context(), limit)
	if err != nil {
		zap.L().Error("Failed to fetch quotes", zap.Error(err))
		handleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, quotes)
}

// InvalidateCruiseHandler drops the cached lookup for one cruise so the next
// page view refetches it from the backend.
func (ah *AdminHandler) InvalidateCruiseHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid cruise ID", c.Param("id"))
		return
	}
	if err := ah.Cruises.Invalidate(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"cruiseId": id, "invalidated": true})
}

// GetQuoteHandler returns one quote request by ID.
func (ah *AdminHandler) GetQuoteHandler(c *gin.Context) {
	q, err := ah.Quotes.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, q)
}
