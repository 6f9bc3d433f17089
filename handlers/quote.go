package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"zipsea/utils"
)

type QuoteHandler struct {
	Quotes QuoteService
}

func NewQuoteHandler(qs QuoteService) *QuoteHandler {
	return &QuoteHandler{Quotes: qs}
}

// SubmitQuoteHandler handles POST /api/quotes. The submission succeeds even
// when the staff notification could not be queued.
func (h *QuoteHandler) SubmitQuoteHandler(c *gin.Context) {
	var body QuoteBody
	if err := c.ShouldBindJSON(&body); err != nil {
		bindError(c, err)
		return
	}
	receipt, err := h.Quotes.Submit(c.Request.Context(), body.toModel())
	if err != nil {
		handleError(c, err)
		return
	}
	if !receipt.NotificationQueued {
		getLogger(c).Warn("Quote stored without notification", zap.String("reference", receipt.Reference))
	}
	utils.JSONSuccess(c, http.StatusCreated, receipt)
}
