package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zipsea/models"
	"zipsea/services/content"
)

type LegalHandler struct {
	Legal content.LegalService
}

func NewLegalHandler(ls content.LegalService) *LegalHandler {
	return &LegalHandler{Legal: ls}
}

// LegalPageHandler renders GET /legal/:id.
func (h *LegalHandler) LegalPageHandler(c *gin.Context) {
	section, err := h.Legal.Section(c.Param("id"))
	if err != nil {
		renderNotFound(c, "Page Not Found", "That legal document does not exist.")
		return
	}
	c.HTML(http.StatusOK, "legal.html", gin.H{
		"Title":    section.Title,
		"Section":  section,
		"Sections": h.Legal.Sections(),
	})
}

// GetLegalSectionsHandler returns GET /api/legal.
func (h *LegalHandler) GetLegalSectionsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.Envelope[[]models.LegalSection]{Success: true, Data: h.Legal.Sections()})
}
