package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zipsea/models"
	"zipsea/services/booking"
	"zipsea/utils"
)

// BookingHandler exposes the live booking flow.
type BookingHandler struct {
	Service BookingService
}

func NewBookingHandler(bs BookingService) *BookingHandler {
	return &BookingHandler{Service: bs}
}

// StartSession handles POST /api/booking/sessions.
func (h *BookingHandler) StartSession(c *gin.Context) {
	var in booking.StartSessionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		bindError(c, err)
		return
	}
	resp, err := h.Service.StartSession(c.Request.Context(), in)
	h.respond(c, http.StatusCreated, resp, err)
}

// GetSession handles GET /api/booking/sessions/:id.
func (h *BookingHandler) GetSession(c *gin.Context) {
	resp, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	h.respond(c, http.StatusOK, resp, err)
}

// UpdatePassengers handles PUT /api/booking/sessions/:id/passengers. An
// empty body reloads pricing for the current party.
func (h *BookingHandler) UpdatePassengers(c *gin.Context) {
	var body PassengersBody
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			bindError(c, err)
			return
		}
	}
	resp, err := h.Service.RefreshPricing(c.Request.Context(), c.Param("id"), body.Passengers)
	h.respond(c, http.StatusOK, resp, err)
}

// SelectRateCode handles PUT /api/booking/sessions/:id/rate-code.
func (h *BookingHandler) SelectRateCode(c *gin.Context) {
	var body RateCodeBody
	if err := c.ShouldBindJSON(&body); err != nil {
		bindError(c, err)
		return
	}
	resp, err := h.Service.SelectRateCode(c.Request.Context(), c.Param("id"), body.RateCode)
	h.respond(c, http.StatusOK, resp, err)
}

// Reserve handles POST /api/booking/sessions/:id/reserve.
func (h *BookingHandler) Reserve(c *gin.Context) {
	var body ReserveBody
	if err := c.ShouldBindJSON(&body); err != nil {
		bindError(c, err)
		return
	}
	resp, err := h.Service.Reserve(c.Request.Context(), c.Param("id"), body.ResultNo)
	h.respond(c, http.StatusOK, resp, err)
}

// UpdateFlag handles PUT /api/booking/sessions/:id/flag.
func (h *BookingHandler) UpdateFlag(c *gin.Context) {
	var body FlagBody
	if err := c.ShouldBindJSON(&body); err != nil {
		bindError(c, err)
		return
	}
	resp, err := h.Service.UpdateFlag(c.Request.Context(), c.Param("id"), *body.Hold)
	h.respond(c, http.StatusOK, resp, err)
}

// CancelSession handles DELETE /api/booking/sessions/:id.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Service.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) respond(c *gin.Context, status int, resp *models.BookingResponse, err error) {
	if err != nil {
		handleError(c, err)
		return
	}
	utils.JSONSuccess(c, status, resp)
}
