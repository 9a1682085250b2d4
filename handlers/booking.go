package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	pickupRepo "ezero/database/repository/pickup"
	"ezero/middleware"
	"ezero/services/booking"
	"ezero/services/geocode"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the multi-step booking workflow over HTTP.
type BookingHandler struct {
	Service booking.WorkflowService
	Geo     geocode.Provider
	Logger  *zap.Logger
}

// NewBookingHandler builds a handler around the workflow service.
func NewBookingHandler(svc booking.WorkflowService, geo geocode.Provider, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Geo: geo, Logger: logger}
}

// StartSession creates a new booking draft session. The city field is
// prefilled from IP geolocation when available.
func (h *BookingHandler) StartSession(c *gin.Context) {
	view, err := h.Service.StartSession(c.Request.Context(), c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		h.respondError(c, err)
		return
	}

	if geoVal, ok := c.Get("geoLocation"); ok {
		if geo, ok := geoVal.(*middleware.GeoLocation); ok && geo.City != "" {
			view.Draft.Contact.City = geo.City
		}
	}

	c.JSON(http.StatusOK, view)
}

// GetSession returns the current draft state.
func (h *BookingHandler) GetSession(c *gin.Context) {
	view, err := h.Service.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Advance validates the current step with the submitted payload and moves the
// draft forward.
func (h *BookingHandler) Advance(c *gin.Context) {
	var input booking.StepInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	view, err := h.Service.Advance(c.Request.Context(), c.Param("sessionID"), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Retreat steps the draft back one step.
func (h *BookingHandler) Retreat(c *gin.Context) {
	view, err := h.Service.Retreat(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// AttachImage accepts a multipart item photo for the draft.
func (h *BookingHandler) AttachImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file required", "details": err.Error()})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image", "details": err.Error()})
		return
	}

	view, err := h.Service.AttachImage(c.Request.Context(),
		c.Param("sessionID"), header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Submit finalizes the draft into a persisted pickup booking.
func (h *BookingHandler) Submit(c *gin.Context) {
	record, err := h.Service.Submit(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": record})
}

// ResetSession clears the draft back to the items step.
func (h *BookingHandler) ResetSession(c *gin.Context) {
	view, err := h.Service.Reset(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// CancelSession abandons the draft.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Service.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking session cancelled"})
}

// PrefillAddress reverse-geocodes coordinates into an address suggestion.
// Failures degrade to an empty suggestion with a warning; the customer can
// always type the address manually.
func (h *BookingHandler) PrefillAddress(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng query parameters required"})
		return
	}

	address, err := h.Geo.ReverseGeocode(c.Request.Context(), lat, lng)
	if err != nil {
		h.Logger.Warn("reverse geocode failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{
			"address": "",
			"warning": "could not determine address from location; please enter it manually",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"address": address})
}

// respondError maps workflow errors onto HTTP statuses.
func (h *BookingHandler) respondError(c *gin.Context, err error) {
	var valErr *booking.ValidationError
	var persistErr *booking.PersistenceError
	switch {
	case errors.As(err, &valErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": valErr.Fields})
	case errors.Is(err, booking.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
	case errors.Is(err, pickupRepo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
	case errors.Is(err, booking.ErrSubmitInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": "submission already in progress"})
	case errors.Is(err, booking.ErrNotAtReview), errors.Is(err, booking.ErrAlreadyAtReview):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &persistErr):
		h.Logger.Error("booking persistence failure", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not save your booking; please try again"})
	default:
		h.Logger.Error("booking workflow failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong; please try again"})
	}
}
