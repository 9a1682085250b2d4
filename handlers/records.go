package handlers

import (
	"errors"
	"fmt"
	"net/http"

	pickupRepo "ezero/database/repository/pickup"
	"ezero/services/booking"
	"ezero/services/receipt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecordsHandler serves the persisted booking history.
type RecordsHandler struct {
	Service  booking.WorkflowService
	Receipts receipt.Renderer
	Logger   *zap.Logger
}

// NewRecordsHandler builds a handler over the workflow service and renderer.
func NewRecordsHandler(svc booking.WorkflowService, renderer receipt.Renderer, logger *zap.Logger) *RecordsHandler {
	return &RecordsHandler{Service: svc, Receipts: renderer, Logger: logger}
}

// ListPickups returns stored bookings, most recent first.
func (h *RecordsHandler) ListPickups(c *gin.Context) {
	records, err := h.Service.ListPickups(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list pickups", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not load booking history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pickups": records})
}

// GetPickup returns one booking by id.
func (h *RecordsHandler) GetPickup(c *gin.Context) {
	record, err := h.Service.GetPickup(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondRecordError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": record})
}

// CancelPickup marks a booking cancelled.
func (h *RecordsHandler) CancelPickup(c *gin.Context) {
	record, err := h.Service.CancelPickup(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondRecordError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": record})
}

// DownloadReceipt streams a printable receipt for a booking. A rendering
// failure reports an error but the stored booking is unaffected.
func (h *RecordsHandler) DownloadReceipt(c *gin.Context) {
	record, err := h.Service.GetPickup(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondRecordError(c, h.Logger, err)
		return
	}
	doc, err := h.Receipts.Render(record)
	if err != nil {
		h.Logger.Error("failed to render receipt", zap.String("bookingId", record.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate receipt"})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s-receipt.txt", record.ID))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", doc)
}

func respondRecordError(c *gin.Context, logger *zap.Logger, err error) {
	var persistErr *booking.PersistenceError
	switch {
	case errors.Is(err, pickupRepo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
	case errors.As(err, &persistErr):
		logger.Error("pickup record access failure", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "booking history is temporarily unavailable"})
	default:
		logger.Error("pickup record failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong; please try again"})
	}
}
