package handlers

import (
	"net/http"

	"ezero/models"
	"ezero/services/booking"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the fixed item/service/slot schedules and the
// stateless price calculator.
type CatalogHandler struct {
	Pricing booking.PricingConfig
}

// NewCatalogHandler builds a catalog handler with the active pricing schedule.
func NewCatalogHandler(pricing booking.PricingConfig) *CatalogHandler {
	return &CatalogHandler{Pricing: pricing}
}

func (h *CatalogHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": models.ItemCategories()})
}

func (h *CatalogHandler) GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": models.AddonServices()})
}

func (h *CatalogHandler) GetTimeSlots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"timeSlots": models.PickupTimeSlots()})
}

// Quote computes an estimate for an arbitrary selection without a session.
// This backs the instant price calculator widget.
func (h *CatalogHandler) Quote(c *gin.Context) {
	var input struct {
		Items    map[string]int `json:"items"`
		Services []string       `json:"services"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"pricing": booking.ComputePricing(input.Items, input.Services, h.Pricing),
		"points":  booking.EstimatePoints(input.Items),
	})
}
