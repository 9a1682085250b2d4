package handlers

import (
	"crypto/subtle"
	"net/http"
	"time"

	"ezero/config"
	"ezero/models"
	"ezero/services/booking"
	"ezero/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const adminTokenTTL = 12 * time.Hour

// AdminHandler covers the operational endpoints used by the pickup team.
type AdminHandler struct {
	Service booking.WorkflowService
	Logger  *zap.Logger
}

func NewAdminHandler(svc booking.WorkflowService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Service: svc, Logger: logger}
}

// Login checks the configured admin credential and issues a bearer token.
func (h *AdminHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password required"})
		return
	}

	emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(config.AppConfig.AdminEmail)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(config.AppConfig.AdminPassword)) == 1
	if config.AppConfig.AdminEmail == "" || !emailOK || !passOK {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := utils.GenerateAdminToken(req.Email, adminTokenTTL)
	if err != nil {
		h.Logger.Error("failed to generate admin token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "expiresIn": int(adminTokenTTL.Seconds())})
}

// ListAllPickups returns the stored booking history for the ops dashboard.
func (h *AdminHandler) ListAllPickups(c *gin.Context) {
	records, err := h.Service.ListPickups(c.Request.Context())
	if err != nil {
		respondRecordError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pickups": records, "count": len(records)})
}

// UpdateStatus moves a booking through its fulfilment lifecycle.
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status required"})
		return
	}

	status := models.BookingStatus(req.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown booking status", "status": req.Status})
		return
	}

	if err := h.Service.UpdatePickupStatus(c.Request.Context(), c.Param("id"), status); err != nil {
		respondRecordError(c, h.Logger, err)
		return
	}

	h.Logger.Info("booking status updated",
		zap.String("bookingId", c.Param("id")),
		zap.String("status", req.Status),
		zap.String("admin", c.GetString("adminEmail")))
	c.JSON(http.StatusOK, gin.H{"message": "status updated", "status": req.Status})
}
