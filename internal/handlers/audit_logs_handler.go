package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campusbook/appointment-scheduler/internal/httperr"
	"github.com/campusbook/appointment-scheduler/internal/httpresp"
	"github.com/campusbook/appointment-scheduler/internal/middleware"
	"github.com/campusbook/appointment-scheduler/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List returns the caller's own recent audit trail, newest first.
func (h *AuditLogsHandler) List(c *gin.Context) {
	user := middleware.UserFrom(c)

	var logs []models.AuditLog
	if err := h.db.
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Limit(100).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "Server error fetching audit logs")
		return
	}

	httpresp.OK(c, logs)
}
