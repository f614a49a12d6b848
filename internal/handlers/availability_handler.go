package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campusbook/appointment-scheduler/internal/httperr"
	"github.com/campusbook/appointment-scheduler/internal/httpresp"
	"github.com/campusbook/appointment-scheduler/internal/middleware"
	"github.com/campusbook/appointment-scheduler/internal/models"
	"github.com/campusbook/appointment-scheduler/internal/timeutil"
)

const defaultSlotDuration = 60

type AvailabilityHandler struct {
	db *gorm.DB
}

func NewAvailabilityHandler(db *gorm.DB) *AvailabilityHandler {
	return &AvailabilityHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAvailabilityRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Duration  int    `json:"duration"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AvailabilityHandler) Create(c *gin.Context) {
	user := middleware.UserFrom(c)

	var req CreateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	if req.Date == "" || req.StartTime == "" || req.EndTime == "" {
		httperr.BadRequest(c, "Date, start time, and end time are required")
		return
	}

	date, err := timeutil.ParseDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	// Date-only comparison: slots for today are still allowed.
	if date.Before(timeutil.StartOfDay(time.Now().UTC())) {
		httperr.BadRequest(c, "Cannot create availability for past dates")
		return
	}

	if !timeutil.IsValidClock(req.StartTime) || !timeutil.IsValidClock(req.EndTime) {
		httperr.BadRequest(c, "Invalid time format. Use HH:MM format")
		return
	}

	startOffset, _ := timeutil.MinuteOffset(req.StartTime)
	endOffset, _ := timeutil.MinuteOffset(req.EndTime)
	if endOffset <= startOffset {
		httperr.BadRequest(c, "End time must be after start time")
		return
	}

	var count int64
	if err := h.db.Model(&models.Availability{}).
		Where(
			"professor_id = ? AND date = ? AND start_time = ? AND end_time = ?",
			user.ID, date, req.StartTime, req.EndTime,
		).
		Count(&count).Error; err != nil {
		httperr.Internal(c, "Server error creating availability")
		return
	}
	if count > 0 {
		httperr.BadRequest(c, "Availability already exists for this time slot")
		return
	}

	duration := req.Duration
	if duration <= 0 {
		duration = defaultSlotDuration
	}

	av := models.Availability{
		ProfessorID: user.ID,
		Date:        date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Duration:    duration,
	}

	if err := h.db.Create(&av).Error; err != nil {
		httperr.Internal(c, "Server error creating availability")
		return
	}

	av.Professor = *user
	httpresp.Created(c, "Availability created successfully", av)
}

// ======================================================
// LIST
// ======================================================

func (h *AvailabilityHandler) listForProfessor(c *gin.Context, professorID uuid.UUID) {
	var slots []models.Availability
	if err := h.db.
		Preload("Professor").
		Preload("BookedBy").
		Where("professor_id = ? AND date >= ?", professorID, time.Now().UTC()).
		Order("date ASC, start_time ASC").
		Find(&slots).Error; err != nil {
		httperr.Internal(c, "Server error fetching availability")
		return
	}

	httpresp.OK(c, slots)
}

func (h *AvailabilityHandler) ListMine(c *gin.Context) {
	user := middleware.UserFrom(c)
	h.listForProfessor(c, user.ID)
}

func (h *AvailabilityHandler) ListByProfessor(c *gin.Context) {
	professorID, ok := h.resolveProfessor(c)
	if !ok {
		return
	}
	h.listForProfessor(c, professorID)
}

func (h *AvailabilityHandler) ListAvailable(c *gin.Context) {
	professorID, ok := h.resolveProfessor(c)
	if !ok {
		return
	}

	tx := h.db.
		Preload("Professor").
		Where("professor_id = ? AND is_booked = ?", professorID, false)

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := timeutil.ParseDate(dateStr)
		if err != nil {
			httperr.BadRequest(c, "Invalid date format. Use YYYY-MM-DD")
			return
		}
		tx = tx.Where("date >= ? AND date < ?", date, date.Add(24*time.Hour))
	} else {
		tx = tx.Where("date >= ?", time.Now().UTC())
	}

	var slots []models.Availability
	if err := tx.
		Order("date ASC, start_time ASC").
		Find(&slots).Error; err != nil {
		httperr.Internal(c, "Server error fetching available slots")
		return
	}

	httpresp.OK(c, slots)
}

// resolveProfessor loads the :professorId path param and verifies the target
// actually is a professor.
func (h *AvailabilityHandler) resolveProfessor(c *gin.Context) (uuid.UUID, bool) {
	professorID, err := uuid.Parse(c.Param("professorId"))
	if err != nil {
		httperr.NotFound(c, "Professor not found")
		return uuid.Nil, false
	}

	var professor models.User
	if err := h.db.Where("id = ?", professorID).First(&professor).Error; err != nil ||
		professor.Role != models.RoleProfessor {
		httperr.NotFound(c, "Professor not found")
		return uuid.Nil, false
	}

	return professorID, true
}

// ======================================================
// DELETE
// ======================================================

func (h *AvailabilityHandler) Delete(c *gin.Context) {
	user := middleware.UserFrom(c)

	availabilityID, err := uuid.Parse(c.Param("availabilityId"))
	if err != nil {
		httperr.NotFound(c, "Availability slot not found")
		return
	}

	var av models.Availability
	if err := h.db.
		Where("id = ? AND professor_id = ?", availabilityID, user.ID).
		First(&av).Error; err != nil {
		httperr.NotFound(c, "Availability slot not found")
		return
	}

	if av.IsBooked {
		httperr.BadRequest(c, "Cannot delete booked availability slot")
		return
	}

	if err := h.db.Delete(&av).Error; err != nil {
		httperr.Internal(c, "Server error deleting availability")
		return
	}

	httpresp.OKMessage(c, "Availability slot deleted successfully", nil)
}
