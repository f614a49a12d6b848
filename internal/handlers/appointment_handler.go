package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/campusbook/appointment-scheduler/internal/httperr"
	"github.com/campusbook/appointment-scheduler/internal/httpresp"
	"github.com/campusbook/appointment-scheduler/internal/middleware"
	ucBooking "github.com/campusbook/appointment-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book         *ucBooking.BookAppointment
	cancel       *ucBooking.CancelAppointment
	updateStatus *ucBooking.UpdateAppointmentStatus
	list         *ucBooking.ListAppointments
	get          *ucBooking.GetAppointment
}

func NewAppointmentHandler(
	book *ucBooking.BookAppointment,
	cancel *ucBooking.CancelAppointment,
	updateStatus *ucBooking.UpdateAppointmentStatus,
	list *ucBooking.ListAppointments,
	get *ucBooking.GetAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:         book,
		cancel:       cancel,
		updateStatus: updateStatus,
		list:         list,
		get:          get,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	AvailabilityID string `json:"availabilityId"`
	Notes          string `json:"notes"`
}

type CancelAppointmentRequest struct {
	CancelReason string `json:"cancelReason"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	if req.AvailabilityID == "" {
		httperr.BadRequest(c, "Availability ID is required")
		return
	}

	view, err := h.book.Execute(
		c.Request.Context(),
		middleware.PrincipalFrom(c),
		ucBooking.BookInput{
			AvailabilityID: req.AvailabilityID,
			Notes:          req.Notes,
		},
	)
	if err != nil {
		httperr.WriteError(c, err, "Server error booking appointment")
		return
	}

	httpresp.Created(c, "Appointment booked successfully", view)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	views, err := h.list.Execute(
		c.Request.Context(),
		middleware.PrincipalFrom(c),
		c.Query("status"),
	)
	if err != nil {
		httperr.WriteError(c, err, "Server error fetching appointments")
		return
	}

	httpresp.OK(c, views)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	view, err := h.get.Execute(
		c.Request.Context(),
		middleware.PrincipalFrom(c),
		c.Param("appointmentId"),
	)
	if err != nil {
		httperr.WriteError(c, err, "Server error fetching appointment details")
		return
	}

	httpresp.OK(c, view)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	var req CancelAppointmentRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, "Invalid request body")
			return
		}
	}

	view, err := h.cancel.Execute(
		c.Request.Context(),
		middleware.PrincipalFrom(c),
		c.Param("appointmentId"),
		req.CancelReason,
	)
	if err != nil {
		httperr.WriteError(c, err, "Server error cancelling appointment")
		return
	}

	httpresp.OKMessage(c, "Appointment cancelled successfully", view)
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	view, err := h.updateStatus.Execute(
		c.Request.Context(),
		middleware.PrincipalFrom(c),
		c.Param("appointmentId"),
		req.Status,
	)
	if err != nil {
		httperr.WriteError(c, err, "Server error updating appointment status")
		return
	}

	httpresp.OKMessage(c, "Appointment status updated successfully", view)
}
