package dto

import (
	"time"

	"github.com/campusbook/appointment-scheduler/internal/models"
	"github.com/campusbook/appointment-scheduler/internal/timeutil"
)

// AppointmentView is an appointment enriched with the derived start instant
// (date merged with startTime, seconds zeroed).
type AppointmentView struct {
	models.Appointment
	AppointmentDateTime *time.Time `json:"appointmentDateTime"`
}

func NewAppointmentView(ap models.Appointment) AppointmentView {
	view := AppointmentView{Appointment: ap}
	if dt, err := timeutil.MergeDateTime(ap.Date, ap.StartTime); err == nil {
		view.AppointmentDateTime = &dt
	}
	return view
}

func NewAppointmentViews(aps []models.Appointment) []AppointmentView {
	out := make([]AppointmentView, 0, len(aps))
	for _, ap := range aps {
		out = append(out, NewAppointmentView(ap))
	}
	return out
}
