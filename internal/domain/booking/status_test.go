package booking

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/campusbook/appointment-scheduler/internal/httperr"
	"github.com/campusbook/appointment-scheduler/internal/models"
)

func TestCanCancel(t *testing.T) {
	if err := CanCancel(StatusScheduled); err != nil {
		t.Errorf("CanCancel(scheduled) = %v, want nil", err)
	}
	if err := CanCancel(StatusCompleted); err != nil {
		t.Errorf("CanCancel(completed) = %v, want nil", err)
	}
	if err := CanCancel(StatusCancelled); !httperr.IsBusiness(err, "already_cancelled") {
		t.Errorf("CanCancel(cancelled) = %v, want already_cancelled", err)
	}
}

func TestCanSetStatus(t *testing.T) {
	if err := CanSetStatus(StatusScheduled); err != nil {
		t.Errorf("CanSetStatus(scheduled) = %v, want nil", err)
	}
	if err := CanSetStatus(StatusCompleted); err != nil {
		t.Errorf("CanSetStatus(completed) = %v, want nil", err)
	}
	if err := CanSetStatus(StatusCancelled); !httperr.IsBusiness(err, "invalid_status") {
		t.Errorf("CanSetStatus(cancelled) = %v, want invalid_status", err)
	}
	if err := CanSetStatus(Status("archived")); !httperr.IsBusiness(err, "invalid_status") {
		t.Errorf("CanSetStatus(archived) = %v, want invalid_status", err)
	}
}

func TestCancelAction(t *testing.T) {
	by := uuid.New()
	now := time.Now()
	ap := &models.Appointment{Status: string(StatusScheduled)}

	if err := Cancel(ap, by, now, "sick"); err != nil {
		t.Fatalf("Cancel returned %v", err)
	}

	if ap.Status != string(StatusCancelled) {
		t.Errorf("status = %q, want cancelled", ap.Status)
	}
	if ap.CancelledByID == nil || *ap.CancelledByID != by {
		t.Error("CancelledByID not recorded")
	}
	if ap.CancelledAt == nil || !ap.CancelledAt.Equal(now) {
		t.Error("CancelledAt not recorded")
	}
	if ap.CancelReason != "sick" {
		t.Errorf("CancelReason = %q", ap.CancelReason)
	}

	// cancelled is terminal
	if err := Cancel(ap, by, now, ""); err == nil {
		t.Error("second Cancel succeeded, want error")
	}
}

func TestClaimRelease(t *testing.T) {
	student := uuid.New()
	av := &models.Availability{}

	Claim(av, student)
	if !av.IsBooked || av.BookedByID == nil || *av.BookedByID != student {
		t.Errorf("Claim left availability in state %+v", av)
	}

	Release(av)
	if av.IsBooked || av.BookedByID != nil {
		t.Errorf("Release left availability in state %+v", av)
	}
}

func TestPrincipalParty(t *testing.T) {
	student := uuid.New()
	professor := uuid.New()
	stranger := uuid.New()

	ap := &models.Appointment{StudentID: student, ProfessorID: professor}

	cases := []struct {
		name  string
		p     Principal
		party bool
		owns  bool
	}{
		{"student party", Principal{UserID: student, Role: models.RoleStudent}, true, false},
		{"professor party", Principal{UserID: professor, Role: models.RoleProfessor}, true, true},
		{"stranger", Principal{UserID: stranger, Role: models.RoleStudent}, false, false},
		{"student id with professor role", Principal{UserID: student, Role: models.RoleProfessor}, true, false},
	}

	for _, tc := range cases {
		if got := tc.p.IsParty(ap); got != tc.party {
			t.Errorf("%s: IsParty = %v, want %v", tc.name, got, tc.party)
		}
		if got := tc.p.OwnsAppointment(ap); got != tc.owns {
			t.Errorf("%s: OwnsAppointment = %v, want %v", tc.name, got, tc.owns)
		}
	}
}
