package visit

import (
	"time"

	"github.com/shasthoseba/chamber-booking/internal/models"
)

// ===============================
// Visit Status
// ===============================

type Status string

const (
	StatusScheduled   Status = "scheduled"
	StatusConfirmed   Status = "confirmed"
	StatusRescheduled Status = "rescheduled"
	StatusCancelled   Status = "cancelled"
	StatusCompleted   Status = "completed"
)

// SlotBlockingStatuses are the statuses that keep a
// (chamber, doctor, appointment_time) tuple occupied. Cancelled, completed
// and rescheduled visits release their slot.
func SlotBlockingStatuses() []string {
	return []string{string(StatusScheduled), string(StatusConfirmed)}
}

func InitialStatus() Status {
	return StatusScheduled
}

// ===============================
// Domain Actions
// ===============================

// Cancel is terminal; it always records a reason, even an empty one.
func Cancel(v *models.Visit, reason string) {
	v.VisitStatus = string(StatusCancelled)
	v.CancelReason = reason
}

// Reschedule moves the visit and marks it rescheduled. Callers must have
// checked the new slot first.
func Reschedule(v *models.Visit, newTime time.Time) {
	v.AppointmentTime = newTime
	v.VisitStatus = string(StatusRescheduled)
}

// Complete stores the prescription and closes the visit.
func Complete(v *models.Visit, prescription models.JSONValue) {
	v.VisitPrescription = prescription
	v.VisitStatus = string(StatusCompleted)
}
