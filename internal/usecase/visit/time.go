package visit

import (
	"time"

	"github.com/shasthoseba/chamber-booking/internal/httperr"
)

// Appointment times arrive as ISO-8601, with or without an offset.
var appointmentLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func parseAppointmentTime(s string) (time.Time, error) {
	for _, layout := range appointmentLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, httperr.ErrBusiness("invalid_appointment_time")
}
