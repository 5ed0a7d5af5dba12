package schedule

import (
	"encoding/json"
	"time"

	"github.com/shasthoseba/chamber-booking/internal/models"
)

// Template is the conventional shape of Schedule.TimeSlots. The column is
// opaque, so decoding is lenient: anything that does not fit yields an empty
// template rather than an error.
type Template struct {
	Weekday    []string `json:"weekday"`
	Weekend    []string `json:"weekend"`
	Exceptions []string `json:"exceptions"`
}

func DecodeTemplate(raw models.JSONValue) Template {
	var t Template
	if len(raw.Raw) == 0 {
		return Template{}
	}
	if err := json.Unmarshal(raw.Raw, &t); err != nil {
		return Template{}
	}
	return t
}

const (
	dateLayout = "2006-01-02"
	slotLayout = "15:04"
)

// SlotsFor returns the template's time-of-day slots for a calendar date.
// Exception dates have no service at all.
func (t Template) SlotsFor(date time.Time) []string {
	day := date.Format(dateLayout)
	for _, ex := range t.Exceptions {
		if ex == day {
			return nil
		}
	}

	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return t.Weekend
	}
	return t.Weekday
}

// AvailableSlots filters the template slots for a date down to those not
// consumed by an already-booked appointment time. Slots the template holds
// in an unparseable form are skipped.
func AvailableSlots(t Template, date time.Time, taken []time.Time) []string {
	open := []string{}

	for _, s := range t.SlotsFor(date) {
		tod, err := time.Parse(slotLayout, s)
		if err != nil {
			continue
		}

		at := time.Date(
			date.Year(), date.Month(), date.Day(),
			tod.Hour(), tod.Minute(), 0, 0,
			date.Location(),
		)

		consumed := false
		for _, b := range taken {
			if b.Equal(at) {
				consumed = true
				break
			}
		}

		if !consumed {
			open = append(open, s)
		}
	}

	return open
}
