package schedule

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/shasthoseba/chamber-booking/internal/models"
)

func rawValue(s string) models.JSONValue {
	return models.JSONValue{Raw: json.RawMessage(s)}
}

func TestDecodeTemplate(t *testing.T) {
	tpl := DecodeTemplate(rawValue(`{
		"weekday": ["09:00", "09:30"],
		"weekend": ["10:00"],
		"exceptions": ["2024-06-07"]
	}`))
	require.Equal(t, []string{"09:00", "09:30"}, tpl.Weekday)
	require.Equal(t, []string{"10:00"}, tpl.Weekend)
	require.Equal(t, []string{"2024-06-07"}, tpl.Exceptions)
}

func TestDecodeTemplate_Lenient(t *testing.T) {
	require.Equal(t, Template{}, DecodeTemplate(models.JSONValue{}))
	require.Equal(t, Template{}, DecodeTemplate(rawValue(`["09:00"]`)))
	require.Equal(t, Template{}, DecodeTemplate(rawValue(`not json`)))
}

func TestSlotsFor(t *testing.T) {
	tpl := Template{
		Weekday:    []string{"09:00", "09:30"},
		Weekend:    []string{"10:00"},
		Exceptions: []string{"2024-06-03"},
	}

	// 2024-06-04 is a Tuesday, 2024-06-01 a Saturday.
	require.Equal(t, []string{"09:00", "09:30"},
		tpl.SlotsFor(time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, []string{"10:00"},
		tpl.SlotsFor(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))

	// Exception dates have no service, whatever the weekday.
	require.Nil(t, tpl.SlotsFor(time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)))
}

func TestAvailableSlots(t *testing.T) {
	tpl := Template{Weekday: []string{"09:00", "09:30", "10:00"}}
	date := time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)

	taken := []time.Time{
		time.Date(2024, 6, 4, 9, 30, 0, 0, time.UTC),
	}
	require.Equal(t, []string{"09:00", "10:00"}, AvailableSlots(tpl, date, taken))

	// Bookings at other times do not consume template slots.
	elsewhere := []time.Time{
		time.Date(2024, 6, 4, 9, 15, 0, 0, time.UTC),
	}
	require.Equal(t, []string{"09:00", "09:30", "10:00"},
		AvailableSlots(tpl, date, elsewhere))
}

func TestAvailableSlots_SkipsMalformed(t *testing.T) {
	tpl := Template{Weekday: []string{"09:00", "9 am", "09:30"}}
	date := time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)
	require.Equal(t, []string{"09:00", "09:30"}, AvailableSlots(tpl, date, nil))
}
