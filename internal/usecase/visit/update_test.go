package visit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	domain "github.com/shasthoseba/chamber-booking/internal/domain/visit"
	"github.com/shasthoseba/chamber-booking/internal/httperr"
)

func TestUpdateVisit_OnlyBookerMayModify(t *testing.T) {
	repo := seededRepo()
	createUC := NewCreateVisit(repo, nopRecorder{})
	updateUC := NewUpdateVisit(repo, nopRecorder{})

	v, err := createUC.Execute(context.Background(), createInput(10))
	require.NoError(t, err)

	remarks := "bring previous reports"
	_, err = updateUC.Execute(context.Background(), UpdateVisitInput{
		RequesterID:    20,
		VisitID:        v.ID,
		BookingRemarks: &remarks,
	})
	require.True(t, httperr.IsBusiness(err, "not_booking_owner"))

	updated, err := updateUC.Execute(context.Background(), UpdateVisitInput{
		RequesterID:    10,
		VisitID:        v.ID,
		BookingRemarks: &remarks,
	})
	require.NoError(t, err)
	require.Equal(t, remarks, updated.BookingRemarks)
	require.Equal(t, string(domain.StatusScheduled), updated.VisitStatus)
}

func TestUpdateVisit_RescheduleChecksNewSlot(t *testing.T) {
	repo := seededRepo()
	createUC := NewCreateVisit(repo, nopRecorder{})
	updateUC := NewUpdateVisit(repo, nopRecorder{})

	first, err := createUC.Execute(context.Background(), createInput(10))
	require.NoError(t, err)

	in := createInput(10)
	in.AppointmentTime = "2024-06-01T11:00:00"
	second, err := createUC.Execute(context.Background(), in)
	require.NoError(t, err)

	// Moving onto an occupied slot fails.
	occupied := slotTime
	_, err = updateUC.Execute(context.Background(), UpdateVisitInput{
		RequesterID:     10,
		VisitID:         second.ID,
		AppointmentTime: &occupied,
	})
	require.True(t, httperr.IsBusiness(err, "slot_taken"))

	// Moving to a free slot succeeds and marks the visit rescheduled.
	free := "2024-06-01T12:00:00"
	moved, err := updateUC.Execute(context.Background(), UpdateVisitInput{
		RequesterID:     10,
		VisitID:         second.ID,
		AppointmentTime: &free,
	})
	require.NoError(t, err)
	require.Equal(t, string(domain.StatusRescheduled), moved.VisitStatus)
	require.Equal(t, 12, moved.AppointmentTime.Hour())

	_ = first
}

// The conflict query does not exclude the visit being moved, so a scheduled
// visit cannot be "rescheduled" onto its own current slot. Pinned so nobody
// changes it without noticing.
func TestUpdateVisit_SelfSlotCountsAsTaken(t *testing.T) {
	repo := seededRepo()
	createUC := NewCreateVisit(repo, nopRecorder{})
	updateUC := NewUpdateVisit(repo, nopRecorder{})

	v, err := createUC.Execute(context.Background(), createInput(10))
	require.NoError(t, err)

	same := slotTime
	_, err = updateUC.Execute(context.Background(), UpdateVisitInput{
		RequesterID:     10,
		VisitID:         v.ID,
		AppointmentTime: &same,
	})
	require.True(t, httperr.IsBusiness(err, "slot_taken"))
}

func TestUpdateVisit_FreeFormStatusOverwrite(t *testing.T) {
	repo := seededRepo()
	createUC := NewCreateVisit(repo, nopRecorder{})
	updateUC := NewUpdateVisit(repo, nopRecorder{})

	v, err := createUC.Execute(context.Background(), createInput(10))
	require.NoError(t, err)

	status := string(domain.StatusConfirmed)
	cost := 750.0
	updated, err := updateUC.Execute(context.Background(), UpdateVisitInput{
		RequesterID: 10,
		VisitID:     v.ID,
		VisitStatus: &status,
		VisitCost:   &cost,
	})
	require.NoError(t, err)
	require.Equal(t, "confirmed", updated.VisitStatus)
	require.Equal(t, 750.0, updated.VisitCost)
}

func TestUpdateVisit_NotFound(t *testing.T) {
	repo := seededRepo()
	updateUC := NewUpdateVisit(repo, nopRecorder{})

	_, err := updateUC.Execute(context.Background(), UpdateVisitInput{
		RequesterID: 10,
		VisitID:     99,
	})
	require.True(t, httperr.IsBusiness(err, "visit_not_found"))
}
