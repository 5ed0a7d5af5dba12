package visit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	domain "github.com/shasthoseba/chamber-booking/internal/domain/visit"
	"github.com/shasthoseba/chamber-booking/internal/httperr"
	"github.com/shasthoseba/chamber-booking/internal/models"
)

const slotTime = "2024-06-01T10:00:00"

func seededRepo() *fakeRepo {
	repo := newFakeRepo()
	repo.addDoctor(1)
	repo.addChamber(1)
	repo.addUser(models.User{ID: 10, IsPrimaryUser: true})
	return repo
}

func createInput(bookerID uint) CreateVisitInput {
	return CreateVisitInput{
		BookingUserID:   bookerID,
		ChamberID:       1,
		DoctorID:        1,
		AppointmentTime: slotTime,
	}
}

func TestCreateVisit_BooksForSelf(t *testing.T) {
	repo := seededRepo()
	uc := NewCreateVisit(repo, nopRecorder{})

	v, err := uc.Execute(context.Background(), createInput(10))
	require.NoError(t, err)

	require.Equal(t, string(domain.StatusScheduled), v.VisitStatus)
	require.Equal(t, uint(10), v.BookingUserID)
	require.Equal(t, uint(10), v.PatientUserID)
	require.Equal(t, 2024, v.AppointmentTime.Year())
}

func TestCreateVisit_SlotConflict(t *testing.T) {
	repo := seededRepo()
	uc := NewCreateVisit(repo, nopRecorder{})

	_, err := uc.Execute(context.Background(), createInput(10))
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), createInput(10))
	require.True(t, httperr.IsBusiness(err, "slot_taken"))
}

func TestCreateVisit_DifferentTupleIsFree(t *testing.T) {
	repo := seededRepo()
	repo.addDoctor(2)
	uc := NewCreateVisit(repo, nopRecorder{})

	_, err := uc.Execute(context.Background(), createInput(10))
	require.NoError(t, err)

	// Same chamber and time, different doctor.
	in := createInput(10)
	in.DoctorID = 2
	_, err = uc.Execute(context.Background(), in)
	require.NoError(t, err)

	// Same chamber and doctor, one minute later. No overlap window exists.
	in = createInput(10)
	in.AppointmentTime = "2024-06-01T10:01:00"
	_, err = uc.Execute(context.Background(), in)
	require.NoError(t, err)
}

func TestCreateVisit_CancelReleasesSlot(t *testing.T) {
	repo := seededRepo()
	createUC := NewCreateVisit(repo, nopRecorder{})
	cancelUC := NewCancelVisit(repo, nopRecorder{})

	v, err := createUC.Execute(context.Background(), createInput(10))
	require.NoError(t, err)

	_, err = createUC.Execute(context.Background(), createInput(10))
	require.True(t, httperr.IsBusiness(err, "slot_taken"))

	_, err = cancelUC.Execute(context.Background(), 10, v.ID, "can no longer attend")
	require.NoError(t, err)

	_, err = createUC.Execute(context.Background(), createInput(10))
	require.NoError(t, err)
}

func TestCreateVisit_DependentDelegation(t *testing.T) {
	repo := seededRepo()
	primary := uint(10)
	repo.addUser(models.User{ID: 11, IsPrimaryUser: false, PrimaryUserID: &primary})
	repo.addUser(models.User{ID: 20, IsPrimaryUser: true})

	uc := NewCreateVisit(repo, nopRecorder{})

	// The primary books for their own dependent.
	in := createInput(10)
	dep := uint(11)
	in.PatientUserID = &dep
	v, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, uint(11), v.PatientUserID)
	require.Equal(t, uint(10), v.BookingUserID)

	// A stranger may not book for someone else's dependent.
	in = createInput(20)
	in.AppointmentTime = "2024-06-01T11:00:00"
	in.PatientUserID = &dep
	_, err = uc.Execute(context.Background(), in)
	require.True(t, httperr.IsBusiness(err, "patient_forbidden"))
}

func TestCreateVisit_MissingEntities(t *testing.T) {
	repo := seededRepo()
	uc := NewCreateVisit(repo, nopRecorder{})

	in := createInput(10)
	in.DoctorID = 99
	_, err := uc.Execute(context.Background(), in)
	require.True(t, httperr.IsBusiness(err, "doctor_not_found"))

	in = createInput(10)
	in.ChamberID = 99
	_, err = uc.Execute(context.Background(), in)
	require.True(t, httperr.IsBusiness(err, "chamber_not_found"))

	in = createInput(10)
	missing := uint(99)
	in.PatientUserID = &missing
	_, err = uc.Execute(context.Background(), in)
	require.True(t, httperr.IsBusiness(err, "patient_not_found"))
}

func TestCreateVisit_InvalidTime(t *testing.T) {
	repo := seededRepo()
	uc := NewCreateVisit(repo, nopRecorder{})

	in := createInput(10)
	in.AppointmentTime = "next tuesday at ten"
	_, err := uc.Execute(context.Background(), in)
	require.True(t, httperr.IsBusiness(err, "invalid_appointment_time"))
}
