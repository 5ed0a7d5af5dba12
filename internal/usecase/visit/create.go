package visit

import (
	"context"

	"github.com/shasthoseba/chamber-booking/internal/audit"
	domain "github.com/shasthoseba/chamber-booking/internal/domain/visit"
	"github.com/shasthoseba/chamber-booking/internal/httperr"
	"github.com/shasthoseba/chamber-booking/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateVisitInput struct {
	BookingUserID uint

	ChamberID uint
	DoctorID  uint

	// Nil books for the requester themselves.
	PatientUserID *uint

	AppointmentTime string
	BookingRemarks  string
	VisitCost       float64
}

// ======================================================
// USE CASE
// ======================================================

type CreateVisit struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewCreateVisit(
	repo domain.Repository,
	audit audit.Recorder,
) *CreateVisit {
	return &CreateVisit{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateVisit) Execute(
	ctx context.Context,
	in CreateVisitInput,
) (*models.Visit, error) {

	if _, err := uc.repo.GetDoctorByID(ctx, in.DoctorID); err != nil {
		return nil, httperr.ErrBusiness("doctor_not_found")
	}

	if _, err := uc.repo.GetChamberByID(ctx, in.ChamberID); err != nil {
		return nil, httperr.ErrBusiness("chamber_not_found")
	}

	patientID := in.BookingUserID
	if in.PatientUserID != nil && *in.PatientUserID != in.BookingUserID {
		patient, err := uc.repo.GetUserByID(ctx, *in.PatientUserID)
		if err != nil {
			return nil, httperr.ErrBusiness("patient_not_found")
		}
		if !domain.CanBookFor(in.BookingUserID, patient) {
			return nil, httperr.ErrBusiness("patient_forbidden")
		}
		patientID = patient.ID
	}

	at, err := parseAppointmentTime(in.AppointmentTime)
	if err != nil {
		return nil, err
	}

	v := &models.Visit{
		ChamberID:       in.ChamberID,
		DoctorID:        in.DoctorID,
		BookingUserID:   in.BookingUserID,
		PatientUserID:   patientID,
		AppointmentTime: at,
		BookingRemarks:  in.BookingRemarks,
		VisitCost:       in.VisitCost,
		VisitStatus:     string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateVisitIfSlotFree(ctx, v); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.BookingUserID,
		Action:   "visit_created",
		Entity:   "visit",
		EntityID: &v.ID,
	})

	return v, nil
}
