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

// Pointer fields distinguish "leave alone" from "overwrite". Outside of a
// time change there is no state machine: the booker may set any status.
type UpdateVisitInput struct {
	RequesterID uint
	VisitID     uint

	AppointmentTime *string
	BookingRemarks  *string
	VisitStatus     *string
	VisitCost       *float64
	CancelReason    *string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateVisit struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewUpdateVisit(
	repo domain.Repository,
	audit audit.Recorder,
) *UpdateVisit {
	return &UpdateVisit{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateVisit) Execute(
	ctx context.Context,
	in UpdateVisitInput,
) (*models.Visit, error) {

	v, err := uc.repo.GetVisitByID(ctx, in.VisitID)
	if err != nil {
		return nil, httperr.ErrBusiness("visit_not_found")
	}

	if !domain.CanModify(in.RequesterID, v) {
		return nil, httperr.ErrBusiness("not_booking_owner")
	}

	if in.AppointmentTime != nil {
		newTime, err := parseAppointmentTime(*in.AppointmentTime)
		if err != nil {
			return nil, err
		}

		// The conflict query does not exclude this visit's own row, so
		// moving a slot-blocking visit onto its current timestamp reports
		// the slot as taken.
		taken, err := uc.repo.SlotTaken(ctx, v.ChamberID, v.DoctorID, newTime)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, httperr.ErrBusiness("slot_taken")
		}

		domain.Reschedule(v, newTime)
	}

	if in.BookingRemarks != nil {
		v.BookingRemarks = *in.BookingRemarks
	}
	if in.VisitStatus != nil {
		v.VisitStatus = *in.VisitStatus
	}
	if in.VisitCost != nil {
		v.VisitCost = *in.VisitCost
	}
	if in.CancelReason != nil {
		v.CancelReason = *in.CancelReason
	}

	if err := uc.repo.UpdateVisit(ctx, v); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.RequesterID,
		Action:   "visit_updated",
		Entity:   "visit",
		EntityID: &v.ID,
	})

	return v, nil
}
