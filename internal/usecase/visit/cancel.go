package visit

import (
	"context"

	"github.com/shasthoseba/chamber-booking/internal/audit"
	domain "github.com/shasthoseba/chamber-booking/internal/domain/visit"
	"github.com/shasthoseba/chamber-booking/internal/httperr"
	"github.com/shasthoseba/chamber-booking/internal/models"
)

type CancelVisit struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewCancelVisit(
	repo domain.Repository,
	audit audit.Recorder,
) *CancelVisit {
	return &CancelVisit{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelVisit) Execute(
	ctx context.Context,
	requesterID uint,
	visitID uint,
	reason string,
) (*models.Visit, error) {

	v, err := uc.repo.GetVisitByID(ctx, visitID)
	if err != nil {
		return nil, httperr.ErrBusiness("visit_not_found")
	}

	if !domain.CanModify(requesterID, v) {
		return nil, httperr.ErrBusiness("not_booking_owner")
	}

	domain.Cancel(v, reason)

	if err := uc.repo.UpdateVisit(ctx, v); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &requesterID,
		Action:   "visit_cancelled",
		Entity:   "visit",
		EntityID: &v.ID,
	})

	return v, nil
}
