package payments

import (
	"context"

	"github.com/google/uuid"
)

// OfflineGateway records payments settled out of band (counter cash, direct
// bKash transfer). It accepts the caller's transaction id when one exists and
// mints one otherwise. Used when no gateway access token is configured.
type OfflineGateway struct{}

func NewOfflineGateway() *OfflineGateway {
	return &OfflineGateway{}
}

func (g *OfflineGateway) Charge(
	_ context.Context,
	req ChargeRequest,
) (*Result, error) {

	txID := req.ExternalTransactionID
	if txID == "" {
		txID = uuid.NewString()
	}

	return &Result{
		TransactionID: txID,
		Status:        "completed",
	}, nil
}

func (g *OfflineGateway) Refund(
	_ context.Context,
	req RefundRequest,
) (*Result, error) {

	return &Result{
		TransactionID: uuid.NewString(),
		Status:        "refunded",
	}, nil
}

var _ Gateway = (*OfflineGateway)(nil)
