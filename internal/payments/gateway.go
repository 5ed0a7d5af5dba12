package payments

import "context"

type ChargeRequest struct {
	Amount      float64
	PayerEmail  string
	BkashNumber string
	Description string

	// Transaction id already issued by an out-of-band channel, if any.
	ExternalTransactionID string
}

type RefundRequest struct {
	TransactionID string
	Amount        float64
}

type Result struct {
	TransactionID string
	Status        string
}

// Gateway is the money-movement collaborator. This service records outcomes;
// it never holds funds itself.
type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*Result, error)
	Refund(ctx context.Context, req RefundRequest) (*Result, error)
}
