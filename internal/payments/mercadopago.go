package payments

import (
	"context"
	"strconv"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/refund"

	"github.com/shasthoseba/chamber-booking/internal/httperr"
)

type MercadoPagoGateway struct {
	payments payment.Client
	refunds  refund.Client
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &MercadoPagoGateway{
		payments: payment.NewClient(cfg),
		refunds:  refund.NewClient(cfg),
	}, nil
}

func (g *MercadoPagoGateway) Charge(
	ctx context.Context,
	req ChargeRequest,
) (*Result, error) {

	res, err := g.payments.Create(ctx, payment.Request{
		TransactionAmount: req.Amount,
		Description:       req.Description,
		Payer: &payment.PayerRequest{
			Email: req.PayerEmail,
		},
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		TransactionID: strconv.Itoa(res.ID),
		Status:        res.Status,
	}, nil
}

func (g *MercadoPagoGateway) Refund(
	ctx context.Context,
	req RefundRequest,
) (*Result, error) {

	paymentID, err := strconv.Atoi(req.TransactionID)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_transaction_id")
	}

	res, err := g.refunds.CreatePartialRefund(ctx, paymentID, req.Amount)
	if err != nil {
		return nil, err
	}

	return &Result{
		TransactionID: strconv.Itoa(res.ID),
		Status:        res.Status,
	}, nil
}

var _ Gateway = (*MercadoPagoGateway)(nil)
