package payments

import (
	"context"
	"testing"

	"github.com/mercadopago/sdk-go/pkg/refund"
	"github.com/stretchr/testify/require"

	"github.com/shasthoseba/chamber-booking/internal/httperr"
)

type fakeRefundClient struct {
	gotPaymentID int
	gotAmount    float64
}

func (f *fakeRefundClient) Get(_ context.Context, paymentID, refundID int) (*refund.Response, error) {
	return nil, nil
}

func (f *fakeRefundClient) List(_ context.Context, paymentID int) ([]refund.Response, error) {
	return nil, nil
}

func (f *fakeRefundClient) Create(_ context.Context, paymentID int) (*refund.Response, error) {
	return nil, nil
}

func (f *fakeRefundClient) CreatePartialRefund(
	_ context.Context,
	paymentID int,
	amount float64,
) (*refund.Response, error) {
	f.gotPaymentID = paymentID
	f.gotAmount = amount
	return &refund.Response{ID: 555, Status: "approved", PaymentID: paymentID, Amount: amount}, nil
}

var _ refund.Client = (*fakeRefundClient)(nil)

func TestMercadoPagoGateway_RefundRoutesIDAndAmount(t *testing.T) {
	fake := &fakeRefundClient{}
	g := &MercadoPagoGateway{refunds: fake}

	res, err := g.Refund(context.Background(), RefundRequest{
		TransactionID: "12345",
		Amount:        200,
	})
	require.NoError(t, err)

	require.Equal(t, 12345, fake.gotPaymentID)
	require.Equal(t, 200.0, fake.gotAmount)
	require.Equal(t, "555", res.TransactionID)
	require.Equal(t, "approved", res.Status)
}

func TestMercadoPagoGateway_RefundRejectsBadTransactionID(t *testing.T) {
	g := &MercadoPagoGateway{refunds: &fakeRefundClient{}}

	_, err := g.Refund(context.Background(), RefundRequest{
		TransactionID: "not-a-number",
		Amount:        200,
	})
	require.True(t, httperr.IsBusiness(err, "invalid_transaction_id"))
}
