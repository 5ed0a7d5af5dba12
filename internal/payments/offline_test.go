package payments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOfflineGateway_Charge(t *testing.T) {
	g := NewOfflineGateway()

	res, err := g.Charge(context.Background(), ChargeRequest{
		Amount:                500,
		BkashNumber:           "01711000000",
		ExternalTransactionID: "BKA1234XYZ",
	})
	require.NoError(t, err)
	require.Equal(t, "BKA1234XYZ", res.TransactionID)
	require.Equal(t, "completed", res.Status)
}

func TestOfflineGateway_ChargeMintsID(t *testing.T) {
	g := NewOfflineGateway()

	res, err := g.Charge(context.Background(), ChargeRequest{Amount: 500})
	require.NoError(t, err)
	require.NotEmpty(t, res.TransactionID)
}

func TestOfflineGateway_Refund(t *testing.T) {
	g := NewOfflineGateway()

	res, err := g.Refund(context.Background(), RefundRequest{
		TransactionID: "BKA1234XYZ",
		Amount:        200,
	})
	require.NoError(t, err)
	require.Equal(t, "refunded", res.Status)
}
