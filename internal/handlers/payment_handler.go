package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shasthoseba/chamber-booking/internal/audit"
	"github.com/shasthoseba/chamber-booking/internal/httperr"
	"github.com/shasthoseba/chamber-booking/internal/middleware"
	"github.com/shasthoseba/chamber-booking/internal/models"
	"github.com/shasthoseba/chamber-booking/internal/payments"
)

type PaymentHandler struct {
	db      *gorm.DB
	gateway payments.Gateway
	audit   *audit.Dispatcher
}

func NewPaymentHandler(
	db *gorm.DB,
	gateway payments.Gateway,
	audit *audit.Dispatcher,
) *PaymentHandler {
	return &PaymentHandler{
		db:      db,
		gateway: gateway,
		audit:   audit,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type DepositRequest struct {
	VisitID       uint    `json:"visit_id" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	BkashNumber   string  `json:"bkash_number"`
	PaymentMethod string  `json:"payment_method"`
	TransactionID string  `json:"transaction_id"`
}

type RefundRequest struct {
	VisitID             uint    `json:"visit_id" binding:"required"`
	Amount              float64 `json:"amount" binding:"required,gt=0"`
	BkashNumber         string  `json:"bkash_number"`
	RefundTransactionID string  `json:"refund_transaction_id"`
}

// ======================================================
// DEPOSIT
// ======================================================

func (h *PaymentHandler) Deposit(c *gin.Context) {
	requesterID := c.MustGet(middleware.ContextUserID).(uint)

	var req DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid payload")
		return
	}

	var v models.Visit
	if err := h.db.First(&v, req.VisitID).Error; err != nil {
		httperr.NotFound(c, "Visit not found")
		return
	}

	var payer models.User
	if err := h.db.First(&payer, v.BookingUserID).Error; err != nil {
		httperr.Internal(c, "Failed to resolve payer")
		return
	}

	method := req.PaymentMethod
	if method == "" {
		method = "bkash"
	}

	// The gateway moves the money; only its outcome is recorded here.
	res, err := h.gateway.Charge(c.Request.Context(), payments.ChargeRequest{
		Amount:                req.Amount,
		PayerEmail:            payer.Email,
		BkashNumber:           req.BkashNumber,
		Description:           "Visit deposit",
		ExternalTransactionID: req.TransactionID,
	})
	if err != nil {
		httperr.Internal(c, "Payment failed")
		return
	}

	// Payment row and visit payment status commit together.
	err = h.db.Transaction(func(tx *gorm.DB) error {
		payment := models.Payment{
			VisitID:       v.ID,
			Amount:        req.Amount,
			PaymentMethod: method,
			BkashNumber:   req.BkashNumber,
			TransactionID: res.TransactionID,
			Status:        "completed",
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		v.PaymentStatus = "deposit_paid"
		return tx.Save(&v).Error
	})

	if err != nil {
		httperr.Internal(c, "Failed to record payment")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &requesterID,
		Action:   "payment_deposit",
		Entity:   "visit",
		EntityID: &v.ID,
		Metadata: map[string]any{"amount": req.Amount, "transaction_id": res.TransactionID},
	})

	c.JSON(http.StatusOK, gin.H{"message": "Deposit payment successful"})
}

// ======================================================
// REFUND
// ======================================================

func (h *PaymentHandler) Refund(c *gin.Context) {
	requesterID := c.MustGet(middleware.ContextUserID).(uint)

	var req RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid payload")
		return
	}

	var v models.Visit
	if err := h.db.First(&v, req.VisitID).Error; err != nil {
		httperr.NotFound(c, "Visit not found")
		return
	}

	res, err := h.gateway.Refund(c.Request.Context(), payments.RefundRequest{
		TransactionID: req.RefundTransactionID,
		Amount:        req.Amount,
	})
	if err != nil {
		httperr.Internal(c, "Refund failed")
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		refund := models.Payment{
			VisitID:       v.ID,
			Amount:        -req.Amount,
			PaymentMethod: "bkash",
			BkashNumber:   req.BkashNumber,
			TransactionID: res.TransactionID,
			Status:        "refunded",
		}
		if err := tx.Create(&refund).Error; err != nil {
			return err
		}

		v.PaymentStatus = "refunded"
		return tx.Save(&v).Error
	})

	if err != nil {
		httperr.Internal(c, "Failed to record refund")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &requesterID,
		Action:   "payment_refund",
		Entity:   "visit",
		EntityID: &v.ID,
		Metadata: map[string]any{"amount": req.Amount, "transaction_id": res.TransactionID},
	})

	c.JSON(http.StatusOK, gin.H{"message": "Refund processed successfully"})
}
