package models

import "time"

type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	VisitID uint  `gorm:"index" json:"visit_id"`
	Visit   Visit `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	// Refunds are stored as the negative of the original amount.
	Amount        float64 `gorm:"not null" json:"amount"`
	PaymentMethod string  `gorm:"size:20" json:"payment_method"`
	BkashNumber   string  `gorm:"size:20" json:"bkash_number"`
	TransactionID string  `gorm:"size:50" json:"transaction_id"`
	Status        string  `gorm:"size:20" json:"status"`

	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`
}
