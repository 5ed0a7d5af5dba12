package models

import "time"

type Visit struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ChamberID uint    `gorm:"index" json:"chamber_id"`
	Chamber   Chamber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"chamber"`

	DoctorID uint   `gorm:"index" json:"doctor_id"`
	Doctor   Doctor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"doctor"`

	BookingUserID uint `gorm:"index" json:"booking_user_id"`
	BookingUser   User `gorm:"foreignKey:BookingUserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	PatientUserID uint `gorm:"index" json:"patient_user_id"`
	PatientUser   User `gorm:"foreignKey:PatientUserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	VisitDocumentIDs DocumentList `gorm:"type:text" json:"visit_document_ids"`
	BookingRemarks   string       `gorm:"type:text" json:"booking_remarks"`

	BookingTime     time.Time  `gorm:"autoCreateTime" json:"booking_time"`
	AppointmentTime time.Time  `gorm:"not null" json:"appointment_time"`
	VisitEndTime    *time.Time `json:"visit_end_time"`

	VisitCost     float64 `json:"visit_cost"`
	VisitStatus   string  `gorm:"size:20;default:'scheduled'" json:"visit_status"`
	CancelReason  string  `gorm:"type:text" json:"cancel_reason"`
	PaymentStatus string  `gorm:"size:20" json:"payment_status"`

	VisitPrescription JSONValue `gorm:"type:text" json:"visit_prescription"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
