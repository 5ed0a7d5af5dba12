package models

import "time"

type Chamber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Location   string `gorm:"type:text;not null" json:"location"`
	ScheduleID *uint  `json:"schedule_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Association records. Updates replace the full set for a chamber, there is
// no merge semantics.

type DoctorChamber struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	DoctorID  uint `gorm:"index:idx_doctor_chamber,unique" json:"doctor_id"`
	ChamberID uint `gorm:"index:idx_doctor_chamber,unique" json:"chamber_id"`
}

type ChamberOperator struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	ChamberID  uint `gorm:"index:idx_chamber_operator,unique" json:"chamber_id"`
	OperatorID uint `gorm:"index:idx_chamber_operator,unique" json:"operator_id"`
}
