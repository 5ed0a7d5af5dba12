package models

import "time"

type Doctor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name          string `gorm:"size:100;not null" json:"name"`
	ContactNumber string `gorm:"size:20;uniqueIndex" json:"contact_number"`

	Specializations      StringList `gorm:"type:text" json:"specializations"`
	HospitalAffiliations StringList `gorm:"type:text" json:"hospital_affiliations"`
	Degrees              StringList `gorm:"type:text" json:"degrees"`

	PhotoURL string `gorm:"size:255" json:"photo_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
