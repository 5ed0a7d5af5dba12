package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name                  string     `gorm:"size:100;not null" json:"name"`
	ContactNumber         string     `gorm:"size:20;uniqueIndex" json:"contact_number"`
	AuthNumber            string     `gorm:"size:50;uniqueIndex" json:"-"`
	Email                 string     `gorm:"size:120;uniqueIndex" json:"email"`
	IdentifyingDocumentID string     `gorm:"size:50" json:"identifying_document_id"`
	BkashNumber           string     `gorm:"size:20" json:"bkash_number"`
	PreconditionKeywords  StringList `gorm:"type:text" json:"precondition_keywords"`
	Address               string     `gorm:"type:text" json:"address"`

	// Dependents are users with IsPrimaryUser=false and PrimaryUserID set to
	// their managing account. Dependents never have dependents of their own.
	IsPrimaryUser bool  `gorm:"default:true" json:"is_primary_user"`
	PrimaryUserID *uint `json:"primary_user_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
