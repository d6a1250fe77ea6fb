package models

import (
	"time"
)

// PhoneNumber corresponds to the phone_numbers table (the Number Store).
//
// Invariant: IsAssigned is true if and only if AssistantID is non-nil.
// Every write path that touches one of the two fields must set both.
//
// Rows are hard-deleted, not soft-deleted: a released number must be
// re-importable, and a lingering soft-deleted row would keep holding the
// unique index on number.
type PhoneNumber struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Number      string    `json:"number" gorm:"column:number;unique;not null;size:32"`    // E.164 formatted
	CarrierRef  *string   `json:"carrierRef,omitempty" gorm:"column:carrier_ref;size:64"` // carrier-side identifier, nil until provisioned
	IsAssigned  bool      `json:"isAssigned" gorm:"column:is_assigned;not null;default:false"`
	AssistantID *string   `json:"assistantId,omitempty" gorm:"column:assistant_id;size:64"`
	CreatedAt   time.Time `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName specifies the database table for PhoneNumber.
func (PhoneNumber) TableName() string {
	return "phone_numbers"
}
