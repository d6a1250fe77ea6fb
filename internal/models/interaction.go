package models

import (
	"time"

	"gorm.io/gorm"
)

// Interaction actions recorded for the acquisition/release audit trail.
const (
	InteractionActionPurchase = "purchase"
	InteractionActionRelease  = "release"
	InteractionActionImport   = "import"
)

// Interaction corresponds to the interactions table. Each row records a
// carrier-facing operation: who performed it, the number involved and the
// carrier's reference. Writes are best effort and never fail the operation
// they describe.
type Interaction struct {
	ID         int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	Actor      string         `json:"actor" gorm:"column:actor;not null;size:255"` // username of the operator
	Action     string         `json:"action" gorm:"column:action;not null;size:32"`
	Number     string         `json:"number" gorm:"column:number;not null;size:32"`
	CarrierRef *string        `json:"carrierRef,omitempty" gorm:"column:carrier_ref;size:64"`
	CreatedAt  time.Time      `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	DeletedAt  gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index" swaggertype:"string" format:"date-time"`
}

// TableName specifies the database table for Interaction.
func (Interaction) TableName() string {
	return "interactions"
}
