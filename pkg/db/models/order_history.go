package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderHistory is an append-only status entry on an order. Notify carries
// the customer-notification flag the storefront acts on downstream.
type OrderHistory struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID   uuid.UUID `gorm:"column:order_id;type:uuid;not null;index"`
	Status    string    `gorm:"column:status;not null"`
	Comment   string    `gorm:"column:comment;not null;default:''"`
	Notify    bool      `gorm:"column:notify;not null;default:false"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
