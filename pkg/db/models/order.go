package models

import (
	"time"

	"github.com/google/uuid"
)

// Order is the storefront order record the bridge links to a SafeRoute
// delivery. SafeRouteID is assigned by the provider when the delivery is
// created and is the key every status webhook carries.
type Order struct {
	ID          uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderNumber int64          `gorm:"column:order_number;not null;uniqueIndex"`
	SafeRouteID string         `gorm:"column:saferoute_id;not null;uniqueIndex"`
	Tracking    string         `gorm:"column:tracking;not null;default:''"`
	Histories   []OrderHistory `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
