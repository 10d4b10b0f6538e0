package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	CouponTypePercentage = "percentage"
	CouponTypeFixed      = "fixed"
)

// Coupon is a storefront discount code applied against the cart total.
type Coupon struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Code      string          `gorm:"column:code;not null;uniqueIndex"`
	Name      string          `gorm:"column:name;not null;default:''"`
	Type      string          `gorm:"column:type;not null"`
	Discount  decimal.Decimal `gorm:"column:discount;type:numeric(15,4);not null"`
	Enabled   bool            `gorm:"column:enabled;not null;default:true"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
