package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product carries the catalog fields the widget payload is built from.
// Width/Height/Length are stored in the unit indicated by LengthClass.
type Product struct {
	ID           uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string          `gorm:"column:name;not null"`
	SKU          string          `gorm:"column:sku;not null;default:''"`
	Manufacturer string          `gorm:"column:manufacturer;not null;default:''"`
	Price        decimal.Decimal `gorm:"column:price;type:numeric(15,4);not null"`
	Weight       decimal.Decimal `gorm:"column:weight;type:numeric(15,8);not null;default:0"`
	Width        float64         `gorm:"column:width;not null;default:0"`
	Height       float64         `gorm:"column:height;not null;default:0"`
	Length       float64         `gorm:"column:length;not null;default:0"`
	LengthClass  string          `gorm:"column:length_class;not null;default:'1'"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
