package models

import (
	"github.com/google/uuid"
)

// ProductAttribute is one named custom field on a product. Attributes are
// grouped; group and attribute sort orders define the resolution order the
// widget payload depends on.
type ProductAttribute struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;not null;index"`
	GroupName string    `gorm:"column:group_name;not null"`
	GroupSort int       `gorm:"column:group_sort;not null;default:0"`
	Name      string    `gorm:"column:name;not null"`
	Text      string    `gorm:"column:text;not null;default:''"`
	Sort      int       `gorm:"column:sort;not null;default:0"`
}
