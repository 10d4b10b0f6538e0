package models

// OrderStatus is a row of the storefront's order-status reference table,
// localized per language code.
type OrderStatus struct {
	ID   int    `gorm:"column:id;primaryKey" json:"id"`
	Lang string `gorm:"column:lang;primaryKey" json:"-"`
	Name string `gorm:"column:name;not null" json:"name"`
}

func (OrderStatus) TableName() string {
	return "order_statuses"
}
