// Package pricelistrepo persists the configurable unit prices as a simple
// key/value table.
package pricelistrepo

import "github.com/shopspring/decimal"

// PriceEntryDTO represents one configured unit price.
type PriceEntryDTO struct {
	Key   string          `gorm:"type:varchar(64);primaryKey"`
	Price decimal.Decimal `gorm:"type:numeric(14,2)"`
}

// TableName specifies the database table name for price entries.
func (PriceEntryDTO) TableName() string {
	return "price_list"
}
