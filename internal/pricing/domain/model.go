package domain

import (
	productdomain "github.com/smallbiznis/rentcatalog/internal/product/domain"
	referencedomain "github.com/smallbiznis/rentcatalog/internal/reference/domain"
)

// ProductPricing is the price of renting a product in a region for a rental
// period, in whole currency units. There is at most one row per triple.
type ProductPricing struct {
	ID             int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductID      int64 `json:"product_id" gorm:"not null;uniqueIndex:ux_productpricings_triple,priority:1"`
	RegionID       int64 `json:"region_id" gorm:"not null;uniqueIndex:ux_productpricings_triple,priority:2"`
	RentalPeriodID int64 `json:"rental_period_id" gorm:"not null;uniqueIndex:ux_productpricings_triple,priority:3"`
	Price          int   `json:"price" gorm:"not null"`

	Product      *productdomain.Product        `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Region       *referencedomain.Region       `json:"-" gorm:"constraint:OnDelete:RESTRICT"`
	RentalPeriod *referencedomain.RentalPeriod `json:"-" gorm:"constraint:OnDelete:RESTRICT"`
}

func (ProductPricing) TableName() string { return "productpricings" }

// Quote is a pricing row joined with its region and rental period.
type Quote struct {
	ProductID          int64  `gorm:"column:product_id"`
	RentalPeriodMonths int    `gorm:"column:rental_period_months"`
	Price              int    `gorm:"column:price"`
	RegionName         string `gorm:"column:region_name"`
	RegionCode         string `gorm:"column:region_code"`
}

// QuoteFilter narrows quotes. An empty code or a nil or zero month count
// matches everything.
type QuoteFilter struct {
	RegionCode string
	Months     *int
}

// Derive applies a regional multiplier to a base price, truncating toward zero.
func Derive(base int, factor float64) int {
	return int(float64(base) * factor)
}
