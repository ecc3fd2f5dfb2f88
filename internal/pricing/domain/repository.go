package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	// ListQuotes returns quotes for the given products ordered by product id
	// then pricing id.
	ListQuotes(ctx context.Context, db *gorm.DB, productIDs []int64, filter QuoteFilter) ([]Quote, error)
	CreateBatch(ctx context.Context, db *gorm.DB, rows []ProductPricing) error
}
