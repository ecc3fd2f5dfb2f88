package repository

import (
	"context"
	"strings"

	"github.com/smallbiznis/rentcatalog/internal/pricing/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const insertBatchSize = 200

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) ListQuotes(ctx context.Context, db *gorm.DB, productIDs []int64, filter domain.QuoteFilter) ([]domain.Quote, error) {
	if len(productIDs) == 0 {
		return []domain.Quote{}, nil
	}

	query := `SELECT pp.product_id, rp.month AS rental_period_months, pp.price,
		r.name AS region_name, r.code AS region_code
		FROM productpricings pp
		JOIN regions r ON r.id = pp.region_id
		JOIN rentalperiods rp ON rp.id = pp.rental_period_id
		WHERE pp.product_id IN ?`
	args := []any{productIDs}

	if code := strings.TrimSpace(filter.RegionCode); code != "" {
		query += ` AND r.code = ?`
		args = append(args, code)
	}
	if filter.Months != nil && *filter.Months > 0 {
		query += ` AND rp.month = ?`
		args = append(args, *filter.Months)
	}
	query += ` ORDER BY pp.product_id ASC, pp.id ASC`

	var quotes []domain.Quote
	if err := db.WithContext(ctx).Raw(query, args...).Scan(&quotes).Error; err != nil {
		return nil, err
	}
	return quotes, nil
}

func (r *repo) CreateBatch(ctx context.Context, db *gorm.DB, rows []domain.ProductPricing) error {
	if len(rows) == 0 {
		return nil
	}
	return db.WithContext(ctx).
		Omit(clause.Associations).
		CreateInBatches(&rows, insertBatchSize).Error
}
