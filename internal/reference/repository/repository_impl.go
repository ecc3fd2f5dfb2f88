package repository

import (
	"context"

	"github.com/smallbiznis/rentcatalog/internal/reference/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) ListRegions(ctx context.Context, db *gorm.DB) ([]domain.Region, error) {
	var regions []domain.Region
	err := db.WithContext(ctx).
		Raw(`SELECT id, name, code FROM regions ORDER BY id ASC`).
		Scan(&regions).Error
	if err != nil {
		return nil, err
	}
	return regions, nil
}

// HasRegions reports whether reference data has been seeded.
func (r *repo) HasRegions(ctx context.Context, db *gorm.DB) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Raw(`SELECT COUNT(1) FROM (SELECT id FROM regions LIMIT 1) AS seeded`).
		Scan(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repo) CreateRegion(ctx context.Context, db *gorm.DB, region *domain.Region) error {
	return db.WithContext(ctx).Create(region).Error
}

func (r *repo) ListRentalPeriods(ctx context.Context, db *gorm.DB) ([]domain.RentalPeriod, error) {
	var periods []domain.RentalPeriod
	err := db.WithContext(ctx).
		Raw(`SELECT id, month FROM rentalperiods ORDER BY month ASC`).
		Scan(&periods).Error
	if err != nil {
		return nil, err
	}
	return periods, nil
}

func (r *repo) CreateRentalPeriod(ctx context.Context, db *gorm.DB, period *domain.RentalPeriod) error {
	return db.WithContext(ctx).Create(period).Error
}
