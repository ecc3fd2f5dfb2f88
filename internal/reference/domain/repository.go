package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	ListRegions(ctx context.Context, db *gorm.DB) ([]Region, error)
	HasRegions(ctx context.Context, db *gorm.DB) (bool, error)
	CreateRegion(ctx context.Context, db *gorm.DB, region *Region) error
	ListRentalPeriods(ctx context.Context, db *gorm.DB) ([]RentalPeriod, error)
	CreateRentalPeriod(ctx context.Context, db *gorm.DB, period *RentalPeriod) error
}
