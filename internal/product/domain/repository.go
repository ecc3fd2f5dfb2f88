package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Count(ctx context.Context, db *gorm.DB) (int64, error)
	List(ctx context.Context, db *gorm.DB, offset, limit int) ([]Product, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Product, error)
	ListAttributes(ctx context.Context, db *gorm.DB, productIDs []int64) ([]Attribute, error)
	Create(ctx context.Context, db *gorm.DB, product *Product, attrs []Attribute) error
}
