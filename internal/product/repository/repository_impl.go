package repository

import (
	"context"

	"github.com/smallbiznis/rentcatalog/internal/product/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	if err := db.WithContext(ctx).Raw(`SELECT COUNT(id) FROM products`).Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Product, error) {
	var items []domain.Product
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, description, sku, detail, created_at, updated_at
		 FROM products ORDER BY id ASC LIMIT ? OFFSET ?`,
		limit,
		offset,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Product, error) {
	var p domain.Product
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, description, sku, detail, created_at, updated_at
		 FROM products WHERE id = ?`,
		id,
	).Scan(&p).Error
	if err != nil {
		return nil, err
	}
	if p.ID == 0 {
		return nil, nil
	}
	return &p, nil
}

func (r *repo) ListAttributes(ctx context.Context, db *gorm.DB, productIDs []int64) ([]domain.Attribute, error) {
	if len(productIDs) == 0 {
		return []domain.Attribute{}, nil
	}
	var attrs []domain.Attribute
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, value, product_id FROM attributes
		 WHERE product_id IN ? ORDER BY product_id ASC, id ASC`,
		productIDs,
	).Scan(&attrs).Error
	if err != nil {
		return nil, err
	}
	return attrs, nil
}

// Create inserts the product and then its attributes, which inherit the new id.
func (r *repo) Create(ctx context.Context, db *gorm.DB, product *domain.Product, attrs []domain.Attribute) error {
	if product == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(product).Error; err != nil {
			return err
		}
		if len(attrs) == 0 {
			return nil
		}
		for i := range attrs {
			attrs[i].ProductID = &product.ID
		}
		return tx.Omit(clause.Associations).Create(&attrs).Error
	})
}
