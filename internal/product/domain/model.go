package domain

import "time"

// Product is a rentable catalog item. Rows are created by the seeder and never
// edited, so UpdatedAt stays equal to CreatedAt.
type Product struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"type:text;not null"`
	Description *string   `json:"description,omitempty" gorm:"type:text"`
	SKU         *string   `json:"sku,omitempty" gorm:"column:sku;type:text"`
	Detail      *string   `json:"detail,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"not null"`
}

func (Product) TableName() string { return "products" }

// Attribute is a free-form name/value pair describing a product. A product may
// carry several attributes with the same name.
type Attribute struct {
	ID        int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string `json:"name" gorm:"type:text;not null"`
	Value     string `json:"value" gorm:"type:text;not null"`
	ProductID *int64 `json:"product_id,omitempty" gorm:"column:product_id;index:ix_attributes_product_id"`

	Product *Product `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

func (Attribute) TableName() string { return "attributes" }
