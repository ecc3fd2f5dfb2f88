package domain

import (
	"context"
	"errors"

	"github.com/smallbiznis/rentcatalog/pkg/db/pagination"
)

type Service interface {
	List(ctx context.Context, req ListRequest) (*ListResponse, error)
	Get(ctx context.Context, id int64) (*Response, error)
}

// ListRequest selects one page of the catalog. Region and Period only narrow
// the pricing entries of each product, never the product set itself.
type ListRequest struct {
	pagination.Pagination
	Region string `form:"region"`
	Period *int   `form:"period"`
}

type AttributeResponse struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// PricingResponse is one rental price of a product.
type PricingResponse struct {
	RentalPeriodMonths int    `json:"rental_period_months"`
	Price              int    `json:"price"`
	RegionName         string `json:"region_name"`
	RegionCode         string `json:"region_code"`
}

type Response struct {
	ID          int64               `json:"id"`
	Name        string              `json:"name"`
	Description *string             `json:"description"`
	SKU         *string             `json:"sku"`
	Detail      *string             `json:"detail"`
	Attributes  []AttributeResponse `json:"attributes"`
	Pricing     []PricingResponse   `json:"pricing"`
}

type ListResponse struct {
	Items []Response `json:"items"`
	pagination.PageInfo
}

var (
	ErrNotFound  = errors.New("not_found")
	ErrInvalidID = errors.New("invalid_id")
)
