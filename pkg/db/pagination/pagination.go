package pagination

import "math"

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type Pagination struct {
	Page     int `form:"page,default=1" binding:"gte=1"`
	PageSize int `form:"page_size,default=10" binding:"gte=1,lte=100"` // Min 1, Max 100
}

type PageInfo struct {
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
}

// Normalize clamps zero or out-of-range values to the defaults.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func (p Pagination) Limit() int {
	return p.PageSize
}

func TotalPages(totalItems int64, pageSize int) int {
	if totalItems <= 0 || pageSize <= 0 {
		return 0
	}
	return int(math.Ceil(float64(totalItems) / float64(pageSize)))
}

func BuildPageInfo(p Pagination, totalItems int64) PageInfo {
	return PageInfo{
		CurrentPage: p.Page,
		PageSize:    p.PageSize,
		TotalItems:  totalItems,
		TotalPages:  TotalPages(totalItems, p.PageSize),
	}
}
