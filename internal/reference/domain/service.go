package domain

import "context"

type Service interface {
	ListRegions(ctx context.Context) ([]RegionResponse, error)
}

type RegionResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}
