package service

import (
	"context"

	"github.com/smallbiznis/rentcatalog/internal/reference/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("reference.service"),
		repo: p.Repo,
	}
}

func (s *Service) ListRegions(ctx context.Context) ([]domain.RegionResponse, error) {
	regions, err := s.repo.ListRegions(ctx, s.db)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.RegionResponse, 0, len(regions))
	for _, region := range regions {
		resp = append(resp, domain.RegionResponse{
			ID:   region.ID,
			Name: region.Name,
			Code: region.Code,
		})
	}
	return resp, nil
}
