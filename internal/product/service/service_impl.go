package service

import (
	"context"

	"github.com/smallbiznis/rentcatalog/internal/observability/metrics"
	pricingdomain "github.com/smallbiznis/rentcatalog/internal/pricing/domain"
	"github.com/smallbiznis/rentcatalog/internal/product/domain"
	"github.com/smallbiznis/rentcatalog/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	Repo        domain.Repository
	PricingRepo pricingdomain.Repository
	Metrics     *metrics.Metrics `optional:"true"`
}

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	repo        domain.Repository
	pricingRepo pricingdomain.Repository
	metrics     *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("product.service"),
		repo:        p.Repo,
		pricingRepo: p.PricingRepo,
		metrics:     p.Metrics,
	}
}

// List returns one page of products ordered by id. TotalItems counts the whole
// catalog; the region and period filters only apply to pricing entries.
func (s *Service) List(ctx context.Context, req domain.ListRequest) (*domain.ListResponse, error) {
	page := req.Pagination.Normalize()

	total, err := s.repo.Count(ctx, s.db)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.List(ctx, s.db, page.Offset(), page.Limit())
	if err != nil {
		return nil, err
	}

	filter := pricingdomain.QuoteFilter{
		RegionCode: req.Region,
		Months:     req.Period,
	}
	resp, err := s.enrich(ctx, items, filter)
	if err != nil {
		return nil, err
	}

	s.metrics.RecordCatalogQuery(ctx, "list", req.Region)
	return &domain.ListResponse{
		Items:    resp,
		PageInfo: pagination.BuildPageInfo(page, total),
	}, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Response, error) {
	if id <= 0 {
		return nil, domain.ErrNotFound
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	resp, err := s.enrich(ctx, []domain.Product{*item}, pricingdomain.QuoteFilter{})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordCatalogQuery(ctx, "get", "")
	return &resp[0], nil
}

// enrich loads attributes and quotes for the whole batch in two queries.
func (s *Service) enrich(ctx context.Context, items []domain.Product, filter pricingdomain.QuoteFilter) ([]domain.Response, error) {
	resp := make([]domain.Response, 0, len(items))
	if len(items) == 0 {
		return resp, nil
	}

	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}

	attrs, err := s.repo.ListAttributes(ctx, s.db, ids)
	if err != nil {
		return nil, err
	}
	quotes, err := s.pricingRepo.ListQuotes(ctx, s.db, ids, filter)
	if err != nil {
		return nil, err
	}

	attrsByProduct := make(map[int64][]domain.AttributeResponse, len(items))
	for _, attr := range attrs {
		if attr.ProductID == nil {
			continue
		}
		attrsByProduct[*attr.ProductID] = append(attrsByProduct[*attr.ProductID], domain.AttributeResponse{
			Name:  attr.Name,
			Value: attr.Value,
		})
	}
	quotesByProduct := make(map[int64][]domain.PricingResponse, len(items))
	for _, q := range quotes {
		quotesByProduct[q.ProductID] = append(quotesByProduct[q.ProductID], toPricingResponse(q))
	}

	for _, item := range items {
		resp = append(resp, s.toResponse(item, attrsByProduct[item.ID], quotesByProduct[item.ID]))
	}
	return resp, nil
}

func (s *Service) toResponse(p domain.Product, attrs []domain.AttributeResponse, quotes []domain.PricingResponse) domain.Response {
	if attrs == nil {
		attrs = []domain.AttributeResponse{}
	}
	if quotes == nil {
		quotes = []domain.PricingResponse{}
	}
	return domain.Response{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		SKU:         p.SKU,
		Detail:      p.Detail,
		Attributes:  attrs,
		Pricing:     quotes,
	}
}

func toPricingResponse(q pricingdomain.Quote) domain.PricingResponse {
	return domain.PricingResponse{
		RentalPeriodMonths: q.RentalPeriodMonths,
		Price:              q.Price,
		RegionName:         q.RegionName,
		RegionCode:         q.RegionCode,
	}
}
