package service

import (
	"context"
	"errors"
	"sort"
	"testing"

	pricingdomain "github.com/smallbiznis/rentcatalog/internal/pricing/domain"
	"github.com/smallbiznis/rentcatalog/internal/product/domain"
	"github.com/smallbiznis/rentcatalog/pkg/db/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeProductRepo struct {
	products []domain.Product
	attrs    []domain.Attribute
	err      error
}

func (f *fakeProductRepo) Count(context.Context, *gorm.DB) (int64, error) {
	return int64(len(f.products)), f.err
}

func (f *fakeProductRepo) List(_ context.Context, _ *gorm.DB, offset, limit int) ([]domain.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	sorted := append([]domain.Product(nil), f.products...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	if offset >= len(sorted) {
		return nil, nil
	}
	end := min(offset+limit, len(sorted))
	return sorted[offset:end], nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, _ *gorm.DB, id int64) (*domain.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, f.err
}

func (f *fakeProductRepo) ListAttributes(_ context.Context, _ *gorm.DB, ids []int64) ([]domain.Attribute, error) {
	var out []domain.Attribute
	for _, a := range f.attrs {
		if a.ProductID != nil && contains(ids, *a.ProductID) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Create(_ context.Context, _ *gorm.DB, p *domain.Product, attrs []domain.Attribute) error {
	p.ID = int64(len(f.products) + 1)
	f.products = append(f.products, *p)
	for _, a := range attrs {
		a.ProductID = &p.ID
		f.attrs = append(f.attrs, a)
	}
	return nil
}

type fakePricingRepo struct {
	quotes []pricingdomain.Quote
}

func (f *fakePricingRepo) ListQuotes(_ context.Context, _ *gorm.DB, ids []int64, filter pricingdomain.QuoteFilter) ([]pricingdomain.Quote, error) {
	var out []pricingdomain.Quote
	for _, q := range f.quotes {
		if !contains(ids, q.ProductID) {
			continue
		}
		if filter.RegionCode != "" && q.RegionCode != filter.RegionCode {
			continue
		}
		if filter.Months != nil && q.RentalPeriodMonths != *filter.Months {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

func (f *fakePricingRepo) CreateBatch(context.Context, *gorm.DB, []pricingdomain.ProductPricing) error {
	return nil
}

func contains(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func newTestService(t *testing.T, products int) (domain.Service, *fakeProductRepo) {
	t.Helper()

	repo := &fakeProductRepo{}
	pricing := &fakePricingRepo{}
	for i := 1; i <= products; i++ {
		require.NoError(t, repo.Create(context.Background(), nil, &domain.Product{Name: "p"}, []domain.Attribute{
			{Name: "Color", Value: "Black"},
			{Name: "Color", Value: "Silver"},
		}))
		for _, region := range []struct{ name, code string }{{"Singapore", "SG"}, {"Malaysia", "MY"}} {
			for _, months := range []int{3, 6, 12} {
				pricing.quotes = append(pricing.quotes, pricingdomain.Quote{
					ProductID:          int64(i),
					RentalPeriodMonths: months,
					Price:              i * months,
					RegionName:         region.name,
					RegionCode:         region.code,
				})
			}
		}
	}

	svc := New(Params{
		Log:         zap.NewNop(),
		Repo:        repo,
		PricingRepo: pricing,
	})
	return svc, repo
}

func TestListPagination(t *testing.T) {
	svc, _ := newTestService(t, 5)

	resp, err := svc.List(context.Background(), domain.ListRequest{
		Pagination: pagination.Pagination{Page: 2, PageSize: 2},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.CurrentPage)
	assert.Equal(t, 2, resp.PageSize)
	assert.Equal(t, int64(5), resp.TotalItems)
	assert.Equal(t, 3, resp.TotalPages)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, int64(3), resp.Items[0].ID)
	assert.Equal(t, int64(4), resp.Items[1].ID)
	assert.Len(t, resp.Items[0].Attributes, 2)
	assert.Len(t, resp.Items[0].Pricing, 6)
}

func TestListPagesAreDisjoint(t *testing.T) {
	svc, _ := newTestService(t, 4)
	ctx := context.Background()

	first, err := svc.List(ctx, domain.ListRequest{Pagination: pagination.Pagination{Page: 1, PageSize: 2}})
	require.NoError(t, err)
	second, err := svc.List(ctx, domain.ListRequest{Pagination: pagination.Pagination{Page: 2, PageSize: 2}})
	require.NoError(t, err)

	seen := map[int64]bool{}
	for _, item := range first.Items {
		seen[item.ID] = true
	}
	for _, item := range second.Items {
		assert.False(t, seen[item.ID], "product %d on both pages", item.ID)
	}
}

func TestListPastLastPageIsEmpty(t *testing.T) {
	svc, _ := newTestService(t, 3)

	resp, err := svc.List(context.Background(), domain.ListRequest{Pagination: pagination.Pagination{Page: 9, PageSize: 10}})
	require.NoError(t, err)
	assert.NotNil(t, resp.Items)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 1, resp.TotalPages)
}

func TestListFiltersOnlyNarrowPricing(t *testing.T) {
	svc, _ := newTestService(t, 3)
	twelve := 12

	resp, err := svc.List(context.Background(), domain.ListRequest{
		Pagination: pagination.Pagination{Page: 1, PageSize: 10},
		Region:     "SG",
		Period:     &twelve,
	})
	require.NoError(t, err)

	// total_items ignores the filters.
	assert.Equal(t, int64(3), resp.TotalItems)
	require.Len(t, resp.Items, 3)
	for _, item := range resp.Items {
		require.Len(t, item.Pricing, 1)
		assert.Equal(t, "SG", item.Pricing[0].RegionCode)
		assert.Equal(t, 12, item.Pricing[0].RentalPeriodMonths)
	}
}

func TestListUnknownRegionKeepsProducts(t *testing.T) {
	svc, _ := newTestService(t, 2)

	resp, err := svc.List(context.Background(), domain.ListRequest{
		Pagination: pagination.Pagination{Page: 1, PageSize: 10},
		Region:     "ID",
	})
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	for _, item := range resp.Items {
		assert.NotNil(t, item.Pricing)
		assert.Empty(t, item.Pricing)
	}
}

func TestListEmptyCatalog(t *testing.T) {
	svc, _ := newTestService(t, 0)

	resp, err := svc.List(context.Background(), domain.ListRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.TotalItems)
	assert.Equal(t, 0, resp.TotalPages)
	assert.Equal(t, 1, resp.CurrentPage)
	assert.Equal(t, 10, resp.PageSize)
}

func TestListPropagatesStoreErrors(t *testing.T) {
	svc, repo := newTestService(t, 1)
	repo.err = errors.New("connection reset")

	_, err := svc.List(context.Background(), domain.ListRequest{})
	assert.EqualError(t, err, "connection reset")
}

func TestGet(t *testing.T) {
	svc, _ := newTestService(t, 2)

	resp, err := svc.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.ID)
	assert.Len(t, resp.Attributes, 2)
	assert.Len(t, resp.Pricing, 6)

	_, err = svc.Get(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Get(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
