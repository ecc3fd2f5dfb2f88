package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/smallbiznis/rentcatalog/internal/config"
	pricingdomain "github.com/smallbiznis/rentcatalog/internal/pricing/domain"
	pricingrepository "github.com/smallbiznis/rentcatalog/internal/pricing/repository"
	productdomain "github.com/smallbiznis/rentcatalog/internal/product/domain"
	productrepository "github.com/smallbiznis/rentcatalog/internal/product/repository"
	referencedomain "github.com/smallbiznis/rentcatalog/internal/reference/domain"
	referencerepository "github.com/smallbiznis/rentcatalog/internal/reference/repository"
	"gorm.io/gorm"
)

// Summary counts the rows created by EnsureCatalog. It is zero when the store
// was already seeded.
type Summary struct {
	Regions  int
	Periods  int
	Products int
	Prices   int
}

func (s Summary) Seeded() bool { return s.Regions > 0 }

// EnsureCatalog seeds regions, rental periods, the demo products and their
// derived prices in one transaction. It is a no-op once any region exists.
func EnsureCatalog(ctx context.Context, db *gorm.DB, catalog config.CatalogConfig) (Summary, error) {
	if db == nil {
		return Summary{}, errors.New("seed database handle is required")
	}

	references := referencerepository.Provide()
	products := productrepository.Provide()
	pricings := pricingrepository.Provide()

	var summary Summary
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seeded, err := references.HasRegions(ctx, tx)
		if err != nil {
			return err
		}
		if seeded {
			return nil
		}

		regions := make([]referencedomain.Region, 0, len(catalog.Regions))
		for _, r := range catalog.Regions {
			region := referencedomain.Region{Name: r.Name, Code: r.Code}
			if err := references.CreateRegion(ctx, tx, &region); err != nil {
				return fmt.Errorf("create region %s: %w", r.Code, err)
			}
			regions = append(regions, region)
		}

		existing, err := references.ListRentalPeriods(ctx, tx)
		if err != nil {
			return err
		}
		byMonth := make(map[int]referencedomain.RentalPeriod, len(existing))
		for _, p := range existing {
			if _, ok := byMonth[p.Month]; !ok {
				byMonth[p.Month] = p
			}
		}

		// Periods already on file are reused; only missing months are created.
		periods := make([]referencedomain.RentalPeriod, 0, len(catalog.Periods))
		createdPeriods := 0
		for _, months := range catalog.Periods {
			period, ok := byMonth[months]
			if !ok {
				period = referencedomain.RentalPeriod{Month: months}
				if err := references.CreateRentalPeriod(ctx, tx, &period); err != nil {
					return fmt.Errorf("create rental period %d: %w", months, err)
				}
				createdPeriods++
			}
			periods = append(periods, period)
		}

		now := time.Now().UTC()
		var prices []pricingdomain.ProductPricing
		for _, demo := range DemoCatalog {
			product := productdomain.Product{
				Name:        demo.Name,
				Description: stringPtr(demo.Description),
				SKU:         stringPtr(demo.SKU),
				Detail:      stringPtr(demo.Detail),
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			attrs := make([]productdomain.Attribute, 0, len(demo.Attributes))
			for _, a := range demo.Attributes {
				attrs = append(attrs, productdomain.Attribute{Name: a[0], Value: a[1]})
			}
			if err := products.Create(ctx, tx, &product, attrs); err != nil {
				return fmt.Errorf("create product %s: %w", demo.SKU, err)
			}

			for i, region := range regions {
				for _, period := range periods {
					factor, _ := catalog.Regions[i].Factor(period.Month)
					prices = append(prices, pricingdomain.ProductPricing{
						ProductID:      product.ID,
						RegionID:       region.ID,
						RentalPeriodID: period.ID,
						Price:          pricingdomain.Derive(demo.BasePrice, factor),
					})
				}
			}
		}

		if err := pricings.CreateBatch(ctx, tx, prices); err != nil {
			return fmt.Errorf("create pricings: %w", err)
		}

		summary = Summary{
			Regions:  len(regions),
			Periods:  createdPeriods,
			Products: len(DemoCatalog),
			Prices:   len(prices),
		}
		return nil
	})
	if err != nil {
		return Summary{}, err
	}
	return summary, nil
}

func stringPtr(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
