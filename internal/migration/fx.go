package migration

import (
	"context"

	"github.com/smallbiznis/rentcatalog/internal/config"
	"github.com/smallbiznis/rentcatalog/internal/observability/metrics"
	"github.com/smallbiznis/rentcatalog/internal/seed"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB      *gorm.DB
	Config  config.Config
	Catalog config.CatalogConfig
	Log     *zap.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

var Module = fx.Module("migrations",
	fx.Invoke(run),
)

// run migrates the schema, which must succeed, then seeds the demo catalog.
// Seeding failures are logged and startup continues with whatever the store holds.
func run(p Params) error {
	log := p.Log.Named("migration")
	if err := Migrate(p.DB, p.Config.DBType); err != nil {
		return err
	}

	if !p.Config.SeedOnStartup {
		log.Info("catalog seeding disabled")
		return nil
	}

	ctx := context.Background()
	summary, err := seed.EnsureCatalog(ctx, p.DB, p.Catalog)
	if err != nil {
		log.Error("catalog seeding failed", zap.Error(err))
		return nil
	}
	if !summary.Seeded() {
		log.Info("catalog already seeded")
		return nil
	}

	p.Metrics.RecordSeededPrices(ctx, summary.Prices)
	log.Info("catalog seeded",
		zap.Int("regions", summary.Regions),
		zap.Int("rental_periods", summary.Periods),
		zap.Int("products", summary.Products),
		zap.Int("prices", summary.Prices),
	)
	return nil
}
