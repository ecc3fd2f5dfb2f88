package pricing

import (
	"github.com/smallbiznis/rentcatalog/internal/pricing/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("pricing.repository",
	fx.Provide(repository.Provide),
)
