package migration

import (
	"io/fs"
	"testing"

	"github.com/smallbiznis/rentcatalog/internal/config"
	"github.com/smallbiznis/rentcatalog/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	ups, err := fs.Glob(embeddedMigrations, "migrations/*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(embeddedMigrations, "migrations/*.down.sql")
	require.NoError(t, err)

	assert.NotEmpty(t, ups)
	assert.Len(t, downs, len(ups))
}

func TestMigrateAutoMigratesNonPostgres(t *testing.T) {
	conn, err := db.NewTest()
	require.NoError(t, err)

	require.NoError(t, Migrate(conn, db.TypeSQLite))
	for _, table := range []string{"products", "attributes", "regions", "rentalperiods", "productpricings", "users"} {
		assert.True(t, conn.Migrator().HasTable(table), table)
	}
}

func TestRunSeedsAndSwallowsSeedErrors(t *testing.T) {
	conn, err := db.NewTest()
	require.NoError(t, err)

	p := Params{
		DB:      conn,
		Config:  config.Config{DBType: db.TypeSQLite, SeedOnStartup: true},
		Catalog: config.DefaultCatalogConfig(),
		Log:     zap.NewNop(),
	}
	require.NoError(t, run(p))
	require.NoError(t, run(p))

	var products int64
	require.NoError(t, conn.Table("products").Count(&products).Error)
	assert.Equal(t, int64(18), products)

	// A broken catalog fails seeding but not startup.
	fresh, err := db.NewTest()
	require.NoError(t, err)
	broken := config.DefaultCatalogConfig()
	broken.Regions = append(broken.Regions, broken.Regions[0])
	assert.NoError(t, run(Params{
		DB:      fresh,
		Config:  config.Config{DBType: db.TypeSQLite, SeedOnStartup: true},
		Catalog: broken,
		Log:     zap.NewNop(),
	}))
	require.NoError(t, fresh.Table("products").Count(&products).Error)
	assert.Equal(t, int64(0), products)
}

func TestRunWithoutSeeding(t *testing.T) {
	conn, err := db.NewTest()
	require.NoError(t, err)

	require.NoError(t, run(Params{
		DB:      conn,
		Config:  config.Config{DBType: db.TypeSQLite},
		Catalog: config.DefaultCatalogConfig(),
		Log:     zap.NewNop(),
	}))

	var regions int64
	require.NoError(t, conn.Table("regions").Count(&regions).Error)
	assert.Zero(t, regions)
}
