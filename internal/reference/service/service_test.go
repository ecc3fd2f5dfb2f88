package service

import (
	"context"
	"testing"

	"github.com/smallbiznis/rentcatalog/internal/reference/domain"
	"github.com/smallbiznis/rentcatalog/internal/reference/repository"
	"github.com/smallbiznis/rentcatalog/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestListRegions(t *testing.T) {
	conn, err := db.NewTest()
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&domain.Region{}))

	svc := New(Params{DB: conn, Log: zap.NewNop(), Repo: repository.Provide()})

	empty, err := svc.ListRegions(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	repo := repository.Provide()
	require.NoError(t, repo.CreateRegion(context.Background(), conn, &domain.Region{Name: "Singapore", Code: "SG"}))
	require.NoError(t, repo.CreateRegion(context.Background(), conn, &domain.Region{Name: "Malaysia", Code: "MY"}))

	regions, err := svc.ListRegions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.RegionResponse{
		{ID: 1, Name: "Singapore", Code: "SG"},
		{ID: 2, Name: "Malaysia", Code: "MY"},
	}, regions)
}
